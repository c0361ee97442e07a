package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ProcessSale
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_ContadoDescuentaStockYAsientaCaja(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewSaleUseCase(tx)

	// Caso: venta de contado de 3 unidades por S/ 45.
	res, err := uc.ProcessSale(context.Background(), saleInput("V-001", "prod-1", 3, "45"))
	require.NoError(t, err)
	require.Equal(t, "V-001", res.ID)
	assert.Empty(t, res.NegativeStock, "stock suficiente, nada que reportar")

	// El stock baja en la sucursal y en el global por igual.
	assert.Equal(t, int64(7), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(7), globalStock(t, store, "prod-1"))

	// Kardex: una SALIDA con el stock resultante y el ticket como referencia.
	movs, err := store.Ledger().StockMovements.ListByReference("V-001")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoSalida, movs[0].Type)
	assert.Equal(t, int64(3), movs[0].Quantity)
	assert.Equal(t, int64(7), movs[0].ResultingStock)
	assert.Equal(t, branchA, movs[0].BranchID)

	// Caja: un Ingreso por el total de la venta.
	cash, err := store.Ledger().CashMovements.ListByReference("V-001")
	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.Equal(t, entity.CajaIngreso, cash[0].Type)
	assert.Equal(t, entity.CategoriaVenta, cash[0].Category)
	assert.True(t, cash[0].Amount.Equal(d("45")), "el ingreso debe igualar el total")
}

func TestProcessSale_TicketDuplicadoFallaSinEfectos(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewSaleUseCase(tx)

	_, err := uc.ProcessSale(context.Background(), saleInput("V-001", "prod-1", 2, "30"))
	require.NoError(t, err)

	// Caso: reintento con el mismo ticket. Debe fallar y no tocar nada.
	_, err = uc.ProcessSale(context.Background(), saleInput("V-001", "prod-1", 2, "30"))
	require.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Equal(t, int64(8), branchQty(t, store, "prod-1", branchA), "el stock no debe descontarse dos veces")
	movs, err := store.Ledger().StockMovements.ListByReference("V-001")
	require.NoError(t, err)
	assert.Len(t, movs, 1, "un solo movimiento de kardex pese al reintento")
}

func TestProcessSale_CreditoSubeCuentaPorCobrarSinCaja(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	seedClient(t, store, "cli-1", d("20"), d("0"))
	uc := ledger.NewSaleUseCase(tx)

	in := saleInput("V-010", "prod-1", 2, "30")
	in.ClientID = "cli-1"
	in.ClientName = "Cliente cli-1"
	in.Breakdown = entity.PaymentBreakdown{}
	in.Payments = nil

	// Caso: desglose en cero = venta íntegra al crédito.
	_, err := uc.ProcessSale(context.Background(), in)
	require.NoError(t, err)

	client, err := store.Ledger().Clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.CreditUsed.Equal(d("50")), "creditUsed: 20 + 30")

	ingresos, egresos := cashSums(t, store, branchA)
	assert.True(t, ingresos.IsZero(), "el crédito no genera ingreso de caja")
	assert.True(t, egresos.IsZero())

	// El stock sí se mueve aunque no entre dinero.
	assert.Equal(t, int64(8), branchQty(t, store, "prod-1", branchA))
}

func TestProcessSale_BilleteraDescuentaSaldoDigitalSinCaja(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	seedClient(t, store, "cli-1", d("0"), d("100"))
	uc := ledger.NewSaleUseCase(tx)

	in := saleInput("V-020", "prod-1", 2, "30")
	in.ClientID = "cli-1"
	in.Breakdown = entity.PaymentBreakdown{Cash: d("10")}
	in.Payments = []entity.PaymentEntry{
		{Method: entity.MetodoEfectivo, Amount: d("10")},
		{Method: entity.MetodoBilletera, Amount: d("20")},
	}

	// Caso: pago mixto efectivo + billetera.
	_, err := uc.ProcessSale(context.Background(), in)
	require.NoError(t, err)

	client, err := store.Ledger().Clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.DigitalBalance.Equal(d("80")), "la billetera baja 100 - 20")

	// Solo el efectivo entra a caja: la billetera ya era dinero del negocio.
	cash, err := store.Ledger().CashMovements.ListByReference("V-020")
	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.True(t, cash[0].Amount.Equal(d("10")))
	assert.Equal(t, entity.MetodoEfectivo, cash[0].PaymentMethod)
}

func TestProcessSale_BilleteraSinSaldoRevierteTodo(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	seedClient(t, store, "cli-1", d("0"), d("5"))
	uc := ledger.NewSaleUseCase(tx)

	in := saleInput("V-030", "prod-1", 2, "30")
	in.ClientID = "cli-1"
	in.Payments = []entity.PaymentEntry{
		{Method: entity.MetodoBilletera, Amount: d("30")},
	}

	// Caso: la billetera no alcanza. Todo el comando se revierte.
	_, err := uc.ProcessSale(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrConflict)

	assert.Equal(t, int64(10), branchQty(t, store, "prod-1", branchA), "el stock vuelve a su valor inicial")
	sale, err := store.Ledger().Sales.GetByID("V-030")
	require.NoError(t, err)
	assert.Nil(t, sale, "la cabecera no debe persistir")
	client, err := store.Ledger().Clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.DigitalBalance.Equal(d("5")), "la billetera queda intacta")
}

func TestProcessSale_ProductoInexistenteRevierteTodo(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewSaleUseCase(tx)

	in := saleInput("V-040", "prod-1", 1, "45")
	in.Items = append(in.Items, entity.SaleItem{
		ProductID: "prod-fantasma", Name: "No existe", Quantity: 2, UnitPrice: d("15"),
	})

	// Caso: la segunda línea referencia un producto inexistente.
	_, err := uc.ProcessSale(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, int64(10), branchQty(t, store, "prod-1", branchA), "la primera línea también se revierte")
	sale, err := store.Ledger().Sales.GetByID("V-040")
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestProcessSale_StockNegativoProcedeYSeReporta(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 2)
	uc := ledger.NewSaleUseCase(tx)

	// Caso: se venden 5 con solo 2 en stock. La venta procede igual.
	res, err := uc.ProcessSale(context.Background(), saleInput("V-050", "prod-1", 5, "75"))
	require.NoError(t, err)
	require.Contains(t, res.NegativeStock, "prod-1")

	assert.Equal(t, int64(-3), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(-3), globalStock(t, store, "prod-1"))
}

func TestProcessSale_EntradaInvalida(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewSaleUseCase(tx)
	ctx := context.Background()

	// Caso 1: sin líneas.
	in := saleInput("V-060", "prod-1", 1, "15")
	in.Items = nil
	_, err := uc.ProcessSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 2: crédito sin cliente.
	in = saleInput("V-061", "prod-1", 1, "15")
	in.Breakdown = entity.PaymentBreakdown{}
	in.Payments = nil
	_, err = uc.ProcessSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 3: billetera sin cliente.
	in = saleInput("V-062", "prod-1", 1, "15")
	in.Payments = []entity.PaymentEntry{{Method: entity.MetodoBilletera, Amount: d("15")}}
	_, err = uc.ProcessSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 4: cantidad en cero.
	in = saleInput("V-063", "prod-1", 0, "15")
	_, err = uc.ProcessSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
