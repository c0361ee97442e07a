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
// ProcessPurchase
// ──────────────────────────────────────────────────────────────────────────────

func purchaseInput(productID string, qty int64, unitCost, total string) ledger.PurchaseInput {
	return ledger.PurchaseInput{
		BranchID: branchA,
		UserID:   testUser,
		Items: []entity.PurchaseItem{
			{ProductID: productID, Name: "Producto", Quantity: qty, UnitCost: d(unitCost)},
		},
		Total:            d(total),
		Currency:         "PEN",
		DocType:          "factura",
		SupplierName:     "Distribuidora Norte",
		PaymentCondition: entity.CondicionContado,
		Payments: []entity.PaymentEntry{
			{Method: entity.MetodoEfectivo, Amount: d(total)},
		},
	}
}

func TestProcessPurchase_ContadoSumaStockYEgresaCaja(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 5)
	uc := ledger.NewPurchaseUseCase(tx)

	// Caso: compra de contado de 10 unidades a S/ 8 cada una.
	res, err := uc.ProcessPurchase(context.Background(), purchaseInput("prod-1", 10, "8", "80"))
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	assert.Equal(t, int64(15), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(15), globalStock(t, store, "prod-1"))

	// El costo del producto se sobrescribe con el último costo de compra.
	product, err := store.Ledger().Products.GetByID("prod-1")
	require.NoError(t, err)
	assert.True(t, product.Cost.Equal(d("8")), "último costo manda")

	// Kardex: una ENTRADA referenciando la compra.
	movs, err := store.Ledger().StockMovements.ListByReference(res.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoEntrada, movs[0].Type)
	assert.Equal(t, int64(15), movs[0].ResultingStock)

	// Caja: un Egreso por el pago.
	cash, err := store.Ledger().CashMovements.ListByReference(res.ID)
	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.Equal(t, entity.CajaEgreso, cash[0].Type)
	assert.Equal(t, entity.CategoriaCompra, cash[0].Category)
	assert.True(t, cash[0].Amount.Equal(d("80")))
}

func TestProcessPurchase_CreditoSubeCuentaPorPagarSinCaja(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 5)
	seedSupplier(t, store, "prov-1", d("100"))
	uc := ledger.NewPurchaseUseCase(tx)

	in := purchaseInput("prod-1", 10, "8", "80")
	in.PaymentCondition = entity.CondicionCredito
	in.SupplierID = "prov-1"
	in.CreditDays = 30
	in.Payments = nil

	// Caso: compra al crédito a 30 días.
	_, err := uc.ProcessPurchase(context.Background(), in)
	require.NoError(t, err)

	supplier, err := store.Ledger().Suppliers.GetByID("prov-1")
	require.NoError(t, err)
	assert.True(t, supplier.PayableBalance.Equal(d("180")), "cuenta por pagar: 100 + 80")

	ingresos, egresos := cashSums(t, store, branchA)
	assert.True(t, ingresos.IsZero())
	assert.True(t, egresos.IsZero(), "el crédito no toca caja")

	// El stock entra igual.
	assert.Equal(t, int64(15), branchQty(t, store, "prod-1", branchA))
}

func TestProcessPurchase_ProveedorInexistenteRevierteTodo(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 5)
	uc := ledger.NewPurchaseUseCase(tx)

	in := purchaseInput("prod-1", 10, "8", "80")
	in.PaymentCondition = entity.CondicionCredito
	in.SupplierID = "prov-fantasma"
	in.Payments = nil

	// Caso: crédito contra proveedor inexistente. Nada debe persistir.
	_, err := uc.ProcessPurchase(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, int64(5), branchQty(t, store, "prod-1", branchA), "la entrada de stock se revierte")
	product, err := store.Ledger().Products.GetByID("prod-1")
	require.NoError(t, err)
	assert.True(t, product.Cost.Equal(d("10")), "el costo tampoco cambia")
}

func TestProcessPurchase_EntradaInvalida(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewPurchaseUseCase(tx)
	ctx := context.Background()

	// Caso 1: condición de pago desconocida.
	in := purchaseInput("prod-1", 1, "8", "8")
	in.PaymentCondition = "Consignacion"
	_, err := uc.ProcessPurchase(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 2: crédito sin proveedor.
	in = purchaseInput("prod-1", 1, "8", "8")
	in.PaymentCondition = entity.CondicionCredito
	in.SupplierID = ""
	_, err = uc.ProcessPurchase(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 3: costo unitario negativo.
	in = purchaseInput("prod-1", 1, "-8", "8")
	_, err = uc.ProcessPurchase(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 4: crédito con pagos adjuntos. El documento quedaría como
	// parcialmente pagado mientras la cuenta por pagar sube por el total.
	in = purchaseInput("prod-1", 1, "8", "8")
	in.PaymentCondition = entity.CondicionCredito
	in.SupplierID = "prov-1"
	in.CreditDays = 30
	_, err = uc.ProcessPurchase(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
