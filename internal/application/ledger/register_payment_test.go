package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cobranzas y pagos a proveedor
// ──────────────────────────────────────────────────────────────────────────────

func seedCreditSale(t *testing.T, store *memory.Store, id string, total string) {
	t.Helper()
	require.NoError(t, store.Ledger().Sales.Create(&entity.SaleRecord{
		ID:       id,
		BranchID: branchA,
		Items: []entity.SaleItem{
			{ProductID: "prod-1", Name: "Producto", Quantity: 1, UnitPrice: d(total)},
		},
		Total:     d(total),
		Currency:  "PEN",
		DocType:   "boleta",
		CreatedAt: time.Now(),
		CreatedBy: testUser,
	}))
}

func seedCreditPurchase(t *testing.T, store *memory.Store, id string, total string) {
	t.Helper()
	require.NoError(t, store.Ledger().Purchases.Create(&entity.PurchaseRecord{
		ID:       id,
		BranchID: branchA,
		Items: []entity.PurchaseItem{
			{ProductID: "prod-1", Name: "Producto", Quantity: 1, UnitCost: d(total)},
		},
		Total:            d(total),
		Currency:         "PEN",
		PaymentCondition: entity.CondicionCredito,
		CreditDays:       30,
		DocType:          "factura",
		SupplierName:     "Distribuidora Norte",
		CreatedAt:        time.Now(),
		CreatedBy:        testUser,
	}))
}

func TestRegisterReceivablePayment_ExcedenteVaABilletera(t *testing.T) {
	store, tx := newEnv(t)
	seedClient(t, store, "cli-1", d("50"), d("0"))
	seedCreditSale(t, store, "V-100", "50")
	uc := ledger.NewPaymentUseCase(tx)

	// Caso: se asignan 50 al documento pero el cliente entrega 70.
	res, err := uc.RegisterReceivablePayment(context.Background(), ledger.PaymentInput{
		BranchID:   branchA,
		UserID:     testUser,
		DocumentID: "V-100",
		PartyID:    "cli-1",
		Amount:     d("50"),
		Currency:   "PEN",
		Payment:    entity.PaymentEntry{Method: entity.MetodoEfectivo, Amount: d("70")},
	})
	require.NoError(t, err)
	require.Equal(t, "V-100", res.ID)

	client, err := store.Ledger().Clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.CreditUsed.IsZero(), "el crédito queda saldado")
	assert.True(t, client.DigitalBalance.Equal(d("20")), "el excedente 70-50 va a la billetera")

	// Un único Ingreso de caja por el monto recibido, no el asignado.
	cash, err := store.Ledger().CashMovements.ListByReference("V-100")
	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.Equal(t, entity.CajaIngreso, cash[0].Type)
	assert.Equal(t, entity.CategoriaCobranza, cash[0].Category)
	assert.True(t, cash[0].Amount.Equal(d("70")))

	// El pago queda adjunto al documento.
	sale, err := store.Ledger().Sales.GetByID("V-100")
	require.NoError(t, err)
	require.Len(t, sale.Payments, 1)
	assert.True(t, sale.Payments[0].Amount.Equal(d("70")))
}

func TestRegisterReceivablePayment_CreditoNuncaQuedaNegativo(t *testing.T) {
	store, tx := newEnv(t)
	seedClient(t, store, "cli-1", d("30"), d("0"))
	seedCreditSale(t, store, "V-101", "30")
	uc := ledger.NewPaymentUseCase(tx)

	// Caso: se asignan 50 con solo 30 de crédito usado. Piso en cero.
	_, err := uc.RegisterReceivablePayment(context.Background(), ledger.PaymentInput{
		BranchID:   branchA,
		UserID:     testUser,
		DocumentID: "V-101",
		PartyID:    "cli-1",
		Amount:     d("50"),
		Currency:   "PEN",
		Payment:    entity.PaymentEntry{Method: entity.MetodoEfectivo},
	})
	require.NoError(t, err)

	client, err := store.Ledger().Clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.CreditUsed.IsZero(), "nunca negativo")
	assert.True(t, client.DigitalBalance.IsZero(), "sin excedente: recibido == asignado")
}

func TestRegisterReceivablePayment_DocumentoInexistenteSinEfectos(t *testing.T) {
	store, tx := newEnv(t)
	seedClient(t, store, "cli-1", d("50"), d("0"))
	uc := ledger.NewPaymentUseCase(tx)

	// Caso: el documento no existe. El comando entero falla.
	_, err := uc.RegisterReceivablePayment(context.Background(), ledger.PaymentInput{
		BranchID:   branchA,
		UserID:     testUser,
		DocumentID: "V-fantasma",
		PartyID:    "cli-1",
		Amount:     d("50"),
		Currency:   "PEN",
		Payment:    entity.PaymentEntry{Method: entity.MetodoEfectivo},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	client, err := store.Ledger().Clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.CreditUsed.Equal(d("50")), "el saldo del cliente queda intacto")
	ingresos, _ := cashSums(t, store, branchA)
	assert.True(t, ingresos.IsZero(), "sin asiento de caja")
}

func TestRegisterPayablePayment_BajaCuentaPorPagarYEgresaCaja(t *testing.T) {
	store, tx := newEnv(t)
	seedSupplier(t, store, "prov-1", d("200"))
	seedCreditPurchase(t, store, "C-100", "200")
	uc := ledger.NewPaymentUseCase(tx)

	// Caso: pago parcial de 120 sobre una deuda de 200.
	_, err := uc.RegisterPayablePayment(context.Background(), ledger.PaymentInput{
		BranchID:   branchA,
		UserID:     testUser,
		DocumentID: "C-100",
		PartyID:    "prov-1",
		Amount:     d("120"),
		Currency:   "PEN",
		Payment:    entity.PaymentEntry{Method: entity.MetodoBanco, AccountID: "acc-1"},
	})
	require.NoError(t, err)

	supplier, err := store.Ledger().Suppliers.GetByID("prov-1")
	require.NoError(t, err)
	assert.True(t, supplier.PayableBalance.Equal(d("80")), "cuenta por pagar: 200 - 120")

	cash, err := store.Ledger().CashMovements.ListByReference("C-100")
	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.Equal(t, entity.CajaEgreso, cash[0].Type)
	assert.Equal(t, entity.CategoriaPagoProveedor, cash[0].Category)
	assert.Equal(t, "acc-1", cash[0].AccountID)
	assert.True(t, cash[0].Amount.Equal(d("120")))
}

func TestRegisterPayment_RecibirMenosDeLoAsignadoEsInvalido(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewPaymentUseCase(tx)

	// Caso: recibir 30 contra 50 asignados no cuadra contablemente.
	_, err := uc.RegisterReceivablePayment(context.Background(), ledger.PaymentInput{
		BranchID:   branchA,
		UserID:     testUser,
		DocumentID: "V-100",
		PartyID:    "cli-1",
		Amount:     d("50"),
		Currency:   "PEN",
		Payment:    entity.PaymentEntry{Method: entity.MetodoEfectivo, Amount: d("30")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
