package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	branchA  = "sucursal-a"
	branchB  = "sucursal-b"
	testUser = "user-test"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newEnv construye el store en memoria con su runner transaccional.
func newEnv(t *testing.T) (*memory.Store, *memory.TxRunner) {
	t.Helper()
	store := memory.NewStore()
	return store, memory.NewTxRunner(store)
}

// seedProduct crea el producto y carga stock inicial en la sucursal indicada.
func seedProduct(t *testing.T, store *memory.Store, id, name string, branchID string, qty int64) {
	t.Helper()
	l := store.Ledger()
	require.NoError(t, l.Products.Create(&entity.Product{
		ID:        id,
		Name:      name,
		Code:      "SKU-" + id,
		Stock:     qty,
		Cost:      d("10"),
		Price:     d("15"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))
	if qty != 0 {
		require.NoError(t, l.BranchStocks.Upsert(&entity.BranchStock{
			ProductID: id,
			BranchID:  branchID,
			Quantity:  qty,
			UpdatedAt: time.Now(),
		}))
	}
}

// seedClient crea un cliente con crédito usado y saldo de billetera dados.
func seedClient(t *testing.T, store *memory.Store, id string, creditUsed, digital decimal.Decimal) {
	t.Helper()
	require.NoError(t, store.Ledger().Clients.Create(&entity.Client{
		ID:             id,
		Name:           "Cliente " + id,
		CreditUsed:     creditUsed,
		DigitalBalance: digital,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}))
}

// seedSupplier crea un proveedor con cuenta por pagar dada.
func seedSupplier(t *testing.T, store *memory.Store, id string, payable decimal.Decimal) {
	t.Helper()
	require.NoError(t, store.Ledger().Suppliers.Create(&entity.Supplier{
		ID:             id,
		Name:           "Proveedor " + id,
		PayableBalance: payable,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}))
}

// branchQty devuelve el stock de sucursal de un producto.
func branchQty(t *testing.T, store *memory.Store, productID, branchID string) int64 {
	t.Helper()
	bs, err := store.Ledger().BranchStocks.Get(productID, branchID)
	require.NoError(t, err)
	return bs.Quantity
}

// globalStock devuelve el stock global del producto.
func globalStock(t *testing.T, store *memory.Store, productID string) int64 {
	t.Helper()
	p, err := store.Ledger().Products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// cashSums ingresos y egresos de la sucursal en las últimas 24 horas.
func cashSums(t *testing.T, store *memory.Store, branchID string) (decimal.Decimal, decimal.Decimal) {
	t.Helper()
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now().Add(24 * time.Hour)
	ingresos, egresos, err := store.Ledger().CashMovements.SumByBranch(branchID, from, to)
	require.NoError(t, err)
	return ingresos, egresos
}

// saleInput venta de contado simple de un producto.
func saleInput(ticket, productID string, qty int64, total string) ledger.SaleInput {
	return ledger.SaleInput{
		BranchID: branchA,
		UserID:   testUser,
		TicketID: ticket,
		Items: []entity.SaleItem{
			{ProductID: productID, Name: "Producto", Quantity: qty, UnitPrice: d("15")},
		},
		Total:     d(total),
		Currency:  "PEN",
		DocType:   "boleta",
		Breakdown: entity.PaymentBreakdown{Cash: d(total)},
		Payments: []entity.PaymentEntry{
			{Method: entity.MetodoEfectivo, Amount: d(total)},
		},
	}
}
