package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condición de pago de una compra.
const (
	CondicionContado = "Contado"
	CondicionCredito = "Credito"
)

// PurchaseItem línea de compra con costo unitario del proveedor.
type PurchaseItem struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitCost  decimal.Decimal
}

// PurchaseRecord cabecera de compra a proveedor. En compras al crédito no se
// emite movimiento de caja; el saldo queda en Supplier.PayableBalance y los
// pagos posteriores se agregan a Payments.
type PurchaseRecord struct {
	ID               string
	BranchID         string
	Items            []PurchaseItem
	Total            decimal.Decimal
	Currency         string
	ExchangeRate     decimal.Decimal
	PaymentCondition string // Contado | Credito
	CreditDays       int
	Payments         []PaymentEntry
	DocType          string
	SupplierName     string
	CreatedAt        time.Time
	CreatedBy        string
}
