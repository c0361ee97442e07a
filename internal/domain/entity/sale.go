package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es la línea de venta con precio congelado al momento de la operación.
type SaleItem struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// SaleRecord es la cabecera de una venta. El ID es el número de ticket que
// entrega el caller y debe ser único. Payments es append-only: los cobros de
// crédito posteriores se agregan como nuevas entradas.
type SaleRecord struct {
	ID           string // ticket id, provisto por el caller
	BranchID     string
	Items        []SaleItem
	Total        decimal.Decimal
	Currency     string
	ExchangeRate decimal.Decimal
	Breakdown    PaymentBreakdown
	Payments     []PaymentEntry
	DocType      string // boleta, factura, nota de venta
	ClientName   string
	CreatedAt    time.Time
	CreatedBy    string
}
