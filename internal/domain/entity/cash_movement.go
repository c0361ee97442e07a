package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	CajaIngreso = "Ingreso"
	CajaEgreso  = "Egreso"
)

// Categorías de movimiento de caja.
const (
	CategoriaVenta         = "VENTA"
	CategoriaCompra        = "COMPRA"
	CategoriaCobranza      = "COBRANZA"
	CategoriaPagoProveedor = "PAGO PROVEEDOR"
	CategoriaTransferencia = "TRANSFERENCIA"
	CategoriaAjuste        = "AJUSTE"
)

// Tipo financiero (clasificación para reportes).
const (
	FinancieroVariable = "Variable"
	FinancieroFijo     = "Fijo"
)

// CashMovement es la única fuente de verdad de la posición de caja: un asiento
// inmutable por cada pago que entra o sale. Amount siempre es positivo; el
// sentido lo da Type.
type CashMovement struct {
	ID            string
	BranchID      string
	Type          string // Ingreso | Egreso
	PaymentMethod string
	Concept       string
	Amount        decimal.Decimal
	Currency      string
	Category      string
	FinancialType string // Variable | Fijo
	AccountID     string // cuenta bancaria, si aplica
	ReferenceID   string // documento que originó el asiento
	CreatedAt     time.Time
	CreatedBy     string
}
