package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "ENTRADA"
	MovimientoSalida  = "SALIDA"
)

// StockMovement es un hecho inmutable del kardex: un movimiento por producto
// y por comando, con el stock resultante ya aplicada la mutación.
// Reference apunta al documento que lo originó (ticket, compra, traslado, ajuste).
type StockMovement struct {
	ID             string
	BranchID       string
	ProductID      string
	Type           string // ENTRADA | SALIDA
	Quantity       int64  // siempre positiva; el signo lo da Type
	ResultingStock int64  // stock del producto después de aplicar el movimiento
	Reference      string
	Notes          string
	CreatedAt      time.Time
	CreatedBy      string
}
