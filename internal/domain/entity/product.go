package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (global al tenant).
// Stock es entero y puede quedar negativo (sobreventa o traslado sin confirmar);
// Cost se sobrescribe con el último costo de compra (política last-cost, sin promedio).
type Product struct {
	ID        string
	Name      string
	Code      string // SKU o código de barras
	Stock     int64
	Cost      decimal.Decimal
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
