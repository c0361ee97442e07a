package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor. PayableBalance es la cuenta por pagar
// explícita (sube con compras al crédito, baja con pagos). DigitalBalance es
// crédito a favor del negocio por pagos en exceso al proveedor.
type Supplier struct {
	ID             string
	Name           string
	Phone          string
	PayableBalance decimal.Decimal
	DigitalBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
