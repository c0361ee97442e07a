package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente del negocio (global al tenant).
// CreditUsed es la cuenta por cobrar pendiente; solo baja por cobros asignados.
// DigitalBalance es saldo de billetera, nunca negativo; solo sube por excedentes
// de cobro o depósitos explícitos.
type Client struct {
	ID             string
	Name           string
	Phone          string
	CreditUsed     decimal.Decimal
	DigitalBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
