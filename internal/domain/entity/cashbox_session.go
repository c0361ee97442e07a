package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la sesión de caja.
const (
	CajaAbierta = "OPEN"
	CajaCerrada = "CLOSED"
)

// AccountBalance saldo digital confirmado de una cuenta bancaria en la
// apertura o cierre de caja.
type AccountBalance struct {
	AccountID string
	Amount    decimal.Decimal
}

// CashBoxSession ciclo de apertura/cierre de caja de una sucursal.
// Solo puede existir una sesión OPEN por sucursal a la vez. La diferencia al
// cierre (contado - sistema) es la señal de auditoría de faltantes/sobrantes.
type CashBoxSession struct {
	ID       string
	BranchID string
	Status   string // OPEN | CLOSED

	OpeningCash      decimal.Decimal
	OpeningNotes     string
	OpenBankBalances []AccountBalance
	OpenedAt         time.Time
	OpenedBy         string

	CountedCashAtClose    decimal.Decimal
	SystemCashAtClose     decimal.Decimal
	SystemDigitalAtClose  decimal.Decimal
	CashDifferenceAtClose decimal.Decimal // contado - sistema
	ClosingNotes          string
	CloseBankBalances     []AccountBalance
	ClosedAt              *time.Time
	ClosedBy              string
}
