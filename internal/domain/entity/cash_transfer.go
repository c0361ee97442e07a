package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la transferencia de efectivo entre sucursales.
const (
	TransferenciaPendiente  = "PENDING"
	TransferenciaCompletada = "COMPLETED"
)

// CashTransferRequest envío de efectivo entre sucursales. El Egreso en el
// origen se asienta al iniciar; el Ingreso en el destino recién al confirmar,
// por lo que el monto queda "en tránsito" mientras tanto.
type CashTransferRequest struct {
	ID           string
	FromBranchID string
	ToBranchID   string
	Amount       decimal.Decimal
	Currency     string
	Status       string // PENDING | COMPLETED
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string
	ConfirmedAt  *time.Time
	ConfirmedBy  string
}
