package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// CashMovementRepository puerto del libro de caja (append-only).
// SumByBranch devuelve los totales de Ingreso y Egreso del período, base de
// la posición de caja por sucursal.
type CashMovementRepository interface {
	Create(movement *entity.CashMovement) error
	ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashMovement, error)
	ListByReference(referenceID string) ([]*entity.CashMovement, error)
	SumByBranch(branchID string, from, to time.Time) (ingresos, egresos decimal.Decimal, err error)
}
