package repository

import (
	"time"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// CashBoxRepository puerto para sesiones de caja. GetOpenByBranch devuelve
// nil (sin error) cuando no hay sesión abierta; GetOpenForUpdate además
// bloquea la fila para el cierre.
type CashBoxRepository interface {
	Create(session *entity.CashBoxSession) error
	GetByID(id string) (*entity.CashBoxSession, error)
	GetOpenByBranch(branchID string) (*entity.CashBoxSession, error)
	GetOpenForUpdate(branchID string) (*entity.CashBoxSession, error)
	Update(session *entity.CashBoxSession) error
	ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashBoxSession, error)
}
