package repository

import "github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"

// InventoryCountRepository puerto para sesiones de conteo físico.
type InventoryCountRepository interface {
	Create(session *entity.InventoryCountSession) error
	GetByID(id string) (*entity.InventoryCountSession, error)
	GetForUpdate(id string) (*entity.InventoryCountSession, error)
	Update(session *entity.InventoryCountSession) error
	ListByBranch(branchID, status string, limit, offset int) ([]*entity.InventoryCountSession, error)
}
