package repository

import (
	"time"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// StockMovementRepository puerto para el kardex (solo inserción y lectura;
// los movimientos jamás se mutan ni se borran).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByReference(reference string) ([]*entity.StockMovement, error)
}
