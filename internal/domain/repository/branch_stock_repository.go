package repository

import "github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"

// BranchStockRepository puerto para el stock por sucursal. Get y GetForUpdate
// devuelven una fila en cero cuando el producto nunca se movió en la sucursal.
// Usado dentro de transacciones para garantizar consistencia.
type BranchStockRepository interface {
	Get(productID, branchID string) (*entity.BranchStock, error)
	GetForUpdate(productID, branchID string) (*entity.BranchStock, error)
	Upsert(stock *entity.BranchStock) error
	ListByBranch(branchID string, limit, offset int) ([]*entity.BranchStock, error)
}
