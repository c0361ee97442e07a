package repository

import "github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"

// WarehouseTransferRepository puerto para traslados de stock entre sucursales.
// ListByBranch devuelve traslados donde la sucursal es origen o destino.
type WarehouseTransferRepository interface {
	Create(transfer *entity.WarehouseTransfer) error
	GetByID(id string) (*entity.WarehouseTransfer, error)
	GetForUpdate(id string) (*entity.WarehouseTransfer, error)
	Update(transfer *entity.WarehouseTransfer) error
	ListByBranch(branchID, status string, limit, offset int) ([]*entity.WarehouseTransfer, error)
}
