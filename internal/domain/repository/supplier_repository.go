package repository

import (
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	GetForUpdate(id string) (*entity.Supplier, error)
	UpdateBalances(supplierID string, payableBalance, digitalBalance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Supplier, error)
}
