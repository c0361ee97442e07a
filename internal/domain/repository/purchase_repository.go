package repository

import (
	"time"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras a proveedor.
type PurchaseRepository interface {
	Create(purchase *entity.PurchaseRecord) error
	GetByID(id string) (*entity.PurchaseRecord, error)
	GetForUpdate(id string) (*entity.PurchaseRecord, error)
	AppendPayment(purchaseID string, payment entity.PaymentEntry) error
	ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.PurchaseRecord, error)
}
