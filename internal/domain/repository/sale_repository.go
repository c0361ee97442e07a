package repository

import (
	"time"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas. Create debe fallar con
// domain.ErrDuplicate si el ticket ya existe. AppendPayment solo agrega, nunca
// reemplaza entradas de pago.
type SaleRepository interface {
	Create(sale *entity.SaleRecord) error
	GetByID(id string) (*entity.SaleRecord, error)
	GetForUpdate(id string) (*entity.SaleRecord, error)
	AppendPayment(saleID string, payment entity.PaymentEntry) error
	ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.SaleRecord, error)
}
