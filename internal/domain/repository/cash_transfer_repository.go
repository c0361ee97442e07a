package repository

import (
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// CashTransferRepository puerto para transferencias de efectivo entre
// sucursales. SumInTransit devuelve el total PENDING que salió de una
// sucursal y aún no fue confirmado por el destino.
type CashTransferRepository interface {
	Create(transfer *entity.CashTransferRequest) error
	GetByID(id string) (*entity.CashTransferRequest, error)
	GetForUpdate(id string) (*entity.CashTransferRequest, error)
	Update(transfer *entity.CashTransferRequest) error
	ListByBranch(branchID, status string, limit, offset int) ([]*entity.CashTransferRequest, error)
	SumInTransit(fromBranchID string) (decimal.Decimal, error)
}
