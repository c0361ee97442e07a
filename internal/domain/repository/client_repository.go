package repository

import (
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error)
	GetForUpdate(id string) (*entity.Client, error)
	UpdateBalances(clientID string, creditUsed, digitalBalance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Client, error)
}
