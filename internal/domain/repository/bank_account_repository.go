package repository

import "github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"

// BankAccountRepository puerto de persistencia para cuentas bancarias.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	List() ([]*entity.BankAccount, error)
}
