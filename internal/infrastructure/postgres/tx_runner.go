package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// NewLedger construye el bundle de repositorios sobre un Querier (pool o tx).
func NewLedger(q Querier) *repository.Ledger {
	return &repository.Ledger{
		Products:       NewProductRepository(q),
		BranchStocks:   NewBranchStockRepository(q),
		Clients:        NewClientRepository(q),
		Suppliers:      NewSupplierRepository(q),
		BankAccounts:   NewBankAccountRepository(q),
		Sales:          NewSaleRepository(q),
		Purchases:      NewPurchaseRepository(q),
		StockMovements: NewStockMovementRepository(q),
		CashMovements:  NewCashMovementRepository(q),
		CashBoxes:      NewCashBoxRepository(q),
		Transfers:      NewWarehouseTransferRepository(q),
		CashTransfers:  NewCashTransferRepository(q),
		Counts:         NewInventoryCountRepository(q),
	}
}

// Run inicia una transacción, ejecuta fn con el libro atado a la tx y hace
// Commit o Rollback. Es la unidad de atomicidad de cada comando.
func (r *TxRunner) Run(ctx context.Context, fn func(l *repository.Ledger) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLedger(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
