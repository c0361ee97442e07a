package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.CashTransferRepository = (*CashTransferRepo)(nil)

// CashTransferRepo implementación de CashTransferRepository sobre PostgreSQL.
type CashTransferRepo struct {
	q Querier
}

// NewCashTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashTransferRepository(q Querier) *CashTransferRepo {
	return &CashTransferRepo{q: q}
}

const cashTransferColumns = `id, from_branch_id, to_branch_id, amount, currency, status, notes,
	created_at, created_by, confirmed_at, confirmed_by`

// Create persiste un envío de efectivo nuevo.
func (r *CashTransferRepo) Create(transfer *entity.CashTransferRequest) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cash_transfers (` + cashTransferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.FromBranchID, transfer.ToBranchID,
		transfer.Amount, transfer.Currency, transfer.Status, nullIfEmpty(transfer.Notes),
		transfer.CreatedAt, transfer.CreatedBy, transfer.ConfirmedAt, nullIfEmpty(transfer.ConfirmedBy),
	)
	if err != nil {
		return fmt.Errorf("insert cash transfer: %w", err)
	}
	return nil
}

func scanCashTransfer(row pgx.Row) (*entity.CashTransferRequest, error) {
	var t entity.CashTransferRequest
	var notes, confirmedBy *string
	err := row.Scan(
		&t.ID, &t.FromBranchID, &t.ToBranchID, &t.Amount, &t.Currency, &t.Status, &notes,
		&t.CreatedAt, &t.CreatedBy, &t.ConfirmedAt, &confirmedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cash transfer: %w", err)
	}
	t.Notes = derefStr(notes)
	t.ConfirmedBy = derefStr(confirmedBy)
	return &t, nil
}

// GetByID obtiene una transferencia por ID; nil si no existe.
func (r *CashTransferRepo) GetByID(id string) (*entity.CashTransferRequest, error) {
	query := `SELECT ` + cashTransferColumns + ` FROM cash_transfers WHERE id = $1`
	return scanCashTransfer(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la transferencia y bloquea la fila para la
// confirmación.
func (r *CashTransferRepo) GetForUpdate(id string) (*entity.CashTransferRequest, error) {
	query := `SELECT ` + cashTransferColumns + ` FROM cash_transfers WHERE id = $1 FOR UPDATE`
	return scanCashTransfer(r.q.QueryRow(context.Background(), query, id))
}

// Update reemplaza estado y auditoría de la transferencia.
func (r *CashTransferRepo) Update(transfer *entity.CashTransferRequest) error {
	query := `
		UPDATE cash_transfers
		SET status = $2, notes = $3, confirmed_at = $4, confirmed_by = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Status, nullIfEmpty(transfer.Notes),
		transfer.ConfirmedAt, nullIfEmpty(transfer.ConfirmedBy),
	)
	if err != nil {
		return fmt.Errorf("update cash transfer: %w", err)
	}
	return nil
}

// ListByBranch transferencias donde la sucursal es origen o destino, con
// filtro opcional por estado.
func (r *CashTransferRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.CashTransferRequest, error) {
	query := `
		SELECT ` + cashTransferColumns + `
		FROM cash_transfers
		WHERE (from_branch_id = $1 OR to_branch_id = $1)
			AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.CashTransferRequest
	for rows.Next() {
		var t entity.CashTransferRequest
		var notes, confirmedBy *string
		if err := rows.Scan(
			&t.ID, &t.FromBranchID, &t.ToBranchID, &t.Amount, &t.Currency, &t.Status, &notes,
			&t.CreatedAt, &t.CreatedBy, &t.ConfirmedAt, &confirmedBy,
		); err != nil {
			return nil, fmt.Errorf("scan cash transfer: %w", err)
		}
		t.Notes = derefStr(notes)
		t.ConfirmedBy = derefStr(confirmedBy)
		out = append(out, &t)
	}
	return out, rows.Err()
}

// SumInTransit efectivo que salió de la sucursal y sigue sin confirmarse.
func (r *CashTransferRepo) SumInTransit(fromBranchID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM cash_transfers
		WHERE from_branch_id = $1 AND status = 'PENDING'`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, fromBranchID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum cash in transit: %w", err)
	}
	return total, nil
}
