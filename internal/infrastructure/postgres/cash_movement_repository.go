package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo implementación de CashMovementRepository sobre PostgreSQL.
// Libro de caja append-only; la posición se deriva agregando, nunca de un
// saldo mutable.
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

const cashMovementColumns = `id, branch_id, type, payment_method, concept, amount, currency,
	category, financial_type, account_id, reference_id, created_at, created_by`

// Create inserta un asiento de caja.
func (r *CashMovementRepo) Create(movement *entity.CashMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cash_movements (` + cashMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.BranchID, movement.Type, movement.PaymentMethod,
		movement.Concept, movement.Amount, movement.Currency,
		movement.Category, movement.FinancialType,
		nullIfEmpty(movement.AccountID), nullIfEmpty(movement.ReferenceID),
		movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert cash movement: %w", err)
	}
	return nil
}

func (r *CashMovementRepo) scanRows(rows pgx.Rows) ([]*entity.CashMovement, error) {
	defer rows.Close()

	var out []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		var accountID, referenceID *string
		if err := rows.Scan(
			&m.ID, &m.BranchID, &m.Type, &m.PaymentMethod, &m.Concept, &m.Amount, &m.Currency,
			&m.Category, &m.FinancialType, &accountID, &referenceID, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		m.AccountID = derefStr(accountID)
		m.ReferenceID = derefStr(referenceID)
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListByBranch asientos de la sucursal en el rango de fechas.
func (r *CashMovementRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + cashMovementColumns + `
		FROM cash_movements
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, branchID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	return r.scanRows(rows)
}

// ListByReference asientos originados por un mismo documento.
func (r *CashMovementRepo) ListByReference(referenceID string) ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + cashMovementColumns + `
		FROM cash_movements
		WHERE reference_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("list cash movements by reference: %w", err)
	}
	return r.scanRows(rows)
}

// SumByBranch totales de Ingreso y Egreso de la sucursal en el período.
func (r *CashMovementRepo) SumByBranch(branchID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'Ingreso'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'Egreso'), 0)
		FROM cash_movements
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3`
	var ingresos, egresos decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, branchID, from, to).Scan(&ingresos, &egresos)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum cash movements: %w", err)
	}
	return ingresos, egresos, nil
}
