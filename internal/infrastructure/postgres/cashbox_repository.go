package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.CashBoxRepository = (*CashBoxRepo)(nil)

// CashBoxRepo implementación de CashBoxRepository sobre PostgreSQL. Los
// saldos bancarios declarados en apertura/cierre se guardan como JSONB.
type CashBoxRepo struct {
	q Querier
}

// NewCashBoxRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashBoxRepository(q Querier) *CashBoxRepo {
	return &CashBoxRepo{q: q}
}

const cashBoxColumns = `id, branch_id, status,
	opening_cash, opening_notes, open_bank_balances, opened_at, opened_by,
	counted_cash_at_close, system_cash_at_close, system_digital_at_close,
	cash_difference_at_close, closing_notes, close_bank_balances, closed_at, closed_by`

// Create persiste una sesión de caja recién abierta. La tabla lleva un índice
// único parcial sobre branch_id WHERE status = 'OPEN': dos aperturas
// concurrentes de la misma sucursal no pueden colarse entre el chequeo del
// caso de uso y el INSERT, la segunda recibe ErrCashBoxAlreadyOpen.
func (r *CashBoxRepo) Create(session *entity.CashBoxSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	openBalances, err := json.Marshal(session.OpenBankBalances)
	if err != nil {
		return fmt.Errorf("marshal open bank balances: %w", err)
	}
	query := `
		INSERT INTO cashbox_sessions (id, branch_id, status,
			opening_cash, opening_notes, open_bank_balances, opened_at, opened_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		session.ID, session.BranchID, session.Status,
		session.OpeningCash, nullIfEmpty(session.OpeningNotes), openBalances,
		session.OpenedAt, session.OpenedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCashBoxAlreadyOpen
		}
		return fmt.Errorf("insert cashbox session: %w", err)
	}
	return nil
}

func (r *CashBoxRepo) scanOne(row pgx.Row) (*entity.CashBoxSession, error) {
	var s entity.CashBoxSession
	var openingNotes, closingNotes, closedBy *string
	var openBalances, closeBalances []byte
	err := row.Scan(
		&s.ID, &s.BranchID, &s.Status,
		&s.OpeningCash, &openingNotes, &openBalances, &s.OpenedAt, &s.OpenedBy,
		&s.CountedCashAtClose, &s.SystemCashAtClose, &s.SystemDigitalAtClose,
		&s.CashDifferenceAtClose, &closingNotes, &closeBalances, &s.ClosedAt, &closedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cashbox session: %w", err)
	}
	s.OpeningNotes = derefStr(openingNotes)
	s.ClosingNotes = derefStr(closingNotes)
	s.ClosedBy = derefStr(closedBy)
	if len(openBalances) > 0 {
		if err := json.Unmarshal(openBalances, &s.OpenBankBalances); err != nil {
			return nil, fmt.Errorf("unmarshal open bank balances: %w", err)
		}
	}
	if len(closeBalances) > 0 {
		if err := json.Unmarshal(closeBalances, &s.CloseBankBalances); err != nil {
			return nil, fmt.Errorf("unmarshal close bank balances: %w", err)
		}
	}
	return &s, nil
}

// GetByID obtiene una sesión por ID; nil si no existe.
func (r *CashBoxRepo) GetByID(id string) (*entity.CashBoxSession, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cashbox_sessions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetOpenByBranch sesión abierta de la sucursal; nil si no hay ninguna.
func (r *CashBoxRepo) GetOpenByBranch(branchID string) (*entity.CashBoxSession, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cashbox_sessions WHERE branch_id = $1 AND status = 'OPEN'`
	return r.scanOne(r.q.QueryRow(context.Background(), query, branchID))
}

// GetOpenForUpdate sesión abierta con la fila bloqueada para el cierre.
func (r *CashBoxRepo) GetOpenForUpdate(branchID string) (*entity.CashBoxSession, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cashbox_sessions WHERE branch_id = $1 AND status = 'OPEN' FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, branchID))
}

// Update reemplaza el estado completo de la sesión (cierre).
func (r *CashBoxRepo) Update(session *entity.CashBoxSession) error {
	closeBalances, err := json.Marshal(session.CloseBankBalances)
	if err != nil {
		return fmt.Errorf("marshal close bank balances: %w", err)
	}
	query := `
		UPDATE cashbox_sessions
		SET status = $2,
			counted_cash_at_close = $3, system_cash_at_close = $4,
			system_digital_at_close = $5, cash_difference_at_close = $6,
			closing_notes = $7, close_bank_balances = $8, closed_at = $9, closed_by = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		session.ID, session.Status,
		session.CountedCashAtClose, session.SystemCashAtClose,
		session.SystemDigitalAtClose, session.CashDifferenceAtClose,
		nullIfEmpty(session.ClosingNotes), closeBalances, session.ClosedAt, nullIfEmpty(session.ClosedBy),
	)
	if err != nil {
		return fmt.Errorf("update cashbox session: %w", err)
	}
	return nil
}

// ListByBranch historial de sesiones de la sucursal por fecha de apertura.
func (r *CashBoxRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashBoxSession, error) {
	query := `
		SELECT ` + cashBoxColumns + `
		FROM cashbox_sessions
		WHERE branch_id = $1 AND opened_at >= $2 AND opened_at < $3
		ORDER BY opened_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, branchID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cashbox sessions: %w", err)
	}
	defer rows.Close()

	var out []*entity.CashBoxSession
	for rows.Next() {
		var s entity.CashBoxSession
		var openingNotes, closingNotes, closedBy *string
		var openBalances, closeBalances []byte
		if err := rows.Scan(
			&s.ID, &s.BranchID, &s.Status,
			&s.OpeningCash, &openingNotes, &openBalances, &s.OpenedAt, &s.OpenedBy,
			&s.CountedCashAtClose, &s.SystemCashAtClose, &s.SystemDigitalAtClose,
			&s.CashDifferenceAtClose, &closingNotes, &closeBalances, &s.ClosedAt, &closedBy,
		); err != nil {
			return nil, fmt.Errorf("scan cashbox session: %w", err)
		}
		s.OpeningNotes = derefStr(openingNotes)
		s.ClosingNotes = derefStr(closingNotes)
		s.ClosedBy = derefStr(closedBy)
		if len(openBalances) > 0 {
			if err := json.Unmarshal(openBalances, &s.OpenBankBalances); err != nil {
				return nil, fmt.Errorf("unmarshal open bank balances: %w", err)
			}
		}
		if len(closeBalances) > 0 {
			if err := json.Unmarshal(closeBalances, &s.CloseBankBalances); err != nil {
				return nil, fmt.Errorf("unmarshal close bank balances: %w", err)
			}
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
