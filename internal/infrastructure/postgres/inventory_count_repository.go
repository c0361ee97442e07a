package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo implementación de InventoryCountRepository sobre
// PostgreSQL. Las líneas de conteo se guardan como JSONB.
type InventoryCountRepo struct {
	q Querier
}

// NewInventoryCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryCountRepository(q Querier) *InventoryCountRepo {
	return &InventoryCountRepo{q: q}
}

const inventoryCountColumns = `id, branch_id, status, items, notes, created_at, created_by, updated_at`

// Create persiste una sesión de conteo nueva.
func (r *InventoryCountRepo) Create(session *entity.InventoryCountSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	items, err := json.Marshal(session.Items)
	if err != nil {
		return fmt.Errorf("marshal count items: %w", err)
	}
	query := `
		INSERT INTO inventory_counts (` + inventoryCountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		session.ID, session.BranchID, session.Status, items, nullIfEmpty(session.Notes),
		session.CreatedAt, session.CreatedBy, session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory count: %w", err)
	}
	return nil
}

func scanInventoryCount(row pgx.Row) (*entity.InventoryCountSession, error) {
	var s entity.InventoryCountSession
	var items []byte
	var notes *string
	err := row.Scan(&s.ID, &s.BranchID, &s.Status, &items, &notes, &s.CreatedAt, &s.CreatedBy, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan inventory count: %w", err)
	}
	s.Notes = derefStr(notes)
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal count items: %w", err)
	}
	return &s, nil
}

// GetByID obtiene una sesión por ID; nil si no existe.
func (r *InventoryCountRepo) GetByID(id string) (*entity.InventoryCountSession, error) {
	query := `SELECT ` + inventoryCountColumns + ` FROM inventory_counts WHERE id = $1`
	return scanInventoryCount(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la sesión y bloquea la fila para el ajuste.
func (r *InventoryCountRepo) GetForUpdate(id string) (*entity.InventoryCountSession, error) {
	query := `SELECT ` + inventoryCountColumns + ` FROM inventory_counts WHERE id = $1 FOR UPDATE`
	return scanInventoryCount(r.q.QueryRow(context.Background(), query, id))
}

// Update reemplaza líneas, estado y notas de la sesión.
func (r *InventoryCountRepo) Update(session *entity.InventoryCountSession) error {
	items, err := json.Marshal(session.Items)
	if err != nil {
		return fmt.Errorf("marshal count items: %w", err)
	}
	query := `
		UPDATE inventory_counts
		SET status = $2, items = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		session.ID, session.Status, items, nullIfEmpty(session.Notes), session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory count: %w", err)
	}
	return nil
}

// ListByBranch sesiones de la sucursal, con filtro opcional por estado.
func (r *InventoryCountRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.InventoryCountSession, error) {
	query := `
		SELECT ` + inventoryCountColumns + `
		FROM inventory_counts
		WHERE branch_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory counts: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryCountSession
	for rows.Next() {
		var s entity.InventoryCountSession
		var items []byte
		var notes *string
		if err := rows.Scan(&s.ID, &s.BranchID, &s.Status, &items, &notes, &s.CreatedAt, &s.CreatedBy, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		s.Notes = derefStr(notes)
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal count items: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
