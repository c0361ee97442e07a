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

var _ repository.WarehouseTransferRepository = (*WarehouseTransferRepo)(nil)

// WarehouseTransferRepo implementación de WarehouseTransferRepository sobre
// PostgreSQL. Las líneas del traslado viajan como JSONB.
type WarehouseTransferRepo struct {
	q Querier
}

// NewWarehouseTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseTransferRepository(q Querier) *WarehouseTransferRepo {
	return &WarehouseTransferRepo{q: q}
}

const warehouseTransferColumns = `id, from_branch_id, to_branch_id, items, status, notes,
	created_at, created_by, updated_at, updated_by`

// Create persiste un traslado nuevo.
func (r *WarehouseTransferRepo) Create(transfer *entity.WarehouseTransfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	items, err := json.Marshal(transfer.Items)
	if err != nil {
		return fmt.Errorf("marshal transfer items: %w", err)
	}
	query := `
		INSERT INTO warehouse_transfers (` + warehouseTransferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		transfer.ID, transfer.FromBranchID, transfer.ToBranchID, items,
		transfer.Status, nullIfEmpty(transfer.Notes),
		transfer.CreatedAt, transfer.CreatedBy, transfer.UpdatedAt, nullIfEmpty(transfer.UpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert warehouse transfer: %w", err)
	}
	return nil
}

func scanWarehouseTransfer(row pgx.Row) (*entity.WarehouseTransfer, error) {
	var t entity.WarehouseTransfer
	var items []byte
	var notes, updatedBy *string
	err := row.Scan(
		&t.ID, &t.FromBranchID, &t.ToBranchID, &items, &t.Status, &notes,
		&t.CreatedAt, &t.CreatedBy, &t.UpdatedAt, &updatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan warehouse transfer: %w", err)
	}
	t.Notes = derefStr(notes)
	t.UpdatedBy = derefStr(updatedBy)
	if err := json.Unmarshal(items, &t.Items); err != nil {
		return nil, fmt.Errorf("unmarshal transfer items: %w", err)
	}
	return &t, nil
}

// GetByID obtiene un traslado por ID; nil si no existe.
func (r *WarehouseTransferRepo) GetByID(id string) (*entity.WarehouseTransfer, error) {
	query := `SELECT ` + warehouseTransferColumns + ` FROM warehouse_transfers WHERE id = $1`
	return scanWarehouseTransfer(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el traslado y bloquea la fila para la transición de
// estado.
func (r *WarehouseTransferRepo) GetForUpdate(id string) (*entity.WarehouseTransfer, error) {
	query := `SELECT ` + warehouseTransferColumns + ` FROM warehouse_transfers WHERE id = $1 FOR UPDATE`
	return scanWarehouseTransfer(r.q.QueryRow(context.Background(), query, id))
}

// Update reemplaza líneas, estado y auditoría del traslado.
func (r *WarehouseTransferRepo) Update(transfer *entity.WarehouseTransfer) error {
	items, err := json.Marshal(transfer.Items)
	if err != nil {
		return fmt.Errorf("marshal transfer items: %w", err)
	}
	query := `
		UPDATE warehouse_transfers
		SET items = $2, status = $3, notes = $4, updated_at = $5, updated_by = $6
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		transfer.ID, items, transfer.Status, nullIfEmpty(transfer.Notes),
		transfer.UpdatedAt, nullIfEmpty(transfer.UpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("update warehouse transfer: %w", err)
	}
	return nil
}

// ListByBranch traslados donde la sucursal es origen o destino, con filtro
// opcional por estado.
func (r *WarehouseTransferRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.WarehouseTransfer, error) {
	query := `
		SELECT ` + warehouseTransferColumns + `
		FROM warehouse_transfers
		WHERE (from_branch_id = $1 OR to_branch_id = $1)
			AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouse transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.WarehouseTransfer
	for rows.Next() {
		var t entity.WarehouseTransfer
		var items []byte
		var notes, updatedBy *string
		if err := rows.Scan(
			&t.ID, &t.FromBranchID, &t.ToBranchID, &items, &t.Status, &notes,
			&t.CreatedAt, &t.CreatedBy, &t.UpdatedAt, &updatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan warehouse transfer: %w", err)
		}
		t.Notes = derefStr(notes)
		t.UpdatedBy = derefStr(updatedBy)
		if err := json.Unmarshal(items, &t.Items); err != nil {
			return nil, fmt.Errorf("unmarshal transfer items: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
