package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.BranchStockRepository = (*BranchStockRepo)(nil)

// BranchStockRepo implementación de BranchStockRepository sobre PostgreSQL.
type BranchStockRepo struct {
	q Querier
}

// NewBranchStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchStockRepository(q Querier) *BranchStockRepo {
	return &BranchStockRepo{q: q}
}

// Get obtiene el stock de un producto en una sucursal. Devuelve fila en cero
// si el producto nunca se movió ahí.
func (r *BranchStockRepo) Get(productID, branchID string) (*entity.BranchStock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM branch_stock WHERE product_id = $1 AND branch_id = $2`
	return r.scan(r.q.QueryRow(context.Background(), query, productID, branchID), productID, branchID)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *BranchStockRepo) GetForUpdate(productID, branchID string) (*entity.BranchStock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM branch_stock WHERE product_id = $1 AND branch_id = $2
		FOR UPDATE`
	return r.scan(r.q.QueryRow(context.Background(), query, productID, branchID), productID, branchID)
}

func (r *BranchStockRepo) scan(row pgx.Row, productID, branchID string) (*entity.BranchStock, error) {
	var s entity.BranchStock
	err := row.Scan(&s.ProductID, &s.BranchID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BranchStock{ProductID: productID, BranchID: branchID}, nil
		}
		return nil, fmt.Errorf("get branch stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por producto y sucursal).
func (r *BranchStockRepo) Upsert(stock *entity.BranchStock) error {
	query := `
		INSERT INTO branch_stock (product_id, branch_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, branch_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.BranchID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert branch stock: %w", err)
	}
	return nil
}

// ListByBranch existencias de la sucursal, paginadas.
func (r *BranchStockRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.BranchStock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM branch_stock WHERE branch_id = $1
		ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branch stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.BranchStock
	for rows.Next() {
		var s entity.BranchStock
		if err := rows.Scan(&s.ProductID, &s.BranchID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch stock: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
