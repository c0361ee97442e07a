package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
// Mismo esquema que ventas: líneas como snapshot JSONB, pagos en
// document_payments.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la compra con sus pagos iniciales.
func (r *PurchaseRepo) Create(purchase *entity.PurchaseRecord) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal purchase items: %w", err)
	}
	query := `
		INSERT INTO purchases (id, branch_id, items, total, currency, exchange_rate,
			payment_condition, credit_days, doc_type, supplier_name, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, purchase.BranchID, items, purchase.Total, purchase.Currency, purchase.ExchangeRate,
		purchase.PaymentCondition, purchase.CreditDays, purchase.DocType, purchase.SupplierName,
		purchase.CreatedAt, purchase.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, p := range purchase.Payments {
		if err := r.AppendPayment(purchase.ID, p); err != nil {
			return err
		}
	}
	return nil
}

// AppendPayment agrega una entrada de pago al documento (nunca reemplaza).
func (r *PurchaseRepo) AppendPayment(purchaseID string, payment entity.PaymentEntry) error {
	query := `
		INSERT INTO document_payments (document_type, document_id, method, amount, account_id, reference)
		VALUES ('purchase', $1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		purchaseID, payment.Method, payment.Amount, nullIfEmpty(payment.AccountID), nullIfEmpty(payment.Reference),
	)
	if err != nil {
		return fmt.Errorf("append purchase payment: %w", err)
	}
	return nil
}

const purchaseColumns = `id, branch_id, items, total, currency, exchange_rate,
	payment_condition, credit_days, doc_type, supplier_name, created_at, created_by`

func (r *PurchaseRepo) scanOne(row pgx.Row) (*entity.PurchaseRecord, error) {
	var p entity.PurchaseRecord
	var items []byte
	err := row.Scan(
		&p.ID, &p.BranchID, &items, &p.Total, &p.Currency, &p.ExchangeRate,
		&p.PaymentCondition, &p.CreditDays, &p.DocType, &p.SupplierName, &p.CreatedAt, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan purchase: %w", err)
	}
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, fmt.Errorf("unmarshal purchase items: %w", err)
	}
	return &p, nil
}

// GetByID obtiene la compra con sus pagos; nil si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	purchase, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || purchase == nil {
		return purchase, err
	}
	purchase.Payments, err = loadDocumentPayments(r.q, "purchase", id)
	return purchase, err
}

// GetForUpdate obtiene la compra y bloquea la fila (SELECT FOR UPDATE).
func (r *PurchaseRepo) GetForUpdate(id string) (*entity.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 FOR UPDATE`
	purchase, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || purchase == nil {
		return purchase, err
	}
	purchase.Payments, err = loadDocumentPayments(r.q, "purchase", id)
	return purchase, err
}

// ListByBranch compras de la sucursal en el rango de fechas, paginadas.
func (r *PurchaseRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.PurchaseRecord, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, branchID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseRecord
	for rows.Next() {
		var p entity.PurchaseRecord
		var items []byte
		if err := rows.Scan(
			&p.ID, &p.BranchID, &items, &p.Total, &p.Currency, &p.ExchangeRate,
			&p.PaymentCondition, &p.CreditDays, &p.DocType, &p.SupplierName, &p.CreatedAt, &p.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if err := json.Unmarshal(items, &p.Items); err != nil {
			return nil, fmt.Errorf("unmarshal purchase items: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
