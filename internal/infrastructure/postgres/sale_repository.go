package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL. Las líneas de
// venta se guardan como snapshot JSONB (nunca se consultan relacionalmente);
// los pagos van en document_payments, tabla append-only compartida con
// compras.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus pagos iniciales. Falla con
// domain.ErrDuplicate si el ticket ya existe.
func (r *SaleRepo) Create(sale *entity.SaleRecord) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, branch_id, items, total, currency, exchange_rate,
			pay_cash, pay_card, pay_yape, pay_bank, pay_wallet,
			doc_type, client_name, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.BranchID, items, sale.Total, sale.Currency, sale.ExchangeRate,
		sale.Breakdown.Cash, sale.Breakdown.Card, sale.Breakdown.Yape, sale.Breakdown.Bank, sale.Breakdown.Wallet,
		sale.DocType, sale.ClientName, sale.CreatedAt, sale.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, p := range sale.Payments {
		if err := r.AppendPayment(sale.ID, p); err != nil {
			return err
		}
	}
	return nil
}

// AppendPayment agrega una entrada de pago al documento (nunca reemplaza).
func (r *SaleRepo) AppendPayment(saleID string, payment entity.PaymentEntry) error {
	query := `
		INSERT INTO document_payments (document_type, document_id, method, amount, account_id, reference)
		VALUES ('sale', $1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		saleID, payment.Method, payment.Amount, nullIfEmpty(payment.AccountID), nullIfEmpty(payment.Reference),
	)
	if err != nil {
		return fmt.Errorf("append sale payment: %w", err)
	}
	return nil
}

const saleColumns = `id, branch_id, items, total, currency, exchange_rate,
	pay_cash, pay_card, pay_yape, pay_bank, pay_wallet,
	doc_type, client_name, created_at, created_by`

func (r *SaleRepo) scanOne(row pgx.Row) (*entity.SaleRecord, error) {
	var s entity.SaleRecord
	var items []byte
	err := row.Scan(
		&s.ID, &s.BranchID, &items, &s.Total, &s.Currency, &s.ExchangeRate,
		&s.Breakdown.Cash, &s.Breakdown.Card, &s.Breakdown.Yape, &s.Breakdown.Bank, &s.Breakdown.Wallet,
		&s.DocType, &s.ClientName, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) loadPayments(saleID string) ([]entity.PaymentEntry, error) {
	return loadDocumentPayments(r.q, "sale", saleID)
}

// GetByID obtiene la venta con sus pagos; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || sale == nil {
		return sale, err
	}
	sale.Payments, err = r.loadPayments(id)
	return sale, err
}

// GetForUpdate obtiene la venta y bloquea la fila (SELECT FOR UPDATE).
func (r *SaleRepo) GetForUpdate(id string) (*entity.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	sale, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || sale == nil {
		return sale, err
	}
	sale.Payments, err = r.loadPayments(id)
	return sale, err
}

// ListByBranch ventas de la sucursal en el rango de fechas, paginadas.
func (r *SaleRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.SaleRecord, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, branchID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleRecord
	for rows.Next() {
		var s entity.SaleRecord
		var items []byte
		if err := rows.Scan(
			&s.ID, &s.BranchID, &items, &s.Total, &s.Currency, &s.ExchangeRate,
			&s.Breakdown.Cash, &s.Breakdown.Card, &s.Breakdown.Yape, &s.Breakdown.Bank, &s.Breakdown.Wallet,
			&s.DocType, &s.ClientName, &s.CreatedAt, &s.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// loadDocumentPayments carga los pagos de un documento en orden de inserción.
func loadDocumentPayments(q Querier, docType, docID string) ([]entity.PaymentEntry, error) {
	query := `
		SELECT method, amount, account_id, reference
		FROM document_payments
		WHERE document_type = $1 AND document_id = $2
		ORDER BY id`
	rows, err := q.Query(context.Background(), query, docType, docID)
	if err != nil {
		return nil, fmt.Errorf("load document payments: %w", err)
	}
	defer rows.Close()

	var out []entity.PaymentEntry
	for rows.Next() {
		var p entity.PaymentEntry
		var accountID, reference *string
		if err := rows.Scan(&p.Method, &p.Amount, &accountID, &reference); err != nil {
			return nil, fmt.Errorf("scan document payment: %w", err)
		}
		p.AccountID = derefStr(accountID)
		p.Reference = derefStr(reference)
		out = append(out, p)
	}
	return out, rows.Err()
}
