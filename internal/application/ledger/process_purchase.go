package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// PurchaseUseCase procesa compras a proveedor: cabecera, entradas de kardex,
// actualización de costo (last-cost) y egresos de caja o cuenta por pagar.
type PurchaseUseCase struct {
	tx TxRunner
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(tx TxRunner) *PurchaseUseCase {
	return &PurchaseUseCase{tx: tx}
}

// PurchaseInput entrada para ProcessPurchase. SupplierID es obligatorio en
// compras al crédito (el saldo queda en la cuenta por pagar del proveedor).
type PurchaseInput struct {
	BranchID         string
	UserID           string
	Items            []entity.PurchaseItem
	Total            decimal.Decimal
	Currency         string
	ExchangeRate     decimal.Decimal
	DocType          string
	SupplierID       string
	SupplierName     string
	PaymentCondition string // Contado | Credito
	CreditDays       int
	Payments         []entity.PaymentEntry
}

// ProcessPurchase registra la compra completa: cabecera, una ENTRADA de
// kardex por línea, sobrescritura del costo del producto con el último costo
// de compra, y según la condición: Contado emite un Egreso de caja (COMPRA)
// por cada pago detallado; Credito no toca caja y sube la cuenta por pagar.
func (uc *PurchaseUseCase) ProcessPurchase(ctx context.Context, in PurchaseInput) (*CommandResult, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	purchaseID := uuid.New().String()
	result := &CommandResult{ID: purchaseID}

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		purchase := &entity.PurchaseRecord{
			ID:               purchaseID,
			BranchID:         in.BranchID,
			Items:            in.Items,
			Total:            in.Total,
			Currency:         in.Currency,
			ExchangeRate:     in.ExchangeRate,
			PaymentCondition: in.PaymentCondition,
			CreditDays:       in.CreditDays,
			Payments:         in.Payments,
			DocType:          in.DocType,
			SupplierName:     in.SupplierName,
			CreatedAt:        now,
			CreatedBy:        in.UserID,
		}
		if err := l.Purchases.Create(purchase); err != nil {
			return err
		}

		for _, item := range in.Items {
			product, err := l.Products.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			resulting, err := applyStockDelta(l, product, in.BranchID, item.Quantity, now)
			if err != nil {
				return err
			}
			// Última compra manda: el costo del producto se sobrescribe,
			// sin promedio ponderado.
			if err := l.Products.UpdateCost(item.ProductID, item.UnitCost); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:             uuid.New().String(),
				BranchID:       in.BranchID,
				ProductID:      item.ProductID,
				Type:           entity.MovimientoEntrada,
				Quantity:       item.Quantity,
				ResultingStock: resulting,
				Reference:      purchaseID,
				CreatedAt:      now,
				CreatedBy:      in.UserID,
			}
			if err := l.StockMovements.Create(mov); err != nil {
				return err
			}
		}

		if in.PaymentCondition == entity.CondicionCredito {
			supplier, err := l.Suppliers.GetForUpdate(in.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return domain.ErrNotFound
			}
			return l.Suppliers.UpdateBalances(supplier.ID, supplier.PayableBalance.Add(in.Total), supplier.DigitalBalance)
		}

		for _, p := range in.Payments {
			mov := &entity.CashMovement{
				ID:            uuid.New().String(),
				BranchID:      in.BranchID,
				Type:          entity.CajaEgreso,
				PaymentMethod: p.Method,
				Concept:       "Compra a " + in.SupplierName,
				Amount:        p.Amount,
				Currency:      in.Currency,
				Category:      entity.CategoriaCompra,
				FinancialType: entity.FinancieroVariable,
				AccountID:     p.AccountID,
				ReferenceID:   purchaseID,
				CreatedAt:     now,
				CreatedBy:     in.UserID,
			}
			if err := l.CashMovements.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *PurchaseUseCase) validate(in PurchaseInput) error {
	if in.BranchID == "" || len(in.Items) == 0 || in.Total.IsNegative() {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitCost.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	switch in.PaymentCondition {
	case entity.CondicionContado:
		for _, p := range in.Payments {
			if !p.Amount.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
		}
	case entity.CondicionCredito:
		if in.SupplierID == "" || in.CreditDays < 0 {
			return domain.ErrInvalidInput
		}
		// El crédito deja el total entero en la cuenta por pagar; un pago
		// adjunto haría ver el documento como parcialmente pagado.
		if len(in.Payments) > 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
