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

// SaleUseCase procesa ventas de forma transaccional: cabecera, kardex,
// crédito del cliente y asientos de caja en una sola unidad atómica.
type SaleUseCase struct {
	tx TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner) *SaleUseCase {
	return &SaleUseCase{tx: tx}
}

// SaleInput entrada para ProcessSale. TicketID lo asigna el caller y debe ser
// único. ClientID es obligatorio cuando la venta es al crédito (desglose en
// cero) o cuando hay pagos con billetera.
type SaleInput struct {
	BranchID     string
	UserID       string
	TicketID     string
	Items        []entity.SaleItem
	Total        decimal.Decimal
	Currency     string
	ExchangeRate decimal.Decimal
	DocType      string
	ClientID     string
	ClientName   string
	Breakdown    entity.PaymentBreakdown
	Payments     []entity.PaymentEntry
}

// ProcessSale registra la venta completa:
//  1. cabecera SaleRecord (ticket único),
//  2. una SALIDA de kardex por línea con el stock resultante post-mutación,
//  3. si el desglose es cero, todo el total va al crédito del cliente,
//  4. un Ingreso de caja (categoría VENTA) por cada pago que no sea
//     billetera; los pagos con billetera descuentan el saldo digital.
//
// El stock puede quedar negativo: la venta procede y el producto se reporta
// en CommandResult.NegativeStock.
func (uc *SaleUseCase) ProcessSale(ctx context.Context, in SaleInput) (*CommandResult, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	result := &CommandResult{ID: in.TicketID}

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		sale := &entity.SaleRecord{
			ID:           in.TicketID,
			BranchID:     in.BranchID,
			Items:        in.Items,
			Total:        in.Total,
			Currency:     in.Currency,
			ExchangeRate: in.ExchangeRate,
			Breakdown:    in.Breakdown,
			Payments:     in.Payments,
			DocType:      in.DocType,
			ClientName:   in.ClientName,
			CreatedAt:    now,
			CreatedBy:    in.UserID,
		}
		if err := l.Sales.Create(sale); err != nil {
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
			resulting, err := applyStockDelta(l, product, in.BranchID, -item.Quantity, now)
			if err != nil {
				return err
			}
			result.flagIfNegative(item.ProductID, resulting)

			mov := &entity.StockMovement{
				ID:             uuid.New().String(),
				BranchID:       in.BranchID,
				ProductID:      item.ProductID,
				Type:           entity.MovimientoSalida,
				Quantity:       item.Quantity,
				ResultingStock: resulting,
				Reference:      in.TicketID,
				CreatedAt:      now,
				CreatedBy:      in.UserID,
			}
			if err := l.StockMovements.Create(mov); err != nil {
				return err
			}
		}

		if in.Breakdown.IsZero() {
			// Venta íntegra al crédito: sube la cuenta por cobrar del cliente.
			client, err := l.Clients.GetForUpdate(in.ClientID)
			if err != nil {
				return err
			}
			if client == nil {
				return domain.ErrNotFound
			}
			if err := l.Clients.UpdateBalances(client.ID, client.CreditUsed.Add(in.Total), client.DigitalBalance); err != nil {
				return err
			}
		}

		if err := uc.applyWalletPayments(l, in); err != nil {
			return err
		}
		return uc.emitCashMovements(l, in, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *SaleUseCase) validate(in SaleInput) error {
	if in.TicketID == "" || in.BranchID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if in.Total.IsNegative() {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	walletTotal := decimal.Zero
	for _, p := range in.Payments {
		if !p.Amount.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		if p.Method == entity.MetodoBilletera {
			walletTotal = walletTotal.Add(p.Amount)
		}
	}
	if in.Breakdown.IsZero() && in.ClientID == "" {
		return domain.ErrInvalidInput
	}
	if walletTotal.GreaterThan(decimal.Zero) && in.ClientID == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// applyWalletPayments descuenta del saldo digital del cliente los pagos con
// billetera. El saldo nunca queda negativo: si no alcanza, el comando falla.
func (uc *SaleUseCase) applyWalletPayments(l *repository.Ledger, in SaleInput) error {
	walletTotal := decimal.Zero
	for _, p := range in.Payments {
		if p.Method == entity.MetodoBilletera {
			walletTotal = walletTotal.Add(p.Amount)
		}
	}
	if !walletTotal.GreaterThan(decimal.Zero) {
		return nil
	}
	client, err := l.Clients.GetForUpdate(in.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.DigitalBalance.LessThan(walletTotal) {
		return domain.ErrConflict
	}
	return l.Clients.UpdateBalances(client.ID, client.CreditUsed, client.DigitalBalance.Sub(walletTotal))
}

// emitCashMovements asienta en caja los pagos de la venta. Con pagos
// detallados emite un Ingreso por cada uno salvo billetera (ese dinero ya
// estaba en el negocio); sin detalle, cae al camino simple de solo efectivo.
func (uc *SaleUseCase) emitCashMovements(l *repository.Ledger, in SaleInput, now time.Time) error {
	if len(in.Payments) > 0 {
		for _, p := range in.Payments {
			if p.Method == entity.MetodoBilletera {
				continue
			}
			mov := &entity.CashMovement{
				ID:            uuid.New().String(),
				BranchID:      in.BranchID,
				Type:          entity.CajaIngreso,
				PaymentMethod: p.Method,
				Concept:       "Venta " + in.TicketID,
				Amount:        p.Amount,
				Currency:      in.Currency,
				Category:      entity.CategoriaVenta,
				FinancialType: entity.FinancieroVariable,
				AccountID:     p.AccountID,
				ReferenceID:   in.TicketID,
				CreatedAt:     now,
				CreatedBy:     in.UserID,
			}
			if err := l.CashMovements.Create(mov); err != nil {
				return err
			}
		}
		return nil
	}
	if in.Breakdown.Cash.GreaterThan(decimal.Zero) {
		mov := &entity.CashMovement{
			ID:            uuid.New().String(),
			BranchID:      in.BranchID,
			Type:          entity.CajaIngreso,
			PaymentMethod: entity.MetodoEfectivo,
			Concept:       "Venta " + in.TicketID,
			Amount:        in.Breakdown.Cash,
			Currency:      in.Currency,
			Category:      entity.CategoriaVenta,
			FinancialType: entity.FinancieroVariable,
			ReferenceID:   in.TicketID,
			CreatedAt:     now,
			CreatedBy:     in.UserID,
		}
		return l.CashMovements.Create(mov)
	}
	return nil
}
