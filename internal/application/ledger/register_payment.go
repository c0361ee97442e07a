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

// PaymentUseCase asigna cobros de cuentas por cobrar y pagos a proveedor.
// Lógica simétrica en ambos lados: el monto asignado baja el saldo (con piso
// en cero) y el excedente recibido va al saldo digital. Si el documento
// referenciado no existe, el comando entero falla sin efectos parciales.
type PaymentUseCase struct {
	tx TxRunner
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(tx TxRunner) *PaymentUseCase {
	return &PaymentUseCase{tx: tx}
}

// PaymentInput entrada común a ambos lados. Amount es el monto asignado al
// documento; Payment.Amount (si es mayor) es el monto recibido y la
// diferencia es excedente que va a la billetera.
type PaymentInput struct {
	BranchID   string
	UserID     string
	DocumentID string // ticket de venta o id de compra
	PartyID    string // cliente o proveedor
	Amount     decimal.Decimal
	Currency   string
	Payment    entity.PaymentEntry
}

// RegisterReceivablePayment cobra una venta al crédito: agrega el pago al
// documento, baja creditUsed del cliente (piso cero), acredita el excedente
// a su billetera y asienta un único Ingreso de caja por el monto recibido.
func (uc *PaymentUseCase) RegisterReceivablePayment(ctx context.Context, in PaymentInput) (*CommandResult, error) {
	received, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	result := &CommandResult{ID: in.DocumentID}

	err = uc.tx.Run(ctx, func(l *repository.Ledger) error {
		sale, err := l.Sales.GetForUpdate(in.DocumentID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		entry := in.Payment
		entry.Amount = received
		if err := l.Sales.AppendPayment(sale.ID, entry); err != nil {
			return err
		}

		client, err := l.Clients.GetForUpdate(in.PartyID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		newCredit := client.CreditUsed.Sub(in.Amount)
		if newCredit.IsNegative() {
			newCredit = decimal.Zero
		}
		excess := received.Sub(in.Amount)
		newDigital := client.DigitalBalance
		if excess.GreaterThan(decimal.Zero) {
			newDigital = newDigital.Add(excess)
		}
		if err := l.Clients.UpdateBalances(client.ID, newCredit, newDigital); err != nil {
			return err
		}

		mov := &entity.CashMovement{
			ID:            uuid.New().String(),
			BranchID:      in.BranchID,
			Type:          entity.CajaIngreso,
			PaymentMethod: entry.Method,
			Concept:       "Cobranza " + sale.ID,
			Amount:        received,
			Currency:      in.Currency,
			Category:      entity.CategoriaCobranza,
			FinancialType: entity.FinancieroVariable,
			AccountID:     entry.AccountID,
			ReferenceID:   sale.ID,
			CreatedAt:     now,
			CreatedBy:     in.UserID,
		}
		return l.CashMovements.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterPayablePayment paga una compra al crédito: agrega el pago al
// documento, baja la cuenta por pagar del proveedor (piso cero), acredita el
// excedente a su saldo digital y asienta un único Egreso de caja.
func (uc *PaymentUseCase) RegisterPayablePayment(ctx context.Context, in PaymentInput) (*CommandResult, error) {
	received, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	result := &CommandResult{ID: in.DocumentID}

	err = uc.tx.Run(ctx, func(l *repository.Ledger) error {
		purchase, err := l.Purchases.GetForUpdate(in.DocumentID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		entry := in.Payment
		entry.Amount = received
		if err := l.Purchases.AppendPayment(purchase.ID, entry); err != nil {
			return err
		}

		supplier, err := l.Suppliers.GetForUpdate(in.PartyID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
		newPayable := supplier.PayableBalance.Sub(in.Amount)
		if newPayable.IsNegative() {
			newPayable = decimal.Zero
		}
		excess := received.Sub(in.Amount)
		newDigital := supplier.DigitalBalance
		if excess.GreaterThan(decimal.Zero) {
			newDigital = newDigital.Add(excess)
		}
		if err := l.Suppliers.UpdateBalances(supplier.ID, newPayable, newDigital); err != nil {
			return err
		}

		mov := &entity.CashMovement{
			ID:            uuid.New().String(),
			BranchID:      in.BranchID,
			Type:          entity.CajaEgreso,
			PaymentMethod: entry.Method,
			Concept:       "Pago a proveedor, compra " + purchase.ID,
			Amount:        received,
			Currency:      in.Currency,
			Category:      entity.CategoriaPagoProveedor,
			FinancialType: entity.FinancieroVariable,
			AccountID:     entry.AccountID,
			ReferenceID:   purchase.ID,
			CreatedAt:     now,
			CreatedBy:     in.UserID,
		}
		return l.CashMovements.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// validate devuelve el monto efectivamente recibido: Payment.Amount si fue
// informado, si no el monto asignado. Recibir menos de lo asignado no tiene
// sentido contable y se rechaza.
func (uc *PaymentUseCase) validate(in PaymentInput) (decimal.Decimal, error) {
	if in.BranchID == "" || in.DocumentID == "" || in.PartyID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	received := in.Amount
	if !in.Payment.Amount.IsZero() {
		received = in.Payment.Amount
	}
	if received.LessThan(in.Amount) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return received, nil
}
