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

// CashTransferUseCase maneja envíos de efectivo entre sucursales. El Egreso
// en el origen se asienta al iniciar y el Ingreso en el destino al confirmar:
// entre ambos el monto está "en tránsito" y se expone vía la consulta
// CashInTransit para que la conciliación lo tenga a la vista.
type CashTransferUseCase struct {
	tx TxRunner
}

// NewCashTransferUseCase construye el caso de uso.
func NewCashTransferUseCase(tx TxRunner) *CashTransferUseCase {
	return &CashTransferUseCase{tx: tx}
}

// CashTransferInput entrada para iniciar una transferencia de efectivo.
type CashTransferInput struct {
	FromBranchID string
	ToBranchID   string
	UserID       string
	Amount       decimal.Decimal
	Currency     string
	Notes        string
}

// InitiateCashTransfer crea la transferencia PENDING y asienta de inmediato
// el Egreso en la caja del origen (categoría TRANSFERENCIA).
func (uc *CashTransferUseCase) InitiateCashTransfer(ctx context.Context, in CashTransferInput) (*CommandResult, error) {
	if in.FromBranchID == "" || in.ToBranchID == "" || in.FromBranchID == in.ToBranchID {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	transferID := uuid.New().String()

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		transfer := &entity.CashTransferRequest{
			ID:           transferID,
			FromBranchID: in.FromBranchID,
			ToBranchID:   in.ToBranchID,
			Amount:       in.Amount,
			Currency:     in.Currency,
			Status:       entity.TransferenciaPendiente,
			Notes:        in.Notes,
			CreatedAt:    now,
			CreatedBy:    in.UserID,
		}
		if err := l.CashTransfers.Create(transfer); err != nil {
			return err
		}
		mov := &entity.CashMovement{
			ID:            uuid.New().String(),
			BranchID:      in.FromBranchID,
			Type:          entity.CajaEgreso,
			PaymentMethod: entity.MetodoEfectivo,
			Concept:       "Envío de efectivo a sucursal " + in.ToBranchID,
			Amount:        in.Amount,
			Currency:      in.Currency,
			Category:      entity.CategoriaTransferencia,
			FinancialType: entity.FinancieroVariable,
			ReferenceID:   transferID,
			CreatedAt:     now,
			CreatedBy:     in.UserID,
		}
		return l.CashMovements.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{ID: transferID}, nil
}

// ConfirmCashTransfer completa una transferencia PENDING y asienta el Ingreso
// en la caja del destino. COMPLETED es terminal.
func (uc *CashTransferUseCase) ConfirmCashTransfer(ctx context.Context, transferID, userID string) (*CommandResult, error) {
	if transferID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		transfer, err := l.CashTransfers.GetForUpdate(transferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Status != entity.TransferenciaPendiente {
			return domain.ErrTransferNotPending
		}
		transfer.Status = entity.TransferenciaCompletada
		transfer.ConfirmedAt = &now
		transfer.ConfirmedBy = userID
		if err := l.CashTransfers.Update(transfer); err != nil {
			return err
		}
		mov := &entity.CashMovement{
			ID:            uuid.New().String(),
			BranchID:      transfer.ToBranchID,
			Type:          entity.CajaIngreso,
			PaymentMethod: entity.MetodoEfectivo,
			Concept:       "Recepción de efectivo de sucursal " + transfer.FromBranchID,
			Amount:        transfer.Amount,
			Currency:      transfer.Currency,
			Category:      entity.CategoriaTransferencia,
			FinancialType: entity.FinancieroVariable,
			ReferenceID:   transfer.ID,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		return l.CashMovements.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{ID: transferID}, nil
}
