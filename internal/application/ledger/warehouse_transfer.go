package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// TransferUseCase maneja el ciclo de traslados de stock entre sucursales.
// El stock recién se mueve al confirmar: salida en el origen y entrada en el
// destino en la misma transacción, ambos movimientos con el id del traslado.
type TransferUseCase struct {
	tx TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(tx TxRunner) *TransferUseCase {
	return &TransferUseCase{tx: tx}
}

// TransferInput entrada para iniciar un envío directo o una solicitud.
type TransferInput struct {
	FromBranchID string
	ToBranchID   string
	UserID       string
	Items        []entity.TransferItem
	Notes        string
}

// FulfillInput despacho de una solicitud: cantidades por producto ajustadas
// por el origen. AllowNegativeStock habilita despachar más de lo disponible
// (queda como condición de stock negativo al confirmar).
type FulfillInput struct {
	TransferID         string
	UserID             string
	Quantities         map[string]int64 // productID -> cantidad a despachar
	AllowNegativeStock bool
}

// InitiateWarehouseTransfer crea un envío directo: nace PENDING, sin mover
// stock todavía.
func (uc *TransferUseCase) InitiateWarehouseTransfer(ctx context.Context, in TransferInput) (*CommandResult, error) {
	return uc.create(ctx, in, entity.TrasladoPendiente)
}

// RequestWarehouseTransfer crea una solicitud de la sucursal destino: nace
// REQUESTED y pasa a PENDING cuando el origen la despacha.
func (uc *TransferUseCase) RequestWarehouseTransfer(ctx context.Context, in TransferInput) (*CommandResult, error) {
	return uc.create(ctx, in, entity.TrasladoSolicitado)
}

func (uc *TransferUseCase) create(ctx context.Context, in TransferInput, status string) (*CommandResult, error) {
	if in.FromBranchID == "" || in.ToBranchID == "" || in.FromBranchID == in.ToBranchID || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range in.Items {
		if in.Items[i].ProductID == "" || in.Items[i].Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		in.Items[i].OriginalRequestedQty = in.Items[i].Quantity
	}
	now := time.Now()
	transferID := uuid.New().String()

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		for _, item := range in.Items {
			product, err := l.Products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
		}
		transfer := &entity.WarehouseTransfer{
			ID:           transferID,
			FromBranchID: in.FromBranchID,
			ToBranchID:   in.ToBranchID,
			Items:        in.Items,
			Status:       status,
			Notes:        in.Notes,
			CreatedAt:    now,
			CreatedBy:    in.UserID,
			UpdatedAt:    now,
			UpdatedBy:    in.UserID,
		}
		return l.Transfers.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{ID: transferID}, nil
}

// FulfillTransferRequest pasa una solicitud REQUESTED a PENDING con las
// cantidades que el origen decide despachar. La cantidad pedida original se
// conserva en cada línea para auditoría. Despachar por encima del stock
// disponible requiere confirmación explícita del caller.
func (uc *TransferUseCase) FulfillTransferRequest(ctx context.Context, in FulfillInput) (*CommandResult, error) {
	if in.TransferID == "" || len(in.Quantities) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, q := range in.Quantities {
		if q <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		transfer, err := l.Transfers.GetForUpdate(in.TransferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Status != entity.TrasladoSolicitado {
			return domain.ErrTransferNotRequested
		}
		// Cada cantidad debe corresponder a una línea de la solicitud; un
		// id desconocido es un error del caller, no algo que ignorar.
		lines := make(map[string]bool, len(transfer.Items))
		for _, item := range transfer.Items {
			lines[item.ProductID] = true
		}
		for productID := range in.Quantities {
			if !lines[productID] {
				return domain.ErrInvalidInput
			}
		}
		for i := range transfer.Items {
			qty, ok := in.Quantities[transfer.Items[i].ProductID]
			if !ok {
				continue
			}
			if !in.AllowNegativeStock {
				bs, err := l.BranchStocks.Get(transfer.Items[i].ProductID, transfer.FromBranchID)
				if err != nil {
					return err
				}
				if bs.Quantity < qty {
					return domain.ErrConflict
				}
			}
			transfer.Items[i].Quantity = qty
		}
		transfer.Status = entity.TrasladoPendiente
		transfer.UpdatedAt = now
		transfer.UpdatedBy = in.UserID
		return l.Transfers.Update(transfer)
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{ID: in.TransferID}, nil
}

// ConfirmWarehouseTransfer completa un traslado PENDING: resta el stock del
// origen y suma el del destino en la misma transacción, con una SALIDA y una
// ENTRADA de kardex que comparten el id del traslado como referencia.
func (uc *TransferUseCase) ConfirmWarehouseTransfer(ctx context.Context, transferID, userID string) (*CommandResult, error) {
	if transferID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	result := &CommandResult{ID: transferID}

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		transfer, err := l.Transfers.GetForUpdate(transferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Status != entity.TrasladoPendiente {
			return domain.ErrTransferNotPending
		}

		for _, item := range transfer.Items {
			product, err := l.Products.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			fromResulting, err := applyStockDelta(l, product, transfer.FromBranchID, -item.Quantity, now)
			if err != nil {
				return err
			}
			result.flagIfNegative(item.ProductID, fromResulting)
			toResulting, err := applyStockDelta(l, product, transfer.ToBranchID, item.Quantity, now)
			if err != nil {
				return err
			}

			out := &entity.StockMovement{
				ID:             uuid.New().String(),
				BranchID:       transfer.FromBranchID,
				ProductID:      item.ProductID,
				Type:           entity.MovimientoSalida,
				Quantity:       item.Quantity,
				ResultingStock: fromResulting,
				Reference:      transfer.ID,
				CreatedAt:      now,
				CreatedBy:      userID,
			}
			if err := l.StockMovements.Create(out); err != nil {
				return err
			}
			inMov := &entity.StockMovement{
				ID:             uuid.New().String(),
				BranchID:       transfer.ToBranchID,
				ProductID:      item.ProductID,
				Type:           entity.MovimientoEntrada,
				Quantity:       item.Quantity,
				ResultingStock: toResulting,
				Reference:      transfer.ID,
				CreatedAt:      now,
				CreatedBy:      userID,
			}
			if err := l.StockMovements.Create(inMov); err != nil {
				return err
			}
		}

		transfer.Status = entity.TrasladoCompletado
		transfer.UpdatedAt = now
		transfer.UpdatedBy = userID
		return l.Transfers.Update(transfer)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RejectWarehouseTransfer rechaza un traslado REQUESTED o PENDING. Estado
// terminal: jamás muta stock en ninguna de las dos sucursales.
func (uc *TransferUseCase) RejectWarehouseTransfer(ctx context.Context, transferID, userID, notes string) (*CommandResult, error) {
	if transferID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		transfer, err := l.Transfers.GetForUpdate(transferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Status != entity.TrasladoSolicitado && transfer.Status != entity.TrasladoPendiente {
			return domain.ErrConflict
		}
		transfer.Status = entity.TrasladoRechazado
		if notes != "" {
			transfer.Notes = notes
		}
		transfer.UpdatedAt = now
		transfer.UpdatedBy = userID
		return l.Transfers.Update(transfer)
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{ID: transferID}, nil
}
