package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// CountUseCase maneja sesiones de inventario físico: borradores reanudables y
// el ajuste terminal que corrige el stock al conteo físico.
type CountUseCase struct {
	tx TxRunner
}

// NewCountUseCase construye el caso de uso.
func NewCountUseCase(tx TxRunner) *CountUseCase {
	return &CountUseCase{tx: tx}
}

// CountInput entrada para guardar o ajustar un conteo. SessionID vacío crea
// una sesión nueva; con SessionID se actualiza (o ajusta) un borrador.
type CountInput struct {
	SessionID string
	BranchID  string
	UserID    string
	Notes     string
	Counts    map[string]int64 // productID -> conteo físico
}

// SaveDraft guarda un borrador de conteo, creándolo o actualizándolo. Los
// borradores capturan el stock del sistema al momento de guardar; el ajuste
// posterior recalcula contra el stock fresco.
func (uc *CountUseCase) SaveDraft(ctx context.Context, in CountInput) (*CommandResult, error) {
	if in.BranchID == "" || len(in.Counts) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, c := range in.Counts {
		if c < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	result := &CommandResult{}

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		items, err := uc.buildItems(l, in)
		if err != nil {
			return err
		}
		if in.SessionID == "" {
			session := &entity.InventoryCountSession{
				ID:        uuid.New().String(),
				BranchID:  in.BranchID,
				Status:    entity.ConteoBorrador,
				Items:     items,
				Notes:     in.Notes,
				CreatedAt: now,
				CreatedBy: in.UserID,
				UpdatedAt: now,
			}
			result.ID = session.ID
			return l.Counts.Create(session)
		}
		session, err := l.Counts.GetForUpdate(in.SessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNotFound
		}
		if session.Status != entity.ConteoBorrador {
			return domain.ErrCountAlreadyAdjusted
		}
		session.Items = items
		session.Notes = in.Notes
		session.UpdatedAt = now
		result.ID = session.ID
		return l.Counts.Update(session)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdjustInventory aplica el conteo físico: fija el stock de cada producto al
// valor contado y asienta un movimiento de kardex por cada diferencia no nula
// (ENTRADA si sobró, SALIDA si faltó) referenciando la sesión. La sesión queda
// ADJUSTED, estado terminal.
func (uc *CountUseCase) AdjustInventory(ctx context.Context, in CountInput) (*CommandResult, error) {
	if in.BranchID == "" || (in.SessionID == "" && len(in.Counts) == 0) {
		return nil, domain.ErrInvalidInput
	}
	for _, c := range in.Counts {
		if c < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	result := &CommandResult{}

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		var session *entity.InventoryCountSession
		counts := in.Counts
		if in.SessionID != "" {
			var err error
			session, err = l.Counts.GetForUpdate(in.SessionID)
			if err != nil {
				return err
			}
			if session == nil {
				return domain.ErrNotFound
			}
			if session.Status != entity.ConteoBorrador {
				return domain.ErrCountAlreadyAdjusted
			}
			if len(counts) == 0 {
				counts = make(map[string]int64, len(session.Items))
				for _, item := range session.Items {
					counts[item.ProductID] = item.PhysicalCount
				}
			}
		} else {
			session = &entity.InventoryCountSession{
				ID:        uuid.New().String(),
				BranchID:  in.BranchID,
				CreatedAt: now,
				CreatedBy: in.UserID,
			}
		}

		// La diferencia se calcula contra el stock bloqueado al momento del
		// ajuste, nunca contra el snapshot del borrador.
		items := make([]entity.CountItem, 0, len(counts))
		for productID, counted := range counts {
			product, err := l.Products.GetForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			bs, err := l.BranchStocks.GetForUpdate(productID, in.BranchID)
			if err != nil {
				return err
			}
			diff := counted - bs.Quantity
			items = append(items, entity.CountItem{
				ProductID:     productID,
				Name:          product.Name,
				SystemStock:   bs.Quantity,
				PhysicalCount: counted,
				Difference:    diff,
			})
			if diff == 0 {
				continue
			}
			bs.Quantity = counted
			bs.UpdatedAt = now
			if err := l.BranchStocks.Upsert(bs); err != nil {
				return err
			}
			if err := l.Products.UpdateStock(productID, product.Stock+diff); err != nil {
				return err
			}
			movType := entity.MovimientoEntrada
			qty := diff
			if diff < 0 {
				movType = entity.MovimientoSalida
				qty = -diff
			}
			mov := &entity.StockMovement{
				ID:             uuid.New().String(),
				BranchID:       in.BranchID,
				ProductID:      productID,
				Type:           movType,
				Quantity:       qty,
				ResultingStock: counted,
				Reference:      session.ID,
				Notes:          "Ajuste por inventario físico",
				CreatedAt:      now,
				CreatedBy:      in.UserID,
			}
			if err := l.StockMovements.Create(mov); err != nil {
				return err
			}
		}

		session.Status = entity.ConteoAjustado
		session.Items = items
		if in.Notes != "" {
			session.Notes = in.Notes
		}
		session.UpdatedAt = now
		result.ID = session.ID
		if in.SessionID == "" {
			return l.Counts.Create(session)
		}
		return l.Counts.Update(session)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *CountUseCase) buildItems(l *repository.Ledger, in CountInput) ([]entity.CountItem, error) {
	items := make([]entity.CountItem, 0, len(in.Counts))
	for productID, counted := range in.Counts {
		product, err := l.Products.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		bs, err := l.BranchStocks.Get(productID, in.BranchID)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.CountItem{
			ProductID:     productID,
			Name:          product.Name,
			SystemStock:   bs.Quantity,
			PhysicalCount: counted,
			Difference:    counted - bs.Quantity,
		})
	}
	return items, nil
}
