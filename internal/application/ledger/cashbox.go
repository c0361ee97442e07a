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

// CashBoxUseCase maneja el ciclo de apertura y cierre de caja por sucursal.
// El núcleo no bloquea los comandos de caja cuando no hay sesión abierta: ese
// gate es contrato del caller, no invariante del libro.
type CashBoxUseCase struct {
	tx TxRunner
}

// NewCashBoxUseCase construye el caso de uso.
func NewCashBoxUseCase(tx TxRunner) *CashBoxUseCase {
	return &CashBoxUseCase{tx: tx}
}

// OpenCashBoxInput apertura: efectivo contado inicial y saldos bancarios
// confirmados por el operador.
type OpenCashBoxInput struct {
	BranchID     string
	UserID       string
	OpeningCash  decimal.Decimal
	Notes        string
	BankBalances []entity.AccountBalance
}

// CloseCashBoxInput cierre: efectivo contado contra el efectivo según
// sistema; la diferencia es la señal de auditoría de faltantes o sobrantes.
type CloseCashBoxInput struct {
	BranchID      string
	UserID        string
	CountedCash   decimal.Decimal
	SystemCash    decimal.Decimal
	SystemDigital decimal.Decimal
	Notes         string
	BankBalances  []entity.AccountBalance
}

// OpenCashBox abre la sesión de caja de la sucursal. Falla con
// ErrCashBoxAlreadyOpen si ya existe una sesión OPEN.
func (uc *CashBoxUseCase) OpenCashBox(ctx context.Context, in OpenCashBoxInput) (*CommandResult, error) {
	if in.BranchID == "" || in.OpeningCash.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sessionID := uuid.New().String()

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		open, err := l.CashBoxes.GetOpenByBranch(in.BranchID)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrCashBoxAlreadyOpen
		}
		session := &entity.CashBoxSession{
			ID:               sessionID,
			BranchID:         in.BranchID,
			Status:           entity.CajaAbierta,
			OpeningCash:      in.OpeningCash,
			OpeningNotes:     in.Notes,
			OpenBankBalances: in.BankBalances,
			OpenedAt:         now,
			OpenedBy:         in.UserID,
		}
		return l.CashBoxes.Create(session)
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{ID: sessionID}, nil
}

// CloseCashBox cierra la sesión abierta de la sucursal y calcula la
// diferencia de cierre (contado - sistema). Falla con ErrNoOpenCashBox si no
// hay sesión OPEN.
func (uc *CashBoxUseCase) CloseCashBox(ctx context.Context, in CloseCashBoxInput) (*CommandResult, error) {
	if in.BranchID == "" || in.CountedCash.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	result := &CommandResult{}

	err := uc.tx.Run(ctx, func(l *repository.Ledger) error {
		session, err := l.CashBoxes.GetOpenForUpdate(in.BranchID)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNoOpenCashBox
		}
		session.Status = entity.CajaCerrada
		session.CountedCashAtClose = in.CountedCash
		session.SystemCashAtClose = in.SystemCash
		session.SystemDigitalAtClose = in.SystemDigital
		session.CashDifferenceAtClose = in.CountedCash.Sub(in.SystemCash)
		session.ClosingNotes = in.Notes
		session.CloseBankBalances = in.BankBalances
		session.ClosedAt = &now
		session.ClosedBy = in.UserID
		result.ID = session.ID
		return l.CashBoxes.Update(session)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
