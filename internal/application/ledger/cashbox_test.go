package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Apertura y cierre de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestCashBox_AperturaYCierreConDiferencia(t *testing.T) {
	store, tx := newEnv(t)
	uc := ledger.NewCashBoxUseCase(tx)
	ctx := context.Background()

	// Caso: apertura con efectivo inicial y saldo bancario confirmado.
	res, err := uc.OpenCashBox(ctx, ledger.OpenCashBoxInput{
		BranchID:    branchA,
		UserID:      testUser,
		OpeningCash: d("100"),
		Notes:       "apertura turno mañana",
		BankBalances: []entity.AccountBalance{
			{AccountID: "acc-1", Amount: d("1500")},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	open, err := store.Ledger().CashBoxes.GetOpenByBranch(branchA)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, entity.CajaAbierta, open.Status)
	assert.True(t, open.OpeningCash.Equal(d("100")))
	require.Len(t, open.OpenBankBalances, 1)

	// Cierre: se contaron 240 con 250 según sistema -> faltante de 10.
	closed, err := uc.CloseCashBox(ctx, ledger.CloseCashBoxInput{
		BranchID:    branchA,
		UserID:      testUser,
		CountedCash: d("240"),
		SystemCash:  d("250"),
		Notes:       "faltante reportado",
	})
	require.NoError(t, err)
	assert.Equal(t, res.ID, closed.ID, "se cierra la misma sesión que se abrió")

	session, err := store.Ledger().CashBoxes.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CajaCerrada, session.Status)
	assert.True(t, session.CashDifferenceAtClose.Equal(d("-10")), "diferencia = contado - sistema")
	require.NotNil(t, session.ClosedAt)
	assert.Equal(t, testUser, session.ClosedBy)

	// Tras el cierre la sucursal queda sin sesión abierta.
	open, err = store.Ledger().CashBoxes.GetOpenByBranch(branchA)
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestCashBox_DobleAperturaFalla(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewCashBoxUseCase(tx)
	ctx := context.Background()

	_, err := uc.OpenCashBox(ctx, ledger.OpenCashBoxInput{BranchID: branchA, UserID: testUser, OpeningCash: d("100")})
	require.NoError(t, err)

	// Caso: segunda apertura con la primera aún abierta.
	_, err = uc.OpenCashBox(ctx, ledger.OpenCashBoxInput{BranchID: branchA, UserID: testUser, OpeningCash: d("50")})
	assert.ErrorIs(t, err, domain.ErrCashBoxAlreadyOpen)
}

func TestCashBox_AperturaConcurrenteLaDetieneElRepositorio(t *testing.T) {
	store, tx := newEnv(t)
	uc := ledger.NewCashBoxUseCase(tx)
	ctx := context.Background()

	// Caso: otra apertura se coló después del chequeo del caso de uso
	// (simulada insertando la sesión OPEN directo en el repositorio).
	// El repositorio mismo hace de última línea de defensa, igual que el
	// índice único parcial de postgres.
	require.NoError(t, store.Ledger().CashBoxes.Create(&entity.CashBoxSession{
		BranchID:    branchA,
		Status:      entity.CajaAbierta,
		OpeningCash: d("100"),
		OpenedBy:    "user-rival",
	}))

	err := store.Ledger().CashBoxes.Create(&entity.CashBoxSession{
		BranchID:    branchA,
		Status:      entity.CajaAbierta,
		OpeningCash: d("50"),
		OpenedBy:    testUser,
	})
	require.ErrorIs(t, err, domain.ErrCashBoxAlreadyOpen, "el insert directo también respeta la unicidad")

	// Y el camino normal del caso de uso reporta lo mismo.
	_, err = uc.OpenCashBox(ctx, ledger.OpenCashBoxInput{BranchID: branchA, UserID: testUser, OpeningCash: d("50")})
	assert.ErrorIs(t, err, domain.ErrCashBoxAlreadyOpen)
}

func TestCashBox_AperturasPorSucursalSonIndependientes(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewCashBoxUseCase(tx)
	ctx := context.Background()

	_, err := uc.OpenCashBox(ctx, ledger.OpenCashBoxInput{BranchID: branchA, UserID: testUser, OpeningCash: d("100")})
	require.NoError(t, err)

	// Caso: otra sucursal abre su propia caja sin conflicto.
	_, err = uc.OpenCashBox(ctx, ledger.OpenCashBoxInput{BranchID: branchB, UserID: testUser, OpeningCash: d("80")})
	assert.NoError(t, err)
}

func TestCashBox_CierreSinAperturaFalla(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewCashBoxUseCase(tx)

	_, err := uc.CloseCashBox(context.Background(), ledger.CloseCashBoxInput{
		BranchID:    branchA,
		UserID:      testUser,
		CountedCash: d("100"),
		SystemCash:  d("100"),
	})
	assert.ErrorIs(t, err, domain.ErrNoOpenCashBox)
}

func TestCashBox_EfectivoInicialNegativoEsInvalido(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewCashBoxUseCase(tx)

	_, err := uc.OpenCashBox(context.Background(), ledger.OpenCashBoxInput{
		BranchID:    branchA,
		UserID:      testUser,
		OpeningCash: d("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
