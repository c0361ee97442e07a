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
// Conteos de inventario físico
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCount_BorradorSeGuardaYSeReanuda(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	seedProduct(t, store, "prod-2", "Cable USB", branchA, 4)
	uc := ledger.NewCountUseCase(tx)
	ctx := context.Background()

	// Caso: primer guardado crea la sesión en borrador.
	res, err := uc.SaveDraft(ctx, ledger.CountInput{
		BranchID: branchA,
		UserID:   testUser,
		Notes:    "conteo de fin de mes",
		Counts:   map[string]int64{"prod-1": 9},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	session, err := store.Ledger().Counts.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConteoBorrador, session.Status)
	require.Len(t, session.Items, 1)
	assert.Equal(t, int64(10), session.Items[0].SystemStock)
	assert.Equal(t, int64(9), session.Items[0].PhysicalCount)
	assert.Equal(t, int64(-1), session.Items[0].Difference)

	// Se reanuda y se agrega el segundo producto.
	_, err = uc.SaveDraft(ctx, ledger.CountInput{
		SessionID: res.ID,
		BranchID:  branchA,
		UserID:    testUser,
		Counts:    map[string]int64{"prod-1": 9, "prod-2": 6},
	})
	require.NoError(t, err)

	session, err = store.Ledger().Counts.GetByID(res.ID)
	require.NoError(t, err)
	assert.Len(t, session.Items, 2)

	// El borrador jamás toca el stock.
	assert.Equal(t, int64(10), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(4), branchQty(t, store, "prod-2", branchA))
}

func TestInventoryCount_AjusteFijaStockAlConteo(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	seedProduct(t, store, "prod-2", "Cable USB", branchA, 4)
	seedProduct(t, store, "prod-3", "Audífonos", branchA, 7)
	uc := ledger.NewCountUseCase(tx)
	ctx := context.Background()

	// Caso: faltante en prod-1, sobrante en prod-2, prod-3 cuadra exacto.
	res, err := uc.AdjustInventory(ctx, ledger.CountInput{
		BranchID: branchA,
		UserID:   testUser,
		Counts:   map[string]int64{"prod-1": 8, "prod-2": 6, "prod-3": 7},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(6), branchQty(t, store, "prod-2", branchA))
	assert.Equal(t, int64(7), branchQty(t, store, "prod-3", branchA))
	assert.Equal(t, int64(8), globalStock(t, store, "prod-1"), "el global acompaña el ajuste")
	assert.Equal(t, int64(6), globalStock(t, store, "prod-2"))

	// Kardex: un movimiento por diferencia no nula, referenciando la sesión.
	movs, err := store.Ledger().StockMovements.ListByReference(res.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2, "prod-3 cuadró: sin movimiento")
	byProduct := map[string]*entity.StockMovement{}
	for _, m := range movs {
		byProduct[m.ProductID] = m
	}
	require.Contains(t, byProduct, "prod-1")
	assert.Equal(t, entity.MovimientoSalida, byProduct["prod-1"].Type)
	assert.Equal(t, int64(2), byProduct["prod-1"].Quantity)
	assert.Equal(t, int64(8), byProduct["prod-1"].ResultingStock)
	require.Contains(t, byProduct, "prod-2")
	assert.Equal(t, entity.MovimientoEntrada, byProduct["prod-2"].Type)
	assert.Equal(t, int64(2), byProduct["prod-2"].Quantity)
	assert.Equal(t, int64(6), byProduct["prod-2"].ResultingStock)

	session, err := store.Ledger().Counts.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConteoAjustado, session.Status)
	assert.Len(t, session.Items, 3)
}

func TestInventoryCount_AjusteDeBorradorUsaStockFresco(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewCountUseCase(tx)
	ctx := context.Background()

	res, err := uc.SaveDraft(ctx, ledger.CountInput{
		BranchID: branchA,
		UserID:   testUser,
		Counts:   map[string]int64{"prod-1": 8},
	})
	require.NoError(t, err)

	// Entre el borrador y el ajuste se vendieron 3 unidades.
	saleUC := ledger.NewSaleUseCase(tx)
	_, err = saleUC.ProcessSale(ctx, saleInput("V-200", "prod-1", 3, "45"))
	require.NoError(t, err)

	// Caso: el ajuste recalcula contra el stock actual (7), no el snapshot (10).
	_, err = uc.AdjustInventory(ctx, ledger.CountInput{
		SessionID: res.ID,
		BranchID:  branchA,
		UserID:    testUser,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8), branchQty(t, store, "prod-1", branchA), "el stock queda en lo contado")

	session, err := store.Ledger().Counts.GetByID(res.ID)
	require.NoError(t, err)
	require.Len(t, session.Items, 1)
	assert.Equal(t, int64(7), session.Items[0].SystemStock, "diferencia calculada contra el stock fresco")
	assert.Equal(t, int64(1), session.Items[0].Difference)
}

func TestInventoryCount_SesionAjustadaEsTerminal(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewCountUseCase(tx)
	ctx := context.Background()

	res, err := uc.AdjustInventory(ctx, ledger.CountInput{
		BranchID: branchA,
		UserID:   testUser,
		Counts:   map[string]int64{"prod-1": 8},
	})
	require.NoError(t, err)

	// Caso 1: no se puede volver a ajustar.
	_, err = uc.AdjustInventory(ctx, ledger.CountInput{
		SessionID: res.ID,
		BranchID:  branchA,
		UserID:    testUser,
		Counts:    map[string]int64{"prod-1": 5},
	})
	require.ErrorIs(t, err, domain.ErrCountAlreadyAdjusted)
	assert.Equal(t, int64(8), branchQty(t, store, "prod-1", branchA), "el stock no se toca")

	// Caso 2: tampoco se puede seguir editando como borrador.
	_, err = uc.SaveDraft(ctx, ledger.CountInput{
		SessionID: res.ID,
		BranchID:  branchA,
		UserID:    testUser,
		Counts:    map[string]int64{"prod-1": 5},
	})
	assert.ErrorIs(t, err, domain.ErrCountAlreadyAdjusted)
}

func TestInventoryCount_EntradaInvalida(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewCountUseCase(tx)
	ctx := context.Background()

	// Caso 1: conteo negativo.
	_, err := uc.SaveDraft(ctx, ledger.CountInput{
		BranchID: branchA,
		Counts:   map[string]int64{"prod-1": -1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 2: ajuste sin sesión ni conteos.
	_, err = uc.AdjustInventory(ctx, ledger.CountInput{BranchID: branchA})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 3: producto inexistente.
	_, err = uc.SaveDraft(ctx, ledger.CountInput{
		BranchID: branchA,
		Counts:   map[string]int64{"prod-fantasma": 3},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
