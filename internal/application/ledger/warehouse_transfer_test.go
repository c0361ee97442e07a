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
// Traslados de stock entre sucursales
// ──────────────────────────────────────────────────────────────────────────────

func transferInput(productID string, qty int64) ledger.TransferInput {
	return ledger.TransferInput{
		FromBranchID: branchA,
		ToBranchID:   branchB,
		UserID:       testUser,
		Items: []entity.TransferItem{
			{ProductID: productID, Name: "Producto", Quantity: qty},
		},
	}
}

func TestWarehouseTransfer_EnvioDirectoNaceSinMoverStock(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewTransferUseCase(tx)

	// Caso: envío directo. Nace PENDING y el stock queda quieto.
	res, err := uc.InitiateWarehouseTransfer(context.Background(), transferInput("prod-1", 4))
	require.NoError(t, err)

	transfer, err := store.Ledger().Transfers.GetByID(res.ID)
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.Equal(t, entity.TrasladoPendiente, transfer.Status)
	assert.Equal(t, int64(10), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(0), branchQty(t, store, "prod-1", branchB))
}

func TestWarehouseTransfer_CicloSolicitudDespachoConfirmacion(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	// Caso: el destino solicita 6 unidades.
	res, err := uc.RequestWarehouseTransfer(ctx, transferInput("prod-1", 6))
	require.NoError(t, err)

	transfer, err := store.Ledger().Transfers.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TrasladoSolicitado, transfer.Status)

	// El origen despacha solo 4.
	_, err = uc.FulfillTransferRequest(ctx, ledger.FulfillInput{
		TransferID: res.ID,
		UserID:     testUser,
		Quantities: map[string]int64{"prod-1": 4},
	})
	require.NoError(t, err)

	transfer, err = store.Ledger().Transfers.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TrasladoPendiente, transfer.Status)
	require.Len(t, transfer.Items, 1)
	assert.Equal(t, int64(4), transfer.Items[0].Quantity, "cantidad ajustada por el origen")
	assert.Equal(t, int64(6), transfer.Items[0].OriginalRequestedQty, "lo pedido se conserva para auditoría")

	// Hasta aquí el stock sigue intacto.
	assert.Equal(t, int64(10), branchQty(t, store, "prod-1", branchA))

	// El destino confirma la recepción: recién ahí se mueve el stock.
	_, err = uc.ConfirmWarehouseTransfer(ctx, res.ID, testUser)
	require.NoError(t, err)

	assert.Equal(t, int64(6), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(4), branchQty(t, store, "prod-1", branchB))
	assert.Equal(t, int64(10), globalStock(t, store, "prod-1"), "el global no cambia: solo se redistribuye")

	// Kardex: SALIDA en origen y ENTRADA en destino con la misma referencia.
	movs, err := store.Ledger().StockMovements.ListByReference(res.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	byType := map[string]*entity.StockMovement{}
	for _, m := range movs {
		byType[m.Type] = m
	}
	require.Contains(t, byType, entity.MovimientoSalida)
	require.Contains(t, byType, entity.MovimientoEntrada)
	assert.Equal(t, branchA, byType[entity.MovimientoSalida].BranchID)
	assert.Equal(t, int64(6), byType[entity.MovimientoSalida].ResultingStock)
	assert.Equal(t, branchB, byType[entity.MovimientoEntrada].BranchID)
	assert.Equal(t, int64(4), byType[entity.MovimientoEntrada].ResultingStock)

	transfer, err = store.Ledger().Transfers.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TrasladoCompletado, transfer.Status)
}

func TestWarehouseTransfer_DespachoSinStockRequiereConfirmacion(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 3)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	res, err := uc.RequestWarehouseTransfer(ctx, transferInput("prod-1", 5))
	require.NoError(t, err)

	// Caso 1: despachar 5 con 3 disponibles falla por defecto.
	_, err = uc.FulfillTransferRequest(ctx, ledger.FulfillInput{
		TransferID: res.ID,
		UserID:     testUser,
		Quantities: map[string]int64{"prod-1": 5},
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	// Caso 2: con confirmación explícita procede.
	_, err = uc.FulfillTransferRequest(ctx, ledger.FulfillInput{
		TransferID:         res.ID,
		UserID:             testUser,
		Quantities:         map[string]int64{"prod-1": 5},
		AllowNegativeStock: true,
	})
	require.NoError(t, err)

	// Al confirmar, el origen queda en negativo y se reporta.
	confirmed, err := uc.ConfirmWarehouseTransfer(ctx, res.ID, testUser)
	require.NoError(t, err)
	assert.Contains(t, confirmed.NegativeStock, "prod-1")
	assert.Equal(t, int64(-2), branchQty(t, store, "prod-1", branchA))
	assert.Equal(t, int64(5), branchQty(t, store, "prod-1", branchB))
}

func TestWarehouseTransfer_DespacharUnEnvioDirectoFalla(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	// Caso: un envío directo ya está PENDING; no hay solicitud que despachar.
	res, err := uc.InitiateWarehouseTransfer(ctx, transferInput("prod-1", 2))
	require.NoError(t, err)

	_, err = uc.FulfillTransferRequest(ctx, ledger.FulfillInput{
		TransferID: res.ID,
		UserID:     testUser,
		Quantities: map[string]int64{"prod-1": 2},
	})
	assert.ErrorIs(t, err, domain.ErrTransferNotRequested)
}

func TestWarehouseTransfer_ConfirmarDosVecesFalla(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	res, err := uc.InitiateWarehouseTransfer(ctx, transferInput("prod-1", 2))
	require.NoError(t, err)
	_, err = uc.ConfirmWarehouseTransfer(ctx, res.ID, testUser)
	require.NoError(t, err)

	// Caso: COMPLETED es terminal.
	_, err = uc.ConfirmWarehouseTransfer(ctx, res.ID, testUser)
	require.ErrorIs(t, err, domain.ErrTransferNotPending)
	assert.Equal(t, int64(8), branchQty(t, store, "prod-1", branchA), "el stock se mueve una sola vez")
}

func TestWarehouseTransfer_RechazoEsTerminalYNoMueveStock(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	res, err := uc.RequestWarehouseTransfer(ctx, transferInput("prod-1", 6))
	require.NoError(t, err)

	_, err = uc.RejectWarehouseTransfer(ctx, res.ID, testUser, "sin stock para atender")
	require.NoError(t, err)

	transfer, err := store.Ledger().Transfers.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TrasladoRechazado, transfer.Status)
	assert.Equal(t, "sin stock para atender", transfer.Notes)
	assert.Equal(t, int64(10), branchQty(t, store, "prod-1", branchA))

	// Caso: un traslado rechazado ya no se puede confirmar ni volver a rechazar.
	_, err = uc.ConfirmWarehouseTransfer(ctx, res.ID, testUser)
	assert.ErrorIs(t, err, domain.ErrTransferNotPending)
	_, err = uc.RejectWarehouseTransfer(ctx, res.ID, testUser, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWarehouseTransfer_EntradaInvalida(t *testing.T) {
	_, tx := newEnv(t)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	// Caso 1: mismo origen y destino.
	in := transferInput("prod-1", 2)
	in.ToBranchID = branchA
	_, err := uc.InitiateWarehouseTransfer(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 2: cantidad en cero.
	_, err = uc.RequestWarehouseTransfer(ctx, transferInput("prod-1", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 3: despacho con cantidad negativa.
	_, err = uc.FulfillTransferRequest(ctx, ledger.FulfillInput{
		TransferID: "cualquiera",
		Quantities: map[string]int64{"prod-1": -1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseTransfer_DespachoConProductoAjenoFalla(t *testing.T) {
	store, tx := newEnv(t)
	seedProduct(t, store, "prod-1", "Cargador", branchA, 10)
	uc := ledger.NewTransferUseCase(tx)
	ctx := context.Background()

	res, err := uc.RequestWarehouseTransfer(ctx, transferInput("prod-1", 4))
	require.NoError(t, err)

	// Caso: se despacha un producto que no figura en la solicitud.
	_, err = uc.FulfillTransferRequest(ctx, ledger.FulfillInput{
		TransferID: res.ID,
		UserID:     testUser,
		Quantities: map[string]int64{"prod-ajeno": 2},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// La solicitud sigue REQUESTED, lista para un despacho correcto.
	transfer, err := store.Ledger().Transfers.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TrasladoSolicitado, transfer.Status)
}
