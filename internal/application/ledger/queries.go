package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// QueryUseCase expone las proyecciones de lectura del libro. Opera sobre
// repositorios atados al pool (sin transacción): las consultas no mutan nada
// y leer dos veces sin comando intermedio devuelve lo mismo.
type QueryUseCase struct {
	l *repository.Ledger
}

// NewQueryUseCase construye el caso de uso con el bundle atado al pool.
func NewQueryUseCase(l *repository.Ledger) *QueryUseCase {
	return &QueryUseCase{l: l}
}

// CashPosition posición de caja de una sucursal en un período.
type CashPosition struct {
	BranchID string
	From     time.Time
	To       time.Time
	Ingresos decimal.Decimal
	Egresos  decimal.Decimal
	Balance  decimal.Decimal
}

// ListProducts catálogo con stock global vivo.
func (uc *QueryUseCase) ListProducts(limit, offset int) ([]*entity.Product, error) {
	return uc.l.Products.List(limit, offset)
}

// BranchStock existencias por sucursal.
func (uc *QueryUseCase) BranchStock(branchID string, limit, offset int) ([]*entity.BranchStock, error) {
	return uc.l.BranchStocks.ListByBranch(branchID, limit, offset)
}

// ListClients clientes con sus saldos (crédito usado y billetera).
func (uc *QueryUseCase) ListClients(limit, offset int) ([]*entity.Client, error) {
	return uc.l.Clients.List(limit, offset)
}

// ListSuppliers proveedores con cuenta por pagar y saldo digital.
func (uc *QueryUseCase) ListSuppliers(limit, offset int) ([]*entity.Supplier, error) {
	return uc.l.Suppliers.List(limit, offset)
}

// ListBankAccounts cuentas bancarias del negocio.
func (uc *QueryUseCase) ListBankAccounts() ([]*entity.BankAccount, error) {
	return uc.l.BankAccounts.List()
}

// SalesHistory ventas de una sucursal en un rango de fechas.
func (uc *QueryUseCase) SalesHistory(branchID string, from, to time.Time, limit, offset int) ([]*entity.SaleRecord, error) {
	return uc.l.Sales.ListByBranch(branchID, from, to, limit, offset)
}

// PurchasesHistory compras de una sucursal en un rango de fechas.
func (uc *QueryUseCase) PurchasesHistory(branchID string, from, to time.Time, limit, offset int) ([]*entity.PurchaseRecord, error) {
	return uc.l.Purchases.ListByBranch(branchID, from, to, limit, offset)
}

// CashMovements libro de caja de una sucursal en un rango de fechas.
func (uc *QueryUseCase) CashMovements(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashMovement, error) {
	return uc.l.CashMovements.ListByBranch(branchID, from, to, limit, offset)
}

// StockMovements kardex de una sucursal en un rango de fechas.
func (uc *QueryUseCase) StockMovements(branchID string, from, to time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.l.StockMovements.ListByBranch(branchID, from, to, limit, offset)
}

// GetCashPosition suma Ingresos y Egresos del período: la posición de caja.
func (uc *QueryUseCase) GetCashPosition(branchID string, from, to time.Time) (*CashPosition, error) {
	ingresos, egresos, err := uc.l.CashMovements.SumByBranch(branchID, from, to)
	if err != nil {
		return nil, err
	}
	return &CashPosition{
		BranchID: branchID,
		From:     from,
		To:       to,
		Ingresos: ingresos,
		Egresos:  egresos,
		Balance:  ingresos.Sub(egresos),
	}, nil
}

// OpenCashBox sesión de caja abierta de la sucursal; nil si no hay.
func (uc *QueryUseCase) OpenCashBox(branchID string) (*entity.CashBoxSession, error) {
	return uc.l.CashBoxes.GetOpenByBranch(branchID)
}

// CashBoxHistory sesiones de caja cerradas de la sucursal.
func (uc *QueryUseCase) CashBoxHistory(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashBoxSession, error) {
	return uc.l.CashBoxes.ListByBranch(branchID, from, to, limit, offset)
}

// PendingTransfers traslados REQUESTED o PENDING donde la sucursal participa.
func (uc *QueryUseCase) PendingTransfers(branchID string) ([]*entity.WarehouseTransfer, error) {
	requested, err := uc.l.Transfers.ListByBranch(branchID, entity.TrasladoSolicitado, 100, 0)
	if err != nil {
		return nil, err
	}
	pending, err := uc.l.Transfers.ListByBranch(branchID, entity.TrasladoPendiente, 100, 0)
	if err != nil {
		return nil, err
	}
	return append(requested, pending...), nil
}

// PendingCashTransfers transferencias de efectivo PENDING de la sucursal.
func (uc *QueryUseCase) PendingCashTransfers(branchID string) ([]*entity.CashTransferRequest, error) {
	return uc.l.CashTransfers.ListByBranch(branchID, entity.TransferenciaPendiente, 100, 0)
}

// CashInTransit efectivo que salió de la sucursal y el destino aún no
// confirma: el agujero "en tránsito" que la conciliación debe vigilar.
func (uc *QueryUseCase) CashInTransit(fromBranchID string) (decimal.Decimal, error) {
	return uc.l.CashTransfers.SumInTransit(fromBranchID)
}

// DraftCounts borradores de conteo reanudables de la sucursal.
func (uc *QueryUseCase) DraftCounts(branchID string) ([]*entity.InventoryCountSession, error) {
	return uc.l.Counts.ListByBranch(branchID, entity.ConteoBorrador, 100, 0)
}
