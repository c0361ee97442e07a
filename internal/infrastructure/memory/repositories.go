package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

var (
	_ repository.ProductRepository           = (*productRepo)(nil)
	_ repository.BranchStockRepository       = (*branchStockRepo)(nil)
	_ repository.ClientRepository            = (*clientRepo)(nil)
	_ repository.SupplierRepository          = (*supplierRepo)(nil)
	_ repository.BankAccountRepository       = (*bankAccountRepo)(nil)
	_ repository.SaleRepository              = (*saleRepo)(nil)
	_ repository.PurchaseRepository          = (*purchaseRepo)(nil)
	_ repository.StockMovementRepository     = (*stockMovementRepo)(nil)
	_ repository.CashMovementRepository      = (*cashMovementRepo)(nil)
	_ repository.CashBoxRepository           = (*cashBoxRepo)(nil)
	_ repository.WarehouseTransferRepository = (*warehouseTransferRepo)(nil)
	_ repository.CashTransferRepository      = (*cashTransferRepo)(nil)
	_ repository.InventoryCountRepository    = (*inventoryCountRepo)(nil)
)

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// ─────────────────────────────────────────────
// Productos
// ─────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *productRepo) GetByCode(code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Code == code {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *productRepo) UpdateStock(productID string, stock int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[productID]; ok {
		p.Stock = stock
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *productRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[productID]; ok {
		p.Cost = cost
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

// ─────────────────────────────────────────────
// Stock por sucursal
// ─────────────────────────────────────────────

type branchStockRepo struct{ s *Store }

func (r *branchStockRepo) Get(productID, branchID string) (*entity.BranchStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if b, ok := r.s.branchStocks[branchStockKey(productID, branchID)]; ok {
		return cloneBranchStock(b), nil
	}
	return &entity.BranchStock{ProductID: productID, BranchID: branchID}, nil
}

func (r *branchStockRepo) GetForUpdate(productID, branchID string) (*entity.BranchStock, error) {
	return r.Get(productID, branchID)
}

func (r *branchStockRepo) Upsert(stock *entity.BranchStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.branchStocks[branchStockKey(stock.ProductID, stock.BranchID)] = cloneBranchStock(stock)
	return nil
}

func (r *branchStockRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.BranchStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.BranchStock
	for _, b := range r.s.branchStocks {
		if b.BranchID == branchID {
			out = append(out, cloneBranchStock(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return paginate(out, limit, offset), nil
}

// ─────────────────────────────────────────────
// Clientes y proveedores
// ─────────────────────────────────────────────

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	r.s.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *clientRepo) GetByID(id string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.clients[id]; ok {
		return cloneClient(c), nil
	}
	return nil, nil
}

func (r *clientRepo) GetByName(name string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clients {
		if c.Name == name {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (r *clientRepo) GetForUpdate(id string) (*entity.Client, error) {
	return r.GetByID(id)
}

func (r *clientRepo) UpdateBalances(clientID string, creditUsed, digitalBalance decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.clients[clientID]; ok {
		c.CreditUsed = creditUsed
		c.DigitalBalance = digitalBalance
		c.UpdatedAt = time.Now()
	}
	return nil
}

func (r *clientRepo) List(limit, offset int) ([]*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, cloneClient(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	r.s.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

func (r *supplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if s, ok := r.s.suppliers[id]; ok {
		return cloneSupplier(s), nil
	}
	return nil, nil
}

func (r *supplierRepo) GetByName(name string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, s := range r.s.suppliers {
		if s.Name == name {
			return cloneSupplier(s), nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) GetForUpdate(id string) (*entity.Supplier, error) {
	return r.GetByID(id)
}

func (r *supplierRepo) UpdateBalances(supplierID string, payableBalance, digitalBalance decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if s, ok := r.s.suppliers[supplierID]; ok {
		s.PayableBalance = payableBalance
		s.DigitalBalance = digitalBalance
		s.UpdatedAt = time.Now()
	}
	return nil
}

func (r *supplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, s := range r.s.suppliers {
		out = append(out, cloneSupplier(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

type bankAccountRepo struct{ s *Store }

func (r *bankAccountRepo) Create(account *entity.BankAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	r.s.bankAccounts[account.ID] = cloneBankAccount(account)
	return nil
}

func (r *bankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if a, ok := r.s.bankAccounts[id]; ok {
		return cloneBankAccount(a), nil
	}
	return nil, nil
}

func (r *bankAccountRepo) List() ([]*entity.BankAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.BankAccount, 0, len(r.s.bankAccounts))
	for _, a := range r.s.bankAccounts {
		out = append(out, cloneBankAccount(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ─────────────────────────────────────────────
// Ventas y compras
// ─────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.SaleRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.sales[sale.ID]; exists {
		return domain.ErrDuplicate
	}
	r.s.sales[sale.ID] = cloneSale(sale)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.SaleRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if s, ok := r.s.sales[id]; ok {
		return cloneSale(s), nil
	}
	return nil, nil
}

func (r *saleRepo) GetForUpdate(id string) (*entity.SaleRecord, error) {
	return r.GetByID(id)
}

func (r *saleRepo) AppendPayment(saleID string, payment entity.PaymentEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if s, ok := r.s.sales[saleID]; ok {
		s.Payments = append(s.Payments, payment)
	}
	return nil
}

func (r *saleRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.SaleRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.SaleRecord
	for _, s := range r.s.sales {
		if s.BranchID == branchID && inRange(s.CreatedAt, from, to) {
			out = append(out, cloneSale(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(purchase *entity.PurchaseRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	r.s.purchases[purchase.ID] = clonePurchase(purchase)
	return nil
}

func (r *purchaseRepo) GetByID(id string) (*entity.PurchaseRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.purchases[id]; ok {
		return clonePurchase(p), nil
	}
	return nil, nil
}

func (r *purchaseRepo) GetForUpdate(id string) (*entity.PurchaseRecord, error) {
	return r.GetByID(id)
}

func (r *purchaseRepo) AppendPayment(purchaseID string, payment entity.PaymentEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.purchases[purchaseID]; ok {
		p.Payments = append(p.Payments, payment)
	}
	return nil
}

func (r *purchaseRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.PurchaseRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.PurchaseRecord
	for _, p := range r.s.purchases {
		if p.BranchID == branchID && inRange(p.CreatedAt, from, to) {
			out = append(out, clonePurchase(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

// ─────────────────────────────────────────────
// Kardex y caja
// ─────────────────────────────────────────────

type stockMovementRepo struct{ s *Store }

func (r *stockMovementRepo) Create(movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	m := *movement
	r.s.stockMovements = append(r.s.stockMovements, &m)
	return nil
}

func (r *stockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	for i := len(r.s.stockMovements) - 1; i >= 0; i-- {
		if m := r.s.stockMovements[i]; m.ProductID == productID {
			c := *m
			out = append(out, &c)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *stockMovementRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	for i := len(r.s.stockMovements) - 1; i >= 0; i-- {
		if m := r.s.stockMovements[i]; m.BranchID == branchID && inRange(m.CreatedAt, from, to) {
			c := *m
			out = append(out, &c)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *stockMovementRepo) ListByReference(reference string) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	for _, m := range r.s.stockMovements {
		if m.Reference == reference {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

type cashMovementRepo struct{ s *Store }

func (r *cashMovementRepo) Create(movement *entity.CashMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	m := *movement
	r.s.cashMovements = append(r.s.cashMovements, &m)
	return nil
}

func (r *cashMovementRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.CashMovement
	for i := len(r.s.cashMovements) - 1; i >= 0; i-- {
		if m := r.s.cashMovements[i]; m.BranchID == branchID && inRange(m.CreatedAt, from, to) {
			c := *m
			out = append(out, &c)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *cashMovementRepo) ListByReference(referenceID string) ([]*entity.CashMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.CashMovement
	for _, m := range r.s.cashMovements {
		if m.ReferenceID == referenceID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *cashMovementRepo) SumByBranch(branchID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ingresos, egresos := decimal.Zero, decimal.Zero
	for _, m := range r.s.cashMovements {
		if m.BranchID != branchID || !inRange(m.CreatedAt, from, to) {
			continue
		}
		switch m.Type {
		case entity.CajaIngreso:
			ingresos = ingresos.Add(m.Amount)
		case entity.CajaEgreso:
			egresos = egresos.Add(m.Amount)
		}
	}
	return ingresos, egresos, nil
}

// ─────────────────────────────────────────────
// Sesiones de caja
// ─────────────────────────────────────────────

type cashBoxRepo struct{ s *Store }

func (r *cashBoxRepo) Create(session *entity.CashBoxSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Misma regla que el índice único parcial en postgres: a lo sumo una
	// sesión OPEN por sucursal, incluso si el caller se saltó el chequeo.
	if session.Status == entity.CajaAbierta {
		for _, existing := range r.s.cashBoxes {
			if existing.BranchID == session.BranchID && existing.Status == entity.CajaAbierta {
				return domain.ErrCashBoxAlreadyOpen
			}
		}
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	r.s.cashBoxes[session.ID] = cloneCashBox(session)
	return nil
}

func (r *cashBoxRepo) GetByID(id string) (*entity.CashBoxSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if s, ok := r.s.cashBoxes[id]; ok {
		return cloneCashBox(s), nil
	}
	return nil, nil
}

func (r *cashBoxRepo) GetOpenByBranch(branchID string) (*entity.CashBoxSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, s := range r.s.cashBoxes {
		if s.BranchID == branchID && s.Status == entity.CajaAbierta {
			return cloneCashBox(s), nil
		}
	}
	return nil, nil
}

func (r *cashBoxRepo) GetOpenForUpdate(branchID string) (*entity.CashBoxSession, error) {
	return r.GetOpenByBranch(branchID)
}

func (r *cashBoxRepo) Update(session *entity.CashBoxSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cashBoxes[session.ID] = cloneCashBox(session)
	return nil
}

func (r *cashBoxRepo) ListByBranch(branchID string, from, to time.Time, limit, offset int) ([]*entity.CashBoxSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.CashBoxSession
	for _, s := range r.s.cashBoxes {
		if s.BranchID == branchID && inRange(s.OpenedAt, from, to) {
			out = append(out, cloneCashBox(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return paginate(out, limit, offset), nil
}

// ─────────────────────────────────────────────
// Traslados y transferencias
// ─────────────────────────────────────────────

type warehouseTransferRepo struct{ s *Store }

func (r *warehouseTransferRepo) Create(transfer *entity.WarehouseTransfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	r.s.transfers[transfer.ID] = cloneTransfer(transfer)
	return nil
}

func (r *warehouseTransferRepo) GetByID(id string) (*entity.WarehouseTransfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t, ok := r.s.transfers[id]; ok {
		return cloneTransfer(t), nil
	}
	return nil, nil
}

func (r *warehouseTransferRepo) GetForUpdate(id string) (*entity.WarehouseTransfer, error) {
	return r.GetByID(id)
}

func (r *warehouseTransferRepo) Update(transfer *entity.WarehouseTransfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transfers[transfer.ID] = cloneTransfer(transfer)
	return nil
}

func (r *warehouseTransferRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.WarehouseTransfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.WarehouseTransfer
	for _, t := range r.s.transfers {
		if (t.FromBranchID == branchID || t.ToBranchID == branchID) && (status == "" || t.Status == status) {
			out = append(out, cloneTransfer(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

type cashTransferRepo struct{ s *Store }

func (r *cashTransferRepo) Create(transfer *entity.CashTransferRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	r.s.cashTransfers[transfer.ID] = cloneCashTransfer(transfer)
	return nil
}

func (r *cashTransferRepo) GetByID(id string) (*entity.CashTransferRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t, ok := r.s.cashTransfers[id]; ok {
		return cloneCashTransfer(t), nil
	}
	return nil, nil
}

func (r *cashTransferRepo) GetForUpdate(id string) (*entity.CashTransferRequest, error) {
	return r.GetByID(id)
}

func (r *cashTransferRepo) Update(transfer *entity.CashTransferRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cashTransfers[transfer.ID] = cloneCashTransfer(transfer)
	return nil
}

func (r *cashTransferRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.CashTransferRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.CashTransferRequest
	for _, t := range r.s.cashTransfers {
		if (t.FromBranchID == branchID || t.ToBranchID == branchID) && (status == "" || t.Status == status) {
			out = append(out, cloneCashTransfer(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

func (r *cashTransferRepo) SumInTransit(fromBranchID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, t := range r.s.cashTransfers {
		if t.FromBranchID == fromBranchID && t.Status == entity.TransferenciaPendiente {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// ─────────────────────────────────────────────
// Conteos de inventario
// ─────────────────────────────────────────────

type inventoryCountRepo struct{ s *Store }

func (r *inventoryCountRepo) Create(session *entity.InventoryCountSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	r.s.counts[session.ID] = cloneCount(session)
	return nil
}

func (r *inventoryCountRepo) GetByID(id string) (*entity.InventoryCountSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if s, ok := r.s.counts[id]; ok {
		return cloneCount(s), nil
	}
	return nil, nil
}

func (r *inventoryCountRepo) GetForUpdate(id string) (*entity.InventoryCountSession, error) {
	return r.GetByID(id)
}

func (r *inventoryCountRepo) Update(session *entity.InventoryCountSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.counts[session.ID] = cloneCount(session)
	return nil
}

func (r *inventoryCountRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.InventoryCountSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.InventoryCountSession
	for _, s := range r.s.counts {
		if s.BranchID == branchID && (status == "" || s.Status == status) {
			out = append(out, cloneCount(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}
