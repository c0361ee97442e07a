// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Sirve para tests de casos de uso y para correr el servicio sin
// base de datos; el comportamiento observable replica al adaptador de
// PostgreSQL (duplicados, filas en cero, atomicidad por comando).
package memory

import (
	"context"
	"sync"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex

	products       map[string]*entity.Product
	branchStocks   map[string]*entity.BranchStock // productID + "/" + branchID
	clients        map[string]*entity.Client
	suppliers      map[string]*entity.Supplier
	bankAccounts   map[string]*entity.BankAccount
	sales          map[string]*entity.SaleRecord
	purchases      map[string]*entity.PurchaseRecord
	stockMovements []*entity.StockMovement
	cashMovements  []*entity.CashMovement
	cashBoxes      map[string]*entity.CashBoxSession
	transfers      map[string]*entity.WarehouseTransfer
	cashTransfers  map[string]*entity.CashTransferRequest
	counts         map[string]*entity.InventoryCountSession
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		products:      make(map[string]*entity.Product),
		branchStocks:  make(map[string]*entity.BranchStock),
		clients:       make(map[string]*entity.Client),
		suppliers:     make(map[string]*entity.Supplier),
		bankAccounts:  make(map[string]*entity.BankAccount),
		sales:         make(map[string]*entity.SaleRecord),
		purchases:     make(map[string]*entity.PurchaseRecord),
		cashBoxes:     make(map[string]*entity.CashBoxSession),
		transfers:     make(map[string]*entity.WarehouseTransfer),
		cashTransfers: make(map[string]*entity.CashTransferRequest),
		counts:        make(map[string]*entity.InventoryCountSession),
	}
}

// Ledger bundle de repositorios atados a este store.
func (s *Store) Ledger() *repository.Ledger {
	return &repository.Ledger{
		Products:       &productRepo{s},
		BranchStocks:   &branchStockRepo{s},
		Clients:        &clientRepo{s},
		Suppliers:      &supplierRepo{s},
		BankAccounts:   &bankAccountRepo{s},
		Sales:          &saleRepo{s},
		Purchases:      &purchaseRepo{s},
		StockMovements: &stockMovementRepo{s},
		CashMovements:  &cashMovementRepo{s},
		CashBoxes:      &cashBoxRepo{s},
		Transfers:      &warehouseTransferRepo{s},
		CashTransfers:  &cashTransferRepo{s},
		Counts:         &inventoryCountRepo{s},
	}
}

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner serializa los comandos sobre el store y restaura un snapshot si
// el callback falla, imitando el rollback transaccional.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con el libro del store; ante error revierte todo el estado.
func (r *TxRunner) Run(_ context.Context, fn func(l *repository.Ledger) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(r.store.Ledger()); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	products       map[string]*entity.Product
	branchStocks   map[string]*entity.BranchStock
	clients        map[string]*entity.Client
	suppliers      map[string]*entity.Supplier
	bankAccounts   map[string]*entity.BankAccount
	sales          map[string]*entity.SaleRecord
	purchases      map[string]*entity.PurchaseRecord
	stockMovements []*entity.StockMovement
	cashMovements  []*entity.CashMovement
	cashBoxes      map[string]*entity.CashBoxSession
	transfers      map[string]*entity.WarehouseTransfer
	cashTransfers  map[string]*entity.CashTransferRequest
	counts         map[string]*entity.InventoryCountSession
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		products:      make(map[string]*entity.Product, len(s.products)),
		branchStocks:  make(map[string]*entity.BranchStock, len(s.branchStocks)),
		clients:       make(map[string]*entity.Client, len(s.clients)),
		suppliers:     make(map[string]*entity.Supplier, len(s.suppliers)),
		bankAccounts:  make(map[string]*entity.BankAccount, len(s.bankAccounts)),
		sales:         make(map[string]*entity.SaleRecord, len(s.sales)),
		purchases:     make(map[string]*entity.PurchaseRecord, len(s.purchases)),
		cashBoxes:     make(map[string]*entity.CashBoxSession, len(s.cashBoxes)),
		transfers:     make(map[string]*entity.WarehouseTransfer, len(s.transfers)),
		cashTransfers: make(map[string]*entity.CashTransferRequest, len(s.cashTransfers)),
		counts:        make(map[string]*entity.InventoryCountSession, len(s.counts)),
	}
	for k, v := range s.products {
		snap.products[k] = cloneProduct(v)
	}
	for k, v := range s.branchStocks {
		snap.branchStocks[k] = cloneBranchStock(v)
	}
	for k, v := range s.clients {
		snap.clients[k] = cloneClient(v)
	}
	for k, v := range s.suppliers {
		snap.suppliers[k] = cloneSupplier(v)
	}
	for k, v := range s.bankAccounts {
		snap.bankAccounts[k] = cloneBankAccount(v)
	}
	for k, v := range s.sales {
		snap.sales[k] = cloneSale(v)
	}
	for k, v := range s.purchases {
		snap.purchases[k] = clonePurchase(v)
	}
	for k, v := range s.cashBoxes {
		snap.cashBoxes[k] = cloneCashBox(v)
	}
	for k, v := range s.transfers {
		snap.transfers[k] = cloneTransfer(v)
	}
	for k, v := range s.cashTransfers {
		snap.cashTransfers[k] = cloneCashTransfer(v)
	}
	for k, v := range s.counts {
		snap.counts[k] = cloneCount(v)
	}
	snap.stockMovements = append([]*entity.StockMovement(nil), s.stockMovements...)
	snap.cashMovements = append([]*entity.CashMovement(nil), s.cashMovements...)
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snap.products
	s.branchStocks = snap.branchStocks
	s.clients = snap.clients
	s.suppliers = snap.suppliers
	s.bankAccounts = snap.bankAccounts
	s.sales = snap.sales
	s.purchases = snap.purchases
	s.stockMovements = snap.stockMovements
	s.cashMovements = snap.cashMovements
	s.cashBoxes = snap.cashBoxes
	s.transfers = snap.transfers
	s.cashTransfers = snap.cashTransfers
	s.counts = snap.counts
}

func branchStockKey(productID, branchID string) string {
	return productID + "/" + branchID
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func cloneBranchStock(b *entity.BranchStock) *entity.BranchStock {
	c := *b
	return &c
}

func cloneClient(cl *entity.Client) *entity.Client {
	c := *cl
	return &c
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	c := *s
	return &c
}

func cloneBankAccount(a *entity.BankAccount) *entity.BankAccount {
	c := *a
	return &c
}

func cloneSale(s *entity.SaleRecord) *entity.SaleRecord {
	c := *s
	c.Items = append([]entity.SaleItem(nil), s.Items...)
	c.Payments = append([]entity.PaymentEntry(nil), s.Payments...)
	return &c
}

func clonePurchase(p *entity.PurchaseRecord) *entity.PurchaseRecord {
	c := *p
	c.Items = append([]entity.PurchaseItem(nil), p.Items...)
	c.Payments = append([]entity.PaymentEntry(nil), p.Payments...)
	return &c
}

func cloneCashBox(s *entity.CashBoxSession) *entity.CashBoxSession {
	c := *s
	c.OpenBankBalances = append([]entity.AccountBalance(nil), s.OpenBankBalances...)
	c.CloseBankBalances = append([]entity.AccountBalance(nil), s.CloseBankBalances...)
	if s.ClosedAt != nil {
		t := *s.ClosedAt
		c.ClosedAt = &t
	}
	return &c
}

func cloneTransfer(t *entity.WarehouseTransfer) *entity.WarehouseTransfer {
	c := *t
	c.Items = append([]entity.TransferItem(nil), t.Items...)
	return &c
}

func cloneCashTransfer(t *entity.CashTransferRequest) *entity.CashTransferRequest {
	c := *t
	if t.ConfirmedAt != nil {
		at := *t.ConfirmedAt
		c.ConfirmedAt = &at
	}
	return &c
}

func cloneCount(s *entity.InventoryCountSession) *entity.InventoryCountSession {
	c := *s
	c.Items = append([]entity.CountItem(nil), s.Items...)
	return &c
}
