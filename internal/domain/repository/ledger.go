package repository

// Ledger agrupa todos los repositorios atados a una misma transacción.
// El TxRunner de infraestructura construye una instancia por transacción y la
// pasa al callback del comando; así cada comando es la unidad de atomicidad.
type Ledger struct {
	Products       ProductRepository
	BranchStocks   BranchStockRepository
	Clients        ClientRepository
	Suppliers      SupplierRepository
	BankAccounts   BankAccountRepository
	Sales          SaleRepository
	Purchases      PurchaseRepository
	StockMovements StockMovementRepository
	CashMovements  CashMovementRepository
	CashBoxes      CashBoxRepository
	Transfers      WarehouseTransferRepository
	CashTransfers  CashTransferRepository
	Counts         InventoryCountRepository
}
