package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC         *ledger.SaleUseCase
	PurchaseUC     *ledger.PurchaseUseCase
	PaymentUC      *ledger.PaymentUseCase
	CashBoxUC      *ledger.CashBoxUseCase
	TransferUC     *ledger.TransferUseCase
	CashTransferUC *ledger.CashTransferUseCase
	CountUC        *ledger.CountUseCase
	QueryUC        *ledger.QueryUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	query := NewQueryHandler(deps.QueryUC)

	// Ventas
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", query.SalesHistory)

	// Compras
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", query.PurchasesHistory)

	// Cobros y pagos
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/receivable", paymentHandler.Receivable)
	payments.Post("/payable", paymentHandler.Payable)

	// Caja
	cashbox := protected.Group("/cashbox")
	cashBoxHandler := NewCashBoxHandler(deps.CashBoxUC)
	cashbox.Post("/open", cashBoxHandler.Open)
	cashbox.Post("/close", cashBoxHandler.Close)
	cashbox.Get("/current", query.OpenCashBox)
	cashbox.Get("/history", query.CashBoxHistory)

	// Traslados de stock
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Initiate)
	transfers.Post("/request", transferHandler.Request)
	transfers.Get("/pending", query.PendingTransfers)
	transfers.Post("/:id/fulfill", transferHandler.Fulfill)
	transfers.Post("/:id/confirm", transferHandler.Confirm)
	transfers.Post("/:id/reject", transferHandler.Reject)

	// Transferencias de efectivo
	cashTransfers := protected.Group("/cash-transfers")
	cashTransferHandler := NewCashTransferHandler(deps.CashTransferUC)
	cashTransfers.Post("/", cashTransferHandler.Initiate)
	cashTransfers.Get("/pending", query.PendingCashTransfers)
	cashTransfers.Get("/in-transit", query.CashInTransit)
	cashTransfers.Post("/:id/confirm", cashTransferHandler.Confirm)

	// Conteos de inventario
	counts := protected.Group("/counts")
	countHandler := NewCountHandler(deps.CountUC)
	counts.Post("/", countHandler.SaveDraft)
	counts.Post("/adjust", RequireRole("admin", "almacenero"), countHandler.Adjust)
	counts.Get("/drafts", query.DraftCounts)

	// Catálogo y reportes
	protected.Get("/products", query.ListProducts)
	protected.Get("/products/stock", query.BranchStock)
	protected.Get("/clients", query.ListClients)
	protected.Get("/suppliers", query.ListSuppliers)
	protected.Get("/accounts", query.ListBankAccounts)
	protected.Get("/cash-movements", query.CashMovements)
	protected.Get("/stock-movements", query.StockMovements)
	protected.Get("/cash-position", query.CashPosition)
}
