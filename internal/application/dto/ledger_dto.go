package dto

import (
	"github.com/shopspring/decimal"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
)

// SaleItemRequest línea de venta con precio congelado.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PurchaseItemRequest línea de compra con costo unitario.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// PaymentEntryRequest una línea de pago (método + monto).
type PaymentEntryRequest struct {
	Method    string          `json:"method" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"account_id"`
	Reference string          `json:"reference"`
}

// BreakdownRequest desglose de pago por instrumento.
type BreakdownRequest struct {
	Cash   decimal.Decimal `json:"cash"`
	Card   decimal.Decimal `json:"card"`
	Yape   decimal.Decimal `json:"yape"`
	Bank   decimal.Decimal `json:"bank"`
	Wallet decimal.Decimal `json:"wallet"`
}

// ProcessSaleRequest entrada para registrar una venta. El ticket_id lo asigna
// el punto de venta y debe ser único.
type ProcessSaleRequest struct {
	TicketID     string                `json:"ticket_id" validate:"required"`
	Items        []SaleItemRequest     `json:"items" validate:"required,min=1"`
	Total        decimal.Decimal       `json:"total"`
	Currency     string                `json:"currency"`
	ExchangeRate decimal.Decimal       `json:"exchange_rate"`
	DocType      string                `json:"doc_type"`
	ClientID     string                `json:"client_id"`
	ClientName   string                `json:"client_name"`
	Breakdown    BreakdownRequest      `json:"breakdown"`
	Payments     []PaymentEntryRequest `json:"payments"`
}

// ProcessPurchaseRequest entrada para registrar una compra a proveedor.
type ProcessPurchaseRequest struct {
	Items            []PurchaseItemRequest `json:"items" validate:"required,min=1"`
	Total            decimal.Decimal       `json:"total"`
	Currency         string                `json:"currency"`
	ExchangeRate     decimal.Decimal       `json:"exchange_rate"`
	DocType          string                `json:"doc_type"`
	SupplierID       string                `json:"supplier_id"`
	SupplierName     string                `json:"supplier_name"`
	PaymentCondition string                `json:"payment_condition" validate:"required"`
	CreditDays       int                   `json:"credit_days"`
	Payments         []PaymentEntryRequest `json:"payments"`
}

// RegisterPaymentRequest cobro de venta al crédito o pago a proveedor.
// amount es el monto asignado al documento; payment.amount (si es mayor) el
// monto recibido, cuyo excedente va al saldo digital de la contraparte.
type RegisterPaymentRequest struct {
	DocumentID string              `json:"document_id" validate:"required"`
	PartyID    string              `json:"party_id" validate:"required"`
	Amount     decimal.Decimal     `json:"amount"`
	Currency   string              `json:"currency"`
	Payment    PaymentEntryRequest `json:"payment"`
}

// AccountBalanceRequest saldo bancario declarado en apertura/cierre de caja.
type AccountBalanceRequest struct {
	AccountID string          `json:"account_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// OpenCashBoxRequest apertura de caja.
type OpenCashBoxRequest struct {
	OpeningCash  decimal.Decimal         `json:"opening_cash"`
	Notes        string                  `json:"notes"`
	BankBalances []AccountBalanceRequest `json:"bank_balances"`
}

// CloseCashBoxRequest cierre de caja con arqueo.
type CloseCashBoxRequest struct {
	CountedCash   decimal.Decimal         `json:"counted_cash"`
	SystemCash    decimal.Decimal         `json:"system_cash"`
	SystemDigital decimal.Decimal         `json:"system_digital"`
	Notes         string                  `json:"notes"`
	BankBalances  []AccountBalanceRequest `json:"bank_balances"`
}

// TransferItemRequest línea de traslado de stock.
type TransferItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// WarehouseTransferRequest envío directo o solicitud de stock entre sucursales.
type WarehouseTransferRequest struct {
	FromBranchID string                `json:"from_branch_id" validate:"required"`
	ToBranchID   string                `json:"to_branch_id" validate:"required"`
	Items        []TransferItemRequest `json:"items" validate:"required,min=1"`
	Notes        string                `json:"notes"`
}

// FulfillTransferRequest despacho de una solicitud con cantidades ajustadas.
type FulfillTransferRequest struct {
	Quantities         map[string]int64 `json:"quantities" validate:"required"`
	AllowNegativeStock bool             `json:"allow_negative_stock"`
}

// RejectTransferRequest rechazo de un traslado.
type RejectTransferRequest struct {
	Notes string `json:"notes"`
}

// CashTransferCreateRequest envío de efectivo entre sucursales.
type CashTransferCreateRequest struct {
	FromBranchID string          `json:"from_branch_id" validate:"required"`
	ToBranchID   string          `json:"to_branch_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Notes        string          `json:"notes"`
}

// InventoryCountRequest guardado de borrador o ajuste de inventario físico.
// session_id vacío crea una sesión nueva.
type InventoryCountRequest struct {
	SessionID string           `json:"session_id"`
	Notes     string           `json:"notes"`
	Counts    map[string]int64 `json:"counts"`
}

// CashPositionResponse posición de caja del período.
type CashPositionResponse struct {
	BranchID string          `json:"branch_id"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Egresos  decimal.Decimal `json:"egresos"`
	Balance  decimal.Decimal `json:"balance"`
}

// CashInTransitResponse efectivo en tránsito saliente de la sucursal.
type CashInTransitResponse struct {
	BranchID string          `json:"branch_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToSaleItems convierte las líneas del request a entidades.
func ToSaleItems(items []SaleItemRequest) []entity.SaleItem {
	out := make([]entity.SaleItem, len(items))
	for i, it := range items {
		out[i] = entity.SaleItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return out
}

// ToPurchaseItems convierte las líneas del request a entidades.
func ToPurchaseItems(items []PurchaseItemRequest) []entity.PurchaseItem {
	out := make([]entity.PurchaseItem, len(items))
	for i, it := range items {
		out[i] = entity.PurchaseItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, UnitCost: it.UnitCost}
	}
	return out
}

// ToPaymentEntries convierte las líneas de pago del request a entidades.
func ToPaymentEntries(payments []PaymentEntryRequest) []entity.PaymentEntry {
	out := make([]entity.PaymentEntry, len(payments))
	for i, p := range payments {
		out[i] = entity.PaymentEntry{Method: p.Method, Amount: p.Amount, AccountID: p.AccountID, Reference: p.Reference}
	}
	return out
}

// ToPaymentEntry convierte una línea de pago del request a entidad.
func ToPaymentEntry(p PaymentEntryRequest) entity.PaymentEntry {
	return entity.PaymentEntry{Method: p.Method, Amount: p.Amount, AccountID: p.AccountID, Reference: p.Reference}
}

// ToBreakdown convierte el desglose del request a entidad.
func ToBreakdown(b BreakdownRequest) entity.PaymentBreakdown {
	return entity.PaymentBreakdown{Cash: b.Cash, Card: b.Card, Yape: b.Yape, Bank: b.Bank, Wallet: b.Wallet}
}

// ToAccountBalances convierte los saldos bancarios del request a entidades.
func ToAccountBalances(balances []AccountBalanceRequest) []entity.AccountBalance {
	out := make([]entity.AccountBalance, len(balances))
	for i, b := range balances {
		out[i] = entity.AccountBalance{AccountID: b.AccountID, Amount: b.Amount}
	}
	return out
}

// ToTransferItems convierte las líneas de traslado del request a entidades.
func ToTransferItems(items []TransferItemRequest) []entity.TransferItem {
	out := make([]entity.TransferItem, len(items))
	for i, it := range items {
		out[i] = entity.TransferItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity}
	}
	return out
}
