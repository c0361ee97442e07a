package entity

import "github.com/shopspring/decimal"

// Métodos de pago soportados por el punto de venta.
const (
	MetodoEfectivo  = "efectivo"
	MetodoTarjeta   = "tarjeta"
	MetodoYape      = "yape"
	MetodoBanco     = "banco"
	MetodoBilletera = "billetera" // saldo digital del cliente; no genera movimiento de caja
)

// PaymentEntry es una línea de pago individual dentro de una venta o compra.
// La lista de pagos de un documento solo crece (cobros parciales posteriores
// se agregan, nunca reemplazan).
type PaymentEntry struct {
	Method    string
	Amount    decimal.Decimal
	AccountID string // cuenta bancaria para conciliación (banco/tarjeta)
	Reference string // número de operación, voucher, etc.
}

// PaymentBreakdown subtotal por instrumento al momento de emitir el documento.
type PaymentBreakdown struct {
	Cash   decimal.Decimal
	Card   decimal.Decimal
	Yape   decimal.Decimal
	Bank   decimal.Decimal
	Wallet decimal.Decimal
}

// Total suma todos los instrumentos del desglose.
func (b PaymentBreakdown) Total() decimal.Decimal {
	return b.Cash.Add(b.Card).Add(b.Yape).Add(b.Bank).Add(b.Wallet)
}

// IsZero indica que ningún instrumento tiene valor: la venta es al crédito.
func (b PaymentBreakdown) IsZero() bool {
	return b.Total().IsZero()
}
