package entity

import "time"

// BankAccount cuenta bancaria o billetera digital del negocio, usada para
// conciliar los pagos con AccountID.
type BankAccount struct {
	ID        string
	Name      string
	Bank      string
	Number    string
	Currency  string
	CreatedAt time.Time
}
