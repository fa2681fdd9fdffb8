package model

import (
	"github.com/shopspring/decimal"
)

// BankTransaction is one canonical row from a bank statement export.
// Amounts carry no sign; matching compares the ledger amount by absolute
// value.
type BankTransaction struct {
	Date   string          // "YYYY-MM-DD"
	Amount decimal.Decimal // always positive
	Payee  string
}
