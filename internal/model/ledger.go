package model

import (
	"github.com/shopspring/decimal"
)

// MatchStatus is the reconciliation outcome for a single ledger entry.
type MatchStatus string

const (
	StatusMatch    MatchStatus = "match"
	StatusMismatch MatchStatus = "mismatch"
	StatusNotFound MatchStatus = "not-found"
)

// Label returns the display name for a status.
func (s MatchStatus) Label() string {
	switch s {
	case StatusMatch:
		return "Exact Match"
	case StatusMismatch:
		return "Mismatch"
	case StatusNotFound:
		return "Not Found"
	}
	return string(s)
}

// LedgerEntry is one canonical line from a bookkeeping ledger export.
type LedgerEntry struct {
	Date        string // "YYYY-MM-DD", or "" when the row carried no parseable date
	Description string
	Reference   string
	Amount      decimal.Decimal // signed: credit - debit, never zero
	Status      MatchStatus
}
