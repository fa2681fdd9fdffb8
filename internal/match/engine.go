// Package match computes a reconciliation status for every ledger entry
// against a batch of bank transactions.
package match

import (
	"strings"

	"github.com/bankrec-dev/bankrec/internal/model"
)

// Run evaluates every ledger entry against the bank batch and returns a
// new slice with statuses assigned. Both inputs are treated as immutable;
// a fresh consumption tracker scopes the pass, so re-running after a new
// bank upload recomputes every status from scratch.
//
// Entries are evaluated in slice order and each tier takes the first
// unconsumed transaction in slice order, so earlier entries win when
// several could claim the same transaction.
func Run(entries []model.LedgerEntry, txns []model.BankTransaction) []model.LedgerEntry {
	tracker := NewTracker(len(txns))

	out := make([]model.LedgerEntry, len(entries))
	for i, entry := range entries {
		out[i] = entry
		out[i].Status = evaluate(entry, txns, tracker)
	}
	return out
}

// evaluate applies the rule cascade for one entry: exact date+amount,
// then payee-substring+amount, then same-date collision, else not-found.
func evaluate(entry model.LedgerEntry, txns []model.BankTransaction, tracker *Tracker) model.MatchStatus {
	target := entry.Amount.Abs()
	desc := collapse(entry.Description)

	for i, txn := range txns {
		if tracker.Consumed(i) {
			continue
		}
		if txn.Date == entry.Date && txn.Amount.Equal(target) {
			tracker.Consume(i)
			return model.StatusMatch
		}
	}

	for i, txn := range txns {
		if tracker.Consumed(i) {
			continue
		}
		payee := collapse(txn.Payee)
		if payee != "" && strings.Contains(desc, payee) && txn.Amount.Equal(target) {
			tracker.Consume(i)
			return model.StatusMatch
		}
	}

	for i, txn := range txns {
		if tracker.Consumed(i) {
			continue
		}
		if txn.Date == entry.Date {
			return model.StatusMismatch
		}
	}

	return model.StatusNotFound
}

// collapse lowercases and squeezes runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
