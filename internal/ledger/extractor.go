package ledger

import (
	"github.com/bankrec-dev/bankrec/internal/grid"
	"github.com/bankrec-dev/bankrec/internal/model"
	"github.com/bankrec-dev/bankrec/internal/normalize"
)

// Ledger exports from this file family keep a fixed column layout
// (spreadsheet columns F, H, J, K, L). Row 0 is always a header.
const (
	colDate   = 5
	colDesc   = 7
	colRef    = 9
	colDebit  = 10
	colCredit = 11
)

// Extract walks a ledger grid and emits canonical entries. Rows above the
// first parseable date are preamble and skipped; after that anchor, rows
// with a zero net amount or with no date, description, and reference are
// dropped. Every emitted entry starts as not-found.
func Extract(g *grid.Grid) []model.LedgerEntry {
	var entries []model.LedgerEntry
	started := false

	for row := 1; row < g.NumRows(); row++ {
		date, hasDate := normalize.Date(g.Cell(row, colDate))

		// Decorative title bands above the real data have no
		// parseable date. Anchoring on the first one that does is
		// more robust than a fixed row offset.
		if !started {
			if !hasDate {
				continue
			}
			started = true
		}

		desc := g.Cell(row, colDesc).Text
		ref := g.Cell(row, colRef).Text

		// Unparseable debit/credit cells count as zero.
		debit, _ := normalize.Amount(g.Cell(row, colDebit))
		credit, _ := normalize.Amount(g.Cell(row, colCredit))

		amount := credit.Sub(debit)
		if amount.IsZero() {
			continue
		}
		if !hasDate && desc == "" && ref == "" {
			continue
		}

		entries = append(entries, model.LedgerEntry{
			Date:        date,
			Description: desc,
			Reference:   ref,
			Amount:      amount,
			Status:      model.StatusNotFound,
		})
	}
	return entries
}
