package bank

import (
	"strings"

	"github.com/bankrec-dev/bankrec/internal/grid"
)

// Tier identifies which column-resolution strategy produced a schema.
type Tier string

const (
	// TierNone means the file had no rows to resolve against.
	TierNone Tier = "none"
	// TierFixedPosition is the known date/payee/amount column triple.
	TierFixedPosition Tier = "fixed-position"
	// TierHeaderMatched resolved columns from row-1 header labels.
	TierHeaderMatched Tier = "header-matched"
	// TierPositionalFallback found no amount header and guessed the
	// amount column from row width.
	TierPositionalFallback Tier = "positional-fallback"
)

// Known column positions for the fixed-layout statement family
// (spreadsheet columns B, D, G), probed over the first few data rows.
const (
	fixedColDate   = 1
	fixedColPayee  = 3
	fixedColAmount = 6
	fixedProbeRows = 5
)

// SchemaResolution records which tier fired and the column indices it
// resolved. Unresolved columns are -1; reading column -1 from a Grid
// yields an empty cell, so extraction can index without branching.
type SchemaResolution struct {
	Tier      Tier
	DateCol   int
	PayeeCol  int
	AmountCol int
	DebitCol  int
	CreditCol int
}

// Synonyms are the case-insensitive header labels accepted for each
// column role in the header-name tier.
type Synonyms struct {
	Date   []string
	Payee  []string
	Amount []string
	Debit  []string
	Credit []string
}

// DefaultSynonyms returns the built-in header label sets.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		Date:   []string{"date", "transaction date", "posting date"},
		Payee:  []string{"payee", "description", "name"},
		Amount: []string{"amount", "amt"},
		Debit:  []string{"debit", "withdrawal"},
		Credit: []string{"credit", "deposit"},
	}
}

// Extend returns a copy with extra labels appended to each set. Built-in
// labels are never removed.
func (s Synonyms) Extend(extra Synonyms) Synonyms {
	return Synonyms{
		Date:   append(append([]string{}, s.Date...), extra.Date...),
		Payee:  append(append([]string{}, s.Payee...), extra.Payee...),
		Amount: append(append([]string{}, s.Amount...), extra.Amount...),
		Debit:  append(append([]string{}, s.Debit...), extra.Debit...),
		Credit: append(append([]string{}, s.Credit...), extra.Credit...),
	}
}

// Resolve picks a column schema for a bank statement grid. The fixed
// position tier wins if any probed data row naturally reaches one of the
// known columns; otherwise header labels are matched, and failing an
// amount header or debit/credit pair, the amount column is guessed from
// the widest observed row.
func Resolve(g *grid.Grid, syn Synonyms) SchemaResolution {
	if g.NumRows() == 0 {
		return SchemaResolution{
			Tier:    TierNone,
			DateCol: -1, PayeeCol: -1, AmountCol: -1, DebitCol: -1, CreditCol: -1,
		}
	}

	probe := g.NumRows() - 1
	if probe > fixedProbeRows {
		probe = fixedProbeRows
	}
	for row := 1; row <= probe; row++ {
		if present(g, row, fixedColDate) || present(g, row, fixedColPayee) || present(g, row, fixedColAmount) {
			return SchemaResolution{
				Tier:      TierFixedPosition,
				DateCol:   fixedColDate,
				PayeeCol:  fixedColPayee,
				AmountCol: fixedColAmount,
				DebitCol:  -1,
				CreditCol: -1,
			}
		}
	}

	res := SchemaResolution{
		Tier:      TierHeaderMatched,
		DateCol:   findHeader(g, syn.Date),
		PayeeCol:  findHeader(g, syn.Payee),
		AmountCol: findHeader(g, syn.Amount),
		DebitCol:  findHeader(g, syn.Debit),
		CreditCol: findHeader(g, syn.Credit),
	}
	if res.DateCol == -1 {
		res.DateCol = 0
	}
	if res.AmountCol == -1 && res.DebitCol == -1 && res.CreditCol == -1 {
		// Headerless but not fixed-layout either: guess the amount
		// column from the tail of the widest observed row.
		res.Tier = TierPositionalFallback
		res.AmountCol = g.WidestRow() - 1
		if res.AmountCol < 1 {
			res.AmountCol = 1
		}
	}
	return res
}

// present reports whether a cell position exists within the row's natural
// width, the grid analog of "not undefined" in a sparse sheet row.
func present(g *grid.Grid, row, col int) bool {
	return col < g.RowLen(row)
}

// findHeader returns the index of the first row-1 label matching one of
// names (case-insensitive, trimmed), or -1.
func findHeader(g *grid.Grid, names []string) int {
	for col := 0; col < g.RowLen(0); col++ {
		label := strings.ToLower(strings.TrimSpace(g.Cell(0, col).Text))
		for _, name := range names {
			if label == name {
				return col
			}
		}
	}
	return -1
}
