package bank

import (
	"github.com/shopspring/decimal"

	"github.com/bankrec-dev/bankrec/internal/grid"
	"github.com/bankrec-dev/bankrec/internal/model"
	"github.com/bankrec-dev/bankrec/internal/normalize"
)

// Extract walks a bank statement grid and emits canonical transactions
// along with the schema resolution that produced them. Rows with no
// parseable date or a zero resulting amount are dropped silently. An empty
// grid yields an empty batch, not an error.
func Extract(g *grid.Grid, syn Synonyms) ([]model.BankTransaction, SchemaResolution) {
	res := Resolve(g, syn)
	if res.Tier == TierNone {
		return nil, res
	}

	var txns []model.BankTransaction
	for row := 1; row < g.NumRows(); row++ {
		date, ok := normalize.Date(g.Cell(row, res.DateCol))
		if !ok {
			continue
		}

		amount, ok := rowAmount(g, row, res)
		if !ok || amount.IsZero() {
			continue
		}

		txns = append(txns, model.BankTransaction{
			Date:   date,
			Amount: amount,
			Payee:  g.Cell(row, res.PayeeCol).Text,
		})
	}
	return txns, res
}

// rowAmount reads the row's absolute amount: the amount column when one
// was resolved, otherwise the credit/debit pair with credit preferred
// when non-zero.
func rowAmount(g *grid.Grid, row int, res SchemaResolution) (decimal.Decimal, bool) {
	if res.AmountCol != -1 {
		amt, ok := normalize.Amount(g.Cell(row, res.AmountCol))
		if !ok {
			return decimal.Zero, false
		}
		return amt.Abs(), true
	}

	debit, _ := normalize.Amount(g.Cell(row, res.DebitCol))
	credit, _ := normalize.Amount(g.Cell(row, res.CreditCol))
	credit = credit.Abs()
	if !credit.IsZero() {
		return credit, true
	}
	return debit.Abs(), true
}
