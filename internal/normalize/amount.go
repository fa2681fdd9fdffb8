package normalize

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/bankrec-dev/bankrec/internal/grid"
)

// Amount converts a raw cell into a finite decimal amount. The second
// return value is false when the cell holds nothing numeric.
func Amount(c grid.Cell) (decimal.Decimal, bool) {
	switch c.Kind {
	case grid.KindNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return decimal.Zero, false
		}
		// Parse the source text rather than converting the float so
		// values like 0.10 stay exact.
		if d, err := decimal.NewFromString(c.Text); err == nil {
			return d, true
		}
		return decimal.NewFromFloat(c.Number), true
	case grid.KindText:
		cleaned := stripSeparators(c.Text)
		if cleaned == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}

// stripSeparators removes thousands separators and all whitespace.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
