package normalize

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankrec-dev/bankrec/internal/grid"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestAmount_Number(t *testing.T) {
	got, ok := Amount(numCell(185.5, "185.5"))
	require.True(t, ok)
	assert.Equal(t, "185.5", got.String())
}

func TestAmount_NumberExactFromText(t *testing.T) {
	// The source text is parsed directly so binary float noise never
	// leaks into the canonical amount.
	got, ok := Amount(numCell(0.1, "0.1"))
	require.True(t, ok)
	assert.True(t, got.Equal(decimalFromString(t, "0.1")))
}

func TestAmount_NonFiniteRejected(t *testing.T) {
	_, ok := Amount(numCell(math.NaN(), "NaN"))
	assert.False(t, ok)

	_, ok = Amount(numCell(math.Inf(1), "Inf"))
	assert.False(t, ok)
}

func TestAmount_TextThousandsSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"2,611.70", "2611.7"},
		{" 42 ", "42"},
		{"-44,648.00", "-44648"},
		{"1 234,", "1234"},
	}
	for _, tt := range tests {
		got, ok := Amount(textCell(tt.in))
		require.True(t, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got.String(), "input %q", tt.in)
	}
}

func TestAmount_Unparseable(t *testing.T) {
	_, ok := Amount(grid.Cell{Kind: grid.KindEmpty})
	assert.False(t, ok)

	_, ok = Amount(textCell("pending"))
	assert.False(t, ok)

	_, ok = Amount(grid.Cell{Kind: grid.KindTime})
	assert.False(t, ok)
}
