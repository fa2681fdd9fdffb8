package grid

import (
	"strconv"
	"strings"
	"time"
)

// Kind classifies a raw cell value.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindTime
)

// Cell is one untyped spreadsheet cell. Number and Time are populated only
// for the matching Kind; Text always holds the raw trimmed source string so
// callers can reparse it without precision loss.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// Grid is an immutable rectangular view over a parsed sheet. Rows keep
// their natural widths; out-of-range access returns an empty cell, so
// fixed-column-index reads are always safe.
type Grid struct {
	rows [][]Cell
}

// FromStrings builds a Grid from raw string rows, classifying each cell.
func FromStrings(rows [][]string) *Grid {
	g := &Grid{rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, raw := range row {
			cells[j] = classify(raw)
		}
		g.rows[i] = cells
	}
	return g
}

// FromCells builds a Grid from pre-typed cells.
func FromCells(rows [][]Cell) *Grid {
	return &Grid{rows: rows}
}

func classify(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: KindEmpty}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: KindNumber, Text: s, Number: n}
	}
	return Cell{Kind: KindText, Text: s}
}

// NumRows returns the row count.
func (g *Grid) NumRows() int { return len(g.rows) }

// RowLen returns the natural width of a row, or 0 when out of range.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// WidestRow returns the maximum natural row width in the grid.
func (g *Grid) WidestRow() int {
	widest := 0
	for _, row := range g.rows {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest
}

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.rows) {
		return Cell{Kind: KindEmpty}
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return Cell{Kind: KindEmpty}
	}
	return r[col]
}
