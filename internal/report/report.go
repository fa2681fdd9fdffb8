// Package report renders annotated ledger entries for the terminal. The
// core pipeline produces the ordered entry list; windowing and formatting
// live here, at the presentation boundary.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/bankrec-dev/bankrec/internal/model"
)

// Summary counts entries by match status.
type Summary struct {
	Total      int
	Matched    int
	Mismatched int
	NotFound   int
}

// Summarize tallies statuses over a batch of entries.
func Summarize(entries []model.LedgerEntry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case model.StatusMatch:
			s.Matched++
		case model.StatusMismatch:
			s.Mismatched++
		default:
			s.NotFound++
		}
	}
	return s
}

// Window is a 1-based pagination window over an entry list.
type Window struct {
	Page       int
	TotalPages int
	Start      int // inclusive, 0-based
	End        int // exclusive
}

// Paginate clamps page into range for total items at pageSize per page.
func Paginate(total, page, pageSize int) Window {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Window{Page: page, TotalPages: totalPages, Start: start, End: end}
}

// Render writes one page of annotated entries as an aligned table,
// followed by a "Showing X-Y of N" footer.
func Render(w io.Writer, entries []model.LedgerEntry, page, pageSize int) error {
	win := Paginate(len(entries), page, pageSize)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tREFERENCE\tAMOUNT\tSTATUS")
	for _, e := range entries[win.Start:win.End] {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Date, e.Description, e.Reference, FormatAmount(e.Amount), e.Status.Label())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	shown := 0
	if len(entries) > 0 {
		shown = win.Start + 1
	}
	fmt.Fprintf(w, "\nShowing %d-%d of %d (page %d/%d)\n",
		shown, win.End, len(entries), win.Page, win.TotalPages)
	return nil
}

// FormatAmount renders a signed currency amount like "+$2,611.70".
func FormatAmount(d decimal.Decimal) string {
	sign := "+"
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(d.Abs().StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string.
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		if fracPart == "" {
			return intPart
		}
		return intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteString("." + fracPart)
	}
	return b.String()
}
