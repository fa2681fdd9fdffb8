package normalize

import (
	"math"
	"time"

	"github.com/bankrec-dev/bankrec/internal/grid"
)

// DateFormat is the canonical date representation used throughout the
// pipeline.
const DateFormat = "2006-01-02"

// Spreadsheet serials count days from 1899-12-30; serial 25569 is the Unix
// epoch. Serials outside year 1..9999 are rejected as noise.
const (
	serialEpochOffset = 25569
	minSerial         = -693593
	maxSerial         = 2958465
)

// dateLayouts are the accepted spellings for text date cells, tried in
// order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
}

// Date converts a raw cell into a canonical "YYYY-MM-DD" string. The second
// return value is false when the cell holds nothing date-like; that is a
// normal outcome, not an error.
func Date(c grid.Cell) (string, bool) {
	switch c.Kind {
	case grid.KindNumber:
		return serialDate(c.Number)
	case grid.KindText:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c.Text); err == nil {
				return t.Format(DateFormat), true
			}
		}
		return "", false
	case grid.KindTime:
		return c.Time.Format(DateFormat), true
	}
	return "", false
}

// serialDate decodes a day-count serial in two steps: the integer part
// selects the calendar day, then the fractional part is decomposed into
// hours/minutes/seconds. Splitting integer from fraction keeps a serial
// just under midnight from rounding the date backward.
func serialDate(serial float64) (string, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	if serial < minSerial || serial > maxSerial {
		return "", false
	}

	days := math.Floor(serial - serialEpochOffset)
	day := time.Unix(int64(days)*86400, 0).UTC()

	frac := serial - math.Floor(serial) + 1e-7
	total := int(math.Floor(86400 * frac))
	secs := total % 60
	total -= secs
	hours := total / 3600
	mins := (total / 60) % 60

	t := time.Date(day.Year(), day.Month(), day.Day(), hours, mins, secs, 0, time.UTC)
	return t.Format(DateFormat), true
}
