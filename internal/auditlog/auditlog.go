// Package auditlog keeps an append-only CSV record of reconciliation
// runs: which files were matched, which schema tier the bank extractor
// settled on, and the resulting status counts.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bankrec-dev/bankrec/internal/id"
)

// Entry is one row in the reconciliation log.
type Entry struct {
	Timestamp  time.Time
	RunID      string
	BatchID    string // UUID of the bank batch this run matched against
	LedgerFile string
	BankFile   string
	SchemaTier string
	Matched    int
	Mismatched int
	NotFound   int
}

// Header is the CSV header for reconciliation-log.csv.
const Header = "timestamp,run_id,batch_id,ledger_file,bank_file,schema_tier,matched,mismatched,not_found"

const (
	numFields     = 9
	logDir        = "logs"
	logFile       = "logs/reconciliation-log.csv"
	colTimestamp  = 0
	colRunID      = 1
	colBatchID    = 2
	colLedgerFile = 3
	colBankFile   = 4
	colSchemaTier = 5
	colMatched    = 6
	colMismatched = 7
	colNotFound   = 8
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colBatchID] = e.BatchID
	row[colLedgerFile] = e.LedgerFile
	row[colBankFile] = e.BankFile
	row[colSchemaTier] = e.SchemaTier
	row[colMatched] = strconv.Itoa(e.Matched)
	row[colMismatched] = strconv.Itoa(e.Mismatched)
	row[colNotFound] = strconv.Itoa(e.NotFound)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	matched, err := strconv.Atoi(record[colMatched])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing matched %q: %w", record[colMatched], err)
	}
	mismatched, err := strconv.Atoi(record[colMismatched])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing mismatched %q: %w", record[colMismatched], err)
	}
	notFound, err := strconv.Atoi(record[colNotFound])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing not_found %q: %w", record[colNotFound], err)
	}

	return Entry{
		Timestamp:  ts,
		RunID:      record[colRunID],
		BatchID:    record[colBatchID],
		LedgerFile: record[colLedgerFile],
		BankFile:   record[colBankFile],
		SchemaTier: record[colSchemaTier],
		Matched:    matched,
		Mismatched: mismatched,
		NotFound:   notFound,
	}, nil
}

// Append writes entries to <root>/logs/reconciliation-log.csv, creating
// the file and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening reconciliation log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/reconciliation-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening reconciliation log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading reconciliation log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// NextRunID allocates the next run ID for the given year/month by
// scanning the existing log under root.
func NextRunID(root string, year, month int) (string, error) {
	entries, err := Read(root)
	if err != nil {
		return "", err
	}

	maxSeq := 0
	for _, e := range entries {
		y, m, seq, err := id.ParseRunID(e.RunID)
		if err != nil {
			continue
		}
		if y == year && m == month && seq > maxSeq {
			maxSeq = seq
		}
	}
	return id.FormatRunID(year, month, maxSeq+1), nil
}
