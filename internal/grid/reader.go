package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// MalformedFileError reports an input file whose structure could not be
// read at all. Cell-level parse failures are not errors; see the normalize
// package.
type MalformedFileError struct {
	Format string
	Err    error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed %s file: %v", e.Format, e.Err)
}

func (e *MalformedFileError) Unwrap() error { return e.Err }

// ReadFile loads a tabular file into a Grid, choosing the format from the
// file extension (.csv, .xlsx, .xls).
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, strings.ToLower(filepath.Ext(path)))
}

// Read loads tabular data from r into a Grid. Only the first sheet of a
// workbook is read. Delimited text is parsed with variable-width records.
func Read(r io.Reader, ext string) (*Grid, error) {
	switch ext {
	case ".csv", ".txt":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	}
	return nil, fmt.Errorf("unsupported file type %q", ext)
}

func readCSV(r io.Reader) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &MalformedFileError{Format: "CSV", Err: err}
	}
	return FromStrings(records), nil
}

func readXLSX(r io.Reader) (*Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &MalformedFileError{Format: "XLSX", Err: err}
	}
	defer f.Close()

	// First sheet only. Raw values keep date serials numeric instead of
	// pre-rendering them with the cell's display format.
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &MalformedFileError{Format: "XLSX", Err: err}
	}
	return FromStrings(rows), nil
}

func readXLS(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &MalformedFileError{Format: "XLS", Err: err}
	}
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, &MalformedFileError{Format: "XLS", Err: err}
	}
	rows := wb.ReadAllCells(maxXLSRows)
	return FromStrings(rows), nil
}

// maxXLSRows caps legacy XLS reads; the format itself tops out at 65536
// rows per sheet.
const maxXLSRows = 65536
