package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/afuste/dueltrack/internal/extract"
)

// ReadXLSX parses a spreadsheet message export. The first sheet is used; its
// first row must carry the same columns as the CSV export.
func ReadXLSX(r io.Reader) ([]extract.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	idx := columnIndex(records[0])
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, fmt.Errorf("xlsx is missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := make([]extract.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, rowFromRecord(rec, idx))
	}
	return rows, nil
}
