package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/afuste/dueltrack/internal/extract"
)

// Column names of a LinkedIn messages export, matched case-insensitively.
const (
	colFrom         = "FROM"
	colContent      = "CONTENT"
	colDate         = "DATE"
	colConversation = "CONVERSATION ID"
)

var requiredColumns = []string{colFrom, colContent, colDate}

// ReadCSV parses a messages.csv export into extractor rows. Message content
// may span multiple lines inside quotes; encoding/csv handles that. Missing
// required columns are an error here (the adapter fails fast), unlike in the
// extractor which tolerates empty fields.
func ReadCSV(r io.Reader) ([]extract.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := columnIndex(header)
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, fmt.Errorf("csv is missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []extract.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, rowFromRecord(rec, idx))
	}
	return rows, nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return idx
}

func missingColumns(idx map[string]int) []string {
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func rowFromRecord(rec []string, idx map[string]int) extract.Row {
	return extract.Row{
		Sender:         field(rec, idx, colFrom),
		Content:        field(rec, idx, colContent),
		Date:           field(rec, idx, colDate),
		ConversationID: field(rec, idx, colConversation),
	}
}
