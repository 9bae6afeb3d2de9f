package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/afuste/dueltrack/internal/extract"
)

// ReadExportFile loads a message export from disk, dispatching on extension
// (.csv, or .xlsx/.xls via excelize). maxBytes caps the file size before any
// parsing happens; pass 0 for no limit.
func ReadExportFile(path string, maxBytes int64) ([]extract.Row, error) {
	if err := checkSize(path, maxBytes); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xls":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported export format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// ReadTranscriptFile loads a pasted-conversation text file with a size cap.
func ReadTranscriptFile(path string, maxBytes int64) (string, error) {
	if err := checkSize(path, maxBytes); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}

func checkSize(path string, maxBytes int64) error {
	if maxBytes <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxBytes {
		return fmt.Errorf("%s exceeds the %d MB limit", filepath.Base(path), maxBytes/(1024*1024))
	}
	return nil
}
