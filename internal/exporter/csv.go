package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "fitcli/internal/errors"
	"fitcli/internal/ingestion"
)

// CSVWriter writes tables as CSV files.
type CSVWriter struct{}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteTable writes the table to path: one header row with the table's
// columns in order, one line per row, null cells as empty strings. No index
// column is persisted.
func (w *CSVWriter) WriteTable(path string, table *ingestion.Table) error {
	slog.Info("Writing CSV file",
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns())))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to open file", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	cols := table.Columns()
	if err := writer.Write(cols); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	record := make([]string, len(cols))
	for i := 0; i < table.Len(); i++ {
		for j, col := range cols {
			v, ok := table.Value(i, col)
			if !ok {
				record[j] = ""
				continue
			}
			record[j] = formatCell(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
