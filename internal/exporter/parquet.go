package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"

	apperrors "fitcli/internal/errors"
	"fitcli/internal/ingestion"
)

// ParquetWriter writes tables as Parquet files.
type ParquetWriter struct{}

// NewParquetWriter creates a new Parquet writer instance.
func NewParquetWriter() *ParquetWriter {
	return &ParquetWriter{}
}

// WriteTable writes the table to path. The schema is built from the table's
// columns: every column is optional, typed by its first non-null cell
// (DOUBLE for numbers, UTF8 for strings, millisecond TIMESTAMP for times).
// Null cells become parquet nulls; no index column is persisted.
func (w *ParquetWriter) WriteTable(path string, table *ingestion.Table) error {
	slog.Info("Writing Parquet file",
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

	schema := schemaFor(table)
	writer := parquet.NewGenericWriter[map[string]any](file, schema)

	rows := make([]map[string]any, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		rows = append(rows, normalizeRow(table, i))
	}

	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			return fmt.Errorf("failed to write rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// schemaFor builds a parquet schema from the table's columns.
func schemaFor(table *ingestion.Table) *parquet.Schema {
	group := parquet.Group{}
	for _, col := range table.Columns() {
		group[col] = parquet.Optional(nodeFor(table, col))
	}
	return parquet.NewSchema("activity", group)
}

// nodeFor picks the leaf type for a column from its first non-null cell.
// An all-null column is stored as an optional string column.
func nodeFor(table *ingestion.Table, col string) parquet.Node {
	for i := 0; i < table.Len(); i++ {
		v, ok := table.Value(i, col)
		if !ok {
			continue
		}
		switch v.(type) {
		case time.Time:
			return parquet.Timestamp(parquet.Millisecond)
		case string:
			return parquet.String()
		case bool:
			return parquet.Leaf(parquet.BooleanType)
		case float64, float32,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
			return parquet.Leaf(parquet.DoubleType)
		default:
			// Unrecognized scalars are rendered as text by normalizeRow.
			return parquet.String()
		}
	}
	return parquet.String()
}

// normalizeRow copies one table row for the parquet writer, converting
// numeric cells to float64 so mixed integer widths share the DOUBLE column.
func normalizeRow(table *ingestion.Table, i int) map[string]any {
	row := table.Row(i)
	out := make(map[string]any, len(row))
	for k, v := range row {
		switch c := v.(type) {
		case nil:
			continue
		case time.Time, string, bool, float64:
			out[k] = c
		case float32:
			out[k] = float64(c)
		case int:
			out[k] = float64(c)
		case int8:
			out[k] = float64(c)
		case int16:
			out[k] = float64(c)
		case int32:
			out[k] = float64(c)
		case int64:
			out[k] = float64(c)
		case uint:
			out[k] = float64(c)
		case uint8:
			out[k] = float64(c)
		case uint16:
			out[k] = float64(c)
		case uint32:
			out[k] = float64(c)
		case uint64:
			out[k] = float64(c)
		default:
			out[k] = formatCell(c)
		}
	}
	return out
}
