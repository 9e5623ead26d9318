// Package exporter writes combined activity tables to disk.
//
// Two encodings are supported: CSV (encoding/csv) and Parquet
// (github.com/parquet-go/parquet-go with a schema derived from the table's
// column set at write time). Both encode the table exactly as loaded: column
// order preserved, null cells empty, no index column.
package exporter
