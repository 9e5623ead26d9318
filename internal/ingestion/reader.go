package ingestion

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "fitcli/internal/errors"
)

// ActivityFile is a decoded activity file restricted to its record-kind
// messages. Each record is an opaque value interpreted by ExtractFields.
type ActivityFile interface {
	Records() []any
}

// Decoder turns a raw byte stream into a decoded ActivityFile. It is the one
// hard external dependency of the reader; a Reader built without one fails
// closed rather than panicking at read time.
type Decoder interface {
	Decode(r io.Reader) (ActivityFile, error)
}

// Reader reads single activity files into per-file tables.
type Reader struct {
	dec Decoder
}

// NewReader creates a reader around the given decoder. dec may be nil when
// no decoding library is available; every read then logs the condition and
// returns an empty table.
func NewReader(dec Decoder) *Reader {
	return &Reader{dec: dec}
}

// ReadFile reads a single .fit or .fit.gz file and returns a table with one
// row per record message. A file that decodes but carries no usable records
// yields an empty table and no error; decode and I/O failures return an
// error. The file handle is released before the function returns.
func (r *Reader) ReadFile(path string) (*Table, error) {
	name := filepath.Base(path)

	if r.dec == nil {
		slog.Error("FIT decoding library is not available; cannot read activity files",
			slog.String("file", name))
		return NewTable(), nil
	}

	af, err := r.decode(path)
	if err != nil {
		return nil, apperrors.NewDecoderError(fmt.Sprintf("failed to read %s", name), err).
			WithContext("file", name)
	}

	table := NewTable()
	for _, rec := range af.Records() {
		if rec == nil {
			continue
		}
		if fields := ExtractFields(rec); len(fields) > 0 {
			table.AddRow(fields)
		}
	}

	if table.Len() == 0 {
		slog.Warn("no record data in file", slog.String("file", name))
	}
	return table, nil
}

// ReadAndClean reads a single activity file and applies the derived-column
// pass to the result.
func (r *Reader) ReadAndClean(path string) (*Table, error) {
	table, err := r.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return AddDerivedColumns(table), nil
}

// decode opens the file (gunzipping into memory first for .gz input) and
// hands the byte stream to the decoder. The OS file handle is closed before
// decode returns.
func (r *Reader) decode(path string) (ActivityFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stream io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		raw, err := io.ReadAll(gz)
		gz.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decompress: %w", err)
		}
		stream = bytes.NewReader(raw)
	}

	return r.dec.Decode(stream)
}
