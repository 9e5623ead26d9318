package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"fitcli/internal/files"
	"fitcli/internal/infrastructure"
)

// FileFailure records one activity file that could not be loaded.
type FileFailure struct {
	Name string
	Err  string
}

// LoadResult is the outcome of one directory batch load. Table is never nil;
// when no file produced data it is a zero-row, zero-column table.
type LoadResult struct {
	Table        *Table
	Attempted    int
	Loaded       int
	SkippedEmpty []string
	Failures     []FileFailure
}

// Summary returns the human-readable one-line batch result.
func (r *LoadResult) Summary() string {
	return fmt.Sprintf("loaded %d of %d files", r.Loaded, r.Attempted)
}

// Loader batch-loads a directory of activity files into one combined table.
type Loader struct {
	reader    *Reader
	discovery *files.Discovery
}

// NewLoader creates a loader around the given decoder. A nil decoder is the
// fail-closed configuration: every file reads as empty.
func NewLoader(dec Decoder) *Loader {
	return &Loader{
		reader:    NewReader(dec),
		discovery: files.NewDiscovery(),
	}
}

// LoadDir reads every .fit/.fit.gz file directly inside dir (sorted by name)
// into one combined table. Each file is an independent unit of work: a file
// that fails to decode is recorded in Failures and the batch continues; a
// file that decodes to zero usable records is recorded in SkippedEmpty.
// Per-file row order is preserved; files are concatenated in sorted name
// order. An unreadable directory is the only error returned.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*LoadResult, error) {
	log := infrastructure.LoggerWithContext(ctx)

	found, err := l.discovery.FindActivityFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{
		Table:     NewTable(),
		Attempted: len(found),
	}

	for _, f := range found {
		log.Debug("loading activity file",
			slog.String("file", f.Name),
			slog.Int64("size_bytes", f.Size),
			slog.Time("modified", f.ModTime),
			slog.Bool("compressed", f.Compressed))
		table, err := l.loadOne(f)
		if err != nil {
			log.Error("failed to load activity file",
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
			result.Failures = append(result.Failures, FileFailure{Name: f.Name, Err: err.Error()})
			continue
		}
		if table.Len() == 0 {
			log.Warn("skipping empty or unreadable file", slog.String("file", f.Name))
			result.SkippedEmpty = append(result.SkippedEmpty, f.Name)
			continue
		}
		result.Table.Append(table)
		result.Loaded++
	}

	if result.Loaded == 0 {
		log.Warn("no valid activity files found", slog.String("dir", dir))
	}
	log.Info("directory load complete",
		slog.String("dir", dir),
		slog.Int("attempted", result.Attempted),
		slog.Int("loaded", result.Loaded),
		slog.Int("skipped_empty", len(result.SkippedEmpty)),
		slog.Int("failed", len(result.Failures)))

	return result, nil
}

// loadOne reads, cleans and tags a single file.
func (l *Loader) loadOne(f files.FileInfo) (*Table, error) {
	table, err := l.reader.ReadAndClean(f.Path)
	if err != nil {
		return nil, err
	}
	if table.Len() > 0 {
		table.SetConstColumn("run_id", files.ActivityID(f.Name))
	}
	return table, nil
}
