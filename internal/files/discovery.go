package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Activity file suffixes. Matching is case-sensitive: Garmin/Strava exports
// use lowercase extensions and the batch contract promises one fixed policy.
const (
	FitSuffix     = ".fit"
	FitGzipSuffix = ".fit.gz"
)

// FileInfo represents information about a discovered activity file
type FileInfo struct {
	Path       string
	Name       string
	Size       int64
	ModTime    time.Time
	Compressed bool
}

// Discovery provides activity-file discovery operations
type Discovery struct{}

// NewDiscovery creates a new file discovery instance
func NewDiscovery() *Discovery {
	return &Discovery{}
}

// FindActivityFiles finds all .fit and .fit.gz files directly inside dir
// (no recursion into subdirectories), sorted lexicographically by name.
func (d *Discovery) FindActivityFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		compressed := strings.HasSuffix(name, FitGzipSuffix)
		if !compressed && !strings.HasSuffix(name, FitSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:       filepath.Join(dir, name),
			Name:       name,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			Compressed: compressed,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// ActivityID returns the identifier derived from an activity file name:
// the base name with the compressed-format and activity-format suffixes
// stripped ("morning_run.fit.gz" -> "morning_run").
func ActivityID(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, FitSuffix)
	return base
}
