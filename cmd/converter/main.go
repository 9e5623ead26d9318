// Command converter batch-converts .fit/.fit.gz activity exports into one
// cleaned CSV + Parquet pair.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fitcli/internal/config"
	"fitcli/internal/exporter"
	"fitcli/internal/files"
	"fitcli/internal/infrastructure"
	"fitcli/internal/ingestion"
)

const (
	parquetName = "strava_runs.parquet"
	csvName     = "strava_runs.csv"
)

func main() {
	var inDir, outDir string
	flag.StringVar(&inDir, "input", "", "input directory for .fit/.fit.gz files")
	flag.StringVar(&inDir, "i", "", "shorthand for -input")
	flag.StringVar(&outDir, "outdir", "", "output directory for CSV/Parquet files")
	flag.StringVar(&outDir, "o", "", "shorthand for -outdir")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		fallback := config.Default()
		cfg = &fallback
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if inDir == "" {
		inDir = cfg.Paths.InputDir
	}
	if outDir == "" {
		outDir = cfg.Paths.OutputDir
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "Starting activity batch conversion",
		slog.String("input_dir", inDir),
		slog.String("output_dir", outDir))

	manager := files.NewManager()
	if err := manager.CreateDirectory(outDir); err != nil {
		logger.ErrorContext(ctx, "Error creating output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loader := ingestion.NewLoader(ingestion.NewFITDecoder())
	result, err := loader.LoadDir(ctx, inDir)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load input directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, failure := range result.Failures {
		fmt.Printf("failed: %s (%s)\n", failure.Name, failure.Err)
	}
	for _, name := range result.SkippedEmpty {
		fmt.Printf("skipped empty file: %s\n", name)
	}
	fmt.Println(result.Summary())

	if result.Table.Len() == 0 {
		fmt.Printf("No .fit/.fit.gz files found in %s\n", inDir)
		return
	}

	parquetPath := filepath.Join(outDir, parquetName)
	csvPath := filepath.Join(outDir, csvName)

	for _, path := range []string{parquetPath, csvPath} {
		if manager.FileExists(path) {
			logger.InfoContext(ctx, "Overwriting existing output file", slog.String("path", path))
		}
	}

	if err := exporter.NewParquetWriter().WriteTable(parquetPath, result.Table); err != nil {
		logger.ErrorContext(ctx, "Failed to write parquet output", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := exporter.NewCSVWriter().WriteTable(csvPath, result.Table); err != nil {
		logger.ErrorContext(ctx, "Failed to write CSV output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Saved %d records to:\n- %s\n- %s\n", result.Table.Len(), parquetPath, csvPath)
}
