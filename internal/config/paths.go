package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// Every default input and output location is derived from here.
type Paths struct {
	ExecutableDir string
	DataDir       string
	OutputDir     string
	LogsDir       string

	// Well-known files
	StockCSV       string
	StockReport    string
	StockChart     string
	CalculatorXLSX string
}

// GetPaths returns the application paths relative to the executable location.
// Paths never depend on the current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths lays out the directory structure under baseDir:
//
//	<baseDir>/
//	  ├── data/nvda_stock.csv
//	  ├── output/   (reports, charts, workbooks)
//	  └── logs/
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, DefaultDataDir)
	outputDir := filepath.Join(baseDir, DefaultOutputDir)

	return &Paths{
		ExecutableDir:  baseDir,
		DataDir:        dataDir,
		OutputDir:      outputDir,
		LogsDir:        filepath.Join(baseDir, DefaultLogsDir),
		StockCSV:       filepath.Join(dataDir, StockCSVFileName),
		StockReport:    filepath.Join(outputDir, StockReportFileName),
		StockChart:     filepath.Join(outputDir, StockChartFileName),
		CalculatorXLSX: filepath.Join(outputDir, CalculatorFileName),
	}
}

// EnsureDirectories creates the output and logs directories.
// The data directory is input only and is left alone.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Default().Debug("Ensured directory exists", slog.String("directory", dir))
	}
	return nil
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetOutputPath returns the full path for a generated file
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// Resolve returns path unchanged when absolute, otherwise relative to the executable directory
func (p *Paths) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.ExecutableDir, path)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
