// Package exporter writes the pipeline's per-year and multi-year outputs:
// spreadsheet workbooks, the per-year trade TXT files, the combined CSV and
// the overall fill log. All files land in the configured base directory.
package exporter

import (
	"log/slog"
	"path/filepath"
	"strconv"

	"climcli/internal/station"
)

// Exporter writes pipeline outputs under the base directory.
type Exporter struct {
	baseDir string
	logger  *slog.Logger
}

// New creates an exporter rooted at the base directory.
func New(baseDir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{baseDir: baseDir, logger: logger}
}

// path resolves an output filename against the base directory.
func (e *Exporter) path(name string) string {
	return filepath.Join(e.baseDir, name)
}

// formatValue renders a measurement for text outputs; missing values become
// an empty field.
func formatValue(v station.Value) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}
