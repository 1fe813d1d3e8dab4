// Package fs provides file-based output for frequency reports.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/letterfreq"
)

// DefaultOutputPath is the file written by a run without configuration.
const DefaultOutputPath = "output.json"

// Ensure ReportWriter implements letterfreq.ReportWriter at compile time.
var _ letterfreq.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes the sorted frequencies of a report as a JSON file.
// The file is written to a temporary name in the same directory and renamed
// into place, so a failed write never leaves a partial file behind.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter that writes to path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// WriteReport writes report.Frequencies to the destination file.
func (w *ReportWriter) WriteReport(ctx context.Context, report *letterfreq.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := letterfreq.EncodeFrequencies(tmp, report.Frequencies); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode frequencies: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	// Atomically replace any previous output
	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
