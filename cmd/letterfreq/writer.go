package main

import (
	"context"
	"io"

	"github.com/fwojciec/letterfreq"
)

var _ letterfreq.ReportWriter = (*StreamWriter)(nil)

// StreamWriter writes the frequency table of a report to a stream.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter returns a StreamWriter writing to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteReport encodes report.Frequencies as indented JSON.
func (s *StreamWriter) WriteReport(_ context.Context, report *letterfreq.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}
	return letterfreq.EncodeFrequencies(s.w, report.Frequencies)
}
