package mock

import (
	"context"

	"github.com/fwojciec/letterfreq"
)

// Compile-time interface verification.
var (
	_ letterfreq.ReportWriter  = (*ReportWriter)(nil)
	_ letterfreq.ReportService = (*ReportService)(nil)
)

// ReportWriter is a mock implementation of letterfreq.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *letterfreq.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *letterfreq.Report) error {
	return w.WriteReportFn(ctx, report)
}

// ReportService is a mock implementation of letterfreq.ReportService.
type ReportService struct {
	WriteReportFn    func(ctx context.Context, report *letterfreq.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*letterfreq.Report, error)
}

func (s *ReportService) WriteReport(ctx context.Context, report *letterfreq.Report) error {
	return s.WriteReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*letterfreq.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}
