package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/letterfreq"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ letterfreq.ReportService = (*ReportService)(nil)

// ReportService implements letterfreq.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// WriteReport stores a report with its pages and frequencies in a single
// transaction. A report without an ID gets a generated one.
func (s *ReportService) WriteReport(ctx context.Context, report *letterfreq.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.StartedAt.IsZero() {
		report.StartedAt = time.Now()
	}
	if report.FinishedAt.IsZero() {
		report.FinishedAt = report.StartedAt
	}
	report.StartedAt = report.StartedAt.UTC().Truncate(time.Second)
	report.FinishedAt = report.FinishedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, site, started_at, finished_at)
		VALUES (?, ?, ?, ?)
	`, report.ID, report.Site,
		report.StartedAt.Format(time.RFC3339), report.FinishedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, p := range report.Pages {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pages (run_id, position, url, chars, content_hash)
			VALUES (?, ?, ?, ?, ?)
		`, report.ID, p.Position, p.URL, p.Chars, p.Hash); err != nil {
			return fmt.Errorf("insert page %s: %w", p.URL, err)
		}
	}

	for i, f := range report.Frequencies {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO frequencies (run_id, position, key, count)
			VALUES (?, ?, ?, ?)
		`, report.ID, i, string(f.Key), f.Count); err != nil {
			return fmt.Errorf("insert frequency %q: %w", string(f.Key), err)
		}
	}

	return tx.Commit()
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*letterfreq.Report, error) {
	var report letterfreq.Report
	var startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, site, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&report.ID, &report.Site, &startedAt, &finishedAt)

	if err == sql.ErrNoRows {
		return nil, letterfreq.Errorf(letterfreq.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	if report.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if report.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	if report.Pages, err = s.findPages(ctx, id); err != nil {
		return nil, err
	}
	if report.Frequencies, err = s.findFrequencies(ctx, id); err != nil {
		return nil, err
	}

	return &report, nil
}

func (s *ReportService) findPages(ctx context.Context, runID string) ([]letterfreq.PageStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, url, chars, content_hash
		FROM pages
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []letterfreq.PageStat
	for rows.Next() {
		var p letterfreq.PageStat
		if err := rows.Scan(&p.Position, &p.URL, &p.Chars, &p.Hash); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (s *ReportService) findFrequencies(ctx context.Context, runID string) (letterfreq.Frequencies, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, count
		FROM frequencies
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var freqs letterfreq.Frequencies
	for rows.Next() {
		var key string
		var f letterfreq.Frequency
		if err := rows.Scan(&key, &f.Count); err != nil {
			return nil, err
		}
		if f.Key, err = parseKey(key); err != nil {
			return nil, err
		}
		freqs = append(freqs, f)
	}
	return freqs, rows.Err()
}
