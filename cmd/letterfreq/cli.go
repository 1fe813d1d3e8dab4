package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/letterfreq"
	"github.com/fwojciec/letterfreq/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Crawler *crawl.Crawler

	// Store is set when runs are kept in a database.
	Store letterfreq.ReportService

	// Writers receive the finished report in order.
	Writers []letterfreq.ReportWriter
}

// CountCmd handles the counting run.
type CountCmd struct {
	Output string
	Stdout bool
}
