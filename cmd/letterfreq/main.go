package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/letterfreq"
	"github.com/fwojciec/letterfreq/crawl"
	"github.com/fwojciec/letterfreq/fs"
	"github.com/fwojciec/letterfreq/goquery"
	lfhttp "github.com/fwojciec/letterfreq/http"
	lfslog "github.com/fwojciec/letterfreq/slog"
	"github.com/fwojciec/letterfreq/sqlite"
	"github.com/fwojciec/letterfreq/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when a run is stored.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. With no arguments it
// counts biblior.net and writes output.json to the working directory.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("letterfreq"),
		kong.Description("Count letter frequencies across the Romanian texts of biblior.net"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_output": fs.DefaultOutputPath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if err := cli.validate(); err != nil {
		return err
	}

	site, err := cli.loadSite()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	httpOpts := []lfhttp.Option{lfhttp.WithTimeout(cli.Timeout)}
	if cli.CheckStatus {
		httpOpts = append(httpOpts, lfhttp.WithStatusCheck())
	}

	var fetcher letterfreq.Fetcher = lfhttp.NewFetcher(httpOpts...)
	if cli.Retries > 0 {
		fetcher = crawl.NewRetryFetcher(fetcher, crawl.RetryDelays(cli.Retries), func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		})
	}
	fetcher = lfslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	deps.Crawler = &crawl.Crawler{
		Site:        site,
		Links:       lfslog.NewLoggingLinkReader(goquery.NewLinkReader(fetcher), logger),
		Contents:    lfslog.NewLoggingContentReader(goquery.NewContentReader(fetcher), logger),
		Concurrency: cli.Concurrency,
		Compose:     cli.Compose,
	}

	// The database goes first so the report carries its ID when the
	// frequency table is written.
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewReportService(m.DB)
		deps.Writers = append(deps.Writers, deps.Store)
	}

	if cli.Stdout {
		deps.Writers = append(deps.Writers, NewStreamWriter(stdout))
	} else {
		deps.Writers = append(deps.Writers, fs.NewReportWriter(cli.Output))
	}

	cmd := &CountCmd{Output: cli.Output, Stdout: cli.Stdout}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
// Every flag defaults to the canonical biblior.net run.
type CLI struct {
	Output      string        `short:"o" default:"${default_output}" help:"Path of the JSON frequency table"`
	Stdout      bool          `help:"Print the frequency table to standard output instead of a file"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent chapter page fetches"`
	Timeout     time.Duration `short:"t" default:"0s" help:"HTTP timeout per request (0 waits indefinitely)"`
	Retries     int           `default:"0" help:"Retries per failed request, backing off 1s, 2s, 4s, ..."`
	CheckStatus bool          `name:"check-status" help:"Fail the run on non-200 responses instead of counting their body"`
	Compose     bool          `help:"NFC-compose page text before counting"`
	DB          string        `name:"db" help:"Also store the run in this SQLite database"`
	Site        string        `help:"YAML file overriding the site layout"`
	BaseURL     string        `name:"base-url" help:"Crawl this base URL instead of the configured one"`
	Verbose     bool          `short:"v" help:"Log every request"`
}

// validate checks flag values kong cannot check on its own.
func (c *CLI) validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if !c.Stdout && c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

// loadSite returns the site layout: the built-in one, or the --site file,
// with --base-url applied on top.
func (c *CLI) loadSite() (letterfreq.Site, error) {
	site := letterfreq.DefaultSite()
	if c.Site != "" {
		var err error
		site, err = yaml.LoadSite(c.Site)
		if err != nil {
			return letterfreq.Site{}, err
		}
	}
	if c.BaseURL != "" {
		site.BaseURL = c.BaseURL
	}
	if err := site.Validate(); err != nil {
		return letterfreq.Site{}, err
	}
	return site, nil
}
