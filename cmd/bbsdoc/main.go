package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bbsdoc"
	"github.com/fwojciec/bbsdoc/crawl"
	"github.com/fwojciec/bbsdoc/etree"
	"github.com/fwojciec/bbsdoc/fs"
	"github.com/fwojciec/bbsdoc/goquery"
	"github.com/fwojciec/bbsdoc/htmltomarkdown"
	bbshttp "github.com/fwojciec/bbsdoc/http"
	"github.com/fwojciec/bbsdoc/markup"
	"github.com/fwojciec/bbsdoc/readability"
	bbsslog "github.com/fwojciec/bbsdoc/slog"
	"github.com/fwojciec/bbsdoc/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bbsdoc"),
		kong.Description("Harvest a bulletin board archive into a single document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		defaultVars(bbsdoc.DefaultConfig()),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, a := range args {
		if a == "--help" || a == "-h" || a == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", bbsdoc.ErrorMessage(err))
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher := newFetcher(cfg, logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Harvester: &crawl.Harvester{
			Config:      cfg,
			Fetcher:     fetcher,
			Feed:        newFeedParser(logger),
			Extractor:   newExtractor(cfg.Fallback, logger),
			Store:       newStore(cfg.OutputPath, logger),
			RateLimiter: crawl.NewDomainLimiter(cfg.RPS),
			Throttle:    crawl.NewJitter(cfg.MinDelay, cfg.MaxDelay),
		},
	}

	cmd := &HarvestCmd{}
	return cmd.Run(deps)
}

// defaultVars exposes cfg to the CLI struct tags as kong variables.
func defaultVars(cfg bbsdoc.Config) kong.Vars {
	return kong.Vars{
		"feed_url":        cfg.FeedURL,
		"post_url_prefix": cfg.PostURLPrefix,
		"base_path":       cfg.BasePath,
		"path_prefix":     cfg.PathPrefix,
		"title":           cfg.Title,
		"board":           cfg.Board,
		"output":          cfg.OutputPath,
		"timeout":         cfg.Timeout.String(),
		"user_agent":      cfg.UserAgent,
		"min_delay":       cfg.MinDelay.String(),
		"max_delay":       cfg.MaxDelay.String(),
		"rps":             strconv.FormatFloat(cfg.RPS, 'g', -1, 64),
		"preview_length":  strconv.Itoa(cfg.PreviewLength),
		"fallback":        cfg.Fallback,
	}
}

func newFetcher(cfg bbsdoc.Config, logger *slog.Logger) bbsdoc.Fetcher {
	var f bbsdoc.Fetcher = bbshttp.NewFetcher(
		bbshttp.WithTimeout(cfg.Timeout),
		bbshttp.WithUserAgent(cfg.UserAgent),
	)
	if logger != nil {
		f = bbsslog.NewLoggingFetcher(f, logger)
	}
	return f
}

func newFeedParser(logger *slog.Logger) bbsdoc.FeedParser {
	var p bbsdoc.FeedParser = etree.NewFeedParser()
	if logger != nil {
		p = bbsslog.NewLoggingFeedParser(p, logger)
	}
	return p
}

// newExtractor builds the selector extractor with the named fallback.
func newExtractor(fallback string, logger *slog.Logger) bbsdoc.Extractor {
	var opts []goquery.Option
	switch fallback {
	case bbsdoc.FallbackTrafilatura:
		opts = append(opts, goquery.WithFallback(trafilatura.NewExtractor()))
	case bbsdoc.FallbackReadability:
		opts = append(opts, goquery.WithFallback(readability.NewExtractor()))
	}

	var e bbsdoc.Extractor = goquery.NewExtractor(opts...)
	if logger != nil {
		e = bbsslog.NewLoggingExtractor(e, logger)
	}
	return e
}

func newStore(path string, logger *slog.Logger) bbsdoc.DocumentStore {
	var s bbsdoc.DocumentStore = fs.NewDocumentStore(path, formatterFor(path))
	if logger != nil {
		s = bbsslog.NewLoggingDocumentStore(s, logger)
	}
	return s
}

// formatterFor picks the output format from the file extension.
func formatterFor(path string) bbsdoc.DocumentFormatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return markup.NewFormatter()
	case ".txt":
		return bbsdoc.TextFormatter{}
	default:
		return htmltomarkdown.NewFormatter(markup.NewFormatter())
	}
}
