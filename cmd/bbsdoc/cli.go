package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/bbsdoc"
	"github.com/fwojciec/bbsdoc/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Harvester *crawl.Harvester
}

// CLI defines the command-line interface structure for Kong.
// Defaults are injected from bbsdoc.DefaultConfig through kong.Vars.
type CLI struct {
	FeedURL       string        `name:"feed-url" default:"${feed_url}" help:"XML index feed listing the board's posts"`
	PostURLPrefix string        `name:"post-url-prefix" default:"${post_url_prefix}" help:"Viewer endpoint post paths are appended to"`
	BasePath      string        `name:"base-path" default:"${base_path}" help:"Board directory path inserted before each post path"`
	PathPrefix    string        `name:"path-prefix" default:"${path_prefix}" help:"Prefix identifying post entries in the feed"`
	Title         string        `default:"${title}" help:"Document title"`
	Board         string        `default:"${board}" help:"Board name used in the document summary"`
	Output        string        `short:"o" default:"${output}" help:"Output file (.html/.htm for HTML, .txt for text, Markdown otherwise)"`
	Timeout       time.Duration `short:"t" default:"${timeout}" help:"Fetch timeout per request"`
	UserAgent     string        `name:"user-agent" default:"${user_agent}" help:"User-Agent header sent with every request"`
	MinDelay      time.Duration `name:"min-delay" default:"${min_delay}" help:"Minimum pause after each post"`
	MaxDelay      time.Duration `name:"max-delay" default:"${max_delay}" help:"Maximum pause after each post"`
	RPS           float64       `name:"rps" default:"${rps}" help:"Requests per second per host (0 disables)"`
	Limit         int           `short:"n" default:"0" help:"Harvest only the first N posts (0 for all)"`
	PreviewLength int           `name:"preview-length" default:"${preview_length}" help:"Characters of raw markup shown when no body is found"`
	Fallback      string        `default:"${fallback}" enum:"none,trafilatura,readability" help:"Extractor consulted when selectors find no body (none, trafilatura, readability)"`
	Verbose       bool          `short:"v" help:"Log fetch, extract, and save operations to stderr"`
}

// Config converts the parsed flags to a harvest configuration.
func (c *CLI) Config() bbsdoc.Config {
	return bbsdoc.Config{
		FeedURL:       c.FeedURL,
		PostURLPrefix: c.PostURLPrefix,
		BasePath:      c.BasePath,
		PathPrefix:    c.PathPrefix,
		Title:         c.Title,
		Board:         c.Board,
		OutputPath:    c.Output,
		UserAgent:     c.UserAgent,
		Timeout:       c.Timeout,
		MinDelay:      c.MinDelay,
		MaxDelay:      c.MaxDelay,
		RPS:           c.RPS,
		Limit:         c.Limit,
		PreviewLength: c.PreviewLength,
		Fallback:      c.Fallback,
	}
}

// HarvestCmd runs a harvest and reports progress to the console.
type HarvestCmd struct{}
