package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Listings adscout.ListingService
	Scraper  *scrape.Scraper
}

// Storage backends selectable with --store.
const (
	storeSQLite = "sqlite"
	storeJSON   = "json"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `help:"Listing store path (default ~/.adscout/adscout.db)" env:"ADSCOUT_DB" type:"path"`
	Store   string `help:"Storage backend" enum:"sqlite,json" default:"sqlite"`
	Verbose bool   `short:"v" help:"Log operations to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape listing pages and save bike ads"`
	Extract ExtractCmd `cmd:"" help:"Extract a listing page and print it as JSON without saving"`
	List    ListCmd    `cmd:"" help:"List stored listings"`
	Stats   StatsCmd   `cmd:"" help:"Show listing counts by domain"`
	Clear   ClearCmd   `cmd:"" help:"Remove all stored listings"`
	Compare CompareCmd `cmd:"" help:"Compare a stored listing with similar ads"`
	Market  MarketCmd  `cmd:"" help:"Show the price distribution of stored listings"`
	Export  ExportCmd  `cmd:"" help:"Export stored listings as CSV, JSON, HTML or Markdown"`
}

// FetchOptions are the flags shared by commands that fetch pages.
type FetchOptions struct {
	Browser bool          `short:"b" help:"Render pages in headless Chrome"`
	Timeout time.Duration `default:"15s" help:"Timeout for a single page fetch"`
	Settle  time.Duration `default:"0s" help:"Extra wait after page load with --browser"`
	Text    string        `enum:"readability,trafilatura" default:"readability" help:"Main text extractor for pages without a platform extractor"`
}

// Main text extractors selectable with --text.
const (
	textReadability = "readability"
	textTrafilatura = "trafilatura"
)

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs         []string `arg:"" name:"url" help:"Listing page URLs"`
	FetchOptions `embed:""`
	Concurrency  int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Retries      int     `default:"3" help:"Fetch retries per URL"`
	Rate         float64 `default:"1" help:"Requests per second to each host (0 disables)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL          string `arg:"" help:"Listing page URL"`
	FetchOptions `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Platform string `short:"p" help:"Only listings from this platform"`
	Category string `help:"Only listings in this category (bicycle, motorcycle)"`
	Limit    int    `short:"n" help:"Maximum number of listings to show"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm deletion"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	URL  string `arg:"" help:"URL of a stored listing"`
	Max  int    `default:"10" help:"Maximum number of similar listings"`
	JSON bool   `help:"Print the report as JSON"`
}

// MarketCmd is the "market" subcommand.
type MarketCmd struct {
	Platform string `short:"p" help:"Only listings from this platform"`
	Category string `help:"Only listings in this category (bicycle, motorcycle)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" enum:"csv,json,html,markdown" default:"csv" help:"Output format"`
	Output string `short:"o" type:"path" help:"Write to file instead of stdout"`
}

// listingFilter builds a store filter from the optional platform and
// category flags.
func listingFilter(platform, category string) (adscout.ListingFilter, error) {
	var filter adscout.ListingFilter
	if platform != "" {
		p := adscout.Platform(platform)
		if !p.Valid() {
			return filter, adscout.Errorf(adscout.EINVALID, "unknown platform %q", platform)
		}
		filter.Platform = &p
	}
	if category != "" {
		filter.Category = &category
	}
	return filter, nil
}
