package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/scrape"
)

// urlWidth is the display width of URLs in progress lines.
const urlWidth = 60

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Scraper.Concurrency = c.Concurrency
	}
	deps.Scraper.RetryDelays = scrape.BackoffDelays(c.Retries)

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] saved %s\n", event.Completed, event.Total, adscout.FormatListing(event.Listing))
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] skip %s: not a bike listing\n", event.Completed, event.Total, scrape.ShortURL(event.URL, urlWidth))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] failed %s: %v\n", event.Completed, event.Total, scrape.ShortURL(event.URL, urlWidth), event.Error)
		case scrape.ProgressFinished:
			// Summary printed after scrape completes
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d listings (%d skipped, %d failed)\n", result.Saved, result.Skipped, result.Failed)
	if result.Saved > 0 {
		fmt.Fprintf(deps.Stdout, "%d listings stored\n", result.Total)
	}
	return nil
}

// errorText returns the message of an application error and the full
// text of any other error.
func errorText(err error) string {
	var e *adscout.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
