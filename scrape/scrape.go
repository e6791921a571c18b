// Package scrape provides listing scrape orchestration.
// It coordinates fetching, platform extraction, and storage of
// classified listings.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/adscout"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched at once when
// Scraper.Concurrency is not set.
const DefaultConcurrency = 4

// Scraper orchestrates fetching, extracting, and saving listings.
type Scraper struct {
	Fetcher     adscout.Fetcher
	Extractors  adscout.ExtractorRegistry
	Listings    adscout.ListingService
	RateLimiter adscout.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	// Total is the number of stored listings after the last save.
	Total int
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Listing   *adscout.Listing
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single URL.
type scrapeResult struct {
	position int
	url      string
	listing  *adscout.Listing
	err      error
}

// Scrape fetches each URL, extracts a listing with the platform extractor
// and saves bike listings. Duplicate URLs are processed once. Pages that
// fail to fetch or extract are reported through progress and counted as
// failed; they never stop the batch. Saves happen one at a time in input
// order and a storage error ends the scrape.
func (s *Scraper) Scrape(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	urls = dedupeURLs(urls)
	total := len(urls)
	result := &Result{}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Buffered so workers never block after an early return.
	resultCh := make(chan scrapeResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				listing, err := s.extract(gctx, u)
				resultCh <- scrapeResult{position: i, url: u, listing: listing, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Results arrive out of order; hold them until every earlier URL is handled.
	pending := make(map[int]scrapeResult)
	next := 0
	for r := range resultCh {
		pending[r.position] = r
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if err := s.handle(ctx, r, next, total, result, progress); err != nil {
				return result, err
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, ctx.Err()
}

// handle records the outcome of one URL and saves its listing.
func (s *Scraper) handle(ctx context.Context, r scrapeResult, completed, total int, result *Result, progress ProgressFunc) error {
	event := ProgressEvent{
		Completed: completed,
		Total:     total,
		URL:       r.url,
		Listing:   r.listing,
	}

	switch {
	case r.err != nil:
		result.Failed++
		event.Type = ProgressFailed
		event.Error = r.err
	case !r.listing.IsBikeListing:
		result.Skipped++
		event.Type = ProgressSkipped
	default:
		n, err := s.Listings.SaveListing(ctx, r.listing)
		if err != nil {
			return fmt.Errorf("save %s: %w", r.url, err)
		}
		result.Saved++
		result.Total = n
		event.Type = ProgressCompleted
	}

	if progress != nil {
		progress(event)
	}
	return nil
}

// ExtractURL fetches a single page and returns the extracted listing
// without saving it.
func (s *Scraper) ExtractURL(ctx context.Context, pageURL string) (*adscout.Listing, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return nil, adscout.Errorf(adscout.EINVALID, "URL required")
	}
	return s.extract(ctx, pageURL)
}

// extract fetches and extracts a single URL.
func (s *Scraper) extract(ctx context.Context, pageURL string) (*adscout.Listing, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, rateLimitKey(pageURL)); err != nil {
			return nil, err
		}
	}

	var html string
	var err error
	if s.RetryDelays == nil {
		html, err = FetchWithRetry(ctx, pageURL, s.Fetcher.Fetch, s.Logger)
	} else {
		html, err = FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, s.Logger, s.RetryDelays)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	extractor := s.Extractors.GetForURL(pageURL)
	listing, err := extractor.Extract(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return listing, nil
}

// rateLimitKey groups URLs by host so regional subdomains of one site
// get separate buckets.
func rateLimitKey(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return adscout.Domain(pageURL)
	}
	return strings.ToLower(u.Host)
}

// dedupeURLs trims URLs, drops empty ones, and keeps the first
// occurrence of each.
func dedupeURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
