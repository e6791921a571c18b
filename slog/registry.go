package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/adscout"
)

// Ensure LoggingRegistry implements adscout.ExtractorRegistry.
var _ adscout.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with logging for platform
// detection. Extractors it hands out log each extraction.
type LoggingRegistry struct {
	next   adscout.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next adscout.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform adscout.Platform) adscout.ListingExtractor {
	e := r.next.Get(platform)
	if e == nil {
		return nil
	}
	return NewLoggingExtractor(e, r.logger)
}

// GetForURL delegates to the wrapped registry and logs the platform of
// the extractor it selected.
func (r *LoggingRegistry) GetForURL(pageURL string) adscout.ListingExtractor {
	begin := time.Now()
	e := r.next.GetForURL(pageURL)
	if e == nil {
		r.logger.Warn("platform detection", "url", pageURL, "err", "no extractor")
		return nil
	}
	r.logger.Info("platform detection",
		"url", pageURL,
		"platform", string(e.Platform()),
		"duration", time.Since(begin),
	)
	return NewLoggingExtractor(e, r.logger)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform adscout.Platform, extractor adscout.ListingExtractor) {
	r.next.Register(platform, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []adscout.Platform {
	return r.next.List()
}

// Ensure LoggingExtractor implements adscout.ListingExtractor.
var _ adscout.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListingExtractor with logging.
type LoggingExtractor struct {
	next   adscout.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next adscout.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Platform delegates to the wrapped extractor.
func (e *LoggingExtractor) Platform() adscout.Platform {
	return e.next.Platform()
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, pageURL string) (listing *adscout.Listing, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"platform", string(e.next.Platform()),
			"duration", time.Since(begin),
		}
		if listing != nil {
			attrs = append(attrs,
				"bike", listing.IsBikeListing,
				"title", listing.Title,
				"images", len(listing.Images),
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
