package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adscout"
)

// Ensure LoggingListingService implements adscout.ListingService.
var _ adscout.ListingService = (*LoggingListingService)(nil)

// LoggingListingService wraps a ListingService with logging.
type LoggingListingService struct {
	next   adscout.ListingService
	logger *slog.Logger
}

// NewLoggingListingService creates a new LoggingListingService.
func NewLoggingListingService(next adscout.ListingService, logger *slog.Logger) *LoggingListingService {
	return &LoggingListingService{next: next, logger: logger}
}

// SaveListing delegates to the wrapped service and logs the operation.
func (s *LoggingListingService) SaveListing(ctx context.Context, listing *adscout.Listing) (total int, err error) {
	defer func(begin time.Time) {
		var url, platform string
		if listing != nil {
			url, platform = listing.URL, string(listing.Platform)
		}
		s.logger.Info("save listing",
			"url", url,
			"platform", platform,
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveListing(ctx, listing)
}

// FindListingByURL delegates to the wrapped service and logs the operation.
func (s *LoggingListingService) FindListingByURL(ctx context.Context, url string) (listing *adscout.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find listing",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindListingByURL(ctx, url)
}

// FindListings delegates to the wrapped service and logs the operation.
func (s *LoggingListingService) FindListings(ctx context.Context, filter adscout.ListingFilter) (listings []*adscout.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find listings",
			"count", len(listings),
			"offset", filter.Offset,
			"limit", filter.Limit,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindListings(ctx, filter)
}

// Stats delegates to the wrapped service and logs the operation.
func (s *LoggingListingService) Stats(ctx context.Context) (stats *adscout.Stats, err error) {
	defer func(begin time.Time) {
		s.logger.Info("stats",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Stats(ctx)
}

// ClearListings delegates to the wrapped service and logs the operation.
func (s *LoggingListingService) ClearListings(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("clear listings",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearListings(ctx)
}
