package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adscout"
)

var _ adscout.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetch. Successful fetches are logged at
// debug level and failures at warn level, both tagged with the listing
// site's domain.
type LoggingFetcher struct {
	next   adscout.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next.
func NewLoggingFetcher(next adscout.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"domain", adscout.Domain(url),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Warn("fetch failed", append(attrs, "err", err)...)
			return
		}
		f.logger.Debug("fetch", append(attrs, "bytes", len(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
