package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/mock"
	adslog "github.com/fwojciec/adscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingListingService_SaveListing(t *testing.T) {
	t.Parallel()

	t.Run("logs url, platform and total", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingService{
			SaveListingFn: func(_ context.Context, _ *adscout.Listing) (int, error) {
				return 3, nil
			},
		}

		svc := adslog.NewLoggingListingService(inner, logger)
		total, err := svc.SaveListing(context.Background(), &adscout.Listing{
			URL:      "https://sfbay.craigslist.org/bik/1.html",
			Platform: adscout.PlatformCraigslist,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		output := buf.String()
		assert.Contains(t, output, "save listing")
		assert.Contains(t, output, "url=https://sfbay.craigslist.org/bik/1.html")
		assert.Contains(t, output, "platform=craigslist")
		assert.Contains(t, output, "total=3")
	})

	t.Run("logs storage errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingService{
			SaveListingFn: func(_ context.Context, _ *adscout.Listing) (int, error) {
				return 0, adscout.Errorf(adscout.EINTERNAL, "disk full")
			},
		}

		svc := adslog.NewLoggingListingService(inner, logger)
		_, err := svc.SaveListing(context.Background(), &adscout.Listing{URL: "https://a.example/1"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "disk full")
	})

	t.Run("logs rejected nil listing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingService{
			SaveListingFn: func(_ context.Context, l *adscout.Listing) (int, error) {
				if l == nil {
					return 0, adscout.Errorf(adscout.EINVALID, "listing required")
				}
				return 1, nil
			},
		}

		svc := adslog.NewLoggingListingService(inner, logger)

		var err error
		require.NotPanics(t, func() {
			_, err = svc.SaveListing(context.Background(), nil)
		})
		assert.Equal(t, adscout.EINVALID, adscout.ErrorCode(err))
		assert.Contains(t, buf.String(), "listing required")
	})
}

func TestLoggingListingService_Delegates(t *testing.T) {
	t.Parallel()

	t.Run("find listings logs count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingService{
			FindListingsFn: func(_ context.Context, _ adscout.ListingFilter) ([]*adscout.Listing, error) {
				return []*adscout.Listing{{URL: "a"}, {URL: "b"}}, nil
			},
		}

		svc := adslog.NewLoggingListingService(inner, logger)
		listings, err := svc.FindListings(context.Background(), adscout.ListingFilter{Limit: 5})

		require.NoError(t, err)
		assert.Len(t, listings, 2)
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "limit=5")
	})

	t.Run("find by url passes not found through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingService{
			FindListingByURLFn: func(_ context.Context, _ string) (*adscout.Listing, error) {
				return nil, adscout.Errorf(adscout.ENOTFOUND, "listing not found")
			},
		}

		svc := adslog.NewLoggingListingService(inner, logger)
		_, err := svc.FindListingByURL(context.Background(), "https://a.example/1")

		assert.Equal(t, adscout.ENOTFOUND, adscout.ErrorCode(err))
		assert.Contains(t, buf.String(), "find listing")
	})

	t.Run("stats and clear delegate", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cleared := false
		inner := &mock.ListingService{
			StatsFn: func(_ context.Context) (*adscout.Stats, error) {
				return &adscout.Stats{Total: 4}, nil
			},
			ClearListingsFn: func(_ context.Context) error {
				cleared = true
				return nil
			},
		}

		svc := adslog.NewLoggingListingService(inner, logger)
		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)
		require.NoError(t, svc.ClearListings(context.Background()))

		assert.Equal(t, 4, stats.Total)
		assert.True(t, cleared)
		assert.Contains(t, buf.String(), "clear listings")
	})
}
