package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/adscout"
	main "github.com/fwojciec/adscout/cmd/adscout"
	"github.com/fwojciec/adscout/mock"
	"github.com/fwojciec/adscout/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScraper returns a scraper whose pages are bike listings unless the
// URL ends in "sofa", and whose fetches fail for URLs ending in "down".
func newScraper(listings adscout.ListingService) *scrape.Scraper {
	extractor := &mock.ListingExtractor{
		PlatformFn: func() adscout.Platform { return adscout.PlatformCraigslist },
		ExtractFn: func(html string, pageURL string) (*adscout.Listing, error) {
			return &adscout.Listing{
				URL:           pageURL,
				Title:         "Trek Marlin 7",
				Price:         "$650",
				Platform:      adscout.PlatformCraigslist,
				IsBikeListing: html != "sofa",
			}, nil
		},
	}
	return &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				switch url {
				case "https://a.example/sofa":
					return "sofa", nil
				case "https://a.example/down":
					return "", adscout.Errorf(adscout.EINTERNAL, "page script failed")
				}
				return "bike", nil
			},
		},
		Extractors: &mock.ExtractorRegistry{
			GetForURLFn: func(_ string) adscout.ListingExtractor { return extractor },
		},
		Listings: listings,
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports saved, skipped and failed URLs", func(t *testing.T) {
		t.Parallel()

		saved := 0
		listings := &mock.ListingService{
			SaveListingFn: func(_ context.Context, _ *adscout.Listing) (int, error) {
				saved++
				return 10 + saved, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Listings: listings,
			Scraper:  newScraper(listings),
		}

		cmd := &main.ScrapeCmd{
			URLs:        []string{"https://a.example/bike", "https://a.example/sofa", "https://a.example/down"},
			Concurrency: 2,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, saved)
		output := stdout.String()
		assert.Contains(t, output, "Scraping 3 URLs")
		assert.Contains(t, output, "[1/3] saved Trek Marlin 7 | $650")
		assert.Contains(t, output, "[2/3] skip a.example/sofa: not a bike listing")
		assert.Contains(t, output, "Saved 1 listings (1 skipped, 1 failed)")
		assert.Contains(t, output, "11 listings stored")
		assert.Contains(t, stderr.String(), "[3/3] failed a.example/down")
		assert.Contains(t, stderr.String(), "page script failed")
	})

	t.Run("applies concurrency and retry flags", func(t *testing.T) {
		t.Parallel()

		listings := &mock.ListingService{
			SaveListingFn: func(_ context.Context, _ *adscout.Listing) (int, error) {
				return 1, nil
			},
		}
		scraper := newScraper(listings)
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Listings: listings,
			Scraper:  scraper,
		}

		cmd := &main.ScrapeCmd{URLs: []string{"https://a.example/bike"}, Concurrency: 7, Retries: 0}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 7, scraper.Concurrency)
		assert.Empty(t, scraper.RetryDelays)
	})

	t.Run("prints storage errors and returns them", func(t *testing.T) {
		t.Parallel()

		listings := &mock.ListingService{
			SaveListingFn: func(_ context.Context, _ *adscout.Listing) (int, error) {
				return 0, adscout.Errorf(adscout.EINTERNAL, "database is locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Listings: listings,
			Scraper:  newScraper(listings),
		}

		err := (&main.ScrapeCmd{URLs: []string{"https://a.example/bike"}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: database is locked")
	})
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints listing as JSON", func(t *testing.T) {
		t.Parallel()

		saves := 0
		listings := &mock.ListingService{
			SaveListingFn: func(_ context.Context, _ *adscout.Listing) (int, error) {
				saves++
				return saves, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Listings: listings,
			Scraper:  newScraper(listings),
		}

		err := (&main.ExtractCmd{URL: "https://a.example/bike"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, saves)
		assert.Contains(t, stdout.String(), `"title": "Trek Marlin 7"`)
		assert.Contains(t, stdout.String(), `"isBikeListing": true`)
	})

	t.Run("notes non-bike pages", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: newScraper(&mock.ListingService{}),
		}

		err := (&main.ExtractCmd{URL: "https://a.example/sofa"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "not a bike listing")
	})

	t.Run("prints fetch errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		scraper := newScraper(&mock.ListingService{})
		scraper.RetryDelays = []time.Duration{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: scraper,
		}

		err := (&main.ExtractCmd{URL: "https://a.example/down"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: page script failed")
	})
}
