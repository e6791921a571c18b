package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/adscout"
	main "github.com/fwojciec/adscout/cmd/adscout"
	"github.com/fwojciec/adscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists listings with title, price and URL", func(t *testing.T) {
		t.Parallel()

		listings := &mock.ListingService{
			FindListingsFn: func(_ context.Context, _ adscout.ListingFilter) ([]*adscout.Listing, error) {
				return []*adscout.Listing{
					{
						URL:      "https://sfbay.craigslist.org/bik/1.html",
						Title:    "Trek Domane SL6",
						Price:    "$2,400",
						Platform: adscout.PlatformCraigslist,
						Category: adscout.CategoryBicycle,
					},
					{
						URL:      "https://www.pinkbike.com/buysell/2",
						Title:    "Santa Cruz Hightower",
						Price:    "$3,100",
						Platform: adscout.PlatformPinkbike,
						Category: adscout.CategoryBicycle,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Listings: listings,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Trek Domane SL6")
		assert.Contains(t, output, "$2,400")
		assert.Contains(t, output, "https://www.pinkbike.com/buysell/2")
	})

	t.Run("passes platform, category and limit to the store", func(t *testing.T) {
		t.Parallel()

		var got adscout.ListingFilter
		listings := &mock.ListingService{
			FindListingsFn: func(_ context.Context, filter adscout.ListingFilter) ([]*adscout.Listing, error) {
				got = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Listings: listings,
		}

		cmd := &main.ListCmd{Platform: "ebay", Category: "motorcycle", Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Platform)
		assert.Equal(t, adscout.PlatformEbay, *got.Platform)
		require.NotNil(t, got.Category)
		assert.Equal(t, "motorcycle", *got.Category)
		assert.Equal(t, 5, got.Limit)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Listings: &mock.ListingService{},
		}

		err := (&main.ListCmd{Platform: "myspace"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, adscout.EINVALID, adscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), `unknown platform "myspace"`)
	})

	t.Run("shows helpful message when no listings exist", func(t *testing.T) {
		t.Parallel()

		listings := &mock.ListingService{
			FindListingsFn: func(_ context.Context, _ adscout.ListingFilter) ([]*adscout.Listing, error) {
				return []*adscout.Listing{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Listings: listings,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No listings")
	})

	t.Run("returns error when FindListings fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		listings := &mock.ListingService{
			FindListingsFn: func(_ context.Context, _ adscout.ListingFilter) ([]*adscout.Listing, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Listings: listings,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error: database connection failed")
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints total and busiest domains first", func(t *testing.T) {
		t.Parallel()

		listings := &mock.ListingService{
			StatsFn: func(_ context.Context) (*adscout.Stats, error) {
				return &adscout.Stats{
					Total: 4,
					ByDomain: map[string]int{
						"pinkbike.com":   1,
						"craigslist.org": 3,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Listings: listings,
		}

		err := (&main.StatsCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Total listings: 4")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("craigslist.org")), bytes.Index(stdout.Bytes(), []byte("pinkbike.com")))
	})
}

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("clears listings when --force is set", func(t *testing.T) {
		t.Parallel()

		cleared := false
		listings := &mock.ListingService{
			ClearListingsFn: func(_ context.Context) error {
				cleared = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Listings: listings,
		}

		err := (&main.ClearCmd{Force: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Contains(t, stdout.String(), "Cleared")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Listings: &mock.ListingService{},
		}

		err := (&main.ClearCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})
}
