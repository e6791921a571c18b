package adscout_test

import (
	"testing"

	"github.com/fwojciec/adscout"
	"github.com/stretchr/testify/assert"
)

func TestFormatListings(t *testing.T) {
	t.Parallel()

	t.Run("formats single listing with title and price", func(t *testing.T) {
		t.Parallel()

		listings := []*adscout.Listing{
			{Title: "Trek Domane SL6", Price: "$2,400", Platform: adscout.PlatformCraigslist, URL: "https://sfbay.craigslist.org/bik/1.html"},
		}

		result := adscout.FormatListings(listings)

		assert.Equal(t, "Trek Domane SL6 | $2,400 | craigslist | https://sfbay.craigslist.org/bik/1.html", result)
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		listings := []*adscout.Listing{
			{Price: "$100", Platform: adscout.PlatformGeneric, URL: "https://example.com/ad"},
		}

		result := adscout.FormatListings(listings)

		assert.Equal(t, "https://example.com/ad | $100 | generic | https://example.com/ad", result)
	})

	t.Run("shows no price when price is missing", func(t *testing.T) {
		t.Parallel()

		listings := []*adscout.Listing{
			{Title: "Old Schwinn", Platform: adscout.PlatformEbay, URL: "https://www.ebay.com/itm/1"},
		}

		result := adscout.FormatListings(listings)

		assert.Contains(t, result, "| no price |")
	})

	t.Run("formats multiple listings on separate lines", func(t *testing.T) {
		t.Parallel()

		listings := []*adscout.Listing{
			{Title: "One", Price: "$1", Platform: adscout.PlatformGeneric, URL: "https://a.example"},
			{Title: "Two", Price: "$2", Platform: adscout.PlatformGeneric, URL: "https://b.example"},
		}

		result := adscout.FormatListings(listings)

		assert.Equal(t, "One | $1 | generic | https://a.example\nTwo | $2 | generic | https://b.example", result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, adscout.FormatListings(nil))
	})
}
