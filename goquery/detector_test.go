package goquery_test

import (
	"testing"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements adscout.PlatformDetector at compile time.
var _ adscout.PlatformDetector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want adscout.Platform
	}{
		{"craigslist subdomain", "https://sfbay.craigslist.org/sfc/bik/d/san-francisco-trek/7712345678.html", adscout.PlatformCraigslist},
		{"craigslist upper case", "HTTPS://SEATTLE.CRAIGSLIST.ORG/see/mcy/1.html", adscout.PlatformCraigslist},
		{"facebook marketplace", "https://www.facebook.com/marketplace/item/123456789/", adscout.PlatformFacebookMarketplace},
		{"facebook outside marketplace", "https://www.facebook.com/groups/bikes/", adscout.PlatformGeneric},
		{"ebay", "https://www.ebay.com/itm/1234567890", adscout.PlatformEbay},
		{"pinkbike", "https://www.pinkbike.com/buysell/3456789/", adscout.PlatformPinkbike},
		{"offerup", "https://offerup.com/item/detail/abc123", adscout.PlatformOfferUp},
		{"without scheme", "craigslist.org/bik/1.html", adscout.PlatformCraigslist},
		{"unknown site", "https://www.kijiji.ca/v-road-bike/123", adscout.PlatformGeneric},
		{"unparsable", "http://[::1", adscout.PlatformGeneric},
		{"empty", "", adscout.PlatformGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := goquery.NewDetector()

			assert.Equal(t, tt.want, d.Detect(tt.url))
		})
	}
}
