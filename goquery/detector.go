package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/adscout"
)

var _ adscout.PlatformDetector = (*Detector)(nil)

// Detector identifies the commerce platform of a listing page from its URL.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// platformMarkers maps host and path fragments to platforms, checked in order.
var platformMarkers = []struct {
	marker   string
	platform adscout.Platform
}{
	{"craigslist.org", adscout.PlatformCraigslist},
	{"facebook.com/marketplace", adscout.PlatformFacebookMarketplace},
	{"ebay.com", adscout.PlatformEbay},
	{"pinkbike.com", adscout.PlatformPinkbike},
	{"offerup.com", adscout.PlatformOfferUp},
}

// Detect returns the platform of pageURL, or PlatformGeneric if the URL is
// unparsable or matches no known platform.
func (d *Detector) Detect(pageURL string) adscout.Platform {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return adscout.PlatformGeneric
	}

	target := strings.ToLower(u.Host + u.Path)
	for _, m := range platformMarkers {
		if strings.Contains(target, m.marker) {
			return m.platform
		}
	}
	return adscout.PlatformGeneric
}
