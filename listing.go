package adscout

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/publicsuffix"
)

// Platform identifies the commerce platform a listing was scraped from.
type Platform string

// Supported platforms.
const (
	PlatformCraigslist          Platform = "craigslist"
	PlatformFacebookMarketplace Platform = "facebook_marketplace"
	PlatformEbay                Platform = "ebay"
	PlatformPinkbike            Platform = "pinkbike"
	PlatformOfferUp             Platform = "offerup"
	PlatformGeneric             Platform = "generic"
)

// Platforms returns all known platforms in a stable order.
func Platforms() []Platform {
	return []Platform{
		PlatformCraigslist,
		PlatformFacebookMarketplace,
		PlatformEbay,
		PlatformPinkbike,
		PlatformOfferUp,
		PlatformGeneric,
	}
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// Listing categories produced by classification.
const (
	CategoryBicycle    = "bicycle"
	CategoryMotorcycle = "motorcycle"
)

// Listing represents a single classified advertisement.
//
// Price holds the raw price text as shown on the page ("$1,200",
// "best offer"); numeric interpretation is left to the comparison code.
type Listing struct {
	ID            string      `json:"id"`
	URL           string      `json:"url"`
	Title         string      `json:"title"`
	Price         string      `json:"price"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	Platform      Platform    `json:"platform"`
	Category      string      `json:"category"`
	Images        []string    `json:"images"`
	Timestamp     time.Time   `json:"timestamp"`
	IsBikeListing bool        `json:"isBikeListing"`
	Bike          *BikeFields `json:"bike,omitempty"`
	ContentHash   string      `json:"contentHash,omitempty"`
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	if !l.Platform.Valid() {
		return Errorf(EINVALID, "unknown platform %q", l.Platform)
	}
	return nil
}

// Key returns the storage key of the listing. Two listings with the same
// key are the same record.
func (l *Listing) Key() string {
	return ListingKey(l.Platform, l.URL)
}

// ListingKey builds the storage key for a platform and URL pair.
func ListingKey(platform Platform, url string) string {
	return string(platform) + "|" + url
}

// Hash returns the xxHash of the listing's title, price and description as
// a hex string. Stores record it as ContentHash to detect changed ads.
func (l *Listing) Hash() string {
	h := xxhash.Sum64String(l.Title + "\x00" + l.Price + "\x00" + l.Description)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// BikeFields holds structured attributes parsed from a listing's text.
// A nil field means no pattern matched.
type BikeFields struct {
	BikeType       *string `json:"bikeType"`
	FrameSize      *string `json:"frameSize"`
	FrameMaterial  *string `json:"frameMaterial"`
	ComponentGroup *string `json:"componentGroup"`
	WheelSize      *string `json:"wheelSize"`
	Brand          *string `json:"brand"`
	Model          *string `json:"model"`
	Condition      *string `json:"condition"`
	Year           *int    `json:"year"`
}

// BrandName returns the brand or an empty string.
func (l *Listing) BrandName() string {
	if l.Bike == nil || l.Bike.Brand == nil {
		return ""
	}
	return *l.Bike.Brand
}

// ModelYear returns the model year and whether one was parsed.
func (l *Listing) ModelYear() (int, bool) {
	if l.Bike == nil || l.Bike.Year == nil {
		return 0, false
	}
	return *l.Bike.Year, true
}

// Stats summarizes the stored collection.
type Stats struct {
	Total    int            `json:"total"`
	ByDomain map[string]int `json:"byDomain"`
}

// NewStats computes collection statistics from a snapshot of listings.
func NewStats(listings []*Listing) *Stats {
	stats := &Stats{
		Total:    len(listings),
		ByDomain: make(map[string]int),
	}
	for _, l := range listings {
		stats.ByDomain[Domain(l.URL)]++
	}
	return stats
}

// Domain returns the registrable domain of a URL, e.g.
// "https://sfbay.craigslist.org/sfc/bik/1.html" becomes "craigslist.org".
// Unparsable URLs return "unknown".
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	host := strings.ToLower(u.Hostname())
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// ListingService represents a service for managing stored listings.
// Implementations are single-writer; a save for an existing (URL, platform)
// pair replaces the stored record and keeps its ID.
type ListingService interface {
	// SaveListing inserts or updates a listing and returns the total
	// number of stored listings.
	SaveListing(ctx context.Context, listing *Listing) (int, error)

	// FindListingByURL retrieves the most recent listing stored for a URL.
	// Returns ENOTFOUND if no listing exists.
	FindListingByURL(ctx context.Context, url string) (*Listing, error)

	// FindListings retrieves listings matching the filter, newest first.
	FindListings(ctx context.Context, filter ListingFilter) ([]*Listing, error)

	// Stats returns the total count and per-domain counts.
	Stats(ctx context.Context) (*Stats, error)

	// ClearListings permanently removes all listings.
	ClearListings(ctx context.Context) error
}

// ListingFilter represents a filter for FindListings.
type ListingFilter struct {
	URL      *string   `json:"url"`
	Platform *Platform `json:"platform"`
	Category *string   `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match returns true if the listing passes the filter's field conditions.
// Offset and Limit are not considered.
func (f ListingFilter) Match(l *Listing) bool {
	if f.URL != nil && l.URL != *f.URL {
		return false
	}
	if f.Platform != nil && l.Platform != *f.Platform {
		return false
	}
	if f.Category != nil && l.Category != *f.Category {
		return false
	}
	return true
}
