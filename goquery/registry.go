package goquery

import (
	"slices"

	"github.com/fwojciec/adscout"
)

var _ adscout.ExtractorRegistry = (*Registry)(nil)

// Registry manages platform-specific extractors and picks one by page URL.
// It uses a PlatformDetector to identify the platform and falls back to a
// generic extractor when the platform is unknown or has no registered
// extractor.
type Registry struct {
	detector   adscout.PlatformDetector
	fallback   adscout.ListingExtractor
	extractors map[adscout.Platform]adscout.ListingExtractor
}

// NewRegistry creates a new Registry with the given detector and fallback extractor.
func NewRegistry(detector adscout.PlatformDetector, fallback adscout.ListingExtractor) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[adscout.Platform]adscout.ListingExtractor),
	}
}

// NewPlatformRegistry creates a Registry with an extractor for every
// supported platform. text is used by the generic extractor for pages
// without recognizable description markup and may be nil.
func NewPlatformRegistry(text adscout.TextExtractor) *Registry {
	r := NewRegistry(NewDetector(), NewGenericExtractor(WithTextExtractor(text)))
	r.Register(adscout.PlatformCraigslist, NewCraigslistExtractor())
	r.Register(adscout.PlatformFacebookMarketplace, NewFacebookExtractor())
	r.Register(adscout.PlatformEbay, NewEbayExtractor())
	r.Register(adscout.PlatformPinkbike, NewPinkbikeExtractor())
	r.Register(adscout.PlatformOfferUp, NewOfferUpExtractor())
	return r
}

// Get returns the extractor for a specific platform.
// Returns nil if no extractor is registered for the platform.
func (r *Registry) Get(platform adscout.Platform) adscout.ListingExtractor {
	return r.extractors[platform]
}

// GetForURL detects the platform from the URL and returns the appropriate extractor.
func (r *Registry) GetForURL(pageURL string) adscout.ListingExtractor {
	platform := r.detector.Detect(pageURL)
	if e, ok := r.extractors[platform]; ok {
		return e
	}
	return r.fallback
}

// Register adds an extractor for a platform.
// If an extractor is already registered for the platform, it is replaced.
func (r *Registry) Register(platform adscout.Platform, extractor adscout.ListingExtractor) {
	r.extractors[platform] = extractor
}

// List returns all registered platforms in sorted order.
func (r *Registry) List() []adscout.Platform {
	platforms := make([]adscout.Platform, 0, len(r.extractors))
	for p := range r.extractors {
		platforms = append(platforms, p)
	}
	slices.Sort(platforms)
	return platforms
}
