package adscout

// ListingExtractor converts a listing page into a Listing for one platform.
type ListingExtractor interface {
	// Platform returns the platform this extractor handles.
	Platform() Platform

	// Extract parses raw HTML fetched from pageURL and returns the listing.
	// Fields that cannot be found are left empty. When the page is not a
	// bike listing, a minimal record with IsBikeListing false is returned.
	// An error is returned only when the HTML cannot be parsed.
	Extract(html string, pageURL string) (*Listing, error)
}

// PlatformDetector identifies the platform a page belongs to.
type PlatformDetector interface {
	// Detect inspects the page URL and returns the identified platform.
	// Returns PlatformGeneric if the platform cannot be determined.
	Detect(pageURL string) Platform
}

// ExtractorRegistry manages platform-specific extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a specific platform.
	// Returns nil if no extractor is registered for the platform.
	Get(platform Platform) ListingExtractor

	// GetForURL detects the platform from the URL and returns the appropriate extractor.
	// Falls back to a generic extractor if the platform is unknown.
	GetForURL(pageURL string) ListingExtractor

	// Register adds an extractor for a platform.
	Register(platform Platform, extractor ListingExtractor)

	// List returns all registered platforms.
	List() []Platform
}

// TextExtractor extracts the readable main text of an HTML page.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}
