package mock

import "github.com/fwojciec/adscout"

var _ adscout.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of adscout.ListingExtractor.
type ListingExtractor struct {
	PlatformFn func() adscout.Platform
	ExtractFn  func(html string, pageURL string) (*adscout.Listing, error)
}

func (e *ListingExtractor) Platform() adscout.Platform {
	return e.PlatformFn()
}

func (e *ListingExtractor) Extract(html string, pageURL string) (*adscout.Listing, error) {
	return e.ExtractFn(html, pageURL)
}

var _ adscout.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of adscout.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(pageURL string) adscout.Platform
}

func (d *PlatformDetector) Detect(pageURL string) adscout.Platform {
	return d.DetectFn(pageURL)
}

var _ adscout.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of adscout.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn       func(platform adscout.Platform) adscout.ListingExtractor
	GetForURLFn func(pageURL string) adscout.ListingExtractor
	RegisterFn  func(platform adscout.Platform, extractor adscout.ListingExtractor)
	ListFn      func() []adscout.Platform
}

func (r *ExtractorRegistry) Get(platform adscout.Platform) adscout.ListingExtractor {
	return r.GetFn(platform)
}

func (r *ExtractorRegistry) GetForURL(pageURL string) adscout.ListingExtractor {
	return r.GetForURLFn(pageURL)
}

func (r *ExtractorRegistry) Register(platform adscout.Platform, extractor adscout.ListingExtractor) {
	r.RegisterFn(platform, extractor)
}

func (r *ExtractorRegistry) List() []adscout.Platform {
	return r.ListFn()
}

var _ adscout.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of adscout.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
