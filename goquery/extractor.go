package goquery

import (
	"strings"
	"time"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/bike"
)

var _ adscout.ListingExtractor = (*Extractor)(nil)

// SelectorSet is the per-platform table of selectors an Extractor uses.
// Each field list is tried in order and the first non-empty match wins.
type SelectorSet struct {
	Title       []FieldSelector
	Price       []FieldSelector
	Description []FieldSelector
	Location    []FieldSelector
	Images      []FieldSelector

	// Breadcrumbs select navigation elements whose text is checked for
	// bike keywords.
	Breadcrumbs []string

	// BikePaths are lower-case URL path fragments, e.g. "/bik/", that mark
	// a page as a bike listing.
	BikePaths []string

	// Strip selects elements removed from the description before reading it.
	Strip []string

	// Boilerplate phrases are removed from the description text.
	Boilerplate []string
}

// Extractor extracts listings from one platform's pages using a SelectorSet.
type Extractor struct {
	platform  adscout.Platform
	selectors SelectorSet
	text      adscout.TextExtractor
	now       func() time.Time
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithTextExtractor sets a main-content extractor used for the description
// when no description selector matches.
func WithTextExtractor(t adscout.TextExtractor) ExtractorOption {
	return func(e *Extractor) {
		e.text = t
	}
}

// WithNow sets the clock used to timestamp extracted listings.
func WithNow(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates an Extractor for platform using selectors.
func NewExtractor(platform adscout.Platform, selectors SelectorSet, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		platform:  platform,
		selectors: selectors,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Platform returns the platform this extractor handles.
func (e *Extractor) Platform() adscout.Platform {
	return e.platform
}

// ExtractTitle returns the listing title or an empty string.
func (e *Extractor) ExtractTitle(doc *Document) string {
	return doc.firstText(e.selectors.Title)
}

// ExtractPrice returns the price text exactly as shown, e.g. "$1,200".
func (e *Extractor) ExtractPrice(doc *Document) string {
	return doc.firstText(e.selectors.Price)
}

// ExtractImages returns the ordered, de-duplicated absolute image URLs.
func (e *Extractor) ExtractImages(doc *Document) []string {
	return doc.urls(e.selectors.Images)
}

// ExtractTextContent returns the listing description with boilerplate
// removed. Returns an empty string when the description is missing or empty.
func (e *Extractor) ExtractTextContent(doc *Document) string {
	text := doc.firstBlock(e.selectors.Description, e.selectors.Strip, e.selectors.Boilerplate)
	if text != "" || e.text == nil {
		return text
	}

	fallback, err := e.text.ExtractText(doc.html)
	if err != nil {
		return ""
	}
	return cleanLines(fallback)
}

// ExtractLocation returns the seller's location or an empty string.
func (e *Extractor) ExtractLocation(doc *Document) string {
	return strings.Trim(doc.firstText(e.selectors.Location), "() ")
}

// IsBikeListing reports whether the page is a bicycle or motorcycle listing.
func (e *Extractor) IsBikeListing(doc *Document) bool {
	return e.isBikeListing(doc, e.ExtractTitle(doc), e.ExtractTextContent(doc))
}

// isBikeListing checks the URL path, then breadcrumbs, then the listing text.
func (e *Extractor) isBikeListing(doc *Document, title, description string) bool {
	path := strings.ToLower(doc.url.Path)
	for _, p := range e.selectors.BikePaths {
		if strings.Contains(path, p) {
			return true
		}
	}

	for _, sel := range e.selectors.Breadcrumbs {
		if bike.MatchesKeywords(doc.text(sel)) {
			return true
		}
	}

	return bike.MatchesKeywords(title + "\n" + description)
}

// ExtractAll extracts the full listing record. Pages that are not bike
// listings yield a minimal record holding only the URL, title, platform and
// timestamp with IsBikeListing false.
func (e *Extractor) ExtractAll(doc *Document) *adscout.Listing {
	title := e.ExtractTitle(doc)
	description := e.ExtractTextContent(doc)

	listing := &adscout.Listing{
		URL:       doc.URL(),
		Title:     title,
		Platform:  e.platform,
		Timestamp: e.now(),
	}

	if !e.isBikeListing(doc, title, description) {
		return listing
	}

	text := title + "\n" + description
	fields := bike.ParseFields(text)

	listing.IsBikeListing = true
	listing.Price = e.ExtractPrice(doc)
	listing.Description = description
	listing.Location = e.ExtractLocation(doc)
	listing.Images = e.ExtractImages(doc)
	listing.Category = bike.Category(text)
	listing.Bike = &fields
	return listing
}

// Extract parses html fetched from pageURL and extracts the listing.
// Returns EINVALID only if the HTML cannot be parsed.
func (e *Extractor) Extract(html string, pageURL string) (*adscout.Listing, error) {
	doc, err := NewDocument(html, pageURL)
	if err != nil {
		return nil, err
	}
	return e.ExtractAll(doc), nil
}
