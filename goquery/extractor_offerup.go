package goquery

import "github.com/fwojciec/adscout"

// offerUpSelectors targets OfferUp item pages, which mark fields with
// data-testid attributes.
var offerUpSelectors = SelectorSet{
	Title: []FieldSelector{
		{Selector: "h1[data-testid]"},
		{Selector: "h1"},
	},
	Price: []FieldSelector{
		{Selector: "[data-testid='item-price']"},
	},
	Description: []FieldSelector{
		{Selector: "[data-testid='item-description']"},
		{Selector: "meta[name='description']", Attr: "content"},
	},
	Location: []FieldSelector{
		{Selector: "[data-testid='item-location']"},
	},
	Images: []FieldSelector{
		{Selector: "[data-testid='image-carousel'] img", Attr: "src"},
		{Selector: "meta[property='og:image']", Attr: "content"},
	},
	Breadcrumbs: []string{"nav[aria-label='breadcrumb']"},
}

// NewOfferUpExtractor creates an Extractor for OfferUp item pages.
func NewOfferUpExtractor(opts ...ExtractorOption) *Extractor {
	return NewExtractor(adscout.PlatformOfferUp, offerUpSelectors, opts...)
}
