package goquery

import "github.com/fwojciec/adscout"

// pinkbikeSelectors targets Pinkbike Buy/Sell ads. Every Buy/Sell ad is a
// bike or bike part, so the /buysell/ path alone classifies the page.
var pinkbikeSelectors = SelectorSet{
	Title: []FieldSelector{
		{Selector: ".buysell-title"},
		{Selector: "h1"},
	},
	Price: []FieldSelector{
		{Selector: ".buysell-price"},
	},
	Description: []FieldSelector{
		{Selector: ".buysell-details"},
		{Selector: "meta[name='description']", Attr: "content"},
	},
	Location: []FieldSelector{
		{Selector: ".buysell-location"},
	},
	Images: []FieldSelector{
		{Selector: ".buysell-image img", Attr: "src"},
		{Selector: "meta[property='og:image']", Attr: "content"},
	},
	BikePaths: []string{"/buysell/"},
}

// NewPinkbikeExtractor creates an Extractor for Pinkbike Buy/Sell ads.
func NewPinkbikeExtractor(opts ...ExtractorOption) *Extractor {
	return NewExtractor(adscout.PlatformPinkbike, pinkbikeSelectors, opts...)
}
