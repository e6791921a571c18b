package goquery

import "github.com/fwojciec/adscout"

// facebookSelectors targets Facebook Marketplace item pages. The rendered
// markup uses generated class names, so Open Graph tags carry most fields.
var facebookSelectors = SelectorSet{
	Title: []FieldSelector{
		{Selector: "h1 span"},
		{Selector: "meta[property='og:title']", Attr: "content"},
	},
	Price: []FieldSelector{
		{Selector: "meta[property='product:price:amount']", Attr: "content"},
		{Selector: "meta[property='og:price:amount']", Attr: "content"},
	},
	Description: []FieldSelector{
		{Selector: "div[data-testid='marketplace_pdp_description']"},
		{Selector: "meta[property='og:description']", Attr: "content"},
	},
	Location: []FieldSelector{
		{Selector: "meta[property='og:locality']", Attr: "content"},
		{Selector: "meta[property='place:location:locality']", Attr: "content"},
	},
	Images: []FieldSelector{
		{Selector: "img[data-visualcompletion='media-vc-image']", Attr: "src"},
		{Selector: "meta[property='og:image']", Attr: "content"},
	},
	BikePaths: []string{"/bicycles", "/motorcycles"},
}

// NewFacebookExtractor creates an Extractor for Facebook Marketplace items.
func NewFacebookExtractor(opts ...ExtractorOption) *Extractor {
	return NewExtractor(adscout.PlatformFacebookMarketplace, facebookSelectors, opts...)
}
