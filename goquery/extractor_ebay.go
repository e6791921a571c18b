package goquery

import "github.com/fwojciec/adscout"

// ebaySelectors targets eBay item pages.
var ebaySelectors = SelectorSet{
	Title: []FieldSelector{
		{Selector: ".x-item-title__mainTitle"},
		{Selector: "#itemTitle"},
		{Selector: "meta[property='og:title']", Attr: "content"},
	},
	Price: []FieldSelector{
		{Selector: ".x-price-primary"},
		{Selector: "#prcIsum"},
	},
	Description: []FieldSelector{
		{Selector: ".x-item-description"},
		{Selector: "#viTabs_0_is"},
		{Selector: "meta[name='description']", Attr: "content"},
	},
	Location: []FieldSelector{
		{Selector: ".ux-labels-values--itemLocation .ux-labels-values__values"},
		{Selector: "[itemprop='availableAtOrFrom']"},
	},
	Images: []FieldSelector{
		{Selector: ".ux-image-carousel img", Attr: "data-zoom-src"},
		{Selector: ".ux-image-carousel img", Attr: "src"},
		{Selector: "meta[property='og:image']", Attr: "content"},
	},
	Breadcrumbs: []string{"nav.breadcrumbs"},
}

// NewEbayExtractor creates an Extractor for eBay item pages.
func NewEbayExtractor(opts ...ExtractorOption) *Extractor {
	return NewExtractor(adscout.PlatformEbay, ebaySelectors, opts...)
}
