package goquery

import "github.com/fwojciec/adscout"

// genericSelectors work across unknown sites. Open Graph and schema.org
// markup is tried first, then common elements, then the Craigslist
// selectors, which many classified sites imitate.
var genericSelectors = SelectorSet{
	Title: concat(
		[]FieldSelector{
			{Selector: "meta[property='og:title']", Attr: "content"},
			{Selector: "[itemprop='name']", Attr: "content"},
			{Selector: "h1"},
		},
		craigslistSelectors.Title,
		[]FieldSelector{{Selector: "title"}},
	),
	Price: concat(
		[]FieldSelector{
			{Selector: "meta[property='product:price:amount']", Attr: "content"},
			{Selector: "meta[property='og:price:amount']", Attr: "content"},
			{Selector: "[itemprop='price']", Attr: "content"},
			{Selector: "[itemprop='price']"},
		},
		craigslistSelectors.Price,
	),
	Description: concat(
		[]FieldSelector{
			{Selector: "[itemprop='description']"},
			{Selector: "meta[property='og:description']", Attr: "content"},
			{Selector: "meta[name='description']", Attr: "content"},
		},
		craigslistSelectors.Description,
	),
	Location: concat(
		[]FieldSelector{
			{Selector: "[itemprop='addressLocality']"},
		},
		craigslistSelectors.Location,
	),
	Images: concat(
		[]FieldSelector{
			{Selector: "meta[property='og:image']", Attr: "content"},
			{Selector: "img[itemprop='image']", Attr: "src"},
		},
		craigslistSelectors.Images,
	),
	Breadcrumbs: []string{"nav[aria-label='breadcrumb']", ".breadcrumbs", ".breadcrumb"},
	BikePaths:   append([]string{"/bike", "/bicycle", "/motorcycle"}, craigslistSelectors.BikePaths...),
	Strip:       craigslistSelectors.Strip,
	Boilerplate: craigslistSelectors.Boilerplate,
}

// NewGenericExtractor creates the fallback Extractor for unknown platforms.
// Combine with WithTextExtractor to read the main page text when no
// description markup is found.
func NewGenericExtractor(opts ...ExtractorOption) *Extractor {
	return NewExtractor(adscout.PlatformGeneric, genericSelectors, opts...)
}

func concat(lists ...[]FieldSelector) []FieldSelector {
	var out []FieldSelector
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
