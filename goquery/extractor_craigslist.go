package goquery

import "github.com/fwojciec/adscout"

// craigslistSelectors targets Craigslist posting pages.
//
// The posting body starts with a hidden print block containing
// "QR Code Link to This Post", which is stripped from the description.
var craigslistSelectors = SelectorSet{
	Title: []FieldSelector{
		{Selector: "#titletextonly"},
		{Selector: ".postingtitletext"},
	},
	Price: []FieldSelector{
		{Selector: ".postingtitletext .price"},
		{Selector: ".price"},
	},
	Description: []FieldSelector{
		{Selector: "#postingbody"},
	},
	Location: []FieldSelector{
		{Selector: ".postingtitletext small"},
		{Selector: "meta[name='geo.placename']", Attr: "content"},
	},
	Images: []FieldSelector{
		{Selector: "#thumbs a", Attr: "href"},
		{Selector: ".gallery img", Attr: "src"},
		{Selector: "meta[property='og:image']", Attr: "content"},
	},
	Breadcrumbs: []string{".breadcrumbs"},
	BikePaths: []string{
		"/bik/", "/bop/", "/bid/", "/bia/", "/bip/", "/bdp/",
		"/mca/", "/mcy/", "/mcd/", "/mpa/", "/mpo/", "/mpd/",
	},
	Strip:       []string{".print-information", ".print-qrcode-container"},
	Boilerplate: []string{"QR Code Link to This Post"},
}

// NewCraigslistExtractor creates an Extractor for Craigslist postings.
func NewCraigslistExtractor(opts ...ExtractorOption) *Extractor {
	return NewExtractor(adscout.PlatformCraigslist, craigslistSelectors, opts...)
}
