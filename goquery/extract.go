package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/adscout"
)

// FieldSelector locates a field value with a CSS selector. When Attr is
// empty the element's text is used, otherwise the named attribute.
type FieldSelector struct {
	Selector string
	Attr     string
}

// Document is a parsed listing page together with the URL it was fetched from.
type Document struct {
	doc  *goquery.Document
	url  *url.URL
	raw  string
	html string
}

// NewDocument parses html fetched from pageURL. An unparsable pageURL is
// tolerated; relative image URLs are then kept unresolved.
func NewDocument(html string, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, adscout.Errorf(adscout.EINVALID, "failed to parse HTML: %v", err)
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		u = &url.URL{}
	}

	return &Document{doc: doc, url: u, raw: pageURL, html: html}, nil
}

// URL returns the page URL as given to NewDocument.
func (d *Document) URL() string {
	return d.raw
}

// firstText returns the first non-empty value produced by selectors, tried
// in order. Whitespace is collapsed to single spaces.
func (d *Document) firstText(selectors []FieldSelector) string {
	for _, fs := range selectors {
		var value string
		d.doc.Find(fs.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			value = collapseSpace(selectionValue(sel, fs.Attr))
			return value == ""
		})
		if value != "" {
			return value
		}
	}
	return ""
}

// firstBlock is like firstText but keeps line structure. Elements matching
// strip are removed before the text is read and phrases in boilerplate are
// deleted from the result.
func (d *Document) firstBlock(selectors []FieldSelector, strip []string, boilerplate []string) string {
	for _, fs := range selectors {
		var value string
		d.doc.Find(fs.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if fs.Attr == "" && len(strip) > 0 {
				sel = sel.Clone()
				sel.Find(strings.Join(strip, ", ")).Remove()
			}
			text := selectionValue(sel, fs.Attr)
			for _, phrase := range boilerplate {
				text = strings.ReplaceAll(text, phrase, "")
			}
			value = cleanLines(text)
			return value == ""
		})
		if value != "" {
			return value
		}
	}
	return ""
}

// urls returns de-duplicated absolute URLs from the first selector that
// yields any. Empty values and data: URIs are skipped.
func (d *Document) urls(selectors []FieldSelector) []string {
	for _, fs := range selectors {
		seen := make(map[string]bool)
		var urls []string
		d.doc.Find(fs.Selector).Each(func(_ int, sel *goquery.Selection) {
			href := strings.TrimSpace(selectionValue(sel, fs.Attr))
			if href == "" || isNonHTTPLink(href) {
				return
			}
			resolved := resolveURL(d.url, href)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true
			urls = append(urls, resolved)
		})
		if len(urls) > 0 {
			return urls
		}
	}
	return []string{}
}

// text returns the combined text of every element matching selector.
func (d *Document) text(selector string) string {
	return collapseSpace(d.doc.Find(selector).Text())
}

func selectionValue(sel *goquery.Selection, attr string) string {
	if attr == "" {
		return sel.Text()
	}
	v, _ := sel.Attr(attr)
	return v
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanLines trims every line, collapses inner whitespace and drops empty lines.
func cleanLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = collapseSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// resolveURL resolves a possibly relative href against base.
// Returns empty string if the href cannot be parsed.
// Fragments are stripped for de-duplication.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
