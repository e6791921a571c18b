// Package readability extracts the main text of a page with go-readability.
// It backs listing descriptions on pages where no selector matches.
package readability

import (
	"strings"

	"github.com/fwojciec/adscout"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements adscout.TextExtractor at compile time.
var _ adscout.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the text of the main
// content block, with navigation, footers and sidebars removed.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", adscout.Errorf(adscout.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
