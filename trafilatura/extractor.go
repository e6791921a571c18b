// Package trafilatura extracts the main text of a page with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/adscout"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements adscout.TextExtractor at compile time.
var _ adscout.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text from HTML.
// The readability and generic fallbacks are enabled, which makes it slower
// than readability.Extractor but better on pages with unusual markup.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// ExtractText returns the plain text of the page's main content.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", adscout.Errorf(adscout.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.ContentText), nil
}
