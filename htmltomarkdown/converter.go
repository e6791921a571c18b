// Package htmltomarkdown renders listing HTML as Markdown for exports.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/adscout"
)

// Ensure Converter implements adscout.Converter at compile time.
var _ adscout.Converter = (*Converter)(nil)

// Converter turns HTML fragments, such as the listing table produced by
// the export package, into GitHub-flavoured Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with table support enabled.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert returns the Markdown rendering of html with surrounding
// whitespace removed. Blank input is rejected.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", adscout.Errorf(adscout.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
