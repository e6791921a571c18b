// Package export writes stored listings as CSV, JSON, HTML, Markdown or a
// terminal table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/adscout"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Supported export formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Formats returns the supported export formats.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatHTML, FormatMarkdown}
}

// Option configures Write.
type Option func(*options)

type options struct {
	converter adscout.Converter
}

// WithConverter sets the HTML to Markdown converter used by FormatMarkdown.
func WithConverter(c adscout.Converter) Option {
	return func(o *options) {
		o.converter = c
	}
}

// Write writes listings to w in the named format.
func Write(w io.Writer, format string, listings []*adscout.Listing, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case FormatCSV:
		return CSV(w, listings)
	case FormatJSON:
		return JSON(w, listings)
	case FormatHTML:
		return HTML(w, listings)
	case FormatMarkdown:
		if o.converter == nil {
			return adscout.Errorf(adscout.EINVALID, "markdown export requires a converter")
		}
		return Markdown(w, o.converter, listings)
	}
	return adscout.Errorf(adscout.EINVALID, "unknown export format %q (want one of %s)", format, strings.Join(Formats(), ", "))
}

// csvHeader lists the record fields in column order.
var csvHeader = []string{"id", "url", "title", "price", "description", "location", "platform", "category", "images", "timestamp"}

// CSV writes one header row and one row per listing. Images are joined
// with ";".
func CSV(w io.Writer, listings []*adscout.Listing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, l := range listings {
		if err := cw.Write([]string{
			l.ID,
			l.URL,
			l.Title,
			l.Price,
			l.Description,
			l.Location,
			string(l.Platform),
			l.Category,
			strings.Join(l.Images, ";"),
			formatTime(l.Timestamp),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	return nil
}

// JSON writes listings as an indented JSON array. No listings produce "[]".
func JSON(w io.Writer, listings []*adscout.Listing) error {
	if listings == nil {
		listings = []*adscout.Listing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listings)
}

// HTML writes a standalone HTML page containing a table of listings.
func HTML(w io.Writer, listings []*adscout.Listing) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Listings</title>
</head>
<body>
<h1>Listings (%d)</h1>
%s
</body>
</html>
`, len(listings), htmlTable(listings))
	return err
}

// Markdown writes listings as a Markdown document by converting the HTML
// table with conv.
func Markdown(w io.Writer, conv adscout.Converter, listings []*adscout.Listing) error {
	md, err := conv.Convert(fmt.Sprintf("<h1>Listings (%d)</h1>\n%s", len(listings), htmlTable(listings)))
	if err != nil {
		return fmt.Errorf("convert to markdown: %w", err)
	}
	_, err = fmt.Fprintln(w, md)
	return err
}

func htmlTable(listings []*adscout.Listing) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Title", "Price", "Platform", "Category", "Location", "Captured", "URL"})
	for _, l := range listings {
		t.AppendRow(table.Row{l.Title, l.Price, l.Platform, l.Category, l.Location, formatTime(l.Timestamp), l.URL})
	}
	t.Style().HTML.CSSClass = "listings"
	return t.RenderHTML()
}

// Table renders listings as a rounded terminal table.
func Table(w io.Writer, listings []*adscout.Listing) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "Price", "Platform", "Category", "URL"})
	for i, l := range listings {
		t.AppendRow(table.Row{i + 1, l.Title, l.Price, l.Platform, l.Category, l.URL})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Title", WidthMax: 48},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
