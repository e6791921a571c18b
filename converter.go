package adscout

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
