package readability_test

import (
	"testing"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.ExtractText("  \n")

	require.Error(t, err)
	assert.Equal(t, adscout.EINVALID, adscout.ErrorCode(err))
}

func TestExtractor_KeepsListingBody(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>2019 Santa Cruz Hightower</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<p>Selling my 2019 Santa Cruz Hightower, size large, carbon frame with a Fox 36 fork.</p>
<p>Recently serviced, new tires, ready to ride. Pickup only.</p>
</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	text, err := ext.ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Santa Cruz Hightower, size large")
	assert.Contains(t, text, "ready to ride")
	assert.NotContains(t, text, "Home Nav Link")
	assert.NotContains(t, text, "Footer copyright text")
}

func TestExtractor_RemovesSidebar(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<aside class="sidebar"><p>Sidebar navigation content</p></aside>
<article><p>This is the main listing description that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	text, err := ext.ExtractText(html)

	require.NoError(t, err)
	assert.NotContains(t, text, "Sidebar navigation content")
	assert.Contains(t, text, "main listing description")
}

func TestExtractor_ReturnsPlainText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Frame is <strong>54cm</strong> with <a href="/parts">Ultegra</a> groupset, barely ridden this season.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	text, err := ext.ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "54cm")
	assert.NotContains(t, text, "<strong")
	assert.NotContains(t, text, "<a")
}
