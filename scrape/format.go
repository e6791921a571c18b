package scrape

import "strings"

// ShortURL formats a listing URL for progress output. The scheme, a
// leading "www." and a trailing slash are dropped. When the rest is longer
// than maxLen the middle is elided so the host and the end of the path,
// which usually holds the listing ID, stay visible.
func ShortURL(rawURL string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	s := rawURL
	if _, rest, ok := strings.Cut(s, "://"); ok {
		s = rest
	}
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")
	if len(s) <= maxLen {
		return s
	}

	const ellipsis = "..."
	host, _, _ := strings.Cut(s, "/")
	if tail := maxLen - len(host) - len(ellipsis); tail >= 4 {
		return host + ellipsis + s[len(s)-tail:]
	}
	if maxLen <= len(ellipsis) {
		return s[len(s)-maxLen:]
	}
	return ellipsis + s[len(s)-maxLen+len(ellipsis):]
}
