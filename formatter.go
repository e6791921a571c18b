package adscout

import "strings"

// FormatListing formats a listing as a single summary line.
// Uses title if available, falls back to the URL. Listings without a
// price show "no price".
func FormatListing(l *Listing) string {
	title := l.Title
	if title == "" {
		title = l.URL
	}
	price := l.Price
	if price == "" {
		price = "no price"
	}
	return title + " | " + price + " | " + string(l.Platform) + " | " + l.URL
}

// FormatListings formats listings as summary lines, one per listing.
func FormatListings(listings []*Listing) string {
	if len(listings) == 0 {
		return ""
	}

	lines := make([]string, 0, len(listings))
	for _, l := range listings {
		lines = append(lines, FormatListing(l))
	}

	return strings.Join(lines, "\n")
}
