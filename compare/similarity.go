package compare

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
	"github.com/fwojciec/adscout"
)

// Similarity returns the normalized Levenshtein similarity of a and b in
// [0, 1], ignoring case. Identical strings score 1; an empty string
// scores 0 against anything.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	distance := matchr.Levenshtein(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true, "that": true,
	"from": true, "are": true, "was": true, "has": true, "have": true, "you": true,
	"your": true, "all": true, "can": true, "will": true, "not": true, "but": true,
	"very": true, "just": true, "only": true, "its": true, "it's": true, "our": true,
	"any": true, "been": true, "out": true, "one": true, "sale": true, "obo": true,
	"please": true, "contact": true, "call": true, "text": true, "email": true,
}

// Keywords returns up to n of the most frequent words in the listing's
// title and description. Words shorter than three letters and common
// filler words are skipped. Ties are broken alphabetically.
func Keywords(l *adscout.Listing, n int) []string {
	counts := make(map[string]int)
	words := strings.FieldsFunc(strings.ToLower(l.Title+" "+l.Description), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	for _, w := range words {
		w = strings.Trim(w, "'")
		if utf8.RuneCountInString(w) < 3 || stopWords[w] {
			continue
		}
		counts[w]++
	}

	keywords := make([]string, 0, len(counts))
	for w := range counts {
		keywords = append(keywords, w)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both are empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, w := range a {
		set[w] = true
	}
	union := len(set)
	var intersection int
	for _, w := range b {
		if set[w] {
			intersection++
			continue
		}
		union++
	}
	return float64(intersection) / float64(union)
}
