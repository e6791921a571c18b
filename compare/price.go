// Package compare scores listings against each other and computes price
// statistics over stored listings.
package compare

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)`)

// ParsePrice extracts a numeric price from raw price text.
// Every character except digits, '.' and ',' is dropped, thousands
// separators are removed and the leading number is parsed, so "$1,200"
// yields 1200. Text without a number ("best offer") yields false.
func ParsePrice(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' {
			b.WriteRune(r)
		}
	}

	m := leadingNumber.FindString(b.String())
	if m == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
