package compare

import (
	"math"
	"sort"
	"strings"

	"github.com/fwojciec/adscout"
)

// Scoring weights. The sum may exceed 1; Score clamps the result.
const (
	categoryWeight = 0.3
	brandWeight    = 0.25
	yearWeight     = 0.15
	titleWeight    = 0.3
	keywordWeight  = 0.2

	// keywordCount is the number of keywords compared per listing.
	keywordCount = 10

	// yearSpan is the model-year difference at which year proximity drops to zero.
	yearSpan = 5.0
)

// DefaultThreshold is the minimum score for a listing to count as similar.
const DefaultThreshold = 0.7

// DefaultMaxResults is used by FindSimilar when maxResults is not positive.
const DefaultMaxResults = 10

// Market positions reported by ComparisonReport.
const (
	PositionBelow   = "below"
	PositionAverage = "average"
	PositionAbove   = "above"
	PositionUnknown = "unknown"
)

// Score returns how similar candidate is to target in [0, 1].
func Score(target, candidate *adscout.Listing) float64 {
	var score float64

	if target.Category != "" && target.Category == candidate.Category {
		score += categoryWeight
	}

	if b := target.BrandName(); b != "" && strings.EqualFold(b, candidate.BrandName()) {
		score += brandWeight
	}

	ty, ok1 := target.ModelYear()
	cy, ok2 := candidate.ModelYear()
	if ok1 && ok2 {
		score += yearWeight * math.Max(0, 1-math.Abs(float64(ty-cy))/yearSpan)
	}

	score += titleWeight * Similarity(target.Title, candidate.Title)
	score += keywordWeight * jaccard(Keywords(target, keywordCount), Keywords(candidate, keywordCount))

	return math.Min(1, math.Max(0, score))
}

// Match is a listing paired with its similarity score.
type Match struct {
	Listing *adscout.Listing `json:"listing"`
	Score   float64          `json:"score"`
}

// FindSimilar returns up to maxResults listings from pool scoring at least
// DefaultThreshold against target, best first. The target itself is never
// returned.
func FindSimilar(target *adscout.Listing, pool []*adscout.Listing, maxResults int) []Match {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var matches []Match
	for _, l := range pool {
		if l.Key() == target.Key() {
			continue
		}
		if s := Score(target, l); s >= DefaultThreshold {
			matches = append(matches, Match{Listing: l, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// PriceStats summarizes a set of prices.
type PriceStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// newPriceStats computes statistics over prices, which must be non-empty.
func newPriceStats(prices []float64) PriceStats {
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)

	var sum float64
	for _, p := range sorted {
		sum += p
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return PriceStats{
		Count:  n,
		Mean:   sum / float64(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

// validPrices returns the parsed prices of listings that have one.
func validPrices(listings []*adscout.Listing) []float64 {
	var prices []float64
	for _, l := range listings {
		if p, ok := ParsePrice(l.Price); ok {
			prices = append(prices, p)
		}
	}
	return prices
}

// Report compares a listing's price with the prices of similar listings.
type Report struct {
	Target         *adscout.Listing   `json:"target"`
	TargetPrice    float64            `json:"targetPrice"`
	HasTargetPrice bool               `json:"hasTargetPrice"`
	SimilarCount   int                `json:"similarCount"`
	HasPriceData   bool               `json:"hasPriceData"`
	Stats          PriceStats         `json:"stats"`
	Position       string             `json:"position"`
	Deals          []*adscout.Listing `json:"deals"`
}

// ComparisonReport builds a price report for target against similar.
// Deals are similar listings priced below 80% of the target price.
func ComparisonReport(target *adscout.Listing, similar []*adscout.Listing) *Report {
	r := &Report{
		Target:       target,
		SimilarCount: len(similar),
		Position:     PositionUnknown,
		Deals:        []*adscout.Listing{},
	}
	r.TargetPrice, r.HasTargetPrice = ParsePrice(target.Price)

	if prices := validPrices(similar); len(prices) > 0 {
		r.HasPriceData = true
		r.Stats = newPriceStats(prices)
	}

	if !r.HasTargetPrice {
		return r
	}

	for _, l := range similar {
		if p, ok := ParsePrice(l.Price); ok && p < 0.8*r.TargetPrice {
			r.Deals = append(r.Deals, l)
		}
	}

	if r.HasPriceData {
		switch {
		case r.TargetPrice < 0.9*r.Stats.Mean:
			r.Position = PositionBelow
		case r.TargetPrice > 1.1*r.Stats.Mean:
			r.Position = PositionAbove
		default:
			r.Position = PositionAverage
		}
	}
	return r
}

// bucketCount is the number of equal-width price ranges in a market analysis.
const bucketCount = 5

// Bucket is a price range and the number of listings within it.
type Bucket struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Market describes the price distribution of a pool of listings.
type Market struct {
	Total   int        `json:"total"`
	Prices  PriceStats `json:"prices"`
	StdDev  float64    `json:"stdDev"`
	Buckets []Bucket   `json:"buckets"`
}

// MarketAnalysis computes the price distribution of pool. Listings without
// a valid price are counted in Total but ignored otherwise. Returns
// ENOTFOUND when no listing has a valid price.
func MarketAnalysis(pool []*adscout.Listing) (*Market, error) {
	prices := validPrices(pool)
	if len(prices) == 0 {
		return nil, adscout.Errorf(adscout.ENOTFOUND, "No valid prices found for analysis")
	}

	stats := newPriceStats(prices)

	var variance float64
	for _, p := range prices {
		variance += (p - stats.Mean) * (p - stats.Mean)
	}
	variance /= float64(len(prices))

	return &Market{
		Total:   len(pool),
		Prices:  stats,
		StdDev:  math.Sqrt(variance),
		Buckets: buckets(prices, stats.Min, stats.Max),
	}, nil
}

// buckets splits [lo, hi] into bucketCount equal ranges and counts prices
// in each. hi itself belongs to the last bucket.
func buckets(prices []float64, lo, hi float64) []Bucket {
	width := (hi - lo) / bucketCount
	out := make([]Bucket, bucketCount)
	for i := range out {
		out[i].Min = lo + float64(i)*width
		out[i].Max = lo + float64(i+1)*width
	}
	out[bucketCount-1].Max = hi

	for _, p := range prices {
		i := bucketCount - 1
		if width > 0 {
			i = min(int((p-lo)/width), bucketCount-1)
		}
		out[i].Count++
	}
	return out
}
