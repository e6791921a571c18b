package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/compare"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	target, err := deps.Listings.FindListingByURL(deps.Ctx, c.URL)
	if adscout.ErrorCode(err) == adscout.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: listing %q not found. Use 'adscout scrape' to add it first.\n", c.URL)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	pool, err := deps.Listings.FindListings(deps.Ctx, adscout.ListingFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	matches := compare.FindSimilar(target, pool, c.Max)
	similar := make([]*adscout.Listing, len(matches))
	for i, m := range matches {
		similar[i] = m.Listing
	}
	report := compare.ComparisonReport(target, similar)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*compare.Report
			Matches []compare.Match `json:"matches"`
		}{report, matches})
	}

	w := deps.Stdout
	fmt.Fprintf(w, "Target: %s\n", adscout.FormatListing(target))
	fmt.Fprintf(w, "Similar listings: %d\n", len(matches))
	for _, m := range matches {
		fmt.Fprintf(w, "  %.2f  %s\n", m.Score, adscout.FormatListing(m.Listing))
	}

	if !report.HasPriceData {
		fmt.Fprintln(w, "No price data for similar listings.")
		return nil
	}

	s := report.Stats
	fmt.Fprintf(w, "Similar prices: mean %s, median %s, range %s to %s (%d priced)\n",
		formatPrice(s.Mean), formatPrice(s.Median), formatPrice(s.Min), formatPrice(s.Max), s.Count)

	if !report.HasTargetPrice {
		fmt.Fprintln(w, "Target has no price.")
		return nil
	}
	fmt.Fprintf(w, "Target price: %s (%s average)\n", formatPrice(report.TargetPrice), positionText(report.Position))

	if len(report.Deals) > 0 {
		fmt.Fprintln(w, "Possible deals:")
		fmt.Fprintln(w, adscout.FormatListings(report.Deals))
	}
	return nil
}

func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

func positionText(position string) string {
	switch position {
	case compare.PositionBelow:
		return "below"
	case compare.PositionAbove:
		return "above"
	case compare.PositionAverage:
		return "near"
	default:
		return "unknown relative to"
	}
}
