package main

import (
	"fmt"

	"github.com/fwojciec/adscout/compare"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the market command.
func (c *MarketCmd) Run(deps *Dependencies) error {
	filter, err := listingFilter(c.Platform, c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	pool, err := deps.Listings.FindListings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	market, err := compare.MarketAnalysis(pool)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	w := deps.Stdout
	p := market.Prices
	fmt.Fprintf(w, "Listings: %d (%d priced)\n", market.Total, p.Count)
	fmt.Fprintf(w, "Mean: %s  Median: %s  Std dev: %s\n", formatPrice(p.Mean), formatPrice(p.Median), formatPrice(market.StdDev))
	fmt.Fprintf(w, "Range: %s to %s\n", formatPrice(p.Min), formatPrice(p.Max))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"From", "To", "Listings"})
	for _, b := range market.Buckets {
		t.AppendRow(table.Row{formatPrice(b.Min), formatPrice(b.Max), b.Count})
	}
	t.Render()
	return nil
}
