package main

import (
	"fmt"

	"github.com/fwojciec/adscout/export"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter, err := listingFilter(c.Platform, c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	filter.Limit = c.Limit

	listings, err := deps.Listings.FindListings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(listings) == 0 {
		fmt.Fprintln(deps.Stdout, "No listings found. Use 'adscout scrape' to add some.")
		return nil
	}

	export.Table(deps.Stdout, listings)
	return nil
}
