package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	listing, err := deps.Scraper.ExtractURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listing); err != nil {
		return err
	}

	if !listing.IsBikeListing {
		fmt.Fprintln(deps.Stderr, "note: page is not a bike listing; only basic fields were extracted")
	}
	return nil
}
