package main

import (
	"fmt"

	"github.com/fwojciec/adscout"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return adscout.Errorf(adscout.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Listings.ClearListings(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cleared all listings")
	return nil
}
