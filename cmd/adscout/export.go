package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/export"
	"github.com/fwojciec/adscout/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) (err error) {
	listings, err := deps.Listings.FindListings(deps.Ctx, adscout.ListingFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	var w io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if err := export.Write(w, c.Format, listings, export.WithConverter(htmltomarkdown.NewConverter())); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stderr, "Exported %d listings to %s\n", len(listings), c.Output)
	}
	return nil
}
