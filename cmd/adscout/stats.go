package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Listings.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total listings: %d\n", stats.Total)

	// Busiest domains first.
	domains := slices.SortedFunc(maps.Keys(stats.ByDomain), func(a, b string) int {
		if c := cmp.Compare(stats.ByDomain[b], stats.ByDomain[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, d := range domains {
		fmt.Fprintf(deps.Stdout, "  %-30s %d\n", d, stats.ByDomain[d])
	}
	return nil
}
