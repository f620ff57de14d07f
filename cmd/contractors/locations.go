package main

import (
	"fmt"

	"github.com/fwojciec/contractors"
)

// Run executes the locations command.
func (c *LocationsCmd) Run(deps *Dependencies) error {
	locations, err := deps.References.SearchLocations(c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contractors.ErrorMessage(err))
		return err
	}

	if len(locations) == 0 {
		fmt.Fprintf(deps.Stdout, "No locations match %q.\n", c.Query)
		return nil
	}

	for _, l := range locations {
		fmt.Fprintf(deps.Stdout, "%s (%s)\n", l.Location, l.County)
	}

	return nil
}
