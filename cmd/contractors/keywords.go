package main

import (
	"fmt"

	"github.com/fwojciec/contractors"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	keywords, err := deps.References.SearchKeywords(c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contractors.ErrorMessage(err))
		return err
	}

	if len(keywords) == 0 {
		fmt.Fprintf(deps.Stdout, "No keywords match %q.\n", c.Query)
		return nil
	}

	for _, k := range keywords {
		fmt.Fprintln(deps.Stdout, k)
	}

	return nil
}
