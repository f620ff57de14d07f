package main

import (
	"fmt"

	"github.com/fwojciec/contractors"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	kind, err := contractors.ParseTermKind(c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contractors.ErrorMessage(err))
		return err
	}

	valid, err := deps.References.ValidateTerm(c.Term, kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contractors.ErrorMessage(err))
		return err
	}

	if valid {
		fmt.Fprintln(deps.Stdout, "valid")
	} else {
		fmt.Fprintln(deps.Stdout, "invalid")
	}

	return nil
}
