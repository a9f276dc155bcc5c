package main

import (
	"fmt"
)

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	roots := c.Roots
	if len(roots) == 0 {
		roots = deps.Config.Roots
	}
	if len(roots) == 0 {
		return fmt.Errorf("no search roots configured: pass --roots or set roots in the config file")
	}

	candidates, err := deps.Store.Scan(deps.Ctx, roots)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(deps.Stdout, "No index artifacts found.")
		return nil
	}

	for _, cand := range candidates {
		fmt.Fprintf(deps.Stdout, "%-8s %-16s %s\n", cand.Version, cand.DocsVersion, cand.Path)
	}
	return nil
}
