package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the discover command: fetch the rendered page, scan it for
// data tables and main content, and print the discovery snapshot.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", c.URL, err)
	}

	disc, err := deps.Discoverer.Discover(html)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(disc.Result())
}
