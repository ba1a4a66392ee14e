package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the detect command: match the URL against the registered
// services and print the detected file info.
func (c *DetectCmd) Run(deps *Dependencies) error {
	handler, info := deps.Registry.Detect(c.URL)
	if handler == nil {
		fmt.Fprintln(deps.Stdout, "no service matched")
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
