package main

import (
	"encoding/json"
	"fmt"

	pagegrab "github.com/mstolarz/pagegrab"
	"github.com/mstolarz/pagegrab/cloud"
)

// resolveOutput is the resolve command's JSON shape.
type resolveOutput struct {
	Info        *pagegrab.ServiceFileInfo `json:"info"`
	DownloadURL string                    `json:"downloadUrl"`
}

// Run executes the resolve command: detect the hosting service, open the
// live page when a scrape strategy may need it, and print the resolved
// download URL.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	var page pagegrab.PageContext
	if deps.OpenPage != nil {
		p, cleanup, err := deps.OpenPage(deps.Ctx, c.URL)
		if err != nil {
			return fmt.Errorf("failed to open page %q: %w", c.URL, err)
		}
		defer func() { _ = cleanup() }()
		page = p
	}

	info, downloadURL, err := cloud.Resolve(deps.Ctx, deps.Registry, c.URL, page)
	if err != nil {
		switch pagegrab.ErrorCode(err) {
		case pagegrab.ENOCONTEXT:
			return fmt.Errorf("%s (rerun without --no-browser)", pagegrab.ErrorMessage(err))
		case pagegrab.ETIMEOUT:
			return fmt.Errorf("page did not respond: %s", pagegrab.ErrorMessage(err))
		}
		return err
	}
	if info == nil {
		fmt.Fprintln(deps.Stdout, "no service matched")
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resolveOutput{Info: info, DownloadURL: downloadURL})
}
