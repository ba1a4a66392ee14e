package main

import (
	"encoding/json"
	"fmt"

	pagegrab "github.com/mstolarz/pagegrab"
	"golang.org/x/sync/errgroup"
)

// extractOutput is the extract command's JSON shape.
type extractOutput struct {
	Tables  []*pagegrab.TableData      `json:"tables"`
	Content *pagegrab.ExtractedContent `json:"content,omitempty"`
}

// Run executes the extract command: discover first, then extract the
// selected tables and the article text from the same snapshot.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", c.URL, err)
	}

	disc, err := deps.Discoverer.Discover(html)
	if err != nil {
		return err
	}

	var out extractOutput

	// Table and text extraction are independent walks over the same
	// snapshot; run them side by side.
	g := new(errgroup.Group)
	g.Go(func() error {
		if len(c.Tables) == 0 {
			out.Tables = disc.ExtractAllTables()
			return nil
		}
		for _, index := range c.Tables {
			data, err := disc.ExtractTable(index)
			if err != nil {
				return err
			}
			out.Tables = append(out.Tables, data)
		}
		return nil
	})
	if !c.NoText {
		g.Go(func() error {
			content, err := deps.Content.Extract(html)
			if err != nil {
				return err
			}
			out.Content = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
