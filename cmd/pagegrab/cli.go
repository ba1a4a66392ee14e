package main

import (
	"context"
	"io"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Registry   pagegrab.HandlerRegistry
	Discoverer pagegrab.TableDiscoverer
	Content    pagegrab.ContentExtractor
	Fetcher    pagegrab.Fetcher

	// OpenPage returns a live page context for DOM-scrape resolution
	// strategies. Nil when the browser is disabled.
	OpenPage func(ctx context.Context, url string) (pagegrab.PageContext, func() error, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool        `short:"v" help:"Enable debug logging"`
	Discover DiscoverCmd `cmd:"" help:"Scan a page for data tables and main content"`
	Extract  ExtractCmd  `cmd:"" help:"Extract tables and article text from a page"`
	Detect   DetectCmd   `cmd:"" help:"Detect the cloud service hosting a document URL"`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve a downloadable URL for a cloud-hosted document"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Static bool   `help:"Fetch with plain HTTP instead of a headless browser (static pages only)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Tables []int  `short:"t" help:"Table indices to extract (default: all)"`
	NoText bool   `help:"Skip main content extraction"`
	Static bool   `help:"Fetch with plain HTTP instead of a headless browser (static pages only)"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URL string `arg:"" help:"Document URL"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URL       string `arg:"" help:"Document URL"`
	NoBrowser bool   `help:"Skip DOM-scrape strategies that need a live page"`
}
