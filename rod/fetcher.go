package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure Fetcher implements pagegrab.Fetcher at compile time.
var _ pagegrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation, so discovery and extraction see the DOM after scripts have
// run. Most cloud viewers and many article pages render client-side.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, cleanup, err := f.open(ctx, url)
	if err != nil {
		return "", err
	}
	defer cleanup()

	html, err := page.HTML()
	if err != nil {
		return "", err
	}
	return html, nil
}

// Open navigates to the URL and returns a live PageContext for download
// resolution strategies that scrape the rendered page. The returned
// cleanup func closes the page and must be called once resolution is done.
func (f *Fetcher) Open(ctx context.Context, url string, opts ...ContextOption) (*PageContext, func() error, error) {
	page, cleanup, err := f.open(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return NewPageContext(page, opts...), cleanup, nil
}

func (f *Fetcher) open(ctx context.Context, url string) (*rod.Page, func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, err
	}
	cleanup := page.Close

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	if err := page.WaitLoad(); err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return page, cleanup, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
