package mock

import (
	"context"

	pagegrab "github.com/mstolarz/pagegrab"
)

var _ pagegrab.PageContext = (*PageContext)(nil)

// PageContext is a mock implementation of pagegrab.PageContext.
type PageContext struct {
	ScrapeDownloadURLFn func(ctx context.Context, selectors []string) (string, error)
}

func (p *PageContext) ScrapeDownloadURL(ctx context.Context, selectors []string) (string, error) {
	return p.ScrapeDownloadURLFn(ctx, selectors)
}
