package cloud

import (
	"context"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Resolve detects the service hosting url and resolves a downloadable URL
// for it in one step. A URL no registered service recognizes yields
// (nil, "", nil); that is a normal outcome, not an error. Resolution errors keep
// their codes: ENOCONTEXT when a scrape strategy needed a live page,
// ETIMEOUT when the page never replied, EUNRESOLVED when every strategy
// was attempted and failed.
func Resolve(ctx context.Context, reg pagegrab.HandlerRegistry, url string, page pagegrab.PageContext) (*pagegrab.ServiceFileInfo, string, error) {
	handler, info := reg.Detect(url)
	if handler == nil {
		return nil, "", nil
	}
	downloadURL, err := handler.DownloadURL(ctx, info, page)
	if err != nil {
		return info, "", err
	}
	return info, downloadURL, nil
}
