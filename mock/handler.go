package mock

import (
	"context"

	pagegrab "github.com/mstolarz/pagegrab"
)

var _ pagegrab.ServiceHandler = (*Handler)(nil)

// Handler is a mock implementation of pagegrab.ServiceHandler.
type Handler struct {
	NameFn        func() string
	ServiceFn     func() pagegrab.Service
	DetectFn      func(url string) *pagegrab.ServiceFileInfo
	DownloadURLFn func(ctx context.Context, info *pagegrab.ServiceFileInfo, page pagegrab.PageContext) (string, error)
	ParseTitleFn  func(tabTitle string) string
}

func (h *Handler) Name() string {
	return h.NameFn()
}

func (h *Handler) Service() pagegrab.Service {
	return h.ServiceFn()
}

func (h *Handler) Detect(url string) *pagegrab.ServiceFileInfo {
	return h.DetectFn(url)
}

func (h *Handler) DownloadURL(ctx context.Context, info *pagegrab.ServiceFileInfo, page pagegrab.PageContext) (string, error) {
	return h.DownloadURLFn(ctx, info, page)
}

func (h *Handler) ParseTitle(tabTitle string) string {
	return h.ParseTitleFn(tabTitle)
}
