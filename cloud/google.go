package cloud

import (
	"context"
	"fmt"
	"regexp"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure GoogleHandler implements pagegrab.ServiceHandler at compile time.
var _ pagegrab.ServiceHandler = (*GoogleHandler)(nil)

// googlePatterns cover the Docs editors' URL shapes, tried in order.
// Each editor kind maps to the export format the document downloads as.
var googlePatterns = []struct {
	re       *regexp.Regexp
	kind     string
	fileType string
}{
	{regexp.MustCompile(`^https?://docs\.google\.com/spreadsheets/(?:u/\d+/)?d/([a-zA-Z0-9_-]+)`), "spreadsheets", "xlsx"},
	{regexp.MustCompile(`^https?://docs\.google\.com/document/(?:u/\d+/)?d/([a-zA-Z0-9_-]+)`), "document", "docx"},
	{regexp.MustCompile(`^https?://docs\.google\.com/presentation/(?:u/\d+/)?d/([a-zA-Z0-9_-]+)`), "presentation", "pptx"},
}

// GoogleHandler matches Google Docs, Sheets, and Slides URLs. Google
// documents expose a first-party export endpoint, so resolution never
// needs the live page.
type GoogleHandler struct{}

// NewGoogleHandler creates a new GoogleHandler.
func NewGoogleHandler() *GoogleHandler {
	return &GoogleHandler{}
}

// Name returns the handler's identifier.
func (h *GoogleHandler) Name() string { return "google" }

// Service returns the service this handler covers.
func (h *GoogleHandler) Service() pagegrab.Service { return pagegrab.ServiceGoogle }

// Detect matches the URL against the Docs editors' shapes and returns file
// info for the first match, including a ready-to-fetch export URL.
func (h *GoogleHandler) Detect(url string) *pagegrab.ServiceFileInfo {
	for _, p := range googlePatterns {
		m := p.re.FindStringSubmatch(url)
		if m == nil {
			continue
		}
		return &pagegrab.ServiceFileInfo{
			Service:   pagegrab.ServiceGoogle,
			FileID:    m[1],
			FileType:  p.fileType,
			URL:       url,
			ExportURL: fmt.Sprintf("https://docs.google.com/%s/d/%s/export?format=%s", p.kind, m[1], p.fileType),
		}
	}
	return nil
}

// DownloadURL returns the export URL matched at detection time.
func (h *GoogleHandler) DownloadURL(_ context.Context, info *pagegrab.ServiceFileInfo, _ pagegrab.PageContext) (string, error) {
	if info.ExportURL == "" {
		return "", pagegrab.Errorf(pagegrab.EUNRESOLVED, "google file %q has no export URL", info.FileID)
	}
	return info.ExportURL, nil
}

// ParseTitle strips the editor's tab-title suffix.
func (h *GoogleHandler) ParseTitle(tabTitle string) string {
	return stripTitleSuffixes(tabTitle,
		" - Google Sheets", " - Google Docs", " - Google Slides", " - Google Drive")
}
