package cloud

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure DropboxHandler implements pagegrab.ServiceHandler at compile time.
var _ pagegrab.ServiceHandler = (*DropboxHandler)(nil)

// Dropbox URL shapes, tried in order: shared link v2 (scl), shared link v1,
// home path with preview parameter, preview path.
var (
	dropboxSharedV2 = regexp.MustCompile(`^https?://(?:www\.)?dropbox\.com/scl/fi/([a-zA-Z0-9]+)/([^/?#]+)`)
	dropboxSharedV1 = regexp.MustCompile(`^https?://(?:www\.)?dropbox\.com/s/([a-zA-Z0-9]+)/([^/?#]+)`)
	dropboxHome     = regexp.MustCompile(`^https?://(?:www\.)?dropbox\.com/home(?:/[^?#]*)?\?[^#]*\bpreview=([^&#]+)`)
	dropboxPreview  = regexp.MustCompile(`^https?://(?:www\.)?dropbox\.com/preview/([^?#]+)`)
)

// DropboxHandler matches Dropbox shared links and home/preview paths.
// Resolution is a plain URL rewrite: Dropbox serves the file bytes when
// the dl=1 query parameter is set.
type DropboxHandler struct{}

// NewDropboxHandler creates a new DropboxHandler.
func NewDropboxHandler() *DropboxHandler {
	return &DropboxHandler{}
}

// Name returns the handler's identifier.
func (h *DropboxHandler) Name() string { return "dropbox" }

// Service returns the service this handler covers.
func (h *DropboxHandler) Service() pagegrab.Service { return pagegrab.ServiceDropbox }

// Detect matches the URL against Dropbox's link shapes. The file type
// comes from the decoded filename's extension, defaulting to pdf when the
// name has no extension and txt when the extension is unrecognized.
func (h *DropboxHandler) Detect(rawURL string) *pagegrab.ServiceFileInfo {
	if m := dropboxSharedV2.FindStringSubmatch(rawURL); m != nil {
		return h.info(rawURL, m[1], m[2], true)
	}
	if m := dropboxSharedV1.FindStringSubmatch(rawURL); m != nil {
		return h.info(rawURL, m[1], m[2], true)
	}
	if m := dropboxHome.FindStringSubmatch(rawURL); m != nil {
		return h.info(rawURL, m[1], m[1], false)
	}
	if m := dropboxPreview.FindStringSubmatch(rawURL); m != nil {
		name := m[1]
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		return h.info(rawURL, m[1], name, false)
	}
	return nil
}

func (h *DropboxHandler) info(rawURL, fileID, filename string, shared bool) *pagegrab.ServiceFileInfo {
	if decoded, err := url.PathUnescape(filename); err == nil {
		filename = decoded
	}
	return &pagegrab.ServiceFileInfo{
		Service:      pagegrab.ServiceDropbox,
		FileID:       fileID,
		FileType:     fileTypeFromName(filename, "pdf", "txt"),
		URL:          rawURL,
		IsSharedLink: shared,
	}
}

// DownloadURL strips any existing query string and appends dl=1, which
// switches Dropbox from the preview page to the raw file.
func (h *DropboxHandler) DownloadURL(_ context.Context, info *pagegrab.ServiceFileInfo, _ pagegrab.PageContext) (string, error) {
	base := info.URL
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return base + "?dl=1", nil
}

// ParseTitle strips the Dropbox tab-title suffix.
func (h *DropboxHandler) ParseTitle(tabTitle string) string {
	return stripTitleSuffixes(tabTitle, " - Dropbox", " | Dropbox")
}
