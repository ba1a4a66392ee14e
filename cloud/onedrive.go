package cloud

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure OneDriveHandler implements pagegrab.ServiceHandler at compile time.
var _ pagegrab.ServiceHandler = (*OneDriveHandler)(nil)

// OneDrive URL shapes: personal edit/view pages keyed by resid, SharePoint
// short links with the :x:/:w:/:p: document prefix, and SharePoint layouts
// pages keyed by sourcedoc.
var (
	onedrivePersonal    = regexp.MustCompile(`^https?://onedrive\.live\.com/(?:edit|view)\.aspx\?[^#]*\bresid=([^&#]+)`)
	sharepointShortLink = regexp.MustCompile(`^https?://[^/]+\.sharepoint\.com/:([xwp]):/[a-z](?:/[^?#]*)?/([^/?#]+)`)
	sharepointLayouts   = regexp.MustCompile(`^https?://[^/]+\.sharepoint\.com/[^#]*_layouts/15/Doc\.aspx\?[^#]*\bsourcedoc=([^&#]+)`)
)

// docPrefixTypes maps the SharePoint short-link document prefix to a file
// type: :x: Excel, :w: Word, :p: PowerPoint.
var docPrefixTypes = map[string]string{
	"x": "xlsx",
	"w": "docx",
	"p": "pptx",
}

// onedriveDownloadSelectors locate the download command on OneDrive and
// SharePoint pages. Opaque, service-supplied selectors.
var onedriveDownloadSelectors = []string{
	`button[data-automationid="downloadCommand"]`,
	`button[name="Download"]`,
	`a[data-automationid="downloadButton"]`,
	`[aria-label="Download"]`,
}

// OneDriveHandler matches personal OneDrive and SharePoint document URLs.
// Personal edit/view pages resolve by a textual URL transform; SharePoint
// pages have no such transform and scrape the live page instead.
type OneDriveHandler struct{}

// NewOneDriveHandler creates a new OneDriveHandler.
func NewOneDriveHandler() *OneDriveHandler {
	return &OneDriveHandler{}
}

// Name returns the handler's identifier.
func (h *OneDriveHandler) Name() string { return "onedrive" }

// Service returns the service this handler covers.
func (h *OneDriveHandler) Service() pagegrab.Service { return pagegrab.ServiceOneDrive }

// Detect matches the URL against OneDrive's shapes. The file type comes
// from the :x:/:w:/:p: prefix when present, else from app= or literal
// format hints in the URL, defaulting to pdf.
func (h *OneDriveHandler) Detect(rawURL string) *pagegrab.ServiceFileInfo {
	if m := onedrivePersonal.FindStringSubmatch(rawURL); m != nil {
		resid := m[1]
		if decoded, err := url.QueryUnescape(resid); err == nil {
			resid = decoded
		}
		driveID := ""
		if i := strings.IndexByte(resid, '!'); i > 0 {
			driveID = resid[:i]
		}
		return &pagegrab.ServiceFileInfo{
			Service:  pagegrab.ServiceOneDrive,
			FileID:   resid,
			FileType: urlFileType(rawURL),
			URL:      rawURL,
			DriveID:  driveID,
		}
	}
	if m := sharepointShortLink.FindStringSubmatch(rawURL); m != nil {
		return &pagegrab.ServiceFileInfo{
			Service:      pagegrab.ServiceOneDrive,
			FileID:       m[2],
			FileType:     docPrefixTypes[m[1]],
			URL:          rawURL,
			IsSharePoint: true,
		}
	}
	if m := sharepointLayouts.FindStringSubmatch(rawURL); m != nil {
		fileID := m[1]
		if decoded, err := url.QueryUnescape(fileID); err == nil {
			fileID = decoded
		}
		fileID = strings.Trim(fileID, "{}")
		return &pagegrab.ServiceFileInfo{
			Service:      pagegrab.ServiceOneDrive,
			FileID:       fileID,
			FileType:     urlFileType(rawURL),
			URL:          rawURL,
			IsSharePoint: true,
		}
	}
	return nil
}

// urlFileType infers a file type from app= parameters or literal format
// hints anywhere in the URL, defaulting to pdf.
func urlFileType(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "app=Excel"), strings.Contains(rawURL, ".xlsx"):
		return "xlsx"
	case strings.Contains(rawURL, "app=Word"), strings.Contains(rawURL, ".docx"):
		return "docx"
	case strings.Contains(rawURL, "app=PowerPoint"), strings.Contains(rawURL, ".pptx"):
		return "pptx"
	}
	return "pdf"
}

// DownloadURL resolves by URL transform when the page is a personal
// edit/view page, preserving the query string verbatim. SharePoint pages
// and anything else fall through to the DOM scrape, which requires a live
// page context.
func (h *OneDriveHandler) DownloadURL(ctx context.Context, info *pagegrab.ServiceFileInfo, page pagegrab.PageContext) (string, error) {
	if strings.Contains(info.URL, "/edit.aspx") {
		return strings.Replace(info.URL, "/edit.aspx", "/download.aspx", 1), nil
	}
	if strings.Contains(info.URL, "/view.aspx") {
		return strings.Replace(info.URL, "/view.aspx", "/download.aspx", 1), nil
	}
	if page == nil {
		return "", pagegrab.Errorf(pagegrab.ENOCONTEXT, "onedrive resolution requires a live page context for %q", info.URL)
	}
	return page.ScrapeDownloadURL(ctx, onedriveDownloadSelectors)
}

// ParseTitle strips OneDrive/SharePoint tab-title decorations.
func (h *OneDriveHandler) ParseTitle(tabTitle string) string {
	return stripTitleSuffixes(tabTitle, " - OneDrive", " - Microsoft OneDrive", " - SharePoint")
}
