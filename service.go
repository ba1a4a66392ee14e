package pagegrab

import "context"

// Service identifies a supported cloud document service.
type Service string

// Supported services.
const (
	ServiceUnknown  Service = ""
	ServiceGoogle   Service = "google"
	ServiceDropbox  Service = "dropbox"
	ServiceBox      Service = "box"
	ServiceOneDrive Service = "onedrive"
)

// ServiceFileInfo describes a document hosted on a cloud service, as
// detected from its URL. Service is the discriminator; the optional fields
// are populated per service.
type ServiceFileInfo struct {
	Service  Service `json:"service"`
	FileID   string  `json:"fileId"`
	FileType string  `json:"fileType"`
	URL      string  `json:"url"`

	// Google: ready-to-fetch export endpoint for the matched document.
	ExportURL string `json:"exportUrl,omitempty"`

	// Dropbox: whether the URL is a shared link (vs. a home path).
	IsSharedLink bool `json:"isSharedLink,omitempty"`

	// Box: enterprise subdomain, when present in the URL host.
	EnterpriseID string `json:"enterpriseId,omitempty"`

	// OneDrive: SharePoint-hosted documents resolve differently from
	// personal OneDrive ones.
	IsSharePoint bool   `json:"isSharePoint,omitempty"`
	DriveID      string `json:"driveId,omitempty"`
}

// ScrapeResult is the reply shape of the DOM-scrape sub-protocol. The
// scraping side tries each requested selector in order and returns on the
// first element found with a usable href or data-href.
type ScrapeResult struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

// PageContext is a handle to the live page a document is open in. The
// DOM-scrape resolution strategies need one because a download control's
// href only exists in the rendered page, not in the URL.
type PageContext interface {
	// ScrapeDownloadURL asks the live page to locate a download control
	// using the given CSS selectors, tried in order. The call is bounded:
	// implementations must fail with ETIMEOUT rather than wait forever on
	// an unresponsive page, and with EUNRESOLVED when the page replied
	// but no selector matched.
	ScrapeDownloadURL(ctx context.Context, selectors []string) (string, error)
}

// ServiceHandler is the full capability set of one cloud service: URL
// detection, download-URL resolution, and tab-title cleanup.
type ServiceHandler interface {
	// Name returns the handler's identifier (e.g., "google", "box").
	Name() string

	// Service returns the service this handler covers.
	Service() Service

	// Detect pattern-matches the URL against the service's known URL
	// shapes and returns file info for the first match, or nil when the
	// URL does not belong to this service.
	Detect(url string) *ServiceFileInfo

	// DownloadURL resolves a fetchable URL for a detected file, applying
	// the service's strategy chain in order. page may be nil; strategies
	// that scrape the live DOM then fail with ENOCONTEXT instead of
	// silently falling through.
	DownloadURL(ctx context.Context, info *ServiceFileInfo, page PageContext) (string, error)

	// ParseTitle strips the service's own suffix/prefix decorations from
	// a browser tab title, leaving the document name.
	ParseTitle(tabTitle string) string
}

// HandlerRegistry holds the set of service handlers. Registration order is
// the detection priority: given a URL that could structurally match more
// than one service, the earliest-registered handler wins.
type HandlerRegistry interface {
	// Register adds a handler. At most one handler is kept per service;
	// registering a second handler for the same service replaces the
	// first but keeps its original priority position.
	Register(h ServiceHandler)

	// Get returns the handler for a specific service, or nil if none is
	// registered.
	Get(service Service) ServiceHandler

	// Detect returns the first registered handler whose Detect matches
	// the URL, along with the detected file info. Returns (nil, nil) for
	// a URL no service recognizes; that is a normal outcome, not an error.
	Detect(url string) (ServiceHandler, *ServiceFileInfo)

	// List returns registered services in registration order.
	List() []Service
}
