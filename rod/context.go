package rod

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-rod/rod"
	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure PageContext implements pagegrab.PageContext at compile time.
var _ pagegrab.PageContext = (*PageContext)(nil)

// DefaultScrapeTimeout bounds the wait for a scrape reply. The page is an
// untrusted remote context that may never respond; a scrape must fail as a
// timeout rather than wait forever.
const DefaultScrapeTimeout = 5 * time.Second

// scrapeScript runs inside the page: it tries each selector in order and
// returns on the first element found with a usable href or data-href.
const scrapeScript = `(selectors) => {
	for (const selector of selectors) {
		let el;
		try {
			el = document.querySelector(selector);
		} catch (e) {
			continue;
		}
		if (!el) {
			continue;
		}
		const href = el.href || el.getAttribute('data-href') || el.getAttribute('href');
		if (href) {
			return JSON.stringify({ success: true, downloadUrl: href });
		}
	}
	return JSON.stringify({ success: false, error: 'no selector matched a download control' });
}`

// PageContext adapts a live rod page to the DOM-scrape protocol used by
// download resolution. Each ScrapeDownloadURL call is independent; callers
// wanting at-most-one in-flight scrape per page enforce that themselves.
type PageContext struct {
	page    *rod.Page
	timeout time.Duration
}

// ContextOption configures a PageContext.
type ContextOption func(*PageContext)

// WithScrapeTimeout overrides the bounded wait for a scrape reply.
// Defaults to DefaultScrapeTimeout.
func WithScrapeTimeout(d time.Duration) ContextOption {
	return func(p *PageContext) {
		p.timeout = d
	}
}

// NewPageContext wraps a live page. The page stays owned by the caller;
// closing it invalidates the context.
func NewPageContext(page *rod.Page, opts ...ContextOption) *PageContext {
	p := &PageContext{
		page:    page,
		timeout: DefaultScrapeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ScrapeDownloadURL evaluates the scrape routine in the page, trying the
// selectors in order. A reply that arrives but matched nothing fails with
// EUNRESOLVED; no reply within the timeout fails with ETIMEOUT.
func (p *PageContext) ScrapeDownloadURL(ctx context.Context, selectors []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.page.Context(ctx).Eval(scrapeScript, selectors)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", pagegrab.Errorf(pagegrab.ETIMEOUT, "page did not reply to scrape within %s", p.timeout)
		}
		return "", err
	}

	var result pagegrab.ScrapeResult
	if err := json.Unmarshal([]byte(res.Value.Str()), &result); err != nil {
		return "", pagegrab.Errorf(pagegrab.EINTERNAL, "malformed scrape reply: %v", err)
	}
	if !result.Success || result.DownloadURL == "" {
		return "", pagegrab.Errorf(pagegrab.EUNRESOLVED, "scrape found no download control: %s", result.Error)
	}
	return result.DownloadURL, nil
}
