package goquery

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	pagegrab "github.com/mstolarz/pagegrab"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagegrab.ContentExtractor at compile time.
var _ pagegrab.ContentExtractor = (*Extractor)(nil)

// fullScoreThreshold is the minimum score for the full locator path to
// accept a candidate at all.
const fullScoreThreshold = 5

// semanticSelectors match containers that declare themselves as main
// content.
var semanticSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"[role='article']",
}

// commonContentSelectors cover the class/id conventions most sites use for
// the article body when they don't use semantic markup.
var commonContentSelectors = []string{
	"#content",
	"#main-content",
	"#main",
	"#article",
	".content",
	".main-content",
	".post-content",
	".entry-content",
	".article-content",
	".article-body",
	".post-body",
	".story-body",
}

// Extractor locates the main content region of a page and extracts its
// paragraph text. The cheap Probe path exists so a discovery pass can
// answer "is there anything here" quickly; the full Extract path scores
// every candidate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Probe reports whether the document has a main content region and builds
// a short preview. It uses the cheap locator path only.
func (e *Extractor) Probe(html string, previewLen int) (bool, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false, ""
	}
	content := cheapLocate(doc)
	if content == nil {
		return false, ""
	}
	return true, buildPreview(content, previewLen)
}

// Extract locates the best-scoring content region and extracts its
// paragraphs. Returns (nil, nil) when no candidate qualifies.
func (e *Extractor) Extract(html string) (*pagegrab.ExtractedContent, error) {
	if html == "" {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "failed to parse HTML: %v", err)
	}

	content := fullLocate(doc)
	if content == nil {
		return nil, nil
	}

	paragraphs := extractParagraphs(content)
	text := strings.Join(paragraphs, "\n\n")

	return &pagegrab.ExtractedContent{
		Text:       text,
		Paragraphs: paragraphs,
		Title:      pageTitle(doc),
		Hash:       strconv.FormatUint(xxhash.Sum64String(text), 16),
	}, nil
}

// cheapLocate is the discovery-time path: semantic containers first, then
// common content selectors, then the densest paragraph parent. The first
// candidate meeting the minimum content length wins.
func cheapLocate(doc *goquery.Document) *goquery.Selection {
	for _, selector := range semanticSelectors {
		if c := firstQualifying(doc, selector); c != nil {
			return c
		}
	}
	for _, selector := range commonContentSelectors {
		if c := firstQualifying(doc, selector); c != nil {
			return c
		}
	}
	return densestParagraphParent(doc)
}

// firstQualifying returns the first match of selector that is not excluded
// and carries enough text.
func firstQualifying(doc *goquery.Document, selector string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if isExcluded(sel) {
			return true
		}
		if utf8.RuneCountInString(collapseWhitespace(sel.Text())) < minContentLength {
			return true
		}
		found = sel
		return false
	})
	return found
}

// densestParagraphParent picks, among elements that directly parent
// paragraphs, the one with the highest density x paragraph-count product.
func densestParagraphParent(doc *goquery.Document) *goquery.Selection {
	type candidate struct {
		sel   *goquery.Selection
		score float64
	}
	var best *candidate
	seen := make(map[*html.Node]bool)

	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		parent := p.Parent()
		if parent.Length() == 0 || isExcluded(parent) {
			return
		}
		if seen[parent.Nodes[0]] {
			return
		}
		seen[parent.Nodes[0]] = true

		text := collapseWhitespace(parent.Text())
		if utf8.RuneCountInString(text) < minContentLength {
			return
		}
		paragraphs := parent.ChildrenFiltered("p").Length()
		if paragraphs > paragraphCap {
			paragraphs = paragraphCap
		}
		score := textDensity(parent, text) * float64(paragraphs)
		if best == nil || score > best.score {
			best = &candidate{sel: parent, score: score}
		}
	})

	if best == nil {
		return nil
	}
	return best.sel
}

// fullLocate is the extraction-time path: gather every candidate, score
// all of them, and keep the maximum above the threshold.
func fullLocate(doc *goquery.Document) *goquery.Selection {
	var candidates []*goquery.Selection
	seen := make(map[*html.Node]bool)

	add := func(sel *goquery.Selection) {
		if sel.Length() == 0 || seen[sel.Nodes[0]] {
			return
		}
		seen[sel.Nodes[0]] = true
		candidates = append(candidates, sel)
	}

	for _, selector := range semanticSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) { add(sel) })
	}
	for _, selector := range commonContentSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) { add(sel) })
	}
	doc.Find("div,section").Each(func(_ int, sel *goquery.Selection) {
		if sel.Find("p").Length() >= 2 {
			add(sel)
		}
	})

	var best *goquery.Selection
	var bestScore float64
	for _, c := range candidates {
		score := scoreCandidate(c)
		if score > fullScoreThreshold && score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// buildPreview summarizes a content element: the first paragraph's text
// when it is substantial, otherwise the element's full text, truncated at
// a word boundary.
func buildPreview(content *goquery.Selection, maxLen int) string {
	preview := collapseWhitespace(content.Find("p").First().Text())
	if utf8.RuneCountInString(preview) < 50 {
		preview = collapseWhitespace(content.Text())
	}
	return truncate(preview, maxLen)
}

// pageTitle returns the document's collapsed title text, trimmed of the
// site-name decoration.
func pageTitle(doc *goquery.Document) string {
	return stripSiteSuffix(collapseWhitespace(doc.Find("title").First().Text()))
}

// stripSiteSuffix drops the site name most pages append to their titles
// after the last " - " or " | " separator.
func stripSiteSuffix(title string) string {
	for _, sep := range []string{" | ", " - "} {
		if i := strings.LastIndex(title, sep); i > 0 {
			return title[:i]
		}
	}
	return title
}
