package mock

import pagegrab "github.com/mstolarz/pagegrab"

var _ pagegrab.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of pagegrab.ContentExtractor.
type ContentExtractor struct {
	ProbeFn   func(html string, previewLen int) (bool, string)
	ExtractFn func(html string) (*pagegrab.ExtractedContent, error)
}

func (e *ContentExtractor) Probe(html string, previewLen int) (bool, string) {
	return e.ProbeFn(html, previewLen)
}

func (e *ContentExtractor) Extract(html string) (*pagegrab.ExtractedContent, error) {
	return e.ExtractFn(html)
}
