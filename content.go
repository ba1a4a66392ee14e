package pagegrab

// ExtractedContent holds the main article text extracted from a page.
// Text is always Paragraphs joined with blank lines.
type ExtractedContent struct {
	Text       string   `json:"text"`
	Paragraphs []string `json:"paragraphs"`
	Title      string   `json:"title"`

	// Hash is a digest of Text, usable for change detection across
	// repeated extractions of the same page.
	Hash string `json:"hash"`
}

// ContentExtractor locates and extracts the main content region of a page.
//
// Probe is the cheap discovery-time path: it answers "does main content
// exist" and produces a short preview without scoring every candidate.
// Extract is the full path: it scores all candidates and walks the winner
// for paragraph text.
type ContentExtractor interface {
	// Probe reports whether the document appears to have a main content
	// region and returns a preview of at most previewLen characters
	// (plus a "..." suffix when truncated). A page with no content
	// yields (false, "").
	Probe(html string, previewLen int) (found bool, preview string)

	// Extract returns the extracted main content, or (nil, nil) when no
	// candidate region qualifies. Finding nothing is a normal outcome.
	Extract(html string) (*ExtractedContent, error)
}
