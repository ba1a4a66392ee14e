package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// paragraphTags are treated as leaves by the paragraph walk: their text is
// captured whole and the walk does not descend into them, even when they
// nest further paragraph-level tags.
var paragraphTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "li": true, "blockquote": true, "pre": true,
}

// minParagraphLength filters out stray fragments (captions, timestamps,
// single-word list items).
const minParagraphLength = 20

// extractParagraphs walks a located content element and returns its
// paragraph-level text blocks in document order. Duplicate text is emitted
// once, at its first occurrence. Excluded and hidden subtrees are skipped
// entirely.
func extractParagraphs(content *goquery.Selection) []string {
	seen := make(map[string]bool)
	var paragraphs []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if excludedTags[n.Data] || nodeHidden(n) {
				return
			}
			if matchesAny(nodeClassAndID(n), excludedPatterns) {
				return
			}
			if paragraphTags[n.Data] {
				text := collapseWhitespace(nodeText(n))
				if utf8.RuneCountInString(text) >= minParagraphLength && !seen[text] {
					seen[text] = true
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range content.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	return paragraphs
}
