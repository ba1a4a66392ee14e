package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// excludedTags are structural/boilerplate elements that are never scored
// and never walked into during content extraction.
var excludedTags = map[string]bool{
	"nav":      true,
	"footer":   true,
	"header":   true,
	"aside":    true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"form":     true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

// excludedPatterns mark boilerplate regions by class/id substring.
var excludedPatterns = []string{
	"nav", "menu", "sidebar", "footer", "header", "comment",
	"ad", "promo", "related", "widget", "social", "share",
	"subscribe", "newsletter",
}

// contentPatterns mark likely article regions by class/id substring.
var contentPatterns = []string{
	"article", "content", "post", "entry", "story", "body", "text",
}

// minContentLength is the minimum trimmed text length for an element to
// count as a main content candidate.
const minContentLength = 100

// collapseWhitespace trims and collapses all internal whitespace runs to
// single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// classAndID returns the element's class and id attributes joined into one
// lowercased string for pattern matching.
func classAndID(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	return strings.ToLower(class + " " + id)
}

// matchesAny reports whether s contains any of the patterns as a substring.
func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// isHidden reports whether the element is hidden via inline style.
func isHidden(sel *goquery.Selection) bool {
	style, ok := sel.Attr("style")
	if !ok {
		return false
	}
	return styleHides(style)
}

func styleHides(style string) bool {
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	return strings.Contains(style, "display:none") ||
		strings.Contains(style, "visibility:hidden")
}

// isExcluded reports whether the element must not be scored or walked into:
// excluded tag or hidden via inline style.
func isExcluded(sel *goquery.Selection) bool {
	return excludedTags[goquery.NodeName(sel)] || isHidden(sel)
}

// nodeAttr returns an attribute value from a raw html node.
func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeClassAndID is classAndID for raw html nodes.
func nodeClassAndID(n *html.Node) string {
	return strings.ToLower(nodeAttr(n, "class") + " " + nodeAttr(n, "id"))
}

// nodeHidden is isHidden for raw html nodes.
func nodeHidden(n *html.Node) bool {
	return styleHides(nodeAttr(n, "style"))
}

// nodeText returns the concatenated text content of a raw html node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// truncate caps s at max runes, appending "..." when it was longer. When a
// word boundary exists past 70% of the limit, the cut happens there instead
// of mid-word.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := runes[:max]
	// Back up to the last word boundary, but only past 70% of the limit.
	for i := max - 1; i > (max*7)/10; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}
	return string(cut) + "..."
}

// hardTruncate caps s at max runes with no suffix.
func hardTruncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
