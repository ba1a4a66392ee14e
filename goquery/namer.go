package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxNameLength caps derived table names.
const maxNameLength = 100

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// tableName derives a human-readable label for a table from a priority
// chain of DOM signals: caption, aria-label, aria-describedby target,
// a heading within 3 preceding siblings, the element id, and finally a
// positional fallback. index is the table's 0-based discovery index.
func tableName(doc *goquery.Document, table *goquery.Selection, index int) string {
	if name := collapseWhitespace(table.ChildrenFiltered("caption").Text()); name != "" {
		return clipName(name)
	}

	if label, ok := table.Attr("aria-label"); ok {
		if name := collapseWhitespace(label); name != "" {
			return clipName(name)
		}
	}

	// aria-describedby may carry a space-separated ID list; the first
	// reference wins.
	if ids := strings.Fields(table.AttrOr("aria-describedby", "")); len(ids) > 0 {
		target := doc.Find("#" + cssEscapeID(ids[0]))
		if name := collapseWhitespace(target.Text()); name != "" {
			return clipName(name)
		}
	}

	if name := precedingHeading(table); name != "" {
		return clipName(name)
	}

	if id, ok := table.Attr("id"); ok && id != "" {
		name := collapseWhitespace(spaceSeparators(id))
		if name != "" {
			return clipName(name)
		}
	}

	return fmt.Sprintf("Table %d", index+1)
}

// precedingHeading returns the text of the nearest preceding-sibling
// heading element, looking at most 3 siblings back.
func precedingHeading(table *goquery.Selection) string {
	prev := table.Prev()
	for hop := 0; hop < 3 && prev.Length() > 0; hop++ {
		if headingTags[goquery.NodeName(prev)] {
			return collapseWhitespace(prev.Text())
		}
		prev = prev.Prev()
	}
	return ""
}

// clipName caps a name at maxNameLength characters with a "..." suffix.
func clipName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}
	return string(runes[:maxNameLength]) + "..."
}

// spaceSeparators replaces common id separators with spaces.
func spaceSeparators(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.', ':':
			return ' '
		}
		return r
	}, id)
}

// cssEscapeID escapes characters that would change the meaning of an
// #id selector.
func cssEscapeID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch r {
		case '.', ':', '[', ']', '#', '(', ')', ' ':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
