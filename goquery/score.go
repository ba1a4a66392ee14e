package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Scoring weights for main-content candidates. The scale is open-ended;
// only relative order matters, plus the qualification threshold in the
// locator.
const (
	scoreArticleTag   = 15
	scoreMainTag      = 10
	scoreSemanticRole = 10
	scoreExcludedHit  = -10
	scoreContentHit   = 5
	densityWeight     = 20
	paragraphWeight   = 2
	paragraphCap      = 10
	linkDensityLimit  = 0.3
	linkDensityHit    = -15
)

// scoreCandidate computes the "is this the primary content region" score
// for one element. Elements below the minimum content length, excluded
// tags, and hidden elements score 0.
func scoreCandidate(sel *goquery.Selection) float64 {
	if isExcluded(sel) {
		return 0
	}
	text := collapseWhitespace(sel.Text())
	if utf8.RuneCountInString(text) < minContentLength {
		return 0
	}

	var score float64

	switch goquery.NodeName(sel) {
	case "article":
		score += scoreArticleTag
	case "main":
		score += scoreMainTag
	}
	if role, _ := sel.Attr("role"); role == "main" || role == "article" {
		score += scoreSemanticRole
	}

	ci := classAndID(sel)
	if matchesAny(ci, excludedPatterns) {
		score += scoreExcludedHit
	}
	if matchesAny(ci, contentPatterns) {
		score += scoreContentHit
	}

	score += textDensity(sel, text) * densityWeight

	paragraphs := sel.Find("p").Length()
	if paragraphs > paragraphCap {
		paragraphs = paragraphCap
	}
	score += float64(paragraphs * paragraphWeight)

	if linkDensity(sel, text) > linkDensityLimit {
		score += linkDensityHit
	}

	return score
}

// textDensity is the ratio of collapsed text length to inner HTML length,
// a boilerplate-vs-content signal: markup-heavy regions score low.
func textDensity(sel *goquery.Selection, text string) float64 {
	inner, err := sel.Html()
	if err != nil || len(inner) == 0 {
		return 0
	}
	return float64(len(text)) / float64(len(inner))
}

// linkDensity is the fraction of the element's text living inside anchors.
// High values indicate navigation.
func linkDensity(sel *goquery.Selection, text string) float64 {
	if len(text) == 0 {
		return 0
	}
	var linkLen int
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += len(collapseWhitespace(a.Text()))
	})
	return float64(linkLen) / float64(len(text))
}
