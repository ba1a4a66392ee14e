package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure Discoverer implements pagegrab.TableDiscoverer at compile time.
var _ pagegrab.TableDiscoverer = (*Discoverer)(nil)

const (
	// previewRowLimit is how many rows a discovery preview shows.
	previewRowLimit = 3

	// previewCellLimit caps preview cell text length.
	previewCellLimit = 50

	// contentPreviewLimit caps the discovery content preview (before the
	// "..." suffix).
	contentPreviewLimit = 200

	// minDataRows / minDataCols separate data tables from layout tables.
	minDataRows = 2
	minDataCols = 2
)

// Discoverer scans a document for data tables and probes for main content.
// Discovery is the cheap pass that populates a selection UI; the Discovery
// it returns carries the qualifying table elements so a later extraction
// pass operates on exactly the same tables under the same indices.
type Discoverer struct {
	grid    *GridBuilder
	content pagegrab.ContentExtractor
}

// NewDiscoverer creates a Discoverer using the given content extractor for
// the main-content probe.
func NewDiscoverer(content pagegrab.ContentExtractor) *Discoverer {
	return &Discoverer{
		grid:    NewGridBuilder(),
		content: content,
	}
}

// Discover parses the document, qualifies its tables (native table
// elements and ARIA role=grid/role=table markup), and probes for main
// content. Finding nothing is a normal outcome: the snapshot simply has no
// tables and HasMainContent false.
func (d *Discoverer) Discover(htmlStr string) (pagegrab.Discovery, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "failed to parse HTML: %v", err)
	}

	disc := &discovery{
		token: uuid.NewString(),
		grid:  d.grid,
	}

	var infos []pagegrab.TableInfo
	doc.Find(tableOwnerSelector).Each(func(_ int, table *goquery.Selection) {
		if !qualifies(table) {
			return
		}
		index := len(disc.tables)
		name := tableName(doc, table, index)
		rows := tableRows(table)

		infos = append(infos, pagegrab.TableInfo{
			Index:       index,
			Name:        name,
			RowCount:    len(rows),
			ColumnCount: columnCount(rows),
			PreviewRows: previewRows(rows),
		})
		disc.tables = append(disc.tables, table)
		disc.names = append(disc.names, name)
	})

	hasContent, preview := d.content.Probe(htmlStr, contentPreviewLimit)

	disc.result = &pagegrab.DiscoveryResult{
		Tables:         infos,
		HasMainContent: hasContent,
		ContentPreview: preview,
		PageTitle:      pageTitle(doc),
	}
	return disc, nil
}

// qualifies filters out layout and nested tables: a table must be the
// outermost of its nesting (native or ARIA), must not be
// role=presentation/none, and must have at least 2 data rows and 2
// columns.
func qualifies(table *goquery.Selection) bool {
	if role, _ := table.Attr("role"); role == "presentation" || role == "none" {
		return false
	}
	if table.ParentsFiltered(tableOwnerSelector).Length() > 0 {
		return false
	}
	rows := tableRows(table)
	if dataRowCount(rows) < minDataRows {
		return false
	}
	return columnCount(rows) >= minDataCols
}

// dataRowCount counts rows with at least one non-empty cell.
func dataRowCount(rows []*goquery.Selection) int {
	count := 0
	for _, row := range rows {
		nonEmpty := false
		rowCells(row).EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			if cellText(cell) != "" {
				nonEmpty = true
				return false
			}
			return true
		})
		if nonEmpty {
			count++
		}
	}
	return count
}

// columnCount is the maximum colspan sum over all rows.
func columnCount(rows []*goquery.Selection) int {
	max := 0
	for _, row := range rows {
		total := 0
		rowCells(row).Each(func(_ int, cell *goquery.Selection) {
			total += spanAttr(cell, "colspan")
		})
		if total > max {
			max = total
		}
	}
	return max
}

// previewRows builds the first rows of a table with a simplified extractor:
// cells in document order, no span expansion, text capped per cell.
func previewRows(rows []*goquery.Selection) [][]string {
	limit := previewRowLimit
	if len(rows) < limit {
		limit = len(rows)
	}
	preview := make([][]string, 0, limit)
	for _, row := range rows[:limit] {
		var cells []string
		rowCells(row).Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, hardTruncate(cellText(cell), previewCellLimit))
		})
		preview = append(preview, cells)
	}
	return preview
}

// discovery implements pagegrab.Discovery over cached table selections.
type discovery struct {
	result *pagegrab.DiscoveryResult
	token  string
	tables []*goquery.Selection
	names  []string
	grid   *GridBuilder
}

func (d *discovery) Result() *pagegrab.DiscoveryResult {
	return d.result
}

func (d *discovery) Token() string {
	return d.token
}

func (d *discovery) ExtractTable(index int) (*pagegrab.TableData, error) {
	if index < 0 || index >= len(d.tables) {
		return nil, pagegrab.Errorf(pagegrab.ENOTFOUND, "table index %d does not exist", index)
	}
	return d.grid.Build(d.tables[index], d.names[index])
}

func (d *discovery) ExtractAllTables() []*pagegrab.TableData {
	out := make([]*pagegrab.TableData, 0, len(d.tables))
	for i := range d.tables {
		data, err := d.ExtractTable(i)
		if err != nil {
			// One malformed table must not fail the rest.
			continue
		}
		out = append(out, data)
	}
	return out
}
