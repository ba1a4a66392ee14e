package goquery

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	pagegrab "github.com/mstolarz/pagegrab"
)

// GridBuilder reconstructs the logical row/column grid of a table element,
// resolving colspan/rowspan so that the output is rectangular: every row
// has exactly the same number of cells, padded with empty strings where no
// source cell covers a position.
type GridBuilder struct{}

// NewGridBuilder creates a new GridBuilder.
func NewGridBuilder() *GridBuilder {
	return &GridBuilder{}
}

// Build produces the full-fidelity grid for one table element. The name is
// supplied by the caller (see Namer). Returns EINVALID when the table has
// no rows or no cells.
func (b *GridBuilder) Build(table *goquery.Selection, name string) (*pagegrab.TableData, error) {
	rows := tableRows(table)
	numRows := len(rows)
	numCols := 0
	for _, row := range rows {
		total := 0
		rowCells(row).Each(func(_ int, cell *goquery.Selection) {
			total += spanAttr(cell, "colspan")
		})
		if total > numCols {
			numCols = total
		}
	}
	if numRows == 0 || numCols == 0 {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "table has no cells")
	}

	grid := make([][]string, numRows)
	occupied := make([][]bool, numRows)
	for i := range grid {
		grid[i] = make([]string, numCols)
		occupied[i] = make([]bool, numCols)
	}

	for ri, row := range rows {
		col := 0
		rowCells(row).Each(func(_ int, cell *goquery.Selection) {
			// Advance past positions claimed by a rowspan from a
			// previous row, so later cells in this row shift right.
			for col < numCols && occupied[ri][col] {
				col++
			}
			if col >= numCols {
				return
			}

			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			text := cellText(cell)

			for i := 0; i < rowspan; i++ {
				for j := 0; j < colspan; j++ {
					r, c := ri+i, col+j
					if r >= numRows || c >= numCols {
						continue
					}
					if occupied[r][c] {
						// Overlapping spans in malformed input:
						// first writer wins.
						continue
					}
					grid[r][c] = text
					occupied[r][c] = true
				}
			}
			col += colspan
		})
	}

	return &pagegrab.TableData{
		Name:      name,
		Data:      grid,
		HasHeader: detectHeader(table, rows),
	}, nil
}

// detectHeader reports whether the table's first row is a header. A
// semantic header group always wins; otherwise the first row counts as a
// header when its header cells outnumber half its total cells.
func detectHeader(table *goquery.Selection, rows []*goquery.Selection) bool {
	if table.ChildrenFiltered("thead").Length() > 0 {
		return true
	}
	if len(rows) == 0 {
		return false
	}
	cells := rowCells(rows[0])
	total := cells.Length()
	headers := cells.Filter("th,[role='columnheader']").Length()
	return total > 0 && headers*2 > total
}

// tableOwnerSelector matches any element that starts a table scope:
// native tables and ARIA grid/table markup.
const tableOwnerSelector = "table,[role='grid'],[role='table']"

// ariaCellSelector matches the ARIA cell roles inside a role=row element.
const ariaCellSelector = "[role='cell'],[role='gridcell'],[role='columnheader'],[role='rowheader']"

// tableRows returns the rows belonging to this table, excluding rows of
// any table nested inside it. Native tables row on tr; ARIA grids row on
// role=row elements.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	if len(table.Nodes) == 0 {
		return nil
	}
	owner := table.Nodes[0]
	rowSelector := "tr"
	if goquery.NodeName(table) != "table" {
		rowSelector = "[role='row']"
	}
	var rows []*goquery.Selection
	table.Find(rowSelector).Each(func(_ int, tr *goquery.Selection) {
		closest := tr.Closest(tableOwnerSelector)
		if len(closest.Nodes) > 0 && closest.Nodes[0] == owner {
			rows = append(rows, tr)
		}
	})
	return rows
}

// rowCells returns a row's cells: direct td/th children for a native row,
// ARIA cell/header children for a role=row element.
func rowCells(row *goquery.Selection) *goquery.Selection {
	if cells := row.ChildrenFiltered("td,th"); cells.Length() > 0 {
		return cells
	}
	return row.ChildrenFiltered(ariaCellSelector)
}

// spanAttr parses a colspan/rowspan attribute, falling back to the
// aria-colspan/aria-rowspan form, defaulting to 1.
func spanAttr(cell *goquery.Selection, name string) int {
	v, ok := cell.Attr(name)
	if !ok {
		v, ok = cell.Attr("aria-" + name)
	}
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// cellText returns the cell's collapsed text; when the cell is textually
// empty but contains an image, the image's alt text stands in.
func cellText(cell *goquery.Selection) string {
	text := collapseWhitespace(cell.Text())
	if text != "" {
		return text
	}
	alt, ok := cell.Find("img").First().Attr("alt")
	if !ok {
		return ""
	}
	return collapseWhitespace(alt)
}
