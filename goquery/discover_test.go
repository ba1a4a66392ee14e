package goquery_test

import (
	"strings"
	"testing"

	pagegrab "github.com/mstolarz/pagegrab"
	"github.com/mstolarz/pagegrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Discoverer implements pagegrab.TableDiscoverer at compile time.
var _ pagegrab.TableDiscoverer = (*goquery.Discoverer)(nil)

func TestDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("assigns dense indices in document order", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table><caption>First</caption>` + twoByTwo + `</table>
			<table role="presentation">` + twoByTwo + `</table>
			<table><caption>Second</caption>` + twoByTwo + `</table>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 2)
		assert.Equal(t, 0, result.Tables[0].Index)
		assert.Equal(t, "First", result.Tables[0].Name)
		assert.Equal(t, 1, result.Tables[1].Index)
		assert.Equal(t, "Second", result.Tables[1].Name)
	})

	t.Run("excludes role=presentation and role=none tables", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table role="presentation">` + twoByTwo + `</table>
			<table role="none">` + twoByTwo + `</table>`)
		require.NoError(t, err)

		assert.Empty(t, disc.Result().Tables)
	})

	t.Run("excludes nested tables but keeps the outermost", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table><caption>Outer</caption>
				<tr><td><table><caption>Inner</caption>` + twoByTwo + `</table></td><td>b</td></tr>
				<tr><td>c</td><td>d</td></tr>
			</table>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 1)
		assert.Equal(t, "Outer", result.Tables[0].Name)
	})

	t.Run("excludes tables with fewer than 2 data rows", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table><tr><td>only</td><td>row</td></tr></table>
			<table><tr><td>data</td><td>row</td></tr><tr><td></td><td></td></tr></table>`)
		require.NoError(t, err)

		assert.Empty(t, disc.Result().Tables)
	})

	t.Run("excludes single-column tables entirely", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table>
				<tr><td>one</td></tr>
				<tr><td>two</td></tr>
				<tr><td>three</td></tr>
			</table>`)
		require.NoError(t, err)

		assert.Empty(t, disc.Result().Tables)
	})

	t.Run("reports row and column counts", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table>
				<tr><td colspan="2">wide</td><td>x</td></tr>
				<tr><td>a</td><td>b</td><td>c</td></tr>
			</table>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 1)
		assert.Equal(t, 2, result.Tables[0].RowCount)
		assert.Equal(t, 3, result.Tables[0].ColumnCount)
	})

	t.Run("preview shows at most 3 rows with 50-char cells", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("y", 80)
		disc, err := newDiscoverer().Discover(`
			<table>
				<tr><td>` + long + `</td><td>short</td></tr>
				<tr><td>r2</td><td>r2</td></tr>
				<tr><td>r3</td><td>r3</td></tr>
				<tr><td>r4</td><td>r4</td></tr>
			</table>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 1)
		preview := result.Tables[0].PreviewRows
		require.Len(t, preview, 3)
		assert.Equal(t, strings.Repeat("y", 50), preview[0][0])
		assert.Equal(t, "short", preview[0][1])
	})

	t.Run("page with only navigation yields an empty snapshot", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`<html><head><title>Nav Only</title></head><body>
			<nav><a href="/a">A</a><a href="/b">B</a><a href="/c">C</a></nav>
		</body></html>`)
		require.NoError(t, err)

		result := disc.Result()
		assert.Empty(t, result.Tables)
		assert.False(t, result.HasMainContent)
		assert.Empty(t, result.ContentPreview)
		assert.Equal(t, "Nav Only", result.PageTitle)
	})

	t.Run("discovery is idempotent for an unchanged document", func(t *testing.T) {
		t.Parallel()

		html := `<table><caption>Stable</caption>` + twoByTwo + `</table>`
		d := newDiscoverer()

		first, err := d.Discover(html)
		require.NoError(t, err)
		second, err := d.Discover(html)
		require.NoError(t, err)

		assert.Equal(t, first.Result(), second.Result())
		assert.NotEqual(t, first.Token(), second.Token(), "each pass gets its own token")
	})
}

func TestDiscovery_Extraction(t *testing.T) {
	t.Parallel()

	t.Run("extraction agrees with discovery on tables and order", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table><caption>Alpha</caption>` + twoByTwo + `</table>
			<table role="presentation">` + twoByTwo + `</table>
			<table><caption>Beta</caption>` + twoByTwo + `</table>`)
		require.NoError(t, err)

		all := disc.ExtractAllTables()
		require.Len(t, all, 2)
		assert.Equal(t, "Alpha", all[0].Name)
		assert.Equal(t, "Beta", all[1].Name)

		beta, err := disc.ExtractTable(1)
		require.NoError(t, err)
		assert.Equal(t, "Beta", beta.Name)
	})

	t.Run("full extraction resolves spans the preview ignored", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<table>
				<tr><th colspan="3">Wide</th></tr>
				<tr><td>A</td><td>B</td><td>C</td></tr>
			</table>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 1)
		// The preview is the simplified extractor: one cell, no expansion.
		assert.Equal(t, []string{"Wide"}, result.Tables[0].PreviewRows[0])

		data, err := disc.ExtractTable(0)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"Wide", "Wide", "Wide"}, {"A", "B", "C"}}, data.Data)
		assert.True(t, data.HasHeader)
	})

	t.Run("out of range index fails with ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`<table>` + twoByTwo + `</table>`)
		require.NoError(t, err)

		_, err = disc.ExtractTable(5)
		require.Error(t, err)
		assert.Equal(t, pagegrab.ENOTFOUND, pagegrab.ErrorCode(err))

		_, err = disc.ExtractTable(-1)
		require.Error(t, err)
		assert.Equal(t, pagegrab.ENOTFOUND, pagegrab.ErrorCode(err))
	})
}

func TestDiscoverer_AriaGrids(t *testing.T) {
	t.Parallel()

	t.Run("discovers role=table markup alongside native tables", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`<html><body>
			<div role="table" aria-label="Open Tickets">
				<div role="row"><span role="columnheader">ID</span><span role="columnheader">Status</span></div>
				<div role="row"><span role="cell">T-1</span><span role="cell">Open</span></div>
				<div role="row"><span role="cell">T-2</span><span role="cell">Closed</span></div>
			</div>
			<table><caption>Native</caption>` + twoByTwo + `</table>
		</body></html>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 2)
		assert.Equal(t, "Open Tickets", result.Tables[0].Name)
		assert.Equal(t, 3, result.Tables[0].RowCount)
		assert.Equal(t, 2, result.Tables[0].ColumnCount)
		assert.Equal(t, [][]string{{"ID", "Status"}, {"T-1", "Open"}, {"T-2", "Closed"}},
			result.Tables[0].PreviewRows)
		assert.Equal(t, "Native", result.Tables[1].Name)
	})

	t.Run("extracts a role=table grid with a columnheader row", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<div role="table" aria-label="Open Tickets">
				<div role="row"><span role="columnheader">ID</span><span role="columnheader">Status</span></div>
				<div role="row"><span role="cell">T-1</span><span role="cell">Open</span></div>
				<div role="row"><span role="cell">T-2</span><span role="cell">Closed</span></div>
			</div>`)
		require.NoError(t, err)

		data, err := disc.ExtractTable(0)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"ID", "Status"}, {"T-1", "Open"}, {"T-2", "Closed"}}, data.Data)
		assert.True(t, data.HasHeader)
	})

	t.Run("expands aria-colspan in role=grid markup", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<div role="grid">
				<div role="row"><span role="gridcell" aria-colspan="2">Wide</span></div>
				<div role="row"><span role="gridcell">a</span><span role="gridcell">b</span></div>
				<div role="row"><span role="gridcell">c</span><span role="gridcell">d</span></div>
			</div>`)
		require.NoError(t, err)

		data, err := disc.ExtractTable(0)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"Wide", "Wide"}, {"a", "b"}, {"c", "d"}}, data.Data)
		assert.False(t, data.HasHeader)
	})

	t.Run("excludes ARIA grids nested inside another table scope", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(`
			<div role="table" aria-label="Outer">
				<div role="row">
					<span role="cell">
						<div role="table" aria-label="Inner">
							<div role="row"><span role="cell">x</span><span role="cell">y</span></div>
							<div role="row"><span role="cell">z</span><span role="cell">w</span></div>
						</div>
					</span>
					<span role="cell">b</span>
				</div>
				<div role="row"><span role="cell">c</span><span role="cell">d</span></div>
			</div>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 1)
		assert.Equal(t, "Outer", result.Tables[0].Name)
	})
}
