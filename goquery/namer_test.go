package goquery_test

import (
	"strings"
	"testing"

	"github.com/mstolarz/pagegrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDiscoverer builds a discoverer with the default content extractor.
func newDiscoverer() *goquery.Discoverer {
	return goquery.NewDiscoverer(goquery.NewExtractor())
}

// firstTableName discovers the HTML and returns the first table's name.
func firstTableName(t *testing.T, html string) string {
	t.Helper()
	disc, err := newDiscoverer().Discover(html)
	require.NoError(t, err)
	result := disc.Result()
	require.NotEmpty(t, result.Tables)
	return result.Tables[0].Name
}

const twoByTwo = `<tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr>`

func TestTableNaming(t *testing.T) {
	t.Parallel()

	t.Run("caption wins over every other signal", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<h2>Ignored Heading</h2>
			<table id="ignored-id" aria-label="Ignored Label">
				<caption>Quarterly Revenue</caption>`+twoByTwo+`
			</table>`)

		assert.Equal(t, "Quarterly Revenue", name)
	})

	t.Run("aria-label beats aria-describedby", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<p id="desc">Description text here</p>
			<table aria-label="Labelled Table" aria-describedby="desc">`+twoByTwo+`</table>`)

		assert.Equal(t, "Labelled Table", name)
	})

	t.Run("aria-describedby resolves the referenced element text", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<p id="desc">Population by region</p>
			<table aria-describedby="desc">`+twoByTwo+`</table>`)

		assert.Equal(t, "Population by region", name)
	})

	t.Run("aria-describedby ID list resolves the first reference", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<p id="capA">Primary description</p>
			<p id="capB">Secondary description</p>
			<table aria-describedby="capA capB">`+twoByTwo+`</table>`)

		assert.Equal(t, "Primary description", name)
	})

	t.Run("nearest preceding heading within 3 siblings", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<h3>Sales Figures</h3>
			<p>intro paragraph</p>
			<table>`+twoByTwo+`</table>`)

		assert.Equal(t, "Sales Figures", name)
	})

	t.Run("heading more than 3 siblings back is ignored", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<h3>Too Far Away</h3>
			<p>one</p><p>two</p><p>three</p>
			<table>`+twoByTwo+`</table>`)

		assert.Equal(t, "Table 1", name)
	})

	t.Run("id separators become spaces", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<table id="monthly-sales_data">`+twoByTwo+`</table>`)

		assert.Equal(t, "monthly sales data", name)
	})

	t.Run("fallback is 1-based", func(t *testing.T) {
		t.Parallel()

		disc, err := newDiscoverer().Discover(
			`<table>` + twoByTwo + `</table><table>` + twoByTwo + `</table>`)
		require.NoError(t, err)

		result := disc.Result()
		require.Len(t, result.Tables, 2)
		assert.Equal(t, "Table 1", result.Tables[0].Name)
		assert.Equal(t, "Table 2", result.Tables[1].Name)
	})

	t.Run("long names are capped at 100 chars with ellipsis", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 150)
		name := firstTableName(t, `<table aria-label="`+long+`">`+twoByTwo+`</table>`)

		assert.Equal(t, strings.Repeat("x", 100)+"...", name)
		assert.Len(t, name, 103)
	})

	t.Run("caption whitespace is collapsed", func(t *testing.T) {
		t.Parallel()

		name := firstTableName(t, `<table><caption>  Spread
			Out  </caption>`+twoByTwo+`</table>`)

		assert.Equal(t, "Spread Out", name)
	})
}
