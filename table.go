package pagegrab

// TableInfo describes one qualifying data table found during a discovery
// pass. It is a lightweight preview: full-fidelity extraction happens later,
// on demand, keyed by Index.
type TableInfo struct {
	// Index is the stable, dense, 0-based position of the table among all
	// qualifying tables in document order. It is the key used to request
	// extraction of the same table from the same Discovery.
	Index int `json:"index"`

	// Name is a human-readable label derived from DOM signals
	// (caption, aria attributes, nearby headings, id).
	Name string `json:"name"`

	RowCount    int `json:"rowCount"`
	ColumnCount int `json:"columnCount"`

	// PreviewRows holds at most the first 3 rows, with cell text
	// truncated to 50 characters.
	PreviewRows [][]string `json:"previewRows"`
}

// TableData is the full-fidelity grid of one extracted table. Data is
// rectangular: every row has exactly the same number of cells, padded with
// empty strings where no source cell covers a position.
type TableData struct {
	Name      string     `json:"name"`
	Data      [][]string `json:"data"`
	HasHeader bool       `json:"hasHeader"`
}

// DiscoveryResult is the immutable snapshot produced by one discovery pass
// over a document. Tables are ordered by document order.
type DiscoveryResult struct {
	Tables         []TableInfo `json:"tables"`
	HasMainContent bool        `json:"hasMainContent"`
	ContentPreview string      `json:"contentPreview"`
	PageTitle      string      `json:"pageTitle"`
}

// Discovery is the handle returned by a discovery pass. It carries the
// DiscoveryResult snapshot together with opaque references to the
// qualifying table elements, so that later extraction operates on exactly
// the tables the discovery pass reported, under the same indices.
//
// A Discovery is valid only for the document it was produced from; callers
// thread it explicitly from discovery to extraction instead of relying on
// shared mutable state.
type Discovery interface {
	// Result returns the discovery snapshot.
	Result() *DiscoveryResult

	// Token uniquely identifies this discovery pass. Callers that cache
	// discoveries can use it to detect stale extraction requests.
	Token() string

	// ExtractTable builds the full grid for the table at the given
	// discovery index. Returns ENOTFOUND if the index does not exist and
	// EINVALID if the table fails to parse.
	ExtractTable(index int) (*TableData, error)

	// ExtractAllTables extracts every discovered table. A table that
	// fails to parse is skipped; extraction of the remaining tables
	// continues.
	ExtractAllTables() []*TableData
}

// TableDiscoverer scans a document for data tables.
type TableDiscoverer interface {
	// Discover parses the document and returns a Discovery covering every
	// qualifying table plus the main-content probe. Finding no tables is
	// a normal outcome, not an error.
	Discover(html string) (Discovery, error)
}
