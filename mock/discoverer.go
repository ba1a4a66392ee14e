package mock

import pagegrab "github.com/mstolarz/pagegrab"

var _ pagegrab.TableDiscoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of pagegrab.TableDiscoverer.
type Discoverer struct {
	DiscoverFn func(html string) (pagegrab.Discovery, error)
}

func (d *Discoverer) Discover(html string) (pagegrab.Discovery, error) {
	return d.DiscoverFn(html)
}

var _ pagegrab.Discovery = (*Discovery)(nil)

// Discovery is a mock implementation of pagegrab.Discovery.
type Discovery struct {
	ResultFn           func() *pagegrab.DiscoveryResult
	TokenFn            func() string
	ExtractTableFn     func(index int) (*pagegrab.TableData, error)
	ExtractAllTablesFn func() []*pagegrab.TableData
}

func (d *Discovery) Result() *pagegrab.DiscoveryResult {
	return d.ResultFn()
}

func (d *Discovery) Token() string {
	return d.TokenFn()
}

func (d *Discovery) ExtractTable(index int) (*pagegrab.TableData, error) {
	return d.ExtractTableFn(index)
}

func (d *Discovery) ExtractAllTables() []*pagegrab.TableData {
	return d.ExtractAllTablesFn()
}
