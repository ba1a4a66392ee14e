package slog

import (
	"log/slog"
	"time"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure LoggingDiscoverer implements pagegrab.TableDiscoverer.
var _ pagegrab.TableDiscoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a TableDiscoverer with timing logs for the
// discovery pass and per-table logging of extraction failures, which the
// core skips silently to keep partial-failure isolation.
type LoggingDiscoverer struct {
	next   pagegrab.TableDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next pagegrab.TableDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover runs discovery on the wrapped discoverer and logs the snapshot
// summary.
func (d *LoggingDiscoverer) Discover(html string) (pagegrab.Discovery, error) {
	begin := time.Now()
	disc, err := d.next.Discover(html)
	if err != nil {
		d.logger.Error("discovery failed", "error", err)
		return nil, err
	}
	result := disc.Result()
	d.logger.Info("discovery",
		"tables", len(result.Tables),
		"hasMainContent", result.HasMainContent,
		"duration", time.Since(begin),
	)
	return &loggingDiscovery{Discovery: disc, logger: d.logger}, nil
}

// loggingDiscovery logs extraction outcomes per table.
type loggingDiscovery struct {
	pagegrab.Discovery
	logger *slog.Logger
}

func (d *loggingDiscovery) ExtractTable(index int) (*pagegrab.TableData, error) {
	data, err := d.Discovery.ExtractTable(index)
	if err != nil {
		d.logger.Warn("table extraction failed", "index", index, "error", err)
		return nil, err
	}
	return data, nil
}

// ExtractAllTables extracts every table, logging and skipping the ones
// that fail.
func (d *loggingDiscovery) ExtractAllTables() []*pagegrab.TableData {
	result := d.Discovery.Result()
	out := make([]*pagegrab.TableData, 0, len(result.Tables))
	for _, info := range result.Tables {
		data, err := d.ExtractTable(info.Index)
		if err != nil {
			continue
		}
		out = append(out, data)
	}
	return out
}
