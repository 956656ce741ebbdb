package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/profind/core"
)

// Searcher runs queries through a fetcher and reports progress to monitors.
type Searcher struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(fetcher Fetcher, opts ...Option) (*Searcher, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}

	s := &Searcher{
		fetcher: fetcher,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search finds projects matching the query under the given filters.
// Returns up to maxHits results, ranked by score descending.
func (s *Searcher) Search(ctx context.Context, query string, filters core.FilterState, maxHits int) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, filters, maxHits, nil)
}

// SearchWithMonitor finds projects matching the query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, filters core.FilterState, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	results, err := s.fetcher.FetchCandidates(ctx, query, filters, maxHits)
	if err != nil {
		s.logger.Error("error fetching search candidates", "query", query, "err", err)
		monitor.Failed(err)
		return nil, err
	}
	monitor.AfterCandidateRetrieval(len(results))

	if results == nil {
		results = []*core.SearchResult{}
	}
	monitor.Finish(results)

	return results, nil
}
