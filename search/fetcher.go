package search

import (
	"context"

	"github.com/poiesic/profind/core"
)

// Fetcher retrieves scored, filtered candidates for a query.
// Implementations decide where matching happens: LocalFetcher runs the
// pipeline in-process, RemoteFetcher trusts the search service.
type Fetcher interface {
	FetchCandidates(ctx context.Context, query string, filters core.FilterState, maxHits int) ([]*core.SearchResult, error)
}
