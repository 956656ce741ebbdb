package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/profind/core"
)

// Service performs searches against a remote index.
type Service interface {
	Search(ctx context.Context, query string, filters core.FilterState, maxHits int) ([]*core.SearchResult, error)
}

// RemoteFetcher delegates matching, filtering, and ranking to a search
// service. Filters are forwarded verbatim; results come back already
// scored, so no client-side re-check happens here.
type RemoteFetcher struct {
	service Service
	logger  *slog.Logger
}

var _ Fetcher = (*RemoteFetcher)(nil)

// NewRemoteFetcher creates a fetcher over a remote search service.
func NewRemoteFetcher(service Service) (*RemoteFetcher, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}
	return &RemoteFetcher{
		service: service,
		logger:  slog.Default(),
	}, nil
}

// FetchCandidates forwards the query to the remote service.
func (f *RemoteFetcher) FetchCandidates(ctx context.Context, query string, filters core.FilterState, maxHits int) ([]*core.SearchResult, error) {
	results, err := f.service.Search(ctx, query, filters, maxHits)
	if err != nil {
		f.logger.Error("remote search failed", "err", err)
		return nil, err
	}
	return results, nil
}
