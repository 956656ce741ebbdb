package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/storage"
)

// LocalFetcher matches and filters projects from a local repository.
type LocalFetcher struct {
	repository storage.ProjectRepository
	logger     *slog.Logger
}

var _ Fetcher = (*LocalFetcher)(nil)

// NewLocalFetcher creates a fetcher over a project repository.
func NewLocalFetcher(repository storage.ProjectRepository) (*LocalFetcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	return &LocalFetcher{
		repository: repository,
		logger:     slog.Default(),
	}, nil
}

// FetchCandidates runs the full match/filter/rank pipeline over the stored corpus.
func (f *LocalFetcher) FetchCandidates(ctx context.Context, query string, filters core.FilterState, maxHits int) ([]*core.SearchResult, error) {
	projects, err := f.repository.ListProjects(ctx)
	if err != nil {
		f.logger.Error("error listing projects for search", "err", err)
		return nil, err
	}

	matched := Match(projects, query)
	filtered := ApplyFilters(matched, filters)

	results := make([]*core.SearchResult, 0, len(filtered))
	for _, p := range filtered {
		results = append(results, &core.SearchResult{
			Project: p,
			Score:   p.SimilarityScore,
		})
	}

	Rank(results)
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}
	return results, nil
}
