package corpus

import (
	"context"

	"github.com/poiesic/profind/storage"
)

// Seed loads the reference corpus into an empty repository.
// A repository that already holds projects is left untouched.
// Returns the number of projects added.
func Seed(ctx context.Context, repository storage.ProjectRepository) (int, error) {
	count, err := repository.CountProjects(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	projects := SampleProjects()
	if _, err := repository.AddProjects(ctx, projects...); err != nil {
		return 0, err
	}
	return len(projects), nil
}
