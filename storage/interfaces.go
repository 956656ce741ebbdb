package storage

import (
	"context"

	"github.com/poiesic/profind/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProjectRepository provides operations for managing project records.
type ProjectRepository interface {
	Repository

	// AddProjects adds one or more projects to storage.
	// Projects with ID=0 receive new IDs from a sequence; nonzero IDs are
	// preserved so seeded reference corpora keep stable identifiers.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns ErrDuplicateKey if a project number already maps to a
	// different project.
	AddProjects(ctx context.Context, projects ...*core.Project) ([]*core.Project, error)

	// UpdateProjects updates existing projects.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any project doesn't exist.
	UpdateProjects(ctx context.Context, projects ...*core.Project) ([]*core.Project, error)

	// DeleteProjects removes projects by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any project doesn't exist.
	DeleteProjects(ctx context.Context, ids ...core.ID) error

	// GetProject retrieves a single project by ID.
	// Returns ErrNotFound if the project doesn't exist.
	GetProject(ctx context.Context, id core.ID) (*core.Project, error)

	// GetProjectByNumber retrieves a project by its project number.
	// Returns ErrNotFound if no project carries the number.
	GetProjectByNumber(ctx context.Context, number string) (*core.Project, error)

	// ListProjects retrieves all projects, ordered by ID ascending.
	ListProjects(ctx context.Context) ([]*core.Project, error)

	// CountProjects returns the total number of stored projects.
	CountProjects(ctx context.Context) (int, error)

	// AppendLesson appends a lesson to a project's lesson log and returns
	// the updated project. Returns ErrNotFound if the project doesn't exist.
	AppendLesson(ctx context.Context, id core.ID, lesson core.Lesson) (*core.Project, error)
}
