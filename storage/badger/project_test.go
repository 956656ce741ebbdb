package badger

import (
	"context"
	"testing"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/corpus"
	"github.com/poiesic/profind/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) storage.ProjectRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestAddProjects_GeneratedIDs(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	added, err := repo.AddProjects(ctx,
		&core.Project{ProjectName: "First", Status: core.StatusPlanning},
		&core.Project{ProjectName: "Second", Status: core.StatusPlanning},
	)
	require.NoError(t, err)
	require.Len(t, added, 2)

	assert.NotZero(t, added[0].Id)
	assert.NotZero(t, added[1].Id)
	assert.NotEqual(t, added[0].Id, added[1].Id)
	assert.False(t, added[0].InsertedAt.IsZero())
	assert.False(t, added[0].UpdatedAt.IsZero())
}

func TestAddProjects_PreservesSeededIDs(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddProjects(ctx, corpus.SampleProjects()...)
	require.NoError(t, err)

	got, err := repo.GetProject(ctx, core.ID(2))
	require.NoError(t, err)
	assert.Equal(t, "Sydney Waterfront Stormwater Management System", got.ProjectName)
}

func TestAddProjects_DuplicateNumber(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddProjects(ctx, &core.Project{
		Id:            1,
		ProjectNumber: "TKN-2024-MP-150",
		ProjectName:   "Original",
		Status:        core.StatusActive,
	})
	require.NoError(t, err)

	_, err = repo.AddProjects(ctx, &core.Project{
		Id:            2,
		ProjectNumber: "TKN-2024-MP-150",
		ProjectName:   "Impostor",
		Status:        core.StatusActive,
	})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestGetProject_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetProject(context.Background(), core.ID(999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetProjectByNumber(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddProjects(ctx, corpus.SampleProjects()...)
	require.NoError(t, err)

	got, err := repo.GetProjectByNumber(ctx, "TKN-2023-BR-045")
	require.NoError(t, err)
	assert.Equal(t, "Brisbane Gateway Bridge Expansion", got.ProjectName)

	_, err = repo.GetProjectByNumber(ctx, "TKN-0000-XX-000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListProjects_OrderedByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// Insert out of order, including an ID whose decimal form sorts
	// before shorter IDs lexicographically.
	_, err := repo.AddProjects(ctx,
		&core.Project{Id: 10, ProjectName: "Ten", Status: core.StatusActive},
		&core.Project{Id: 2, ProjectName: "Two", Status: core.StatusActive},
		&core.Project{Id: 1, ProjectName: "One", Status: core.StatusActive},
	)
	require.NoError(t, err)

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, core.ID(1), projects[0].Id)
	assert.Equal(t, core.ID(2), projects[1].Id)
	assert.Equal(t, core.ID(10), projects[2].Id)
}

func TestCountProjects(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	count, err := repo.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.AddProjects(ctx, corpus.SampleProjects()...)
	require.NoError(t, err)

	count, err = repo.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestUpdateProjects(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	added, err := repo.AddProjects(ctx, &core.Project{
		ProjectNumber: "TKN-2024-WT-078",
		ProjectName:   "Before",
		Status:        core.StatusPlanning,
	})
	require.NoError(t, err)

	updated := added[0]
	updated.ProjectName = "After"
	updated.ProjectNumber = "TKN-2025-WT-001"
	_, err = repo.UpdateProjects(ctx, updated)
	require.NoError(t, err)

	got, err := repo.GetProjectByNumber(ctx, "TKN-2025-WT-001")
	require.NoError(t, err)
	assert.Equal(t, "After", got.ProjectName)

	// Old number is no longer indexed.
	_, err = repo.GetProjectByNumber(ctx, "TKN-2024-WT-078")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.UpdateProjects(ctx, &core.Project{Id: 999, ProjectName: "Ghost", Status: core.StatusActive})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteProjects(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddProjects(ctx, corpus.SampleProjects()...)
	require.NoError(t, err)

	err = repo.DeleteProjects(ctx, core.ID(1), core.ID(2))
	require.NoError(t, err)

	_, err = repo.GetProject(ctx, core.ID(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetProjectByNumber(ctx, "TKN-2024-MP-150")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	count, err := repo.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	err = repo.DeleteProjects(ctx, core.ID(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAppendLesson(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AddProjects(ctx, corpus.SampleProjects()...)
	require.NoError(t, err)

	lesson, err := core.NewLesson("Weather buffers saved the pour schedule", "Construction", "Emma Thompson")
	require.NoError(t, err)

	updated, err := repo.AppendLesson(ctx, core.ID(3), *lesson)
	require.NoError(t, err)
	require.Len(t, updated.Lessons, 3)
	assert.Equal(t, "Weather buffers saved the pour schedule", updated.Lessons[2].Text)

	got, err := repo.GetProject(ctx, core.ID(3))
	require.NoError(t, err)
	assert.Len(t, got.Lessons, 3)

	_, err = repo.AppendLesson(ctx, core.ID(999), *lesson)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
