package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/storage"
)

// ProjectRepository implements storage.ProjectRepository for BadgerDB.
type ProjectRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(backend *Backend) (*ProjectRepository, error) {
	idSeq, err := backend.GetSequence(projectIDSeq)
	if err != nil {
		return nil, err
	}

	return &ProjectRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ProjectRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ProjectRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddProjects adds one or more projects to storage.
func (r *ProjectRepository) AddProjects(ctx context.Context, projects ...*core.Project) ([]*core.Project, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, project := range projects {
			// Seeded corpora carry fixed IDs; only generate for new records.
			if project.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				project.Id = core.ID(nextID)
			}

			project.InsertedAt = time.Now().UTC()
			project.UpdatedAt = project.InsertedAt

			if project.ProjectNumber != "" {
				existing, err := readProjectNumberIndex(tx, project.ProjectNumber)
				if err != nil {
					return err
				}
				if existing != 0 && existing != project.Id {
					return storage.ErrDuplicateKey
				}
				numberKey := makeProjectNumberKey(project.ProjectNumber)
				if err := tx.Set(numberKey, storage.MarshalID(project.Id)); err != nil {
					return err
				}
			}

			key := makeProjectKey(project.Id)
			value := storage.MarshalProject(project)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return projects, err
}

// UpdateProjects updates existing projects.
func (r *ProjectRepository) UpdateProjects(ctx context.Context, projects ...*core.Project) ([]*core.Project, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, project := range projects {
			key := makeProjectKey(project.Id)

			// Read old project to detect changes
			old, err := readProject(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			project.UpdatedAt = time.Now().UTC()

			value := storage.MarshalProject(project)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update number index if the project number changed
			if old.ProjectNumber != project.ProjectNumber {
				if old.ProjectNumber != "" {
					if err := tx.Delete(makeProjectNumberKey(old.ProjectNumber)); err != nil {
						return err
					}
				}
				if project.ProjectNumber != "" {
					numberKey := makeProjectNumberKey(project.ProjectNumber)
					if err := tx.Set(numberKey, storage.MarshalID(project.Id)); err != nil {
						return err
					}
				}
			}
		}
		return tx.Commit()
	}, true)

	return projects, err
}

// DeleteProjects removes projects by their IDs.
func (r *ProjectRepository) DeleteProjects(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProjectKey(id)

			// Read project to get metadata for index cleanup
			project, err := readProject(tx, key)
			if err != nil {
				return err
			}
			if project == nil {
				return storage.ErrNotFound
			}

			if project.ProjectNumber != "" {
				if err := tx.Delete(makeProjectNumberKey(project.ProjectNumber)); err != nil {
					return err
				}
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProject retrieves a single project by ID.
func (r *ProjectRepository) GetProject(ctx context.Context, id core.ID) (*core.Project, error) {
	var result *core.Project
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProjectKey(id)
		var err error
		result, err = readProject(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProjectByNumber retrieves a project by its project number.
func (r *ProjectRepository) GetProjectByNumber(ctx context.Context, number string) (*core.Project, error) {
	var result *core.Project
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := readProjectNumberIndex(tx, number)
		if err != nil {
			return err
		}
		if id == 0 {
			return storage.ErrNotFound
		}

		result, err = readProject(tx, makeProjectKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListProjects retrieves all projects, ordered by ID ascending.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]*core.Project, error) {
	var results []*core.Project
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// The ":" keeps the sequence key out of the scan.
		prefix := []byte(projectRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			var project *core.Project
			err := iter.Item().Value(func(val []byte) error {
				var err error
				project, err = storage.UnmarshalProject(val)
				return err
			})
			if err != nil {
				return err
			}
			if project != nil {
				results = append(results, project)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Keys sort lexicographically by decimal ID, so re-sort numerically.
	slices.SortFunc(results, func(a, b *core.Project) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	return results, nil
}

// CountProjects returns the total number of stored projects.
func (r *ProjectRepository) CountProjects(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(projectRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AppendLesson appends a lesson to a project's lesson log.
func (r *ProjectRepository) AppendLesson(ctx context.Context, id core.ID, lesson core.Lesson) (*core.Project, error) {
	var result *core.Project
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProjectKey(id)
		project, err := readProject(tx, key)
		if err != nil {
			return err
		}
		if project == nil {
			return storage.ErrNotFound
		}

		project.Lessons = append(project.Lessons, lesson)
		project.UpdatedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalProject(project)); err != nil {
			return err
		}
		result = project
		return tx.Commit()
	}, true)
	return result, err
}

// Helper methods

// readProject reads a project from the transaction.
func readProject(tx *badger.Txn, key []byte) (*core.Project, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var project *core.Project
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		project, unmarshalErr = storage.UnmarshalProject(val)
		return unmarshalErr
	})
	return project, err
}

// readProjectNumberIndex resolves a project number to an ID.
// Returns 0 if the number is unindexed.
func readProjectNumberIndex(tx *badger.Txn, number string) (core.ID, error) {
	item, err := tx.Get(makeProjectNumberKey(number))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		id, unmarshalErr = storage.UnmarshalID(val)
		return unmarshalErr
	})
	return id, err
}
