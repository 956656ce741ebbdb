package feedback

import "errors"

var (
	// ErrSinkRequired is returned when a sink is not provided.
	ErrSinkRequired = errors.New("sink required")

	// ErrRepositoryRequired is returned when a project repository is not provided.
	ErrRepositoryRequired = errors.New("project repository required")
)
