package feedback

import (
	"context"
	"log/slog"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/storage"
)

// Sink receives feedback events and lessons for durable handling.
// Implementations decide what delivery means: the local sink writes to
// the project repository, the remote sink posts to the search service.
type Sink interface {
	// SubmitFeedback delivers a single feedback event.
	SubmitFeedback(ctx context.Context, event core.FeedbackEvent) error

	// SubmitLesson appends a lesson to the identified project.
	SubmitLesson(ctx context.Context, projectID core.ID, lesson *core.Lesson) error
}

// LocalSink handles feedback against an in-process repository.
// Votes are session-scoped signals, so they are acknowledged and logged
// rather than persisted; lessons go straight onto the project record.
type LocalSink struct {
	repository storage.ProjectRepository
	logger     *slog.Logger
}

var _ Sink = (*LocalSink)(nil)

// NewLocalSink creates a sink over a project repository.
func NewLocalSink(repository storage.ProjectRepository) (*LocalSink, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	return &LocalSink{
		repository: repository,
		logger:     slog.Default(),
	}, nil
}

// SubmitFeedback acknowledges the event. Local mode keeps vote state in
// the channel itself; there is no remote index to train.
func (s *LocalSink) SubmitFeedback(ctx context.Context, event core.FeedbackEvent) error {
	s.logger.Debug("feedback recorded",
		"event", event.Id,
		"project", event.ProjectId,
		"positive", event.Positive,
	)
	return nil
}

// SubmitLesson appends the lesson to the stored project.
func (s *LocalSink) SubmitLesson(ctx context.Context, projectID core.ID, lesson *core.Lesson) error {
	_, err := s.repository.AppendLesson(ctx, projectID, *lesson)
	return err
}
