package feedback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/corpus"
	"github.com/poiesic/profind/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures delivered events and lessons.
type recordingSink struct {
	mu      sync.Mutex
	events  []core.FeedbackEvent
	lessons []*core.Lesson
	err     error
}

func (s *recordingSink) SubmitFeedback(ctx context.Context, event core.FeedbackEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) SubmitLesson(ctx context.Context, projectID core.ID, lesson *core.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.lessons = append(s.lessons, lesson)
	return nil
}

func (s *recordingSink) eventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *recordingSink) lessonCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lessons)
}

func newTestChannel(t *testing.T, sink Sink, opts ...Option) *Channel {
	t.Helper()
	ch, err := NewChannel(sink, opts...)
	require.NoError(t, err)
	t.Cleanup(ch.Release)
	return ch
}

func TestNewChannel_RequiresSink(t *testing.T) {
	_, err := NewChannel(nil)
	assert.Equal(t, ErrSinkRequired, err)
}

func TestChannel_ToggleSemantics(t *testing.T) {
	ch := newTestChannel(t, &recordingSink{})
	id := core.ID(2)

	got := ch.Toggle(id, true)
	require.NotNil(t, got)
	assert.True(t, *got)

	// Same polarity again clears the vote.
	assert.Nil(t, ch.Toggle(id, true))
	assert.Nil(t, ch.Vote(id))

	// Opposite polarity replaces rather than clears.
	got = ch.Toggle(id, true)
	require.NotNil(t, got)
	got = ch.Toggle(id, false)
	require.NotNil(t, got)
	assert.False(t, *got)
}

func TestChannel_ToggleDeliversEvents(t *testing.T) {
	sink := &recordingSink{}
	ch := newTestChannel(t, sink)

	ch.Toggle(core.ID(3), true)

	require.Eventually(t, func() bool {
		return sink.eventCount() == 1
	}, time.Second, time.Millisecond)

	sink.mu.Lock()
	event := sink.events[0]
	sink.mu.Unlock()

	assert.NotEmpty(t, event.Id)
	assert.Equal(t, core.ID(3), event.ProjectId)
	require.NotNil(t, event.Positive)
	assert.True(t, *event.Positive)
	assert.False(t, event.Timestamp.IsZero())
}

func TestChannel_DeliveryFailureDoesNotSurface(t *testing.T) {
	sink := &recordingSink{err: errors.New("feedback endpoint down")}
	ch := newTestChannel(t, sink)

	got := ch.Toggle(core.ID(1), false)
	require.NotNil(t, got)
	assert.False(t, *got)

	// The local vote stands even though delivery keeps failing.
	require.NotNil(t, ch.Vote(core.ID(1)))
}

func TestChannel_SubmitLesson(t *testing.T) {
	sink := &recordingSink{}
	ch := newTestChannel(t, sink)

	lesson, err := ch.SubmitLesson(core.ID(2), "Coordinate early with the asset owner", "", "")
	require.NoError(t, err)
	assert.Equal(t, "General", lesson.Phase)
	assert.Equal(t, "Anonymous", lesson.Author)
	assert.Equal(t, "Lesson added to project", ch.Confirmation())

	require.Eventually(t, func() bool {
		return sink.lessonCount() == 1
	}, time.Second, time.Millisecond)
}

func TestChannel_SubmitLesson_RejectsEmptyText(t *testing.T) {
	sink := &recordingSink{}
	ch := newTestChannel(t, sink)

	_, err := ch.SubmitLesson(core.ID(2), "   ", "Design", "James Wilson")
	require.ErrorIs(t, err, core.ErrEmptyLessonText)

	assert.Empty(t, ch.Confirmation())
	// Nothing was shipped.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, sink.lessonCount())
}

func TestChannel_ConfirmationClearsItself(t *testing.T) {
	ch := newTestChannel(t, &recordingSink{}, WithConfirmationTTL(20*time.Millisecond))

	_, err := ch.SubmitLesson(core.ID(2), "Stage the cutover overnight", "Construction", "Lisa Anderson")
	require.NoError(t, err)
	require.NotEmpty(t, ch.Confirmation())

	require.Eventually(t, func() bool {
		return ch.Confirmation() == ""
	}, time.Second, time.Millisecond)
}

// slowSink delays every delivery to widen the shutdown window.
type slowSink struct {
	recordingSink
	delay time.Duration
}

func (s *slowSink) SubmitLesson(ctx context.Context, projectID core.ID, lesson *core.Lesson) error {
	time.Sleep(s.delay)
	return s.recordingSink.SubmitLesson(ctx, projectID, lesson)
}

func TestChannel_ReleaseDrainsPendingDeliveries(t *testing.T) {
	sink := &slowSink{delay: 50 * time.Millisecond}
	ch, err := NewChannel(sink)
	require.NoError(t, err)

	_, err = ch.SubmitLesson(core.ID(4), "Lock the haul route approvals first", "Planning", "Sarah Johnson")
	require.NoError(t, err)

	// An accepted lesson survives an immediate shutdown.
	ch.Release()
	assert.Equal(t, 1, sink.lessonCount())
}

func TestLocalSink_AppendsLesson(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	ctx := context.Background()
	_, err = repo.AddProjects(ctx, corpus.SampleProjects()...)
	require.NoError(t, err)

	sink, err := NewLocalSink(repo)
	require.NoError(t, err)

	lesson, err := core.NewLesson("Sensor placement drives maintenance cost", "Implementation", "David Chen")
	require.NoError(t, err)
	require.NoError(t, sink.SubmitLesson(ctx, core.ID(6), lesson))

	got, err := repo.GetProject(ctx, core.ID(6))
	require.NoError(t, err)
	require.Len(t, got.Lessons, 2)
	assert.Equal(t, "Sensor placement drives maintenance cost", got.Lessons[1].Text)
}

func TestNewLocalSink_RequiresRepository(t *testing.T) {
	_, err := NewLocalSink(nil)
	assert.Equal(t, ErrRepositoryRequired, err)
}
