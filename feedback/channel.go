package feedback

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/profind/core"
)

// defaultConfirmationTTL is how long a lesson confirmation stays visible.
const defaultConfirmationTTL = 3 * time.Second

// deliveryTimeout bounds a single fire-and-forget delivery attempt.
const deliveryTimeout = 10 * time.Second

// Channel accepts votes and lessons and delivers them asynchronously.
// Submission never blocks on the sink and never returns delivery errors.
type Channel struct {
	sink            Sink
	pool            *ants.Pool
	logger          *slog.Logger
	confirmationTTL time.Duration

	mu           sync.Mutex
	votes        map[core.ID]*bool
	confirmation string
	confirmTimer *time.Timer
}

// Option configures a Channel.
type Option func(*Channel) error

// WithPoolSize sets the worker pool size for delivery.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *Channel) error {
		if size < 1 {
			size = 1
		}

		if c.pool != nil {
			c.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		c.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Channel) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithConfirmationTTL sets how long lesson confirmations stay visible.
func WithConfirmationTTL(ttl time.Duration) Option {
	return func(c *Channel) error {
		if ttl > 0 {
			c.confirmationTTL = ttl
		}
		return nil
	}
}

// NewChannel creates a feedback channel over a sink.
func NewChannel(sink Sink, opts ...Option) (*Channel, error) {
	if sink == nil {
		return nil, ErrSinkRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	c := &Channel{
		sink:            sink,
		pool:            pool,
		logger:          slog.Default(),
		confirmationTTL: defaultConfirmationTTL,
		votes:           make(map[core.ID]*bool),
	}

	for _, opt := range opts {
		if optErr := opt(c); optErr != nil {
			c.Release()
			return nil, optErr
		}
	}

	return c, nil
}

// Toggle flips a project's vote and returns the resulting polarity.
//
// Voting the same polarity twice clears the vote (nil). Voting the
// opposite polarity replaces it. The event ships asynchronously; the
// returned state is authoritative regardless of delivery outcome.
func (c *Channel) Toggle(projectID core.ID, positive bool) *bool {
	c.mu.Lock()
	current := c.votes[projectID]

	var next *bool
	if current == nil || *current != positive {
		v := positive
		next = &v
	}
	c.votes[projectID] = next
	c.mu.Unlock()

	event := core.FeedbackEvent{
		Id:        uuid.NewString(),
		ProjectId: projectID,
		Positive:  next,
		Timestamp: time.Now().UTC(),
	}

	if err := c.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()
		if err := c.sink.SubmitFeedback(ctx, event); err != nil {
			c.logger.Error("error delivering feedback", "event", event.Id, "err", err)
		}
	}); err != nil {
		c.logger.Error("error submitting feedback for delivery", "event", event.Id, "err", err)
	}

	return next
}

// Vote returns the current polarity for a project, or nil if unvoted.
func (c *Channel) Vote(projectID core.ID) *bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.votes[projectID]
}

// SubmitLesson validates and ships a lesson for a project.
//
// Validation failures surface immediately; delivery failures do not.
// On acceptance a confirmation message appears and clears itself after
// the confirmation TTL.
func (c *Channel) SubmitLesson(projectID core.ID, text, phase, author string) (*core.Lesson, error) {
	lesson, err := core.NewLesson(text, phase, author)
	if err != nil {
		return nil, err
	}

	if err := c.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()
		if err := c.sink.SubmitLesson(ctx, projectID, lesson); err != nil {
			c.logger.Error("error delivering lesson", "project", projectID, "err", err)
		}
	}); err != nil {
		c.logger.Error("error submitting lesson for delivery", "project", projectID, "err", err)
	}

	c.setConfirmation("Lesson added to project")
	return lesson, nil
}

// Confirmation returns the current confirmation message, or "" once it
// has cleared.
func (c *Channel) Confirmation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmation
}

func (c *Channel) setConfirmation(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.confirmation = msg
	if c.confirmTimer != nil {
		c.confirmTimer.Stop()
	}
	c.confirmTimer = time.AfterFunc(c.confirmationTTL, func() {
		c.mu.Lock()
		c.confirmation = ""
		c.mu.Unlock()
	})
}

// Release drains in-flight deliveries and releases the pool.
// The channel should not be used after calling Release.
func (c *Channel) Release() {
	c.mu.Lock()
	if c.confirmTimer != nil {
		c.confirmTimer.Stop()
	}
	c.mu.Unlock()

	if c.pool != nil {
		// Accepted submissions must not be dropped by an immediate
		// close, so wait for the workers to finish first.
		if err := c.pool.ReleaseTimeout(deliveryTimeout); err != nil && !errors.Is(err, ants.ErrPoolClosed) {
			c.logger.Error("error draining delivery pool", "err", err)
		}
	}
}
