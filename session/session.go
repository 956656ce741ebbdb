package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/search"
)

// defaultMaxHits bounds a single result page.
const defaultMaxHits = 10

// StatsProvider reports corpus-level aggregates.
type StatsProvider interface {
	// TotalProjects returns the number of searchable projects.
	TotalProjects(ctx context.Context) (int, error)
}

// Session owns the query lifecycle for one user-facing search surface.
type Session struct {
	searcher *search.Searcher
	stats    StatsProvider
	monitor  search.SearchMonitor
	logger   *slog.Logger
	maxHits  int

	mu            sync.Mutex
	status        Status
	results       []*core.SearchResult
	errorMessage  string
	filters       core.FilterState
	lastQuery     string
	recent        history
	token         uint64
	totalProjects int
}

// Option configures a Session.
type Option func(*Session) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMaxHits sets the result page size. Values below 1 keep the default.
func WithMaxHits(maxHits int) Option {
	return func(s *Session) error {
		if maxHits > 0 {
			s.maxHits = maxHits
		}
		return nil
	}
}

// WithStatsProvider sets the source of corpus totals.
// Without one, totals stay at zero.
func WithStatsProvider(stats StatsProvider) Option {
	return func(s *Session) error {
		s.stats = stats
		return nil
	}
}

// WithMonitor attaches a search monitor to every query the session runs.
func WithMonitor(monitor search.SearchMonitor) Option {
	return func(s *Session) error {
		s.monitor = monitor
		return nil
	}
}

// NewSession creates a session in the idle state.
func NewSession(searcher *search.Searcher, opts ...Option) (*Session, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	s := &Session{
		searcher: searcher,
		logger:   slog.Default(),
		maxHits:  defaultMaxHits,
		status:   StatusIdle,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs a query and advances the state machine.
//
// A blank query resets the session to idle without touching the history
// or the record store. Otherwise the query is recorded, the session
// enters the searching state, and the outcome lands in success, empty,
// or error. If a newer query starts before this one finishes, this
// one's outcome is discarded.
func (s *Session) Search(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	if trimmed == "" {
		// The reset is the newest intent, so any in-flight search must
		// not be allowed to overwrite it when it completes.
		s.token++
		s.status = StatusIdle
		s.results = nil
		s.errorMessage = ""
		s.lastQuery = ""
		s.mu.Unlock()
		return nil
	}

	s.token++
	token := s.token
	s.status = StatusSearching
	s.errorMessage = ""
	s.lastQuery = trimmed
	// The history keeps the query as submitted, not the trimmed form.
	s.recent.record(query)
	filters := s.filters
	maxHits := s.maxHits
	s.mu.Unlock()

	results, err := s.searcher.SearchWithMonitor(ctx, trimmed, filters, maxHits, s.monitor)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		// A newer query superseded this one; drop its outcome.
		s.logger.Debug("discarding superseded search", "query", trimmed)
		return nil
	}
	if err != nil {
		s.status = StatusError
		s.errorMessage = err.Error()
		s.results = nil
		return err
	}

	s.results = results
	if len(results) > 0 {
		s.status = StatusSuccess
	} else {
		s.status = StatusEmpty
	}
	return nil
}

// UpdateFilters replaces the filter state. If a query is active, it is
// re-run under the new filters; an idle session just stores them.
func (s *Session) UpdateFilters(ctx context.Context, filters core.FilterState) error {
	s.mu.Lock()
	s.filters = filters
	query := s.lastQuery
	idle := s.status == StatusIdle
	s.mu.Unlock()

	if idle || query == "" {
		return nil
	}
	return s.Search(ctx, query)
}

// SelectRecent re-runs a query from the history. The history itself is
// left in place; duplicates never reorder it.
func (s *Session) SelectRecent(ctx context.Context, query string) error {
	return s.Search(ctx, query)
}

// RefreshStats pulls corpus totals from the stats provider.
// Failures are logged and leave the total at zero rather than
// blocking the session.
func (s *Session) RefreshStats(ctx context.Context) {
	if s.stats == nil {
		return
	}

	total, err := s.stats.TotalProjects(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch corpus totals", "err", err)
		total = 0
	}

	s.mu.Lock()
	s.totalProjects = total
	s.mu.Unlock()
}

// Filters returns the current filter state.
func (s *Session) Filters() core.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Snapshot is a point-in-time copy of the session's visible state.
type Snapshot struct {
	Status        Status
	Query         string
	Results       []*core.SearchResult
	ErrorMessage  string
	RecentQueries []string
	ResultCount   int
	TotalProjects int
}

// Snapshot returns a copy of the session state safe to read without
// holding the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*core.SearchResult, len(s.results))
	copy(results, s.results)

	return Snapshot{
		Status:        s.status,
		Query:         s.lastQuery,
		Results:       results,
		ErrorMessage:  s.errorMessage,
		RecentQueries: s.recent.list(),
		ResultCount:   len(s.results),
		TotalProjects: s.totalProjects,
	}
}
