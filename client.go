// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package profind

import (
	"context"
	"log/slog"

	"github.com/poiesic/profind/api"
	"github.com/poiesic/profind/config"
	"github.com/poiesic/profind/corpus"
	"github.com/poiesic/profind/feedback"
	"github.com/poiesic/profind/search"
	"github.com/poiesic/profind/session"
	"github.com/poiesic/profind/storage"
	"github.com/poiesic/profind/storage/badger"
)

// Engine wires the record store, searcher, session, and feedback
// channel into one search orchestration surface.
type Engine struct {
	cfg     *config.Config
	backend *badger.Backend
	repo    storage.ProjectRepository
	client  *api.Client
	session *session.Session
	channel *feedback.Channel
	experts *corpus.Directory
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	monitor search.SearchMonitor
	logger  *slog.Logger
}

// WithSearchMonitor attaches a monitor to every search the engine runs.
func WithSearchMonitor(monitor search.SearchMonitor) EngineOption {
	return func(o *engineOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine builds an engine from configuration.
//
// Local mode opens a BadgerDB corpus (in-memory when no db_path is
// configured) and seeds an empty store with the reference corpus.
// Remote mode wires every concern to the search service instead.
func NewEngine(ctx context.Context, cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	e := &Engine{
		cfg:     cfg,
		experts: corpus.NewDirectory(nil),
		logger:  options.logger,
	}

	var (
		fetcher search.Fetcher
		stats   session.StatsProvider
		sink    feedback.Sink
	)

	switch cfg.Mode {
	case config.ModeRemote:
		client, err := api.NewClient(cfg.APIBaseURL,
			api.WithTimeout(cfg.HTTPTimeout),
			api.WithLogger(e.logger),
		)
		if err != nil {
			return nil, err
		}
		e.client = client

		fetcher, err = search.NewRemoteFetcher(client)
		if err != nil {
			return nil, err
		}
		stats = client
		sink = client

	default:
		backend, err := badger.OpenBackend(cfg.DBPath, cfg.DBPath == "")
		if err != nil {
			return nil, err
		}
		repo, err := badger.NewProjectRepository(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		e.backend = backend
		e.repo = repo

		seeded, err := corpus.Seed(ctx, repo)
		if err != nil {
			e.closeStorage()
			return nil, err
		}
		if seeded > 0 {
			e.logger.Info("seeded reference corpus", "projects", seeded)
		}

		fetcher, err = search.NewLocalFetcher(repo)
		if err != nil {
			e.closeStorage()
			return nil, err
		}
		stats = &repositoryStats{repo: repo}
		sink, err = feedback.NewLocalSink(repo)
		if err != nil {
			e.closeStorage()
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(fetcher, search.WithLogger(e.logger))
	if err != nil {
		e.closeStorage()
		return nil, err
	}

	sess, err := session.NewSession(searcher,
		session.WithLogger(e.logger),
		session.WithMaxHits(cfg.TopK),
		session.WithStatsProvider(stats),
		session.WithMonitor(options.monitor),
	)
	if err != nil {
		e.closeStorage()
		return nil, err
	}
	sess.RefreshStats(ctx)
	e.session = sess

	channel, err := feedback.NewChannel(sink, feedback.WithLogger(e.logger))
	if err != nil {
		e.closeStorage()
		return nil, err
	}
	e.channel = channel

	return e, nil
}

// Session returns the engine's query session.
func (e *Engine) Session() *session.Session {
	return e.session
}

// Feedback returns the engine's feedback channel.
func (e *Engine) Feedback() *feedback.Channel {
	return e.channel
}

// Experts returns the read-only expert directory.
func (e *Engine) Experts() *corpus.Directory {
	return e.experts
}

// Repository returns the local project repository, or nil in remote mode.
func (e *Engine) Repository() storage.ProjectRepository {
	return e.repo
}

// Close releases the feedback channel and local storage.
func (e *Engine) Close() error {
	if e.channel != nil {
		e.channel.Release()
	}
	return e.closeStorage()
}

func (e *Engine) closeStorage() error {
	if e.repo != nil {
		if err := e.repo.Close(); err != nil {
			e.logger.Error("error closing project repository", "err", err)
		}
	}
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

// repositoryStats adapts a local repository to the session's stats source.
type repositoryStats struct {
	repo storage.ProjectRepository
}

func (s *repositoryStats) TotalProjects(ctx context.Context) (int, error) {
	return s.repo.CountProjects(ctx)
}
