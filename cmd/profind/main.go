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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/profind"
	"github.com/poiesic/profind/config"
	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/metrics"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "profind",
		Usage: "Search orchestration engine for the project knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "metrics-listen",
				Usage: "Serve Prometheus metrics on this address (e.g. :9090)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the project corpus and print ranked hits",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "min-trust",
						Usage: "Minimum trust score in [0,1]",
					},
					&cli.StringSliceFlag{
						Name:  "category",
						Usage: "Restrict hits to these categories",
					},
					&cli.StringSliceFlag{
						Name:  "region",
						Usage: "Restrict hits to these regions",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of hits to return (overrides config)",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print corpus statistics",
				Action: statsCommand,
			},
			{
				Name:   "feedback",
				Usage:  "Record a thumbs-up or thumbs-down on a project",
				Action: feedbackCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "project",
						Aliases:  []string{"p"},
						Usage:    "Project record ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "negative",
						Usage: "Record a negative vote instead of a positive one",
					},
				},
			},
			{
				Name:   "lesson",
				Usage:  "Attach a lesson learned to a project",
				Action: lessonCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "project",
						Aliases:  []string{"p"},
						Usage:    "Project record ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Lesson text",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "phase",
						Usage: "Project phase the lesson applies to",
					},
					&cli.StringFlag{
						Name:  "author",
						Usage: "Lesson author",
					},
				},
			},
			{
				Name:   "experts",
				Usage:  "List the expert directory",
				Action: expertsCommand,
			},
		},
	}
}

// newEngine loads configuration and builds an engine, optionally serving
// Prometheus metrics when --metrics-listen is set.
func newEngine(c *cli.Context) (*profind.Engine, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.IsSet("metrics-listen") {
		cfg.MetricsListen = c.String("metrics-listen")
	}
	if topK := c.Int("top-k"); topK > 0 {
		cfg.TopK = topK
	}

	var opts []profind.EngineOption
	if cfg.MetricsListen != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, profind.WithSearchMonitor(metrics.NewSearchMonitor(reg)))
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.HandlerFor(reg))
			if err := http.ListenAndServe(cfg.MetricsListen, mux); err != nil {
				slog.Error("metrics listener stopped", "err", err)
			}
		}()
	}

	engine, err := profind.NewEngine(c.Context, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}
	minTrust := c.Float64("min-trust")
	if minTrust < 0 || minTrust > 1 {
		return fmt.Errorf("min-trust must be between 0 and 1, got %v", minTrust)
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	sess := engine.Session()
	if err := sess.UpdateFilters(ctx, core.FilterState{
		MinTrustScore: minTrust,
		Categories:    c.StringSlice("category"),
		Regions:       c.StringSlice("region"),
	}); err != nil {
		return fmt.Errorf("failed to apply filters: %w", err)
	}
	if err := sess.Search(ctx, query); err != nil {
		snap := sess.Snapshot()
		if snap.ErrorMessage != "" {
			return fmt.Errorf("search failed: %s", snap.ErrorMessage)
		}
		return fmt.Errorf("search failed: %w", err)
	}

	snap := sess.Snapshot()
	results := snap.Results
	if len(results) == 0 {
		fmt.Println("No matching projects found")
		return nil
	}
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s '%s' [%0.2f] trust=%0.2f %s/%s\n",
			i+1,
			hit.Project.ProjectNumber,
			hit.Project.ProjectName,
			hit.Score,
			hit.Project.TrustScore,
			hit.Project.Category,
			hit.Project.Region,
		)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	snap := engine.Session().Snapshot()
	fmt.Printf("Total projects: %d\n", snap.TotalProjects)
	return nil
}

func feedbackCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	projectID := core.ID(c.Uint64("project"))
	vote := engine.Feedback().Toggle(projectID, !c.Bool("negative"))
	switch {
	case vote == nil:
		fmt.Printf("Cleared vote on project %d\n", projectID)
	case *vote:
		fmt.Printf("Recorded positive vote on project %d\n", projectID)
	default:
		fmt.Printf("Recorded negative vote on project %d\n", projectID)
	}
	return nil
}

func lessonCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	projectID := core.ID(c.Uint64("project"))
	lesson, err := engine.Feedback().SubmitLesson(
		projectID,
		c.String("text"),
		c.String("phase"),
		c.String("author"),
	)
	if err != nil {
		return fmt.Errorf("failed to submit lesson: %w", err)
	}

	fmt.Printf("Lesson added to project %d (%s, %s)\n", projectID, lesson.Phase, lesson.Author)
	return nil
}

func expertsCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	for _, expert := range engine.Experts().All() {
		fmt.Printf("%s, %s <%s> led=%d reviewed=%d trust=%0.2f - %s\n",
			expert.Name,
			expert.Role,
			expert.Email,
			expert.ProjectsLed,
			expert.ProjectsReviewed,
			expert.AvgTrustScore,
			strings.Join(expert.Expertise, ", "),
		)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
