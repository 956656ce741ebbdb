package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/feedback"
	"github.com/poiesic/profind/search"
	"github.com/poiesic/profind/session"
)

// defaultTopK is the result page size when the caller leaves it unset.
const defaultTopK = 10

// Client talks to a remote profind search service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var (
	_ search.Service        = (*Client)(nil)
	_ feedback.Sink         = (*Client)(nil)
	_ session.StatsProvider = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client) error

// WithTimeout sets the request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		c.httpClient.Timeout = timeout
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient != nil {
			c.httpClient = httpClient
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Search queries the service. Matching, filtering, and ranking all
// happen server-side; results come back in the server's order.
func (c *Client) Search(ctx context.Context, query string, filters core.FilterState, maxHits int) ([]*core.SearchResult, error) {
	if maxHits <= 0 {
		maxHits = defaultTopK
	}

	req := searchRequest{
		Query:         query,
		TopK:          maxHits,
		MinTrustScore: filters.MinTrustScore,
		Categories:    emptyIfNil(filters.Categories),
		Regions:       emptyIfNil(filters.Regions),
	}

	var resp searchResponse
	if err := c.post(ctx, "/api/search", req, &resp); err != nil {
		return nil, err
	}

	results := make([]*core.SearchResult, 0, len(resp.Results))
	for i := range resp.Results {
		project := resp.Results[i].toProject()
		results = append(results, &core.SearchResult{
			Project: project,
			Score:   project.SimilarityScore,
		})
	}
	return results, nil
}

// SubmitFeedback posts a single feedback event.
func (c *Client) SubmitFeedback(ctx context.Context, event core.FeedbackEvent) error {
	req := feedbackRequest{
		ProjectId:  event.ProjectId,
		IsPositive: event.Positive,
		Timestamp:  event.Timestamp.UTC().Format(time.RFC3339),
	}
	return c.post(ctx, "/api/feedback", req, nil)
}

// SubmitLesson posts a lesson for a project.
func (c *Client) SubmitLesson(ctx context.Context, projectID core.ID, lesson *core.Lesson) error {
	req := lessonRequest{
		ProjectId: projectID,
		Text:      lesson.Text,
		Phase:     lesson.Phase,
		Author:    lesson.Author,
		Date:      lesson.Date.UTC().Format(dateLayout),
	}
	return c.post(ctx, "/api/lessons", req, nil)
}

// TotalProjects fetches the corpus size from the stats endpoint.
func (c *Client) TotalProjects(ctx context.Context) (int, error) {
	var resp statsResponse
	if err := c.get(ctx, "/api/stats", &resp); err != nil {
		return 0, err
	}
	return resp.TotalProjects, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Error bodies carry {"detail": "..."} when the service has
		// something to say; anything else leaves the generic message.
		if body, readErr := io.ReadAll(resp.Body); readErr == nil {
			var errResp errorResponse
			if json.Unmarshal(body, &errResp) == nil {
				apiErr.Detail = errResp.Detail
			}
		}
		c.logger.Error("search service error",
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"detail", apiErr.Detail,
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
