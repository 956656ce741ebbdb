package profind

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poiesic/profind/config"
	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := &config.Config{Mode: config.ModeLocal, TopK: 10}
	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestEngine_LocalSearchFlow(t *testing.T) {
	engine := newLocalEngine(t)
	ctx := context.Background()

	sess := engine.Session()
	require.NoError(t, sess.Search(ctx, "stormwater"))

	snap := sess.Snapshot()
	assert.Equal(t, session.StatusSuccess, snap.Status)
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "Sydney Waterfront Stormwater Management System", snap.Results[0].Project.ProjectName)
	assert.Equal(t, 6, snap.TotalProjects)
}

func TestEngine_LocalFeedbackAndLessons(t *testing.T) {
	engine := newLocalEngine(t)
	ctx := context.Background()

	vote := engine.Feedback().Toggle(core.ID(2), true)
	require.NotNil(t, vote)
	assert.True(t, *vote)

	_, err := engine.Feedback().SubmitLesson(core.ID(2), "Tide windows constrain marine works", "Construction", "James Wilson")
	require.NoError(t, err)

	// The lesson lands on the stored project once delivery completes.
	require.Eventually(t, func() bool {
		project, err := engine.Repository().GetProject(ctx, core.ID(2))
		return err == nil && len(project.Lessons) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_ExpertDirectory(t *testing.T) {
	engine := newLocalEngine(t)
	ctx := context.Background()

	expert := engine.Experts().FindByName("Emma Thompson")
	require.NotNil(t, expert)

	projects, err := engine.Repository().ListProjects(ctx)
	require.NoError(t, err)

	led := engine.Experts().ProjectsFor(expert, projects)
	require.Len(t, led, 2)
}

func TestEngine_RemoteErrorSurfacesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stats":
			json.NewEncoder(w).Encode(map[string]int{"total_projects": 23})
		case "/api/search":
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"detail": "index unavailable"})
		}
	}))
	defer server.Close()

	cfg := &config.Config{Mode: config.ModeRemote, APIBaseURL: server.URL, TopK: 10}
	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	defer engine.Close()

	sess := engine.Session()
	require.Error(t, sess.Search(context.Background(), "bridge"))

	snap := sess.Snapshot()
	assert.Equal(t, session.StatusError, snap.Status)
	assert.Equal(t, "index unavailable", snap.ErrorMessage)
	assert.Equal(t, 23, snap.TotalProjects)
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	_, err := NewEngine(context.Background(), &config.Config{Mode: "hybrid", TopK: 10})
	assert.Error(t, err)
}
