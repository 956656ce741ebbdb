package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/profind/core"
)

func TestSearchMonitor_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	monitor := NewSearchMonitor(reg)

	monitor.Start("stormwater")
	monitor.Finish([]*core.SearchResult{
		{Project: &core.Project{ProjectName: "hit"}, Score: 0.9},
	})

	monitor.Start("zzz-no-match")
	monitor.Finish(nil)

	monitor.Start("bridge")
	monitor.Failed(errors.New("index unavailable"))

	assert.Equal(t, 3.0, testutil.ToFloat64(monitor.searches))
	assert.Equal(t, 1.0, testutil.ToFloat64(monitor.failures))
	assert.Equal(t, 1.0, testutil.ToFloat64(monitor.empties))
}

func TestHandlerFor_ServesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	monitor := NewSearchMonitor(reg)

	monitor.Start("stormwater")
	monitor.Finish([]*core.SearchResult{
		{Project: &core.Project{ProjectName: "hit"}, Score: 0.9},
	})

	server := httptest.NewServer(HandlerFor(reg))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "profind_searches_total 1")
}
