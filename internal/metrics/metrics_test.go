package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RunsTotal.WithLabelValues("always-banker", ModeBatch).Inc()
	m.HandsTotal.WithLabelValues("tie").Add(3)
	m.ActivePlaybacks.Set(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("always-banker", ModeBatch)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.HandsTotal.WithLabelValues("tie")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `baccarat_sim_runs_total{mode="batch",strategy="always-banker"} 1`)
	assert.Contains(t, string(body), "baccarat_sim_active_playbacks 2")
	assert.Contains(t, string(body), "go_goroutines")
}
