package metrics_test

import (
	"github.com/jamesungureanu/LifeTune/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	m.Action("draw", metrics.OutcomeOK)
	m.Action("draw", metrics.OutcomeOK)
	m.Action("buy-insurance", metrics.OutcomeRejected)
	m.Stored(false, time.Millisecond)
	m.ActiveTables.Set(3)

	require.InDelta(t, 2, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("draw", metrics.OutcomeOK)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("buy-insurance", metrics.OutcomeRejected)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.SessionsStored.WithLabelValues("error")), 0)
	require.InDelta(t, 3, testutil.ToFloat64(m.ActiveTables), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `lifetune_actions_total{kind="draw",outcome="ok"} 2`)
	require.Contains(t, string(body), "go_goroutines")
}

func TestNew_independentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.GamesFinished.Inc()
	require.InDelta(t, 0, testutil.ToFloat64(b.GamesFinished), 0)
}
