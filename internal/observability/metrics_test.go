package observability

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/events", "GET", 200, 15*time.Millisecond)
	m.RecordError("/events", "GET", "NOT_FOUND")
	m.RecordAuthOutcome("rejected")
	m.RecordAuthOutcome("rejected")
	m.RecordTokenIssued("signin")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/events", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/events", "GET", "NOT_FOUND")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tokensIssued.WithLabelValues("signin")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
		m.RecordAuthOutcome("passthrough")
		m.RecordTokenIssued("signup")
	})
}

func TestMetricsHandlerExposesRegistry(t *testing.T) {
	m := NewMetrics()
	m.RecordAuthOutcome("authenticated")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `playplanner_auth_outcomes_total{outcome="authenticated"} 1`)
}
