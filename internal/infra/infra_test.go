package infra

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "production")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud", "development")
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordOutcome("itinerary", PathFallback, "parse_failure")
	m.ObserveUpstream("weather", time.Now(), errors.New("down"))
	m.ObserveRequest("/v1/plan", "POST", "200", time.Millisecond)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordOutcome("booking", PathPrimary, "")
	m.ObserveUpstream("booking_quote", time.Now(), nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tripplanner_pipeline_outcomes_total{")
	assert.Contains(t, string(body), `pipeline="booking"`)
	assert.Contains(t, string(body), `tripplanner_upstream_call_seconds_count{outcome="ok",upstream="booking_quote"} 1`)
}
