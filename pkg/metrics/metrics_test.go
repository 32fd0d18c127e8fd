package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("/api/players", http.MethodGet, http.StatusOK, time.Millisecond)
		m.RateLimitDenied("vote")
		m.RateLimitStoreError()
		m.GateRejected("profanity")
		m.VoteRecorded("player", "added")
	})
}

func TestCounters(t *testing.T) {
	m := New()

	m.RateLimitDenied("report")
	m.RateLimitDenied("report")
	m.RateLimitStoreError()
	m.GateRejected("too_short")
	m.VoteRecorded("report", "conflict")
	m.ObserveRequest("/api/vote", http.MethodPost, http.StatusTooManyRequests, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rateLimitDenied.WithLabelValues("report")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimitStoreErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gateRejections.WithLabelValues("too_short")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.votes.WithLabelValues("report", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/vote", http.MethodPost, "429")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.VoteRecorded("player", "added")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `draftroom_votes_total{kind="player",outcome="added"} 1`)
}
