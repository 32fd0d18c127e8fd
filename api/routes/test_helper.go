package routes

import (
	"bytes"
	"draftroom/api/cache"
	"draftroom/api/modules"
	repotestutil "draftroom/api/repositories/testutil"
	"draftroom/internal/testutil"
	"draftroom/pkg/database/models"
	"draftroom/pkg/metrics"
	"draftroom/pkg/moderation"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const adminPassword = "s3cret"

type testServer struct {
	router  *Router
	db      *gorm.DB
	clock   *testutil.FakeClock
	players map[string]*models.Player
}

// Helper to build the full API over an in-memory database and counter store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := repotestutil.NewSqliteConnection(t)
	players := repotestutil.SeedPlayers(t, db)

	clock := testutil.NewFakeClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	memCache := cache.NewMemCache(cache.WithClock(clock.Now))
	t.Cleanup(memCache.Close)

	module := modules.NewModule(&modules.ModuleDependencies{
		DB:            db,
		Metrics:       metrics.New(),
		Gate:          moderation.NewGate(moderation.MustDefaultProfanityFilter(), moderation.WithClock(clock.Now)),
		CounterStore:  cache.NewCounterStore(memCache),
		AdminPassword: adminPassword,
	})

	router := NewRouter(module.Router, module.RateLimiter)
	router.SetupRoutes(module.Handlers()...)

	return &testServer{router: router, db: db, clock: clock, players: players}
}

// do sends a request from the given client address.
func (s *testServer) do(t *testing.T, method, path, clientIP string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if clientIP != "" {
		req.Header.Set("CF-Connecting-IP", clientIP)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.router.Engine().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

// Report payload that passes the gate, loaded five seconds before the test clock.
func validReport(s *testServer, playerId uint) map[string]any {
	return map[string]any{
		"player_id":    playerId,
		"display_name": "Sam",
		"email":        "sam@example.com",
		"content":      "Polished route runner with strong hands and great body control",
		"honeypot":     "",
		"submit_time":  s.clock.Now().Add(-5 * time.Second).UnixMilli(),
	}
}
