package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fifa-results/internal/config"
	"github.com/riskibarqy/fifa-results/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:           ":0",
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       5 * time.Second,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		ResultsAPIBaseURL:  "http://127.0.0.1:1",
		ResultsAPITimeout:  time.Second,
		ImportWorkers:      2,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, closeFn, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings?scope=2024", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Sekar"`)
}

func TestNewHTTPServer_PrefixesWrittenIDs(t *testing.T) {
	srv, closeFn, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	post := func(target, body string) string {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		return rec.Body.String()
	}

	assert.Contains(t, post("/v1/players", `{"name":"Wulan"}`), `"id":"ply-`)
	assert.Contains(t, post("/v1/players", `{"name":"Yusuf"}`), `"id":"ply-`)
	assert.Contains(t, post("/v1/matches", `{"player1":"Wulan","player2":"Yusuf","score1":2,"score2":1}`), `"id":"mt-`)
	assert.Contains(t, post("/v1/competitions", `{"name":"Friday League"}`), `"id":"cmp-`)
	assert.Contains(t, post("/v1/teams", `{"name":"Arsenal"}`), `"id":"tm-`)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
