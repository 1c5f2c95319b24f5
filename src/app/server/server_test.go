package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ogiribattle/src/app/server"
	"ogiribattle/src/infra/config"
	"ogiribattle/src/infra/logger"
	"ogiribattle/src/infra/repo"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			Host:            "127.0.0.1",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{Level: "error", Format: "text"},
		Scoring: config.ScoringConfig{
			Storage:           config.StorageMemory,
			WeightIppon:       3,
			WeightWazaAri:     2,
			WeightYuko:        1,
			RecentPromptLimit: 10,
		},
	}
}

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	r := repo.NewMemoryRepository()
	require.NoError(t, repo.SeedDemo(context.Background(), r))
	cfg := testConfig()
	return server.New(cfg, logger.NewWithWriter(cfg.Log, bytes.NewBuffer(nil)), r)
}

func get(t *testing.T, s *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, s, "/health/detailed")
	assert.Equal(t, http.StatusOK, w.Code)
	var detailed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detailed))
	assert.Equal(t, "ok", detailed.Status)
}

func TestRequestIDHeaderPropagated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
}

func TestScoreboardEndToEnd(t *testing.T) {
	s := newTestServer(t)

	// Find the seeded active prompt and a joke to vote on.
	w := get(t, s, "/v1/prompts?limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	var prompts struct {
		Data struct {
			Prompts []struct {
				ID string `json:"id"`
			} `json:"prompts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prompts))
	require.Len(t, prompts.Data.Prompts, 1)

	w = get(t, s, "/v1/prompts/"+prompts.Data.Prompts[0].ID)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Data struct {
			Jokes []struct {
				ID     string  `json:"id"`
				UserID *string `json:"user_id"`
			} `json:"jokes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.NotEmpty(t, detail.Data.Jokes)
	joke := detail.Data.Jokes[0]
	require.NotNil(t, joke.UserID)

	// A guest casts an ippon on the joke.
	body, _ := json.Marshal(map[string]any{
		"joke_id":    joke.ID,
		"type":       "ippon",
		"guest_name": "観客",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/votes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// The author now leads the recent scoreboard with weight 3.
	w = get(t, s, "/v1/scoreboard")
	require.Equal(t, http.StatusOK, w.Code)
	var board struct {
		Data struct {
			Recent []struct {
				Rank       int    `json:"rank"`
				UserID     string `json:"user_id"`
				TotalScore int    `json:"total_score"`
			} `json:"recent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.NotEmpty(t, board.Data.Recent)
	assert.Equal(t, 1, board.Data.Recent[0].Rank)
	assert.Equal(t, *joke.UserID, board.Data.Recent[0].UserID)
	assert.Equal(t, 3, board.Data.Recent[0].TotalScore)
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var out struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "NOT_FOUND", out.Error.Code)
}
