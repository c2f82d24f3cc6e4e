package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-app/harmonia/internal/assistant"
	"github.com/harmonia-app/harmonia/internal/scenario"
)

type errEnricher struct{}

func (errEnricher) Enrich(context.Context, assistant.EnrichmentInput) (*assistant.Enrichment, error) {
	return nil, errors.New("upstream unavailable")
}

func newTestServer(t *testing.T, enricher assistant.Enricher) *Server {
	t.Helper()
	catalog, err := scenario.Load()
	require.NoError(t, err)
	builder := &assistant.Builder{
		Enricher: enricher,
		Now:      func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) },
	}
	return New(Config{Host: "127.0.0.1", Port: 0}, builder, catalog)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

type stateEnvelope struct {
	Success bool            `json:"success"`
	Data    assistant.State `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) stateEnvelope {
	t.Helper()
	var env stateEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestServer(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"service":"harmonia"`)
	assert.Contains(t, rec.Body.String(), `"llmEnabled":false`)
	assert.Contains(t, rec.Body.String(), `"version":"dev"`)
}

func TestSummary(t *testing.T) {
	rec := doRequest(t, newTestServer(t, nil), http.MethodGet, "/api/assistant/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeState(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, assistant.LevelElevated, env.Data.Stress.Level)
	assert.Equal(t, "Jordan", env.Data.Context.DisplayName)
	assert.NotEmpty(t, env.Data.Recommendations)
	assert.NotEmpty(t, env.Data.Timeline)
	assert.False(t, env.Data.LLM.Enabled)
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("flat payload", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/assistant/analyze",
			`{"heartRate":60,"hrv":80,"calendarLoad":0.1,"unreadEmails":0,"sleepQuality":0.9,"stepsToday":8000,"lastBreakMinutesAgo":5,"sentimentScore":0.5,"hydration":0.9}`)
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeState(t, rec)
		assert.Equal(t, assistant.LevelSteady, env.Data.Stress.Level)
		require.Len(t, env.Data.Recommendations, 1)
		assert.Equal(t, "maintain-flow", env.Data.Recommendations[0].ID)
	})

	t.Run("wrapped payload", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/assistant/analyze", `{"context":{"unreadEmails":3}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeState(t, rec)
		assert.Equal(t, 3, env.Data.Context.UnreadEmails)
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/assistant/analyze", "")
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeState(t, rec)
		assert.Equal(t, 47, env.Data.Context.UnreadEmails)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/assistant/analyze", `{"heartRate":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeState(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Unable to analyse context payload", env.Error)
		assert.NotEmpty(t, env.Details)
	})

	t.Run("wrong field type falls back to default", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/assistant/analyze", `{"heartRate":"high","unreadEmails":3}`)
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeState(t, rec)
		assert.Equal(t, 86.0, env.Data.Context.HeartRate)
		assert.Equal(t, 3, env.Data.Context.UnreadEmails)
	})

	t.Run("malformed meetings falls back to defaults", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/assistant/analyze", `{"meetings":"oops"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeState(t, rec)
		assert.Len(t, env.Data.Context.Meetings, 3)
	})
}

func TestScenarios(t *testing.T) {
	rec := doRequest(t, newTestServer(t, nil), http.MethodGet, "/api/assistant/scenarios", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Success bool            `json:"success"`
		Data    []scenario.Info `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data, 4)
	assert.Equal(t, "crunch-day", env.Data[0].ID)
}

func TestScenario(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("known key", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/assistant/scenario/crunch-day", "")
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeState(t, rec)
		assert.Equal(t, assistant.LevelCritical, env.Data.Stress.Level)
		assert.Equal(t, "crunch-day", env.Meta["scenario"])
	})

	t.Run("unknown key", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/assistant/scenario/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeState(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Scenario not found", env.Error)
	})
}

func TestEnricherFailureStillServes(t *testing.T) {
	rec := doRequest(t, newTestServer(t, errEnricher{}), http.MethodGet, "/api/assistant/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeState(t, rec)
	assert.True(t, env.Data.LLM.Enabled)
	assert.False(t, env.Data.LLM.Used)
	assert.NotEmpty(t, env.Data.Recommendations)
}

func TestRunGracefulShutdown(t *testing.T) {
	s := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
