package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/checkball/checkball/internal/platform/cache"
	"github.com/checkball/checkball/internal/platform/logging"
	"github.com/checkball/checkball/internal/platform/resilience"
	"github.com/checkball/checkball/internal/usecase"
)

func newTestClient(t *testing.T, serverURL string, cfg ClientConfig) *Client {
	t.Helper()
	cfg.BaseURL = serverURL
	cfg.Logger = logging.NewNop()
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 1
	}
	return NewClient(cfg)
}

func TestFetchScoreboard_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[{"id":"401"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{})
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	payload, err := client.FetchScoreboard(context.Background(), "basketball/nba", day)
	if err != nil {
		t.Fatalf("FetchScoreboard error: %v", err)
	}

	if gotPath != "/basketball/nba/scoreboard" {
		t.Fatalf("path got=%q", gotPath)
	}
	if gotQuery != "dates=20260828" {
		t.Fatalf("query got=%q", gotQuery)
	}
	if gotUA != userAgent {
		t.Fatalf("user agent got=%q want=%q", gotUA, userAgent)
	}
	events, ok := payload["events"].([]any)
	if !ok || len(events) != 1 {
		t.Fatalf("payload got=%v", payload)
	}
}

func TestFetchSummary_BuildsEventURL(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"header":{}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{})
	if _, err := client.FetchSummary(context.Background(), "baseball/mlb", "401580"); err != nil {
		t.Fatalf("FetchSummary error: %v", err)
	}

	if gotPath != "/baseball/mlb/summary" {
		t.Fatalf("path got=%q", gotPath)
	}
	if gotQuery != "event=401580" {
		t.Fatalf("query got=%q", gotQuery)
	}
}

func TestFetchSummary_RequiresEventID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:0", ClientConfig{})
	if _, err := client.FetchSummary(context.Background(), "baseball/mlb", "  "); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestGetJSON_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{MaxAttempts: 2})
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if _, err := client.FetchScoreboard(context.Background(), "basketball/nba", day); err != nil {
		t.Fatalf("FetchScoreboard error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("request count got=%d want=2", got)
	}
}

func TestGetJSON_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{MaxAttempts: 3})
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	_, err := client.FetchScoreboard(context.Background(), "basketball/nba", day)
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if IsTransient(err) {
		t.Fatalf("a 404 must not be transient: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("request count got=%d want=1", got)
	}
}

func TestGetJSON_TransientErrorIsMarked(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{MaxAttempts: 1})
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	_, err := client.FetchScoreboard(context.Background(), "basketball/nba", day)
	if !IsTransient(err) {
		t.Fatalf("a 429 must be transient: %v", err)
	}
}

func TestGetJSON_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{
		MaxAttempts: 1,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if _, err := client.FetchScoreboard(context.Background(), "basketball/nba", day); err == nil {
		t.Fatalf("expected upstream failure")
	}

	_, err := client.FetchScoreboard(context.Background(), "basketball/nba", day)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("error got=%v want ErrDependencyUnavailable", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("open breaker must not hit upstream, calls got=%d", got)
	}
}

func TestGetJSON_CacheAvoidsSecondRequest(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{
		Cache: cache.NewStore(time.Minute, 0),
	})

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if _, err := client.FetchScoreboard(context.Background(), "basketball/nba", day); err != nil {
			t.Fatalf("FetchScoreboard error: %v", err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("request count got=%d want=1", got)
	}
}

func TestGetJSON_RejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events":`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, ClientConfig{})
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if _, err := client.FetchScoreboard(context.Background(), "basketball/nba", day); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFetchScoreboard_RequiresLeaguePath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:0", ClientConfig{})
	if _, err := client.FetchScoreboard(context.Background(), "  ", time.Now()); err == nil {
		t.Fatalf("expected validation error")
	}
}
