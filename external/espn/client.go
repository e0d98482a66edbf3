package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/checkball/checkball/internal/platform/cache"
	"github.com/checkball/checkball/internal/platform/logging"
	"github.com/checkball/checkball/internal/platform/resilience"
	"github.com/checkball/checkball/internal/usecase"
)

const (
	defaultBaseURL           = "https://site.api.espn.com/apis/site/v2/sports"
	defaultScoreboardTimeout = 3 * time.Second
	defaultSummaryTimeout    = 5 * time.Second
	defaultMaxAttempts       = 2
	userAgent                = "CheckBall/1.0"
	scoreboardDateLayout     = "20060102"
	maxResponseBytes         = 6 << 20
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	ScoreboardTimeout time.Duration
	SummaryTimeout    time.Duration
	MaxAttempts       int
	Logger            *logging.Logger
	Cache             *cache.Store
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client fetches scoreboard and summary payloads from ESPN's public site
// API. Responses are decoded into loose maps because the payload shape
// varies by sport and season.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	scoreboardTimeout time.Duration
	summaryTimeout    time.Duration
	maxAttempts       int
	logger            *logging.Logger
	cache             *cache.Store
	breaker           *resilience.CircuitBreaker
	circuitEnabled    bool
	flight            resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	scoreboardTimeout := cfg.ScoreboardTimeout
	if scoreboardTimeout <= 0 {
		scoreboardTimeout = defaultScoreboardTimeout
	}
	summaryTimeout := cfg.SummaryTimeout
	if summaryTimeout <= 0 {
		summaryTimeout = defaultSummaryTimeout
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:        httpClient,
		baseURL:           baseURL,
		scoreboardTimeout: scoreboardTimeout,
		summaryTimeout:    summaryTimeout,
		maxAttempts:       maxAttempts,
		logger:            logger,
		cache:             cfg.Cache,
		breaker:           resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled:    breakerCfg.Enabled,
	}
}

// FetchScoreboard returns the scoreboard payload for one league and day.
func (c *Client) FetchScoreboard(ctx context.Context, leaguePath string, day time.Time) (map[string]any, error) {
	leaguePath = strings.Trim(strings.TrimSpace(leaguePath), "/")
	if leaguePath == "" {
		return nil, fmt.Errorf("league path is required")
	}

	fullURL := fmt.Sprintf("%s/%s/scoreboard?dates=%s", c.baseURL, leaguePath, day.Format(scoreboardDateLayout))
	return c.getJSON(ctx, fullURL, c.scoreboardTimeout)
}

// FetchSummary returns the detailed summary payload for one event.
func (c *Client) FetchSummary(ctx context.Context, leaguePath, eventID string) (map[string]any, error) {
	leaguePath = strings.Trim(strings.TrimSpace(leaguePath), "/")
	if leaguePath == "" {
		return nil, fmt.Errorf("league path is required")
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("event id is required")
	}

	fullURL := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, leaguePath, url.QueryEscape(eventID))
	return c.getJSON(ctx, fullURL, c.summaryTimeout)
}

func (c *Client) getJSON(ctx context.Context, fullURL string, timeout time.Duration) (map[string]any, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: score provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	load := func(ctx context.Context) (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL, timeout)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		if reqErr != nil {
			return nil, reqErr
		}

		var payload map[string]any
		if err := sonic.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode provider payload: %w", err)
		}
		return payload, nil
	}

	var out any
	var err error
	if c.cache != nil {
		out, err = c.cache.GetOrLoad(ctx, fullURL, load)
	} else {
		out, err, _ = c.flight.Do(fullURL, func() (any, error) {
			return load(ctx)
		})
	}
	if err != nil {
		return nil, err
	}

	payload, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	return payload, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, timeout time.Duration) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		raw, done, err := c.attemptRequest(ctx, fullURL, timeout)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if done || attempt == c.maxAttempts-1 {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// attemptRequest performs one HTTP round trip. done=true means the error
// is not worth retrying.
func (c *Client) attemptRequest(ctx context.Context, fullURL string, timeout time.Duration) (raw []byte, done bool, err error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, true, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("%w: send request: %v", errESPNTransient, err)
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, false, fmt.Errorf("%w: read response body: %v", errESPNTransient, readErr)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, true, nil
	}
	if isRetryableStatus(resp.StatusCode) {
		return nil, false, fmt.Errorf("%w: provider status=%d body=%s", errESPNTransient, resp.StatusCode, abbreviateBody(raw))
	}
	return nil, true, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
}

// IsTransient reports whether err came from a retryable upstream failure.
func IsTransient(err error) bool {
	return err != nil && stderrors.Is(err, errESPNTransient)
}

func isCircuitFailure(err error) bool {
	return IsTransient(err)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
