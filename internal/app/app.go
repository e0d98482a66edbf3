package app

import (
	"fmt"
	"net/http"

	"github.com/checkball/checkball/external/espn"
	"github.com/checkball/checkball/internal/config"
	"github.com/checkball/checkball/internal/interfaces/httpapi"
	"github.com/checkball/checkball/internal/platform/cache"
	"github.com/checkball/checkball/internal/platform/logging"
	"github.com/checkball/checkball/internal/platform/resilience"
	"github.com/checkball/checkball/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL, cfg.CacheMaxEntries)
	}

	espnClient := espn.NewClient(espn.ClientConfig{
		BaseURL:           cfg.ESPNBaseURL,
		ScoreboardTimeout: cfg.ESPNScoreboardTimeout,
		SummaryTimeout:    cfg.ESPNSummaryTimeout,
		MaxAttempts:       cfg.ESPNMaxAttempts,
		Logger:            logger,
		Cache:             store,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	scoreSvc := usecase.NewScoreService(espnClient, logger)
	detailsSvc := usecase.NewDetailsService(espnClient, logger)

	handler := httpapi.NewHandler(scoreSvc, detailsSvc, logger)

	limits := httpapi.RouteLimits{}
	if cfg.RateLimitEnabled {
		limits = httpapi.RouteLimits{
			Teams:      cfg.RateLimitTeamsPerMin,
			Scores:     cfg.RateLimitScoresPerMin,
			Details:    cfg.RateLimitDetailsPerMin,
			SaveConfig: cfg.RateLimitSaveConfigPerMin,
			LoadConfig: cfg.RateLimitLoadConfigPerMin,
		}
	}

	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, limits)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
