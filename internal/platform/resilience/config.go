package resilience

import "time"

// Breaker defaults tuned for the ESPN site API: it fails in bursts when
// a game day overloads it, and usually recovers within seconds.
const (
	defaultBreakerFailureThreshold = 5
	defaultBreakerOpenTimeout      = 15 * time.Second
	defaultBreakerMaxProbes        = 2
)

// CircuitBreakerConfig is the env-level shape of the breaker settings.
// HalfOpenMaxReq caps how many probe requests may run concurrently once
// the open timeout has lapsed.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: defaultBreakerFailureThreshold,
		OpenTimeout:      defaultBreakerOpenTimeout,
		HalfOpenMaxReq:   defaultBreakerMaxProbes,
	}
}

// NormalizeCircuitBreakerConfig replaces out-of-range values with the
// defaults so a half-configured environment still gets a sane breaker.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaultBreakerFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultBreakerOpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaultBreakerMaxProbes
	}
	return cfg
}
