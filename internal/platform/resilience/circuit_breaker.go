package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker shields the score provider from request storms while it
// is down. Every widget on a dashboard polls the same upstream, so once
// ESPN starts failing the breaker fails the whole window fast instead of
// stacking retries; after openTimeout a few probe requests test whether
// the upstream has recovered.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	openTimeout      time.Duration
	maxProbes        int

	state          CircuitState
	failureStreak  int
	trippedAt      time.Time
	probesInFlight int
	probeSuccesses int
	now            func() time.Time
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, maxProbes int) *CircuitBreaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	if openTimeout <= 0 {
		openTimeout = defaultBreakerOpenTimeout
	}
	if maxProbes < 1 {
		maxProbes = 1
	}

	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		openTimeout:      openTimeout,
		maxProbes:        maxProbes,
		state:            CircuitStateClosed,
		now:              time.Now,
	}
}

// Allow reports whether a request may go upstream right now. While the
// breaker is open it returns ErrCircuitOpen; once the open timeout has
// passed it admits up to maxProbes concurrent probe requests.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.trippedAt) < b.openTimeout {
			return ErrCircuitOpen
		}
		b.startProbing()
	}

	if b.state == CircuitStateHalfOpen {
		if b.probesInFlight >= b.maxProbes {
			return ErrCircuitOpen
		}
		b.probesInFlight++
	}

	return nil
}

// RecordSuccess clears the failure streak, and while probing counts the
// probe toward reclosing the breaker.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failureStreak = 0
	case CircuitStateHalfOpen:
		if b.probesInFlight > 0 {
			b.probesInFlight--
		}
		b.probeSuccesses++
		if b.probeSuccesses >= b.maxProbes && b.probesInFlight == 0 {
			b.reset()
		}
	}
}

// RecordFailure extends the failure streak. Reaching the threshold trips
// the breaker; any failed probe trips it again immediately.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failureStreak++
		if b.failureStreak >= b.failureThreshold {
			b.trip()
		}
	case CircuitStateHalfOpen:
		if b.probesInFlight > 0 {
			b.probesInFlight--
		}
		b.trip()
	case CircuitStateOpen:
		b.trippedAt = b.now()
	}
}

// State reports the effective state, surfacing half-open as soon as the
// open timeout has lapsed even before the first probe arrives.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.trippedAt) >= b.openTimeout {
		return CircuitStateHalfOpen
	}

	return b.state
}

func (b *CircuitBreaker) reset() {
	b.state = CircuitStateClosed
	b.failureStreak = 0
	b.probesInFlight = 0
	b.probeSuccesses = 0
	b.trippedAt = time.Time{}
}

func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.trippedAt = b.now()
	b.probesInFlight = 0
	b.probeSuccesses = 0
}

func (b *CircuitBreaker) startProbing() {
	b.state = CircuitStateHalfOpen
	b.probesInFlight = 0
	b.probeSuccesses = 0
}
