package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one
// execution. Scoreboard URLs repeat heavily when many widgets watch the
// same league day, so only the first caller hits the upstream and the
// rest wait for its result.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flightResult
}

type flightResult struct {
	done  sync.WaitGroup
	value any
	err   error
}

// Do runs fn once per key at a time. Callers that arrive while fn is
// running block and receive the same result; shared reports whether the
// result came from another caller's execution.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (value any, err error, shared bool) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flightResult)
	}

	if result, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		result.done.Wait()
		return result.value, result.err, true
	}

	result := &flightResult{}
	result.done.Add(1)
	g.inflight[key] = result
	g.mu.Unlock()

	result.value, result.err = fn()
	result.done.Done()

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return result.value, result.err, false
}
