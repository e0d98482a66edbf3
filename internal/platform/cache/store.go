package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/checkball/checkball/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	flight     resilience.SingleFlight
}

// NewStore builds a TTL cache bounded to maxEntries items. A maxEntries
// of zero or less means unbounded.
func NewStore(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	now := time.Now()
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	if _, exists := s.entries[key]; !exists {
		s.evictLocked(now)
	}
	s.entries[key] = entry{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

// evictLocked makes room for one new entry. Expired entries go first,
// then the entry closest to expiry. Called with the mutex held.
func (s *Store) evictLocked(now time.Time) {
	if s.maxEntries <= 0 || len(s.entries) < s.maxEntries {
		return
	}

	if s.ttl > 0 {
		for key, e := range s.entries {
			if !e.expiresAt.After(now) {
				delete(s.entries, key)
			}
		}
		if len(s.entries) < s.maxEntries {
			return
		}
	}

	var victim string
	var victimExpiry time.Time
	for key, e := range s.entries {
		if victim == "" || e.expiresAt.Before(victimExpiry) {
			victim = key
			victimExpiry = e.expiresAt
		}
	}
	if victim != "" {
		delete(s.entries, victim)
	}
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
