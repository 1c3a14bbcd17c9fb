package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// GenerationGuard is a keyed lock with expiry, used so one admin cannot start
// several weekly generations at once.
type GenerationGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type MemoryGenerationGuard struct {
	mu    sync.Mutex
	clock clockwork.Clock
	held  map[string]time.Time
}

func NewMemoryGenerationGuard(clock clockwork.Clock) *MemoryGenerationGuard {
	return &MemoryGenerationGuard{clock: clock, held: make(map[string]time.Time)}
}

func (g *MemoryGenerationGuard) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.clock.Now()
	if expires, ok := g.held[key]; ok && now.Before(expires) {
		return false, nil
	}
	g.held[key] = now.Add(ttl)
	return true, nil
}

func (g *MemoryGenerationGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}
