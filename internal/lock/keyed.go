package lock

import (
	"context"
	"sync"
)

// KeyedMutex is the single-instance Locker: one semaphore per key, created
// on first use and never evicted (key cardinality equals business count).
type KeyedMutex struct {
	mu   sync.Mutex
	sems map[string]chan struct{}
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		sems: make(map[string]chan struct{}),
	}
}

func (k *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	sem, ok := k.sems[key]
	if !ok {
		sem = make(chan struct{}, 1)
		k.sems[key] = sem
	}
	k.mu.Unlock()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
