// Package lock provides the per-business critical section around
// count-then-insert and transition-then-reconcile sequences. Without it,
// concurrent joins against the same business can compute the same position.
package lock

import "context"

// Locker serializes work per key. Acquire blocks until the key's lock is
// held or ctx is done; the returned release func must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
