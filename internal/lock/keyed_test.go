package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := lock.NewKeyedMutex()

	const workers = 16
	var counter, max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := km.Acquire(context.Background(), "business-1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			mu.Lock()
			counter++
			if counter > max {
				max = counter
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			counter--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max, "more than one holder inside the critical section")
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := lock.NewKeyedMutex()

	releaseA, err := km.Acquire(context.Background(), "business-a")
	require.NoError(t, err)
	defer releaseA()

	// a different key must not block behind business-a
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	releaseB, err := km.Acquire(ctx, "business-b")
	require.NoError(t, err)
	releaseB()
}

func TestKeyedMutexAcquireRespectsContext(t *testing.T) {
	km := lock.NewKeyedMutex()

	release, err := km.Acquire(context.Background(), "business-1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = km.Acquire(ctx, "business-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()

	again, err := km.Acquire(context.Background(), "business-1")
	require.NoError(t, err)
	again()
}
