package lock

import (
	"context"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// compare-and-delete so a lock that expired mid-operation is never released
// for its next holder
var releaseLua = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	else
		return 0
	end
`)

// RedisLocker serializes per-business work across instances with a
// SET NX PX lock. The TTL bounds how long a crashed holder can block a
// business's queue.
type RedisLocker struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedisLocker(client *redis.Client, logger *log.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		logger: logger,
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := constant.LockKeyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, constant.LockTTL).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to acquire redis lock")
		}
		if ok {
			break
		}

		select {
		case <-time.After(constant.LockRetryInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	release := func() {
		if err := releaseLua.Run(context.Background(), r.client, []string{lockKey}, token).Err(); err != nil {
			r.logger.Warnf("failed to release redis lock %s: %v", lockKey, err)
		}
	}

	return release, nil
}
