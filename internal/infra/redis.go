package infra

import (
	"context"
	"fmt"

	"github.com/Marcelofury/SmartQueue/internal/config"

	log "github.com/sirupsen/logrus"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, cfg config.Redis, logger *log.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("redis is running on %s:%d on db %d", cfg.Host, cfg.Port, cfg.Database))

	return rdb, nil
}
