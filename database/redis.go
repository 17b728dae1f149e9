package database

import (
	"context"
	"time"

	"github.com/lshigami/Rehearse/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewRedisClient backs the auth session store. The client is closed when the app stops.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// Sessions fail closed: every gated request gets a 401 until Redis is back.
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed")
				return nil
			}
			log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}
