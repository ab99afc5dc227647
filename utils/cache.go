package utils

import (
	"context"
	"time"

	"snapfix/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient backs the match-result cache. Set once at startup.
var CacheClient *redis.Client

// InitCache connects the Redis cache client and verifies it with a ping.
// The cache is load-bearing enough to fail startup on: a half-configured
// cache is worse than none.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Fatal("Failed to connect to Redis cache", zap.Error(err))
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, initializing it on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
