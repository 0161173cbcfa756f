// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"bettermann/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for auth-route rate limiting.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for auth-route rate limiting.
// Redis is optional infrastructure here: when REDIS_ADDR is unset or the ping
// fails, the client stays nil and the auth limiter fails open.
func InitAuthCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("REDIS_ADDR not set, auth rate limiting disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Failed to connect to Redis (Auth Cache): %v", err)
		return
	}
	AuthCacheClient = client
}

// GetAuthCacheClient returns the Redis client for auth-route rate limiting,
// or nil when Redis is not configured.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
