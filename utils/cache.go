// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"hotelbooking/config"

	"github.com/go-redis/redis/v8"
)

// InitAuthCache connects the Redis client used for the session denylist.
// It returns nil without error when no Redis address is configured.
func InitAuthCache() (*redis.Client, error) {
	if config.AppConfig.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	return client, nil
}
