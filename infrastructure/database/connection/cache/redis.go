package cache

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"certverify.io/infrastructure/logger"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *redis.Client
}

var (
	instance *RedisClient
	once     sync.Once
)

func ConnectToCache() {
	if _, err := GetInstance(); err != nil {
		logger.Error("could not connect to redis", logger.LoggerOptions{Key: "error", Data: err})
	}
}

// GetInstance returns the shared redis client, connecting on first use.
func GetInstance() (*RedisClient, error) {
	var err error
	once.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			err = errors.New("REDIS_ADDR missing")
			return
		}
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
			PoolSize: 10,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			logger.Warning("redis ping failed", logger.LoggerOptions{Key: "error", Data: pingErr})
		}
		instance = &RedisClient{Client: client}
		logger.Info("connected to redis successfully")
	})
	if instance == nil && err == nil {
		err = errors.New("redis client not initialised")
	}
	return instance, err
}
