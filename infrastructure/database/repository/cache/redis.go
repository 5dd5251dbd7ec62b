package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	redisClient "certverify.io/infrastructure/database/connection/cache"
	"certverify.io/infrastructure/logger"
)

var Cache = &RedisRepository{}

type RedisRepository struct {
	Client *redis.Client
}

func (redisRepo *RedisRepository) preRequest() bool {
	if redisRepo.Client == nil {
		client, err := redisClient.GetInstance()
		if err != nil {
			logger.Error("redis repository initialisation failed", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			return false
		}
		redisRepo.Client = client.Client
		logger.Info("redis repository initialisation complete")
	}
	return true
}

func (redisRepo *RedisRepository) CreateEntry(key string, payload interface{}, ttl time.Duration) bool {
	if !redisRepo.preRequest() {
		return false
	}
	ctx := context.Background()
	_, err := redisRepo.Client.Set(ctx, key, payload, ttl).Result()
	if err != nil {
		logger.Error("redis error occured while running CreateEntry", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return true
}

func (redisRepo *RedisRepository) FindOne(key string) *string {
	if !redisRepo.preRequest() {
		return nil
	}
	ctx := context.Background()

	result, err := redisRepo.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		logger.Error("redis error occured while running FindOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil
	}
	return &result
}

func (redisRepo *RedisRepository) DeleteOne(key string) bool {
	if !redisRepo.preRequest() {
		return false
	}
	ctx := context.Background()

	result, err := redisRepo.Client.Del(ctx, key).Result()
	if err != nil {
		logger.Error("redis error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return result == 1
}

// IncrementAndSwap increments counterKey and replaces the value at headKey
// with head in one MULTI/EXEC, returning the new count and the replaced head.
// The head is nil when headKey did not exist.
func (redisRepo *RedisRepository) IncrementAndSwap(counterKey string, headKey string, head string) (int64, *string, error) {
	if !redisRepo.preRequest() {
		return 0, nil, errors.New("cache unavailable")
	}
	ctx := context.Background()

	var incr *redis.IntCmd
	var swap *redis.StatusCmd
	_, err := redisRepo.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, counterKey)
		swap = pipe.SetArgs(ctx, headKey, head, redis.SetArgs{Get: true})
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Error("redis error occured while running IncrementAndSwap", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: counterKey,
		})
		return 0, nil, err
	}
	count, err := incr.Result()
	if err != nil {
		return 0, nil, err
	}
	previous, err := swap.Result()
	if errors.Is(err, redis.Nil) {
		return count, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return count, &previous, nil
}
