package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetLocation возвращает закешированный результат геокодирования или nil при промахе
func (r *cacheRepository) GetLocation(ctx context.Context, name string) (*domain.Location, error) {
	raw, err := r.Get(ctx, locationKey(name))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var loc domain.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		r.logger.Warn("Failed to unmarshal cached location", zap.String("name", name), zap.Error(err))
		return nil, nil
	}

	return &loc, nil
}

func (r *cacheRepository) SetLocation(ctx context.Context, name string, loc *domain.Location, ttl time.Duration) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	return r.Set(ctx, locationKey(name), raw, ttl)
}

func locationKey(name string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(name))
}
