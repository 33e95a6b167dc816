package repository

import (
	"context"
	"time"

	"github.com/map-memoir/backend/internal/domain"
)

// CacheRepository - кеш результатов геокодирования и других дорогих вызовов
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetLocation(ctx context.Context, name string) (*domain.Location, error)
	SetLocation(ctx context.Context, name string, loc *domain.Location, ttl time.Duration) error
}
