package repository

import (
	"context"

	"github.com/map-memoir/backend/internal/domain"
)

// GeocodeRepository - интерфейс внешнего геокодера.
// Отсутствие совпадения - это (nil, nil), ошибка означает сбой запроса.
type GeocodeRepository interface {
	Geocode(ctx context.Context, name string) (*domain.Location, error)
}
