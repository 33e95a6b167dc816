package repository

import (
	"context"

	"github.com/map-memoir/backend/internal/domain"
)

// StoryRepository - хранилище мемуаров
type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) error
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	List(ctx context.Context, limit, offset int) ([]domain.Story, int, error)
	Update(ctx context.Context, story *domain.Story) error
	Delete(ctx context.Context, id string) error
}
