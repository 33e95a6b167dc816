package repository

import (
	"context"

	"github.com/map-memoir/backend/internal/domain"
)

// SpeechProvider - провайдер синтеза речи. Как и генераторы текста,
// провайдеры пробуются по приоритету до первого успеха.
type SpeechProvider interface {
	Name() string
	Synthesize(ctx context.Context, text string, profile domain.VoiceProfile) (*domain.SpeechResult, error)
}
