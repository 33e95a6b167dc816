package repository

import "context"

// GenerationOptions - параметры запроса к языковой модели
type GenerationOptions struct {
	Temperature float64
	MaxTokens   int
}

// TextGenerator - провайдер генерации текста. Провайдеры выстраиваются в
// упорядоченную цепочку: используется ответ первого успешного.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}
