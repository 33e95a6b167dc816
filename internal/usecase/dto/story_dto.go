package dto

import "github.com/map-memoir/backend/internal/domain"

// GenerateTimelineRequest - запрос генерации таймлайна по локациям
type GenerateTimelineRequest struct {
	Locations []string `json:"locations" validate:"required,min=1,dive,min=1"`
}

// GenerateTimelineResponse - события таймлайна поездки
type GenerateTimelineResponse struct {
	Timeline []string `json:"timeline"`
}

// CreateStoryRequest - запрос создания истории
type CreateStoryRequest struct {
	Locations       []string `json:"locations" validate:"required,min=1,dive,min=1"`
	Timeline        []string `json:"timeline"`
	VoiceTranscript *string  `json:"voice_transcript"`
	Theme           string   `json:"theme"`
	Title           string   `json:"title"`
}

// CreateStoryFromTextRequest - запрос создания истории из свободного текста
type CreateStoryFromTextRequest struct {
	Text  string `json:"text" validate:"required,min=2"`
	Theme string `json:"theme"`
	Title string `json:"title"`
}

// UpdateStoryRequest - частичное обновление истории
type UpdateStoryRequest struct {
	Title   *string `json:"title"`
	Story   *string `json:"story"`
	Summary *string `json:"summary"`
	Theme   *string `json:"theme"`
}

// ListStoriesResponse - страница сохранённых историй
type ListStoriesResponse struct {
	Stories []domain.Story `json:"stories"`
	Total   int            `json:"total"`
}
