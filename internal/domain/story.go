package domain

import "time"

// Story - сохранённый мемуар путешествия
type Story struct {
	ID              string    `json:"story_id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Story           string    `json:"story" db:"story"`
	Summary         string    `json:"summary" db:"summary"`
	Locations       []string  `json:"locations" db:"-"`
	Timeline        []string  `json:"timeline" db:"-"`
	VoiceTranscript *string   `json:"voice_transcript,omitempty" db:"voice_transcript"`
	Theme           string    `json:"theme" db:"theme"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// GeneratedStory - результат генерации текста до сохранения
type GeneratedStory struct {
	Title   string `json:"title"`
	Story   string `json:"story"`
	Summary string `json:"summary"`
}

// SpeechResult - синтезированная озвучка истории
type SpeechResult struct {
	Audio    []byte  `json:"-"`
	MIMEType string  `json:"mime_type"`
	Provider string  `json:"provider"`
	Voice    string  `json:"voice"`
	Duration float64 `json:"duration_estimate,omitempty"`
}

// VoiceProfile - голосовой профиль для синтеза речи
type VoiceProfile struct {
	VoiceID      string  `json:"voice_id"`
	LanguageCode string  `json:"language_code"`
	SpeakingRate float64 `json:"speaking_rate"`
	Pitch        float64 `json:"pitch"`
}
