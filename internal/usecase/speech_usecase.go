package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
	apperrors "github.com/map-memoir/backend/internal/pkg/errors"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

// themeVoices - голос по теме истории; темы без записи получают voice по умолчанию
var themeVoices = map[string]string{
	"adventure":   "onyx",
	"romantic":    "nova",
	"documentary": "alloy",
	"family":      "shimmer",
	"mystery":     "echo",
}

const defaultVoice = "alloy"

// SpeechUseCase - озвучивание историй через упорядоченный список
// TTS-провайдеров: первый успешный ответ выигрывает, сбои отдельных
// провайдеров логируются и не всплывают
type SpeechUseCase struct {
	providers []repository.SpeechProvider
	logger    *zap.Logger
}

// NewSpeechUseCase - создание нового SpeechUseCase
func NewSpeechUseCase(providers []repository.SpeechProvider, logger *zap.Logger) *SpeechUseCase {
	return &SpeechUseCase{
		providers: providers,
		logger:    logger,
	}
}

// VoiceForTheme возвращает голосовой профиль для темы истории
func (uc *SpeechUseCase) VoiceForTheme(theme, voiceOverride string) domain.VoiceProfile {
	voice := voiceOverride
	if voice == "" {
		voice = themeVoices[theme]
	}
	if voice == "" {
		voice = defaultVoice
	}

	return domain.VoiceProfile{
		VoiceID:      voice,
		LanguageCode: "en-US",
		SpeakingRate: 1.0,
		Pitch:        0,
	}
}

// Synthesize озвучивает текст, перебирая провайдеров по приоритету.
// Ошибка возвращается только когда отказали все провайдеры.
func (uc *SpeechUseCase) Synthesize(
	ctx context.Context,
	req dto.SynthesizeSpeechRequest,
) (*domain.SpeechResult, error) {
	profile := uc.VoiceForTheme(req.Theme, req.Voice)

	for _, provider := range uc.providers {
		result, err := provider.Synthesize(ctx, req.Text, profile)
		if err != nil {
			uc.logger.Warn("Speech provider failed, trying next",
				zap.String("provider", provider.Name()),
				zap.Error(err))
			continue
		}

		uc.logger.Info("Speech synthesized",
			zap.String("provider", result.Provider),
			zap.String("voice", profile.VoiceID),
			zap.Int("audio_bytes", len(result.Audio)))

		return result, nil
	}

	return nil, apperrors.ErrSpeechSynthesisFailed
}

// ListVoices возвращает доступные голосовые профили по темам
func (uc *SpeechUseCase) ListVoices() []dto.VoiceOption {
	voices := []dto.VoiceOption{
		{Theme: "adventure", VoiceID: "onyx"},
		{Theme: "romantic", VoiceID: "nova"},
		{Theme: "documentary", VoiceID: "alloy"},
		{Theme: "family", VoiceID: "shimmer"},
		{Theme: "mystery", VoiceID: "echo"},
	}
	return voices
}
