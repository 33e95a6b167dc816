package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
	apperrors "github.com/map-memoir/backend/internal/pkg/errors"
	"github.com/map-memoir/backend/internal/usecase"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

// MockSpeechProvider is a mock of SpeechProvider
type MockSpeechProvider struct {
	mock.Mock
	name string
}

func (m *MockSpeechProvider) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *MockSpeechProvider) Synthesize(ctx context.Context, text string, profile domain.VoiceProfile) (*domain.SpeechResult, error) {
	args := m.Called(ctx, text, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpeechResult), args.Error(1)
}

func TestSpeechUseCase_VoiceForTheme(t *testing.T) {
	uc := usecase.NewSpeechUseCase(nil, zap.NewNop())

	t.Run("theme voices", func(t *testing.T) {
		assert.Equal(t, "onyx", uc.VoiceForTheme("adventure", "").VoiceID)
		assert.Equal(t, "nova", uc.VoiceForTheme("romantic", "").VoiceID)
		assert.Equal(t, "alloy", uc.VoiceForTheme("documentary", "").VoiceID)
		assert.Equal(t, "shimmer", uc.VoiceForTheme("family", "").VoiceID)
		assert.Equal(t, "echo", uc.VoiceForTheme("mystery", "").VoiceID)
	})

	t.Run("unknown theme uses default voice", func(t *testing.T) {
		assert.Equal(t, "alloy", uc.VoiceForTheme("noir", "").VoiceID)
		assert.Equal(t, "alloy", uc.VoiceForTheme("", "").VoiceID)
	})

	t.Run("explicit voice overrides the theme", func(t *testing.T) {
		profile := uc.VoiceForTheme("adventure", "nova")
		assert.Equal(t, "nova", profile.VoiceID)
		assert.Equal(t, "en-US", profile.LanguageCode)
		assert.Equal(t, 1.0, profile.SpeakingRate)
	})
}

func TestSpeechUseCase_Synthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("primary provider wins", func(t *testing.T) {
		primary := &MockSpeechProvider{name: "primary"}
		primary.On("Synthesize", ctx, "hello", mock.Anything).
			Return(&domain.SpeechResult{Audio: []byte("mp3"), Provider: "primary", MIMEType: "audio/mpeg"}, nil)

		secondary := &MockSpeechProvider{name: "secondary"}

		uc := usecase.NewSpeechUseCase([]repository.SpeechProvider{primary, secondary}, zap.NewNop())
		result, err := uc.Synthesize(ctx, dto.SynthesizeSpeechRequest{Text: "hello", Theme: "adventure"})

		require.NoError(t, err)
		assert.Equal(t, "primary", result.Provider)
		secondary.AssertNotCalled(t, "Synthesize")
	})

	t.Run("falls back to secondary provider", func(t *testing.T) {
		primary := &MockSpeechProvider{name: "primary"}
		primary.On("Synthesize", ctx, "hello", mock.Anything).
			Return(nil, errors.New("quota exceeded"))

		secondary := &MockSpeechProvider{name: "secondary"}
		secondary.On("Synthesize", ctx, "hello", mock.Anything).
			Return(&domain.SpeechResult{Audio: []byte("mp3"), Provider: "secondary", MIMEType: "audio/mpeg"}, nil)

		uc := usecase.NewSpeechUseCase([]repository.SpeechProvider{primary, secondary}, zap.NewNop())
		result, err := uc.Synthesize(ctx, dto.SynthesizeSpeechRequest{Text: "hello"})

		require.NoError(t, err)
		assert.Equal(t, "secondary", result.Provider)
	})

	t.Run("error only when every provider fails", func(t *testing.T) {
		primary := &MockSpeechProvider{name: "primary"}
		primary.On("Synthesize", ctx, "hello", mock.Anything).
			Return(nil, errors.New("quota exceeded"))

		secondary := &MockSpeechProvider{name: "secondary"}
		secondary.On("Synthesize", ctx, "hello", mock.Anything).
			Return(nil, errors.New("timeout"))

		uc := usecase.NewSpeechUseCase([]repository.SpeechProvider{primary, secondary}, zap.NewNop())
		_, err := uc.Synthesize(ctx, dto.SynthesizeSpeechRequest{Text: "hello"})

		assert.Equal(t, apperrors.ErrSpeechSynthesisFailed, err)
	})

	t.Run("requested voice reaches the provider", func(t *testing.T) {
		provider := &MockSpeechProvider{}
		provider.On("Synthesize", ctx, "hello", mock.MatchedBy(func(p domain.VoiceProfile) bool {
			return p.VoiceID == "nova"
		})).Return(&domain.SpeechResult{Audio: []byte("mp3"), Provider: "mock"}, nil)

		uc := usecase.NewSpeechUseCase([]repository.SpeechProvider{provider}, zap.NewNop())
		_, err := uc.Synthesize(ctx, dto.SynthesizeSpeechRequest{Text: "hello", Voice: "nova"})

		require.NoError(t, err)
		provider.AssertExpectations(t)
	})
}

func TestSpeechUseCase_ListVoices(t *testing.T) {
	uc := usecase.NewSpeechUseCase(nil, zap.NewNop())
	voices := uc.ListVoices()

	require.Len(t, voices, 5)
	assert.Equal(t, dto.VoiceOption{Theme: "adventure", VoiceID: "onyx"}, voices[0])
}
