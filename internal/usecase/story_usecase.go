package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
	apperrors "github.com/map-memoir/backend/internal/pkg/errors"
	"github.com/map-memoir/backend/internal/pkg/utils"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

const defaultTheme = "adventure"

// StoryUseCase - генерация таймлайнов и историй через цепочку AI-провайдеров
// и CRUD сохранённых мемуаров. Провайдеры пробуются по порядку до первого
// успеха; при полном отказе включаются детерминированные заготовки.
type StoryUseCase struct {
	generators []repository.TextGenerator
	storyRepo  repository.StoryRepository
	locationUC *LocationUseCase
	logger     *zap.Logger
}

// NewStoryUseCase - создание нового StoryUseCase
func NewStoryUseCase(
	generators []repository.TextGenerator,
	storyRepo repository.StoryRepository,
	locationUC *LocationUseCase,
	logger *zap.Logger,
) *StoryUseCase {
	return &StoryUseCase{
		generators: generators,
		storyRepo:  storyRepo,
		locationUC: locationUC,
		logger:     logger,
	}
}

// generate опрашивает провайдеров по приоритету и возвращает первый успешный ответ
func (uc *StoryUseCase) generate(
	ctx context.Context,
	prompt string,
	opts repository.GenerationOptions,
) (string, error) {
	var lastErr error

	for _, gen := range uc.generators {
		text, err := gen.Generate(ctx, prompt, opts)
		if err != nil {
			uc.logger.Warn("Text generator failed, trying next",
				zap.String("provider", gen.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}
		return text, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no text generators configured")
	}
	return "", lastErr
}

// GenerateTimeline строит таймлайн поездки по списку локаций.
// Любой сбой генерации или разбора ответа заканчивается заготовкой
// "Visit X", наружу ошибка не отдаётся.
func (uc *StoryUseCase) GenerateTimeline(ctx context.Context, locations []string) []string {
	var sb strings.Builder
	for _, loc := range locations {
		sb.WriteString("- ")
		sb.WriteString(loc)
		sb.WriteString("\n")
	}

	prompt := fmt.Sprintf(`You are a travel storyteller. Given an ordered list of locations, create a plausible and engaging timeline of events for a trip. The trip starts at the first location and ends at the last. Make it sound like an exciting journey. Keep each timeline event concise, like a chapter title.

Locations:
%s
Generate a timeline of events for this trip. Return the result as a JSON object with a "timeline" field containing an array of event strings.

Example format:
{
  "timeline": [
    "Chapter 1: Arrival in Paris",
    "Chapter 2: Exploring the Louvre",
    "Chapter 3: Journey to Rome"
  ]
}`, sb.String())

	text, err := uc.generate(ctx, prompt, repository.GenerationOptions{Temperature: 0.7, MaxTokens: 2048})
	if err != nil {
		uc.logger.Warn("Timeline generation failed, using fallback", zap.Error(err))
		return fallbackTimeline(locations)
	}

	timeline := utils.StringsFromJSONField(utils.DecodeModelJSON(text), "timeline")
	if len(timeline) == 0 {
		// Модель вернула не JSON: пробуем построчный разбор
		timeline = utils.ExtractListItems(text)
	}
	if len(timeline) == 0 {
		timeline = fallbackTimeline(locations)
	}

	return timeline
}

func fallbackTimeline(locations []string) []string {
	timeline := make([]string, 0, len(locations))
	for _, loc := range locations {
		timeline = append(timeline, "Visit "+loc)
	}
	return timeline
}

// GenerateStory генерирует историю по локациям, таймлайну и необязательной
// голосовой заметке пользователя
func (uc *StoryUseCase) GenerateStory(
	ctx context.Context,
	locations []string,
	timeline []string,
	voiceTranscript *string,
	theme string,
) *domain.GeneratedStory {
	if theme == "" {
		theme = defaultTheme
	}

	locationsText := strings.Join(locations, ", ")

	var timelineText strings.Builder
	for i, event := range timeline {
		fmt.Fprintf(&timelineText, "%d. %s\n", i+1, event)
	}

	voiceContext := ""
	if voiceTranscript != nil && *voiceTranscript != "" {
		voiceContext = fmt.Sprintf(
			"\n\nUser's personal input: '%s'\nIncorporate this personal touch into the story.",
			*voiceTranscript,
		)
	}

	prompt := fmt.Sprintf(`You are a creative storyteller. Create an engaging travel story based on the following information:

**Locations visited:** %s

**Timeline of events:**
%s
**Story theme:** %s%s

Create a compelling narrative that brings this journey to life. The story should be engaging, descriptive, and capture the essence of each location and event. Make it feel like a personal travel memoir.

Return the result as a JSON object with these fields:
- "title": A catchy title for the story
- "story": The full story content (500-800 words)
- "summary": A brief summary (50-100 words)`,
		locationsText, timelineText.String(), theme, voiceContext)

	fallback := &domain.GeneratedStory{
		Title: "Journey to " + locationsText,
		Story: fmt.Sprintf(
			"An unforgettable adventure through %s. Each destination brought new experiences and memories that will last a lifetime.",
			locationsText,
		),
		Summary: fmt.Sprintf("A travel story covering %d amazing locations.", len(locations)),
	}

	text, err := uc.generate(ctx, prompt, repository.GenerationOptions{Temperature: 0.8, MaxTokens: 3000})
	if err != nil {
		uc.logger.Warn("Story generation failed, using fallback", zap.Error(err))
		return fallback
	}

	parsed := utils.DecodeModelJSON(text)
	result := &domain.GeneratedStory{
		Title:   stringField(parsed, "title", fallback.Title),
		Story:   stringField(parsed, "story", fallback.Story),
		Summary: stringField(parsed, "summary", fallback.Summary),
	}

	return result
}

// ExtractLocations извлекает названия мест из свободного текста.
// Сначала AI, при сбое - поиск известных городов по ключевым словам.
func (uc *StoryUseCase) ExtractLocations(ctx context.Context, text string) ([]string, string) {
	prompt := fmt.Sprintf(`Extract all location names (cities, countries, landmarks, etc.) from the following text. Return only location names that are real places.

Text: "%s"

Return the result as a JSON object with a "locations" field containing an array of location names in the order they appear.`, text)

	response, err := uc.generate(ctx, prompt, repository.GenerationOptions{Temperature: 0.3, MaxTokens: 2048})
	if err == nil {
		locations := utils.StringsFromJSONField(utils.DecodeModelJSON(response), "locations")
		if len(locations) > 0 {
			return locations, "ai"
		}
	} else {
		uc.logger.Warn("AI location extraction failed, using keyword fallback", zap.Error(err))
	}

	return uc.locationUC.ExtractKeywordLocations(text), "keyword"
}

// CreateStory генерирует и сохраняет историю
func (uc *StoryUseCase) CreateStory(ctx context.Context, req dto.CreateStoryRequest) (*domain.Story, error) {
	timeline := req.Timeline
	if len(timeline) == 0 {
		timeline = uc.GenerateTimeline(ctx, req.Locations)
	}

	generated := uc.GenerateStory(ctx, req.Locations, timeline, req.VoiceTranscript, req.Theme)

	title := req.Title
	if title == "" {
		title = generated.Title
	}

	theme := req.Theme
	if theme == "" {
		theme = defaultTheme
	}

	now := time.Now().UTC()
	story := &domain.Story{
		ID:              uuid.NewString(),
		Title:           title,
		Story:           generated.Story,
		Summary:         generated.Summary,
		Locations:       req.Locations,
		Timeline:        timeline,
		VoiceTranscript: req.VoiceTranscript,
		Theme:           theme,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.storyRepo.Create(ctx, story); err != nil {
		uc.logger.Error("Failed to persist story", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	uc.logger.Info("Story created",
		zap.String("story_id", story.ID),
		zap.Int("locations", len(story.Locations)))

	return story, nil
}

// CreateStoryFromText извлекает локации из текста и создаёт историю по ним
func (uc *StoryUseCase) CreateStoryFromText(
	ctx context.Context,
	req dto.CreateStoryFromTextRequest,
) (*domain.Story, []string, error) {
	locations, _ := uc.ExtractLocations(ctx, req.Text)
	if len(locations) == 0 {
		return nil, nil, apperrors.ErrNoLocationsFound
	}

	story, err := uc.CreateStory(ctx, dto.CreateStoryRequest{
		Locations: locations,
		Theme:     req.Theme,
		Title:     req.Title,
	})
	if err != nil {
		return nil, nil, err
	}

	return story, locations, nil
}

// GetStory возвращает историю по идентификатору
func (uc *StoryUseCase) GetStory(ctx context.Context, id string) (*domain.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, id)
	if err == apperrors.ErrStoryNotFound {
		return nil, err
	}
	if err != nil {
		uc.logger.Error("Failed to load story", zap.String("story_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if story == nil {
		return nil, apperrors.ErrStoryNotFound
	}
	return story, nil
}

// ListStories возвращает страницу историй
func (uc *StoryUseCase) ListStories(ctx context.Context, limit, offset int) ([]domain.Story, int, error) {
	if limit <= 0 {
		limit = 20
	}

	stories, total, err := uc.storyRepo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list stories", zap.Error(err))
		return nil, 0, apperrors.ErrDatabaseError
	}
	return stories, total, nil
}

// UpdateStory применяет частичное обновление
func (uc *StoryUseCase) UpdateStory(
	ctx context.Context,
	id string,
	req dto.UpdateStoryRequest,
) (*domain.Story, error) {
	story, err := uc.GetStory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		story.Title = *req.Title
	}
	if req.Story != nil {
		story.Story = *req.Story
	}
	if req.Summary != nil {
		story.Summary = *req.Summary
	}
	if req.Theme != nil {
		story.Theme = *req.Theme
	}
	story.UpdatedAt = time.Now().UTC()

	if err := uc.storyRepo.Update(ctx, story); err != nil {
		uc.logger.Error("Failed to update story", zap.String("story_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return story, nil
}

// DeleteStory удаляет историю
func (uc *StoryUseCase) DeleteStory(ctx context.Context, id string) error {
	if _, err := uc.GetStory(ctx, id); err != nil {
		return err
	}

	if err := uc.storyRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete story", zap.String("story_id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}

func stringField(data map[string]interface{}, field, fallback string) string {
	if s, ok := data[field].(string); ok && s != "" {
		return s
	}
	return fallback
}
