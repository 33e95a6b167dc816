package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/pkg/utils"
	"github.com/map-memoir/backend/internal/pkg/validator"
	"github.com/map-memoir/backend/internal/usecase"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

// StoryHandler - обработчик историй путешествий
type StoryHandler struct {
	storyUC *usecase.StoryUseCase
	logger  *zap.Logger
}

// NewStoryHandler - создание нового StoryHandler
func NewStoryHandler(storyUC *usecase.StoryUseCase, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{
		storyUC: storyUC,
		logger:  logger,
	}
}

// GenerateTimeline godoc
// @Summary Генерация таймлайна поездки
// @Description Строит последовательность событий поездки по списку локаций
// @Tags Stories
// @Accept json
// @Produce json
// @Param request body dto.GenerateTimelineRequest true "Локации поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.GenerateTimelineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/timeline [post]
func (h *StoryHandler) GenerateTimeline(c *fiber.Ctx) error {
	var req dto.GenerateTimelineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	timeline := h.storyUC.GenerateTimeline(c.Context(), req.Locations)

	return utils.SendSuccess(c, dto.GenerateTimelineResponse{
		Timeline: timeline,
	}, &utils.Meta{
		Total: len(timeline),
	})
}

// CreateStory godoc
// @Summary Создание истории путешествия
// @Description Генерирует и сохраняет историю по локациям и таймлайну
// @Tags Stories
// @Accept json
// @Produce json
// @Param request body dto.CreateStoryRequest true "Параметры истории"
// @Success 200 {object} utils.SuccessResponse{data=domain.Story}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stories [post]
func (h *StoryHandler) CreateStory(c *fiber.Ctx) error {
	var req dto.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	story, err := h.storyUC.CreateStory(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, story, nil)
}

// CreateStoryFromText godoc
// @Summary Создание истории из свободного текста
// @Description Извлекает локации из текста и создаёт историю по ним
// @Tags Stories
// @Accept json
// @Produce json
// @Param request body dto.CreateStoryFromTextRequest true "Текст воспоминаний"
// @Success 200 {object} utils.SuccessResponse{data=domain.Story}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stories/from-text [post]
func (h *StoryHandler) CreateStoryFromText(c *fiber.Ctx) error {
	var req dto.CreateStoryFromTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	story, locations, err := h.storyUC.CreateStoryFromText(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"story":               story,
		"extracted_locations": locations,
	}, nil)
}

// GetStory godoc
// @Summary Получение истории по идентификатору
// @Tags Stories
// @Produce json
// @Param id path string true "Идентификатор истории"
// @Success 200 {object} utils.SuccessResponse{data=domain.Story}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stories/{id} [get]
func (h *StoryHandler) GetStory(c *fiber.Ctx) error {
	id := c.Params("id")

	story, err := h.storyUC.GetStory(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, story, nil)
}

// ListStories godoc
// @Summary Список сохранённых историй
// @Tags Stories
// @Produce json
// @Param limit query int false "Максимальное количество результатов" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.ListStoriesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stories [get]
func (h *StoryHandler) ListStories(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	stories, total, err := h.storyUC.ListStories(c.Context(), limit, offset)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListStoriesResponse{
		Stories: stories,
		Total:   total,
	}, &utils.Meta{
		Total: total,
		Limit: limit,
	})
}

// UpdateStory godoc
// @Summary Частичное обновление истории
// @Tags Stories
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор истории"
// @Param request body dto.UpdateStoryRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.Story}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stories/{id} [put]
func (h *StoryHandler) UpdateStory(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	story, err := h.storyUC.UpdateStory(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, story, nil)
}

// DeleteStory godoc
// @Summary Удаление истории
// @Tags Stories
// @Produce json
// @Param id path string true "Идентификатор истории"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stories/{id} [delete]
func (h *StoryHandler) DeleteStory(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.storyUC.DeleteStory(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}
