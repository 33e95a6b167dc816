package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/pkg/errors"
	"github.com/map-memoir/backend/internal/pkg/utils"
	"github.com/map-memoir/backend/internal/pkg/validator"
	"github.com/map-memoir/backend/internal/usecase"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

// EarthStudioHandler - обработчик генерации Earth Studio проектов
type EarthStudioHandler struct {
	earthStudioUC *usecase.EarthStudioUseCase
	locationUC    *usecase.LocationUseCase
	storyUC       *usecase.StoryUseCase
	logger        *zap.Logger
}

// NewEarthStudioHandler - создание нового EarthStudioHandler
func NewEarthStudioHandler(
	earthStudioUC *usecase.EarthStudioUseCase,
	locationUC *usecase.LocationUseCase,
	storyUC *usecase.StoryUseCase,
	logger *zap.Logger,
) *EarthStudioHandler {
	return &EarthStudioHandler{
		earthStudioUC: earthStudioUC,
		locationUC:    locationUC,
		storyUC:       storyUC,
		logger:        logger,
	}
}

// CreateProject godoc
// @Summary Создание Earth Studio проекта по списку локаций
// @Description Геокодирует названия мест, синтезирует траекторию камеры и возвращает проект вместе с экспортным документом
// @Tags EarthStudio
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Локации, таймлайн и стиль анимации"
// @Success 200 {object} utils.SuccessResponse{data=dto.CreateProjectResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/earth-studio/projects [post]
func (h *EarthStudioHandler) CreateProject(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	geocoded := h.locationUC.Geocode(c.Context(), req.Locations)

	project := h.earthStudioUC.BuildProject(geocoded, req.Timeline, req.Title, req.Style)
	document := h.earthStudioUC.ExportProject(project)

	return utils.SendSuccess(c, dto.CreateProjectResponse{
		Project:       project,
		Document:      document,
		LocationCount: len(geocoded),
		TotalDuration: project.Duration,
		KeyframeCount: len(project.Keyframes),
	}, nil)
}

// CreateFromText godoc
// @Summary Создание Earth Studio проекта из свободного текста
// @Description Извлекает локации из текста мемуара, генерирует таймлайн и строит анимацию
// @Tags EarthStudio
// @Accept json
// @Produce json
// @Param request body dto.ProjectFromTextRequest true "Текст воспоминаний"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProjectFromTextResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/earth-studio/from-text [post]
func (h *EarthStudioHandler) CreateFromText(c *fiber.Ctx) error {
	var req dto.ProjectFromTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	extracted, _ := h.storyUC.ExtractLocations(c.Context(), req.Text)
	if len(extracted) == 0 {
		return utils.SendError(c, errors.ErrNoLocationsFound)
	}

	geocoded := h.locationUC.Geocode(c.Context(), extracted)
	timeline := h.storyUC.GenerateTimeline(c.Context(), extracted)

	project := h.earthStudioUC.BuildProject(geocoded, timeline, req.Title, req.VideoStyle)
	document := h.earthStudioUC.ExportProject(project)

	style := req.VideoStyle
	if style == "" {
		style = domain.DefaultStyleName
	}

	return utils.SendSuccess(c, dto.ProjectFromTextResponse{
		OriginalText:       req.Text,
		ExtractedLocations: extracted,
		GeocodedLocations:  geocoded,
		Timeline:           timeline,
		Project:            project,
		Document:           document,
		VideoStyle:         style,
	}, nil)
}

// Preview godoc
// @Summary Предпросмотр анимации без полного синтеза
// @Description Строит упрощённую траекторию по уже геокодированным локациям вместе с перелётами и оценкой времени рендера
// @Tags EarthStudio
// @Accept json
// @Produce json
// @Param request body dto.PreviewRequest true "Геокодированные локации и стиль"
// @Success 200 {object} utils.SuccessResponse{data=dto.PreviewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/earth-studio/preview [post]
func (h *EarthStudioHandler) Preview(c *fiber.Ctx) error {
	var req dto.PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	preview := h.earthStudioUC.Preview(req.Locations, req.Style)

	return utils.SendSuccess(c, preview, nil)
}

// GetStyles godoc
// @Summary Список доступных стилей анимации
// @Tags EarthStudio
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StylesResponse}
// @Router /api/v1/earth-studio/styles [get]
func (h *EarthStudioHandler) GetStyles(c *fiber.Ctx) error {
	names := domain.ListStylePresets()

	styles := make([]domain.StylePreset, 0, len(names))
	for _, name := range names {
		styles = append(styles, domain.GetStylePreset(name))
	}

	return utils.SendSuccess(c, dto.StylesResponse{Styles: styles}, &utils.Meta{
		Total: len(styles),
	})
}

// ValidateDocument godoc
// @Summary Структурная проверка экспортного документа
// @Description Проверяет документ на совместимость с Earth Studio и возвращает полный список найденных проблем
// @Tags EarthStudio
// @Accept json
// @Produce json
// @Param request body object true "Экспортный документ"
// @Success 200 {object} utils.SuccessResponse{data=dto.ValidateDocumentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/earth-studio/validate [post]
func (h *EarthStudioHandler) ValidateDocument(c *fiber.Ctx) error {
	var doc map[string]interface{}
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	valid, validationErrors := h.earthStudioUC.ValidateDocument(doc)

	return utils.SendSuccess(c, dto.ValidateDocumentResponse{
		Valid:  valid,
		Errors: validationErrors,
	}, nil)
}
