package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/pkg/utils"
	"github.com/map-memoir/backend/internal/pkg/validator"
	"github.com/map-memoir/backend/internal/usecase"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

// LocationHandler - обработчик операций над локациями
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	storyUC    *usecase.StoryUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(
	locationUC *usecase.LocationUseCase,
	storyUC *usecase.StoryUseCase,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		storyUC:    storyUC,
		logger:     logger,
	}
}

// ExtractLocations godoc
// @Summary Извлечение локаций из текста
// @Description Находит названия мест в свободном тексте: через языковую модель с откатом на поиск по словарю
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.ExtractLocationsRequest true "Текст для анализа"
// @Success 200 {object} utils.SuccessResponse{data=dto.ExtractLocationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/extract [post]
func (h *LocationHandler) ExtractLocations(c *fiber.Ctx) error {
	var req dto.ExtractLocationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	locations, source := h.storyUC.ExtractLocations(c.Context(), req.Text)

	return utils.SendSuccess(c, dto.ExtractLocationsResponse{
		Locations: locations,
		Source:    source,
	}, &utils.Meta{
		Total: len(locations),
	})
}

// Geocode godoc
// @Summary Геокодирование списка названий
// @Description Преобразует названия мест в координаты: кеш, затем словарь известных городов, затем внешний геокодер
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.GeocodeRequest true "Названия мест"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/geocode [post]
func (h *LocationHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	locations := h.locationUC.Geocode(c.Context(), req.Locations)

	geocoded := 0
	for _, loc := range locations {
		if loc.HasCoordinates() {
			geocoded++
		}
	}

	return utils.SendSuccess(c, dto.GeocodeResponse{
		Locations: locations,
		Geocoded:  geocoded,
	}, &utils.Meta{
		Total: len(locations),
	})
}

// OptimizeOrder godoc
// @Summary Оптимизация порядка посещения
// @Description Переупорядочивает локации жадным алгоритмом ближайшего соседа для сокращения длины маршрута
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.OptimizeOrderRequest true "Геокодированные локации"
// @Success 200 {object} utils.SuccessResponse{data=dto.OptimizeOrderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/optimize [post]
func (h *LocationHandler) OptimizeOrder(c *fiber.Ctx) error {
	var req dto.OptimizeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	optimized := h.locationUC.OptimizeOrder(req.Locations)

	return utils.SendSuccess(c, dto.OptimizeOrderResponse{
		Locations: optimized,
	}, nil)
}

// TripStatistics godoc
// @Summary Статистика маршрута
// @Description Считает суммарную дистанцию, оценку времени в пути и ограничивающий прямоугольник маршрута
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.TripStatisticsRequest true "Геокодированные локации"
// @Success 200 {object} utils.SuccessResponse{data=domain.TripStatistics}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/statistics [post]
func (h *LocationHandler) TripStatistics(c *fiber.Ctx) error {
	var req dto.TripStatisticsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stats := h.locationUC.TripStatistics(req.Locations)

	return utils.SendSuccess(c, stats, nil)
}

// ProcessLocations godoc
// @Summary Полный конвейер обработки локаций
// @Description Очистка названий, валидация, геокодирование, оптимизация порядка и статистика за один запрос
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.ProcessLocationsRequest true "Сырые названия мест"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProcessLocationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/process [post]
func (h *LocationHandler) ProcessLocations(c *fiber.Ctx) error {
	var req dto.ProcessLocationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	cleaned, validated, geocoded, optimized, stats := h.locationUC.ProcessLocations(c.Context(), req.Locations)

	return utils.SendSuccess(c, dto.ProcessLocationsResponse{
		OriginalLocations:  req.Locations,
		CleanedLocations:   cleaned,
		ValidatedLocations: validated,
		GeocodedLocations:  geocoded,
		OptimizedLocations: optimized,
		TripStatistics:     stats,
	}, nil)
}
