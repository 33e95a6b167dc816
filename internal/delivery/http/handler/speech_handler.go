package handler

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/pkg/utils"
	"github.com/map-memoir/backend/internal/pkg/validator"
	"github.com/map-memoir/backend/internal/usecase"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

// SpeechHandler - обработчик синтеза речи
type SpeechHandler struct {
	speechUC *usecase.SpeechUseCase
	logger   *zap.Logger
}

// NewSpeechHandler - создание нового SpeechHandler
func NewSpeechHandler(speechUC *usecase.SpeechUseCase, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		speechUC: speechUC,
		logger:   logger,
	}
}

// Synthesize godoc
// @Summary Озвучивание текста истории
// @Description Синтезирует речь через цепочку провайдеров и возвращает аудио в base64
// @Tags Speech
// @Accept json
// @Produce json
// @Param request body dto.SynthesizeSpeechRequest true "Текст, тема и голос"
// @Success 200 {object} utils.SuccessResponse{data=dto.SynthesizeSpeechResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/speech/synthesize [post]
func (h *SpeechHandler) Synthesize(c *fiber.Ctx) error {
	var req dto.SynthesizeSpeechRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.speechUC.Synthesize(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SynthesizeSpeechResponse{
		AudioBase64: base64.StdEncoding.EncodeToString(result.Audio),
		MIMEType:    result.MIMEType,
		Provider:    result.Provider,
		Voice:       result.Voice,
		TextLength:  len(req.Text),
	}, nil)
}

// ListVoices godoc
// @Summary Список доступных голосов
// @Tags Speech
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ListVoicesResponse}
// @Router /api/v1/speech/voices [get]
func (h *SpeechHandler) ListVoices(c *fiber.Ctx) error {
	voices := h.speechUC.ListVoices()

	return utils.SendSuccess(c, dto.ListVoicesResponse{
		Voices: voices,
	}, &utils.Meta{
		Total: len(voices),
	})
}
