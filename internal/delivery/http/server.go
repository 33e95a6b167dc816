package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/config"
	"github.com/map-memoir/backend/internal/delivery/http/handler"
	"github.com/map-memoir/backend/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	locationHandler    *handler.LocationHandler
	storyHandler       *handler.StoryHandler
	speechHandler      *handler.SpeechHandler
	earthStudioHandler *handler.EarthStudioHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	locationHandler *handler.LocationHandler,
	storyHandler *handler.StoryHandler,
	speechHandler *handler.SpeechHandler,
	earthStudioHandler *handler.EarthStudioHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Map Memoir Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		locationHandler:    locationHandler,
		storyHandler:       storyHandler,
		speechHandler:      speechHandler,
		earthStudioHandler: earthStudioHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Location routes
	api.Post("/locations/extract", s.locationHandler.ExtractLocations)
	api.Post("/locations/geocode", s.locationHandler.Geocode)
	api.Post("/locations/optimize", s.locationHandler.OptimizeOrder)
	api.Post("/locations/statistics", s.locationHandler.TripStatistics)
	api.Post("/locations/process", s.locationHandler.ProcessLocations)

	// Timeline
	api.Post("/timeline", s.storyHandler.GenerateTimeline)

	// Story routes
	api.Post("/stories", s.storyHandler.CreateStory)
	api.Post("/stories/from-text", s.storyHandler.CreateStoryFromText)
	api.Get("/stories", s.storyHandler.ListStories)
	api.Get("/stories/:id", s.storyHandler.GetStory)
	api.Put("/stories/:id", s.storyHandler.UpdateStory)
	api.Delete("/stories/:id", s.storyHandler.DeleteStory)

	// Speech routes
	api.Post("/speech/synthesize", s.speechHandler.Synthesize)
	api.Get("/speech/voices", s.speechHandler.ListVoices)

	// Earth Studio routes
	api.Post("/earth-studio/projects", s.earthStudioHandler.CreateProject)
	api.Post("/earth-studio/from-text", s.earthStudioHandler.CreateFromText)
	api.Post("/earth-studio/preview", s.earthStudioHandler.Preview)
	api.Get("/earth-studio/styles", s.earthStudioHandler.GetStyles)
	api.Post("/earth-studio/validate", s.earthStudioHandler.ValidateDocument)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
