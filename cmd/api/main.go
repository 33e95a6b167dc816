package main

// @title Map Memoir API
// @version 1.0.0
// @description Бэкенд для генерации видео-мемуаров о путешествиях. Превращает текст воспоминаний в историю, озвучку и анимацию полёта камеры для Google Earth Studio.
// @description
// @description Основные возможности:
// @description - Извлечение и геокодирование локаций из свободного текста
// @description - Генерация истории путешествия и таймлайна поездки
// @description - Синтез речи через цепочку TTS-провайдеров
// @description - Синтез траектории камеры и экспорт Earth Studio проекта

// @contact.name API Support
// @contact.email support@map-memoir.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/map-memoir/backend/docs/swagger"
	"github.com/map-memoir/backend/internal/config"
	httpDelivery "github.com/map-memoir/backend/internal/delivery/http"
	"github.com/map-memoir/backend/internal/delivery/http/handler"
	"github.com/map-memoir/backend/internal/domain/repository"
	"github.com/map-memoir/backend/internal/infrastructure/elevenlabs"
	"github.com/map-memoir/backend/internal/infrastructure/gemini"
	"github.com/map-memoir/backend/internal/infrastructure/nominatim"
	"github.com/map-memoir/backend/internal/infrastructure/openai"
	"github.com/map-memoir/backend/internal/pkg/logger"
	"github.com/map-memoir/backend/internal/repository/cache"
	"github.com/map-memoir/backend/internal/repository/postgres"
	"github.com/map-memoir/backend/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Map Memoir Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	storyRepo := postgres.NewStoryRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocodeRepo := nominatim.NewNominatimClient(&cfg.Geocoding, log)

	log.Info("Repositories initialized")

	// 7. Initialize AI and TTS providers.
	// Порядок задаёт приоритет: используется первый успешный ответ.
	openaiClient := openai.NewClient(&cfg.OpenAI, log)
	geminiClient := gemini.NewClient(&cfg.Gemini, log)
	elevenlabsClient := elevenlabs.NewClient(&cfg.ElevenLabs, log)

	textGenerators := []repository.TextGenerator{openaiClient, geminiClient}
	speechProviders := []repository.SpeechProvider{elevenlabsClient, openaiClient}

	// 8. Initialize Use Cases
	locationUC := usecase.NewLocationUseCase(
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	storyUC := usecase.NewStoryUseCase(
		textGenerators,
		storyRepo,
		locationUC,
		log,
	)

	speechUC := usecase.NewSpeechUseCase(speechProviders, log)

	earthStudioUC := usecase.NewEarthStudioUseCase(log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	locationHandler := handler.NewLocationHandler(locationUC, storyUC, log)
	storyHandler := handler.NewStoryHandler(storyUC, log)
	speechHandler := handler.NewSpeechHandler(speechUC, log)
	earthStudioHandler := handler.NewEarthStudioHandler(earthStudioUC, locationUC, storyUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		locationHandler,
		storyHandler,
		speechHandler,
		earthStudioHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
