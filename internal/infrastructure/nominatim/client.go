package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/config"
	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewNominatimClient создает новый клиент для Nominatim API
func NewNominatimClient(cfg *config.GeocodingConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode возвращает лучшее совпадение для названия места.
// Отсутствие совпадения - это (nil, nil), не ошибка.
func (c *client) Geocode(ctx context.Context, name string) (*domain.Location, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1",
		c.baseURL, url.QueryEscape(name))

	c.logger.Debug("Calling Nominatim search API", zap.String("query", name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		c.logger.Debug("No geocoding match", zap.String("query", name))
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in response: %w", err)
	}

	return &domain.Location{
		Name:      name,
		FullName:  results[0].DisplayName,
		Latitude:  &lat,
		Longitude: &lon,
	}, nil
}
