package dto

import "github.com/map-memoir/backend/internal/domain"

// ExtractLocationsRequest - запрос извлечения локаций из текста
type ExtractLocationsRequest struct {
	Text string `json:"text" validate:"required,min=2"`
}

// ExtractLocationsResponse - найденные в тексте локации
type ExtractLocationsResponse struct {
	Locations []string `json:"locations"`
	Source    string   `json:"source"`
}

// GeocodeRequest - запрос геокодирования списка названий
type GeocodeRequest struct {
	Locations []string `json:"locations" validate:"required,min=1,dive,min=1"`
}

// GeocodeResponse - результат геокодирования; неудачные записи содержат error
type GeocodeResponse struct {
	Locations []domain.Location `json:"locations"`
	Geocoded  int               `json:"geocoded_count"`
}

// OptimizeOrderRequest - запрос оптимизации порядка посещения
type OptimizeOrderRequest struct {
	Locations []domain.Location `json:"locations" validate:"required,min=1"`
}

// OptimizeOrderResponse - локации в оптимизированном порядке
type OptimizeOrderResponse struct {
	Locations []domain.Location `json:"locations"`
}

// TripStatisticsRequest - запрос статистики маршрута
type TripStatisticsRequest struct {
	Locations []domain.Location `json:"locations" validate:"required,min=1"`
}

// ProcessLocationsRequest - полный конвейер обработки сырых названий
type ProcessLocationsRequest struct {
	Locations []string `json:"locations" validate:"required,min=1"`
}

// ProcessLocationsResponse - результат каждого шага конвейера
type ProcessLocationsResponse struct {
	OriginalLocations  []string               `json:"original_locations"`
	CleanedLocations   []string               `json:"cleaned_locations"`
	ValidatedLocations []string               `json:"validated_locations"`
	GeocodedLocations  []domain.Location      `json:"geocoded_locations"`
	OptimizedLocations []domain.Location      `json:"optimized_locations"`
	TripStatistics     *domain.TripStatistics `json:"trip_statistics"`
}
