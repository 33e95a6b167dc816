package dto

import "github.com/map-memoir/backend/internal/domain"

// CreateProjectRequest - запрос на создание Earth Studio проекта по названиям мест
type CreateProjectRequest struct {
	Locations []string `json:"locations" validate:"required,min=1,dive,min=1"`
	Timeline  []string `json:"timeline"`
	Title     string   `json:"title"`
	Style     string   `json:"style"`
}

// ProjectFromTextRequest - запрос на создание проекта из свободного текста
type ProjectFromTextRequest struct {
	Text       string `json:"text" validate:"required,min=2"`
	Title      string `json:"title"`
	VideoStyle string `json:"video_style"`
}

// PreviewRequest - запрос предпросмотра анимации по геокодированным локациям
type PreviewRequest struct {
	Locations []domain.Location `json:"locations" validate:"required,min=1"`
	Style     string            `json:"style"`
}

// CreateProjectResponse - созданный проект вместе с экспортным документом
type CreateProjectResponse struct {
	Project       *domain.Project     `json:"project"`
	Document      *EarthStudioDocument `json:"earth_studio_document"`
	LocationCount int                 `json:"location_count"`
	TotalDuration float64             `json:"total_duration"`
	KeyframeCount int                 `json:"keyframes_count"`
}

// ProjectFromTextResponse - результат конвертации текста в проект
type ProjectFromTextResponse struct {
	OriginalText       string               `json:"original_text"`
	ExtractedLocations []string             `json:"extracted_locations"`
	GeocodedLocations  []domain.Location    `json:"geocoded_locations"`
	Timeline           []string             `json:"timeline"`
	Project            *domain.Project      `json:"project"`
	Document           *EarthStudioDocument `json:"earth_studio_document"`
	VideoStyle         string               `json:"video_style"`
}

// FlightLeg - перелёт между соседними локациями предпросмотра
type FlightLeg struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
	FlightTime float64 `json:"flight_time"`
}

// PreviewResponse - данные предпросмотра анимации
type PreviewResponse struct {
	Keyframes           []domain.Keyframe `json:"keyframes"`
	Duration            float64           `json:"duration"`
	LocationsCount      int               `json:"locations_count"`
	CameraPositions     int               `json:"camera_positions"`
	EstimatedRenderTime string            `json:"estimated_render_time"`
	FlightPath          []FlightLeg       `json:"flight_path"`
}

// StylesResponse - список доступных пресетов
type StylesResponse struct {
	Styles []domain.StylePreset `json:"styles"`
}

// ValidateDocumentResponse - результат структурной проверки документа
type ValidateDocumentResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// EarthStudioDocument - экспортный формат, потребляемый инструментом анимации
type EarthStudioDocument struct {
	Version  string          `json:"version"`
	Project  DocumentProject `json:"project"`
	Timeline DocumentTimeline `json:"timeline"`
	Effects  []DocumentEffect `json:"effects"`
}

type DocumentProject struct {
	Name       string            `json:"name"`
	Duration   float64           `json:"duration"`
	FPS        int               `json:"fps"`
	Resolution domain.Resolution `json:"resolution"`
}

type DocumentTimeline struct {
	Tracks []DocumentTrack `json:"tracks"`
}

type DocumentTrack struct {
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Keyframes []DocumentKeyframe `json:"keyframes"`
}

type DocumentKeyframe struct {
	Time          float64       `json:"time"`
	Value         KeyframeValue `json:"value"`
	Interpolation string        `json:"interpolation"`
}

type KeyframeValue struct {
	Position KeyframePosition `json:"position"`
	Rotation KeyframeRotation `json:"rotation"`
}

type KeyframePosition struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Altitude float64 `json:"altitude"`
}

type KeyframeRotation struct {
	Heading float64 `json:"heading"`
	Tilt    float64 `json:"tilt"`
	Roll    float64 `json:"roll"`
}

type DocumentEffect struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
