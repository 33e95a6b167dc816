package domain

// Keyframe - одна временная точка анимации камеры.
// Значение неизменяемо после создания; порядок внутри проекта задаётся временем.
type Keyframe struct {
	Time      float64 `json:"time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Heading   float64 `json:"heading"`
	Tilt      float64 `json:"tilt"`
	Roll      float64 `json:"roll"`
}

// Resolution - разрешение рендера
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ProjectSettings - настройки рендера Earth Studio проекта
type ProjectSettings struct {
	FPS        int        `json:"fps"`
	Resolution Resolution `json:"resolution"`
	Quality    string     `json:"quality"`
	MotionBlur bool       `json:"motion_blur"`
	Atmosphere bool       `json:"atmosphere"`
	Stars      bool       `json:"stars"`
}

// DefaultProjectSettings возвращает настройки рендера по умолчанию
func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		FPS:        30,
		Resolution: Resolution{Width: 1920, Height: 1080},
		Quality:    "high",
		MotionBlur: true,
		Atmosphere: true,
		Stars:      false,
	}
}

// Project - полная конфигурация анимации: создаётся один раз на экспорт
// и после этого не мутирует
type Project struct {
	Title     string          `json:"title"`
	Duration  float64         `json:"duration"`
	Keyframes []Keyframe      `json:"keyframes"`
	Settings  ProjectSettings `json:"settings"`
}

// CameraStyle - параметры камеры для категории локации
type CameraStyle struct {
	ApproachAngle string  `json:"approach_angle"`
	FinalAngle    string  `json:"final_angle"`
	MovementStyle string  `json:"movement_style"`
	Rotation      string  `json:"rotation"`
	AltitudeRatio float64 `json:"altitude_ratio"`
}

var cameraStyles = map[LocationCategory]CameraStyle{
	CategoryMajorCity: {
		ApproachAngle: "high_oblique",
		FinalAngle:    "medium_tilt",
		MovementStyle: "smooth_descent",
		Rotation:      "slow_pan",
		AltitudeRatio: 0.8,
	},
	CategoryLandmark: {
		ApproachAngle: "dramatic_tilt",
		FinalAngle:    "close_focus",
		MovementStyle: "reveal_approach",
		Rotation:      "orbit",
		AltitudeRatio: 0.5,
	},
	CategoryMountain: {
		ApproachAngle: "wide_panorama",
		FinalAngle:    "elevated_view",
		MovementStyle: "steady_approach",
		Rotation:      "minimal",
		AltitudeRatio: 1.5,
	},
	CategoryWater: {
		ApproachAngle: "low_approach",
		FinalAngle:    "coastal_view",
		MovementStyle: "flowing",
		Rotation:      "gentle_sweep",
		AltitudeRatio: 0.9,
	},
	CategoryCultural: {
		ApproachAngle: "respectful_distance",
		FinalAngle:    "architectural_focus",
		MovementStyle: "deliberate",
		Rotation:      "centered",
		AltitudeRatio: 0.7,
	},
	CategoryGeneral: {
		ApproachAngle: "standard",
		FinalAngle:    "balanced",
		MovementStyle: "smooth",
		Rotation:      "gentle",
		AltitudeRatio: 1.0,
	},
}

// ResolveCameraStyle возвращает стиль камеры для категории.
// Для категорий без собственного стиля (включая city) действует general.
func ResolveCameraStyle(category LocationCategory) CameraStyle {
	if style, ok := cameraStyles[category]; ok {
		return style
	}
	return cameraStyles[CategoryGeneral]
}

// StylePreset - именованный пресет темпа и высоты анимации
type StylePreset struct {
	Name               string  `json:"name"`
	TransitionDuration float64 `json:"transition_duration"`
	PauseDuration      float64 `json:"pause_duration"`
	AltitudeMultiplier float64 `json:"altitude_multiplier"`
	CameraMovement     string  `json:"camera_movement"`
	Effects            string  `json:"effects"`
}

const DefaultStyleName = "epic_journey"

var stylePresets = map[string]StylePreset{
	"epic_journey": {
		Name:               "epic_journey",
		TransitionDuration: 4.0,
		PauseDuration:      3.0,
		AltitudeMultiplier: 1.2,
		CameraMovement:     "dramatic",
		Effects:            "cinematic",
	},
	"quick_tour": {
		Name:               "quick_tour",
		TransitionDuration: 2.0,
		PauseDuration:      1.5,
		AltitudeMultiplier: 0.8,
		CameraMovement:     "fast",
		Effects:            "clean",
	},
	"documentary": {
		Name:               "documentary",
		TransitionDuration: 3.0,
		PauseDuration:      4.0,
		AltitudeMultiplier: 1.0,
		CameraMovement:     "steady",
		Effects:            "natural",
	},
	"adventure": {
		Name:               "adventure",
		TransitionDuration: 3.5,
		PauseDuration:      2.5,
		AltitudeMultiplier: 1.1,
		CameraMovement:     "dynamic",
		Effects:            "high_contrast",
	},
}

// GetStylePreset возвращает пресет по имени; неизвестное имя тихо
// заменяется на epic_journey
func GetStylePreset(name string) StylePreset {
	if preset, ok := stylePresets[name]; ok {
		return preset
	}
	return stylePresets[DefaultStyleName]
}

// ListStylePresets возвращает имена доступных пресетов
func ListStylePresets() []string {
	return []string{"epic_journey", "quick_tour", "documentary", "adventure"}
}
