package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/pkg/utils"
	"github.com/map-memoir/backend/internal/usecase/dto"
)

const (
	// Камера "довешивает" хвост после последнего кадра
	projectTailSeconds = 2.0
	// Длительность пустого проекта без единого кадра
	emptyProjectDuration = 10.0
	// Минимальная длительность на локацию при распределении бюджета
	minLocationDuration = 2.0

	defaultProjectTitle = "Map Memoir Journey"
)

// EarthStudioUseCase - генерация пути камеры и экспорт Earth Studio проектов.
// Все методы чистые по входам, состояние ограничено логгером.
type EarthStudioUseCase struct {
	logger *zap.Logger
}

// NewEarthStudioUseCase - создание нового EarthStudioUseCase
func NewEarthStudioUseCase(logger *zap.Logger) *EarthStudioUseCase {
	return &EarthStudioUseCase{
		logger: logger,
	}
}

// SynthesizeCameraPath строит упорядоченную последовательность кадров камеры.
// Для каждой валидной локации: подлётный кадр (кроме первой), основной кадр
// и кадр задержки. Локации без координат пропускаются молча, временная шкала
// монотонно неубывает.
func (uc *EarthStudioUseCase) SynthesizeCameraPath(
	locations []domain.Location,
	styleName string,
) []domain.Keyframe {
	preset := domain.GetStylePreset(styleName)
	valid := validLocations(locations)

	if len(valid) < len(locations) {
		uc.logger.Debug("Skipping locations without coordinates",
			zap.Int("total", len(locations)),
			zap.Int("valid", len(valid)))
	}

	keyframes := make([]domain.Keyframe, 0, 3*len(valid))
	currentTime := 0.0

	for i, loc := range valid {
		lat, lon := loc.Coordinates()
		category := domain.Classify(loc)

		altitude := domain.BaseAltitude(category) * preset.AltitudeMultiplier
		// Чередование высоких и низких планов для визуального разнообразия
		if i%2 == 1 {
			altitude *= 0.7
		}

		heading := float64((i * 45) % 360)
		tilt := tiltForIndex(i, len(valid))

		// Подлёт: выше цели и с фиксированным драматическим наклоном
		if i > 0 {
			keyframes = append(keyframes, domain.Keyframe{
				Time:      currentTime + preset.TransitionDuration*0.7,
				Latitude:  lat,
				Longitude: lon,
				Altitude:  altitude * 2,
				Heading:   heading,
				Tilt:      45,
				Roll:      0,
			})
		}

		arrivalTime := currentTime + preset.TransitionDuration
		keyframes = append(keyframes, domain.Keyframe{
			Time:      arrivalTime,
			Latitude:  lat,
			Longitude: lon,
			Altitude:  altitude,
			Heading:   heading,
			Tilt:      tilt,
			Roll:      0,
		})

		// Задержка: камера снижается и доворачивается
		lingerTime := arrivalTime + preset.PauseDuration
		keyframes = append(keyframes, domain.Keyframe{
			Time:      lingerTime,
			Latitude:  lat,
			Longitude: lon,
			Altitude:  altitude * 0.8,
			Heading:   utils.NormalizeHeading(heading + 15),
			Tilt:      tilt,
			Roll:      0,
		})

		currentTime = lingerTime
	}

	return keyframes
}

// tiltForIndex подбирает наклон камеры: крутой на открытии, мягкий на финале,
// варьируемый в середине
func tiltForIndex(index, total int) float64 {
	switch {
	case index == 0:
		return 60
	case index == total-1:
		return 30
	default:
		return 45 + float64(index%3)*10
	}
}

// AllocateDurations распределяет общий хронометраж по локациям пропорционально
// их важности. Нижняя граница 2.0s применяется после нормализации, поэтому
// сумма может превысить бюджет - это принятое приближение, без ребаланса.
func (uc *EarthStudioUseCase) AllocateDurations(
	locations []domain.Location,
	totalDuration float64,
) []float64 {
	if len(locations) == 0 {
		return nil
	}

	weights := make([]float64, len(locations))
	totalWeight := 0.0
	for i, loc := range locations {
		weights[i] = domain.ImportanceMultiplier(domain.Classify(loc))
		totalWeight += weights[i]
	}

	durations := make([]float64, len(locations))
	for i, w := range weights {
		durations[i] = (w / totalWeight) * totalDuration
		if durations[i] < minLocationDuration {
			durations[i] = minLocationDuration
		}
	}

	return durations
}

// DynamicDurations - эвристический хронометраж без общего бюджета:
// базовые 4 секунды с бонусами за важность и за первую/последнюю позицию
func (uc *EarthStudioUseCase) DynamicDurations(locations []domain.Location) []float64 {
	if len(locations) < 2 {
		durations := make([]float64, len(locations))
		for i := range durations {
			durations[i] = 5.0
		}
		return durations
	}

	durations := make([]float64, len(locations))
	for i, loc := range locations {
		duration := 4.0

		switch domain.Classify(loc) {
		case domain.CategoryMajorCity:
			duration *= 1.5
		case domain.CategoryLandmark:
			duration *= 1.3
		}

		if i == 0 || i == len(locations)-1 {
			duration *= 1.2
		}

		durations[i] = duration
	}

	return durations
}

// BuildProject собирает полный проект анимации. Параметр timeline
// зарезервирован под синхронизацию с озвучкой и на кадры не влияет.
func (uc *EarthStudioUseCase) BuildProject(
	locations []domain.Location,
	timeline []string,
	title string,
	styleName string,
) *domain.Project {
	_ = timeline

	if title == "" {
		title = defaultProjectTitle
	}

	keyframes := uc.SynthesizeCameraPath(locations, styleName)

	duration := emptyProjectDuration
	if len(keyframes) > 0 {
		duration = keyframes[len(keyframes)-1].Time + projectTailSeconds
	}

	uc.logger.Info("Earth Studio project built",
		zap.String("title", title),
		zap.Int("keyframes", len(keyframes)),
		zap.Float64("duration", duration))

	return &domain.Project{
		Title:     title,
		Duration:  duration,
		Keyframes: keyframes,
		Settings:  domain.DefaultProjectSettings(),
	}
}

// ExportProject сериализует проект в формат, совместимый с Earth Studio
func (uc *EarthStudioUseCase) ExportProject(project *domain.Project) *dto.EarthStudioDocument {
	keyframes := make([]dto.DocumentKeyframe, 0, len(project.Keyframes))
	for _, kf := range project.Keyframes {
		keyframes = append(keyframes, dto.DocumentKeyframe{
			Time: kf.Time,
			Value: dto.KeyframeValue{
				Position: dto.KeyframePosition{
					Lat:      kf.Latitude,
					Lng:      kf.Longitude,
					Altitude: kf.Altitude,
				},
				Rotation: dto.KeyframeRotation{
					Heading: kf.Heading,
					Tilt:    kf.Tilt,
					Roll:    kf.Roll,
				},
			},
			Interpolation: "ease_in_out",
		})
	}

	return &dto.EarthStudioDocument{
		Version: "1.0",
		Project: dto.DocumentProject{
			Name:       project.Title,
			Duration:   project.Duration,
			FPS:        project.Settings.FPS,
			Resolution: project.Settings.Resolution,
		},
		Timeline: dto.DocumentTimeline{
			Tracks: []dto.DocumentTrack{
				{
					Name:      "Camera",
					Type:      "camera",
					Keyframes: keyframes,
				},
			},
		},
		Effects: []dto.DocumentEffect{
			{Name: "Atmosphere", Enabled: project.Settings.Atmosphere},
			{Name: "Motion Blur", Enabled: project.Settings.MotionBlur},
		},
	}
}

// ValidateDocument проверяет структурные инварианты экспортного документа.
// Накапливает все нарушения, никогда не паникует и не мутирует документ.
// Проверка рекомендательная: экспортер в любом случае выдаёт документ.
func (uc *EarthStudioUseCase) ValidateDocument(doc map[string]interface{}) (bool, []string) {
	errs := []string{}

	for _, field := range []string{"project", "timeline"} {
		if _, ok := doc[field]; !ok {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	timeline, hasTimeline := doc["timeline"].(map[string]interface{})
	if hasTimeline {
		tracks, ok := timeline["tracks"].([]interface{})
		switch {
		case !ok:
			errs = append(errs, "Timeline missing tracks")
		case len(tracks) == 0:
			errs = append(errs, "Timeline tracks must not be empty")
		default:
			for i, rawTrack := range tracks {
				track, _ := rawTrack.(map[string]interface{})
				keyframes, ok := track["keyframes"].([]interface{})
				if !ok {
					errs = append(errs, fmt.Sprintf("Track %d missing keyframes", i))
					continue
				}
				if len(keyframes) < 2 {
					errs = append(errs, fmt.Sprintf("Track %d needs at least 2 keyframes", i))
				}
			}

			for _, rawTrack := range tracks {
				track, _ := rawTrack.(map[string]interface{})
				keyframes, _ := track["keyframes"].([]interface{})
				for i, rawKf := range keyframes {
					kf, _ := rawKf.(map[string]interface{})
					if _, ok := kf["time"]; !ok {
						errs = append(errs, fmt.Sprintf("Keyframe %d missing time", i))
					}
					value, ok := kf["value"].(map[string]interface{})
					if !ok {
						errs = append(errs, fmt.Sprintf("Keyframe %d missing value", i))
					} else if _, ok := value["position"]; !ok {
						errs = append(errs, fmt.Sprintf("Keyframe %d missing position", i))
					}
				}
			}
		}
	}

	return len(errs) == 0, errs
}

// Preview строит облегчённый путь камеры (один кадр на локацию) и план
// перелётов для предпросмотра без полного экспорта
func (uc *EarthStudioUseCase) Preview(
	locations []domain.Location,
	styleName string,
) *dto.PreviewResponse {
	preset := domain.GetStylePreset(styleName)
	valid := validLocations(locations)

	keyframes := uc.smoothCameraPath(valid, preset)

	duration := 0.0
	if len(keyframes) > 0 {
		duration = keyframes[len(keyframes)-1].Time
	}

	legs := make([]dto.FlightLeg, 0)
	for i := 0; i+1 < len(valid); i++ {
		lat1, lon1 := valid[i].Coordinates()
		lat2, lon2 := valid[i+1].Coordinates()
		legs = append(legs, dto.FlightLeg{
			From:       valid[i].Name,
			To:         valid[i+1].Name,
			DistanceKm: utils.HaversineDistance(lat1, lon1, lat2, lon2),
			FlightTime: preset.TransitionDuration,
		})
	}

	return &dto.PreviewResponse{
		Keyframes:           keyframes,
		Duration:            duration,
		LocationsCount:      len(locations),
		CameraPositions:     len(keyframes),
		EstimatedRenderTime: fmt.Sprintf("%d minutes", len(keyframes)*2),
		FlightPath:          legs,
	}
}

// smoothCameraPath - упрощённый путь: один кадр на локацию, шаг поворота 30°,
// высота с поправкой на расстояние до следующей точки
func (uc *EarthStudioUseCase) smoothCameraPath(
	valid []domain.Location,
	preset domain.StylePreset,
) []domain.Keyframe {
	if len(valid) < 2 {
		return []domain.Keyframe{}
	}

	keyframes := make([]domain.Keyframe, 0, len(valid))
	currentTime := 0.0

	for i, loc := range valid {
		lat, lon := loc.Coordinates()
		category := domain.Classify(loc)
		style := domain.ResolveCameraStyle(category)

		distanceToNext := 0.0
		if i+1 < len(valid) {
			lat2, lon2 := valid[i+1].Coordinates()
			distanceToNext = utils.HaversineDistance(lat, lon, lat2, lon2)
		}

		altitude := domain.OptimalAltitude(category, distanceToNext) * preset.AltitudeMultiplier

		tilt := 30.0
		if style.FinalAngle == "medium_tilt" {
			tilt = 45.0
		}

		keyframes = append(keyframes, domain.Keyframe{
			Time:      currentTime,
			Latitude:  lat,
			Longitude: lon,
			Altitude:  altitude,
			Heading:   float64((i * 30) % 360),
			Tilt:      tilt,
			Roll:      0,
		})

		currentTime += preset.TransitionDuration + preset.PauseDuration
	}

	return keyframes
}

func validLocations(locations []domain.Location) []domain.Location {
	valid := make([]domain.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.HasCoordinates() {
			valid = append(valid, loc)
		}
	}
	return valid
}
