package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/usecase"
)

func fptr(v float64) *float64 {
	return &v
}

func geoLoc(name string, lat, lon float64) domain.Location {
	return domain.Location{Name: name, FullName: name, Latitude: fptr(lat), Longitude: fptr(lon)}
}

func failedLoc(name string) domain.Location {
	return domain.Location{Name: name, FullName: name, Error: "Geocoding failed"}
}

func TestEarthStudioUseCase_SynthesizeCameraPath(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	t.Run("two major cities with epic_journey", func(t *testing.T) {
		keyframes := uc.SynthesizeCameraPath([]domain.Location{
			geoLoc("New York", 40.7128, -74.0060),
			geoLoc("Paris", 48.8566, 2.3522),
		}, "epic_journey")

		// Первая локация даёт 2 кадра, каждая следующая 3
		require.Len(t, keyframes, 5)

		// Прибытие в первую локацию
		assert.Equal(t, 4.0, keyframes[0].Time)
		assert.Equal(t, 30000.0, keyframes[0].Altitude)
		assert.Equal(t, 0.0, keyframes[0].Heading)
		assert.Equal(t, 60.0, keyframes[0].Tilt)

		// Задержка: ниже и с доворотом
		assert.Equal(t, 7.0, keyframes[1].Time)
		assert.Equal(t, 24000.0, keyframes[1].Altitude)
		assert.Equal(t, 15.0, keyframes[1].Heading)

		// Подлёт ко второй локации: двойная высота, фиксированный наклон
		assert.InDelta(t, 9.8, keyframes[2].Time, 1e-9)
		assert.Equal(t, 42000.0, keyframes[2].Altitude)
		assert.Equal(t, 45.0, keyframes[2].Tilt)

		// Прибытие во вторую: нечётный индекс понижает высоту
		assert.Equal(t, 11.0, keyframes[3].Time)
		assert.Equal(t, 21000.0, keyframes[3].Altitude)
		assert.Equal(t, 45.0, keyframes[3].Heading)
		assert.Equal(t, 30.0, keyframes[3].Tilt)

		// Задержка на финальной локации
		assert.Equal(t, 14.0, keyframes[4].Time)
		assert.Equal(t, 16800.0, keyframes[4].Altitude)
		assert.Equal(t, 60.0, keyframes[4].Heading)
	})

	t.Run("timeline is monotonically non-decreasing", func(t *testing.T) {
		keyframes := uc.SynthesizeCameraPath([]domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			geoLoc("Rome", 41.9028, 12.4964),
			geoLoc("Tokyo", 35.6762, 139.6503),
			geoLoc("Springfield", 39.7817, -89.6501),
		}, "quick_tour")

		require.NotEmpty(t, keyframes)
		for i := 1; i < len(keyframes); i++ {
			assert.GreaterOrEqual(t, keyframes[i].Time, keyframes[i-1].Time,
				"keyframe %d goes back in time", i)
		}
	})

	t.Run("locations without coordinates are skipped silently", func(t *testing.T) {
		withGaps := uc.SynthesizeCameraPath([]domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			failedLoc("Nowhere"),
			geoLoc("Rome", 41.9028, 12.4964),
			failedLoc("Elsewhere"),
		}, "epic_journey")

		dense := uc.SynthesizeCameraPath([]domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			geoLoc("Rome", 41.9028, 12.4964),
		}, "epic_journey")

		assert.Equal(t, dense, withGaps)
	})

	t.Run("empty input yields empty path", func(t *testing.T) {
		assert.Empty(t, uc.SynthesizeCameraPath(nil, "epic_journey"))
		assert.Empty(t, uc.SynthesizeCameraPath([]domain.Location{failedLoc("X")}, "epic_journey"))
	})

	t.Run("heading stays within [0, 360)", func(t *testing.T) {
		locations := make([]domain.Location, 0, 12)
		for i := 0; i < 12; i++ {
			locations = append(locations, geoLoc("Springfield", 39.0+float64(i), -89.0))
		}

		for _, kf := range uc.SynthesizeCameraPath(locations, "documentary") {
			assert.GreaterOrEqual(t, kf.Heading, 0.0)
			assert.Less(t, kf.Heading, 360.0)
		}
	})

	t.Run("unknown style behaves as epic_journey", func(t *testing.T) {
		locations := []domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			geoLoc("Rome", 41.9028, 12.4964),
		}

		assert.Equal(t,
			uc.SynthesizeCameraPath(locations, "epic_journey"),
			uc.SynthesizeCameraPath(locations, "no_such_style"))
	})
}

func TestEarthStudioUseCase_AllocateDurations(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	t.Run("splits budget proportionally to importance", func(t *testing.T) {
		// major_city 1.5, general 1.0, cultural 1.2
		durations := uc.AllocateDurations([]domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			geoLoc("Springfield", 39.7817, -89.6501),
			geoLoc("Louvre Museum", 48.8606, 2.3376),
		}, 30)

		require.Len(t, durations, 3)
		totalWeight := 1.5 + 1.0 + 1.2
		assert.InDelta(t, 1.5/totalWeight*30, durations[0], 1e-9)
		assert.InDelta(t, 1.0/totalWeight*30, durations[1], 1e-9)
		assert.InDelta(t, 1.2/totalWeight*30, durations[2], 1e-9)

		sum := durations[0] + durations[1] + durations[2]
		assert.InDelta(t, 30, sum, 1e-9)
	})

	t.Run("floor of 2 seconds may exceed the budget", func(t *testing.T) {
		locations := make([]domain.Location, 10)
		for i := range locations {
			locations[i] = geoLoc("Springfield", 39.0, -89.0)
		}

		durations := uc.AllocateDurations(locations, 10)

		sum := 0.0
		for _, d := range durations {
			assert.Equal(t, 2.0, d)
			sum += d
		}
		assert.Greater(t, sum, 10.0)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, uc.AllocateDurations(nil, 60))
	})
}

func TestEarthStudioUseCase_DynamicDurations(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	t.Run("single location gets flat 5 seconds", func(t *testing.T) {
		durations := uc.DynamicDurations([]domain.Location{geoLoc("Paris", 48.8566, 2.3522)})
		assert.Equal(t, []float64{5.0}, durations)
	})

	t.Run("importance and edge bonuses multiply", func(t *testing.T) {
		// major_city первой, general в середине, landmark последней
		durations := uc.DynamicDurations([]domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			geoLoc("Springfield", 39.7817, -89.6501),
			geoLoc("Eiffel Tower", 48.8584, 2.2945),
		})

		require.Len(t, durations, 3)
		assert.InDelta(t, 4.0*1.5*1.2, durations[0], 1e-9)
		assert.InDelta(t, 4.0, durations[1], 1e-9)
		assert.InDelta(t, 4.0*1.3*1.2, durations[2], 1e-9)
	})
}

func TestEarthStudioUseCase_BuildProject(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	t.Run("duration is last keyframe plus tail", func(t *testing.T) {
		project := uc.BuildProject([]domain.Location{
			geoLoc("New York", 40.7128, -74.0060),
			geoLoc("Paris", 48.8566, 2.3522),
		}, nil, "My Trip", "epic_journey")

		assert.Equal(t, "My Trip", project.Title)
		assert.Len(t, project.Keyframes, 5)
		assert.Equal(t, 16.0, project.Duration)
		assert.Equal(t, domain.DefaultProjectSettings(), project.Settings)
	})

	t.Run("empty project gets default title and duration", func(t *testing.T) {
		project := uc.BuildProject(nil, nil, "", "epic_journey")

		assert.Equal(t, "Map Memoir Journey", project.Title)
		assert.Empty(t, project.Keyframes)
		assert.Equal(t, 10.0, project.Duration)
	})
}

func TestEarthStudioUseCase_ExportProject(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	project := uc.BuildProject([]domain.Location{
		geoLoc("New York", 40.7128, -74.0060),
		geoLoc("Paris", 48.8566, 2.3522),
	}, nil, "Round Trip", "documentary")

	doc := uc.ExportProject(project)

	t.Run("document mirrors the project", func(t *testing.T) {
		assert.Equal(t, "1.0", doc.Version)
		assert.Equal(t, "Round Trip", doc.Project.Name)
		assert.Equal(t, project.Duration, doc.Project.Duration)
		assert.Equal(t, 30, doc.Project.FPS)

		require.Len(t, doc.Timeline.Tracks, 1)
		track := doc.Timeline.Tracks[0]
		assert.Equal(t, "Camera", track.Name)
		assert.Equal(t, "camera", track.Type)
		require.Len(t, track.Keyframes, len(project.Keyframes))

		for i, kf := range track.Keyframes {
			assert.Equal(t, project.Keyframes[i].Time, kf.Time)
			assert.Equal(t, project.Keyframes[i].Latitude, kf.Value.Position.Lat)
			assert.Equal(t, project.Keyframes[i].Longitude, kf.Value.Position.Lng)
			assert.Equal(t, project.Keyframes[i].Altitude, kf.Value.Position.Altitude)
			assert.Equal(t, project.Keyframes[i].Heading, kf.Value.Rotation.Heading)
			assert.Equal(t, "ease_in_out", kf.Interpolation)
		}

		require.Len(t, doc.Effects, 2)
		assert.Equal(t, "Atmosphere", doc.Effects[0].Name)
		assert.Equal(t, "Motion Blur", doc.Effects[1].Name)
	})

	t.Run("exported document passes validation", func(t *testing.T) {
		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))

		valid, errs := uc.ValidateDocument(decoded)
		assert.True(t, valid)
		assert.Empty(t, errs)
	})
}

func TestEarthStudioUseCase_ValidateDocument(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	t.Run("missing top-level fields", func(t *testing.T) {
		valid, errs := uc.ValidateDocument(map[string]interface{}{})

		assert.False(t, valid)
		assert.Contains(t, errs, "Missing required field: project")
		assert.Contains(t, errs, "Missing required field: timeline")
	})

	t.Run("timeline without tracks", func(t *testing.T) {
		valid, errs := uc.ValidateDocument(map[string]interface{}{
			"project":  map[string]interface{}{},
			"timeline": map[string]interface{}{},
		})

		assert.False(t, valid)
		assert.Contains(t, errs, "Timeline missing tracks")
	})

	t.Run("empty tracks list", func(t *testing.T) {
		valid, errs := uc.ValidateDocument(map[string]interface{}{
			"project":  map[string]interface{}{},
			"timeline": map[string]interface{}{"tracks": []interface{}{}},
		})

		assert.False(t, valid)
		assert.Contains(t, errs, "Timeline tracks must not be empty")
	})

	t.Run("accumulates all problems instead of stopping at the first", func(t *testing.T) {
		valid, errs := uc.ValidateDocument(map[string]interface{}{
			"timeline": map[string]interface{}{
				"tracks": []interface{}{
					map[string]interface{}{
						"keyframes": []interface{}{
							map[string]interface{}{
								"value": map[string]interface{}{
									"position": map[string]interface{}{},
								},
							},
						},
					},
				},
			},
		})

		assert.False(t, valid)
		assert.Contains(t, errs, "Missing required field: project")
		assert.Contains(t, errs, "Track 0 needs at least 2 keyframes")
		assert.Contains(t, errs, "Keyframe 0 missing time")
	})

	t.Run("keyframe without value or position", func(t *testing.T) {
		valid, errs := uc.ValidateDocument(map[string]interface{}{
			"project": map[string]interface{}{},
			"timeline": map[string]interface{}{
				"tracks": []interface{}{
					map[string]interface{}{
						"keyframes": []interface{}{
							map[string]interface{}{"time": 0.0},
							map[string]interface{}{
								"time":  1.0,
								"value": map[string]interface{}{},
							},
						},
					},
				},
			},
		})

		assert.False(t, valid)
		assert.Contains(t, errs, "Keyframe 0 missing value")
		assert.Contains(t, errs, "Keyframe 1 missing position")
	})
}

func TestEarthStudioUseCase_Preview(t *testing.T) {
	uc := usecase.NewEarthStudioUseCase(zap.NewNop())

	t.Run("one keyframe per location", func(t *testing.T) {
		preview := uc.Preview([]domain.Location{
			geoLoc("New York", 40.7128, -74.0060),
			geoLoc("Paris", 48.8566, 2.3522),
		}, "epic_journey")

		require.Len(t, preview.Keyframes, 2)

		// Дальний перелёт поднимает камеру над первой точкой
		assert.Equal(t, 0.0, preview.Keyframes[0].Time)
		assert.Equal(t, 25000.0*1.5*1.2, preview.Keyframes[0].Altitude)
		assert.Equal(t, 45.0, preview.Keyframes[0].Tilt)
		assert.Equal(t, 0.0, preview.Keyframes[0].Heading)

		assert.Equal(t, 7.0, preview.Keyframes[1].Time)
		assert.Equal(t, 25000.0*1.2, preview.Keyframes[1].Altitude)
		assert.Equal(t, 30.0, preview.Keyframes[1].Heading)

		assert.Equal(t, 7.0, preview.Duration)
		assert.Equal(t, 2, preview.LocationsCount)
		assert.Equal(t, 2, preview.CameraPositions)
		assert.Equal(t, "4 minutes", preview.EstimatedRenderTime)

		require.Len(t, preview.FlightPath, 1)
		leg := preview.FlightPath[0]
		assert.Equal(t, "New York", leg.From)
		assert.Equal(t, "Paris", leg.To)
		assert.InDelta(t, 5837, leg.DistanceKm, 50)
		assert.Equal(t, 4.0, leg.FlightTime)
	})

	t.Run("fewer than two valid locations yields empty path", func(t *testing.T) {
		preview := uc.Preview([]domain.Location{
			geoLoc("Paris", 48.8566, 2.3522),
			failedLoc("Nowhere"),
		}, "epic_journey")

		assert.Empty(t, preview.Keyframes)
		assert.Equal(t, 0.0, preview.Duration)
		assert.Equal(t, 2, preview.LocationsCount)
		assert.Equal(t, "0 minutes", preview.EstimatedRenderTime)
		assert.Empty(t, preview.FlightPath)
	})
}
