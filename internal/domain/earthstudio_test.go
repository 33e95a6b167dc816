package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/map-memoir/backend/internal/domain"
)

func TestGetStylePreset(t *testing.T) {
	t.Run("known presets", func(t *testing.T) {
		epic := domain.GetStylePreset("epic_journey")
		assert.Equal(t, 4.0, epic.TransitionDuration)
		assert.Equal(t, 3.0, epic.PauseDuration)
		assert.Equal(t, 1.2, epic.AltitudeMultiplier)

		quick := domain.GetStylePreset("quick_tour")
		assert.Equal(t, 2.0, quick.TransitionDuration)
		assert.Equal(t, 1.5, quick.PauseDuration)
		assert.Equal(t, 0.8, quick.AltitudeMultiplier)

		doc := domain.GetStylePreset("documentary")
		assert.Equal(t, 3.0, doc.TransitionDuration)
		assert.Equal(t, 4.0, doc.PauseDuration)
		assert.Equal(t, 1.0, doc.AltitudeMultiplier)

		adv := domain.GetStylePreset("adventure")
		assert.Equal(t, 3.5, adv.TransitionDuration)
		assert.Equal(t, 2.5, adv.PauseDuration)
		assert.Equal(t, 1.1, adv.AltitudeMultiplier)
	})

	t.Run("unknown name silently falls back to epic_journey", func(t *testing.T) {
		assert.Equal(t, domain.GetStylePreset("epic_journey"), domain.GetStylePreset("vertigo"))
		assert.Equal(t, domain.GetStylePreset("epic_journey"), domain.GetStylePreset(""))
	})
}

func TestListStylePresets(t *testing.T) {
	names := domain.ListStylePresets()
	assert.Equal(t, []string{"epic_journey", "quick_tour", "documentary", "adventure"}, names)
}

func TestResolveCameraStyle(t *testing.T) {
	t.Run("major city style", func(t *testing.T) {
		style := domain.ResolveCameraStyle(domain.CategoryMajorCity)
		assert.Equal(t, "medium_tilt", style.FinalAngle)
		assert.Equal(t, 0.8, style.AltitudeRatio)
	})

	t.Run("landmark style", func(t *testing.T) {
		style := domain.ResolveCameraStyle(domain.CategoryLandmark)
		assert.Equal(t, 0.5, style.AltitudeRatio)
	})

	t.Run("city has no own style and falls back to general", func(t *testing.T) {
		assert.Equal(t,
			domain.ResolveCameraStyle(domain.CategoryGeneral),
			domain.ResolveCameraStyle(domain.CategoryCity))
	})
}

func TestDefaultProjectSettings(t *testing.T) {
	settings := domain.DefaultProjectSettings()

	assert.Equal(t, 30, settings.FPS)
	assert.Equal(t, 1920, settings.Resolution.Width)
	assert.Equal(t, 1080, settings.Resolution.Height)
	assert.Equal(t, "high", settings.Quality)
	assert.True(t, settings.MotionBlur)
	assert.True(t, settings.Atmosphere)
	assert.False(t, settings.Stars)
}

func TestPredefinedLocation(t *testing.T) {
	t.Run("lookup is case insensitive and keeps requested name", func(t *testing.T) {
		loc, ok := domain.PredefinedLocation("PARIS")
		assert.True(t, ok)
		assert.Equal(t, "PARIS", loc.Name)
		assert.InDelta(t, 48.8566, *loc.Latitude, 1e-6)
		assert.InDelta(t, 2.3522, *loc.Longitude, 1e-6)
	})

	t.Run("unknown name misses", func(t *testing.T) {
		_, ok := domain.PredefinedLocation("Atlantis")
		assert.False(t, ok)
	})
}
