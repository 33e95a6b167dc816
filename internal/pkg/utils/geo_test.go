package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/map-memoir/backend/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistance(48.8566, 2.3522, 48.8566, 2.3522))
	})

	t.Run("known distance Paris to London", func(t *testing.T) {
		distance := utils.HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
		assert.InDelta(t, 344, distance, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := utils.HaversineDistance(40.7128, -74.0060, 35.6762, 139.6503)
		d2 := utils.HaversineDistance(35.6762, 139.6503, 40.7128, -74.0060)
		assert.InDelta(t, d1, d2, 1e-9)
	})
}

func TestInterpolateGreatCircle(t *testing.T) {
	t.Run("returns n+1 points including endpoints", func(t *testing.T) {
		points := utils.InterpolateGreatCircle(48.8566, 2.3522, 51.5074, -0.1278, 4)

		assert.Len(t, points, 5)
		assert.InDelta(t, 48.8566, points[0][0], 1e-6)
		assert.InDelta(t, 2.3522, points[0][1], 1e-6)
		assert.InDelta(t, 51.5074, points[4][0], 1e-6)
		assert.InDelta(t, -0.1278, points[4][1], 1e-6)
	})

	t.Run("degenerate path for identical points", func(t *testing.T) {
		points := utils.InterpolateGreatCircle(35.6762, 139.6503, 35.6762, 139.6503, 3)

		assert.Len(t, points, 4)
		for _, p := range points {
			assert.InDelta(t, 35.6762, p[0], 1e-6)
			assert.InDelta(t, 139.6503, p[1], 1e-6)
		}
	})

	t.Run("clamps n to minimum of 1", func(t *testing.T) {
		points := utils.InterpolateGreatCircle(0, 0, 10, 10, 0)
		assert.Len(t, points, 2)
	})
}

func TestBearing(t *testing.T) {
	t.Run("due north", func(t *testing.T) {
		assert.InDelta(t, 0, utils.Bearing(0, 0, 10, 0), 1e-6)
	})

	t.Run("due east on equator", func(t *testing.T) {
		assert.InDelta(t, 90, utils.Bearing(0, 0, 0, 10), 1e-6)
	})

	t.Run("result stays within [0, 360)", func(t *testing.T) {
		bearing := utils.Bearing(10, 10, 0, 0)
		assert.GreaterOrEqual(t, bearing, 0.0)
		assert.Less(t, bearing, 360.0)
	})
}

func TestNormalizeHeading(t *testing.T) {
	assert.Equal(t, 0.0, utils.NormalizeHeading(360))
	assert.Equal(t, 15.0, utils.NormalizeHeading(375))
	assert.Equal(t, 345.0, utils.NormalizeHeading(-15))
	assert.Equal(t, 330.0, utils.NormalizeHeading(330))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(0, 0))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.True(t, utils.ValidateCoordinates(90, -180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.1))
}
