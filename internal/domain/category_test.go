package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/map-memoir/backend/internal/domain"
)

func loc(name string) domain.Location {
	return domain.Location{Name: name}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		expected domain.LocationCategory
	}{
		{"Paris", domain.CategoryMajorCity},
		{"New York", domain.CategoryMajorCity},
		{"Mexico City", domain.CategoryCity},
		{"Eiffel Tower", domain.CategoryLandmark},
		{"Golden Gate Bridge", domain.CategoryLandmark},
		{"Rocky Mountain", domain.CategoryMountain},
		{"Grand Canyon", domain.CategoryMountain},
		{"Lake Como", domain.CategoryWater},
		{"Bondi Beach", domain.CategoryWater},
		{"Louvre Museum", domain.CategoryCultural},
		{"Senso-ji Temple", domain.CategoryCultural},
		{"Springfield", domain.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Classify(loc(tt.name)))
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, domain.CategoryMajorCity, domain.Classify(loc("PARIS")))
		assert.Equal(t, domain.CategoryLandmark, domain.Classify(loc("eiffel TOWER")))
	})

	t.Run("earlier category wins on mixed keywords", func(t *testing.T) {
		// "london" матчится раньше "bridge"
		assert.Equal(t, domain.CategoryMajorCity, domain.Classify(loc("London Bridge")))
		// "tower" матчится раньше "hill"
		assert.Equal(t, domain.CategoryLandmark, domain.Classify(loc("Tower Hill")))
	})
}

func TestBaseAltitude(t *testing.T) {
	assert.Equal(t, 25000.0, domain.BaseAltitude(domain.CategoryMajorCity))
	assert.Equal(t, 25000.0, domain.BaseAltitude(domain.CategoryCity))
	assert.Equal(t, 15000.0, domain.BaseAltitude(domain.CategoryLandmark))
	assert.Equal(t, 60000.0, domain.BaseAltitude(domain.CategoryMountain))
	assert.Equal(t, 30000.0, domain.BaseAltitude(domain.CategoryWater))
	assert.Equal(t, 20000.0, domain.BaseAltitude(domain.CategoryCultural))
	assert.Equal(t, 35000.0, domain.BaseAltitude(domain.CategoryGeneral))

	t.Run("unknown category falls back to general", func(t *testing.T) {
		assert.Equal(t, 35000.0, domain.BaseAltitude(domain.LocationCategory("volcano")))
	})
}

func TestOptimalAltitude(t *testing.T) {
	t.Run("long leg raises the camera", func(t *testing.T) {
		assert.Equal(t, 25000.0*1.5, domain.OptimalAltitude(domain.CategoryMajorCity, 1500))
	})

	t.Run("short leg lowers the camera", func(t *testing.T) {
		assert.Equal(t, 25000.0*0.7, domain.OptimalAltitude(domain.CategoryMajorCity, 50))
	})

	t.Run("medium leg keeps base altitude", func(t *testing.T) {
		assert.Equal(t, 25000.0, domain.OptimalAltitude(domain.CategoryMajorCity, 500))
	})

	t.Run("zero distance keeps base altitude", func(t *testing.T) {
		assert.Equal(t, 35000.0, domain.OptimalAltitude(domain.CategoryGeneral, 0))
	})
}

func TestImportanceMultiplier(t *testing.T) {
	assert.Equal(t, 1.5, domain.ImportanceMultiplier(domain.CategoryMajorCity))
	assert.Equal(t, 1.3, domain.ImportanceMultiplier(domain.CategoryLandmark))
	assert.Equal(t, 1.2, domain.ImportanceMultiplier(domain.CategoryCultural))
	assert.Equal(t, 1.1, domain.ImportanceMultiplier(domain.CategoryMountain))
	assert.Equal(t, 1.1, domain.ImportanceMultiplier(domain.CategoryWater))
	assert.Equal(t, 1.0, domain.ImportanceMultiplier(domain.CategoryCity))
	assert.Equal(t, 1.0, domain.ImportanceMultiplier(domain.CategoryGeneral))
}
