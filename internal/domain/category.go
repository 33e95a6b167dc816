package domain

import "strings"

// LocationCategory - семантическая категория локации, выведенная из названия.
// Категория нигде не хранится и пересчитывается по требованию.
type LocationCategory string

const (
	CategoryMajorCity LocationCategory = "major_city"
	CategoryCity      LocationCategory = "city"
	CategoryLandmark  LocationCategory = "landmark"
	CategoryMountain  LocationCategory = "mountain"
	CategoryWater     LocationCategory = "water"
	CategoryCultural  LocationCategory = "cultural"
	CategoryGeneral   LocationCategory = "general"
)

// Ключевые слова проверяются в фиксированном порядке, первый матч побеждает.
// Название с токенами двух категорий получит ту, чей список проверяется раньше.
var (
	majorCityNames = []string{"new york", "paris", "london", "tokyo", "rome", "beijing", "sydney"}
	cityWords      = []string{"city", "town", "metro"}
	landmarkWords  = []string{"tower", "bridge", "statue", "arch", "monument", "palace", "castle"}
	mountainWords  = []string{"mountain", "peak", "hill", "valley", "canyon", "cliff"}
	waterWords     = []string{"beach", "coast", "island", "bay", "lake", "river", "sea"}
	culturalWords  = []string{"museum", "temple", "cathedral", "church", "shrine", "gallery"}
)

// Classify определяет категорию локации по ключевым словам в названии
func Classify(loc Location) LocationCategory {
	name := normalizeName(loc.Name)

	switch {
	case containsAny(name, majorCityNames):
		return CategoryMajorCity
	case containsAny(name, cityWords):
		return CategoryCity
	case containsAny(name, landmarkWords):
		return CategoryLandmark
	case containsAny(name, mountainWords):
		return CategoryMountain
	case containsAny(name, waterWords):
		return CategoryWater
	case containsAny(name, culturalWords):
		return CategoryCultural
	default:
		return CategoryGeneral
	}
}

// baseAltitudes - единая таблица базовых высот камеры по категориям (метры).
// Исходно высоты были разбросаны по двум модулям с расходящимися константами;
// здесь оставлен один набор, обе ветки расчёта читают его.
var baseAltitudes = map[LocationCategory]float64{
	CategoryMajorCity: 25000,
	CategoryCity:      25000,
	CategoryLandmark:  15000,
	CategoryMountain:  60000,
	CategoryWater:     30000,
	CategoryCultural:  20000,
	CategoryGeneral:   35000,
}

// BaseAltitude возвращает базовую высоту камеры для категории
func BaseAltitude(category LocationCategory) float64 {
	if alt, ok := baseAltitudes[category]; ok {
		return alt
	}
	return baseAltitudes[CategoryGeneral]
}

// OptimalAltitude корректирует базовую высоту по расстоянию до следующей точки:
// длинные перелёты снимаются выше, короткие - ниже
func OptimalAltitude(category LocationCategory, distanceToNextKm float64) float64 {
	altitude := BaseAltitude(category)

	if distanceToNextKm > 1000 {
		altitude *= 1.5
	} else if distanceToNextKm > 0 && distanceToNextKm < 100 {
		altitude *= 0.7
	}

	return altitude
}

// importanceMultipliers - веса категорий для распределения хронометража
var importanceMultipliers = map[LocationCategory]float64{
	CategoryMajorCity: 1.5,
	CategoryLandmark:  1.3,
	CategoryCultural:  1.2,
	CategoryMountain:  1.1,
	CategoryWater:     1.1,
}

// ImportanceMultiplier возвращает вес категории; по умолчанию 1.0
func ImportanceMultiplier(category LocationCategory) float64 {
	if m, ok := importanceMultipliers[category]; ok {
		return m
	}
	return 1.0
}

func containsAny(name string, words []string) bool {
	for _, w := range words {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
