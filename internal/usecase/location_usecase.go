package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
	"github.com/map-memoir/backend/internal/pkg/utils"
)

// LocationUseCase - обработка названий мест: очистка, валидация,
// геокодирование с кешем, оптимизация порядка и статистика маршрута
type LocationUseCase struct {
	geocodeRepo repository.GeocodeRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewLocationUseCase - создание нового LocationUseCase
func NewLocationUseCase(
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *LocationUseCase {
	return &LocationUseCase{
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

var (
	namePrefixes   = []string{"the ", "a ", "an ", "in ", "at ", "to ", "from "}
	specialCharsRe = regexp.MustCompile(`[^\w\s\-',.]`)
	multiSpaceRe   = regexp.MustCompile(`\s+`)
	digitRe        = regexp.MustCompile(`\d`)
	abbreviationRe = map[*regexp.Regexp]string{
		regexp.MustCompile(`\bUs\b`):  "US",
		regexp.MustCompile(`\bUk\b`):  "UK",
		regexp.MustCompile(`\bUsa\b`): "USA",
		regexp.MustCompile(`\bSt\b`):  "Saint",
		regexp.MustCompile(`\bMt\b`):  "Mount",
		regexp.MustCompile(`\bFt\b`):  "Fort",
	}
)

// CleanLocationNames нормализует сырые названия: обрезает служебные
// префиксы, спецсимволы, лишние пробелы и приводит к Title Case
func (uc *LocationUseCase) CleanLocationNames(names []string) []string {
	cleaned := make([]string, 0, len(names))

	for _, name := range names {
		s := strings.TrimSpace(name)
		if s == "" {
			continue
		}

		lower := strings.ToLower(s)
		for _, prefix := range namePrefixes {
			if strings.HasPrefix(lower, prefix) {
				s = s[len(prefix):]
				break
			}
		}

		s = specialCharsRe.ReplaceAllString(s, "")
		s = strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
		s = titleCase(s)

		for re, replacement := range abbreviationRe {
			s = re.ReplaceAllString(s, replacement)
		}

		if len(s) > 1 {
			cleaned = append(cleaned, s)
		}
	}

	return cleaned
}

// stopwords - слова, которые почти наверняка не являются локациями
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"and or but the a an in on at to from with by for of as is was are were been " +
			"have has had do does did will would could should may might can must shall " +
			"i you he she it we they me him her us them my your his its our their " +
			"this that these those here there when where how what who which why then now " +
			"today tomorrow yesterday time day week month year morning afternoon evening night " +
			"first last next before after") {
		stopwords[w] = struct{}{}
	}
}

var locationIndicators = []string{
	"city", "town", "village", "county", "state", "country", "nation",
	"island", "beach", "mountain", "river", "lake", "park", "airport",
	"station", "hotel", "restaurant", "museum", "tower", "bridge",
	"cathedral", "church", "temple", "palace", "castle", "university",
	"college", "school", "hospital", "mall", "center", "square", "street",
	"avenue", "road", "boulevard", "plaza", "district", "neighborhood",
}

// ValidateLocationNames отфильтровывает стоп-слова, числа и мусор,
// убирает дубликаты с сохранением порядка
func (uc *LocationUseCase) ValidateLocationNames(names []string) []string {
	valid := make([]string, 0, len(names))
	seen := make(map[string]struct{})

	for _, name := range names {
		if name == "" || len(name) < 2 || len(name) > 50 {
			continue
		}

		lower := strings.ToLower(name)
		if _, isStopword := stopwords[lower]; isStopword {
			continue
		}

		digits := len(digitRe.FindAllString(name, -1))
		if digits > len(name)/2 {
			continue
		}

		hasLetters := strings.IndexFunc(name, unicode.IsLetter) >= 0
		isProperNoun := unicode.IsUpper([]rune(name)[0])
		hasIndicator := containsAnyWord(lower, locationIndicators)

		if !hasLetters || (!isProperNoun && !hasIndicator) {
			continue
		}

		key := strings.TrimSpace(lower)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		valid = append(valid, name)
	}

	return valid
}

// Geocode превращает названия в координаты: кеш, затем встроенный справочник
// городов, затем внешний геокодер. Неудача не ошибка: такая локация получает
// запись-заглушку без координат и будет пропущена генератором камеры.
func (uc *LocationUseCase) Geocode(ctx context.Context, names []string) []domain.Location {
	locations := make([]domain.Location, 0, len(names))

	for _, name := range names {
		if cached, err := uc.cacheRepo.GetLocation(ctx, name); err == nil && cached != nil {
			locations = append(locations, *cached)
			continue
		}

		if loc, ok := domain.PredefinedLocation(name); ok {
			locations = append(locations, loc)
			continue
		}

		loc, err := uc.geocodeRepo.Geocode(ctx, name)
		if err != nil {
			uc.logger.Warn("Geocoding request failed",
				zap.String("name", name),
				zap.Error(err))
		}

		if loc == nil {
			locations = append(locations, domain.Location{
				Name:     name,
				FullName: name,
				Error:    "Geocoding failed",
			})
			continue
		}

		if err := uc.cacheRepo.SetLocation(ctx, name, loc, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geocoded location",
				zap.String("name", name),
				zap.Error(err))
		}

		locations = append(locations, *loc)
	}

	return locations
}

// ExtractKeywordLocations находит в тексте города из встроенного справочника.
// Используется как запасной экстрактор, когда AI недоступен.
func (uc *LocationUseCase) ExtractKeywordLocations(text string) []string {
	lower := strings.ToLower(text)

	type match struct {
		name string
		pos  int
	}

	var matches []match
	seen := make(map[string]struct{})

	for _, key := range domain.PredefinedLocationNames() {
		pos := strings.Index(lower, key)
		if pos < 0 {
			continue
		}

		loc, _ := domain.PredefinedLocation(key)
		if _, dup := seen[loc.FullName]; dup {
			continue
		}
		seen[loc.FullName] = struct{}{}
		matches = append(matches, match{name: loc.FullName, pos: pos})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.name)
	}

	return names
}

// OptimizeOrder переупорядочивает локации жадным алгоритмом ближайшего соседа.
// Локации без координат добавляются в конец маршрута.
func (uc *LocationUseCase) OptimizeOrder(locations []domain.Location) []domain.Location {
	if len(locations) <= 2 {
		return locations
	}

	var valid, invalid []domain.Location
	for _, loc := range locations {
		if loc.HasCoordinates() {
			valid = append(valid, loc)
		} else {
			invalid = append(invalid, loc)
		}
	}

	if len(valid) <= 2 {
		return locations
	}

	optimized := make([]domain.Location, 0, len(locations))
	optimized = append(optimized, valid[0])
	remaining := append([]domain.Location(nil), valid[1:]...)
	current := valid[0]

	for len(remaining) > 0 {
		nearestIdx := 0
		nearestDist := distanceBetween(current, remaining[0])

		for i := 1; i < len(remaining); i++ {
			if d := distanceBetween(current, remaining[i]); d < nearestDist {
				nearestDist = d
				nearestIdx = i
			}
		}

		current = remaining[nearestIdx]
		optimized = append(optimized, current)
		remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)
	}

	return append(optimized, invalid...)
}

// TripStatistics считает сводку маршрута: суммарное расстояние, оценку
// времени в пути (60 км/ч) и ограничивающий прямоугольник
func (uc *LocationUseCase) TripStatistics(locations []domain.Location) *domain.TripStatistics {
	stats := &domain.TripStatistics{
		TotalLocations: len(locations),
	}

	var valid []domain.Location
	for _, loc := range locations {
		if loc.HasCoordinates() {
			valid = append(valid, loc)
		}
	}
	stats.ValidLocations = len(valid)

	if len(valid) < 2 {
		return stats
	}

	for i := 0; i+1 < len(valid); i++ {
		stats.TotalDistanceKm += distanceBetween(valid[i], valid[i+1])
	}
	stats.EstimatedTravelTimeHours = stats.TotalDistanceKm / 60.0
	stats.AverageDistanceKm = stats.TotalDistanceKm / float64(len(valid)-1)

	bbox := &domain.BoundingBox{
		North: -90, South: 90, East: -180, West: 180,
	}
	var sumLat, sumLon float64
	for _, loc := range valid {
		lat, lon := loc.Coordinates()
		sumLat += lat
		sumLon += lon
		if lat > bbox.North {
			bbox.North = lat
		}
		if lat < bbox.South {
			bbox.South = lat
		}
		if lon > bbox.East {
			bbox.East = lon
		}
		if lon < bbox.West {
			bbox.West = lon
		}
	}
	bbox.Center = domain.LatLon{
		Lat: sumLat / float64(len(valid)),
		Lon: sumLon / float64(len(valid)),
	}
	stats.BoundingBox = bbox

	return stats
}

// ProcessLocations - полный конвейер: очистка, валидация, геокодирование,
// оптимизация порядка и статистика
func (uc *LocationUseCase) ProcessLocations(ctx context.Context, raw []string) (
	cleaned []string,
	validated []string,
	geocoded []domain.Location,
	optimized []domain.Location,
	stats *domain.TripStatistics,
) {
	cleaned = uc.CleanLocationNames(raw)
	validated = uc.ValidateLocationNames(cleaned)
	geocoded = uc.Geocode(ctx, validated)
	optimized = uc.OptimizeOrder(geocoded)
	stats = uc.TripStatistics(optimized)
	return
}

func distanceBetween(a, b domain.Location) float64 {
	lat1, lon1 := a.Coordinates()
	lat2, lon2 := b.Coordinates()
	return utils.HaversineDistance(lat1, lon1, lat2, lon2)
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(strings.ToLower(f))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
