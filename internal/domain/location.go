package domain

// Location - геокодированная локация путешествия.
// Nil-координаты означают, что геокодирование не удалось: такая локация
// пропускается генератором камеры, но остаётся в текстовом таймлайне.
type Location struct {
	Name      string   `json:"name"`
	FullName  string   `json:"full_name,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error,omitempty"`
}

// HasCoordinates сообщает, можно ли использовать локацию в расчёте пути камеры
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Coordinates возвращает (lat, lon); вызывать только после HasCoordinates
func (l Location) Coordinates() (float64, float64) {
	return *l.Latitude, *l.Longitude
}

type BoundingBox struct {
	North  float64 `json:"north"`
	South  float64 `json:"south"`
	East   float64 `json:"east"`
	West   float64 `json:"west"`
	Center LatLon  `json:"center"`
}

type LatLon struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// TripStatistics - сводная статистика маршрута
type TripStatistics struct {
	TotalDistanceKm          float64      `json:"total_distance_km"`
	TotalLocations           int          `json:"total_locations"`
	ValidLocations           int          `json:"valid_locations"`
	EstimatedTravelTimeHours float64      `json:"estimated_travel_time_hours"`
	AverageDistanceKm        float64      `json:"average_distance_between_stops"`
	BoundingBox              *BoundingBox `json:"bounding_box"`
}

// predefinedLocations - координаты известных городов для офлайн-геокодирования,
// когда внешний геокодер недоступен или не нашёл совпадения
var predefinedLocations = map[string]Location{
	"san francisco": predefined("San Francisco", 37.7749, -122.4194),
	"monterey":      predefined("Monterey", 36.6002, -121.8947),
	"big sur":       predefined("Big Sur", 36.2704, -121.8081),
	"los angeles":   predefined("Los Angeles", 34.0522, -118.2437),
	"new york":      predefined("New York", 40.7128, -74.0060),
	"new york city": predefined("New York City", 40.7128, -74.0060),
	"paris":         predefined("Paris", 48.8566, 2.3522),
	"tokyo":         predefined("Tokyo", 35.6762, 139.6503),
	"london":        predefined("London", 51.5074, -0.1278),
	"rome":          predefined("Rome", 41.9028, 12.4964),
	"berlin":        predefined("Berlin", 52.5200, 13.4050),
	"amsterdam":     predefined("Amsterdam", 52.3676, 4.9041),
	"prague":        predefined("Prague", 50.0755, 14.4378),
	"vienna":        predefined("Vienna", 48.2082, 16.3738),
	"seoul":         predefined("Seoul", 37.5665, 126.9780),
	"shanghai":      predefined("Shanghai", 31.2304, 121.4737),
	"hong kong":     predefined("Hong Kong", 22.3193, 114.1694),
	"singapore":     predefined("Singapore", 1.3521, 103.8198),
	"bangkok":       predefined("Bangkok", 13.7563, 100.5018),
}

func predefined(name string, lat, lon float64) Location {
	return Location{
		Name:      name,
		FullName:  name,
		Latitude:  &lat,
		Longitude: &lon,
	}
}

// PredefinedLocation ищет локацию в встроенном справочнике городов
func PredefinedLocation(name string) (Location, bool) {
	loc, ok := predefinedLocations[normalizeName(name)]
	if ok {
		loc.Name = name
	}
	return loc, ok
}

// PredefinedLocationNames возвращает названия городов справочника в виде
// нормализованных ключей для простого поиска по тексту
func PredefinedLocationNames() []string {
	names := make([]string, 0, len(predefinedLocations))
	for key := range predefinedLocations {
		names = append(names, key)
	}
	return names
}
