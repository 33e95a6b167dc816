package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// InterpolateGreatCircle строит путь по дуге большого круга между двумя точками.
// Возвращает n+1 пар (lat, lon), включая обе границы. При совпадающих точках
// сферическая интерполяция вырождается (sin(d)=0), поэтому используется
// линейное смешивание коэффициентов.
func InterpolateGreatCircle(lat1, lon1, lat2, lon2 float64, n int) [][2]float64 {
	if n < 1 {
		n = 1
	}

	phi1 := lat1 * math.Pi / 180.0
	lam1 := lon1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	lam2 := lon2 * math.Pi / 180.0

	// Угловое расстояние между точками
	cosD := math.Sin(phi1)*math.Sin(phi2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Cos(lam2-lam1)
	cosD = math.Max(-1, math.Min(1, cosD))
	d := math.Acos(cosD)
	sinD := math.Sin(d)

	points := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)

		var a, b float64
		if sinD != 0 {
			a = math.Sin((1-f)*d) / sinD
			b = math.Sin(f*d) / sinD
		} else {
			a = 1 - f
			b = f
		}

		x := a*math.Cos(phi1)*math.Cos(lam1) + b*math.Cos(phi2)*math.Cos(lam2)
		y := a*math.Cos(phi1)*math.Sin(lam1) + b*math.Cos(phi2)*math.Sin(lam2)
		z := a*math.Sin(phi1) + b*math.Sin(phi2)

		lat := math.Atan2(z, math.Sqrt(x*x+y*y)) * 180.0 / math.Pi
		lon := math.Atan2(y, x) * 180.0 / math.Pi

		points = append(points, [2]float64{lat, lon})
	}

	return points
}

// Bearing вычисляет прямой азимут от первой точки ко второй в градусах [0, 360)
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dLam := (lon2 - lon1) * math.Pi / 180.0

	y := math.Sin(dLam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) -
		math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLam)

	bearing := math.Atan2(y, x) * 180.0 / math.Pi
	return math.Mod(bearing+360, 360)
}

// NormalizeHeading приводит угол камеры к интервалу [0, 360)
func NormalizeHeading(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
