// Package geo - индекс геопозиций: валидация координат, расстояние по большому кругу и поиск в радиусе.
package geo

import (
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/nightlife_presence/internal/models"
)

// SRID WGS84, в котором хранятся все точки
const SRID = 4326

const earthRadiusMeters = 6371008.8

// Validate отклоняет координаты вне допустимого диапазона, не обрезая их.
func Validate(loc models.Location) error {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return fmt.Errorf("%w: coordinates must be numbers", models.ErrInvalidLocation)
	}
	if math.Abs(loc.Latitude) > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", models.ErrInvalidLocation, loc.Latitude)
	}
	if math.Abs(loc.Longitude) > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", models.ErrInvalidLocation, loc.Longitude)
	}
	return nil
}

// Distance возвращает расстояние в метрах по формуле гаверсинусов
func Distance(a, b models.Location) float64 {
	if a == b {
		return 0
	}
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Hit - найденная сущность и расстояние до центра
type Hit[T any] struct {
	Entity         T
	DistanceMeters float64
}

// Locator извлекает координаты сущности; ok=false означает, что точки нет.
type Locator[T any] func(T) (models.Location, bool)

// Query возвращает сущности из candidates в пределах radiusMeters от center
// (граница включается), отсортированные по возрастанию расстояния.
// Сущности без координат пропускаются. Радиус 0 оставляет только совпадающие точки.
func Query[T any](center models.Location, radiusMeters float64, candidates []T, locate Locator[T]) ([]Hit[T], error) {
	if err := Validate(center); err != nil {
		return nil, err
	}
	if radiusMeters < 0 || math.IsNaN(radiusMeters) {
		return nil, fmt.Errorf("%w: radius must not be negative", models.ErrInvalidInput)
	}

	hits := make([]Hit[T], 0, len(candidates))
	for _, c := range candidates {
		loc, ok := locate(c)
		if !ok {
			continue
		}
		if err := Validate(loc); err != nil {
			continue
		}
		d := Distance(center, loc)
		if d <= radiusMeters {
			hits = append(hits, Hit[T]{Entity: c, DistanceMeters: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceMeters < hits[j].DistanceMeters
	})
	return hits, nil
}
