// Package geo annotates places with their distance from the service area.
package geo

import (
	"context"

	"github.com/fwojciec/contractors"
	"github.com/golang/geo/s2"
)

// EarthRadiusMiles is the mean radius of the earth.
const EarthRadiusMiles = 3958.8

// DefaultCenter is downtown Denver.
var DefaultCenter = contractors.LatLng{Lat: 39.7392, Lng: -104.9903}

// Ensure DistancePlaceService implements contractors.PlaceService.
var _ contractors.PlaceService = (*DistancePlaceService)(nil)

// DistancePlaceService wraps a PlaceService and sets DistanceMiles on every
// place that has a geometry. Results are neither filtered nor reordered.
type DistancePlaceService struct {
	next   contractors.PlaceService
	center contractors.LatLng
}

// NewDistancePlaceService creates a DistancePlaceService measuring from center.
func NewDistancePlaceService(next contractors.PlaceService, center contractors.LatLng) *DistancePlaceService {
	return &DistancePlaceService{
		next:   next,
		center: center,
	}
}

// SearchPlaces delegates to the wrapped service and annotates the results.
func (s *DistancePlaceService) SearchPlaces(ctx context.Context, search contractors.PlaceSearch) ([]*contractors.Place, error) {
	places, err := s.next.SearchPlaces(ctx, search)
	if err != nil {
		return nil, err
	}
	for _, p := range places {
		if p.Geometry == nil {
			continue
		}
		d := DistanceMiles(s.center, p.Geometry.Location)
		p.DistanceMiles = &d
	}
	return places, nil
}

// DistanceMiles returns the great-circle distance between a and b in miles.
func DistanceMiles(a, b contractors.LatLng) float64 {
	from := s2.LatLngFromDegrees(a.Lat, a.Lng)
	to := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return from.Distance(to).Radians() * EarthRadiusMiles
}
