package mock

import (
	"context"

	"github.com/fwojciec/contractors"
)

var _ contractors.PlaceService = (*PlaceService)(nil)

// PlaceService is a mock implementation of contractors.PlaceService.
type PlaceService struct {
	SearchPlacesFn func(ctx context.Context, search contractors.PlaceSearch) ([]*contractors.Place, error)
}

func (s *PlaceService) SearchPlaces(ctx context.Context, search contractors.PlaceSearch) ([]*contractors.Place, error) {
	return s.SearchPlacesFn(ctx, search)
}
