package contractors

import "context"

// DefaultSearchLocation is used when a place search does not name a location.
const DefaultSearchLocation = "Denver, CO"

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry holds the position of a place.
type Geometry struct {
	Location LatLng `json:"location"`
}

// OpeningHours describes when a business is open.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Place represents a business returned by the places API, augmented with
// contact details.
type Place struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	Types            []string      `json:"types,omitempty"`
	PhoneNumber      string        `json:"phone_number,omitempty"`
	Website          string        `json:"website,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`

	// Great-circle distance from the service area center, when known.
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// PlaceSearch describes a search for businesses.
type PlaceSearch struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// Validate returns an error if the search is missing a query.
func (s *PlaceSearch) Validate() error {
	if s.Query == "" {
		return Errorf(EINVALID, "Query parameter is required")
	}
	return nil
}

// Text returns the free-text query sent to the places API,
// e.g. "landscapers in Denver, CO".
func (s *PlaceSearch) Text() string {
	loc := s.Location
	if loc == "" {
		loc = DefaultSearchLocation
	}
	return s.Query + " in " + loc
}

// PlaceService finds businesses.
type PlaceService interface {
	// SearchPlaces returns businesses matching the search, each augmented
	// with phone number, website, and opening hours where available.
	// Returns EINVALID if the query is empty and EUNAVAILABLE if the
	// service is not configured.
	SearchPlaces(ctx context.Context, search PlaceSearch) ([]*Place, error)
}
