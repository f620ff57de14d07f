package contractors

import "strings"

// Location is a searchable place name paired with its administrative county.
type Location struct {
	Location string `json:"location"`
	County   string `json:"county"`
}

// ReferenceIndex holds the keyword and location reference lists used for
// search and validation. Entries keep the row order of their source files.
// An index is read-only once built.
type ReferenceIndex struct {
	Keywords  []string   `json:"keywords"`
	Locations []Location `json:"locations"`
}

// TermKind selects which reference list a term is validated against.
type TermKind string

// TermKind constants for ValidateTerm.
const (
	KindKeyword  TermKind = "keyword"
	KindLocation TermKind = "location"
)

// ParseTermKind converts a string into a TermKind.
// Returns EINVALID for anything other than "keyword" or "location".
func ParseTermKind(s string) (TermKind, error) {
	switch TermKind(s) {
	case KindKeyword, KindLocation:
		return TermKind(s), nil
	}
	return "", Errorf(EINVALID, "unknown term type %q", s)
}

// Validate reports whether term equals a keyword or a location name,
// ignoring case. Case is folded with strings.ToLower, as in search, and no
// other normalization is applied.
func (idx *ReferenceIndex) Validate(term string, kind TermKind) (bool, error) {
	t := strings.ToLower(term)
	switch kind {
	case KindKeyword:
		for _, k := range idx.Keywords {
			if strings.ToLower(k) == t {
				return true, nil
			}
		}
		return false, nil
	case KindLocation:
		for _, loc := range idx.Locations {
			if strings.ToLower(loc.Location) == t {
				return true, nil
			}
		}
		return false, nil
	}
	return false, Errorf(EINVALID, "unknown term type %q", kind)
}

// SearchKeywords returns every keyword containing query, ignoring case,
// in source order. An empty query matches all keywords.
func (idx *ReferenceIndex) SearchKeywords(query string) []string {
	q := strings.ToLower(query)
	matches := []string{}
	for _, k := range idx.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			matches = append(matches, k)
		}
	}
	return matches
}

// SearchLocations returns every location whose name or county contains
// query, ignoring case, in source order.
func (idx *ReferenceIndex) SearchLocations(query string) []Location {
	q := strings.ToLower(query)
	matches := []Location{}
	for _, loc := range idx.Locations {
		if strings.Contains(strings.ToLower(loc.Location), q) ||
			strings.Contains(strings.ToLower(loc.County), q) {
			matches = append(matches, loc)
		}
	}
	return matches
}

// ReferenceService answers validation and search queries against the
// reference data. The underlying index is loaded on first use and cached
// for the life of the process.
type ReferenceService interface {
	// Load returns the cached index, reading the source files on first call.
	// Returns EFILEACCESS if a source file cannot be read and EPARSE if it is
	// malformed. A failed load is not cached.
	Load() (*ReferenceIndex, error)

	// ValidateTerm reports whether term exactly matches (ignoring case) a
	// keyword or a location name.
	ValidateTerm(term string, kind TermKind) (bool, error)

	// SearchKeywords returns keywords containing query, ignoring case.
	SearchKeywords(query string) ([]string, error)

	// SearchLocations returns locations whose name or county contains
	// query, ignoring case.
	SearchLocations(query string) ([]Location, error)
}
