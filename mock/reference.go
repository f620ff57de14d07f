package mock

import (
	"github.com/fwojciec/contractors"
)

var _ contractors.ReferenceService = (*ReferenceService)(nil)

// ReferenceService is a mock implementation of contractors.ReferenceService.
type ReferenceService struct {
	LoadFn            func() (*contractors.ReferenceIndex, error)
	ValidateTermFn    func(term string, kind contractors.TermKind) (bool, error)
	SearchKeywordsFn  func(query string) ([]string, error)
	SearchLocationsFn func(query string) ([]contractors.Location, error)
}

func (s *ReferenceService) Load() (*contractors.ReferenceIndex, error) {
	return s.LoadFn()
}

func (s *ReferenceService) ValidateTerm(term string, kind contractors.TermKind) (bool, error) {
	return s.ValidateTermFn(term, kind)
}

func (s *ReferenceService) SearchKeywords(query string) ([]string, error) {
	return s.SearchKeywordsFn(query)
}

func (s *ReferenceService) SearchLocations(query string) ([]contractors.Location, error) {
	return s.SearchLocationsFn(query)
}

// NewReferenceService returns a ReferenceService whose queries are answered
// from idx.
func NewReferenceService(idx *contractors.ReferenceIndex) *ReferenceService {
	return &ReferenceService{
		LoadFn: func() (*contractors.ReferenceIndex, error) {
			return idx, nil
		},
		ValidateTermFn: idx.Validate,
		SearchKeywordsFn: func(query string) ([]string, error) {
			return idx.SearchKeywords(query), nil
		},
		SearchLocationsFn: func(query string) ([]contractors.Location, error) {
			return idx.SearchLocations(query), nil
		},
	}
}
