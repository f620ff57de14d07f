// Package csv provides a contractors.ReferenceService backed by the keyword
// and location CSV files shipped with the site.
package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/contractors"
	"github.com/jszwec/csvutil"
)

// Default file names, relative to the data directory.
const (
	DefaultKeywordsPath  = "keywords.csv"
	DefaultLocationsPath = "locations.csv"
)

// Ensure ReferenceService implements contractors.ReferenceService at compile time.
var _ contractors.ReferenceService = (*ReferenceService)(nil)

type keywordRow struct {
	Keyword string `csv:"keyword"`
}

type locationRow struct {
	Location string `csv:"location"`
	County   string `csv:"county"`
}

// ReferenceService loads the reference index from CSV files on first use
// and serves every later call from memory.
//
// Concurrent first callers share a single load. A failed load leaves the
// cache empty so the next call tries again.
type ReferenceService struct {
	fsys          fs.FS
	keywordsPath  string
	locationsPath string

	mu    sync.Mutex // serializes loading
	index atomic.Pointer[contractors.ReferenceIndex]
}

// Option configures a ReferenceService.
type Option func(*ReferenceService)

// WithKeywordsPath sets the keyword file path within the file system.
// Defaults to DefaultKeywordsPath.
func WithKeywordsPath(path string) Option {
	return func(s *ReferenceService) {
		s.keywordsPath = path
	}
}

// WithLocationsPath sets the location file path within the file system.
// Defaults to DefaultLocationsPath.
func WithLocationsPath(path string) Option {
	return func(s *ReferenceService) {
		s.locationsPath = path
	}
}

// NewReferenceService creates a ReferenceService reading from fsys.
// Nothing is read until the first call.
func NewReferenceService(fsys fs.FS, opts ...Option) *ReferenceService {
	s := &ReferenceService{
		fsys:          fsys,
		keywordsPath:  DefaultKeywordsPath,
		locationsPath: DefaultLocationsPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the cached index, reading both files on the first successful call.
func (s *ReferenceService) Load() (*contractors.ReferenceIndex, error) {
	if idx := s.index.Load(); idx != nil {
		return idx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have finished loading while we waited.
	if idx := s.index.Load(); idx != nil {
		return idx, nil
	}

	idx, err := s.load()
	if err != nil {
		return nil, err
	}
	s.index.Store(idx)
	return idx, nil
}

func (s *ReferenceService) load() (*contractors.ReferenceIndex, error) {
	keywordRows, err := decodeFile[keywordRow](s.fsys, s.keywordsPath, "keyword")
	if err != nil {
		return nil, err
	}
	locationRows, err := decodeFile[locationRow](s.fsys, s.locationsPath, "location", "county")
	if err != nil {
		return nil, err
	}

	idx := &contractors.ReferenceIndex{
		Keywords:  make([]string, 0, len(keywordRows)),
		Locations: make([]contractors.Location, 0, len(locationRows)),
	}
	for _, row := range keywordRows {
		idx.Keywords = append(idx.Keywords, row.Keyword)
	}
	for _, row := range locationRows {
		idx.Locations = append(idx.Locations, contractors.Location{
			Location: row.Location,
			County:   row.County,
		})
	}
	return idx, nil
}

// ValidateTerm reports whether term matches a keyword or location name, ignoring case.
func (s *ReferenceService) ValidateTerm(term string, kind contractors.TermKind) (bool, error) {
	idx, err := s.Load()
	if err != nil {
		return false, err
	}
	return idx.Validate(term, kind)
}

// SearchKeywords returns keywords containing query, ignoring case.
func (s *ReferenceService) SearchKeywords(query string) ([]string, error) {
	idx, err := s.Load()
	if err != nil {
		return nil, err
	}
	return idx.SearchKeywords(query), nil
}

// SearchLocations returns locations whose name or county contains query, ignoring case.
func (s *ReferenceService) SearchLocations(query string) ([]contractors.Location, error) {
	idx, err := s.Load()
	if err != nil {
		return nil, err
	}
	return idx.SearchLocations(query), nil
}

// decodeFile reads a CSV file with a header row and decodes each data row
// into T by column name. Blank lines are skipped. Every column in required
// must be present in the header.
func decodeFile[T any](fsys fs.FS, path string, required ...string) ([]T, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, contractors.WrapErrorf(err, contractors.EFILEACCESS, "cannot read %s", path)
	}

	dec, err := csvutil.NewDecoder(csv.NewReader(bytes.NewReader(data)))
	if errors.Is(err, io.EOF) {
		return nil, contractors.Errorf(contractors.EPARSE, "%s: missing header row", path)
	} else if err != nil {
		return nil, contractors.WrapErrorf(err, contractors.EPARSE, "%s: invalid CSV", path)
	}

	var missing []string
	for _, col := range required {
		if !slices.Contains(dec.Header(), col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, contractors.Errorf(contractors.EPARSE, "%s: missing required column(s): %s", path, strings.Join(missing, ", "))
	}

	var rows []T
	for {
		var row T
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, contractors.WrapErrorf(err, contractors.EPARSE, "%s: invalid CSV", path)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
