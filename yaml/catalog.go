// Package yaml loads the service catalog from a YAML file.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/contractors"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a YAML list of services from path.
//
// A missing or unreadable file is EFILEACCESS, malformed YAML or unknown
// fields are EPARSE, and an empty catalog, an invalid service or a
// duplicate slug is EINVALID.
func LoadCatalog(path string) (contractors.Services, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, contractors.WrapErrorf(err, contractors.EFILEACCESS, "cannot read catalog %s", path)
	}
	defer f.Close()

	return DecodeCatalog(f)
}

// DecodeCatalog reads a YAML list of services from r.
func DecodeCatalog(r io.Reader) (contractors.Services, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var services contractors.Services
	if err := dec.Decode(&services); err != nil && !errors.Is(err, io.EOF) {
		return nil, contractors.WrapErrorf(err, contractors.EPARSE, "cannot parse catalog")
	}

	if len(services) == 0 {
		return nil, contractors.Errorf(contractors.EINVALID, "catalog has no services")
	}

	seen := make(map[string]bool, len(services))
	for i, s := range services {
		if s == nil {
			return nil, contractors.Errorf(contractors.EINVALID, "catalog entry %d is empty", i+1)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if seen[s.Slug] {
			return nil, contractors.Errorf(contractors.EINVALID, "duplicate service slug %q", s.Slug)
		}
		seen[s.Slug] = true
	}

	return services, nil
}
