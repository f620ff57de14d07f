package contractors

import "strings"

// Service is a contractor category with its own listing page.
type Service struct {
	Slug        string `json:"slug" yaml:"slug"`
	Name        string `json:"name" yaml:"name"`
	Query       string `json:"query" yaml:"query"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Heading     string `json:"heading" yaml:"heading"`
	Tagline     string `json:"tagline" yaml:"tagline"`

	// Featured heads the listings section. See FeaturedHeading.
	Featured string `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// FeaturedHeading returns the listings heading, falling back to
// "Featured <Name> Contractors in Denver".
func (s *Service) FeaturedHeading() string {
	if s.Featured != "" {
		return s.Featured
	}
	return "Featured " + s.Name + " Contractors in Denver"
}

// Validate returns an error if the service contains invalid fields.
func (s *Service) Validate() error {
	if s.Slug == "" {
		return Errorf(EINVALID, "service slug required")
	}
	if s.Name == "" {
		return Errorf(EINVALID, "service %q name required", s.Slug)
	}
	if s.Query == "" {
		return Errorf(EINVALID, "service %q query required", s.Slug)
	}
	return nil
}

// Services is an ordered catalog of services.
type Services []*Service

// FindBySlug returns the service with the given slug.
// Returns ENOTFOUND if no service matches.
func (a Services) FindBySlug(slug string) (*Service, error) {
	for _, s := range a {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "service %q not found", slug)
}

// FindByName returns the service whose name matches, ignoring case.
// Returns ENOTFOUND if no service matches.
func (a Services) FindByName(name string) (*Service, error) {
	for _, s := range a {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "service %q not found", name)
}

// DefaultServices returns the built-in service catalog.
func DefaultServices() Services {
	return Services{
		{
			Slug:        "bathroom-remodeling",
			Name:        "Bathroom Remodeling",
			Query:       "bathroom remodeling contractors",
			Title:       "Top Bathroom Remodeling Contractors in Denver - Professional Renovation Services",
			Description: "Find the best bathroom remodeling contractors in Denver. Professional renovation services for your bathroom.",
			Heading:     "Top-Rated Bathroom Remodeling Contractors in Denver",
			Tagline:     "Find skilled and professional contractors in Denver for your bathroom renovation project.",
		},
		{
			Slug:        "kitchen-remodeling",
			Name:        "Kitchen Remodeling",
			Query:       "kitchen remodeling contractors",
			Title:       "Top Kitchen Remodeling Contractors in Denver - Professional Renovation Services",
			Description: "Find the best kitchen remodeling contractors in Denver. Professional renovation services for your kitchen.",
			Heading:     "Top-Rated Kitchen Remodeling Contractors in Denver",
			Tagline:     "Find skilled and professional contractors in Denver for your kitchen renovation project.",
		},
		{
			Slug:        "landscapers",
			Name:        "Landscaping",
			Query:       "landscapers",
			Title:       "Top Landscapers in Denver - Professional Landscaping Services",
			Description: "Find the best landscapers in Denver. Professional landscaping services for residential and commercial properties.",
			Heading:     "Top-Rated Landscapers in Denver",
			Tagline:     "Find skilled and professional landscapers in Denver for all your outdoor space needs.",
			Featured:    "Featured Landscapers in Denver",
		},
	}
}
