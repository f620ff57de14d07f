package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/fwojciec/contractors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func (s *Server) registerPageRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /{slug}", s.handleServicePage)
}

// pageMeta holds the head metadata shared by every page.
type pageMeta struct {
	Title       string
	Description string
	URL         string
	SiteName    string
}

type homePage struct {
	Meta     pageMeta
	Services contractors.Services
}

type servicePage struct {
	Meta         pageMeta
	Service      *contractors.Service
	Places       []placeView
	Locations    []contractors.Location
	Form         contractors.Inquiry
	FormError    string
	Submitted    bool
	ContactPhone string
	ContactTel   template.URL
	ButtonText   string
}

// placeView is a listing entry formatted for display.
type placeView struct {
	Name     string
	Address  string
	Phone    string
	Website  string
	Rating   string
	Distance string
	OpenNow  string
	Hours    []string
}

func newPlaceView(p *contractors.Place) placeView {
	v := placeView{
		Name:    p.Name,
		Address: p.FormattedAddress,
		Phone:   p.PhoneNumber,
		Website: p.Website,
	}
	if p.Rating != nil {
		v.Rating = fmt.Sprintf("%.1f", *p.Rating)
	}
	if p.DistanceMiles != nil {
		v.Distance = fmt.Sprintf("%.1f mi", *p.DistanceMiles)
	}
	if p.OpeningHours != nil {
		if p.OpeningHours.OpenNow != nil {
			v.OpenNow = "Closed now"
			if *p.OpeningHours.OpenNow {
				v.OpenNow = "Open now"
			}
		}
		v.Hours = p.OpeningHours.WeekdayText
	}
	return v
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", &homePage{
		Meta: pageMeta{
			Title:       "Top Contractors in Denver - Trusted Local Home Services",
			Description: "Find top-rated local contractors in Denver for remodeling, landscaping, and more.",
			URL:         pageURL(s.BaseURL, "/"),
			SiteName:    SiteName,
		},
		Services: s.Services,
	})
}

// handleServicePage renders the listing page for a service.
func (s *Server) handleServicePage(w http.ResponseWriter, r *http.Request) {
	service, err := s.Services.FindBySlug(r.PathValue("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.renderServicePage(w, r, http.StatusOK, &servicePage{
		Service:   service,
		Submitted: r.URL.Query().Get("submitted") == "1",
	})
}

// renderServicePage fills in listings, location suggestions and contact
// details and renders page with status. A failed places search or
// location lookup is logged and the page renders without that section.
func (s *Server) renderServicePage(w http.ResponseWriter, r *http.Request, status int, page *servicePage) {
	service := page.Service

	places, err := s.PlaceService.SearchPlaces(r.Context(), contractors.PlaceSearch{
		Query:    service.Query,
		Location: contractors.DefaultSearchLocation,
	})
	if err != nil {
		s.Logger.Error("fetch listings",
			"service", service.Slug,
			"err", err,
		)
	}

	page.Places = make([]placeView, 0, len(places))
	for _, p := range places {
		page.Places = append(page.Places, newPlaceView(p))
	}

	if page.Locations, err = s.ReferenceService.SearchLocations(""); err != nil {
		s.Logger.Error("load locations",
			"service", service.Slug,
			"err", err,
		)
	}

	page.Meta = pageMeta{
		Title:       service.Title,
		Description: service.Description,
		URL:         pageURL(s.BaseURL, service.Slug),
		SiteName:    SiteName,
	}
	page.ContactPhone = ContactPhone
	page.ContactTel = template.URL(contactTelURI)
	page.ButtonText = "Get Free Quotes"

	s.render(w, r, status, "service.html", page)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.Logger.Error("render", "template", name, "err", err)
		http.Error(w, "Internal error.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}
