package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/contractors"
)

func (s *Server) registerAPIRoutes() {
	s.mux.HandleFunc("GET /api/places/search", s.handlePlacesSearch)
	s.mux.HandleFunc("GET /api/search/keywords", s.handleSearchKeywords)
	s.mux.HandleFunc("GET /api/search/locations", s.handleSearchLocations)
	s.mux.HandleFunc("GET /api/validate", s.handleValidate)
	s.mux.HandleFunc("POST /api/inquiries", s.handleCreateInquiry)
}

// PlacesResponse is the body of a successful places search.
type PlacesResponse struct {
	Results []*contractors.Place `json:"results"`
	Status  string               `json:"status"`
}

// handlePlacesSearch proxies a search to the places API.
func (s *Server) handlePlacesSearch(w http.ResponseWriter, r *http.Request) {
	search := contractors.PlaceSearch{
		Query:    r.URL.Query().Get("query"),
		Location: r.URL.Query().Get("location"),
	}
	if search.Location == "" {
		search.Location = contractors.DefaultSearchLocation
	}

	places, err := s.PlaceService.SearchPlaces(r.Context(), search)
	switch contractors.ErrorCode(err) {
	case "":
		writeJSON(w, http.StatusOK, &PlacesResponse{Results: places, Status: "success"})
	case contractors.EINVALID, contractors.EUNAVAILABLE:
		s.Error(w, r, err)
	default:
		s.Logger.Error("search places", "query", search.Query, "err", err)
		writeJSON(w, http.StatusInternalServerError, &ErrorResponse{
			Error:   "Failed to fetch data",
			Message: err.Error(),
		})
	}
}

// KeywordsResponse is the body of a keyword search.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

func (s *Server) handleSearchKeywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := s.ReferenceService.SearchKeywords(r.URL.Query().Get("q"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeCachedJSON(w, r, &KeywordsResponse{Keywords: keywords})
}

// LocationsResponse is the body of a location search.
type LocationsResponse struct {
	Locations []contractors.Location `json:"locations"`
}

func (s *Server) handleSearchLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.ReferenceService.SearchLocations(r.URL.Query().Get("q"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeCachedJSON(w, r, &LocationsResponse{Locations: locations})
}

// ValidateResponse is the body of a term validation.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	kind, err := contractors.ParseTermKind(r.URL.Query().Get("type"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	valid, err := s.ReferenceService.ValidateTerm(r.URL.Query().Get("term"), kind)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &ValidateResponse{Valid: valid})
}

// MaxInquiryBytes caps the size of an inquiry request body.
const MaxInquiryBytes = 64 << 10

// handleCreateInquiry stores a lead. JSON requests get the stored inquiry
// back. Form posts from a service page are redirected to that page, or see
// it again with the error and their input when the inquiry is rejected.
func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxInquiryBytes)

	if !isJSONRequest(r) {
		s.handleInquiryForm(w, r)
		return
	}

	var inquiry contractors.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		s.Error(w, r, contractors.Errorf(contractors.EINVALID, "Invalid JSON body"))
		return
	}

	if _, err := s.createInquiry(r.Context(), &inquiry); err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &inquiry)
}

func (s *Server) handleInquiryForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	inquiry := contractors.Inquiry{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Phone:    strings.TrimSpace(r.PostForm.Get("phone")),
		Service:  strings.TrimSpace(r.PostForm.Get("service")),
		Location: strings.TrimSpace(r.PostForm.Get("location")),
		Message:  strings.TrimSpace(r.PostForm.Get("message")),
	}

	service, err := s.createInquiry(r.Context(), &inquiry)
	if err == nil {
		http.Redirect(w, r, "/"+service.Slug+"?submitted=1", http.StatusSeeOther)
		return
	}

	status, message := ErrorStatusCode(contractors.ErrorCode(err)), contractors.ErrorMessage(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("create inquiry", "err", err)
		message = "Internal error."
	}

	// Without a known service there is no page to return to.
	service, lookupErr := s.Services.FindByName(inquiry.Service)
	if lookupErr != nil {
		http.Error(w, message, status)
		return
	}
	s.renderServicePage(w, r, status, &servicePage{
		Service:   service,
		Form:      inquiry,
		FormError: message,
	})
}

// createInquiry checks and stores inquiry and returns the service it is for.
func (s *Server) createInquiry(ctx context.Context, inquiry *contractors.Inquiry) (*contractors.Service, error) {
	service, err := s.checkInquiry(inquiry)
	if err != nil {
		return nil, err
	}
	if err := s.InquiryService.CreateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}
	return service, nil
}

// checkInquiry validates an inquiry against the service catalog and the
// reference locations and returns the service it is for.
func (s *Server) checkInquiry(inquiry *contractors.Inquiry) (*contractors.Service, error) {
	if err := inquiry.Validate(); err != nil {
		return nil, err
	}

	service, err := s.Services.FindByName(inquiry.Service)
	if err != nil {
		return nil, contractors.Errorf(contractors.EINVALID, "unknown service %q", inquiry.Service)
	}
	inquiry.Service = service.Name

	if inquiry.Location != "" {
		ok, err := s.ReferenceService.ValidateTerm(inquiry.Location, contractors.KindLocation)
		if err != nil {
			return nil, err
		} else if !ok {
			return nil, contractors.Errorf(contractors.EINVALID, "unknown location %q", inquiry.Location)
		}
	}
	return service, nil
}

// writeCachedJSON writes v as JSON with a content-hash ETag and answers
// matching If-None-Match requests with 304.
func (s *Server) writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.Error(w, r, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(buf.Bytes()))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func isJSONRequest(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// pageURL joins the base URL and a site path.
func pageURL(base, path string) string {
	u, err := url.JoinPath(base, path)
	if err != nil {
		return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
	}
	return u
}
