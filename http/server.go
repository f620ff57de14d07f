package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/contractors"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 5 * time.Second

// ReadHeaderTimeout bounds how long a client may take to send request headers.
const ReadHeaderTimeout = 10 * time.Second

// Site-wide constants shown on every page.
const (
	SiteName      = "Denver Contractors"
	ContactPhone  = "(720) 463-2319"
	contactTelURI = "tel:+17204632319"
)

// Server represents the HTTP server for the contractors site.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Bind address for the server's listener.
	Addr string

	// Public URL of the site, used for canonical links and the sitemap.
	BaseURL string

	// Time allowed for reading request headers. Connections that stall
	// longer are closed.
	ReadHeaderTimeout time.Duration

	Logger *slog.Logger

	// Services used by the various HTTP routes.
	PlaceService     contractors.PlaceService
	ReferenceService contractors.ReferenceService
	InquiryService   contractors.InquiryService
	Services         contractors.Services
}

// NewServer returns a new instance of Server with routes registered.
// Dependencies must be set before serving requests.
func NewServer() *Server {
	s := &Server{
		mux:               http.NewServeMux(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		Logger:            slog.New(slog.DiscardHandler),
		Services:          contractors.DefaultServices(),
	}
	s.server = &http.Server{Handler: http.HandlerFunc(s.serveHTTP)}

	s.registerAPIRoutes()
	s.registerPageRoutes()
	s.mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)

	return s
}

// Open begins listening on the bind address and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server.ReadHeaderTimeout = s.ReadHeaderTimeout

	go s.server.Serve(s.ln)

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the TCP port for the running server.
// This is useful in tests where we allocate a random port by using ":0".
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// ServeHTTP dispatches the request to the matching route.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveHTTP(w, r)
}

// serveHTTP routes the request and logs it.
func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	defer func(begin time.Time) {
		s.Logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
		)
	}(time.Now())
	s.mux.ServeHTTP(rec, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Error writes err as a JSON error response. Server-side errors are logged
// and shown to the client as "Internal error.".
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := contractors.ErrorCode(err), contractors.ErrorMessage(err)

	status := ErrorStatusCode(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		message = "Internal error."
	}

	writeJSON(w, status, &ErrorResponse{Error: message})
}

// ErrorResponse represents a JSON structure for error output.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// lookup of application error codes to HTTP status codes.
var codes = map[string]int{
	contractors.EINVALID:     http.StatusBadRequest,
	contractors.ENOTFOUND:    http.StatusNotFound,
	contractors.EUNAVAILABLE: http.StatusServiceUnavailable,
	contractors.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the associated HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
