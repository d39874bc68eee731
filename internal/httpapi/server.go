package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/web"
)

// VenueService describes venue workflows.
type VenueService interface {
	Areas(ctx context.Context) ([]models.VenueArea, error)
	Search(ctx context.Context, term string) (models.SearchResult, error)
	Get(ctx context.Context, id int64) (*models.Venue, error)
	Detail(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue *models.Venue) error
	Delete(ctx context.Context, id int64) (string, error)
}

// ArtistService describes artist workflows.
type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.SearchResult, error)
	Get(ctx context.Context, id int64) (*models.Artist, error)
	Detail(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist *models.Artist) error
}

// ShowService describes show workflows.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show *models.Show) (*models.Show, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	pages   *web.Renderer

	now func() time.Time
	loc *time.Location
}

// Option customises a Server.
type Option func(*Server)

// WithClock sets the clock used to prefill the new show form.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLocation sets the zone of submitted start times that carry none.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) { s.loc = loc }
}

// New configures a Server with the given services and page renderer.
func New(venues VenueService, artists ArtistService, shows ShowService, pages *web.Renderer, opts ...Option) *Server {
	s := &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		pages:   pages,
		now:     time.Now,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes exposes the site's pages and form endpoints.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	// Venues
	r.HandleFunc("/venues", s.handleListVenues).Methods(http.MethodGet)
	r.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	r.HandleFunc("/venues/create", s.handleNewVenueForm).Methods(http.MethodGet)
	r.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	r.HandleFunc("/venues/{id:[0-9]+}", s.handleShowVenue).Methods(http.MethodGet)
	r.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenueForm).Methods(http.MethodGet)
	r.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)
	r.HandleFunc("/venues/{id:[0-9]+}/delete", s.handleDeleteVenue).Methods(http.MethodDelete)

	// Artists
	r.HandleFunc("/artists", s.handleListArtists).Methods(http.MethodGet)
	r.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	r.HandleFunc("/artists/create", s.handleNewArtistForm).Methods(http.MethodGet)
	r.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	r.HandleFunc("/artists/{id:[0-9]+}", s.handleShowArtist).Methods(http.MethodGet)
	r.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtistForm).Methods(http.MethodGet)
	r.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	// Shows
	r.HandleFunc("/shows", s.handleListShows).Methods(http.MethodGet)
	r.HandleFunc("/shows/create", s.handleNewShowForm).Methods(http.MethodGet)
	r.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(s.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	return r
}

// ErrorPage renders the 500 page. It is the fallback of the panic recovery
// middleware.
func (s *Server) ErrorPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusInternalServerError, web.ErrorServer, web.Page{Title: "Server error"})
	})
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.PageHome, web.Page{})
}

// render writes page as HTML, or its data as JSON when the client asks for
// it. A pending flash message is consumed unless page already carries one.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, page web.Page) {
	if page.Flash == nil {
		page.Flash = takeFlash(w, r)
	}

	if wantsJSON(r) {
		payload := page.Data
		if status >= http.StatusBadRequest {
			if view, ok := payload.(web.FormView); ok {
				payload = errorResponse{Error: "validation failed", Fields: view.Errors}
			} else {
				payload = errorResponse{Error: http.StatusText(status)}
			}
		}
		writeJSON(w, status, payload)
		return
	}

	var buf bytes.Buffer
	if err := s.pages.Render(&buf, name, page); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("page", name).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, web.ErrorNotFound, web.Page{Title: "Not found"})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// serverError logs a failed read and answers with the 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	s.render(w, r, http.StatusInternalServerError, web.ErrorServer, web.Page{Title: "Server error"})
}

// writeFailed logs a failed write, flashes message and redirects to target.
func (s *Server) writeFailed(w http.ResponseWriter, r *http.Request, err error, target, message string) {
	logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Write failed")
	s.redirect(w, r, target, web.Flash{Category: flashError, Message: message})
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, target string, flash web.Flash) {
	setFlash(w, flash)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// parseID reads the numeric id route variable. The route pattern only lets
// digits through, so a failure here is an out-of-range id.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseForm reads the submitted form fields, answering 400 on a malformed body.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		if wantsJSON(r) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		} else {
			http.Error(w, "invalid form body", http.StatusBadRequest)
		}
		return false
	}
	return true
}

func validationFailure(err error) (*forms.ValidationError, bool) {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// wantsJSON reports whether application/json is the client's most preferred
// media type. Equal q-values go to the type listed first.
func wantsJSON(r *http.Request) bool {
	best, bestQ := "", 0.0
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		q := 1.0
		if v, ok := params["q"]; ok {
			if q, err = strconv.ParseFloat(v, 64); err != nil {
				continue
			}
		}
		if q > bestQ {
			best, bestQ = mediaType, q
		}
	}
	return best == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
