package httpapi

import (
	"errors"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.serverError(w, r, err, "Failed to list shows")
		return
	}
	s.render(w, r, http.StatusOK, web.PageShows, web.Page{Title: "Shows", Data: shows})
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.FormNewShow, web.Page{
		Title: "New show",
		Data:  web.NewFormView(0, forms.NewShowForm(s.now().In(s.loc)), nil),
	})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	form := forms.ParseShowForm(r.PostForm)
	show, err := form.Show(s.loc)
	if err != nil {
		verr, _ := validationFailure(err)
		s.renderShowForm(w, r, form, verr)
		return
	}

	if _, err := s.shows.Create(r.Context(), &show); err != nil {
		// A missing artist or venue is a problem with the submitted ids.
		switch {
		case errors.Is(err, store.ErrArtistNotFound):
			s.renderShowForm(w, r, form, &forms.ValidationError{Fields: map[string]string{"artist_id": "does not exist"}})
		case errors.Is(err, store.ErrVenueNotFound):
			s.renderShowForm(w, r, form, &forms.ValidationError{Fields: map[string]string{"venue_id": "does not exist"}})
		case errors.Is(err, store.ErrUnknownReference):
			s.renderShowForm(w, r, form, &forms.ValidationError{Fields: map[string]string{
				"artist_id": "does not match a known record",
				"venue_id":  "does not match a known record",
			}})
		default:
			s.writeFailed(w, r, err, "/", "An error occurred. Show could not be listed.")
		}
		return
	}

	s.redirect(w, r, "/", web.Flash{Category: flashSuccess, Message: "Show was successfully listed!"})
}

func (s *Server) renderShowForm(w http.ResponseWriter, r *http.Request, form forms.ShowForm, verr *forms.ValidationError) {
	s.render(w, r, http.StatusBadRequest, web.FormNewShow, web.Page{
		Title: "New show",
		Data:  web.NewFormView(0, form, verr),
	})
}
