package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Areas(r.Context())
	if err != nil {
		s.serverError(w, r, err, "Failed to list venues")
		return
	}
	s.render(w, r, http.StatusOK, web.PageVenues, web.Page{Title: "Venues", Data: areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	term := strings.TrimSpace(r.Form.Get("search_term"))
	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err, "Failed to search venues")
		return
	}

	s.render(w, r, http.StatusOK, web.PageSearchVenues, web.Page{
		Title: "Venue search",
		Data:  web.SearchView{SearchTerm: term, BasePath: "/venues", Results: results},
	})
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err, "Failed to load venue")
		return
	}

	s.render(w, r, http.StatusOK, web.PageShowVenue, web.Page{Title: detail.Name, Data: detail})
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.FormNewVenue, web.Page{
		Title: "New venue",
		Data:  web.NewFormView(0, forms.NewVenueForm(), nil),
	})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	form := forms.ParseVenueForm(r.PostForm)
	if err := form.Validate(); err != nil {
		verr, _ := validationFailure(err)
		s.render(w, r, http.StatusBadRequest, web.FormNewVenue, web.Page{
			Title: "New venue",
			Data:  web.NewFormView(0, form, verr),
		})
		return
	}

	venue := form.Venue()
	created, err := s.venues.Create(r.Context(), &venue)
	if err != nil {
		s.writeFailed(w, r, err, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", venue.Name))
		return
	}

	s.redirect(w, r, "/", web.Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Venue %s was successfully listed!", created.Name),
	})
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err, "Failed to load venue")
		return
	}

	s.render(w, r, http.StatusOK, web.FormEditVenue, web.Page{
		Title: "Edit venue",
		Data:  web.NewFormView(id, forms.VenueFormFrom(*venue), nil),
	})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !s.parseForm(w, r) {
		return
	}

	form := forms.ParseVenueForm(r.PostForm)
	if err := form.Validate(); err != nil {
		verr, _ := validationFailure(err)
		s.render(w, r, http.StatusBadRequest, web.FormEditVenue, web.Page{
			Title: "Edit venue",
			Data:  web.NewFormView(id, form, verr),
		})
		return
	}

	detailPath := fmt.Sprintf("/venues/%d", id)
	venue := form.Venue()
	if err := s.venues.Update(r.Context(), id, &venue); err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		s.writeFailed(w, r, err, detailPath, fmt.Sprintf("An error occurred. Venue %s could not be updated.", venue.Name))
		return
	}

	s.redirect(w, r, detailPath, web.Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
	})
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	name, err := s.venues.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		s.writeFailed(w, r, err, fmt.Sprintf("/venues/%d", id), "An error occurred. The venue could not be deleted.")
		return
	}

	s.redirect(w, r, "/", web.Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Venue %s was successfully deleted.", name),
	})
}
