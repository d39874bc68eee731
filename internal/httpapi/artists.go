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

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.serverError(w, r, err, "Failed to list artists")
		return
	}
	s.render(w, r, http.StatusOK, web.PageArtists, web.Page{Title: "Artists", Data: artists})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	term := strings.TrimSpace(r.Form.Get("search_term"))
	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err, "Failed to search artists")
		return
	}

	s.render(w, r, http.StatusOK, web.PageSearchArtists, web.Page{
		Title: "Artist search",
		Data:  web.SearchView{SearchTerm: term, BasePath: "/artists", Results: results},
	})
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err, "Failed to load artist")
		return
	}

	s.render(w, r, http.StatusOK, web.PageShowArtist, web.Page{Title: detail.Name, Data: detail})
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.FormNewArtist, web.Page{
		Title: "New artist",
		Data:  web.NewFormView(0, forms.NewArtistForm(), nil),
	})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	form := forms.ParseArtistForm(r.PostForm)
	if err := form.Validate(); err != nil {
		verr, _ := validationFailure(err)
		s.render(w, r, http.StatusBadRequest, web.FormNewArtist, web.Page{
			Title: "New artist",
			Data:  web.NewFormView(0, form, verr),
		})
		return
	}

	artist := form.Artist()
	created, err := s.artists.Create(r.Context(), &artist)
	if err != nil {
		s.writeFailed(w, r, err, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", artist.Name))
		return
	}

	s.redirect(w, r, "/", web.Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Artist %s was successfully listed!", created.Name),
	})
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err, "Failed to load artist")
		return
	}

	s.render(w, r, http.StatusOK, web.FormEditArtist, web.Page{
		Title: "Edit artist",
		Data:  web.NewFormView(id, forms.ArtistFormFrom(*artist), nil),
	})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !s.parseForm(w, r) {
		return
	}

	form := forms.ParseArtistForm(r.PostForm)
	if err := form.Validate(); err != nil {
		verr, _ := validationFailure(err)
		s.render(w, r, http.StatusBadRequest, web.FormEditArtist, web.Page{
			Title: "Edit artist",
			Data:  web.NewFormView(id, form, verr),
		})
		return
	}

	detailPath := fmt.Sprintf("/artists/%d", id)
	artist := form.Artist()
	if err := s.artists.Update(r.Context(), id, &artist); err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.notFound(w, r)
			return
		}
		s.writeFailed(w, r, err, detailPath, fmt.Sprintf("An error occurred. Artist %s could not be updated.", artist.Name))
		return
	}

	s.redirect(w, r, detailPath, web.Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
	})
}
