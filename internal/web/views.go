package web

import (
	"fyyur/internal/forms"
	"fyyur/internal/models"
)

// FormView is the data of the new and edit pages. ID is set when editing.
type FormView struct {
	ID     int64             `json:"id,omitempty"`
	Form   any               `json:"form"`
	Errors map[string]string `json:"errors,omitempty"`
	Genres []forms.Choice    `json:"-"`
	States []forms.Choice    `json:"-"`
}

// NewFormView wraps form with the choice lists and the field errors of err,
// if it is a validation failure. The form's own genres and state are added
// to the lists when missing.
func NewFormView(id int64, form any, err *forms.ValidationError) FormView {
	view := FormView{
		ID:     id,
		Form:   form,
		Genres: forms.GenreChoices,
		States: forms.StateChoices,
	}
	switch f := form.(type) {
	case forms.VenueForm:
		view.Genres = forms.WithCurrent(forms.GenreChoices, f.Genres...)
		view.States = forms.WithCurrent(forms.StateChoices, f.State)
	case forms.ArtistForm:
		view.Genres = forms.WithCurrent(forms.GenreChoices, f.Genres...)
		view.States = forms.WithCurrent(forms.StateChoices, f.State)
	}
	if err != nil {
		view.Errors = err.Fields
	}
	return view
}

// SearchView is the data of the search result pages.
type SearchView struct {
	SearchTerm string              `json:"search_term"`
	BasePath   string              `json:"-"`
	Results    models.SearchResult `json:"results"`
}
