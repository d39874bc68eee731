// Package web renders the site's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"
)

//go:embed templates
var templateFS embed.FS

// Datetime layouts used by the datetime template func.
const (
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// Page names.
const (
	PageHome          = "pages/home.html"
	PageVenues        = "pages/venues.html"
	PageArtists       = "pages/artists.html"
	PageShows         = "pages/shows.html"
	PageSearchVenues  = "pages/search_venues.html"
	PageSearchArtists = "pages/search_artists.html"
	PageShowVenue     = "pages/show_venue.html"
	PageShowArtist    = "pages/show_artist.html"
	FormNewVenue      = "forms/new_venue.html"
	FormEditVenue     = "forms/edit_venue.html"
	FormNewArtist     = "forms/new_artist.html"
	FormEditArtist    = "forms/edit_artist.html"
	FormNewShow       = "forms/new_show.html"
	ErrorNotFound     = "errors/404.html"
	ErrorServer       = "errors/500.html"
)

// Flash is a one-shot message shown at the top of the next page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Page is the value every template executes against.
type Page struct {
	Title string
	Flash *Flash
	Data  any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded layout, partials and pages.
func New() (*Renderer, error) {
	base, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, dir := range []string{"pages", "forms", "errors"} {
		matches, err := fs.Glob(templateFS, path.Join("templates", dir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", dir, err)
		}
		for _, file := range matches {
			tmpl, err := base.Clone()
			if err != nil {
				return nil, fmt.Errorf("clone layout: %w", err)
			}
			if _, err := tmpl.ParseFS(templateFS, file); err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.pages[strings.TrimPrefix(file, "templates/")] = tmpl
		}
	}
	return r, nil
}

// Render executes the named page into w. Nothing is written when execution
// fails, so callers can still send an error page.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDatetime,
		"join":     strings.Join,
		"has":      has,
	}
}

func has(values []string, v string) bool {
	return slices.Contains(values, v)
}

// FormatDatetime formats t with the "medium" or "full" layout. Any other
// format string is used as a Go layout.
func FormatDatetime(t time.Time, format string) string {
	switch format {
	case "", "medium":
		return t.Format(MediumLayout)
	case "full":
		return t.Format(FullLayout)
	default:
		return t.Format(format)
	}
}
