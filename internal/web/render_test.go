package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/forms"
	"fyyur/internal/models"
)

var showTime = time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *Renderer, name string, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page))
	return buf.String()
}

func TestNewLoadsEveryPage(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{
		PageHome, PageVenues, PageArtists, PageShows, PageSearchVenues,
		PageSearchArtists, PageShowVenue, PageShowArtist, FormNewVenue,
		FormEditVenue, FormNewArtist, FormEditArtist, FormNewShow,
		ErrorNotFound, ErrorServer,
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	err := r.Render(&buf, "pages/missing.html", Page{})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderFlash(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, PageHome, Page{Flash: &Flash{Category: "success", Message: "Venue <The Musical Hop> was successfully listed!"}})
	assert.Contains(t, out, `class="flash flash-success"`)
	assert.Contains(t, out, "Venue &lt;The Musical Hop&gt; was successfully listed!")
}

func TestRenderVenueAreas(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, PageVenues, Page{Title: "Venues", Data: []models.VenueArea{{
		City:  "San Francisco",
		State: "CA",
		Venues: []models.VenueSummary{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
			{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		},
	}}})
	assert.Contains(t, out, "San Francisco, CA")
	assert.Contains(t, out, `href="/venues/3"`)
	assert.Contains(t, out, "Park Square Live Music &amp; Coffee")
	assert.Contains(t, out, "1 upcoming shows")
}

func TestRenderVenueDetail(t *testing.T) {
	r := newRenderer(t)
	detail := models.VenueDetail{
		Venue: models.Venue{
			ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
			Address: "1015 Folsom Street", Genres: []string{"Jazz", "Reggae"},
			SeekingTalent: true, SeekingDescription: "We are on the lookout for a local artist.",
		},
		UpcomingShows: []models.ShowListing{{
			ID: 9, ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: showTime,
		}},
		UpcomingShowsCount: 1,
	}
	out := render(t, r, PageShowVenue, Page{Data: detail})
	assert.Contains(t, out, "Jazz, Reggae")
	assert.Contains(t, out, "Seeking talent:")
	assert.Contains(t, out, "1 Upcoming Show<")
	assert.Contains(t, out, "0 Past Shows")
	assert.Contains(t, out, `href="/artists/5"`)
	assert.Contains(t, out, "Sunday April, 1, 2035 at 8:00PM")
	assert.Contains(t, out, `id="delete-venue"`)
}

func TestRenderArtistDetailNotSeeking(t *testing.T) {
	r := newRenderer(t)
	detail := models.ArtistDetail{
		Artist: models.Artist{ID: 4, Name: "Guns N Petals", SeekingVenue: false},
		PastShows: []models.ShowListing{{
			ID: 1, VenueID: 1, VenueName: "The Musical Hop", StartTime: showTime,
		}},
		PastShowsCount: 1,
	}
	out := render(t, r, PageShowArtist, Page{Data: detail})
	assert.Contains(t, out, "Not currently seeking performance venues")
	assert.Contains(t, out, `href="/venues/1"`)
}

func TestRenderSearch(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, PageSearchArtists, Page{Data: SearchView{
		SearchTerm: "A",
		BasePath:   "/artists",
		Results: models.SearchResult{Count: 1, Data: []models.SearchMatch{
			{ID: 4, Name: "Guns N Petals"},
		}},
	}})
	assert.Contains(t, out, `Number of search results for "A": 1`)
	assert.Contains(t, out, `href="/artists/4"`)
}

func TestRenderVenueFormSelections(t *testing.T) {
	r := newRenderer(t)
	form := forms.VenueForm{Name: "The Dueling Pianos Bar", State: "NY", Genres: []string{"Jazz"}, SeekingTalent: true}
	out := render(t, r, FormEditVenue, Page{Data: NewFormView(2, form, &forms.ValidationError{
		Fields: map[string]string{"city": "This field is required."},
	})})
	assert.Contains(t, out, `action="/venues/2/edit"`)
	assert.Contains(t, out, `<option value="NY" selected>NY</option>`)
	assert.Contains(t, out, `<option value="Jazz" selected>Jazz</option>`)
	assert.Contains(t, out, `<option value="Pop">Pop</option>`)
	assert.Contains(t, out, `name="seeking_talent" value="y" checked`)
	assert.Contains(t, out, "This field is required.")
}

func TestRenderFormKeepsValuesOutsideChoices(t *testing.T) {
	r := newRenderer(t)
	form := forms.ArtistForm{Name: "Maple Leaf Trio", City: "Toronto", State: "ON", Genres: []string{"Rock", "Jazz"}}
	out := render(t, r, FormEditArtist, Page{Data: NewFormView(9, form, nil)})
	assert.Contains(t, out, `<option value="ON" selected>ON</option>`)
	assert.Contains(t, out, `<option value="Rock" selected>Rock</option>`)
	assert.Contains(t, out, `<option value="Jazz" selected>Jazz</option>`)
	assert.Contains(t, out, `<option value="Rock n Roll">Rock n Roll</option>`)
}

func TestRenderNewShowForm(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, FormNewShow, Page{Data: NewFormView(0, forms.NewShowForm(showTime), nil)})
	assert.Contains(t, out, `value="2035-04-01 20:00:00"`)
}

func TestFormatDatetime(t *testing.T) {
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", FormatDatetime(showTime, "medium"))
	assert.Equal(t, "Sunday April, 1, 2035 at 8:00PM", FormatDatetime(showTime, "full"))
	assert.Equal(t, "2035", FormatDatetime(showTime, "2006"))
}
