package forms

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

func TestParseVenueForm(t *testing.T) {
	values := url.Values{
		"name":           {" The Fillmore "},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1805 Geary Blvd"},
		"phone":          {"not-a-phone"},
		"genres":         {"Rock n Roll", "Jazz"},
		"facebook_link":  {"fillmore"},
		"seeking_talent": {"y"},
	}

	form := ParseVenueForm(values)
	require.NoError(t, form.Validate())

	venue := form.Venue()
	assert.Equal(t, "The Fillmore", venue.Name)
	assert.Equal(t, []string{"Rock n Roll", "Jazz"}, venue.Genres)
	assert.Equal(t, "not-a-phone", venue.Phone, "phone format is not checked")
	assert.Equal(t, "fillmore", venue.FacebookLink, "links are not checked")
	assert.True(t, venue.SeekingTalent)
}

func TestGenresAcceptDelimitedValue(t *testing.T) {
	values := url.Values{"genres": {"Rock n Roll, Jazz,,Folk", "Blues"}}

	assert.Equal(t, []string{"Rock n Roll", "Jazz", "Folk", "Blues"}, genres(values))
}

func TestVenueFormUncheckedSeekingTalent(t *testing.T) {
	form := ParseVenueForm(url.Values{"name": {"Hop"}})

	assert.False(t, form.SeekingTalent)
	assert.True(t, NewVenueForm().SeekingTalent, "new venue form starts checked")
}

func TestVenueFormValidateRequiredFields(t *testing.T) {
	err := ParseVenueForm(url.Values{"name": {"Hop"}, "city": {"  "}}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("city"))
	assert.True(t, verr.Has("state"))
	assert.True(t, verr.Has("genres"))
	assert.False(t, verr.Has("name"))
	assert.False(t, verr.Has("address"))
	assert.Contains(t, err.Error(), "genres needs at least one genre")
}

func TestVenueFormRoundTrip(t *testing.T) {
	stored := models.Venue{
		ID:                 3,
		Name:               "Park Square Live Music & Coffee",
		City:               "San Francisco",
		State:              "CA",
		Address:            "34 Whiskey Moore Ave",
		Phone:              "415-000-1234",
		Genres:             []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		FacebookLink:       "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:          "https://images.unsplash.com/photo-1485686531765",
		WebsiteLink:        "https://www.parksquarelivemusicandcoffee.com",
		SeekingTalent:      false,
		SeekingDescription: "",
	}

	got := VenueFormFrom(stored).Venue()
	got.ID = stored.ID
	assert.Equal(t, stored, got)
}

func TestArtistForm(t *testing.T) {
	form := ParseArtistForm(url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"genres":        {"Rock n Roll"},
		"seeking_venue": {"on"},
	})
	require.NoError(t, form.Validate())

	artist := form.Artist()
	assert.Equal(t, []string{"Rock n Roll"}, artist.Genres)
	assert.True(t, artist.SeekingVenue)

	edited := ParseArtistForm(url.Values{"name": {"Guns N Petals"}, "city": {"SF"}, "state": {"CA"}})
	assert.False(t, edited.Artist().SeekingVenue, "an unchecked box is not forced to true")
}

func TestArtistFormValidate(t *testing.T) {
	err := ParseArtistForm(url.Values{}).Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.False(t, verr.Has("genres"), "artist genres are optional")
}

func TestShowForm(t *testing.T) {
	loc := time.FixedZone("PDT", -7*60*60)

	tests := []struct {
		name      string
		values    url.Values
		wantStart time.Time
		wantField string
	}{
		{
			name:      "space separated",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2019-05-21 21:30:00"}},
			wantStart: time.Date(2019, 5, 21, 21, 30, 0, 0, loc),
		},
		{
			name:      "datetime-local input",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2035-04-01T20:00"}},
			wantStart: time.Date(2035, 4, 1, 20, 0, 0, 0, loc),
		},
		{
			name:      "rfc3339 keeps its zone",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2035-04-01T20:00:00Z"}},
			wantStart: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:   "empty start time",
			values: url.Values{"artist_id": {"4"}, "venue_id": {"1"}},
		},
		{
			name:      "missing artist",
			values:    url.Values{"venue_id": {"1"}},
			wantField: "artist_id",
		},
		{
			name:      "non numeric venue",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"abc"}},
			wantField: "venue_id",
		},
		{
			name:      "bad start time",
			values:    url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"tomorrow"}},
			wantField: "start_time",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			show, err := ParseShowForm(tc.values).Show(loc)
			if tc.wantField != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.True(t, verr.Has(tc.wantField))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), show.ArtistID)
			assert.Equal(t, int64(1), show.VenueID)
			assert.True(t, tc.wantStart.Equal(show.StartTime), "got %v want %v", show.StartTime, tc.wantStart)
		})
	}
}

func TestNewShowFormDefaultsToNow(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 45, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-19 18:45:00", NewShowForm(now).StartTime)
}

func TestNilValidationErrorHas(t *testing.T) {
	var verr *ValidationError
	assert.False(t, verr.Has("name"))
}

func TestVenueFormWithoutAddressIsValid(t *testing.T) {
	form := ParseVenueForm(url.Values{
		"name":   {"The Fillmore"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock"},
	})
	require.NoError(t, form.Validate())
	assert.Equal(t, []string{"Rock"}, form.Venue().Genres)
}

func TestWithCurrentAddsMissingValues(t *testing.T) {
	before := len(GenreChoices)

	got := WithCurrent(GenreChoices, "Jazz", "Rock", "", "Rock")
	require.Len(t, got, before+1)
	assert.Equal(t, Choice{Value: "Rock", Label: "Rock"}, got[len(got)-1])
	assert.Len(t, GenreChoices, before, "shared choice list must not grow")

	assert.Equal(t, StateChoices, WithCurrent(StateChoices, "CA"))
}
