package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
)

// seedStore is the part of the store the demo data needs.
type seedStore interface {
	ListVenueAreas(ctx context.Context, now time.Time) ([]models.VenueArea, error)
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
}

// seedShow books demoArtists[artist] at demoVenues[venue].
type seedShow struct {
	venue     int
	artist    int
	startTime time.Time
}

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		WebsiteLink:        "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
	},
	{
		Name:         "The Dueling Pianos Bar",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		WebsiteLink:  "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		Address:      "34 Whiskey Moore Ave",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "415-000-1234",
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		Genres:             []string{"Rock n Roll"},
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	},
	{
		Name:         "Matt Quevedo",
		Genres:       []string{"Jazz"},
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
	},
	{
		Name:      "The Wild Sax Band",
		Genres:    []string{"Jazz", "Classical"},
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
	},
}

var demoShows = []seedShow{
	{venue: 0, artist: 0, startTime: time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)},
	{venue: 2, artist: 1, startTime: time.Date(2019, time.June, 15, 23, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, startTime: time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, startTime: time.Date(2035, time.April, 8, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, startTime: time.Date(2035, time.April, 15, 20, 0, 0, 0, time.UTC)},
}

// bootstrapDemoData fills an empty database with the demo venues, artists
// and shows. A database holding any venue or artist is left alone.
func bootstrapDemoData(ctx context.Context, dataStore seedStore, now time.Time) error {
	areas, err := dataStore.ListVenueAreas(ctx, now)
	if err != nil {
		return fmt.Errorf("bootstrap: list venues: %w", err)
	}
	artists, err := dataStore.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: list artists: %w", err)
	}
	if len(areas) > 0 || len(artists) > 0 {
		return nil
	}

	venueIDs := make([]int64, len(demoVenues))
	for i := range demoVenues {
		venue := demoVenues[i]
		created, err := dataStore.CreateVenue(ctx, &venue)
		if err != nil {
			return fmt.Errorf("bootstrap venue %q: %w", venue.Name, err)
		}
		venueIDs[i] = created.ID
	}

	artistIDs := make([]int64, len(demoArtists))
	for i := range demoArtists {
		artist := demoArtists[i]
		created, err := dataStore.CreateArtist(ctx, &artist)
		if err != nil {
			return fmt.Errorf("bootstrap artist %q: %w", artist.Name, err)
		}
		artistIDs[i] = created.ID
	}

	for _, seed := range demoShows {
		show := models.Show{
			ArtistID:  artistIDs[seed.artist],
			VenueID:   venueIDs[seed.venue],
			StartTime: seed.startTime,
		}
		if _, err := dataStore.CreateShow(ctx, &show); err != nil {
			return fmt.Errorf("bootstrap show: %w", err)
		}
	}

	log.Info().
		Int("venues", len(demoVenues)).
		Int("artists", len(demoArtists)).
		Int("shows", len(demoShows)).
		Msg("Seeded demo data")
	return nil
}
