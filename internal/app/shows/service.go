package shows

import (
	"context"

	"fyyur/internal/models"
)

// Store defines persistence operations for shows
type Store interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
}

// ArtistLookup confirms an artist exists before a show is booked
type ArtistLookup interface {
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
}

// VenueLookup confirms a venue exists before a show is booked
type VenueLookup interface {
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
}

// Service coordinates show-related operations
type Service interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show *models.Show) (*models.Show, error)
}

type service struct {
	store   Store
	artists ArtistLookup
	venues  VenueLookup
}

// New constructs a shows Service. The lookups are optional; without them the
// store's foreign keys are the only reference check.
func New(store Store, artists ArtistLookup, venues VenueLookup) Service {
	return &service{
		store:   store,
		artists: artists,
		venues:  venues,
	}
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

func (s *service) Create(ctx context.Context, show *models.Show) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.artists != nil {
		if _, err := s.artists.GetArtist(ctx, show.ArtistID); err != nil {
			return nil, err
		}
	}
	if s.venues != nil {
		if _, err := s.venues.GetVenue(ctx, show.VenueID); err != nil {
			return nil, err
		}
	}

	return s.store.CreateShow(ctx, show)
}
