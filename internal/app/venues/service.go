package venues

import (
	"context"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// Store defines persistence operations for venues
type Store interface {
	ListVenueAreas(ctx context.Context, now time.Time) ([]models.VenueArea, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]models.SearchMatch, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) (string, error)
	UpcomingShows(ctx context.Context, owner store.ShowOwner, id int64, now time.Time) ([]models.ShowListing, error)
	PastShows(ctx context.Context, owner store.ShowOwner, id int64, now time.Time) ([]models.ShowListing, error)
}

// Service coordinates venue-related operations
type Service interface {
	Areas(ctx context.Context) ([]models.VenueArea, error)
	Search(ctx context.Context, term string) (models.SearchResult, error)
	Get(ctx context.Context, id int64) (*models.Venue, error)
	Detail(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue *models.Venue) error
	Delete(ctx context.Context, id int64) (string, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service. A nil clock falls back to time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) Areas(ctx context.Context) ([]models.VenueArea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListVenueAreas(ctx, s.now())
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult{}, err
	}
	matches, err := s.store.SearchVenues(ctx, term, s.now())
	if err != nil {
		return models.SearchResult{}, err
	}
	return models.SearchResult{Count: len(matches), Data: matches}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (*models.VenueDetail, error) {
	venue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// one clock reading so a show lands in exactly one list
	now := s.now()
	past, err := s.store.PastShows(ctx, store.OwnerVenue, id, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.store.UpcomingShows(ctx, store.OwnerVenue, id, now)
	if err != nil {
		return nil, err
	}

	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Update(ctx context.Context, id int64, venue *models.Venue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.DeleteVenue(ctx, id)
}
