package artists

import (
	"context"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// Store defines persistence operations for artists
type Store interface {
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.SearchMatch, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist *models.Artist) error
	UpcomingShows(ctx context.Context, owner store.ShowOwner, id int64, now time.Time) ([]models.ShowListing, error)
	PastShows(ctx context.Context, owner store.ShowOwner, id int64, now time.Time) ([]models.ShowListing, error)
}

// Service describes artist workflows.
type Service interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.SearchResult, error)
	Get(ctx context.Context, id int64) (*models.Artist, error)
	Detail(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist *models.Artist) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artists Service. A nil clock falls back to time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) List(ctx context.Context) ([]models.ArtistSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult{}, err
	}
	matches, err := s.store.SearchArtists(ctx, term, s.now())
	if err != nil {
		return models.SearchResult{}, err
	}
	return models.SearchResult{Count: len(matches), Data: matches}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	artist, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	past, err := s.store.PastShows(ctx, store.OwnerArtist, id, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.store.UpcomingShows(ctx, store.OwnerArtist, id, now)
	if err != nil {
		return nil, err
	}

	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Update(ctx context.Context, id int64, artist *models.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}
