package shows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

type fakeStore struct {
	created *models.Show
}

func (f *fakeStore) ListShows(context.Context) ([]models.ShowListing, error) { return nil, nil }

func (f *fakeStore) CreateShow(_ context.Context, show *models.Show) (*models.Show, error) {
	show.ID = 42
	f.created = show
	return show, nil
}

type artistLookup map[int64]bool

func (l artistLookup) GetArtist(_ context.Context, id int64) (*models.Artist, error) {
	if !l[id] {
		return nil, store.ErrArtistNotFound
	}
	return &models.Artist{ID: id}, nil
}

type venueLookup map[int64]bool

func (l venueLookup) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	if !l[id] {
		return nil, store.ErrVenueNotFound
	}
	return &models.Venue{ID: id}, nil
}

func TestCreateChecksReferences(t *testing.T) {
	start := time.Date(2035, 1, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		show    models.Show
		wantErr error
	}{
		{name: "valid", show: models.Show{ArtistID: 1, VenueID: 2, StartTime: start}},
		{name: "missing artist", show: models.Show{ArtistID: 9, VenueID: 2, StartTime: start}, wantErr: store.ErrArtistNotFound},
		{name: "missing venue", show: models.Show{ArtistID: 1, VenueID: 9, StartTime: start}, wantErr: store.ErrVenueNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeStore{}
			svc := New(fs, artistLookup{1: true}, venueLookup{2: true})

			show := tc.show
			got, err := svc.Create(context.Background(), &show)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, fs.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), got.ID)
		})
	}
}

func TestCreateWithoutLookups(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs, nil, nil)

	_, err := svc.Create(context.Background(), &models.Show{ArtistID: 1, VenueID: 1})
	require.NoError(t, err)
	assert.NotNil(t, fs.created)
}
