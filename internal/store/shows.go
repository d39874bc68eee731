package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fyyur/internal/models"
)

// ListShows returns every show joined with its artist and venue
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.venue_id, v.name, v.image_link,
		       s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN artists a ON a.id = s.artist_id
		INNER JOIN venues v ON v.id = s.venue_id
		ORDER BY s.start_time ASC, s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowListing{}
	for rows.Next() {
		var sh models.ShowListing
		if err := rows.Scan(
			&sh.ID, &sh.VenueID, &sh.VenueName, &sh.VenueImageLink,
			&sh.ArtistID, &sh.ArtistName, &sh.ArtistImageLink, &sh.StartTime,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}

// CreateShow inserts a show. A zero StartTime is stored as the current time.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	if show.StartTime.IsZero() {
		show.StartTime = time.Now().UTC()
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrUnknownReference
			}
			return fmt.Errorf("insert show: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return show, nil
}

// UpcomingShows lists the shows of an artist or venue starting after now,
// earliest first.
func (s *Store) UpcomingShows(ctx context.Context, owner ShowOwner, id int64, now time.Time) ([]models.ShowListing, error) {
	return s.showsFor(ctx, owner, id, now, "s.start_time > $2 ORDER BY s.start_time ASC, s.id ASC")
}

// PastShows lists the shows of an artist or venue starting at or before now,
// latest first.
func (s *Store) PastShows(ctx context.Context, owner ShowOwner, id int64, now time.Time) ([]models.ShowListing, error) {
	return s.showsFor(ctx, owner, id, now, "s.start_time <= $2 ORDER BY s.start_time DESC, s.id DESC")
}

func (s *Store) showsFor(ctx context.Context, owner ShowOwner, id int64, now time.Time, window string) ([]models.ShowListing, error) {
	var query string
	switch owner {
	case OwnerVenue:
		query = `
			SELECT s.id, s.artist_id, a.name, a.image_link, s.start_time
			FROM shows s
			INNER JOIN artists a ON a.id = s.artist_id
			WHERE s.venue_id = $1 AND ` + window
	case OwnerArtist:
		query = `
			SELECT s.id, s.venue_id, v.name, v.image_link, s.start_time
			FROM shows s
			INNER JOIN venues v ON v.id = s.venue_id
			WHERE s.artist_id = $1 AND ` + window
	default:
		return nil, fmt.Errorf("unknown show owner %q", owner)
	}

	rows, err := s.db.QueryContext(ctx, query, id, now)
	if err != nil {
		return nil, fmt.Errorf("select %s shows: %w", owner, err)
	}
	defer rows.Close()

	shows := []models.ShowListing{}
	for rows.Next() {
		var sh models.ShowListing
		var counterpartID int64
		var name, image string
		if err := rows.Scan(&sh.ID, &counterpartID, &name, &image, &sh.StartTime); err != nil {
			return nil, fmt.Errorf("scan %s show: %w", owner, err)
		}
		if owner == OwnerVenue {
			sh.ArtistID, sh.ArtistName, sh.ArtistImageLink = counterpartID, name, image
		} else {
			sh.VenueID, sh.VenueName, sh.VenueImageLink = counterpartID, name, image
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s shows: %w", owner, err)
	}

	return shows, nil
}
