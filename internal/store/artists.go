package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

// ListArtists returns the id and name of every artist
func (s *Store) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// SearchArtists matches artist names case-insensitively against term.
// An empty term matches every artist.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.SearchMatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $2 ESCAPE '\'
		GROUP BY a.id
		ORDER BY a.name ASC, a.id ASC
	`, now, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	return scanSearchMatches(rows)
}

// GetArtist retrieves a single artist by ID
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	var a models.Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, phone, genres,
		       facebook_link, image_link, website_link,
		       seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.FacebookLink, &a.ImageLink, &a.WebsiteLink,
		&a.SeekingVenue, &a.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}

	return &a, nil
}

// CreateArtist inserts an artist and fills in its generated ID
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres,
			                     facebook_link, image_link, website_link,
			                     seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`,
			artist.Name, artist.City, artist.State, artist.Phone, textArray(artist.Genres),
			artist.FacebookLink, artist.ImageLink, artist.WebsiteLink,
			artist.SeekingVenue, artist.SeekingDescription,
		).Scan(&artist.ID)
		if err != nil {
			return fmt.Errorf("insert artist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return artist, nil
}

// UpdateArtist overwrites every editable field of an existing artist
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
			    facebook_link = $6, image_link = $7, website_link = $8,
			    seeking_venue = $9, seeking_description = $10
			WHERE id = $11
		`,
			artist.Name, artist.City, artist.State, artist.Phone, textArray(artist.Genres),
			artist.FacebookLink, artist.ImageLink, artist.WebsiteLink,
			artist.SeekingVenue, artist.SeekingDescription, id,
		)
		if err != nil {
			return fmt.Errorf("update artist: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update artist: %w", err)
		}
		if rows == 0 {
			return ErrArtistNotFound
		}
		return nil
	})
}
