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

// ListVenueAreas returns every (city, state) pair with the venues located there.
// Each venue carries the number of its shows starting after now.
func (s *Store) ListVenueAreas(ctx context.Context, now time.Time) ([]models.VenueArea, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.state ASC, v.city ASC, v.id ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("select venue areas: %w", err)
	}
	defer rows.Close()

	areas := []models.VenueArea{}
	for rows.Next() {
		var v models.VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue area: %w", err)
		}

		last := len(areas) - 1
		if last < 0 || areas[last].City != v.City || areas[last].State != v.State {
			areas = append(areas, models.VenueArea{City: v.City, State: v.State})
			last++
		}
		areas[last].Venues = append(areas[last].Venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue areas: %w", err)
	}

	return areas, nil
}

// SearchVenues matches venue names case-insensitively against term.
// An empty term matches every venue.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.SearchMatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $2 ESCAPE '\'
		GROUP BY v.id
		ORDER BY v.name ASC, v.id ASC
	`, now, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	return scanSearchMatches(rows)
}

// GetVenue retrieves a single venue by ID
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	var v models.Venue
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, address, phone, genres,
		       facebook_link, image_link, website_link,
		       seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, pq.Array(&v.Genres),
		&v.FacebookLink, &v.ImageLink, &v.WebsiteLink,
		&v.SeekingTalent, &v.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select venue: %w", err)
	}

	return &v, nil
}

// CreateVenue inserts a venue and fills in its generated ID
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres,
			                    facebook_link, image_link, website_link,
			                    seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, textArray(venue.Genres),
			venue.FacebookLink, venue.ImageLink, venue.WebsiteLink,
			venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venue.ID)
		if err != nil {
			return fmt.Errorf("insert venue: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return venue, nil
}

// UpdateVenue overwrites every editable field of an existing venue
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE venues
			SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			    facebook_link = $7, image_link = $8, website_link = $9,
			    seeking_talent = $10, seeking_description = $11
			WHERE id = $12
		`,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, textArray(venue.Genres),
			venue.FacebookLink, venue.ImageLink, venue.WebsiteLink,
			venue.SeekingTalent, venue.SeekingDescription, id,
		)
		if err != nil {
			return fmt.Errorf("update venue: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		if rows == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
}

// DeleteVenue removes a venue and returns its name. The shows of the venue
// are removed by the foreign key cascade.
func (s *Store) DeleteVenue(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			DELETE FROM venues
			WHERE id = $1
			RETURNING name
		`, id).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("delete venue: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return name, nil
}

func scanSearchMatches(rows *sql.Rows) ([]models.SearchMatch, error) {
	matches := []models.SearchMatch{}
	for rows.Next() {
		var m models.SearchMatch
		if err := rows.Scan(&m.ID, &m.Name, &m.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan search match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search matches: %w", err)
	}
	return matches, nil
}
