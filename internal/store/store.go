package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrVenueNotFound signals that no venue has the requested id.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound signals that no artist has the requested id.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrUnknownReference indicates a show pointing at a missing artist or venue.
	ErrUnknownReference = errors.New("show references an unknown artist or venue")
)

// ShowOwner selects which side of a show a lookup is keyed on.
type ShowOwner string

const (
	OwnerArtist ShowOwner = "artist"
	OwnerVenue  ShowOwner = "venue"
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// likePattern builds an ILIKE pattern matching term as a literal substring.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// textArray encodes values as a Postgres text[]; nil becomes an empty array.
func textArray(values []string) driver.Valuer {
	if values == nil {
		values = []string{}
	}
	return pq.StringArray(values)
}
