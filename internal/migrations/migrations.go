// Package migrations holds the database schema as ordered, reversible SQL
// steps embedded in the binary, and applies them with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var files embed.FS

// Source returns the embedded migration files as a golang-migrate source.
func Source() (source.Driver, error) {
	return iofs.New(files, "sql")
}

// Runner applies the embedded migrations to one database.
type Runner struct {
	m *migrate.Migrate
}

// Open connects to databaseURL with its own connection, which Close releases.
func Open(databaseURL string) (*Runner, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	src, err := Source()
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	m.Log = migrateLogger{}

	return &Runner{m: m}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down reverts every applied migration.
func (r *Runner) Down() error {
	if err := r.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Steps applies n migrations forward, or reverts -n when n is negative.
func (r *Runner) Steps(n int) error {
	if err := r.m.Steps(n); err != nil {
		return fmt.Errorf("migrate %d steps: %w", n, err)
	}
	return nil
}

// Version reports the applied version. ok is false on an empty database.
func (r *Runner) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, true, nil
}

// Close releases the source and the database connection.
func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

// migrateLogger forwards golang-migrate's progress lines to zerolog.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	log.Info().Str("component", "migrate").Msgf(format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
