// Package repo contains all database access logic for the Fyyur directory.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL, type mapping, and transaction scope.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/fyyur/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
//
// Begin is required because every write runs in its own transaction. On a
// pgx.Tx, Begin opens a savepoint, so a failed write never poisons the outer
// test transaction.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// VenueRepo defines the persistence operations for Venues.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the services to be unit-tested with a mock.
type VenueRepo interface {
	// Create inserts a new venue and returns the persisted record with the
	// store-assigned id and timestamps.
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// GetByID retrieves a single venue by primary key.
	// Returns domain.ErrNotFound if no venue with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Venue, error)

	// List returns all venues ordered by id ascending.
	List(ctx context.Context) ([]domain.Venue, error)

	// Search returns venues whose name contains term, ignoring case, ordered by id.
	// An empty term matches every venue.
	Search(ctx context.Context, term string) ([]domain.Venue, error)

	// Update overwrites every mutable field of an existing venue and returns
	// the updated record. Returns domain.ErrNotFound if no venue with that ID exists.
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// Delete removes a venue and all of its shows in one transaction.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgVenueRepo is the Postgres implementation of VenueRepo.
type pgVenueRepo struct {
	db db
}

// NewVenueRepo constructs a VenueRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVenueRepo(db db) VenueRepo {
	return &pgVenueRepo{db: db}
}

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
		website, genres, seeking_talent, seeking_description, created_at, updated_at`

// Create inserts a new venue row and returns the full persisted record.
func (r *pgVenueRepo) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	const q = `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
		                    website, genres, seeking_talent, seeking_description)
		VALUES (@name, @city, @state, @address, @phone, @image_link, @facebook_link,
		        @website, @genres, @seeking_talent, @seeking_description)
		RETURNING ` + venueColumns

	var result domain.Venue
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanVenue(tx.QueryRow(ctx, q, venueArgs(venue)))
		return err
	})
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Create: %w", mapError(err))
	}
	return result, nil
}

// GetByID retrieves a venue by primary key.
func (r *pgVenueRepo) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues WHERE id = @id`

	result, err := scanVenue(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.GetByID: %w", mapError(err))
	}
	return result, nil
}

// List returns all venues in primary key order.
func (r *pgVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	venues, err := collectVenues(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	return venues, nil
}

// Search matches term as a literal substring of the name; LIKE wildcards in
// the term are escaped.
func (r *pgVenueRepo) Search(ctx context.Context, term string) ([]domain.Venue, error) {
	q := `SELECT ` + venueColumns + `
		FROM venues
		WHERE name ILIKE '%' || @term || '%'
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"term": escapeLike(term)})
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.Search: %w", err)
	}
	venues, err := collectVenues(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.Search: %w", err)
	}
	return venues, nil
}

// Update overwrites the mutable fields of a venue and returns the updated record.
func (r *pgVenueRepo) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	const q = `
		UPDATE venues
		SET name                = @name,
		    city                = @city,
		    state               = @state,
		    address             = @address,
		    phone               = @phone,
		    image_link          = @image_link,
		    facebook_link       = @facebook_link,
		    website             = @website,
		    genres              = @genres,
		    seeking_talent      = @seeking_talent,
		    seeking_description = @seeking_description,
		    updated_at          = now()
		WHERE id = @id
		RETURNING ` + venueColumns

	args := venueArgs(venue)
	args["id"] = venue.ID

	var result domain.Venue
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanVenue(tx.QueryRow(ctx, q, args))
		return err
	})
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Update: %w", mapError(err))
	}
	return result, nil
}

// Delete removes the venue's shows and then the venue itself. The foreign key
// also cascades; deleting shows explicitly keeps the statement order obvious.
func (r *pgVenueRepo) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{"id": id}
		if _, err := tx.Exec(ctx, `DELETE FROM shows WHERE venue_id = @id`, args); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM venues WHERE id = @id`, args)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.VenueRepo.Delete: %w", mapError(err))
	}
	return nil
}

func collectVenues(rows pgx.Rows) ([]domain.Venue, error) {
	defer rows.Close()

	venues := []domain.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return venues, nil
}

func venueArgs(v domain.Venue) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                v.Name,
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"image_link":          v.ImageLink,
		"facebook_link":       v.FacebookLink,
		"website":             v.Website,
		"genres":              domain.EncodeGenres(v.Genres),
		"seeking_talent":      v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanVenue maps a single database row into a domain.Venue, decoding genres.
func scanVenue(s scanner) (domain.Venue, error) {
	var (
		v      domain.Venue
		genres string
	)
	err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, &genres, &v.SeekingTalent, &v.SeekingDescription,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Venue{}, err
	}
	v.Genres = domain.DecodeGenres(genres)
	return v, nil
}
