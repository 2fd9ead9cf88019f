package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fyyur/internal/domain"
)

// ShowRepo defines the persistence operations for Shows.
// A show always belongs to exactly one artist and one venue; the schema
// enforces both references with ON DELETE CASCADE foreign keys.
type ShowRepo interface {
	// Create inserts a new show. Returns domain.ErrConstraint if either the
	// artist or the venue does not exist.
	Create(ctx context.Context, show domain.Show) (domain.Show, error)

	// GetByID retrieves a single show by primary key.
	// Returns domain.ErrNotFound if no show with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Show, error)

	// Delete removes a show. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// List returns every show joined with its artist and venue,
	// ordered by start_time, then id.
	List(ctx context.Context) ([]domain.ShowListing, error)

	// ListByVenue returns the shows hosted by one venue, ordered by start_time.
	ListByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error)

	// ListByArtist returns the shows played by one artist, ordered by start_time.
	ListByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error)

	// CountUpcomingByVenue returns, per venue id, the number of shows starting
	// strictly after now. Venues without upcoming shows are absent from the map.
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int64]int, error)

	// CountUpcomingByArtist is CountUpcomingByVenue keyed by artist id.
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int64]int, error)
}

// pgShowRepo is the Postgres implementation of ShowRepo.
type pgShowRepo struct {
	db db
}

// NewShowRepo constructs a ShowRepo backed by the provided db connection.
func NewShowRepo(db db) ShowRepo {
	return &pgShowRepo{db: db}
}

const listingSelect = `
		SELECT s.id, s.start_time,
		       v.id, v.name, v.image_link,
		       a.id, a.name, a.image_link
		FROM shows s
		JOIN venues v  ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id`

// Create inserts a show row. A dangling artist_id or venue_id fails the FK
// check, which mapError reports as domain.ErrConstraint after rollback.
func (r *pgShowRepo) Create(ctx context.Context, show domain.Show) (domain.Show, error) {
	const q = `
		INSERT INTO shows (start_time, artist_id, venue_id)
		VALUES (@start_time, @artist_id, @venue_id)
		RETURNING id, start_time, artist_id, venue_id, created_at`

	args := pgx.NamedArgs{
		"start_time": show.StartTime,
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
	}

	var result domain.Show
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanShow(tx.QueryRow(ctx, q, args))
		return err
	})
	if err != nil {
		return domain.Show{}, fmt.Errorf("repo.ShowRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgShowRepo) GetByID(ctx context.Context, id int64) (domain.Show, error) {
	const q = `
		SELECT id, start_time, artist_id, venue_id, created_at
		FROM shows
		WHERE id = @id`

	result, err := scanShow(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Show{}, fmt.Errorf("repo.ShowRepo.GetByID: %w", mapError(err))
	}
	return result, nil
}

func (r *pgShowRepo) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM shows WHERE id = @id`, pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.ShowRepo.Delete: %w", mapError(err))
	}
	return nil
}

func (r *pgShowRepo) List(ctx context.Context) ([]domain.ShowListing, error) {
	q := listingSelect + ` ORDER BY s.start_time, s.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.List: %w", err)
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.List: %w", err)
	}
	return listings, nil
}

func (r *pgShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error) {
	q := listingSelect + ` WHERE s.venue_id = @venue_id ORDER BY s.start_time, s.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"venue_id": venueID})
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListByVenue: %w", err)
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListByVenue: %w", err)
	}
	return listings, nil
}

func (r *pgShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error) {
	q := listingSelect + ` WHERE s.artist_id = @artist_id ORDER BY s.start_time, s.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"artist_id": artistID})
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListByArtist: %w", err)
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListByArtist: %w", err)
	}
	return listings, nil
}

func (r *pgShowRepo) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int64]int, error) {
	const q = `
		SELECT venue_id, count(*)
		FROM shows
		WHERE start_time > @now
		GROUP BY venue_id`

	counts, err := r.countBy(ctx, q, now)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.CountUpcomingByVenue: %w", err)
	}
	return counts, nil
}

func (r *pgShowRepo) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int64]int, error) {
	const q = `
		SELECT artist_id, count(*)
		FROM shows
		WHERE start_time > @now
		GROUP BY artist_id`

	counts, err := r.countBy(ctx, q, now)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.CountUpcomingByArtist: %w", err)
	}
	return counts, nil
}

// countBy runs a two-column (id, count) aggregate and collects it into a map.
func (r *pgShowRepo) countBy(ctx context.Context, q string, now time.Time) (map[int64]int, error) {
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"now": now})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			id int64
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		counts[id] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return counts, nil
}

func collectListings(rows pgx.Rows) ([]domain.ShowListing, error) {
	defer rows.Close()

	listings := []domain.ShowListing{}
	for rows.Next() {
		var l domain.ShowListing
		err := rows.Scan(&l.ShowID, &l.StartTime,
			&l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return listings, nil
}

// scanShow maps a single database row into a domain.Show.
func scanShow(s scanner) (domain.Show, error) {
	var sh domain.Show
	err := s.Scan(&sh.ID, &sh.StartTime, &sh.ArtistID, &sh.VenueID, &sh.CreatedAt)
	if err != nil {
		return domain.Show{}, err
	}
	return sh, nil
}
