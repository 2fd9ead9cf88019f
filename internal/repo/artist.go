package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fyyur/internal/domain"
)

// ArtistRepo defines the persistence operations for Artists.
type ArtistRepo interface {
	// Create inserts a new artist and returns the persisted record.
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)

	// GetByID retrieves a single artist by primary key.
	// Returns domain.ErrNotFound if no artist with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Artist, error)

	// List returns all artists ordered by name, then id.
	List(ctx context.Context) ([]domain.Artist, error)

	// Search returns artists whose name contains term, ignoring case, ordered by id.
	Search(ctx context.Context, term string) ([]domain.Artist, error)

	// Update overwrites every mutable field of an existing artist.
	// Returns domain.ErrNotFound if no artist with that ID exists.
	Update(ctx context.Context, artist domain.Artist) (domain.Artist, error)

	// Delete removes an artist and all of their shows in one transaction.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgArtistRepo is the Postgres implementation of ArtistRepo.
type pgArtistRepo struct {
	db db
}

// NewArtistRepo constructs an ArtistRepo backed by the provided db connection.
func NewArtistRepo(db db) ArtistRepo {
	return &pgArtistRepo{db: db}
}

const artistColumns = `id, name, city, state, phone, image_link, facebook_link,
		website, genres, seeking_venue, seeking_description, created_at, updated_at`

func (r *pgArtistRepo) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	const q = `
		INSERT INTO artists (name, city, state, phone, image_link, facebook_link,
		                     website, genres, seeking_venue, seeking_description)
		VALUES (@name, @city, @state, @phone, @image_link, @facebook_link,
		        @website, @genres, @seeking_venue, @seeking_description)
		RETURNING ` + artistColumns

	var result domain.Artist
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanArtist(tx.QueryRow(ctx, q, artistArgs(artist)))
		return err
	})
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgArtistRepo) GetByID(ctx context.Context, id int64) (domain.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists WHERE id = @id`

	result, err := scanArtist(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.GetByID: %w", mapError(err))
	}
	return result, nil
}

func (r *pgArtistRepo) List(ctx context.Context) ([]domain.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists ORDER BY name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.List: %w", err)
	}
	artists, err := collectArtists(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.List: %w", err)
	}
	return artists, nil
}

func (r *pgArtistRepo) Search(ctx context.Context, term string) ([]domain.Artist, error) {
	q := `SELECT ` + artistColumns + `
		FROM artists
		WHERE name ILIKE '%' || @term || '%'
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"term": escapeLike(term)})
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.Search: %w", err)
	}
	artists, err := collectArtists(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.Search: %w", err)
	}
	return artists, nil
}

func (r *pgArtistRepo) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	const q = `
		UPDATE artists
		SET name                = @name,
		    city                = @city,
		    state               = @state,
		    phone               = @phone,
		    image_link          = @image_link,
		    facebook_link       = @facebook_link,
		    website             = @website,
		    genres              = @genres,
		    seeking_venue       = @seeking_venue,
		    seeking_description = @seeking_description,
		    updated_at          = now()
		WHERE id = @id
		RETURNING ` + artistColumns

	args := artistArgs(artist)
	args["id"] = artist.ID

	var result domain.Artist
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanArtist(tx.QueryRow(ctx, q, args))
		return err
	})
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgArtistRepo) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{"id": id}
		if _, err := tx.Exec(ctx, `DELETE FROM shows WHERE artist_id = @id`, args); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM artists WHERE id = @id`, args)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.ArtistRepo.Delete: %w", mapError(err))
	}
	return nil
}

func collectArtists(rows pgx.Rows) ([]domain.Artist, error) {
	defer rows.Close()

	artists := []domain.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return artists, nil
}

func artistArgs(a domain.Artist) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                a.Name,
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"image_link":          a.ImageLink,
		"facebook_link":       a.FacebookLink,
		"website":             a.Website,
		"genres":              domain.EncodeGenres(a.Genres),
		"seeking_venue":       a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}

// scanArtist maps a single database row into a domain.Artist.
func scanArtist(s scanner) (domain.Artist, error) {
	var (
		a      domain.Artist
		genres string
	)
	err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Website, &genres, &a.SeekingVenue, &a.SeekingDescription,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Artist{}, err
	}
	a.Genres = domain.DecodeGenres(genres)
	return a, nil
}
