package artists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

const artistColumns = `id, title, sort_title, birth_date, death_date, description, created_date, last_modified`

// Repository provides PostgreSQL backed persistence for artists.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindAll returns all artists, optionally filtered by a case-insensitive
// title substring.
func (r *Repository) FindAll(ctx context.Context, title string) ([]Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists`
	var args []any
	if title != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, title)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Artist
	for rows.Next() {
		record, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// FindByID fetches an artist by identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (Artist, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id)
	record, err := scanArtist(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Artist{}, shared.ErrNotFound
		}
		return Artist{}, err
	}
	return record, nil
}

// Create inserts a new artist; the store assigns id and timestamps.
func (r *Repository) Create(ctx context.Context, req CreateArtistRequest) (Artist, error) {
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO artists (title, sort_title, birth_date, death_date, description, created_date, last_modified)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING `+artistColumns,
		req.Title, req.SortTitle, *req.BirthDate, req.DeathDate, description)
	return scanArtist(row)
}

// Update overwrites only the fields present in req and bumps last_modified.
func (r *Repository) Update(ctx context.Context, id int64, req UpdateArtistRequest) (Artist, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.SortTitle != nil {
		set("sort_title", *req.SortTitle)
	}
	if req.BirthDate != nil {
		set("birth_date", *req.BirthDate)
	}
	if req.DeathDate != nil {
		set("death_date", *req.DeathDate)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE artists SET %s, last_modified = NOW() WHERE id = $%d RETURNING `+artistColumns,
		strings.Join(sets, ", "), len(args))
	record, err := scanArtist(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Artist{}, shared.ErrNotFound
		}
		return Artist{}, err
	}
	return record, nil
}

// Delete removes an artist permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every artist and reports how many were deleted.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artists`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanArtist(row pgx.Row) (Artist, error) {
	var a Artist
	err := row.Scan(&a.ID, &a.Title, &a.SortTitle, &a.BirthDate, &a.DeathDate, &a.Description, &a.CreatedDate, &a.LastModified)
	return a, err
}
