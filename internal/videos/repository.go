package videos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

const videoColumns = `id, title, video, thumbnail, production_date, place_of_origin, length,
	description, is_public_domain, creator, subject, published, created_date, last_modified`

// Repository provides PostgreSQL backed persistence for videos.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindAll returns all videos, optionally filtered by a case-insensitive
// title substring.
func (r *Repository) FindAll(ctx context.Context, title string) ([]Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos`
	var args []any
	if title != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, title)
	}
	query += ` ORDER BY id`
	return r.queryMany(ctx, query, args...)
}

// FindFlagged returns videos currently published.
func (r *Repository) FindFlagged(ctx context.Context) ([]Video, error) {
	return r.queryMany(ctx, `SELECT `+videoColumns+` FROM videos WHERE published ORDER BY id`)
}

// FindByID fetches a video by identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (Video, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	record, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Video{}, shared.ErrNotFound
		}
		return Video{}, err
	}
	return record, nil
}

// Create inserts a new video; the store assigns id and timestamps.
func (r *Repository) Create(ctx context.Context, req CreateVideoRequest) (Video, error) {
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	publicDomain := false
	if req.IsPublicDomain != nil {
		publicDomain = *req.IsPublicDomain
	}
	published := false
	if req.Published != nil {
		published = *req.Published
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (title, video, thumbnail, production_date, place_of_origin, length,
			description, is_public_domain, creator, subject, published, created_date, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING `+videoColumns,
		req.Title, req.Video, req.Thumbnail, *req.ProductionDate, req.PlaceOfOrigin, req.Length,
		description, publicDomain, req.Creator, req.Subject, published)
	return scanVideo(row)
}

// Update overwrites only the fields present in req and bumps last_modified.
func (r *Repository) Update(ctx context.Context, id int64, req UpdateVideoRequest) (Video, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Video != nil {
		set("video", *req.Video)
	}
	if req.Thumbnail != nil {
		set("thumbnail", *req.Thumbnail)
	}
	if req.ProductionDate != nil {
		set("production_date", *req.ProductionDate)
	}
	if req.PlaceOfOrigin != nil {
		set("place_of_origin", *req.PlaceOfOrigin)
	}
	if req.Length != nil {
		set("length", *req.Length)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.IsPublicDomain != nil {
		set("is_public_domain", *req.IsPublicDomain)
	}
	if req.Creator != nil {
		set("creator", *req.Creator)
	}
	if req.Subject != nil {
		set("subject", *req.Subject)
	}
	if req.Published != nil {
		set("published", *req.Published)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE videos SET %s, last_modified = NOW() WHERE id = $%d RETURNING `+videoColumns,
		strings.Join(sets, ", "), len(args))
	record, err := scanVideo(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Video{}, shared.ErrNotFound
		}
		return Video{}, err
	}
	return record, nil
}

// Delete removes a video permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every video and reports how many were deleted.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...any) ([]Video, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Video
	for rows.Next() {
		record, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanVideo(row pgx.Row) (Video, error) {
	var v Video
	err := row.Scan(&v.ID, &v.Title, &v.Video, &v.Thumbnail, &v.ProductionDate, &v.PlaceOfOrigin,
		&v.Length, &v.Description, &v.IsPublicDomain, &v.Creator, &v.Subject, &v.Published,
		&v.CreatedDate, &v.LastModified)
	return v, err
}
