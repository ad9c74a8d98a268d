package artworks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

const artworkColumns = `id, title, image, thumbnail, date_start, date_end, place_of_origin, dimensions,
	medium_display, provenance_text, is_public_domain, latitude, longitude, department,
	artist_id, artist_title, on_display, created_date, last_modified`

// Repository provides PostgreSQL backed persistence for artworks.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindAll returns all artworks, optionally filtered by a case-insensitive
// title substring.
func (r *Repository) FindAll(ctx context.Context, title string) ([]Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks`
	var args []any
	if title != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, title)
	}
	query += ` ORDER BY id`
	return r.queryMany(ctx, query, args...)
}

// FindFlagged returns artworks currently on display.
func (r *Repository) FindFlagged(ctx context.Context) ([]Artwork, error) {
	return r.queryMany(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE on_display ORDER BY id`)
}

// FindByID fetches an artwork by identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (Artwork, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE id = $1`, id)
	record, err := scanArtwork(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Artwork{}, shared.ErrNotFound
		}
		return Artwork{}, err
	}
	return record, nil
}

// Create inserts a new artwork; the store assigns id and timestamps.
func (r *Repository) Create(ctx context.Context, req CreateArtworkRequest) (Artwork, error) {
	provenance := ""
	if req.ProvenanceText != nil {
		provenance = *req.ProvenanceText
	}
	publicDomain := false
	if req.IsPublicDomain != nil {
		publicDomain = *req.IsPublicDomain
	}
	onDisplay := false
	if req.OnDisplay != nil {
		onDisplay = *req.OnDisplay
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO artworks (title, image, thumbnail, date_start, date_end, place_of_origin, dimensions,
			medium_display, provenance_text, is_public_domain, latitude, longitude, department,
			artist_id, artist_title, on_display, created_date, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING `+artworkColumns,
		req.Title, req.Image, req.Thumbnail, *req.DateStart, req.DateEnd, req.PlaceOfOrigin,
		req.Dimensions, req.MediumDisplay, provenance, publicDomain, *req.Latitude, *req.Longitude,
		req.Department, *req.ArtistID, req.ArtistTitle, onDisplay)
	return scanArtwork(row)
}

// Update overwrites only the fields present in req and bumps last_modified.
func (r *Repository) Update(ctx context.Context, id int64, req UpdateArtworkRequest) (Artwork, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Image != nil {
		set("image", *req.Image)
	}
	if req.Thumbnail != nil {
		set("thumbnail", *req.Thumbnail)
	}
	if req.DateStart != nil {
		set("date_start", *req.DateStart)
	}
	if req.DateEnd != nil {
		set("date_end", *req.DateEnd)
	}
	if req.PlaceOfOrigin != nil {
		set("place_of_origin", *req.PlaceOfOrigin)
	}
	if req.Dimensions != nil {
		set("dimensions", *req.Dimensions)
	}
	if req.MediumDisplay != nil {
		set("medium_display", *req.MediumDisplay)
	}
	if req.ProvenanceText != nil {
		set("provenance_text", *req.ProvenanceText)
	}
	if req.IsPublicDomain != nil {
		set("is_public_domain", *req.IsPublicDomain)
	}
	if req.Latitude != nil {
		set("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		set("longitude", *req.Longitude)
	}
	if req.Department != nil {
		set("department", *req.Department)
	}
	if req.ArtistID != nil {
		set("artist_id", *req.ArtistID)
	}
	if req.ArtistTitle != nil {
		set("artist_title", *req.ArtistTitle)
	}
	if req.OnDisplay != nil {
		set("on_display", *req.OnDisplay)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE artworks SET %s, last_modified = NOW() WHERE id = $%d RETURNING `+artworkColumns,
		strings.Join(sets, ", "), len(args))
	record, err := scanArtwork(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Artwork{}, shared.ErrNotFound
		}
		return Artwork{}, err
	}
	return record, nil
}

// Delete removes an artwork permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every artwork and reports how many were deleted.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artworks`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...any) ([]Artwork, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Artwork
	for rows.Next() {
		record, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanArtwork(row pgx.Row) (Artwork, error) {
	var a Artwork
	err := row.Scan(&a.ID, &a.Title, &a.Image, &a.Thumbnail, &a.DateStart, &a.DateEnd, &a.PlaceOfOrigin,
		&a.Dimensions, &a.MediumDisplay, &a.ProvenanceText, &a.IsPublicDomain, &a.Latitude, &a.Longitude,
		&a.Department, &a.ArtistID, &a.ArtistTitle, &a.OnDisplay, &a.CreatedDate, &a.LastModified)
	return a, err
}
