package artworks

import "time"

// Artwork represents an artwork record in the catalog. Image and thumbnail
// hold stored media paths; upload mechanics live outside this service.
type Artwork struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	Thumbnail      string    `json:"thumbnail"`
	DateStart      int       `json:"date_start"`
	DateEnd        *int      `json:"date_end"`
	PlaceOfOrigin  string    `json:"place_of_origin"`
	Dimensions     string    `json:"dimensions"`
	MediumDisplay  string    `json:"medium_display"`
	ProvenanceText string    `json:"provenance_text"`
	IsPublicDomain bool      `json:"is_public_domain"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Department     string    `json:"department"`
	ArtistID       int64     `json:"artist_id"`
	ArtistTitle    string    `json:"artist_title"`
	OnDisplay      bool      `json:"on_display"`
	CreatedDate    time.Time `json:"created_date"`
	LastModified   time.Time `json:"last_modified"`
}

type CreateArtworkRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Image          string   `json:"image" validate:"required,max=200"`
	Thumbnail      string   `json:"thumbnail" validate:"required,max=200"`
	DateStart      *int     `json:"date_start" validate:"required"`
	DateEnd        *int     `json:"date_end"`
	PlaceOfOrigin  string   `json:"place_of_origin" validate:"required,max=100"`
	Dimensions     string   `json:"dimensions" validate:"required,max=100"`
	MediumDisplay  string   `json:"medium_display" validate:"required,max=100"`
	ProvenanceText *string  `json:"provenance_text" validate:"omitempty,max=3000"`
	IsPublicDomain *bool    `json:"is_public_domain"`
	Latitude       *float64 `json:"latitude" validate:"required"`
	Longitude      *float64 `json:"longitude" validate:"required"`
	Department     string   `json:"department" validate:"required,max=80"`
	ArtistID       *int64   `json:"artist_id" validate:"required"`
	ArtistTitle    string   `json:"artist_title" validate:"required,max=200"`
	OnDisplay      *bool    `json:"on_display"`
}

type UpdateArtworkRequest struct {
	Title          *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Image          *string  `json:"image" validate:"omitempty,min=1,max=200"`
	Thumbnail      *string  `json:"thumbnail" validate:"omitempty,min=1,max=200"`
	DateStart      *int     `json:"date_start"`
	DateEnd        *int     `json:"date_end"`
	PlaceOfOrigin  *string  `json:"place_of_origin" validate:"omitempty,min=1,max=100"`
	Dimensions     *string  `json:"dimensions" validate:"omitempty,min=1,max=100"`
	MediumDisplay  *string  `json:"medium_display" validate:"omitempty,min=1,max=100"`
	ProvenanceText *string  `json:"provenance_text" validate:"omitempty,max=3000"`
	IsPublicDomain *bool    `json:"is_public_domain"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Department     *string  `json:"department" validate:"omitempty,min=1,max=80"`
	ArtistID       *int64   `json:"artist_id"`
	ArtistTitle    *string  `json:"artist_title" validate:"omitempty,min=1,max=200"`
	OnDisplay      *bool    `json:"on_display"`
}
