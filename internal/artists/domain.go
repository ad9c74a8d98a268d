package artists

import "time"

// Artist represents an artist record in the catalog.
type Artist struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	SortTitle    string    `json:"sort_title"`
	BirthDate    int       `json:"birth_date"`
	DeathDate    *int      `json:"death_date"`
	Description  string    `json:"description"`
	CreatedDate  time.Time `json:"created_date"`
	LastModified time.Time `json:"last_modified"`
}

type CreateArtistRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	SortTitle   string  `json:"sort_title" validate:"required,max=100"`
	BirthDate   *int    `json:"birth_date" validate:"required"`
	DeathDate   *int    `json:"death_date"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateArtistRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	SortTitle   *string `json:"sort_title" validate:"omitempty,min=1,max=100"`
	BirthDate   *int    `json:"birth_date"`
	DeathDate   *int    `json:"death_date"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}
