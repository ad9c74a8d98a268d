package videos

import "time"

// Video represents an education video record. Video and thumbnail hold
// stored media paths; upload mechanics live outside this service.
type Video struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Video          string    `json:"video"`
	Thumbnail      string    `json:"thumbnail"`
	ProductionDate int       `json:"production_date"`
	PlaceOfOrigin  string    `json:"place_of_origin"`
	Length         string    `json:"length"`
	Description    string    `json:"description"`
	IsPublicDomain bool      `json:"is_public_domain"`
	Creator        string    `json:"creator"`
	Subject        string    `json:"subject"`
	Published      bool      `json:"published"`
	CreatedDate    time.Time `json:"created_date"`
	LastModified   time.Time `json:"last_modified"`
}

type CreateVideoRequest struct {
	Title          string  `json:"title" validate:"required,max=200"`
	Video          string  `json:"video" validate:"required,max=200"`
	Thumbnail      string  `json:"thumbnail" validate:"required,max=200"`
	ProductionDate *int    `json:"production_date" validate:"required"`
	PlaceOfOrigin  string  `json:"place_of_origin" validate:"required,max=100"`
	Length         string  `json:"length" validate:"required,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=1000"`
	IsPublicDomain *bool   `json:"is_public_domain"`
	Creator        string  `json:"creator" validate:"required,max=100"`
	Subject        string  `json:"subject" validate:"required,max=100"`
	Published      *bool   `json:"published"`
}

type UpdateVideoRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1,max=200"`
	Video          *string `json:"video" validate:"omitempty,min=1,max=200"`
	Thumbnail      *string `json:"thumbnail" validate:"omitempty,min=1,max=200"`
	ProductionDate *int    `json:"production_date"`
	PlaceOfOrigin  *string `json:"place_of_origin" validate:"omitempty,min=1,max=100"`
	Length         *string `json:"length" validate:"omitempty,min=1,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=1000"`
	IsPublicDomain *bool   `json:"is_public_domain"`
	Creator        *string `json:"creator" validate:"omitempty,min=1,max=100"`
	Subject        *string `json:"subject" validate:"omitempty,min=1,max=100"`
	Published      *bool   `json:"published"`
}
