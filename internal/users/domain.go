package users

import (
	"time"

	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
)

// User is a registered account. The password hash is deliberately not part
// of this struct: it is written by the repository and never read back into
// anything that serializes.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         rbac.Role `json:"role"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedDate  time.Time `json:"created_date"`
	LastModified time.Time `json:"last_modified"`
}

type CreateUserRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=80"`
	LastName    string  `json:"last_name" validate:"required,max=80"`
	Email       string  `json:"email" validate:"required,email,max=254"`
	Password    string  `json:"password" validate:"required,max=200"`
	Role        string  `json:"role" validate:"required,oneof=MA ST ED VI"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=80"`
	Email       *string `json:"email" validate:"omitempty,email,max=254"`
	Password    *string `json:"password" validate:"omitempty,min=1,max=200"`
	Role        *string `json:"role" validate:"omitempty,oneof=MA ST ED VI"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"is_active"`
}
