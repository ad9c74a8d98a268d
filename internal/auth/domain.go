package auth

import "github.com/hannahsm1th/art-gallery-api/internal/rbac"

// Account is the credential view of a user record.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         rbac.Role
	IsActive     bool
}
