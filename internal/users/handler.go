package users

import (
	"log/slog"

	"github.com/hannahsm1th/art-gallery-api/internal/catalog"
	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

// NewResource wires the user endpoints. Account management is manager work
// except for reads and profile edits, which staff can do; changing a role
// always requires a manager, gated per request payload.
func NewResource(logger *slog.Logger, audit shared.AuditRecorder, store catalog.Store[User, CreateUserRequest, UpdateUserRequest]) *catalog.Resource[User, CreateUserRequest, UpdateUserRequest] {
	return catalog.NewResource(logger, audit, catalog.Config[User, CreateUserRequest, UpdateUserRequest]{
		Singular: "user",
		Plural:   "users",
		Store:    store,

		ListTier:        rbac.TierStaffOrManager,
		ListAction:      "view users",
		GetTier:         rbac.TierStaffOrManager,
		GetAction:       "view a user",
		CreateTier:      rbac.TierManagerOnly,
		CreateAction:    "add new users",
		UpdateTier:      rbac.TierStaffOrManager,
		UpdateAction:    "update a user",
		DeleteTier:      rbac.TierManagerOnly,
		DeleteAction:    "delete users",
		DeleteAllTier:   rbac.TierManagerOnly,
		DeleteAllAction: "delete all users",

		NotFoundMessage: "The user does not exist",
		DeletedMessage:  "User was deleted.",
		ConflictMessage: "User with that email already exists",

		ElevatedUpdate: func(req UpdateUserRequest) bool { return req.Role != nil },
		ElevatedTier:   rbac.TierManagerOnly,
		ElevatedAction: "modify a user role",

		RecordID: func(u User) int64 { return u.ID },
	})
}
