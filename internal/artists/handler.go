package artists

import (
	"log/slog"

	"github.com/hannahsm1th/art-gallery-api/internal/catalog"
	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

// NewResource wires the artist endpoints. Listing and detail are public;
// staff and managers manage records; only managers delete.
func NewResource(logger *slog.Logger, audit shared.AuditRecorder, store catalog.Store[Artist, CreateArtistRequest, UpdateArtistRequest]) *catalog.Resource[Artist, CreateArtistRequest, UpdateArtistRequest] {
	return catalog.NewResource(logger, audit, catalog.Config[Artist, CreateArtistRequest, UpdateArtistRequest]{
		Singular: "artist",
		Plural:   "artists",
		Store:    store,

		ListTier:        rbac.TierPublic,
		GetTier:         rbac.TierPublic,
		CreateTier:      rbac.TierStaffOrManager,
		CreateAction:    "add new artists",
		UpdateTier:      rbac.TierStaffOrManager,
		UpdateAction:    "update an artist",
		DeleteTier:      rbac.TierManagerOnly,
		DeleteAction:    "delete artists",
		DeleteAllTier:   rbac.TierManagerOnly,
		DeleteAllAction: "delete all artists",

		NotFoundMessage: "The artist does not exist",
		DeletedMessage:  "Artist was deleted.",

		RecordID: func(a Artist) int64 { return a.ID },
	})
}
