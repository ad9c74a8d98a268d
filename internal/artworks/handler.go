package artworks

import (
	"log/slog"

	"github.com/hannahsm1th/art-gallery-api/internal/catalog"
	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

// NewResource wires the artwork endpoints. Any registered user may browse;
// staff and managers manage records; only managers delete. The displayed
// projection is open to everyone, gallery-floor style.
func NewResource(logger *slog.Logger, audit shared.AuditRecorder, store catalog.Store[Artwork, CreateArtworkRequest, UpdateArtworkRequest], flagged catalog.FlaggedStore[Artwork]) *catalog.Resource[Artwork, CreateArtworkRequest, UpdateArtworkRequest] {
	return catalog.NewResource(logger, audit, catalog.Config[Artwork, CreateArtworkRequest, UpdateArtworkRequest]{
		Singular: "artwork",
		Plural:   "artworks",
		Store:    store,

		ListTier:        rbac.TierAnyRegisteredUser,
		ListAction:      "view all artworks",
		GetTier:         rbac.TierAnyRegisteredUser,
		GetAction:       "view all artworks",
		CreateTier:      rbac.TierStaffOrManager,
		CreateAction:    "add new artworks",
		UpdateTier:      rbac.TierStaffOrManager,
		UpdateAction:    "update an artwork",
		DeleteTier:      rbac.TierManagerOnly,
		DeleteAction:    "delete artworks",
		DeleteAllTier:   rbac.TierManagerOnly,
		DeleteAllAction: "delete all artworks",

		NotFoundMessage: "The artwork does not exist",
		DeletedMessage:  "Artwork was deleted.",

		RecordID: func(a Artwork) int64 { return a.ID },

		Flag: &catalog.FlagView[Artwork]{
			Path:         "displayed",
			Tier:         rbac.TierPublic,
			EmptyMessage: "No artworks are displayed",
			Store:        flagged,
		},
	})
}
