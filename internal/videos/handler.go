package videos

import (
	"log/slog"

	"github.com/hannahsm1th/art-gallery-api/internal/catalog"
	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

// NewResource wires the video endpoints. The main collection is
// staff-facing; the published projection serves educators as well.
func NewResource(logger *slog.Logger, audit shared.AuditRecorder, store catalog.Store[Video, CreateVideoRequest, UpdateVideoRequest], flagged catalog.FlaggedStore[Video]) *catalog.Resource[Video, CreateVideoRequest, UpdateVideoRequest] {
	return catalog.NewResource(logger, audit, catalog.Config[Video, CreateVideoRequest, UpdateVideoRequest]{
		Singular: "video",
		Plural:   "videos",
		Store:    store,

		ListTier:        rbac.TierStaffOrManager,
		ListAction:      "view all videos",
		GetTier:         rbac.TierStaffOrManager,
		GetAction:       "view all videos",
		CreateTier:      rbac.TierStaffOrManager,
		CreateAction:    "add new videos",
		UpdateTier:      rbac.TierStaffOrManager,
		UpdateAction:    "update a video",
		DeleteTier:      rbac.TierManagerOnly,
		DeleteAction:    "delete videos",
		DeleteAllTier:   rbac.TierManagerOnly,
		DeleteAllAction: "delete all videos",

		NotFoundMessage: "The video does not exist",
		DeletedMessage:  "Video was deleted.",

		RecordID: func(v Video) int64 { return v.ID },

		Flag: &catalog.FlagView[Video]{
			Path:         "published",
			Tier:         rbac.TierEducatorOrStaffOrManager,
			Action:       "view published videos",
			EmptyMessage: "No videos are published",
			Store:        flagged,
		},
	})
}
