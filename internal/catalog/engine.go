// Package catalog implements the request lifecycle shared by every catalog
// resource: authenticate (upstream middleware) → authorize → locate →
// validate → mutate/read → respond. The four resource packages configure one
// Resource each instead of repeating the control flow.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hannahsm1th/art-gallery-api/internal/platform/httpx"
	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

// Store is the record-store collaborator for one resource type. T is the
// record, C the create payload, U the partial-update payload.
//
// Update applies only the fields present in U; absent fields keep their
// prior values, and the store bumps last_modified on every successful
// mutation. Implementations report shared.ErrNotFound and
// shared.ErrDuplicate; any other error is opaque and surfaces as a 500.
type Store[T, C, U any] interface {
	FindAll(ctx context.Context, title string) ([]T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, req C) (T, error)
	Update(ctx context.Context, id int64, req U) (T, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// FlaggedStore serves a read-only status-flag projection, e.g. artworks
// currently on display.
type FlaggedStore[T any] interface {
	FindFlagged(ctx context.Context) ([]T, error)
}

// Mounter is anything that can register its routes on a chi router.
type Mounter interface {
	MountRoutes(r chi.Router)
}

// FlagView configures the optional flag projection endpoint of a resource.
type FlagView[T any] struct {
	Path         string
	Tier         rbac.Tier
	Action       string
	EmptyMessage string
	Store        FlaggedStore[T]
}

// Config describes one resource: its store, the permission tier and action
// phrase per operation, and the legacy response messages.
type Config[T, C, U any] struct {
	Singular string
	Plural   string
	Store    Store[T, C, U]

	ListTier      rbac.Tier
	ListAction    string
	GetTier       rbac.Tier
	GetAction     string
	CreateTier    rbac.Tier
	CreateAction  string
	UpdateTier    rbac.Tier
	UpdateAction  string
	DeleteTier    rbac.Tier
	DeleteAction  string
	DeleteAllTier rbac.Tier
	DeleteAllAction string

	NotFoundMessage string
	DeletedMessage  string
	ConflictMessage string

	// ElevatedUpdate reports whether the update payload touches a field
	// that requires the stricter ElevatedTier, e.g. a user's role.
	ElevatedUpdate func(U) bool
	ElevatedTier   rbac.Tier
	ElevatedAction string

	// RecordID extracts the identifier of a record for audit entries.
	RecordID func(T) int64

	Flag *FlagView[T]
}

// Resource is the generic handler for one catalog resource.
type Resource[T, C, U any] struct {
	logger   *slog.Logger
	validate *validator.Validate
	audit    shared.AuditRecorder
	cfg      Config[T, C, U]
}

// NewResource builds a Resource from its configuration.
func NewResource[T, C, U any](logger *slog.Logger, audit shared.AuditRecorder, cfg Config[T, C, U]) *Resource[T, C, U] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource[T, C, U]{
		logger:   logger,
		validate: NewValidator(),
		audit:    audit,
		cfg:      cfg,
	}
}

// MountRoutes registers the resource's collection, detail and flag routes.
func (res *Resource[T, C, U]) MountRoutes(r chi.Router) {
	r.Get("/", res.list)
	r.Post("/", res.create)
	r.Delete("/", res.deleteAll)
	if res.cfg.Flag != nil {
		r.Get("/"+res.cfg.Flag.Path, res.flagged)
	}
	r.Route("/{id:[0-9]+}", func(r chi.Router) {
		r.Get("/", res.get)
		r.Put("/", res.update)
		r.Delete("/", res.remove)
	})
}

// authorize runs the permission gate and writes the denial when the caller's
// role is outside the tier. Denials use 401, the API's legacy convention for
// authorization failures. Gates always run before any store lookup so an
// unauthorized caller learns nothing about record existence.
func (res *Resource[T, C, U]) authorize(w http.ResponseWriter, r *http.Request, tier rbac.Tier, action string) bool {
	if tier == rbac.TierPublic {
		return true
	}
	var role rbac.Role
	if p := rbac.PrincipalFromContext(r.Context()); p != nil {
		role = p.Role
	}
	if d := rbac.Authorize(role, tier, action); !d.Allowed {
		httpx.Message(w, http.StatusUnauthorized, d.Message)
		return false
	}
	return true
}

func (res *Resource[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	if !res.authorize(w, r, res.cfg.ListTier, res.cfg.ListAction) {
		return
	}
	records, err := res.cfg.Store.FindAll(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		res.logger.Error("list "+res.cfg.Plural+" failed", slog.Any("error", err))
		httpx.InternalError(w)
		return
	}
	if records == nil {
		records = []T{}
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (res *Resource[T, C, U]) get(w http.ResponseWriter, r *http.Request) {
	if !res.authorize(w, r, res.cfg.GetTier, res.cfg.GetAction) {
		return
	}
	id, ok := res.recordIDParam(w, r)
	if !ok {
		return
	}
	record, err := res.cfg.Store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, res.cfg.NotFoundMessage)
			return
		}
		res.logger.Error("get "+res.cfg.Singular+" failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.InternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, record)
}

func (res *Resource[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	if !res.authorize(w, r, res.cfg.CreateTier, res.cfg.CreateAction) {
		return
	}
	var req C
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := res.validationErrors(req); len(errs) > 0 {
		httpx.JSON(w, http.StatusBadRequest, errs)
		return
	}
	record, err := res.cfg.Store.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicate) {
			httpx.Message(w, http.StatusBadRequest, res.conflictMessage())
			return
		}
		res.logger.Error("create "+res.cfg.Singular+" failed", slog.Any("error", err))
		httpx.InternalError(w)
		return
	}
	res.recordAudit(r, "create", res.auditID(record))
	httpx.JSON(w, http.StatusCreated, record)
}

func (res *Resource[T, C, U]) update(w http.ResponseWriter, r *http.Request) {
	if !res.authorize(w, r, res.cfg.UpdateTier, res.cfg.UpdateAction) {
		return
	}
	id, ok := res.recordIDParam(w, r)
	if !ok {
		return
	}
	var req U
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// The stricter gate applies only when the payload touches the elevated
	// field, and runs before the existence lookup like every other gate.
	if res.cfg.ElevatedUpdate != nil && res.cfg.ElevatedUpdate(req) {
		if !res.authorize(w, r, res.cfg.ElevatedTier, res.cfg.ElevatedAction) {
			return
		}
	}
	if errs := res.validationErrors(req); len(errs) > 0 {
		httpx.JSON(w, http.StatusBadRequest, errs)
		return
	}
	record, err := res.cfg.Store.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			httpx.Message(w, http.StatusNotFound, res.cfg.NotFoundMessage)
		case errors.Is(err, shared.ErrDuplicate):
			httpx.Message(w, http.StatusBadRequest, res.conflictMessage())
		default:
			res.logger.Error("update "+res.cfg.Singular+" failed", slog.Any("error", err), slog.Int64("id", id))
			httpx.InternalError(w)
		}
		return
	}
	res.recordAudit(r, "update", res.auditID(record))
	httpx.JSON(w, http.StatusOK, record)
}

func (res *Resource[T, C, U]) remove(w http.ResponseWriter, r *http.Request) {
	if !res.authorize(w, r, res.cfg.DeleteTier, res.cfg.DeleteAction) {
		return
	}
	id, ok := res.recordIDParam(w, r)
	if !ok {
		return
	}
	if err := res.cfg.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, res.cfg.NotFoundMessage)
			return
		}
		res.logger.Error("delete "+res.cfg.Singular+" failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.InternalError(w)
		return
	}
	res.recordAudit(r, "delete", strconv.FormatInt(id, 10))
	httpx.Message(w, http.StatusNoContent, res.cfg.DeletedMessage)
}

func (res *Resource[T, C, U]) deleteAll(w http.ResponseWriter, r *http.Request) {
	if !res.authorize(w, r, res.cfg.DeleteAllTier, res.cfg.DeleteAllAction) {
		return
	}
	count, err := res.cfg.Store.DeleteAll(r.Context())
	if err != nil {
		res.logger.Error("delete all "+res.cfg.Plural+" failed", slog.Any("error", err))
		httpx.InternalError(w)
		return
	}
	res.recordAudit(r, "delete_all", "*")
	httpx.Message(w, http.StatusNoContent, fmt.Sprintf("%d %s were deleted.", count, res.cfg.Plural))
}

// flagged serves the status-flag projection. A store failure to evaluate
// the flag filter is indistinguishable from an empty result: both are 404.
func (res *Resource[T, C, U]) flagged(w http.ResponseWriter, r *http.Request) {
	flag := res.cfg.Flag
	if !res.authorize(w, r, flag.Tier, flag.Action) {
		return
	}
	records, err := flag.Store.FindFlagged(r.Context())
	if err != nil || len(records) == 0 {
		if err != nil {
			res.logger.Warn("flag query "+res.cfg.Plural+" failed", slog.Any("error", err))
		}
		httpx.Message(w, http.StatusNotFound, flag.EmptyMessage)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (res *Resource[T, C, U]) recordIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusNotFound, res.cfg.NotFoundMessage)
		return 0, false
	}
	return id, true
}

func (res *Resource[T, C, U]) conflictMessage() string {
	if res.cfg.ConflictMessage != "" {
		return res.cfg.ConflictMessage
	}
	return "Duplicate " + res.cfg.Singular
}

func (res *Resource[T, C, U]) auditID(record T) string {
	if res.cfg.RecordID == nil {
		return "?"
	}
	return strconv.FormatInt(res.cfg.RecordID(record), 10)
}

func (res *Resource[T, C, U]) recordAudit(r *http.Request, action, entityID string) {
	if res.audit == nil {
		return
	}
	var actor int64
	if p := rbac.PrincipalFromContext(r.Context()); p != nil {
		actor = p.ID
	}
	err := res.audit.Record(r.Context(), shared.AuditLog{
		ActorID:  actor,
		Action:   res.cfg.Singular + "." + action,
		Entity:   res.cfg.Singular,
		EntityID: entityID,
	})
	if err != nil {
		res.logger.Warn("audit record", slog.Any("error", err))
	}
}
