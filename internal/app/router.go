package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hannahsm1th/art-gallery-api/internal/catalog"
	"github.com/hannahsm1th/art-gallery-api/internal/platform/httpx"
)

// RouterParams aggregates everything the router mounts.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	Authenticator func(http.Handler) http.Handler

	Artists  catalog.Mounter
	Artworks catalog.Mounter
	Videos   catalog.Mounter
	Users    catalog.Mounter
}

// NewRouter builds the HTTP routing tree.
func NewRouter(p RouterParams) chi.Router {
	r := chi.NewRouter()
	r.Use(MiddlewareStack(MiddlewareConfig{
		Logger:        p.Logger,
		Config:        p.Config,
		Authenticator: p.Authenticator,
	})...)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/artists", p.Artists.MountRoutes)
		r.Route("/artworks", p.Artworks.MountRoutes)
		r.Route("/videos", p.Videos.MountRoutes)
		r.Route("/users", p.Users.MountRoutes)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.Message(w, http.StatusNotFound, "Not found")
	})

	return r
}
