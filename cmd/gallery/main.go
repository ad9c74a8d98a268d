package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hannahsm1th/art-gallery-api/internal/app"
	"github.com/hannahsm1th/art-gallery-api/internal/artists"
	"github.com/hannahsm1th/art-gallery-api/internal/artworks"
	"github.com/hannahsm1th/art-gallery-api/internal/auth"
	"github.com/hannahsm1th/art-gallery-api/internal/platform/cache"
	"github.com/hannahsm1th/art-gallery-api/internal/platform/db"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
	"github.com/hannahsm1th/art-gallery-api/internal/users"
	"github.com/hannahsm1th/art-gallery-api/internal/videos"
)

func main() {
	if app.InTestMode() {
		return
	}
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Redis is an optimisation for credential checks; the API stays up
	// without it, it just bcrypt-verifies every request.
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, auth cache disabled", slog.Any("error", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	authService := auth.NewService(auth.NewRepository(pool), redisClient, cfg.AuthCacheTTL)
	auditLogger := shared.NewAuditLogger(pool)

	artworkRepo := artworks.NewRepository(pool)
	videoRepo := videos.NewRepository(pool)
	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		Authenticator: authService.Middleware(logger),
		Artists:       artists.NewResource(logger, auditLogger, artists.NewRepository(pool)),
		Artworks:      artworks.NewResource(logger, auditLogger, artworkRepo, artworkRepo),
		Videos:        videos.NewResource(logger, auditLogger, videoRepo, videoRepo),
		Users:         users.NewResource(logger, auditLogger, users.NewRepository(pool)),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gallery api listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
