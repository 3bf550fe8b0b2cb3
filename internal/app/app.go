package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/nutrilog-backend/internal/adapter/foodcsv"
	"github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres"
	mealrepo "github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres/meal"
	userrepo "github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/nutrilog-backend/internal/auth"
	"github.com/heartmarshall/nutrilog-backend/internal/config"
	authsvc "github.com/heartmarshall/nutrilog-backend/internal/service/auth"
	"github.com/heartmarshall/nutrilog-backend/internal/service/food"
	"github.com/heartmarshall/nutrilog-backend/internal/service/meal"
	"github.com/heartmarshall/nutrilog-backend/internal/transport/middleware"
	"github.com/heartmarshall/nutrilog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, loads the food catalog and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	catalog, err := foodcsv.Load(ctx, cfg.Catalog.DataDir, cfg.Catalog.FilePrefix, logger)
	if err != nil {
		return fmt.Errorf("load food catalog: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userrepo.New(pool), postgres.NewTxManager(pool), jwtManager, cfg.Auth)
	mealService := meal.NewService(logger, mealrepo.New(pool))
	foodService := food.NewService(logger, catalog, cfg.Catalog.SearchLimit)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, catalog, BuildVersion()),
		Auth:   rest.NewAuthHandler(authService, logger),
		Meals:  rest.NewMealHandler(mealService, logger),
		Foods:  rest.NewFoodHandler(foodService, logger),
	}, rest.RouterConfig{
		RequireAuth: middleware.RequireAuth(authService),
		AuthLimit:   limiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(router)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
