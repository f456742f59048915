package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	articlerepo "github.com/mythosengine/backend/internal/adapter/postgres/article"
	imagerepo "github.com/mythosengine/backend/internal/adapter/postgres/image"
	personrepo "github.com/mythosengine/backend/internal/adapter/postgres/person"
	projectrepo "github.com/mythosengine/backend/internal/adapter/postgres/project"
	settlementrepo "github.com/mythosengine/backend/internal/adapter/postgres/settlement"
	userrepo "github.com/mythosengine/backend/internal/adapter/postgres/user"
	"github.com/mythosengine/backend/internal/adapter/redis"
	"github.com/mythosengine/backend/internal/auth"
	"github.com/mythosengine/backend/internal/config"
	"github.com/mythosengine/backend/internal/metrics"
	"github.com/mythosengine/backend/internal/service/article"
	"github.com/mythosengine/backend/internal/service/image"
	"github.com/mythosengine/backend/internal/service/person"
	"github.com/mythosengine/backend/internal/service/project"
	"github.com/mythosengine/backend/internal/service/settlement"
	"github.com/mythosengine/backend/internal/service/user"
	"github.com/mythosengine/backend/internal/storage"
	"github.com/mythosengine/backend/internal/transport/middleware"
	"github.com/mythosengine/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// Postgres (and Redis when enabled), assembles services and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_backend", cfg.Storage.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, cleanup, err := newHandler(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler assembles repositories, services and the router on top of pool.
// The returned cleanup releases the rate limit store.
func newHandler(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	blobs, err := newBlobStore(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	deps := []rest.Dependency{{Name: "database", Pinger: pool}}

	cleanup := func() {}
	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		store, release, err := newLimitStore(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup = release
		if rdb, ok := store.(*redis.WindowStore); ok {
			deps = append(deps, rest.Dependency{Name: "redis", Pinger: rdb})
		}
		rateLimit = middleware.RateLimit(store, cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window, m, logger)
	}

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	articles := articlerepo.New(pool)
	persons := personrepo.New(pool)
	settlements := settlementrepo.New(pool)
	images := imagerepo.New(pool)

	userSvc := user.NewService(logger, users)
	projectSvc := project.NewService(logger, projects, images, blobs, txm)
	articleSvc := article.NewService(logger, articles)
	personSvc := person.NewService(logger, persons, txm)
	settlementSvc := settlement.NewService(logger, settlements, txm)
	imageSvc := image.NewService(logger, cfg.Storage, cfg.Server.APIPrefix, images, projects, blobs, m)

	routerDeps := rest.RouterDeps{
		Logger:      logger,
		APIPrefix:   cfg.Server.APIPrefix,
		CORS:        cfg.CORS,
		Tokens:      auth.NewJWTManager(cfg.Auth),
		MetricsPath: cfg.Metrics.Path,
		RateLimit:   rateLimit,
		Health:      rest.NewHealthHandler(Version, deps...),
		Users:       rest.NewUserHandler(userSvc, articleSvc, logger),
		Projects:    rest.NewProjectHandler(projectSvc, logger),
		Articles:    rest.NewArticleHandler(articleSvc, logger),
		Persons:     rest.NewPersonHandler(personSvc, logger),
		Settlements: rest.NewSettlementHandler(settlementSvc, logger),
		Images:      rest.NewImageHandler(imageSvc, cfg.Storage.MaxImageBytes(), m, logger),
	}
	if cfg.Metrics.Enabled {
		routerDeps.Metrics = m
	}

	return rest.NewRouter(routerDeps), cleanup, nil
}

// serve runs srv until ctx is done, then drains in-flight requests within the
// configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
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
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newBlobStore(cfg config.StorageConfig) (storage.BlobStore, error) {
	if cfg.IsRemote() {
		return storage.NewRemote(cfg.RemoteBucket), nil
	}
	local, err := storage.NewLocal(cfg.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}
	return local, nil
}

type limitStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

// newLimitStore picks the Redis window store when Redis is enabled, otherwise
// the in-process token bucket. The returned cleanup releases it.
func newLimitStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (limitStore, func(), error) {
	if !cfg.Redis.Enabled {
		store := middleware.NewMemoryStore(cfg.RateLimit.CleanupInterval)
		return store, store.Stop, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("rate limiting backed by redis", slog.String("prefix", cfg.Redis.Prefix))
	return redis.NewWindowStore(client, cfg.Redis.Prefix), closeRedis(client, logger), nil
}

func closeRedis(client *goredis.Client, logger *slog.Logger) func() {
	return func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis client", slog.String("error", err.Error()))
		}
	}
}
