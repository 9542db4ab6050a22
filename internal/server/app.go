// Package server wires the course API: it opens the database, applies
// migrations, seeds the catalog and runs the gRPC and metrics listeners
// until the context is cancelled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/logging"
	"github.com/dmitrijs2005/codecrafted/internal/seed"
	"github.com/dmitrijs2005/codecrafted/internal/server/config"
	"github.com/dmitrijs2005/codecrafted/internal/server/media"
	"github.com/dmitrijs2005/codecrafted/internal/server/metrics"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/codecrafted/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/codecrafted/internal/server/grpc"
)

const (
	sessionPurgeInterval = 10 * time.Minute
	shutdownTimeout      = 5 * time.Second
)

var sqlOpen = sql.Open

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	users       *services.UserService
	courses     *services.CourseService
	metrics     *metrics.Metrics
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	presigner, err := media.NewPresigner(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("media init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us, err := services.NewUserService(db, rm, presigner, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	cs := services.NewCourseService(db, rm, presigner)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		users:       us,
		courses:     cs,
		metrics:     metrics.New(),
	}, nil
}

// prepare checks the database, migrates it and seeds an empty catalog.
func (app *App) prepare(ctx context.Context) error {
	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	if app.config.SeedCatalog {
		n, err := app.courses.Seed(ctx, seed.Courses())
		if err != nil {
			return err
		}
		if n > 0 {
			app.logger.Info(ctx, "Seeded course catalog", "courses", n)
		}
	}

	return nil
}

func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.prepare(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.users, app.courses, app.metrics)
		return s.Run(ctx)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return app.serveMetrics(ctx)
		})
	}

	g.Go(func() error {
		app.purgeSessions(ctx)
		return nil
	})

	return g.Wait()
}

func (app *App) serveMetrics(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())

	srv := &http.Server{
		Addr:              app.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) purgeSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.users.PurgeExpiredSessions(ctx)
			if err != nil {
				app.logger.Warn(ctx, "session purge failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Debug(ctx, "purged expired sessions", "count", n)
			}
		}
	}
}
