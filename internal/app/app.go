package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/libraryapi/config"
	"github.com/project/libraryapi/db"
	"github.com/project/libraryapi/internal/controller"
	"github.com/project/libraryapi/internal/usecase/enrollment"
	"github.com/project/libraryapi/internal/usecase/library"
	"github.com/project/libraryapi/internal/usecase/repository"
	"github.com/project/libraryapi/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutDownSeconds = 3

// Run serves the library until SIGINT or SIGTERM arrives.
func Run(l *zap.Logger, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := setupTracing(cfg.Observability.JaegerURL, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			l.Warn("can not flush traces", zap.Error(err))
		}
	}()

	if cfg.PG.Migrations {
		if err = db.SetupPostgres(ctx, cfg.PG.MigrateURL, l); err != nil {
			return err
		}
	}

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		return fmt.Errorf("can not create pgxpool: %w", err)
	}
	defer dbPool.Close()

	repo := repository.New(logger.Pick(l, cfg.Log.LogDBRepo), dbPool)
	useCases := library.New(logger.Pick(l, cfg.Log.LogUseCase), repo, enrollment.NewGenerator())
	ctrl := controller.New(logger.Pick(l, cfg.Log.LogController), useCases, useCases)

	handler, err := ctrl.Handler()
	if err != nil {
		return fmt.Errorf("can not build routes: %w", err)
	}

	rest := newRestServer(cfg, handler)
	metrics := newMetricsServer(cfg)
	health := newGrpcServer()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return serveHTTP(l, "rest", rest) })
	group.Go(func() error { return serveHTTP(l, "metrics", metrics) })
	group.Go(func() error { return health.serve(l, cfg.GRPC.Port) })
	group.Go(func() error { return health.watchDatabase(groupCtx, l, dbPool) })

	group.Go(func() error {
		<-groupCtx.Done()
		l.Info("shutting down")

		shutdownCtx, stop := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer stop()

		err := errors.Join(rest.Shutdown(shutdownCtx), metrics.Shutdown(shutdownCtx))
		health.stop(shutdownCtx)
		return err
	})

	return group.Wait()
}

// Migrate applies pending migrations and returns.
func Migrate(l *zap.Logger, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return db.SetupPostgres(ctx, cfg.PG.MigrateURL, l)
}
