package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	// registers the "postgres" driver used by goose
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// SetupPostgres applies all pending migrations to the database behind dsn.
func SetupPostgres(ctx context.Context, dsn string, logger *zap.Logger) error {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("can not open migration connection: %w", err)
	}
	defer conn.Close()

	if err = conn.PingContext(ctx); err != nil {
		return fmt.Errorf("can not reach database: %w", err)
	}

	return migrate(ctx, conn, logger)
}

func migrate(ctx context.Context, conn *sql.DB, logger *zap.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(zapGooseLogger{logger: logger})

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return fmt.Errorf("can not set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, migrationsDir); err != nil {
		return fmt.Errorf("can not apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, conn)
	if err != nil {
		return fmt.Errorf("can not read migration version: %w", err)
	}

	if logger != nil {
		logger.Info("database migrated", zap.Int64("version", version))
	}
	return nil
}

type zapGooseLogger struct {
	logger *zap.Logger
}

func (z zapGooseLogger) Fatalf(format string, v ...interface{}) {
	if z.logger != nil {
		z.logger.Fatal(fmt.Sprintf(format, v...))
	} else {
		logrus.Fatalf(format, v...)
	}
}

func (z zapGooseLogger) Printf(format string, v ...interface{}) {
	if z.logger != nil {
		z.logger.Info(fmt.Sprintf(format, v...))
	}
}
