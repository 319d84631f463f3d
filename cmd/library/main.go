package main

import (
	"os"

	"github.com/project/libraryapi/config"
	"github.com/project/libraryapi/internal/app"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envFile = ".env"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("library: %s", err)
	}
}

func newRootCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the library HTTP API",
		RunE: func(*cobra.Command, []string) error {
			return run(app.Run)
		},
	}

	root := &cobra.Command{
		Use:           "library",
		Short:         "Book inventory service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(*cobra.Command, []string) error {
			return run(app.Migrate)
		},
	})

	return root
}

func run(action func(*zap.Logger, *config.Config) error) error {
	cfg, err := config.NewConfig(envFile)
	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	logger, err := NewLogger(cfg.Log.File)
	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() { _ = logger.Sync() }()

	return action(logger, cfg)
}

// NewLogger writes JSON logs to stdout, or appends them to file when one is set.
func NewLogger(file string) (*zap.Logger, error) {
	writeSyncer := zapcore.AddSync(os.Stdout)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		writeSyncer = zapcore.AddSync(f)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}
