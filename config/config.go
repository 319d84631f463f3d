package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultHTTPPort       = "8080"
	defaultGRPCPort       = "9090"
	defaultMetricsPort    = "9000"
	defaultPGHost         = "localhost"
	defaultPGPort         = "5432"
	defaultMaxConn        = "10"
	defaultLogValue       = true
	defaultMigrations     = true
	defaultCORSOrigins    = "*"
	defaultReadTimeoutMS  = 5000
	defaultWriteTimeoutMS = 10000
)

type (
	Config struct {
		HTTP struct {
			Port           string        `env:"HTTP_PORT"`
			ReadTimeoutMS  time.Duration `env:"HTTP_READ_TIMEOUT_MS"`
			WriteTimeoutMS time.Duration `env:"HTTP_WRITE_TIMEOUT_MS"`
			CORSOrigins    []string      `env:"CORS_ALLOWED_ORIGINS"`
		}

		GRPC struct {
			Port string `env:"GRPC_PORT"`
		}

		PG struct {
			URL        string
			MigrateURL string
			Host       string `env:"POSTGRES_HOST"`
			Port       string `env:"POSTGRES_PORT"`
			DB         string `env:"POSTGRES_DB"`
			User       string `env:"POSTGRES_USER"`
			Password   string `env:"POSTGRES_PASSWORD"`
			MaxConn    string `env:"POSTGRES_MAX_CONN"`
			Migrations bool   `env:"MIGRATIONS_ENABLED"`
		}

		Log struct {
			File          string `env:"LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogDBRepo     bool   `env:"LOG_DB_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
			JaegerURL   string `env:"JAEGER_URL"`
		}
	}
)

// NewConfig reads the configuration from the environment. Variables found in
// the optional env files are loaded first and never override the real environment.
func NewConfig(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	v := viper.New()

	var err error
	if cfg.HTTP.Port, err = parseEnvString(v, "http_port", "HTTP_PORT", defaultHTTPPort); err != nil {
		return nil, err
	}

	if cfg.HTTP.ReadTimeoutMS, err = parseEnvMillis(v, "http_read_timeout", "HTTP_READ_TIMEOUT_MS", defaultReadTimeoutMS); err != nil {
		return nil, err
	}

	if cfg.HTTP.WriteTimeoutMS, err = parseEnvMillis(v, "http_write_timeout", "HTTP_WRITE_TIMEOUT_MS", defaultWriteTimeoutMS); err != nil {
		return nil, err
	}

	origins, err := parseEnvString(v, "cors_origins", "CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	if err != nil {
		return nil, err
	}
	cfg.HTTP.CORSOrigins = splitList(origins)

	if cfg.GRPC.Port, err = parseEnvString(v, "grpc_port", "GRPC_PORT", defaultGRPCPort); err != nil {
		return nil, err
	}

	if cfg.PG.Host, err = parseEnvString(v, "db_host", "POSTGRES_HOST", defaultPGHost); err != nil {
		return nil, err
	}

	if cfg.PG.Port, err = parseEnvString(v, "db_port", "POSTGRES_PORT", defaultPGPort); err != nil {
		return nil, err
	}

	if cfg.PG.DB, err = parseEnvString(v, "db_name", "POSTGRES_DB"); err != nil {
		return nil, err
	}

	if cfg.PG.User, err = parseEnvString(v, "db_user", "POSTGRES_USER"); err != nil {
		return nil, err
	}

	if cfg.PG.Password, err = parseEnvString(v, "db_password", "POSTGRES_PASSWORD"); err != nil {
		return nil, err
	}

	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	if cfg.PG.Migrations, err = parseEnvBool(v, "db_migrations", "MIGRATIONS_ENABLED", defaultMigrations); err != nil {
		return nil, err
	}

	cfg.PG.MigrateURL = postgresURL(cfg.PG.User, cfg.PG.Password, cfg.PG.Host, cfg.PG.Port, cfg.PG.DB)
	cfg.PG.URL = cfg.PG.MigrateURL + fmt.Sprintf("&pool_max_conns=%s", cfg.PG.MaxConn)

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE"); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort, err = parseEnvString(v, "metrics_port", "METRICS_PORT", defaultMetricsPort); err != nil {
		return nil, err
	}

	if cfg.Observability.JaegerURL, err = parseEnvString(v, "jaeger_url", "JAEGER_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("can not load env file %s: %w", file, err)
		}
	}
	return nil
}

func postgresURL(user, password, host, port, db string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseEnvMillis(v *viper.Viper, key, envVar string, defaultValue ...int) (time.Duration, error) {
	ms, err := parseEnvInt(v, key, envVar, defaultValue...)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
