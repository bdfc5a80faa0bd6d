package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		Storage    `yaml:"storage"`
		PG         `yaml:"postgres"`
		SQLite     `yaml:"sqlite"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	Storage struct {
		Driver   string            `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
		Table    string            `yaml:"table" env:"STORAGE_TABLE" env-default:"logs"`
		Columns  map[string]string `yaml:"columns"`
		Sortable []string          `yaml:"sortable"`
	}

	PG struct {
		MaxPoolSize  int           `env:"MAX_POOL_SIZE" yaml:"max_pool_size" env-default:"10"`
		ConnAttempts int           `env:"PG_CONN_ATTEMPTS" yaml:"conn_attempts" env-default:"10"`
		ConnTimeout  time.Duration `env:"PG_CONN_TIMEOUT" yaml:"conn_timeout" env-default:"1s"`
		URL          string        `env:"PG_URL"`
	}

	SQLite struct {
		Path string `yaml:"path" env:"SQLITE_PATH" env-default:"data/dblogger.db"`
	}

	HTTP struct {
		Port            string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ActorHeader     string        `yaml:"actor_header" env:"HTTP_ACTOR_HEADER" env-default:"X-Actor-ID"`
		Audit           bool          `yaml:"audit" env:"HTTP_AUDIT"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"5s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const ENV_PATH = "infra/.env.dev"

func loadEnvFile(path string) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
		log.WithField("path", path).Debug("Env file loaded")
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", path).Debug("Env file not found, using process environment")
	default:
		log.Warnf("Error loading .env file: %v", err)
	}
}

func New() (*Config, error) {
	loadEnvFile(ENV_PATH)

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	return Load(pathToConfig)
}

// Load reads the YAML file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.PG.URL == "" {
			return errors.New("postgres url is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", repoerrs.ErrUnknownDriver, c.Storage.Driver)
	}

	if !domain.IsIdentifier(c.Storage.Table) {
		return fmt.Errorf("%w: table %q", domain.ErrInvalidColumnName, c.Storage.Table)
	}

	_, err := c.Registry()
	return err
}

// Registry builds the column schema of the log table from the storage section.
func (c *Config) Registry() (*domain.Registry, error) {
	extensions := make(domain.Columns, len(c.Storage.Columns))
	for name, typ := range c.Storage.Columns {
		t, err := domain.ParseColumnType(typ)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		extensions[name] = t
	}
	return domain.NewRegistry(extensions, c.Storage.Sortable)
}
