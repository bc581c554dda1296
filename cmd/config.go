package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"
	"shipping/internal/pkg/logging"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the service configuration, read from the environment.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT"      envDefault:"json"`
	LogOutput      string `env:"LOG_OUTPUT"      envDefault:"stderr"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	PackerMaxPackages int    `env:"PACKER_MAX_PACKAGES" envDefault:"10000"`
	DefaultCurrency   string `env:"DEFAULT_CURRENCY"    envDefault:"USD"`

	CacheReportSchedule string        `env:"CACHE_REPORT_SCHEDULE" envDefault:"@every 1m"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT"      envDefault:"10s"`
}

// LoadConfig reads the configuration from the environment.
// Variables in the given dotenv files are loaded first without overriding the
// environment; missing files are skipped.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PackerMaxPackages <= 0 {
		cfg.PackerMaxPackages = services.DefaultMaxPackages
	}
	if cfg.CacheReportSchedule == "" {
		cfg.CacheReportSchedule = jobs.DefaultCacheReportSchedule
	}
	return cfg, nil
}

// Logging returns the logger configuration.
func (c Config) Logging() logging.Config {
	return logging.Config{
		Level:       c.LogLevel,
		Format:      c.LogFormat,
		Output:      c.LogOutput,
		Development: c.LogDevelopment,
	}
}
