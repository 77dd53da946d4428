// Package config loads the papertrade settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/etnz/papertrade"
)

// Prefix of every environment variable read by Load.
const Prefix = "PAPERTRADE_"

type Config struct {
	StartingCash        decimal.Decimal `env:"STARTING_CASH" envDefault:"100000"`
	Currency            string          `env:"CURRENCY" envDefault:"INR"`
	CatalogFile         string          `env:"CATALOG_FILE"`
	CatalogPath         string          `env:"CATALOG_PATH" envDefault:"$"`
	LogLevel            string          `env:"LOG_LEVEL" envDefault:"info"`
	LogFile             string          `env:"LOG_FILE"`
	NotificationTimeout time.Duration   `env:"NOTIFICATION_TIMEOUT" envDefault:"3s"`
}

// Load reads the configuration from the process environment, after loading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return Parse(nil)
}

// Parse reads the configuration from environ, or from the process environment
// if environ is nil, and validates it.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: Prefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that the environment parser cannot.
func (c *Config) Validate() error {
	var errs []error
	if err := papertrade.ValidateCurrency(c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("%sCURRENCY: %w", Prefix, err))
	}
	if c.StartingCash.IsNegative() {
		errs = append(errs, fmt.Errorf("%sSTARTING_CASH must not be negative, got %s", Prefix, c.StartingCash))
	}
	if c.NotificationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%sNOTIFICATION_TIMEOUT must be positive, got %s", Prefix, c.NotificationTimeout))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%sLOG_LEVEL: %w", Prefix, err))
	}
	return errors.Join(errs...)
}

// Cash returns the starting cash balance.
func (c *Config) Cash() papertrade.Money {
	return papertrade.M(c.StartingCash, c.Currency)
}

// Catalog returns the instrument catalog: the default one, or the one read
// from CatalogFile.
func (c *Config) Catalog() (*papertrade.Catalog, error) {
	if c.CatalogFile == "" {
		return papertrade.DefaultCatalog(c.Currency), nil
	}
	return papertrade.DecodeCatalogFile(c.CatalogFile, c.CatalogPath, c.Currency)
}

// Logger builds the application logger.
//
// Entries go to LogFile as JSON when it is set, otherwise to console in a human
// readable form. A nil console and no LogFile disables logging. The returned
// closer must be called once the logger is no longer used.
func (c *Config) Logger(console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}

	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("cannot open log file: %w", err)
		}
		return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
	case console != nil:
		out := zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), io.NopCloser(nil), nil
	default:
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
}
