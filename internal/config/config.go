package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type StoreDriver string

const (
	StoreMemory   StoreDriver = "memory"
	StorePostgres StoreDriver = "postgres"
)

type Config struct {
	App struct {
		Name    string `envconfig:"APP_NAME" default:"CarLot"`
		LogFile string `envconfig:"LOG_FILE" default:"carlot.log"`
	}

	Store struct {
		Driver StoreDriver `envconfig:"STORE_DRIVER" default:"memory"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"carlot"`

		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Catalog struct {
		// Path to a CSV export replacing the built-in vehicle table. Empty keeps the built-in one.
		Path string `envconfig:"CATALOG_PATH"`
	}

	Negotiation struct {
		MaxRounds     int           `envconfig:"NEGOTIATION_MAX_ROUNDS" default:"2"`
		ResponseDelay time.Duration `envconfig:"NEGOTIATION_RESPONSE_DELAY" default:"1500ms"`
		FollowUpDelay time.Duration `envconfig:"NEGOTIATION_FOLLOWUP_DELAY" default:"2s"`
	}
}

// ConnectionString builds a Postgres URL with the credentials escaped.
func (c *Config) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port)),
		Path:     "/" + c.DB.Name,
		RawQuery: "sslmode=disable",
	}

	return u.String()
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Negotiation.MaxRounds < 1 {
		return fmt.Errorf("negotiation max rounds must be at least 1, got %d", c.Negotiation.MaxRounds)
	}

	if c.Negotiation.ResponseDelay < 0 || c.Negotiation.FollowUpDelay < 0 {
		return fmt.Errorf("negotiation delays cannot be negative")
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
