// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), maps them into structured Go types and validates them so the
// service fails fast on bad or missing configuration.
//
// Responsibilities:
//   - Load environment variables prefixed with TRACKER_.
//   - Map env vars into a structured Go config (structs).
//   - Validate required values and cross-field rules (storage backend).
//   - Provide defaults for optional blocks (server limits, observability).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before koanf reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix TRACKER_. The prefix is stripped and the
	rest is lowercased; nesting uses "." so that:

	  TRACKER_SERVER.PORT      -> server.port      -> Config.Server.Port
	  TRACKER_STORAGE.DRIVER   -> storage.driver   -> Config.Storage.Driver
	  TRACKER_MONGO.URI        -> mongo.uri        -> Config.Mongo.URI
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "TRACKER_"

// Storage drivers understood by the repository layer.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Mongo         MongoConfig          `koanf:"mongo"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP on the API routes. Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// StorageConfig selects which document store backs the repositories.
type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=postgres mongo"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// It is only required when Storage.Driver is "postgres".
type DatabaseConfig struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name"`
	SSLMode         string `koanf:"ssl_mode"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// DSN renders the postgres URL for pgx. The password is query-escaped so
// characters like ':' or '@' do not break the URL.
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// MongoConfig contains the MongoDB connection string and database name.
// It is only required when Storage.Driver is "mongo".
type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

// RedisConfig contains Redis connection details ("host:port").
// Redis is optional: when Address is empty the background job service and
// the redis health check are disabled.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Address) != ""
}

// defaultConfig returns the values used when a key is absent from the
// environment. koanf only overwrites fields present in its key space.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          20,
		},
		Storage: StorageConfig{Driver: DriverPostgres},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MinConns:        2,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 300,
		},
		Mongo: MongoConfig{Database: "exercise_tracker"},
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// on top of the defaults, validates it and returns it.
//
// Behavior summary:
//   - Loads env vars with prefix TRACKER_
//   - Unmarshals into Config (defaults stay for missing keys)
//   - Validates struct tags and storage-specific requirements
//   - Sets default observability if missing, then forces service name and env
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := defaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = "exercise-tracker"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// Validate runs struct-tag validation and then the rules that depend on the
// selected storage driver.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		var missing []string
		if c.Database.Host == "" {
			missing = append(missing, "database.host")
		}
		if c.Database.User == "" {
			missing = append(missing, "database.user")
		}
		if c.Database.Name == "" {
			missing = append(missing, "database.name")
		}
		if c.Database.Port <= 0 {
			missing = append(missing, "database.port")
		}
		if len(missing) > 0 {
			return fmt.Errorf("postgres storage requires: %s", strings.Join(missing, ", "))
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("mongo storage requires: mongo.uri, mongo.database")
		}
	}

	return nil
}
