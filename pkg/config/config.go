package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Server configuration struct.
type ServerConfiguration struct {
	Addr            string        `split_words:"true" default:":8080"`
	GrpcAddr        string        `split_words:"true" default:":50051"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

// Database configuration struct.
type DatabaseConfiguration struct {
	Driver         string `split_words:"true" default:"postgres"`
	DSN            string `split_words:"true"`
	MigrationsPath string `split_words:"true" default:"migrations"`
	Name           string `split_words:"true" default:"draftroom"`
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string `split_words:"true"`
	Port     string `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
}

// Enabled reports if a Redis server was configured.
func (r RedisConfiguration) Enabled() bool {
	return r.Host != ""
}

// Addr returns the host:port pair.
func (r RedisConfiguration) Addr() string {
	return r.Host + ":" + r.Port
}

type AdminConfiguration struct {
	Password string `split_words:"true"`
}

// Bucket configuration for the S3 compatible storage.
type BucketConfiguration struct {
	Region       string `split_words:"true" default:"auto"`
	Endpoint     string `split_words:"true"`
	AccessKey    string `split_words:"true"`
	AccessSecret string `split_words:"true"`
	LogBucket    string `split_words:"true"`
	ImportBucket string `split_words:"true"`
}

type ModerationConfiguration struct {
	BlocklistFile string        `split_words:"true"`
	MinFillTime   time.Duration `split_words:"true" default:"3s"`
}

type LogConfiguration struct {
	Level  string `split_words:"true" default:"info"`
	Format string `split_words:"true" default:"text"`
}

// Config is the full application configuration.
type Config struct {
	Environment string `split_words:"true" default:"local"`

	Server     ServerConfiguration
	Database   DatabaseConfiguration
	Redis      RedisConfiguration
	Admin      AdminConfiguration
	Bucket     BucketConfiguration
	Moderation ModerationConfiguration
	Log        LogConfiguration
}

// Load the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("couldn't process the environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the values that have no sensible default.
func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the postgres driver")
		}
	case DriverSqlite:
		if c.Database.DSN == "" {
			c.Database.DSN = "draftroom.db"
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	return nil
}
