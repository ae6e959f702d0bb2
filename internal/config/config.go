package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "TAPROOM_"

type Config struct {
	AppEnv   string   `env:"APP_ENV" envDefault:"development"`
	Logger   Logger   `envPrefix:"LOG_"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	API      API      `envPrefix:"API_"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// ParseEnv reads the configuration from the given variables only.
func ParseEnv(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}

func (c *Config) validate() error {
	if c.Database.Name == "" {
		return errors.New("database name must not be empty")
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > 1000 {
		return errors.Errorf("default page size must be in [1, 1000], got %d", c.API.DefaultPageSize)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return errors.Errorf("min conns (%d) exceeds max conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	return nil
}
