package config

import "time"

type HTTP struct {
	Address         string        `env:"ADDRESS,expand" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Gzip            bool          `env:"GZIP" envDefault:"true"`
}

// API tunes the resource endpoints.
type API struct {
	// DefaultPageSize applies when a search request omits size.
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"1000"`

	// TaggedResults switches mutating endpoints to the {"type": ...} envelope.
	TaggedResults bool `env:"TAGGED_RESULTS" envDefault:"false"`
}
