package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

type Database struct {
	Host     string `env:"HOST,expand" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME,expand" envDefault:"taproom"`
	User     string `env:"USER,expand" envDefault:"postgres"`
	Password string `env:"PASSWORD,expand" envDefault:"postgres"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	// AdminName is the maintenance database used to create and drop Name.
	AdminName string `env:"ADMIN_NAME" envDefault:"postgres"`

	MaxConns         int32         `env:"MAX_CONNS" envDefault:"20"`
	MinConns         int32         `env:"MIN_CONNS" envDefault:"5"`
	MaxConnIdleTime  time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"30s"`
	MaxConnLifetime  time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"1h"`
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT" envDefault:"30s"`

	Drop       bool `env:"DROP" envDefault:"false"`
	Initialize bool `env:"INITIALIZE" envDefault:"true"`
}

// DSN returns the connection URL of the application database.
func (d Database) DSN() string {
	return d.url(d.Name, "postgres")
}

// AdminDSN returns the connection URL of the maintenance database.
func (d Database) AdminDSN() string {
	return d.url(d.AdminName, "postgres")
}

// MigrateURL returns the application database URL in the form the
// pgx/v5 migration driver expects.
func (d Database) MigrateURL() string {
	return d.url(d.Name, "pgx5")
}

func (d Database) url(name, scheme string) string {
	u := url.URL{
		Scheme: scheme,
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func (d Database) String() string {
	return fmt.Sprintf("%s@%s:%d/%s", d.User, d.Host, d.Port, d.Name)
}
