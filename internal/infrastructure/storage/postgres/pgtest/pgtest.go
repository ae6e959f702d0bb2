//go:build integration

// Package pgtest starts a disposable PostgreSQL server for integration
// tests and opens a migrated database on it.
package pgtest

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"taproom/internal/config"
	"taproom/internal/infrastructure/storage/postgres"
)

const (
	image    = "docker.io/library/postgres:16-alpine"
	user     = "taproom"
	password = "taproom"
)

// Start runs a PostgreSQL container for the lifetime of t and returns the
// settings of an application database on it. The database itself is
// created by Open. Skipped in short mode.
func Start(t *testing.T) config.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
		},
		// The entrypoint restarts the server once after initdb.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	conf, err := config.ParseEnv(map[string]string{
		config.Prefix + "DATABASE_HOST":      host,
		config.Prefix + "DATABASE_PORT":      port.Port(),
		config.Prefix + "DATABASE_USER":      user,
		config.Prefix + "DATABASE_PASSWORD":  password,
		config.Prefix + "DATABASE_NAME":      "taproom_test",
		config.Prefix + "DATABASE_MIN_CONNS": "1",
		config.Prefix + "DATABASE_MAX_CONNS": "4",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return conf.Database
}

// Open creates and migrates db, then returns a pool and transaction
// manager on it. Both are closed when t ends.
func Open(t *testing.T, db config.Database) (*postgres.Pool, *postgres.TxManager) {
	t.Helper()

	ctx := context.Background()
	db.Drop = true
	db.Initialize = true
	if err := postgres.Bootstrap(ctx, db); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(db))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	t.Cleanup(pool.Close)

	return pool, postgres.NewTxManager(pool, db.StatementTimeout)
}
