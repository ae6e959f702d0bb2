package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"taproom/internal/config"
	"taproom/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLSTATE codes checked by the bootstrap.
const (
	codeDuplicateDatabase = "42P04"
	codeInvalidCatalog    = "3D000"
)

// Bootstrap prepares the application database before the pool is opened.
// It drops the database when db.Drop is set, then creates it and applies
// every migration when db.Initialize is set.
func Bootstrap(ctx context.Context, db config.Database) error {
	log := logger.FromContext(ctx).WithComponent("bootstrap")

	if db.Drop {
		if err := DropDatabase(ctx, db); err != nil {
			log.Errorw("drop database failed", "database", db.Name, "error", err)
			return err
		}
	}

	if !db.Initialize {
		return nil
	}

	log.Infow("initializing database", "database", db.String())

	if err := CreateDatabase(ctx, db); err != nil {
		log.Errorw("create database failed", "database", db.Name, "error", err)
		return err
	}

	m, err := NewMigrator(ctx, db)
	if err != nil {
		log.Errorw("open migrations failed", "error", err)
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		log.Errorw("apply migrations failed", "error", err)
		return err
	}

	log.Infow("database initialized", "database", db.Name)
	return nil
}

// DropDatabase removes db.Name. A missing database is not an error.
func DropDatabase(ctx context.Context, db config.Database) error {
	return withAdminConn(ctx, db, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "DROP DATABASE "+pgx.Identifier{db.Name}.Sanitize())
		if hasCode(err, codeInvalidCatalog) {
			logger.Info(ctx, "database does not exist, skipping drop", "database", db.Name)
			return nil
		}
		if err != nil {
			return fmt.Errorf("drop database %s: %w", db.Name, err)
		}
		logger.Info(ctx, "dropped database", "database", db.Name)
		return nil
	})
}

// CreateDatabase creates db.Name. An existing database is left untouched.
func CreateDatabase(ctx context.Context, db config.Database) error {
	return withAdminConn(ctx, db, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{db.Name}.Sanitize())
		if hasCode(err, codeDuplicateDatabase) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("create database %s: %w", db.Name, err)
		}
		logger.Info(ctx, "created database", "database", db.Name)
		return nil
	})
}

func withAdminConn(ctx context.Context, db config.Database, fn func(conn *pgx.Conn) error) error {
	conn, err := pgx.Connect(ctx, db.AdminDSN())
	if err != nil {
		return fmt.Errorf("connect to %s: %w", db.AdminName, err)
	}
	defer conn.Close(context.Background())

	return fn(conn)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Migrator applies the embedded schema migrations.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens the embedded migration source against db.Name.
func NewMigrator(ctx context.Context, db config.Database) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, db.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	m.Log = &migrateLogger{log: logger.FromContext(ctx).WithComponent("migrate")}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	if err := m.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version reports the applied schema version. Zero means no migration ran yet.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (m *Migrator) Close() {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Default().Warnw("close migrations", "source_error", srcErr, "db_error", dbErr)
	}
}

type migrateLogger struct {
	log *logger.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.log.Infof(format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
