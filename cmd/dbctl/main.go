// Package main provides CLI for database maintenance.
// Usage: dbctl init
//
//	dbctl drop
//	dbctl migrate up|down [steps]|version
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"taproom/internal/config"
	"taproom/internal/infrastructure/storage/postgres"
	"taproom/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	conf, err := config.Parse()
	if err != nil {
		fmt.Printf("Error loading configuration: %+v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: conf.Logger.Level, Development: true})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	ctx := logger.WithLogger(context.Background(), log)

	switch os.Args[1] {
	case "init":
		run(postgres.CreateDatabase(ctx, conf.Database), "create database")
		migrateUp(ctx, conf.Database)
	case "drop":
		run(postgres.DropDatabase(ctx, conf.Database), "drop database")
	case "reset":
		run(postgres.DropDatabase(ctx, conf.Database), "drop database")
		run(postgres.CreateDatabase(ctx, conf.Database), "create database")
		migrateUp(ctx, conf.Database)
	case "migrate":
		migrateCommand(ctx, conf.Database)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Taproom Database CLI

Usage:
  dbctl <command> [options]

Commands:
  init             Create the database if missing and apply migrations
  drop             Drop the database
  reset            Drop, create and migrate the database
  migrate up       Apply pending migrations
  migrate down N   Roll back N migrations (default 1)
  migrate version  Print the applied schema version
  help             Show this help

Environment Variables:
  TAPROOM_DATABASE_HOST, TAPROOM_DATABASE_PORT, TAPROOM_DATABASE_NAME
  TAPROOM_DATABASE_USER, TAPROOM_DATABASE_PASSWORD, TAPROOM_DATABASE_SSLMODE
  TAPROOM_DATABASE_ADMIN_NAME   Maintenance database (default postgres)`)
}

func run(err error, action string) {
	if err != nil {
		fmt.Printf("Error: %s: %v\n", action, err)
		os.Exit(1)
	}
}

func migrateUp(ctx context.Context, db config.Database) {
	m, err := postgres.NewMigrator(ctx, db)
	run(err, "open migrations")
	defer m.Close()

	run(m.Up(), "migrate up")
	printVersion(m)
}

func migrateCommand(ctx context.Context, db config.Database) {
	if len(os.Args) < 3 {
		fmt.Println("Error: migrate requires up, down or version")
		os.Exit(1)
	}

	m, err := postgres.NewMigrator(ctx, db)
	run(err, "open migrations")
	defer m.Close()

	switch os.Args[2] {
	case "up":
		run(m.Up(), "migrate up")
	case "down":
		steps := 1
		if len(os.Args) > 3 {
			n, err := strconv.Atoi(os.Args[3])
			if err != nil || n < 1 {
				fmt.Printf("Error: invalid step count %q\n", os.Args[3])
				os.Exit(1)
			}
			steps = n
		}
		run(m.Down(steps), "migrate down")
	case "version":
	default:
		fmt.Printf("Unknown migrate command: %s\n", os.Args[2])
		os.Exit(1)
	}
	printVersion(m)
}

func printVersion(m *postgres.Migrator) {
	v, dirty, err := m.Version()
	run(err, "read version")
	if dirty {
		fmt.Printf("Schema version: %d (dirty)\n", v)
		return
	}
	fmt.Printf("Schema version: %d\n", v)
}
