// Package database owns the schema and applies goose migrations to it.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Direction selects which goose command Run executes.
type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Status Direction = "status"
)

// Migrate brings the schema behind dsn to the latest version.
func Migrate(ctx context.Context, dsn string) error {
	return Run(ctx, dsn, Up)
}

// Run executes a goose command against dsn using the embedded migrations.
func Run(ctx context.Context, dsn string, dir Direction) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch dir {
	case Up:
		err = goose.UpContext(ctx, db, migrationsDir)
	case Down:
		err = goose.DownContext(ctx, db, migrationsDir)
	case Status:
		err = goose.StatusContext(ctx, db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations %s: %w", dir, err)
	}

	return nil
}
