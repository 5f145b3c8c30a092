package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// MigrationSet is one service's migrations and the goose version table that
// tracks them. Services sharing a database keep separate tables.
type MigrationSet struct {
	Dir   string
	Table string
}

var (
	UserMigrations = MigrationSet{Dir: "migrations/users", Table: "goose_user_service_version"}
	TodoMigrations = MigrationSet{Dir: "migrations/todos", Table: "goose_todo_service_version"}
)

var gooseUpContext = goose.UpContext

// Migrate applies every pending migration of set.
func Migrate(ctx context.Context, db *sql.DB, set MigrationSet, logger zerolog.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(set.Table)
	goose.SetLogger(gooseLogger{logger})
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("database.Migrate: %w", err)
	}

	if err := gooseUpContext(ctx, db, set.Dir); err != nil {
		return fmt.Errorf("database.Migrate %s: %w", set.Dir, err)
	}
	return nil
}

type gooseLogger struct {
	l zerolog.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Info().Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Fatal().Msgf(format, v...)
}
