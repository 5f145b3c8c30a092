package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/platform/config"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// Open connects to dsn and verifies the connection. The caller owns the
// returned pool.
func Open(ctx context.Context, dsn string, pool config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database.Open: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.Open: ping: %w", err)
	}
	return db, nil
}
