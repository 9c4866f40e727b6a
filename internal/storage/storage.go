package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// SQLSlots keeps slots as rows of a libsql (Turso) database.
type SQLSlots struct {
	DB *sql.DB
}

func NewSQLSlots(ctx context.Context, url string) (*SQLSlots, error) {
	if url == "" {
		return nil, fmt.Errorf("database url not set")
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := initializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Debugf("opened libsql slot store")
	return &SQLSlots{DB: db}, nil
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS slots (
            name TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *SQLSlots) Get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE name = ?`,
		name,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read slot %s: %w", name, err)
	}
	return value, true, nil
}

func (s *SQLSlots) Set(ctx context.Context, name, value string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO slots (name, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
		name,
		value,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", name, err)
	}
	return nil
}

func (s *SQLSlots) Close() error {
	return s.DB.Close()
}
