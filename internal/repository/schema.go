package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		comment TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		emotion TEXT NOT NULL,
		sentiment TEXT NOT NULL,
		event_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_timestamp ON feedback (timestamp)`,
	`CREATE TABLE IF NOT EXISTS analytics (
		id INTEGER PRIMARY KEY,
		positive INTEGER NOT NULL DEFAULT 0,
		neutral INTEGER NOT NULL DEFAULT 0,
		negative INTEGER NOT NULL DEFAULT 0,
		total INTEGER NOT NULL DEFAULT 0,
		average_rating REAL NOT NULL DEFAULT 0,
		emotion_happy INTEGER NOT NULL DEFAULT 0,
		emotion_neutral INTEGER NOT NULL DEFAULT 0,
		emotion_unhappy INTEGER NOT NULL DEFAULT 0,
		last_updated DATETIME NOT NULL
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		comment TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		emotion VARCHAR(10) NOT NULL,
		sentiment VARCHAR(10) NOT NULL,
		event_id VARCHAR(50) NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_timestamp ON feedback (timestamp)`,
	`CREATE TABLE IF NOT EXISTS analytics (
		id INTEGER PRIMARY KEY,
		positive INTEGER NOT NULL DEFAULT 0,
		neutral INTEGER NOT NULL DEFAULT 0,
		negative INTEGER NOT NULL DEFAULT 0,
		total BIGINT NOT NULL DEFAULT 0,
		average_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		emotion_happy BIGINT NOT NULL DEFAULT 0,
		emotion_neutral BIGINT NOT NULL DEFAULT 0,
		emotion_unhappy BIGINT NOT NULL DEFAULT 0,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// seedAnalytics inserts the placeholder row shown before any feedback exists.
const seedAnalytics = `
	INSERT INTO analytics (id, positive, neutral, negative, total, average_rating,
		emotion_happy, emotion_neutral, emotion_unhappy, last_updated)
	VALUES (1, 65, 25, 10, 0, 0, 0, 0, 0, ?)
	ON CONFLICT (id) DO NOTHING
`

// EnsureSchema creates the feedback and analytics tables when missing and
// seeds the analytics row. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts := sqliteSchema
	if dialect == DialectPostgres {
		stmts = postgresSchema
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, dialect.Rebind(seedAnalytics), time.Now().UTC()); err != nil {
		return fmt.Errorf("seed analytics: %w", err)
	}
	return nil
}
