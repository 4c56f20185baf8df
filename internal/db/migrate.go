package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. All statements are
// idempotent (CREATE ... IF NOT EXISTS) so re-running the full list against
// an existing database is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		source_path TEXT NOT NULL,
		active      INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		plan_id      TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		task_id      TEXT NOT NULL,
		name         TEXT NOT NULL,
		start_date   TEXT NOT NULL,
		end_date     TEXT NOT NULL,
		duration     INTEGER NOT NULL DEFAULT 0,
		predecessors TEXT NOT NULL DEFAULT '',
		successors   TEXT NOT NULL DEFAULT '',
		position     INTEGER NOT NULL,
		PRIMARY KEY (plan_id, task_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_plan ON tasks(plan_id)`,

	// Partial unique index: at most one plan can be active.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_plans_active ON plans(active) WHERE active = 1`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
