package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjessup/slipwatch/internal/db"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func planExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var name string
		row := tx.QueryRowContext(ctx, `SELECT name FROM plans WHERE id = ?`, id)
		if err := row.Scan(&name); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return found
}

func insertPlan(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO plans (id, name, source_path, active, imported_at)
		VALUES (?, 'Plan', 'plan.xlsx', 0, '2025-01-01T00:00:00Z')`, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertPlan(ctx, tx, "p1")
	})
	require.NoError(t, err)

	assert.True(t, planExists(uow, "p1"), "plan should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertPlan(ctx, tx, "p2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, planExists(uow, "p2"), "plan should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertPlan(ctx, tx, "p3")
			panic("boom")
		})
	})

	assert.False(t, planExists(uow, "p3"), "plan should not exist after panic rollback")
}
