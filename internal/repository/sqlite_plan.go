package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattjessup/slipwatch/internal/db"
	"github.com/mattjessup/slipwatch/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLitePlanRepo implements PlanRepo over SQLite.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a PlanRepo bound to the given DBTX, which may
// be a *sql.DB or a transaction from a unit of work.
func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

func (r *SQLitePlanRepo) CreatePlan(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, name, source_path, active, imported_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.SourcePath,
		boolToInt(p.Active),
		p.ImportedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) InsertTasks(ctx context.Context, planID string, tasks []*domain.Task) error {
	query := `INSERT INTO tasks (plan_id, task_id, name, start_date, end_date, duration, predecessors, successors, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, t := range tasks {
		_, err := r.db.ExecContext(ctx, query,
			planID,
			t.ID,
			t.Name,
			t.StartDate.Format(dateLayout),
			t.EndDate.Format(dateLayout),
			t.Duration,
			joinIDs(t.Predecessors),
			joinIDs(t.Successors),
			i,
		)
		if err != nil {
			return fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, planSelect+` WHERE p.id = ? GROUP BY p.id`, id)
	return scanPlan(row)
}

func (r *SQLitePlanRepo) GetActivePlan(ctx context.Context) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, planSelect+` WHERE p.active = 1 GROUP BY p.id`)
	p, err := scanPlan(row)
	if errors.Is(err, ErrPlanNotFound) {
		return nil, ErrNoActivePlan
	}
	return p, err
}

func (r *SQLitePlanRepo) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, planSelect+` GROUP BY p.id ORDER BY p.imported_at`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

// SetActive marks one plan active and all others inactive. Run inside a
// unit of work: the deactivate and activate must land together or the
// partial unique index on plans(active) can reject the second step.
func (r *SQLitePlanRepo) SetActive(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE plans SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("deactivating plans: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE plans SET active = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("activating plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking activation: %w", err)
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *SQLitePlanRepo) DeletePlan(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion: %w", err)
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *SQLitePlanRepo) ListTasks(ctx context.Context, planID string) ([]*domain.Task, error) {
	query := `SELECT task_id, name, start_date, end_date, duration, predecessors, successors
		FROM tasks WHERE plan_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var startStr, endStr, predsStr, succsStr string
		if err := rows.Scan(&t.ID, &t.Name, &startStr, &endStr, &t.Duration, &predsStr, &succsStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.StartDate, err = time.Parse(dateLayout, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		t.EndDate, err = time.Parse(dateLayout, endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		t.Predecessors = splitIDs(predsStr)
		t.Successors = splitIDs(succsStr)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

const planSelect = `SELECT p.id, p.name, p.source_path, p.active, p.imported_at, COUNT(t.task_id)
	FROM plans p LEFT JOIN tasks t ON t.plan_id = p.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row *sql.Row) (*domain.Plan, error) {
	p, err := scanPlanFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanPlanRow(rows *sql.Rows) (*domain.Plan, error) {
	return scanPlanFields(rows)
}

func scanPlanFields(row rowScanner) (*domain.Plan, error) {
	var p domain.Plan
	var active int
	var importedStr string

	if err := row.Scan(&p.ID, &p.Name, &p.SourcePath, &active, &importedStr, &p.TaskCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.Active = active != 0

	var err error
	p.ImportedAt, err = time.Parse(time.RFC3339, importedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing imported_at: %w", err)
	}
	return &p, nil
}
