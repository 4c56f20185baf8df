package repository

import (
	"context"
	"errors"

	"github.com/mattjessup/slipwatch/internal/domain"
)

// ErrPlanNotFound is returned when a plan lookup matches nothing.
var ErrPlanNotFound = errors.New("plan not found")

// ErrNoActivePlan is returned when no plan is marked active.
var ErrNoActivePlan = errors.New("no active plan; import one with 'slipwatch load'")

// PlanRepo persists imported plans and their tasks. Implementations are
// constructed over a db.DBTX, so the same type serves both direct reads and
// tx-scoped writes inside a unit of work.
type PlanRepo interface {
	CreatePlan(ctx context.Context, p *domain.Plan) error
	InsertTasks(ctx context.Context, planID string, tasks []*domain.Task) error
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	GetActivePlan(ctx context.Context) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
	SetActive(ctx context.Context, id string) error
	DeletePlan(ctx context.Context, id string) error
	ListTasks(ctx context.Context, planID string) ([]*domain.Task, error)
}
