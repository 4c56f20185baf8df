package service

import (
	"context"

	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/intelligence"
)

// ImportResult summarizes one successful plan import.
type ImportResult struct {
	Plan      *domain.Plan
	TaskCount int
}

// PlanService owns the plan lifecycle: import, listing, activation,
// deletion, and loading the active plan's tasks for analysis.
type PlanService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
	ActivatePlan(ctx context.Context, id string) error
	DeletePlan(ctx context.Context, id string) error

	// ActiveTasks returns the active plan together with its tasks in
	// import order.
	ActiveTasks(ctx context.Context) (*domain.Plan, []*domain.Task, error)
}

// AskOutcome is the full response to a natural-language question. Result
// is set for the structured query types; Narrative is set instead when the
// question was general and went to the narrator.
type AskOutcome struct {
	Resolution *intelligence.QueryResolution
	Result     *domain.AnalysisResult
	Narrative  string
}

// AnalysisService runs schedule analyses, either from a free-text question
// or from an already-structured intent.
type AnalysisService interface {
	Ask(ctx context.Context, question string) (*AskOutcome, error)
	Analyze(ctx context.Context, intent intelligence.QueryIntent) (*domain.AnalysisResult, error)

	// WeekendTaskFindings is the per-task variant of the weekend analysis:
	// which tasks start or end on a weekend, rather than the project-wide
	// delay estimate.
	WeekendTaskFindings(ctx context.Context) ([]domain.ImpactFinding, error)
}
