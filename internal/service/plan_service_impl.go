package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mattjessup/slipwatch/internal/db"
	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/importer"
	"github.com/mattjessup/slipwatch/internal/repository"
)

type planService struct {
	uow      db.UnitOfWork
	plans    repository.PlanRepo
	now      func() time.Time
	observer UseCaseObserver
}

// NewPlanService creates the plan lifecycle service. now may be nil for
// wall-clock time.
func NewPlanService(uow db.UnitOfWork, plans repository.PlanRepo, now func() time.Time, observers ...UseCaseObserver) PlanService {
	if now == nil {
		now = time.Now
	}
	return &planService{
		uow:      uow,
		plans:    plans,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ImportPlan loads an Excel export, converts it, and stores it as the new
// active plan. The plan row, its tasks, and the activation switch commit
// in one transaction; a failed import leaves the previous active plan
// untouched.
func (s *planService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	started := s.now()

	table, err := importer.LoadXLSX(filePath)
	if err != nil {
		return nil, s.observeImport(ctx, started, nil, fmt.Errorf("loading plan file: %w", err))
	}
	if errs := importer.ValidateTable(table); len(errs) > 0 {
		return nil, s.observeImport(ctx, started, nil, formatValidationErrors(errs))
	}

	tasks := importer.Convert(table, s.now())
	if len(tasks) == 0 {
		return nil, s.observeImport(ctx, started, nil, fmt.Errorf("no tasks found in %s", filePath))
	}

	plan := &domain.Plan{
		ID:         uuid.NewString(),
		Name:       planName(filePath),
		SourcePath: filePath,
		ImportedAt: s.now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		if err := txPlans.CreatePlan(ctx, plan); err != nil {
			return err
		}
		if err := txPlans.InsertTasks(ctx, plan.ID, tasks); err != nil {
			return err
		}
		return txPlans.SetActive(ctx, plan.ID)
	})
	if err != nil {
		return nil, s.observeImport(ctx, started, plan, fmt.Errorf("storing plan: %w", err))
	}

	plan.Active = true
	plan.TaskCount = len(tasks)
	_ = s.observeImport(ctx, started, plan, nil)

	return &ImportResult{Plan: plan, TaskCount: len(tasks)}, nil
}

func (s *planService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.ListPlans(ctx)
}

func (s *planService) ActivatePlan(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).SetActive(ctx, id)
	})
}

func (s *planService) DeletePlan(ctx context.Context, id string) error {
	return s.plans.DeletePlan(ctx, id)
}

func (s *planService) ActiveTasks(ctx context.Context) (*domain.Plan, []*domain.Task, error) {
	plan, err := s.plans.GetActivePlan(ctx)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.plans.ListTasks(ctx, plan.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading tasks for plan %s: %w", plan.ID, err)
	}
	return plan, tasks, nil
}

func (s *planService) observeImport(ctx context.Context, started time.Time, plan *domain.Plan, err error) error {
	event := UseCaseEvent{
		Name:      "import_plan",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if plan != nil {
		event.Fields = map[string]any{"plan_id": plan.ID, "tasks": plan.TaskCount}
	}
	s.observer.ObserveUseCase(ctx, event)
	return err
}

// planName derives a display name from the source file: base name without
// the extension.
func planName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
