package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mattjessup/slipwatch/internal/analyzer"
	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/intelligence"
)

type analysisService struct {
	resolver intelligence.Resolver
	narrator intelligence.Narrator
	engine   *analyzer.Engine
	plans    PlanService
	now      func() time.Time
	observer UseCaseObserver
}

// NewAnalysisService wires the question pipeline: resolver to intent,
// engine over the active plan's tasks, narrator for general questions.
func NewAnalysisService(
	resolver intelligence.Resolver,
	narrator intelligence.Narrator,
	engine *analyzer.Engine,
	plans PlanService,
	now func() time.Time,
	observers ...UseCaseObserver,
) AnalysisService {
	if now == nil {
		now = time.Now
	}
	return &analysisService{
		resolver: resolver,
		narrator: narrator,
		engine:   engine,
		plans:    plans,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analysisService) Ask(ctx context.Context, question string) (*AskOutcome, error) {
	started := s.now()

	resolution, err := s.resolver.Resolve(ctx, question)
	if err != nil {
		return nil, s.observeAsk(ctx, started, "", fmt.Errorf("resolving question: %w", err))
	}

	outcome := &AskOutcome{Resolution: resolution}

	if resolution.Intent.Type == domain.QueryGeneral {
		answer, err := s.narrator.Answer(ctx, question)
		if err != nil {
			return nil, s.observeAsk(ctx, started, resolution.Intent.Type, err)
		}
		outcome.Narrative = answer
		_ = s.observeAsk(ctx, started, resolution.Intent.Type, nil)
		return outcome, nil
	}

	result, err := s.Analyze(ctx, resolution.Intent)
	if err != nil {
		return nil, s.observeAsk(ctx, started, resolution.Intent.Type, err)
	}
	outcome.Result = result
	_ = s.observeAsk(ctx, started, resolution.Intent.Type, nil)
	return outcome, nil
}

func (s *analysisService) Analyze(ctx context.Context, intent intelligence.QueryIntent) (*domain.AnalysisResult, error) {
	_, tasks, err := s.plans.ActiveTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Analyze(intent.Type, tasks, intent.SpecificDate), nil
}

func (s *analysisService) WeekendTaskFindings(ctx context.Context) ([]domain.ImpactFinding, error) {
	_, tasks, err := s.plans.ActiveTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.FindWeekendTasks(tasks), nil
}

func (s *analysisService) observeAsk(ctx context.Context, started time.Time, queryType domain.QueryType, err error) error {
	event := UseCaseEvent{
		Name:      "ask",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if queryType != "" {
		event.Fields = map[string]any{"query_type": string(queryType)}
	}
	s.observer.ObserveUseCase(ctx, event)
	return err
}
