package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjessup/slipwatch/internal/analyzer"
	"github.com/mattjessup/slipwatch/internal/calendar"
	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/intelligence"
	"github.com/mattjessup/slipwatch/internal/repository"
	"github.com/mattjessup/slipwatch/internal/service"
	"github.com/mattjessup/slipwatch/internal/testutil"
)

// stubPlans serves a fixed task list without touching storage.
type stubPlans struct {
	tasks []*domain.Task
	err   error
}

func (s *stubPlans) ImportPlan(context.Context, string) (*service.ImportResult, error) {
	panic("not used")
}
func (s *stubPlans) ListPlans(context.Context) ([]*domain.Plan, error) { panic("not used") }
func (s *stubPlans) ActivatePlan(context.Context, string) error        { panic("not used") }
func (s *stubPlans) DeletePlan(context.Context, string) error          { panic("not used") }

func (s *stubPlans) ActiveTasks(context.Context) (*domain.Plan, []*domain.Task, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return &domain.Plan{ID: "p1", Name: "Stub", Active: true}, s.tasks, nil
}

// stubResolver returns a fixed resolution for every question.
type stubResolver struct {
	resolution *intelligence.QueryResolution
	err        error
}

func (s *stubResolver) Resolve(context.Context, string) (*intelligence.QueryResolution, error) {
	return s.resolution, s.err
}

type stubNarrator struct {
	answer string
	err    error
}

func (s *stubNarrator) Answer(context.Context, string) (string, error) {
	return s.answer, s.err
}

func holidayWeekTasks() []*domain.Task {
	return []*domain.Task{
		// Starts on Independence Day 2025 (a Friday).
		testutil.NewTestTask("Inspection",
			testutil.WithSpan(
				time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC))),
		// Starts on a Saturday.
		testutil.NewTestTask("Paving",
			testutil.WithSpan(
				time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))),
	}
}

func newAnalysisService(resolver intelligence.Resolver, narrator intelligence.Narrator, plans service.PlanService) service.AnalysisService {
	engine := analyzer.New(calendar.NewUSFederal())
	return service.NewAnalysisService(resolver, narrator, engine, plans, nil)
}

func TestAsk_HolidayQuestionRunsEngine(t *testing.T) {
	resolver := &stubResolver{resolution: &intelligence.QueryResolution{
		Intent:        intelligence.QueryIntent{Type: domain.QueryHolidayImpact},
		Understanding: "holiday exposure",
		Confidence:    0.9,
	}}
	svc := newAnalysisService(resolver, &stubNarrator{}, &stubPlans{tasks: holidayWeekTasks()})

	outcome, err := svc.Ask(context.Background(), "which tasks start on a holiday?")
	require.NoError(t, err)

	assert.Empty(t, outcome.Narrative)
	require.NotNil(t, outcome.Result)
	require.Len(t, outcome.Result.Findings, 1)
	assert.Equal(t, "Inspection", outcome.Result.Findings[0].Task.Name)
	assert.Equal(t, 1, outcome.Result.Findings[0].DelayDays)
	assert.Equal(t, "Found 1 tasks impacted by holidays", outcome.Result.Summary)
	assert.Equal(t, "holiday exposure", outcome.Resolution.Understanding)
}

func TestAsk_GeneralQuestionGoesToNarrator(t *testing.T) {
	resolver := &stubResolver{resolution: &intelligence.QueryResolution{
		Intent: intelligence.QueryIntent{Type: domain.QueryGeneral},
	}}
	narrator := &stubNarrator{answer: "The schedule spans twelve weeks."}
	svc := newAnalysisService(resolver, narrator, &stubPlans{tasks: holidayWeekTasks()})

	outcome, err := svc.Ask(context.Background(), "how long is the project?")
	require.NoError(t, err)

	assert.Nil(t, outcome.Result)
	assert.Equal(t, "The schedule spans twelve weeks.", outcome.Narrative)
}

func TestAsk_SpecificDateQuestion(t *testing.T) {
	d := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	resolver := &stubResolver{resolution: &intelligence.QueryResolution{
		Intent: intelligence.QueryIntent{Type: domain.QuerySpecificDate, SpecificDate: &d},
	}}
	svc := newAnalysisService(resolver, &stubNarrator{}, &stubPlans{tasks: holidayWeekTasks()})

	outcome, err := svc.Ask(context.Background(), "what happens on July 4th?")
	require.NoError(t, err)

	require.NotNil(t, outcome.Result)
	require.Len(t, outcome.Result.Findings, 1)
	assert.Equal(t, domain.ImpactHoliday, outcome.Result.Findings[0].Type)
	assert.Contains(t, outcome.Result.Findings[0].Description, "Independence Day")
}

func TestAsk_ResolverFailureSurfaces(t *testing.T) {
	resolver := &stubResolver{err: errors.New("model exploded")}
	svc := newAnalysisService(resolver, &stubNarrator{}, &stubPlans{})

	_, err := svc.Ask(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving question")
}

func TestAnalyze_NoActivePlan(t *testing.T) {
	resolver := &stubResolver{}
	svc := newAnalysisService(resolver, &stubNarrator{}, &stubPlans{err: repository.ErrNoActivePlan})

	_, err := svc.Analyze(context.Background(), intelligence.QueryIntent{Type: domain.QueryWeekendImpact})
	assert.ErrorIs(t, err, repository.ErrNoActivePlan)
}

func TestAnalyze_WeekendImpactAggregates(t *testing.T) {
	svc := newAnalysisService(&stubResolver{}, &stubNarrator{}, &stubPlans{tasks: holidayWeekTasks()})

	res, err := svc.Analyze(context.Background(), intelligence.QueryIntent{Type: domain.QueryWeekendImpact})
	require.NoError(t, err)

	// Inspection spans Jul 4-8 (Sat Jul 5 + Sun Jul 6 = 2); Paving spans
	// Jul 12-15 (Sat + Sun = 2). Total is the max of per-task counts.
	require.NotNil(t, res.TotalProjectDelay)
	assert.Equal(t, 2, *res.TotalProjectDelay)
	assert.Len(t, res.Findings, 2)
}

func TestWeekendTaskFindings_PerTaskMode(t *testing.T) {
	svc := newAnalysisService(&stubResolver{}, &stubNarrator{}, &stubPlans{tasks: holidayWeekTasks()})

	findings, err := svc.WeekendTaskFindings(context.Background())
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, "Paving", findings[0].Task.Name)
	assert.Equal(t, 2, findings[0].DelayDays, "Saturday start costs two days")
}
