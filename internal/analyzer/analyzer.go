package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mattjessup/slipwatch/internal/calendar"
	"github.com/mattjessup/slipwatch/internal/domain"
)

const dateLayout = "2006-01-02"

// InvalidQuerySummary is returned for unknown query types and for
// specific_date requests that arrive without a date.
const InvalidQuerySummary = "Invalid query type or missing required parameters"

// Engine classifies tasks against a calendar of non-working days. All
// methods are pure: they read the task slice and the oracle, and build
// fresh findings on every call.
type Engine struct {
	cal calendar.Oracle
}

// New creates an Engine backed by the given calendar oracle.
func New(cal calendar.Oracle) *Engine {
	return &Engine{cal: cal}
}

// FindHolidayTasks flags tasks whose start or end date is a holiday.
//
// Delay is attributed to start-date slippage only: 1 day when the task
// starts on a holiday, 0 when only the end date is one. The end-on-holiday
// case still contributes to the description.
func (e *Engine) FindHolidayTasks(tasks []*domain.Task) []domain.ImpactFinding {
	var findings []domain.ImpactFinding

	for _, task := range tasks {
		start := e.cal.IsNonWorking(task.StartDate)
		end := e.cal.IsNonWorking(task.EndDate)
		if !start.IsHoliday && !end.IsHoliday {
			continue
		}

		var clauses []string
		if start.IsHoliday {
			clauses = append(clauses, fmt.Sprintf("Task starts on holiday: %s (%s)",
				start.HolidayName, domain.DateOnly(task.StartDate).Format(dateLayout)))
		}
		if end.IsHoliday {
			clauses = append(clauses, fmt.Sprintf("Task ends on holiday: %s (%s)",
				end.HolidayName, domain.DateOnly(task.EndDate).Format(dateLayout)))
		}

		delay := 0
		if start.IsHoliday {
			delay = 1
		}

		findings = append(findings, domain.ImpactFinding{
			Task:        task,
			Type:        domain.ImpactHoliday,
			Description: strings.Join(clauses, "; "),
			DelayDays:   delay,
		})
	}

	return findings
}

// FindWeekendTasks flags tasks whose start or end date falls on a weekend.
//
// Delay policy: 2 days when the task starts on Saturday (the weekend
// swallows two working days before real work begins), 1 when it starts on
// Sunday, 0 when only the end date is a weekend day. The start-date rule
// always wins over the end-date rule.
func (e *Engine) FindWeekendTasks(tasks []*domain.Task) []domain.ImpactFinding {
	var findings []domain.ImpactFinding

	for _, task := range tasks {
		startWeekend := e.cal.IsNonWorking(task.StartDate).IsWeekend
		endWeekend := e.cal.IsNonWorking(task.EndDate).IsWeekend
		if !startWeekend && !endWeekend {
			continue
		}

		var clauses []string
		if startWeekend {
			clauses = append(clauses, fmt.Sprintf("Task starts on weekend (%s)",
				domain.DateOnly(task.StartDate).Format(dateLayout)))
		}
		if endWeekend {
			clauses = append(clauses, fmt.Sprintf("Task ends on weekend (%s)",
				domain.DateOnly(task.EndDate).Format(dateLayout)))
		}

		delay := 0
		switch {
		case startWeekend && task.StartDate.Weekday() == time.Saturday:
			delay = 2
		case startWeekend:
			delay = 1
		}

		findings = append(findings, domain.ImpactFinding{
			Task:        task,
			Type:        domain.ImpactWeekend,
			Description: strings.Join(clauses, "; "),
			DelayDays:   delay,
		})
	}

	return findings
}

// WeekendImpact estimates the project-wide cost of forbidding weekend work.
//
// Each task's inclusive span is scanned day by day so irregular calendars
// are tolerated; the per-task delay is its weekend-day count. The aggregate
// is the maximum single-task delay, not the sum: without dependency
// propagation the worst task is taken to gate the project.
func (e *Engine) WeekendImpact(tasks []*domain.Task) *domain.AnalysisResult {
	var findings []domain.ImpactFinding
	totalDelay := 0

	for _, task := range tasks {
		weekendDays := 0
		first := domain.DateOnly(task.StartDate)
		last := domain.DateOnly(task.EndDate)
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if e.cal.IsNonWorking(day).IsWeekend {
				weekendDays++
			}
		}
		if weekendDays == 0 {
			continue
		}

		findings = append(findings, domain.ImpactFinding{
			Task:        task,
			Type:        domain.ImpactWeekend,
			Description: fmt.Sprintf("Task spans %d weekend days", weekendDays),
			DelayDays:   weekendDays,
		})
		if weekendDays > totalDelay {
			totalDelay = weekendDays
		}
	}

	// Stable: ties keep original task order.
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].DelayDays > findings[j].DelayDays
	})

	return &domain.AnalysisResult{
		Findings:          findings,
		TotalProjectDelay: &totalDelay,
		Summary: fmt.Sprintf(
			"Project would be delayed by approximately %d days if no weekend work is allowed.",
			totalDelay),
	}
}

// TasksOnDate flags every task whose inclusive span contains the target
// date. The finding type follows the date itself: holiday wins over
// weekend, otherwise general.
func (e *Engine) TasksOnDate(tasks []*domain.Task, target time.Time) []domain.ImpactFinding {
	info := e.cal.IsNonWorking(target)
	day := domain.DateOnly(target).Format(dateLayout)

	var findings []domain.ImpactFinding
	for _, task := range tasks {
		if !task.SpanContains(target) {
			continue
		}

		impactType := domain.ImpactGeneral
		desc := fmt.Sprintf("Task is active on %s", day)
		delay := 0
		switch {
		case info.IsHoliday:
			impactType = domain.ImpactHoliday
			desc += fmt.Sprintf(" which is a holiday: %s", info.HolidayName)
			delay = 1
		case info.IsWeekend:
			impactType = domain.ImpactWeekend
			desc += " which is a weekend"
			delay = 1
		}

		findings = append(findings, domain.ImpactFinding{
			Task:        task,
			Type:        impactType,
			Description: desc,
			DelayDays:   delay,
		})
	}

	return findings
}

// Analyze dispatches one analysis request. Unknown query types, and
// specific_date requests without a date, yield an empty-but-renderable
// result rather than an error.
func (e *Engine) Analyze(queryType domain.QueryType, tasks []*domain.Task, specificDate *time.Time) *domain.AnalysisResult {
	switch {
	case queryType == domain.QueryHolidayImpact:
		findings := e.FindHolidayTasks(tasks)
		return &domain.AnalysisResult{
			Findings: findings,
			Summary:  fmt.Sprintf("Found %d tasks impacted by holidays", len(findings)),
		}

	case queryType == domain.QueryWeekendImpact:
		return e.WeekendImpact(tasks)

	case queryType == domain.QuerySpecificDate && specificDate != nil:
		findings := e.TasksOnDate(tasks, *specificDate)
		return &domain.AnalysisResult{
			Findings: findings,
			Summary: fmt.Sprintf("Found %d tasks impacted by date %s",
				len(findings), domain.DateOnly(*specificDate).Format(dateLayout)),
		}

	default:
		return &domain.AnalysisResult{Summary: InvalidQuerySummary}
	}
}
