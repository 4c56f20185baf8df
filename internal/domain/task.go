package domain

import "time"

// Task is one row of an imported project plan. Tasks are created once at
// import time and never mutated afterwards; analysis code may hold
// references to them freely without copying.
type Task struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time

	// Duration is the working-day count parsed from the source duration
	// expression. It is not required to equal EndDate - StartDate.
	Duration int

	// Predecessors and Successors hold raw task IDs from the source file.
	// They may reference IDs that are not present in the plan.
	Predecessors []string
	Successors   []string
}

// SpanContains reports whether d falls within the task's inclusive
// [StartDate, EndDate] span, compared at date granularity.
func (t *Task) SpanContains(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(t.StartDate)) && !day.After(DateOnly(t.EndDate))
}

// SpanDays returns the number of calendar days in the inclusive span.
func (t *Task) SpanDays() int {
	return int(DateOnly(t.EndDate).Sub(DateOnly(t.StartDate)).Hours()/24) + 1
}

// DateOnly truncates a timestamp to midnight UTC. All schedule comparisons
// happen at date granularity regardless of what the source file carried.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
