package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mattjessup/slipwatch/internal/domain"
)

var testTaskCounter atomic.Int64

// TaskOption mutates a task fixture before it is returned.
type TaskOption func(*domain.Task)

func WithSpan(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithDuration(days int) TaskOption {
	return func(t *domain.Task) {
		t.Duration = days
	}
}

func WithPredecessors(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Predecessors = ids
	}
}

func WithSuccessors(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Successors = ids
	}
}

// NewTestTask builds a task with a unique ID and a one-week weekday span.
func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	n := testTaskCounter.Add(1)
	t := &domain.Task{
		ID:        fmt.Sprintf("%d", n),
		Name:      name,
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), // a Monday
		EndDate:   time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Duration:  5,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
