package domain

import "time"

// Plan is one imported schedule file. Exactly one plan may be active at a
// time; all analysis commands run against the active plan's tasks.
type Plan struct {
	ID         string
	Name       string
	SourcePath string
	Active     bool
	ImportedAt time.Time

	// TaskCount is populated on reads for display purposes. It is derived
	// from the tasks table, never stored.
	TaskCount int
}
