package importer

import (
	"strings"
	"time"

	"github.com/mattjessup/slipwatch/internal/domain"
)

// dateLayouts covers the formats MS Project Excel exports produce,
// most specific first.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon 1/2/06",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	time.RFC3339,
}

// Convert transforms a validated table into task records. Call
// ValidateTable first; Convert assumes the required columns exist.
//
// Rows that are fully empty or missing their Index or Task Name are
// skipped. A finish date earlier than the start date is clamped to the
// start date so the end >= start invariant holds for everything downstream.
func Convert(t *Table, now time.Time) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(t.Rows))

	for _, row := range t.Rows {
		if emptyRow(row) {
			continue
		}
		id := strings.TrimSpace(t.cell(row, "Index"))
		name := strings.TrimSpace(t.cell(row, "Task Name"))
		if id == "" || name == "" {
			continue
		}

		start := parseDate(t.cell(row, "Start"), now)
		end := parseDate(t.cell(row, "Finish"), now)
		if end.Before(start) {
			end = start
		}

		tasks = append(tasks, &domain.Task{
			ID:           id,
			Name:         name,
			StartDate:    start,
			EndDate:      end,
			Duration:     ParseDuration(t.cell(row, "Duration")),
			Predecessors: parseDependencies(t.cell(row, "Predecessors")),
			Successors:   parseDependencies(t.cell(row, "Successors")),
		})
	}

	return tasks
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDate tries each accepted layout; missing or unparseable dates
// default to today, matching the tolerant-ingestion contract.
func parseDate(raw string, now time.Time) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.DateOnly(now)
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return domain.DateOnly(parsed)
		}
	}
	return domain.DateOnly(now)
}

// parseDependencies splits a comma-separated id list. Referenced ids are
// not checked against the plan; dangling references are tolerated.
func parseDependencies(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
