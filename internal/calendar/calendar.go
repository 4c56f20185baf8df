package calendar

import "time"

// DayInfo describes why a date is (or is not) a non-working day.
type DayInfo struct {
	IsHoliday   bool
	IsWeekend   bool
	HolidayName string
}

// NonWorking reports whether the date is a holiday or a weekend day.
func (d DayInfo) NonWorking() bool {
	return d.IsHoliday || d.IsWeekend
}

// NonWorkingDay is one non-working date with a human-readable reason,
// "Holiday: <name>" or "Weekend".
type NonWorkingDay struct {
	Date   time.Time
	Reason string
}

// Oracle answers whether a date is a non-working day and why, and derives
// business-day counts from that classification. Implementations must be
// safe for concurrent reads and must not mutate state after construction.
type Oracle interface {
	// IsNonWorking classifies a single date. Dates outside the
	// implementation's supported holiday range resolve to "not a holiday"
	// rather than erroring.
	IsNonWorking(d time.Time) DayInfo

	// NextWorkingDay returns the smallest date strictly after d that is
	// neither a weekend day nor a holiday.
	NextWorkingDay(d time.Time) time.Time

	// CountBusinessDays counts working dates in the inclusive [start, end]
	// span. Returns 0 when end precedes start.
	CountBusinessDays(start, end time.Time) int

	// EnumerateNonWorking lists every non-working date in the inclusive
	// [start, end] span in chronological order.
	EnumerateNonWorking(start, end time.Time) []NonWorkingDay
}

// IsWeekend reports whether the date's weekday is Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
