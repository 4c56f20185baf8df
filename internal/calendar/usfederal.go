package calendar

import (
	"fmt"
	"time"

	"github.com/mattjessup/slipwatch/internal/domain"
)

// Supported holiday year range. Dates outside this window still classify
// weekends correctly but resolve to "not a holiday".
const (
	minHolidayYear = 2000
	maxHolidayYear = 2050
)

// nextWorkingDayBound caps the scan in NextWorkingDay. Weekends recur every
// seven days and US holiday runs are short, so hitting the bound means the
// holiday table itself is broken.
const nextWorkingDayBound = 366

// USFederal is an Oracle backed by computed US federal holiday rules for
// one fixed jurisdiction. The table is built once at construction and is
// immutable afterwards.
type USFederal struct {
	holidays map[time.Time]string
}

// NewUSFederal builds the holiday table for the full supported year range.
func NewUSFederal() *USFederal {
	table := make(map[time.Time]string)
	for year := minHolidayYear; year <= maxHolidayYear; year++ {
		addYear(table, year)
	}
	return &USFederal{holidays: table}
}

func (c *USFederal) IsNonWorking(d time.Time) DayInfo {
	day := domain.DateOnly(d)
	name, isHoliday := c.holidays[day]
	return DayInfo{
		IsHoliday:   isHoliday,
		IsWeekend:   IsWeekend(day),
		HolidayName: name,
	}
}

func (c *USFederal) NextWorkingDay(d time.Time) time.Time {
	day := domain.DateOnly(d)
	for i := 0; i < nextWorkingDayBound; i++ {
		day = day.AddDate(0, 0, 1)
		if !c.IsNonWorking(day).NonWorking() {
			return day
		}
	}
	panic(fmt.Sprintf("calendar: no working day within %d days of %s; holiday table is malformed",
		nextWorkingDayBound, domain.DateOnly(d).Format("2006-01-02")))
}

func (c *USFederal) CountBusinessDays(start, end time.Time) int {
	first, last := domain.DateOnly(start), domain.DateOnly(end)
	count := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !c.IsNonWorking(day).NonWorking() {
			count++
		}
	}
	return count
}

func (c *USFederal) EnumerateNonWorking(start, end time.Time) []NonWorkingDay {
	first, last := domain.DateOnly(start), domain.DateOnly(end)
	var days []NonWorkingDay
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		info := c.IsNonWorking(day)
		switch {
		case info.IsHoliday:
			days = append(days, NonWorkingDay{Date: day, Reason: "Holiday: " + info.HolidayName})
		case info.IsWeekend:
			days = append(days, NonWorkingDay{Date: day, Reason: "Weekend"})
		}
	}
	return days
}

// addYear inserts all federal holidays for one year, including observed
// days when a fixed-date holiday lands on a weekend (Saturday observes the
// Friday before, Sunday observes the Monday after).
func addYear(table map[time.Time]string, year int) {
	fixed := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "New Year's Day"},
		{time.July, 4, "Independence Day"},
		{time.November, 11, "Veterans Day"},
		{time.December, 25, "Christmas Day"},
	}
	if year >= 2021 {
		fixed = append(fixed, struct {
			month time.Month
			day   int
			name  string
		}{time.June, 19, "Juneteenth National Independence Day"})
	}

	for _, h := range fixed {
		d := time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC)
		table[d] = h.name
		switch d.Weekday() {
		case time.Saturday:
			table[d.AddDate(0, 0, -1)] = h.name + " (observed)"
		case time.Sunday:
			table[d.AddDate(0, 0, 1)] = h.name + " (observed)"
		}
	}

	table[nthWeekday(year, time.January, time.Monday, 3)] = "Martin Luther King Jr. Day"
	table[nthWeekday(year, time.February, time.Monday, 3)] = "Washington's Birthday"
	table[lastWeekday(year, time.May, time.Monday)] = "Memorial Day"
	table[nthWeekday(year, time.September, time.Monday, 1)] = "Labor Day"
	table[nthWeekday(year, time.October, time.Monday, 2)] = "Columbus Day"
	table[nthWeekday(year, time.November, time.Thursday, 4)] = "Thanksgiving"
}

// nthWeekday returns the nth occurrence of a weekday in the given month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the last occurrence of a weekday in the given month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(d.Weekday()) - int(weekday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}
