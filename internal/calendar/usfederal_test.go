package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsNonWorking_FixedHolidays(t *testing.T) {
	cal := NewUSFederal()

	tests := []struct {
		name string
		d    time.Time
		want string
	}{
		{"new years", date(2025, 1, 1), "New Year's Day"},
		{"independence day", date(2025, 7, 4), "Independence Day"},
		{"veterans day", date(2025, 11, 11), "Veterans Day"},
		{"christmas", date(2025, 12, 25), "Christmas Day"},
		{"juneteenth", date(2024, 6, 19), "Juneteenth National Independence Day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := cal.IsNonWorking(tt.d)
			assert.True(t, info.IsHoliday)
			assert.Equal(t, tt.want, info.HolidayName)
		})
	}
}

func TestIsNonWorking_FloatingHolidays(t *testing.T) {
	cal := NewUSFederal()

	assert.Equal(t, "Martin Luther King Jr. Day", cal.IsNonWorking(date(2025, 1, 20)).HolidayName)
	assert.Equal(t, "Washington's Birthday", cal.IsNonWorking(date(2025, 2, 17)).HolidayName)
	assert.Equal(t, "Memorial Day", cal.IsNonWorking(date(2025, 5, 26)).HolidayName)
	assert.Equal(t, "Labor Day", cal.IsNonWorking(date(2025, 9, 1)).HolidayName)
	assert.Equal(t, "Columbus Day", cal.IsNonWorking(date(2025, 10, 13)).HolidayName)
	assert.Equal(t, "Thanksgiving", cal.IsNonWorking(date(2025, 11, 27)).HolidayName)
}

func TestIsNonWorking_ObservedShift(t *testing.T) {
	cal := NewUSFederal()

	// July 4 2026 is a Saturday: Friday July 3 carries the observed holiday.
	info := cal.IsNonWorking(date(2026, 7, 3))
	assert.True(t, info.IsHoliday)
	assert.Equal(t, "Independence Day (observed)", info.HolidayName)

	// Christmas 2021 fell on a Saturday as well.
	assert.Equal(t, "Christmas Day (observed)", cal.IsNonWorking(date(2021, 12, 24)).HolidayName)
}

func TestIsNonWorking_JuneteenthStartsIn2021(t *testing.T) {
	cal := NewUSFederal()

	assert.False(t, cal.IsNonWorking(date(2020, 6, 19)).IsHoliday)
	assert.True(t, cal.IsNonWorking(date(2021, 6, 19)).IsHoliday)
}

func TestIsNonWorking_Weekend(t *testing.T) {
	cal := NewUSFederal()

	sat := cal.IsNonWorking(date(2025, 7, 5))
	assert.True(t, sat.IsWeekend)
	assert.False(t, sat.IsHoliday)
	assert.True(t, sat.NonWorking())

	sun := cal.IsNonWorking(date(2025, 7, 6))
	assert.True(t, sun.IsWeekend)

	mon := cal.IsNonWorking(date(2025, 7, 7))
	assert.False(t, mon.NonWorking())
}

func TestIsNonWorking_OutsideSupportedRange(t *testing.T) {
	cal := NewUSFederal()

	// 1999 predates the holiday table: no holiday, but weekends still classify.
	info := cal.IsNonWorking(date(1999, 7, 4))
	assert.False(t, info.IsHoliday)
	assert.True(t, info.IsWeekend, "1999-07-04 was a Sunday")

	assert.False(t, cal.IsNonWorking(date(1999, 7, 5)).NonWorking())
}

func TestNextWorkingDay_SkipsHolidayAndWeekend(t *testing.T) {
	cal := NewUSFederal()

	// Thursday July 3 2025: Friday is Independence Day, then the weekend.
	next := cal.NextWorkingDay(date(2025, 7, 3))
	assert.Equal(t, date(2025, 7, 7), next)
}

func TestNextWorkingDay_PlainWeekday(t *testing.T) {
	cal := NewUSFederal()
	assert.Equal(t, date(2025, 7, 2), cal.NextWorkingDay(date(2025, 7, 1)))
}

func TestCountBusinessDays(t *testing.T) {
	cal := NewUSFederal()

	// Mon June 30 through Sun July 6 2025: four working days
	// (July 4 is a holiday, July 5-6 are the weekend).
	assert.Equal(t, 4, cal.CountBusinessDays(date(2025, 6, 30), date(2025, 7, 6)))
}

func TestCountBusinessDays_EndBeforeStart(t *testing.T) {
	cal := NewUSFederal()
	assert.Equal(t, 0, cal.CountBusinessDays(date(2025, 7, 6), date(2025, 6, 30)))
}

func TestCountBusinessDays_SingleDay(t *testing.T) {
	cal := NewUSFederal()
	assert.Equal(t, 1, cal.CountBusinessDays(date(2025, 7, 1), date(2025, 7, 1)))
	assert.Equal(t, 0, cal.CountBusinessDays(date(2025, 7, 4), date(2025, 7, 4)))
}

func TestEnumerateNonWorking(t *testing.T) {
	cal := NewUSFederal()

	days := cal.EnumerateNonWorking(date(2025, 7, 1), date(2025, 7, 7))
	require.Len(t, days, 3)

	assert.Equal(t, date(2025, 7, 4), days[0].Date)
	assert.Equal(t, "Holiday: Independence Day", days[0].Reason)
	assert.Equal(t, date(2025, 7, 5), days[1].Date)
	assert.Equal(t, "Weekend", days[1].Reason)
	assert.Equal(t, date(2025, 7, 6), days[2].Date)
	assert.Equal(t, "Weekend", days[2].Reason)
}

func TestEnumerateNonWorking_EmptySpan(t *testing.T) {
	cal := NewUSFederal()
	assert.Empty(t, cal.EnumerateNonWorking(date(2025, 7, 7), date(2025, 7, 1)))
}
