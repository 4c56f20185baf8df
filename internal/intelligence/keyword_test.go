package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjessup/slipwatch/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
}

func resolve(t *testing.T, text string) *QueryResolution {
	t.Helper()
	r := NewKeywordResolver(fixedNow)
	res, err := r.Resolve(context.Background(), text)
	require.NoError(t, err)
	return res
}

func TestKeywordResolver_HolidayQuery(t *testing.T) {
	res := resolve(t, "Which tasks start on a holiday?")
	assert.Equal(t, domain.QueryHolidayImpact, res.Intent.Type)
	assert.Nil(t, res.Intent.SpecificDate)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestKeywordResolver_WeekendQuery(t *testing.T) {
	res := resolve(t, "How many days would we lose if no work happens on weekends?")
	assert.Equal(t, domain.QueryWeekendImpact, res.Intent.Type)
}

func TestKeywordResolver_SaturdayCountsAsWeekend(t *testing.T) {
	res := resolve(t, "What about tasks starting on a Saturday?")
	assert.Equal(t, domain.QueryWeekendImpact, res.Intent.Type)
}

func TestKeywordResolver_NamedHolidayDates(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"Which tasks are impacted by July 4th?", time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)},
		{"what happens around christmas", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"anything due on thanksgiving?", time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC)},
		{"memorial day conflicts", time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)},
		{"is mlk day a problem", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := resolve(t, tt.text)
			assert.Equal(t, domain.QuerySpecificDate, res.Intent.Type)
			require.NotNil(t, res.Intent.SpecificDate)
			assert.Equal(t, tt.want, *res.Intent.SpecificDate)
		})
	}
}

func TestKeywordResolver_NumericDates(t *testing.T) {
	res := resolve(t, "any tasks active on 7/4?")
	require.NotNil(t, res.Intent.SpecificDate)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), *res.Intent.SpecificDate)

	res = resolve(t, "check 12/25/2026 please")
	require.NotNil(t, res.Intent.SpecificDate)
	assert.Equal(t, time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), *res.Intent.SpecificDate)
}

func TestKeywordResolver_MonthNameDate(t *testing.T) {
	res := resolve(t, "what is happening on November 27, 2025?")
	require.NotNil(t, res.Intent.SpecificDate)
	assert.Equal(t, time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC), *res.Intent.SpecificDate)
}

func TestKeywordResolver_RejectsImpossibleDates(t *testing.T) {
	res := resolve(t, "see you on 2/31")
	assert.Equal(t, domain.QueryGeneral, res.Intent.Type)
	assert.Nil(t, res.Intent.SpecificDate)
}

func TestKeywordResolver_HolidayKeywordWinsOverDate(t *testing.T) {
	res := resolve(t, "which tasks hit a holiday like July 4th?")
	assert.Equal(t, domain.QueryHolidayImpact, res.Intent.Type)
}

func TestKeywordResolver_GeneralFallback(t *testing.T) {
	res := resolve(t, "how long is the whole project?")
	assert.Equal(t, domain.QueryGeneral, res.Intent.Type)
	assert.Equal(t, 0.5, res.Confidence)
	assert.NotEmpty(t, res.FollowUpQuestions)
}
