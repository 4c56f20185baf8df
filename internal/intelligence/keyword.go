package intelligence

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mattjessup/slipwatch/internal/domain"
)

// keywordResolver is the deterministic classification strategy: keyword
// sets plus date patterns, evaluated in fixed priority order. It backs the
// LLM-disabled mode and serves as the degrade path when the model fails.
type keywordResolver struct {
	now func() time.Time
}

// NewKeywordResolver creates the deterministic Resolver. now is used to
// anchor year-less dates ("July 4th") and may be nil for wall-clock time.
func NewKeywordResolver(now func() time.Time) Resolver {
	if now == nil {
		now = time.Now
	}
	return &keywordResolver{now: now}
}

var holidayKeywords = []string{"holiday", "federal holiday", "national holiday"}

var weekendKeywords = []string{"weekend", "saturday", "sunday"}

var (
	numericDatePattern   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	monthNameDatePattern = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// namedHolidayDate resolves a holiday mentioned by name to its date in the
// given year. Returns the zero time when no name matches.
func namedHolidayDate(query string, year int) time.Time {
	switch {
	case strings.Contains(query, "independence day"), strings.Contains(query, "july 4th"), strings.Contains(query, "4th of july"):
		return time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC)
	case strings.Contains(query, "christmas"):
		return time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
	case strings.Contains(query, "new year"):
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	case strings.Contains(query, "veterans day"):
		return time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC)
	case strings.Contains(query, "thanksgiving"):
		return nthWeekdayOf(year, time.November, time.Thursday, 4)
	case strings.Contains(query, "memorial day"):
		return lastWeekdayOf(year, time.May, time.Monday)
	case strings.Contains(query, "labor day"):
		return nthWeekdayOf(year, time.September, time.Monday, 1)
	case strings.Contains(query, "mlk"), strings.Contains(query, "martin luther king"):
		return nthWeekdayOf(year, time.January, time.Monday, 3)
	}
	return time.Time{}
}

func (r *keywordResolver) Resolve(_ context.Context, text string) (*QueryResolution, error) {
	query := strings.ToLower(text)

	// Priority order matters: "holiday" questions win over date mentions,
	// so "which tasks start on a holiday" is not misread as date-specific.
	if containsAny(query, holidayKeywords) {
		return &QueryResolution{
			Intent:        QueryIntent{Type: domain.QueryHolidayImpact},
			Understanding: "Checking which tasks start or end on a holiday",
			FollowUpQuestions: []string{
				"How much delay would banning weekend work cause?",
				"Which tasks are active on July 4th?",
			},
			Confidence: 1,
		}, nil
	}

	if containsAny(query, weekendKeywords) {
		return &QueryResolution{
			Intent:        QueryIntent{Type: domain.QueryWeekendImpact},
			Understanding: "Estimating the project delay if no weekend work is allowed",
			FollowUpQuestions: []string{
				"Which tasks start on a holiday?",
				"Which tasks start or end on a weekend?",
			},
			Confidence: 1,
		}, nil
	}

	if d := r.extractDate(query); d != nil {
		return &QueryResolution{
			Intent:        QueryIntent{Type: domain.QuerySpecificDate, SpecificDate: d},
			Understanding: "Checking which tasks are active on " + d.Format(dateLayout),
			FollowUpQuestions: []string{
				"Which tasks start on a holiday?",
				"How much delay would banning weekend work cause?",
			},
			Confidence: 1,
		}, nil
	}

	return &QueryResolution{
		Intent:        QueryIntent{Type: domain.QueryGeneral},
		Understanding: "General question about the project schedule",
		FollowUpQuestions: []string{
			"Which tasks start on a holiday?",
			"How much delay would banning weekend work cause?",
		},
		Confidence: 0.5,
	}, nil
}

// extractDate pulls a concrete date out of the query: a named holiday, a
// "Month D[, Y]" form, or an M/D[/Y] form. Year-less dates resolve to the
// current year.
func (r *keywordResolver) extractDate(query string) *time.Time {
	year := r.now().Year()

	if d := namedHolidayDate(query, year); !d.IsZero() {
		return &d
	}

	if m := monthNameDatePattern.FindStringSubmatch(query); m != nil {
		month := monthsByName[m[1]]
		day, _ := strconv.Atoi(m[2])
		y := year
		if m[3] != "" {
			y, _ = strconv.Atoi(m[3])
		}
		if d, ok := buildDate(y, month, day); ok {
			return &d
		}
	}

	if m := numericDatePattern.FindStringSubmatch(query); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		y := year
		if m[3] != "" {
			y, _ = strconv.Atoi(m[3])
			if y < 100 {
				y += 2000
			}
		}
		if d, ok := buildDate(y, time.Month(month), day); ok {
			return &d
		}
	}

	return nil
}

// buildDate rejects overflow like 2/31, which time.Date would silently
// normalize into March.
func buildDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func nthWeekdayOf(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+(n-1)*7)
}

func lastWeekdayOf(year int, month time.Month, weekday time.Weekday) time.Time {
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(d.Weekday()) - int(weekday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}
