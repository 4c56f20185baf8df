package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattjessup/slipwatch/internal/calendar"
)

// FormatNonWorkingDays renders the non-working days in a range, one line
// per day with its reason.
func FormatNonWorkingDays(from, to time.Time, days []calendar.NonWorkingDay) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Non-working days %s to %s",
		from.Format(dateLayout), to.Format(dateLayout))))
	b.WriteString("\n")

	if len(days) == 0 {
		b.WriteString(Dim("None.") + "\n")
		return b.String()
	}

	for _, d := range days {
		style := StyleYellow
		if strings.HasPrefix(d.Reason, "Holiday") {
			style = StyleRed
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			d.Date.Format(dateLayout),
			Dim(d.Date.Weekday().String()),
			style.Render(d.Reason)))
	}
	return b.String()
}
