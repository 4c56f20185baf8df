package formatter

import (
	"fmt"
	"strings"

	"github.com/mattjessup/slipwatch/internal/service"
)

// FormatAskOutcome renders the full response to a natural-language
// question: the resolver's understanding, then either the analysis result
// or the narrated answer, then suggested follow-ups.
func FormatAskOutcome(outcome *service.AskOutcome) string {
	var b strings.Builder

	res := outcome.Resolution
	if res != nil && res.Understanding != "" {
		b.WriteString(Dim("Understood: ") + res.Understanding)
		b.WriteString(Dim(fmt.Sprintf(" (%.0f%% confident)", res.Confidence*100)))
		b.WriteString("\n\n")
	}

	if outcome.Result != nil {
		b.WriteString(FormatAnalysis(outcome.Result))
	} else if outcome.Narrative != "" {
		b.WriteString(outcome.Narrative)
		b.WriteString("\n")
	}

	if res != nil && len(res.FollowUpQuestions) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("You could also ask:"))
		b.WriteString("\n")
		for _, q := range res.FollowUpQuestions {
			b.WriteString(Dim("  • ") + StyleBlue.Render(q) + "\n")
		}
	}

	return b.String()
}
