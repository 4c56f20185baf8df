package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattjessup/slipwatch/internal/domain"
)

const dateLayout = "2006-01-02"

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// FormatAnalysis renders a full analysis result: findings table, optional
// delay chart, and the summary line.
func FormatAnalysis(result *domain.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(Header("Findings"))
	b.WriteString("\n")

	if len(result.Findings) == 0 {
		b.WriteString(Dim("No impacted tasks.") + "\n")
	} else {
		b.WriteString(FormatFindings(result.Findings))
	}

	if result.TotalProjectDelay != nil && len(result.Findings) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Delay by task"))
		b.WriteString("\n")
		b.WriteString(renderDelayChart(result.Findings))
	}

	b.WriteString("\n")
	b.WriteString(Bold(result.Summary))
	b.WriteString("\n")

	return b.String()
}

// FormatFindings renders findings as an aligned table.
func FormatFindings(findings []domain.ImpactFinding) string {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		delay := Dim("--")
		if f.DelayDays > 0 {
			delay = delayStyle(f.DelayDays).Render(fmt.Sprintf("+%dd", f.DelayDays))
		}
		rows = append(rows, []string{
			Dim(f.Task.ID),
			f.Task.Name,
			ImpactBadge(f.Type),
			delay,
			f.Description,
		})
	}
	return RenderTable([]string{"ID", "Task", "Impact", "Delay", "Detail"}, rows)
}

// renderDelayChart draws one bar per finding, scaled to the largest delay.
func renderDelayChart(findings []domain.ImpactFinding) string {
	maxDelay := 0
	nameWidth := 0
	for _, f := range findings {
		if f.DelayDays > maxDelay {
			maxDelay = f.DelayDays
		}
		if len(f.Task.Name) > nameWidth {
			nameWidth = len(f.Task.Name)
		}
	}
	if maxDelay == 0 {
		return ""
	}

	const barWidth = 20
	var b strings.Builder
	for _, f := range findings {
		filled := f.DelayDays * barWidth / maxDelay
		bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)
		b.WriteString(fmt.Sprintf("%-*s  %s %s\n",
			nameWidth, f.Task.Name,
			delayStyle(f.DelayDays).Render(bar),
			Dim(fmt.Sprintf("%dd", f.DelayDays))))
	}
	return b.String()
}

// delayStyle colors delays by severity: red for 2+ days, yellow for 1,
// green for none.
func delayStyle(days int) lipgloss.Style {
	switch {
	case days >= 2:
		return StyleRed
	case days == 1:
		return StyleYellow
	default:
		return StyleGreen
	}
}
