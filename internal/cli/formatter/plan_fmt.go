package formatter

import (
	"fmt"
	"strings"

	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/service"
)

// FormatImportResult renders the outcome of a plan import.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Imported ") + Bold(res.Plan.Name))
	b.WriteString(Dim(fmt.Sprintf(" (%d tasks)", res.TaskCount)))
	b.WriteString("\n")
	b.WriteString(Dim("Plan " + res.Plan.ID[:8] + " is now active."))
	b.WriteString("\n")
	return b.String()
}

// FormatPlanList renders all imported plans with the active one marked.
func FormatPlanList(plans []*domain.Plan) string {
	if len(plans) == 0 {
		return Dim("No plans imported. Run 'slipwatch load <file.xlsx>' to get started.") + "\n"
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		marker := Dim("○")
		if p.Active {
			marker = StyleGreen.Render("● active")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			p.Name,
			fmt.Sprintf("%d", p.TaskCount),
			p.ImportedAt.Format(dateLayout),
			marker,
		})
	}
	return RenderTable([]string{"ID", "Name", "Tasks", "Imported", "Status"}, rows)
}

// FormatTaskTable renders the active plan's tasks.
func FormatTaskTable(plan *domain.Plan, tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(plan.Name))
	b.WriteString("\n")

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Dim(t.ID),
			t.Name,
			fmt.Sprintf("%dd", t.Duration),
			t.StartDate.Format(dateLayout),
			t.EndDate.Format(dateLayout),
			Dim(strings.Join(t.Predecessors, ",")),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "Task", "Dur", "Start", "Finish", "Deps"}, rows))
	return b.String()
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
