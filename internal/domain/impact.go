package domain

// ImpactType classifies why a task was flagged.
type ImpactType string

const (
	ImpactHoliday ImpactType = "holiday"
	ImpactWeekend ImpactType = "weekend"
	ImpactGeneral ImpactType = "general"
)

// QueryType selects which analysis the engine runs.
type QueryType string

const (
	QueryHolidayImpact QueryType = "holiday_impact"
	QueryWeekendImpact QueryType = "weekend_impact"
	QuerySpecificDate  QueryType = "specific_date"
	QueryGeneral       QueryType = "general_query"
)

// ValidQueryTypes is the canonical set of accepted query type strings.
var ValidQueryTypes = map[QueryType]bool{
	QueryHolidayImpact: true,
	QueryWeekendImpact: true,
	QuerySpecificDate:  true,
	QueryGeneral:       true,
}

// ImpactFinding flags one task together with the reason and the estimated
// schedule slip attributable to it. Findings are built fresh per analysis
// call and never mutated.
type ImpactFinding struct {
	Task        *Task
	Type        ImpactType
	Description string
	DelayDays   int
}

// AnalysisResult is the full output of one analysis call.
type AnalysisResult struct {
	Findings []ImpactFinding

	// TotalProjectDelay, when set, is the maximum of the findings' delays,
	// not the sum. The model treats the worst single task as gating the
	// project; dependency-aware propagation is out of scope.
	TotalProjectDelay *int

	Summary string
}
