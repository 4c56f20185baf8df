package intelligence

import (
	"context"
	"time"

	"github.com/mattjessup/slipwatch/internal/domain"
)

// QueryIntent is the structured decision extracted from a free-text
// question: which analysis to run, and for date-specific queries, when.
type QueryIntent struct {
	Type         domain.QueryType
	SpecificDate *time.Time
}

// QueryResolution carries the intent plus resolver metadata. The analysis
// engine consumes only the intent; understanding, follow-ups, and
// confidence pass through untouched for the presentation layer.
type QueryResolution struct {
	Intent            QueryIntent
	Understanding     string
	FollowUpQuestions []string
	Confidence        float64
}

// Resolver maps a natural-language question to a structured query intent.
// Implementations must never see engine internals; the engine never sees
// the raw question.
type Resolver interface {
	Resolve(ctx context.Context, text string) (*QueryResolution, error)
}

// Narrator answers general project-management questions in prose. Used for
// the general_query path, which bypasses the analysis engine entirely.
type Narrator interface {
	Answer(ctx context.Context, question string) (string, error)
}
