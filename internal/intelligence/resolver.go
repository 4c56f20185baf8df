package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/llm"
)

const dateLayout = "2006-01-02"

// parsedQuery is the raw JSON shape the model is asked to produce.
type parsedQuery struct {
	QueryType         string   `json:"query_type"`
	SpecificDate      string   `json:"specific_date"`
	Understanding     string   `json:"understanding"`
	Confidence        float64  `json:"confidence"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

func validateParsedQuery(p parsedQuery) error {
	if !domain.ValidQueryTypes[domain.QueryType(p.QueryType)] {
		return fmt.Errorf("unknown query_type: %s", p.QueryType)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
	}
	if p.SpecificDate != "" {
		if _, err := time.Parse(dateLayout, p.SpecificDate); err != nil {
			return fmt.Errorf("specific_date %q is not YYYY-MM-DD", p.SpecificDate)
		}
	}
	if p.QueryType == string(domain.QuerySpecificDate) && p.SpecificDate == "" {
		return fmt.Errorf("specific_date query without a date")
	}
	return nil
}

// llmResolver classifies questions with a model call. When the call or the
// extraction fails, or the model reports confidence below minConfidence,
// it degrades to the fallback resolver, so a caller always gets a usable
// resolution while the model is flaky.
type llmResolver struct {
	client        llm.Client
	fallback      Resolver
	minConfidence float64
}

// NewLLMResolver creates a Resolver backed by an LLM client. fallback may
// be nil, in which case model failures surface as errors.
func NewLLMResolver(client llm.Client, fallback Resolver, minConfidence float64) Resolver {
	return &llmResolver{client: client, fallback: fallback, minConfidence: minConfidence}
}

func (r *llmResolver) Resolve(ctx context.Context, text string) (*QueryResolution, error) {
	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskResolve,
		SystemPrompt: resolveSystemPrompt,
		UserPrompt:   text,
	})
	if err != nil {
		return r.degrade(ctx, text, err)
	}

	parsed, err := llm.ExtractJSON[parsedQuery](resp.Text, validateParsedQuery)
	if err != nil {
		return r.degrade(ctx, text, err)
	}
	if parsed.Confidence < r.minConfidence {
		return r.degrade(ctx, text,
			fmt.Errorf("model confidence %.2f below threshold %.2f", parsed.Confidence, r.minConfidence))
	}

	resolution := &QueryResolution{
		Intent:            QueryIntent{Type: domain.QueryType(parsed.QueryType)},
		Understanding:     parsed.Understanding,
		FollowUpQuestions: parsed.FollowUpQuestions,
		Confidence:        parsed.Confidence,
	}
	if parsed.SpecificDate != "" {
		d, _ := time.Parse(dateLayout, parsed.SpecificDate)
		resolution.Intent.SpecificDate = &d
	}
	return resolution, nil
}

func (r *llmResolver) degrade(ctx context.Context, text string, cause error) (*QueryResolution, error) {
	if r.fallback == nil {
		return nil, fmt.Errorf("resolving query: %w", cause)
	}
	return r.fallback.Resolve(ctx, text)
}

// llmNarrator answers general questions with a model call.
type llmNarrator struct {
	client llm.Client
}

// NewLLMNarrator creates a Narrator backed by an LLM client.
func NewLLMNarrator(client llm.Client) Narrator {
	return &llmNarrator{client: client}
}

func (n *llmNarrator) Answer(ctx context.Context, question string) (string, error) {
	resp, err := n.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskNarrate,
		SystemPrompt: narrateSystemPrompt,
		UserPrompt:   question,
	})
	if err != nil {
		return "", fmt.Errorf("answering general query: %w", err)
	}
	return resp.Text, nil
}

// StaticNarrator is the LLM-disabled path: it points the user at the
// structured analyses instead of answering free-form.
type StaticNarrator struct{}

func (StaticNarrator) Answer(context.Context, string) (string, error) {
	return "I can analyze holiday impact, weekend impact, or a specific date. " +
		"Try asking e.g. \"Which tasks start on a holiday?\" or \"What happens on July 4th?\"", nil
}
