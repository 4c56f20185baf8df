package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateRequest holds the parameters for one model generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float32 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of one model generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the model endpoint is reachable.
	Available(ctx context.Context) bool
}

// openRouterClient implements Client against any OpenAI-compatible
// chat-completions API. OpenRouter is the default target.
type openRouterClient struct {
	cfg      Config
	api      *openai.Client
	observer Observer
}

// NewOpenRouterClient creates a Client for the configured endpoint.
func NewOpenRouterClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	return &openRouterClient{
		cfg:      cfg,
		api:      openai.NewClientWithConfig(apiCfg),
		observer: observer,
	}
}

func (c *openRouterClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: temp,
		MaxTokens:   maxTok,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.api.CreateChatCompletion(ctx, chatReq)
		if err == nil {
			if len(resp.Choices) == 0 {
				lastErr = fmt.Errorf("%w: model returned no choices", ErrInvalidOutput)
				continue
			}
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      resp.Choices[0].Message.Content,
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(ctx, lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	var apiErr *openai.APIError
	if !errors.As(lastErr, &apiErr) {
		// Transport-level failure rather than a model rejection.
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *openRouterClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := c.api.ListModels(ctx)
	return err == nil
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
