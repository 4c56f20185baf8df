package llm

import "errors"

// Sentinel errors for the failure modes callers branch on: the resolver
// degrades to keywords on any of these, and the CLI maps ErrTimeout to a
// hint about SLIPWATCH_LLM_TIMEOUT_MS.
var (
	ErrUnavailable    = errors.New("model endpoint unreachable")
	ErrTimeout        = errors.New("model call timed out")
	ErrInvalidOutput  = errors.New("model output not in expected format")
	ErrRetryExhausted = errors.New("model call failed after retries")
)
