package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskResolve turns a free-text question into a structured query intent.
	TaskResolve TaskType = "resolve"
	// TaskNarrate answers general project-management questions in prose.
	TaskNarrate TaskType = "narrate"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float32
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem. The model runs
// behind an OpenAI-compatible endpoint; OpenRouter is the default host.
type Config struct {
	Enabled             bool
	LogCalls            bool
	APIKey              string
	BaseURL             string
	Model               string
	TimeoutMs           int
	MaxRetries          int
	ConfidenceThreshold float64
	Tasks               map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// LLM is disabled by default; the keyword resolver takes over.
func DefaultConfig() Config {
	return Config{
		Enabled:             false,
		LogCalls:            false,
		BaseURL:             "https://openrouter.ai/api/v1",
		Model:               "google/gemini-2.0-flash-exp:free",
		TimeoutMs:           15000,
		MaxRetries:          1,
		ConfidenceThreshold: 0.75,
		Tasks: map[TaskType]TaskConfig{
			TaskResolve: {Temperature: 0.1, MaxTokens: 512, TimeoutMs: 15000},
			TaskNarrate: {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SLIPWATCH_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SLIPWATCH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SLIPWATCH_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SLIPWATCH_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SLIPWATCH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SLIPWATCH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SLIPWATCH_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("SLIPWATCH_LLM_CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.ConfidenceThreshold = f
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskResolve, "SLIPWATCH_LLM_RESOLVE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskNarrate, "SLIPWATCH_LLM_NARRATE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
