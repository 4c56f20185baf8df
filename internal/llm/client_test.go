package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return cfg
}

func TestOpenRouterClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google/gemini-2.0-flash-exp:free", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system prompt", req.Messages[0].Content)
		assert.Equal(t, "user prompt", req.Messages[1].Content)

		resp := openai.ChatCompletionResponse{
			Model: req.Model,
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: `{"query_type":"holiday_impact"}`,
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewOpenRouterClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskResolve,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"query_type":"holiday_impact"}`, resp.Text)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOpenRouterClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskResolve: {Temperature: 0.1, MaxTokens: 512, TimeoutMs: 50},
	}

	client := NewOpenRouterClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskResolve})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOpenRouterClient_Generate_Unreachable(t *testing.T) {
	// Port 1 is essentially guaranteed to refuse connections.
	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	client := NewOpenRouterClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskResolve})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenRouterClient_Generate_ObserverSeesFailure(t *testing.T) {
	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	client := NewOpenRouterClient(cfg, observer)
	_, _ = client.Generate(context.Background(), GenerateRequest{Task: TaskResolve})

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, TaskResolve, events[0].Task)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
