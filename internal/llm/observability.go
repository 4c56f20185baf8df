package llm

import (
	"context"
	"io"
	"log/slog"
)

// CallEvent records one model invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives completed-call events for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs call events as slog text records on w. Enabled
// from the binary with SLIPWATCH_LLM_LOG_CALLS=true.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnCallComplete(event CallEvent) {
	attrs := []slog.Attr{
		slog.String("task", string(event.Task)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.Bool("success", event.Success),
	}
	level := slog.LevelInfo
	if !event.Success {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_code", event.ErrorCode))
	}
	o.logger.LogAttrs(context.Background(), level, "llm_call", attrs...)
}
