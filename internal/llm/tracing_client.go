package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TracingClient wraps a Client and logs every call with its duration and
// outcome.
type TracingClient struct {
	inner Client
	log   *zap.Logger
}

// NewTracingClient decorates inner with call logging.
func NewTracingClient(inner Client, log *zap.Logger) *TracingClient {
	return &TracingClient{inner: inner, log: log}
}

func (t *TracingClient) Complete(ctx context.Context, prompt string) (string, error) {
	return t.trace(ctx, "", prompt)
}

func (t *TracingClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return t.trace(ctx, systemPrompt, userPrompt)
}

func (t *TracingClient) trace(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()
	text, err := t.inner.CompleteWithSystem(ctx, systemPrompt, userPrompt)
	fields := []zap.Field{
		zap.Int("prompt_chars", len(systemPrompt)+len(userPrompt)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		t.log.Warn("gateway call failed", append(fields, zap.Error(err))...)
		return "", err
	}
	t.log.Debug("gateway call completed", append(fields, zap.Int("completion_chars", len(text)))...)
	return text, nil
}
