// Package llm provides the completion gateway: a small client interface over
// OpenAI-compatible chat endpoints, a stub for offline runs, and a tracing
// decorator. Model and temperature are fixed at construction; callers never
// pass per-call model settings.
package llm

import "context"

// Client is the completion gateway contract. A failed call returns a non-nil
// error; an empty completion is signalled distinctly as ErrEmptyCompletion so
// callers can apply deterministic fallbacks.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
