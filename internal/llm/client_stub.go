package llm

import "context"

// StubClient is a deterministic gateway for offline runs and tests. With no
// Response and no Err it reports ErrEmptyCompletion, which callers treat the
// same as an unavailable gateway.
type StubClient struct {
	Response string
	Err      error
}

func (s *StubClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.CompleteWithSystem(ctx, "", prompt)
}

func (s *StubClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Response == "" {
		return "", ErrEmptyCompletion
	}
	return s.Response, nil
}
