package llm

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized    = errors.New("llm unauthorized")
	ErrUnavailable     = errors.New("llm unavailable")
	ErrRateLimited     = errors.New("llm rate limited")
	ErrEmptyCompletion = errors.New("llm returned empty completion")
)

// IsUnavailable reports whether err represents any gateway failure that a
// caller should absorb by falling back to a deterministic template.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrEmptyCompletion) ||
		errors.Is(err, context.DeadlineExceeded)
}
