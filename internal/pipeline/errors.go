package pipeline

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned before any stage runs when the tender text
// is empty or not valid text. It is the only extraction-side failure that
// crosses the pipeline boundary.
var ErrMalformedInput = errors.New("tender text is empty or not text")

// PersistError reports a failed artifact or state write. Fatal for the
// current run; artifacts persisted by earlier stages remain valid for a
// later resume.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
