package results

import (
	"errors"
	"fmt"
)

// ErrMissingInput reports that the input path does not resolve to a file.
// It is the only load failure callers are expected to branch on.
var ErrMissingInput = errors.New("input file not found")

// LoadError wraps any failure during parsing or column validation. The run
// is batch-or-nothing: a LoadError aborts it with no partial results.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
