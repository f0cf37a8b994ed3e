package planar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed is matched by every InputError.
	ErrMalformed = errors.New("malformed input")

	// ErrDegenerate is returned for zero-length segments when degenerate segments are rejected.
	ErrDegenerate = errors.New("zero-length segment")

	// ErrNoConvergence is matched by ConvergenceError.
	ErrNoConvergence = errors.New("crossing removal did not converge")
)

// InputError reports structurally invalid input, found before any geometric work is done.
type InputError struct {
	What   string // "point", "segment" or "interval"
	Index  int    // index of the offending element, -1 if not applicable
	Reason string
	cause  error
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("planar: %s: %s", e.What, e.Reason)
	}
	return fmt.Sprintf("planar: %s %d: %s", e.What, e.Index, e.Reason)
}

func (e *InputError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrMalformed) hold for all input errors.
func (e *InputError) Is(target error) bool {
	return target == ErrMalformed
}

func inputErrorf(what string, index int, format string, args ...interface{}) *InputError {
	return &InputError{What: what, Index: index, Reason: fmt.Sprintf(format, args...)}
}

// ConvergenceError is returned when the crossing removal keeps splitting segments after the maximum number of passes. The caller may retry with a larger tolerance.
type ConvergenceError struct {
	Passes   int
	Segments []int   // input segment indices that were still being split
	Points   []Point // intersection points found in the last pass
}

func (e *ConvergenceError) Error() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "planar: no fixed point after %d passes", e.Passes)
	if 0 < len(e.Segments) {
		fmt.Fprintf(&sb, ", segments %v still split", e.Segments)
	}
	if 0 < len(e.Points) {
		n := min(len(e.Points), 4)
		fmt.Fprintf(&sb, " near %v", e.Points[:n])
		if n < len(e.Points) {
			sb.WriteString("...")
		}
	}
	return sb.String()
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }
