package condition

import "fmt"

// ValidationError marks a condition value the compiler cannot apply. The
// router reports it as a user-facing reply with empty results instead of
// failing the turn.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid condition field %s: %s", e.Field, e.Reason)
}
