package parsing

import "fmt"

// ParseError indicates the raw LLM text could not be turned into a
// customization, even after repair. Callers substitute a safe fallback
// rather than propagating this as fatal.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
