package printing

import "fmt"

// ContextError means the headless browser could not be started or no browsing
// context could be opened. The user can fix this and retry.
type ContextError struct {
	Message string
	Cause   error
}

func (e *ContextError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print context error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print context error: %s", e.Message)
}

func (e *ContextError) Unwrap() error {
	return e.Cause
}

// PrintError represents a failure after the browser context was opened
type PrintError struct {
	Message string
	Cause   error
}

func (e *PrintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print error: %s", e.Message)
}

func (e *PrintError) Unwrap() error {
	return e.Cause
}
