package export

import (
	"errors"
	"fmt"
)

// GenericFailureMessage is shown when a failure carries no description
const GenericFailureMessage = "Export failed. Please try again."

// PreconditionError means the export could not start: nothing to export, an
// unknown template, or no capable print facility. Not retried.
type PreconditionError struct {
	Message string
	Cause   error
}

func (e *PreconditionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export precondition failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export precondition failed: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}

// PlatformDenialError means the print context could not be opened. The user
// can act on it and retry.
type PlatformDenialError struct {
	Message string
	Cause   error
}

func (e *PlatformDenialError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print context denied: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print context denied: %s", e.Message)
}

func (e *PlatformDenialError) Unwrap() error {
	return e.Cause
}

// PackagingError means the output document could not be assembled. No
// partial output accompanies it.
type PackagingError struct {
	Message string
	Cause   error
}

func (e *PackagingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export packaging failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export packaging failed: %s", e.Message)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// UserMessage derives the message shown to the user for err. Typed export
// errors contribute their own description; anything else contributes its
// error text; the generic message covers the rest.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var pre *PreconditionError
	var denial *PlatformDenialError
	var pkg *PackagingError
	msg := ""
	switch {
	case errors.As(err, &denial):
		msg = denial.Message
	case errors.As(err, &pre):
		msg = pre.Message
	case errors.As(err, &pkg):
		msg = pkg.Message
	default:
		msg = err.Error()
	}
	if msg == "" {
		return GenericFailureMessage
	}
	return msg
}
