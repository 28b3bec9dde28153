package docx

import "fmt"

// PackagingError represents a failure assembling the document archive
type PackagingError struct {
	Message string
	Cause   error
}

func (e *PackagingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx packaging error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("docx packaging error: %s", e.Message)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}
