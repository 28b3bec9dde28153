package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed constraint on a resume field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failed constraint of a resume
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid resume: " + strings.Join(parts, "; ")
}

// Validate checks enum values, email syntax and identifier uniqueness within
// each collection.
func (r *ResumeData) Validate() error {
	if r == nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "resume is required"}}}
	}

	validate := validator.New()
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   strings.TrimPrefix(fe.Namespace(), "ResumeData."),
			Message: describeTag(fe),
		})
	}
	return out
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "unique":
		return "identifiers must be unique"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
