package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Check a resume JSON file against the schema and field rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	problems, err := findProblems(data)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintProblems(problems)
	if len(problems) > 0 {
		return fmt.Errorf("%s is not a valid resume (%d problem(s))", args[0], len(problems))
	}
	return nil
}

// findProblems collects schema findings and, for documents that fit the
// schema, field-rule findings. A non-nil error means the input could not be
// checked at all.
func findProblems(data []byte) ([]observability.Problem, error) {
	var problems []observability.Problem

	var schemaErr *schemas.ValidationError
	if err := schemas.ValidateResume(data); err != nil {
		if !errors.As(err, &schemaErr) {
			return nil, err
		}
		for _, fe := range schemaErr.Errors {
			problems = append(problems, observability.Problem{Field: fe.Field, Message: fe.Message})
		}
		return problems, nil
	}

	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	var fieldErr *types.ValidationError
	if err := resume.Validate(); errors.As(err, &fieldErr) {
		for _, fe := range fieldErr.Errors {
			problems = append(problems, observability.Problem{Field: fe.Field, Message: fe.Message})
		}
	}
	return problems, nil
}
