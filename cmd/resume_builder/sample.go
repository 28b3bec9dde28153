package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [name]",
	Short: "Write a built-in example resume",
	Long:  "Writes one of the built-in example resumes as JSON, to a file or to stdout. Without a name, lists them.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSample,
}

var sampleOutputFile string

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutputFile, "out", "o", "", "Path to write the sample to (default stdout)")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		_, _ = fmt.Fprintf(out, "Available samples: %s\n", strings.Join(types.SampleNames(), ", "))
		return nil
	}

	data, err := types.SampleJSON(args[0])
	if err != nil {
		return err
	}

	if sampleOutputFile == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(sampleOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Output: %s\n", sampleOutputFile)
	return nil
}
