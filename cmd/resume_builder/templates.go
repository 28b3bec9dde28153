package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

var templatesIDsOnly bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesIDsOnly, "ids", false, "Print only template ids, one per line")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	infos := templates.Builtin().List()
	if templatesIDsOnly {
		for _, info := range infos {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), info.ID)
		}
		return nil
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(infos)
	return nil
}
