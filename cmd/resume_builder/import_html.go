package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
)

var importHTMLCmd = &cobra.Command{
	Use:   "import-html",
	Short: "Turn a saved preview HTML snapshot into a printable document or PDF",
	Long: "Reads an HTML snapshot of a rendered resume preview, keeps the subtree matched by --selector, " +
		"and re-exports it as a self-contained printable HTML document or a PDF in the chosen mode.",
	RunE: runImportHTML,
}

var (
	importInputFile  string
	importSelector   string
	importFormat     string
	importMode       string
	importOutputDir  string
	importChromePath string
	importTimeout    int
)

func init() {
	importHTMLCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to the HTML snapshot (required)")
	importHTMLCmd.Flags().StringVar(&importSelector, "selector", document.DefaultRootSelector, "CSS selector of the resume root")
	importHTMLCmd.Flags().StringVarP(&importFormat, "format", "f", "html", "Output format: html or pdf")
	importHTMLCmd.Flags().StringVarP(&importMode, "mode", "m", "", "Export mode: normal or ats")
	importHTMLCmd.Flags().StringVarP(&importOutputDir, "out-dir", "o", "", "Directory to write the output file to")
	importHTMLCmd.Flags().StringVar(&importChromePath, "chrome-path", "", "Chrome/Chromium binary used for PDF printing")
	importHTMLCmd.Flags().IntVar(&importTimeout, "timeout", 0, "PDF print timeout in seconds")

	_ = importHTMLCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(importHTMLCmd)
}

func runImportHTML(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(importFormat)
	if err != nil {
		return err
	}
	if format == export.FormatDOCX {
		return errors.New("snapshots export as html or pdf; use 'export --format docx' with resume data")
	}

	cfg, err := resolveConfig(cmd, flagOverrides{
		mode:       &importMode,
		outputDir:  &importOutputDir,
		chromePath: &importChromePath,
		timeout:    &importTimeout,
	})
	if err != nil {
		return err
	}
	mode, err := cfg.ExportMode()
	if err != nil {
		return err
	}

	f, err := os.Open(importInputFile)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	tree, err := document.FromHTML(f, importSelector)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("[IMPORT] Imported %d nodes from %s", document.Count(tree, func(*document.Node) bool { return true }), importInputFile)
	}

	artifact, err := newService(cfg).Export(context.Background(), format, export.Request{Tree: tree, Mode: mode})
	if err != nil {
		if cfg.Verbose {
			log.Printf("[EXPORT] %v", err)
		}
		return errors.New(export.UserMessage(err))
	}

	paths, err := writeArtifacts(cfg.OutputDir, []*export.Artifact{artifact})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintArtifacts([]*export.Artifact{artifact})
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", paths[0])
	return nil
}
