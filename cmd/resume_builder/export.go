package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as HTML, PDF, Word or all three",
	Long: "Renders a resume JSON file through a template and writes the printable HTML document, " +
		"the PDF printed from it, the Word document, or all three. Output files are named after the person.",
	Example: `  resume_builder export --in resume.json --format pdf --template elegant-sidebar
  resume_builder export --sample midlevel --format all --mode ats --out-dir out/`,
	RunE: runExport,
}

var (
	exportInputFile  string
	exportSample     string
	exportFormat     string
	exportTemplate   string
	exportMode       string
	exportOutputDir  string
	exportChromePath string
	exportTimeout    int
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to resume JSON file")
	exportCmd.Flags().StringVar(&exportSample, "sample", "", "Use a built-in sample resume instead of --in")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: html, pdf, docx or all")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id (see 'resume_builder templates')")
	exportCmd.Flags().StringVarP(&exportMode, "mode", "m", "", "Export mode: normal or ats")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out-dir", "o", "", "Directory to write output files to")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome-path", "", "Chrome/Chromium binary used for PDF printing")
	exportCmd.Flags().IntVar(&exportTimeout, "timeout", 0, "PDF print timeout in seconds")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, flagOverrides{
		template:   &exportTemplate,
		mode:       &exportMode,
		outputDir:  &exportOutputDir,
		chromePath: &exportChromePath,
		timeout:    &exportTimeout,
	})
	if err != nil {
		return err
	}
	mode, err := cfg.ExportMode()
	if err != nil {
		return err
	}

	resume, err := loadResume(exportInputFile, exportSample)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if cfg.Verbose {
		printer.PrintResumeSummary(resume, cfg.Template, mode)
	}

	svc := newService(cfg)
	req := export.Request{Resume: resume, TemplateID: cfg.Template, Mode: mode}
	ctx := context.Background()

	var artifacts []*export.Artifact
	if exportFormat == "all" {
		artifacts, err = svc.All(ctx, req)
	} else {
		format, perr := export.ParseFormat(exportFormat)
		if perr != nil {
			return perr
		}
		var a *export.Artifact
		a, err = svc.Export(ctx, format, req)
		artifacts = []*export.Artifact{a}
	}
	if err != nil {
		if cfg.Verbose {
			log.Printf("[EXPORT] %v", err)
		}
		return errors.New(export.UserMessage(err))
	}

	paths, err := writeArtifacts(cfg.OutputDir, artifacts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintArtifacts(artifacts)
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Successfully exported %d file(s)\n", len(paths))
	for _, p := range paths {
		_, _ = fmt.Fprintf(out, "Output: %s\n", p)
	}
	return nil
}

// writeArtifacts writes each artifact under dir using its own filename
func writeArtifacts(dir string, artifacts []*export.Artifact) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.Filename)
		if err := os.WriteFile(path, a.Data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
