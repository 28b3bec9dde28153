package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
)

var (
	servePort       int
	serveMode       string
	serveChromePath string
	serveTimeout    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the export HTTP API server",
	Long:  `Start an HTTP server that exposes the HTML, PDF and Word exports as REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveMode, "mode", "m", "", "Default export mode: normal or ats")
	serveCmd.Flags().StringVar(&serveChromePath, "chrome-path", "", "Chrome/Chromium binary used for PDF printing")
	serveCmd.Flags().IntVar(&serveTimeout, "timeout", 0, "PDF print timeout in seconds")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, flagOverrides{
		mode:       &serveMode,
		chromePath: &serveChromePath,
		timeout:    &serveTimeout,
		port:       &servePort,
	})
	if err != nil {
		return err
	}
	mode, err := cfg.ExportMode()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		Service:     newService(cfg),
		Staging:     export.NewStaging(cfg.StagingTTL(), cfg.Verbose),
		DefaultMode: mode,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
