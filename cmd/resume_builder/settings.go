package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// flagOverrides maps command flag names onto config fields. Only flags the
// user actually set override the config file.
type flagOverrides struct {
	template   *string
	mode       *string
	outputDir  *string
	chromePath *string
	timeout    *int
	port       *int
}

// resolveConfig layers built-in defaults, the config file, the environment
// and explicitly set flags, in increasing priority.
func resolveConfig(cmd *cobra.Command, o flagOverrides) (config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if o.template != nil && flags.Changed("template") {
		cfg.Template = *o.template
	}
	if o.mode != nil && flags.Changed("mode") {
		cfg.Mode = *o.mode
	}
	if o.outputDir != nil && flags.Changed("out-dir") {
		cfg.OutputDir = *o.outputDir
	}
	if o.chromePath != nil && flags.Changed("chrome-path") {
		cfg.ChromePath = *o.chromePath
	}
	if o.timeout != nil && flags.Changed("timeout") {
		cfg.PrintTimeoutSeconds = *o.timeout
	}
	if o.port != nil && flags.Changed("port") {
		cfg.Port = *o.port
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// newService wires the built-in templates and a headless Chrome printer
func newService(cfg config.Config) *export.Service {
	printer := printing.NewChromePrinter(cfg.ChromePath, cfg.PrintTimeout(), cfg.Verbose)
	return export.NewService(templates.Builtin(), printer, cfg.Verbose)
}

// loadResume reads a resume from a JSON file, or a built-in sample when
// sample is set, and checks it against the schema and field constraints.
func loadResume(path, sample string) (*types.ResumeData, error) {
	var data []byte
	var err error
	switch {
	case path != "" && sample != "":
		return nil, errors.New("use either --in or --sample, not both")
	case sample != "":
		data, err = types.SampleJSON(sample)
	case path != "":
		data, err = os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("failed to read resume file: %w", err)
		}
	default:
		return nil, errors.New("a resume is required: pass --in <file> or --sample <name>")
	}
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}

	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return nil, err
	}
	return &resume, nil
}
