package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"template": "minimalist",
		"mode": "ats",
		"output_dir": "out",
		"print_timeout_seconds": 30,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "minimalist", cfg.Template)
	assert.Equal(t, "ats", cfg.Mode)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 30*time.Second, cfg.PrintTimeout())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Template: "corporate", Mode: "normal", Port: 8080}, ""},
		{"empty", Config{}, ""},
		{"bad mode", Config{Mode: "fancy"}, "export mode"},
		{"negative timeout", Config{PrintTimeoutSeconds: -1}, "print_timeout_seconds"},
		{"negative ttl", Config{StagingTTLSeconds: -5}, "staging_ttl_seconds"},
		{"port range", Config{Port: 70000}, "port"},
		{"missing chrome", Config{ChromePath: "/nonexistent/chrome"}, "chrome binary not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Template: "elegant-sidebar",
		Port:     9090,
	}

	merged := partial.MergeWithDefaults(Defaults())

	assert.Equal(t, "elegant-sidebar", merged.Template)
	assert.Equal(t, 9090, merged.Port)

	assert.Equal(t, "normal", merged.Mode)
	assert.Equal(t, ".", merged.OutputDir)
	assert.Equal(t, 60*time.Second, merged.PrintTimeout())
	assert.Equal(t, 2*time.Minute, merged.StagingTTL())
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Template: "minimalist"}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "minimalist", merged.Template)
	assert.Empty(t, merged.Mode)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome")
	t.Setenv("RESUME_EXPORT_MODE", "ats")
	t.Setenv("PORT", "3000")

	cfg := Config{}
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "/opt/chrome", cfg.ChromePath)
	assert.Equal(t, "ats", cfg.Mode)
	assert.Equal(t, 3000, cfg.Port)

	explicit := Config{Mode: "normal", Port: 1}
	require.NoError(t, explicit.ApplyEnv())
	assert.Equal(t, "normal", explicit.Mode)
	assert.Equal(t, 1, explicit.Port)
}

func TestApplyEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	cfg := Config{}
	assert.Error(t, cfg.ApplyEnv())
}

func TestExportMode(t *testing.T) {
	mode, err := (&Config{}).ExportMode()
	require.NoError(t, err)
	assert.Equal(t, types.ModeNormal, mode)

	mode, err = (&Config{Mode: "ats"}).ExportMode()
	require.NoError(t, err)
	assert.Equal(t, types.ModeATS, mode)
}
