package types

import "fmt"

// ExportMode selects between the styled and the scanner-friendly export variant
type ExportMode string

const (
	// ModeNormal is the default, visually styled variant
	ModeNormal ExportMode = "normal"
	// ModeATS is the plain variant optimized for applicant tracking systems
	ModeATS ExportMode = "ats"
)

// ParseExportMode accepts exactly "normal" or "ats".
// An empty string is not defaulted here; callers decide the default.
func ParseExportMode(s string) (ExportMode, error) {
	switch ExportMode(s) {
	case ModeNormal, ModeATS:
		return ExportMode(s), nil
	default:
		return "", fmt.Errorf("invalid export mode %q: must be %q or %q", s, ModeNormal, ModeATS)
	}
}

// IsATS reports whether the mode is the ATS variant
func (m ExportMode) IsATS() bool {
	return m == ModeATS
}

func (m ExportMode) String() string {
	return string(m)
}
