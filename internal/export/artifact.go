package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/docx"
)

// Format is an output document format
type Format string

// Supported formats
const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Formats lists every supported format in export order
var Formats = []Format{FormatHTML, FormatPDF, FormatDOCX}

// ParseFormat accepts exactly the known format names
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (expected html, pdf or docx)", s)
}

// ContentType returns the media type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return docx.ContentType
	default:
		return "text/html; charset=utf-8"
	}
}

// Artifact is one produced document
type Artifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Format      Format `json:"format"`
	Data        []byte `json:"-"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename returns "{Full_Name}_Resume.{ext}", or "resume.{ext}" when the name is blank
func Filename(fullName string, f Format) string {
	if strings.TrimSpace(fullName) == "" {
		return "resume." + string(f)
	}
	// Every whitespace run becomes one underscore, including leading and trailing ones
	return whitespaceRun.ReplaceAllString(fullName, "_") + "_Resume." + string(f)
}
