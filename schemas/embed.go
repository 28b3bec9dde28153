// Package schemas holds the JSON Schemas of the resume wire format.
package schemas

import _ "embed"

// ResumeFile is the file name of the resume schema
const ResumeFile = "resume.schema.json"

//go:embed resume.schema.json
var resume string

// Resume returns the resume JSON Schema
func Resume() string {
	return resume
}
