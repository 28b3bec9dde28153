package types

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed samples/*.json
var sampleFiles embed.FS

// SampleNames lists the built-in example resumes
func SampleNames() []string {
	entries, err := sampleFiles.ReadDir("samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Sample returns a fresh copy of a built-in example resume
func Sample(name string) (*ResumeData, error) {
	data, err := sampleFiles.ReadFile(path.Join("samples", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(SampleNames(), ", "))
	}

	var r ResumeData
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse sample %q: %w", name, err)
	}
	return &r, nil
}

// SampleJSON returns the raw JSON of a built-in example resume
func SampleJSON(name string) ([]byte, error) {
	data, err := sampleFiles.ReadFile(path.Join("samples", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(SampleNames(), ", "))
	}
	return data, nil
}
