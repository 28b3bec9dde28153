// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Problem is one validation finding to display
type Problem struct {
	Field   string
	Message string
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs what is about to be exported: the person, the
// template, the mode and how much content each section carries.
func (p *Printer) PrintResumeSummary(resume *types.ResumeData, templateID string, mode types.ExportMode) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	name := resume.PersonalInfo.FullName
	if strings.TrimSpace(name) == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if resume.PersonalInfo.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", resume.PersonalInfo.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Template:  %s\n", templateID))
	sb.WriteString(fmt.Sprintf("Mode:      %s\n", mode))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience:      %d\n", len(resume.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Skills:          %d\n", len(resume.Skills)))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", len(resume.Certifications)))
	sb.WriteString(fmt.Sprintf("Languages:       %d\n", len(resume.Languages)))
	sb.WriteString(fmt.Sprintf("Interests:       %d\n", len(resume.Hobbies)))

	groups := skills.Partition(resume.Skills, false)
	if len(groups.Technical) > 0 {
		sb.WriteString("\nTechnical skills:\n")
		count := min(len(groups.Technical), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", groups.Technical[i].Name))
		}
		if len(groups.Technical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(groups.Technical)-maxItemsToShow))
		}
	}

	p.printBox("RESUME TO EXPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArtifacts outputs the produced files with their sizes.
func (p *Printer) PrintArtifacts(artifacts []*export.Artifact) {
	if len(artifacts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Produced %d file(s):\n\n", len(artifacts)))
	for _, a := range artifacts {
		if a == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("• %s\n", a.Filename))
		sb.WriteString(fmt.Sprintf("  %s, %s\n", strings.ToUpper(string(a.Format)), humanSize(len(a.Data))))
	}

	p.printBox("EXPORTED ARTIFACTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs the registered templates.
func (p *Printer) PrintTemplates(infos []templates.Info) {
	if len(infos) == 0 {
		return
	}

	var sb strings.Builder
	for i, info := range infos {
		marker := " "
		if info.ID == templates.DefaultID {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-20s %s\n", marker, info.ID, info.Name))
		if info.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", info.Description))
		}
		if i < len(infos)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TEMPLATES (* = default)", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProblems outputs validation findings, or a success line when none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProblems(problems []Problem) {
	if len(problems) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problem(s):\n\n", len(problems)))
	for i, pr := range problems {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", pr.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", pr.Message))
		if i < len(problems)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION PROBLEMS", strings.TrimSuffix(sb.String(), "\n"))
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
