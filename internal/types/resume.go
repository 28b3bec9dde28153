// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
)

// SkillType distinguishes technical skills from interpersonal ones
type SkillType string

const (
	// SkillHard is a technical, tool or domain skill
	SkillHard SkillType = "hard"
	// SkillSoft is an interpersonal skill
	SkillSoft SkillType = "soft"
)

// Proficiency is a spoken-language level
type Proficiency string

// Supported language proficiencies
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyNative       Proficiency = "native"
)

// ResumeData is the root aggregate captured by the form and consumed by every
// template and both exporters. Exporters never mutate it.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	ProfileSummary string           `json:"profileSummary"`
	Education      []Education      `json:"education" validate:"unique=ID,dive"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"unique=ID,dive"`
	Skills         []Skill          `json:"skills" validate:"unique=ID,dive"`
	Certifications []Certification  `json:"certifications" validate:"unique=ID,dive"`
	Languages      []Language       `json:"languages" validate:"unique=ID,dive"`
	Hobbies        []Hobby          `json:"hobbies" validate:"unique=ID,dive"`
}

// PersonalInfo holds the header block of a resume
type PersonalInfo struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	// ProfilePicture is an inline data URI ("data:image/png;base64,...") or empty.
	// Any other source is accepted but never exported.
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Education is a single school entry
type Education struct {
	ID        string `json:"id" validate:"required"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GPA       string `json:"gpa,omitempty"`
}

// WorkExperience is a single job entry. When Current is set, EndDate is not
// authoritative and renders as "Present".
type WorkExperience struct {
	ID               string   `json:"id" validate:"required"`
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Current          bool     `json:"current"`
	Responsibilities []string `json:"responsibilities"`
}

// Skill is a named hard or soft skill
type Skill struct {
	ID   string    `json:"id" validate:"required"`
	Name string    `json:"name"`
	Type SkillType `json:"type" validate:"oneof=hard soft"`
}

// Certification is an issued credential with an optional expiry
type Certification struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// Language is a spoken language with a proficiency level
type Language struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency" validate:"oneof=beginner intermediate advanced native"`
}

// Hobby doubles as the "other interests / projects" bucket for some templates
type Hobby struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// FormatDateRange renders a period pair. Values are passed through unmodified;
// callers supply pre-formatted period strings.
func FormatDateRange(startDate, endDate string, current bool) string {
	if current {
		return startDate + " - Present"
	}
	return startDate + " - " + endDate
}

// DateRange returns the display period of the job
func (w WorkExperience) DateRange() string {
	return FormatDateRange(w.StartDate, w.EndDate, w.Current)
}

// Details returns the non-blank responsibilities in their original order
func (w WorkExperience) Details() []string {
	return FilterBlank(w.Responsibilities)
}

// DateRange returns the display period of the education entry
func (e Education) DateRange() string {
	return FormatDateRange(e.StartDate, e.EndDate, false)
}

// Title returns "{degree} in {field}", or whichever half is present
func (e Education) Title() string {
	switch {
	case e.Degree != "" && e.Field != "":
		return e.Degree + " in " + e.Field
	case e.Degree != "":
		return e.Degree
	default:
		return e.Field
	}
}

// FilterBlank drops whitespace-only entries. Kept entries are returned verbatim.
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// HasContent reports whether s contains anything other than whitespace
func HasContent(s string) bool {
	return strings.TrimSpace(s) != ""
}

// SkillsOfType returns skills of the given type in insertion order
func (r *ResumeData) SkillsOfType(t SkillType) []Skill {
	var out []Skill
	for _, s := range r.Skills {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep copy used as the immutable snapshot for one export
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}
	c := *r
	c.Education = append([]Education(nil), r.Education...)
	c.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
	for i, w := range r.WorkExperience {
		w.Responsibilities = append([]string(nil), w.Responsibilities...)
		c.WorkExperience[i] = w
	}
	c.Skills = append([]Skill(nil), r.Skills...)
	c.Certifications = append([]Certification(nil), r.Certifications...)
	c.Languages = append([]Language(nil), r.Languages...)
	c.Hobbies = append([]Hobby(nil), r.Hobbies...)
	return &c
}

// Empty returns a resume with every collection present but empty
func Empty() *ResumeData {
	return &ResumeData{
		Education:      []Education{},
		WorkExperience: []WorkExperience{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Hobbies:        []Hobby{},
	}
}
