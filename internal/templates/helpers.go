package templates

import (
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

func nameOr(pi types.PersonalInfo, placeholder string) string {
	if pi.FullName != "" {
		return pi.FullName
	}
	return placeholder
}

func titleOr(pi types.PersonalInfo, placeholder string) string {
	if pi.JobTitle != "" {
		return pi.JobTitle
	}
	return placeholder
}

// contactField is one labelled contact value
type contactField struct {
	Label string
	Value string
}

// contactFields returns only the populated contact values, in display order
func contactFields(pi types.PersonalInfo) []contactField {
	all := []contactField{
		{"Email", pi.Email},
		{"Phone", pi.Phone},
		{"Location", pi.Location},
		{"LinkedIn", pi.LinkedIn},
		{"Website", pi.Website},
	}
	out := all[:0]
	for _, f := range all {
		if types.HasContent(f.Value) {
			out = append(out, f)
		}
	}
	return out
}

// contactBlock renders one paragraph per populated contact field, or nil
func contactBlock(pi types.PersonalInfo, labelled bool) *document.Node {
	fields := contactFields(pi)
	if len(fields) == 0 {
		return nil
	}
	box := document.Block()
	for _, f := range fields {
		text := f.Value
		if labelled {
			text = f.Label + ": " + f.Value
		}
		box.Append(document.Para(text))
	}
	return box
}

// photo returns the profile picture element, or nil when none is set
func photo(pi types.PersonalInfo, size document.ImageSize, circular bool) *document.Node {
	if pi.ProfilePicture == "" {
		return nil
	}
	return document.Image(document.ImageSpec{
		Src:      pi.ProfilePicture,
		Alt:      nameOr(pi, "Profile Picture"),
		Size:     size,
		Circular: circular,
	})
}

// detailList renders non-blank responsibilities, or nil when none remain
func detailList(items []string) *document.Node {
	kept := types.FilterBlank(items)
	if len(kept) == 0 {
		return nil
	}
	return document.List(kept...)
}

func companyLine(w types.WorkExperience, sep string) string {
	if w.Location == "" {
		return w.Company
	}
	return w.Company + sep + w.Location
}

func certLine(c types.Certification) string {
	line := c.Issuer + " | " + c.Date
	if c.ExpiryDate != "" {
		line += " - " + c.ExpiryDate
	}
	return line
}

func languageLine(l types.Language) string {
	return l.Name + " - " + string(l.Proficiency)
}

func hobbyNames(hs []types.Hobby) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		if types.HasContent(h.Name) {
			out = append(out, h.Name)
		}
	}
	return out
}

// section returns a titled block, or nil when body is nil
func section(level int, title string, body ...*document.Node) *document.Node {
	box := document.Block(body...)
	if len(box.Children) == 0 {
		return nil
	}
	return document.Block(document.Heading(level, title)).Append(box.Children...)
}
