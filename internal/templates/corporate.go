package templates

import (
	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// corporate is a clean two-column layout for banking, finance and law
type corporate struct{}

func (corporate) ID() string   { return "corporate" }
func (corporate) Name() string { return "Corporate Template" }
func (corporate) Description() string {
	return "Clean, two-column layout for banking, finance, and law"
}

func (corporate) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo

	left := d.Box(d.Variant(d.ContainerStack),
		section(3, "CONTACT", contactBlock(pi, false)),
	)
	if len(data.Skills) > 0 {
		skillBox := d.Block()
		if hard := data.SkillsOfType(types.SkillHard); len(hard) > 0 {
			skillBox.Append(d.Heading(4, "Hard Skills"), chipRow(hard))
		}
		if soft := data.SkillsOfType(types.SkillSoft); len(soft) > 0 {
			skillBox.Append(d.Heading(4, "Soft Skills"), chipRow(soft))
		}
		left.Append(section(3, "SKILLS", skillBox))
	}
	if len(data.Languages) > 0 {
		langs := d.Block()
		for _, l := range data.Languages {
			langs.Append(d.Block(d.Bold(l.Name), d.Text(" - "+string(l.Proficiency))))
		}
		left.Append(section(3, "LANGUAGES", langs))
	}
	if len(data.Certifications) > 0 {
		certs := d.Block()
		for _, c := range data.Certifications {
			certs.Append(d.Block(d.Para(c.Name), d.Para(c.Issuer), d.Para(c.Date)))
		}
		left.Append(section(3, "CERTIFICATIONS", certs))
	}

	right := d.Box(d.Variant(d.ContainerStack),
		d.Block(
			d.Heading(1, nameOr(pi, "Your Name")),
			d.Heading(2, titleOr(pi, "Job Title")),
		),
	)
	if types.HasContent(data.ProfileSummary) {
		right.Append(section(3, "PROFESSIONAL SUMMARY", d.Para(data.ProfileSummary)))
	}
	if len(data.WorkExperience) > 0 {
		jobs := d.Block()
		for _, w := range data.WorkExperience {
			jobs.Append(d.Block(
				d.Box(d.Variant(d.ContainerItemRow),
					d.Block(d.Heading(4, w.Role), d.Para(companyLine(w, ", "))),
					d.Span(w.DateRange()),
				),
				detailList(w.Responsibilities),
			))
		}
		right.Append(section(3, "PROFESSIONAL EXPERIENCE", jobs))
	}
	if len(data.Education) > 0 {
		schools := d.Block()
		for _, e := range data.Education {
			body := d.Block(d.Heading(4, e.Title()), d.Para(e.School))
			if e.GPA != "" {
				body.Append(d.Para("GPA: " + e.GPA))
			}
			schools.Append(d.Box(d.Variant(d.ContainerItemRow), body, d.Span(e.DateRange())))
		}
		right.Append(section(3, "EDUCATION", schools))
	}

	return d.Block(d.Box(d.WeightedGrid(1, 2), left, right))
}

// chipRow renders skills as a wrapping row of inline spans, or nil when empty
func chipRow(list []types.Skill) *d.Node {
	if len(list) == 0 {
		return nil
	}
	row := d.Box(d.Variant(d.ContainerChips))
	for _, s := range list {
		row.Append(d.Span(s.Name))
	}
	return row
}
