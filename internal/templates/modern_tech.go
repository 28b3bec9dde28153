package templates

import (
	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
)

// modernTech is single-column with bold headings
type modernTech struct{}

func (modernTech) ID() string   { return "modern-tech" }
func (modernTech) Name() string { return "Modern Tech Template" }
func (modernTech) Description() string {
	return "Single-column, bold headings, great for tech roles"
}

func (modernTech) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo

	header := d.Block(
		d.Heading(1, nameOr(pi, "Your Name")),
		d.Heading(2, titleOr(pi, "Job Title")),
		contactLine(pi),
	)

	root := d.Box(d.Variant(d.ContainerStack), header)

	if types.HasContent(data.ProfileSummary) {
		root.Append(section(2, "About", d.Para(data.ProfileSummary)))
	}
	if len(data.Skills) > 0 {
		root.Append(section(2, "Tech Stack",
			chipRow(data.SkillsOfType(types.SkillHard)),
			d.When(len(data.SkillsOfType(types.SkillSoft)) > 0, func() *d.Node {
				return d.Para(skills.Join(data.SkillsOfType(types.SkillSoft)))
			}),
		))
	}
	if len(data.WorkExperience) > 0 {
		jobs := d.Block()
		for _, w := range data.WorkExperience {
			jobs.Append(d.Block(
				d.Box(d.Variant(d.ContainerItemRow),
					d.Heading(3, w.Role),
					d.Span(w.DateRange()),
				),
				d.Para(companyLine(w, " • ")),
				detailList(w.Responsibilities),
			))
		}
		root.Append(section(2, "Experience", jobs))
	}
	if len(data.Education) > 0 {
		schools := d.Block()
		for _, e := range data.Education {
			schools.Append(d.Block(
				d.Heading(4, e.Title()),
				d.Para(e.School+" | "+e.DateRange()),
				d.When(e.GPA != "", func() *d.Node { return d.Para("GPA: " + e.GPA) }),
			))
		}
		root.Append(section(2, "Education", schools))
	}
	if len(data.Certifications) > 0 {
		certs := d.Block()
		for _, c := range data.Certifications {
			certs.Append(d.Block(d.Bold(c.Name), d.Para(certLine(c))))
		}
		root.Append(section(2, "Certifications", certs))
	}
	if len(data.Languages) > 0 {
		items := make([]string, 0, len(data.Languages))
		for _, l := range data.Languages {
			items = append(items, languageLine(l))
		}
		root.Append(section(2, "Languages", d.List(items...)))
	}

	return root
}
