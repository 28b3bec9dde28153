package templates

import (
	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
)

// valeraClassic is a traditional layout with dates in a narrow left column
// and a separate software block.
type valeraClassic struct{}

func (valeraClassic) ID() string   { return "valera-classic" }
func (valeraClassic) Name() string { return "Valera Classic Template" }
func (valeraClassic) Description() string {
	return "Traditional layout with a date column and a dedicated software section"
}

func (valeraClassic) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo
	row := func(left string, right ...*d.Node) *d.Node {
		return d.Box(d.WeightedGrid(1, 4), d.Span(left), d.Block(right...))
	}

	root := d.Box(d.Variant(d.ContainerStack),
		d.Block(
			d.Heading(1, nameOr(pi, "Your Name")),
			d.Heading(2, titleOr(pi, "Professional Title")),
			contactLine(pi),
		),
	)
	if types.HasContent(data.ProfileSummary) {
		root.Append(section(3, "Profile", d.Para(data.ProfileSummary)))
	}
	if len(data.WorkExperience) > 0 {
		jobs := d.Block()
		for _, w := range data.WorkExperience {
			jobs.Append(row(w.DateRange(),
				d.Heading(4, w.Role),
				d.Para(companyLine(w, ", ")),
				detailList(w.Responsibilities),
			))
		}
		root.Append(section(3, "Employment History", jobs))
	}
	if len(data.Education) > 0 {
		schools := d.Block()
		for _, e := range data.Education {
			schools.Append(row(e.DateRange(),
				d.Heading(4, e.Title()),
				d.Para(e.School),
				d.When(e.GPA != "", func() *d.Node { return d.Para("GPA: " + e.GPA) }),
			))
		}
		root.Append(section(3, "Education", schools))
	}

	groups := skills.Partition(data.Skills, true)
	if len(groups.Technical) > 0 {
		root.Append(section(3, "Skills", d.Para(skills.Join(groups.Technical))))
	}
	if len(groups.Software) > 0 {
		root.Append(section(3, "Software", d.Para(skills.Join(groups.Software))))
	}
	if len(groups.Soft) > 0 {
		root.Append(section(3, "Soft Skills", d.Para(skills.Join(groups.Soft))))
	}
	if len(data.Languages) > 0 {
		langs := d.Block()
		for _, l := range data.Languages {
			langs.Append(row(string(l.Proficiency), d.Para(l.Name)))
		}
		root.Append(section(3, "Languages", langs))
	}
	if len(data.Certifications) > 0 {
		certs := d.Block()
		for _, c := range data.Certifications {
			certs.Append(row(c.Date, d.Para(c.Name+", "+c.Issuer)))
		}
		root.Append(section(3, "Certifications", certs))
	}
	return root
}
