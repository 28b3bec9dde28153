package templates

import (
	"strings"

	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// creativePortfolio is a centered layout led by a large circular photo
type creativePortfolio struct{}

func (creativePortfolio) ID() string   { return "creative-portfolio" }
func (creativePortfolio) Name() string { return "Creative Portfolio Template" }
func (creativePortfolio) Description() string {
	return "Centered portfolio layout with a profile photo and project highlights"
}

func (creativePortfolio) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo

	root := d.Box(d.Variant(d.ContainerStack),
		d.Block(
			photo(pi, d.ImageLarge, true),
			d.Heading(1, nameOr(pi, "Your Name")),
			d.Heading(2, titleOr(pi, "Creative Professional")),
			contactLine(pi),
		),
	)
	if types.HasContent(data.ProfileSummary) {
		root.Append(d.Box(d.Variant(d.ContainerAccentCallout), d.Para(data.ProfileSummary)))
	}

	if len(data.WorkExperience) > 0 {
		jobs := d.Box(d.Grid(2))
		for _, w := range data.WorkExperience {
			jobs.Append(d.Block(
				d.Heading(4, w.Role),
				d.Bold(w.Company),
				d.Para(w.DateRange()),
				detailList(w.Responsibilities),
			))
		}
		root.Append(section(3, "Selected Work", jobs))
	}
	if names := hobbyNames(data.Hobbies); len(names) > 0 {
		root.Append(section(3, "Projects & Interests", d.List(names...)))
	}

	lower := d.Box(d.Grid(2))
	if len(data.Skills) > 0 {
		lower.Append(section(3, "Skills",
			chipRow(data.SkillsOfType(types.SkillHard)),
			chipRow(data.SkillsOfType(types.SkillSoft)),
		))
	}
	if len(data.Education) > 0 {
		schools := d.Block()
		for _, e := range data.Education {
			schools.Append(d.Block(d.Bold(e.Title()), d.Para(e.School+" | "+e.DateRange())))
		}
		lower.Append(section(3, "Education", schools))
	}
	if len(lower.Children) > 0 {
		root.Append(lower)
	}

	var tail []string
	for _, c := range data.Certifications {
		tail = append(tail, c.Name+" ("+c.Issuer+")")
	}
	for _, l := range data.Languages {
		tail = append(tail, languageLine(l))
	}
	if len(tail) > 0 {
		root.Append(section(3, "Credentials", d.Para(strings.Join(tail, " · "))))
	}
	return root
}
