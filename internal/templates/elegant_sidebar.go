package templates

import (
	"strings"

	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// elegantSidebar puts contact and skills in a dark sidebar next to the main pane
type elegantSidebar struct{}

func (elegantSidebar) ID() string   { return "elegant-sidebar" }
func (elegantSidebar) Name() string { return "Elegant Sidebar Template" }
func (elegantSidebar) Description() string {
	return "Dark sidebar with photo, contact and skills beside a clean main column"
}

func (elegantSidebar) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo

	side := d.Box(d.Variant(d.ContainerSidebar),
		photo(pi, d.ImageLarge, true),
		section(3, "Contact", contactBlock(pi, true)),
	)
	if hard := data.SkillsOfType(types.SkillHard); len(hard) > 0 {
		side.Append(section(3, "Skills", skillList(hard)))
	}
	if soft := data.SkillsOfType(types.SkillSoft); len(soft) > 0 {
		side.Append(section(3, "Strengths", skillList(soft)))
	}
	if len(data.Languages) > 0 {
		langs := d.Block()
		for _, l := range data.Languages {
			langs.Append(d.Para(languageLine(l)))
		}
		side.Append(section(3, "Languages", langs))
	}
	if names := hobbyNames(data.Hobbies); len(names) > 0 {
		side.Append(section(3, "Interests", d.Para(strings.Join(names, ", "))))
	}

	main := d.Box(d.Variant(d.ContainerMainPane),
		d.Heading(1, nameOr(pi, "Your Name")),
		d.Heading(2, titleOr(pi, "Job Title")),
	)
	if types.HasContent(data.ProfileSummary) {
		main.Append(section(3, "Profile", d.Para(data.ProfileSummary)))
	}
	if len(data.WorkExperience) > 0 {
		jobs := d.Box(d.Variant(d.ContainerStack))
		for _, w := range data.WorkExperience {
			jobs.Append(d.Block(
				d.Heading(4, w.Role),
				d.Para(companyLine(w, " · ")+" | "+w.DateRange()),
				detailList(w.Responsibilities),
			))
		}
		main.Append(section(3, "Experience", jobs))
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
		main.Append(section(3, "Education", schools))
	}
	if len(data.Certifications) > 0 {
		certs := d.Block()
		for _, c := range data.Certifications {
			certs.Append(d.Block(d.Bold(c.Name), d.Para(certLine(c))))
		}
		main.Append(section(3, "Certifications", certs))
	}

	return d.Box(d.Variant(d.ContainerTwoColumn), side, main)
}

func skillList(list []types.Skill) *d.Node {
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	return d.List(names...)
}
