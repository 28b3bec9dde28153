package templates

import (
	"strings"

	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
)

// minimalist is plain text, ATS-friendly and free of graphics
type minimalist struct{}

func (minimalist) ID() string   { return "minimalist" }
func (minimalist) Name() string { return "Minimalist Template" }
func (minimalist) Description() string {
	return "Plain text-based, ATS-optimized, no graphics"
}

func (minimalist) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo
	root := d.Block(
		d.Block(
			d.Heading(1, nameOr(pi, "Your Name")),
			d.Heading(2, titleOr(pi, "Job Title")),
			contactBlock(pi, false),
		),
	)

	if types.HasContent(data.ProfileSummary) {
		root.Append(section(3, "Summary", d.Para(data.ProfileSummary)))
	}

	if len(data.WorkExperience) > 0 {
		jobs := d.Block()
		for _, w := range data.WorkExperience {
			jobs.Append(d.Block(
				d.Box(d.Variant(d.ContainerItemRow),
					d.Block(d.Heading(4, w.Role), d.Para(companyLine(w, " | "))),
					d.Para(w.DateRange()),
				),
				detailList(w.Responsibilities),
			))
		}
		root.Append(section(3, "Experience", jobs))
	}

	if len(data.Education) > 0 {
		schools := d.Block()
		for _, e := range data.Education {
			body := d.Block(d.Heading(4, e.Title()), d.Para(e.School))
			if e.GPA != "" {
				body.Append(d.Para("GPA: " + e.GPA))
			}
			schools.Append(d.Box(d.Variant(d.ContainerItemRow), body, d.Para(e.DateRange())))
		}
		root.Append(section(3, "Education", schools))
	}

	if len(data.Skills) > 0 {
		grid := d.Box(d.Grid(2))
		if hard := data.SkillsOfType(types.SkillHard); len(hard) > 0 {
			grid.Append(d.Block(d.Heading(4, "Technical Skills"), d.Para(skills.Join(hard))))
		}
		if soft := data.SkillsOfType(types.SkillSoft); len(soft) > 0 {
			grid.Append(d.Block(d.Heading(4, "Soft Skills"), d.Para(skills.Join(soft))))
		}
		root.Append(section(3, "Skills", grid))
	}

	extras := d.Box(d.Grid(3))
	if len(data.Certifications) > 0 {
		certs := d.Block()
		for _, c := range data.Certifications {
			certs.Append(d.Block(d.Para(c.Name), d.Para(certLine(c))))
		}
		extras.Append(section(3, "Certifications", certs))
	}
	if len(data.Languages) > 0 {
		langs := d.Block()
		for _, l := range data.Languages {
			langs.Append(d.Para(languageLine(l)))
		}
		extras.Append(section(3, "Languages", langs))
	}
	if names := hobbyNames(data.Hobbies); len(names) > 0 {
		extras.Append(section(3, "Interests", d.Para(strings.Join(names, ", "))))
	}
	if len(extras.Children) > 0 {
		root.Append(extras)
	}

	return root
}
