package templates

import (
	"strconv"

	d "github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// creativeInfographic uses a colored banner, an accent callout and numbered
// badges in front of each section heading.
type creativeInfographic struct{}

func (creativeInfographic) ID() string   { return "creative-infographic" }
func (creativeInfographic) Name() string { return "Creative Infographic Template" }
func (creativeInfographic) Description() string {
	return "Bold banner header, accent callouts and badge markers for creative roles"
}

func (creativeInfographic) Render(data *types.ResumeData) *d.Node {
	pi := data.PersonalInfo

	root := d.Box(d.Variant(d.ContainerStack),
		d.Box(d.Variant(d.ContainerBanner),
			photo(pi, d.ImageMedium, true),
			d.Heading(1, nameOr(pi, "Your Name")),
			d.Heading(2, titleOr(pi, "Job Title")),
			contactLine(pi),
		),
	)
	if types.HasContent(data.ProfileSummary) {
		root.Append(d.Box(d.Variant(d.ContainerAccentCallout),
			d.Heading(3, "About Me"),
			d.Para(data.ProfileSummary),
		))
	}

	n := 0
	badged := func(tone d.BadgeTone, title string, body *d.Node) *d.Node {
		if body == nil {
			return nil
		}
		n++
		badge := d.Box(d.Container{Kind: d.ContainerBadge, Tone: tone}, d.Span(strconv.Itoa(n)))
		return d.Block(
			d.Box(d.Variant(d.ContainerItemRow), badge, d.Heading(3, title)),
			body,
		)
	}

	var jobs, schools *d.Node
	if len(data.WorkExperience) > 0 {
		jobs = d.Block()
		for _, w := range data.WorkExperience {
			jobs.Append(d.Block(
				d.Heading(4, w.Role),
				d.Para(companyLine(w, ", ")),
				d.Span(w.DateRange()),
				detailList(w.Responsibilities),
			))
		}
	}
	if len(data.Education) > 0 {
		schools = d.Block()
		for _, e := range data.Education {
			schools.Append(d.Block(
				d.Heading(4, e.Title()),
				d.Para(e.School),
				d.Span(e.DateRange()),
			))
		}
	}
	root.Append(
		badged(d.ToneTeal, "Experience", jobs),
		badged(d.ToneOrange, "Education", schools),
	)

	grid := d.Box(d.Grid(2))
	if len(data.Skills) > 0 {
		grid.Append(badged(d.ToneTeal, "Skills", d.Block(
			chipRow(data.SkillsOfType(types.SkillHard)),
			chipRow(data.SkillsOfType(types.SkillSoft)),
		)))
	}
	if len(data.Languages) > 0 {
		langs := d.Block()
		for _, l := range data.Languages {
			langs.Append(d.Para(languageLine(l)))
		}
		grid.Append(badged(d.ToneOrange, "Languages", langs))
	}
	if len(grid.Children) > 0 {
		root.Append(grid)
	}
	if len(data.Certifications) > 0 {
		certs := d.Block()
		for _, c := range data.Certifications {
			certs.Append(d.Para(c.Name + " - " + certLine(c)))
		}
		root.Append(badged(d.ToneTeal, "Certifications", certs))
	}
	return root
}

// contactLine renders populated contact values as one row of spans, or nil
func contactLine(pi types.PersonalInfo) *d.Node {
	fields := contactFields(pi)
	if len(fields) == 0 {
		return nil
	}
	row := d.Box(d.Variant(d.ContainerItemRow))
	for _, f := range fields {
		row.Append(d.Span(f.Value))
	}
	return row
}
