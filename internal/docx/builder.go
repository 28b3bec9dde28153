package docx

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/profile"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
)

// US Letter in twentieths of a point, one-inch margins
const (
	pageWidth    = 12240
	pageHeight   = 15840
	pageMargin   = 1440
	contentWidth = pageWidth - 2*pageMargin
	dateColumn   = contentWidth / 5
	detailColumn = contentWidth - dateColumn
)

const (
	placeholderName  = "YOUR NAME"
	placeholderTitle = "Professional Title"
	decorativeAward  = "Academic Excellence Award"
	bulletMarker     = "• "
	contactSeparator = "   "
)

// builder assembles the document body for one resume and profile
type builder struct {
	p      profile.Profile
	w      profile.WordStyle
	blocks []block
}

func newBuilder(p profile.Profile) *builder {
	return &builder{p: p, w: p.Word}
}

// build lays out every section that has content, in fixed order
func (b *builder) build(r *types.ResumeData) wordDocument {
	b.header(r)
	b.experience(r.WorkExperience)
	b.education(r.Education)
	groups := skills.Partition(r.Skills, b.p.SoftwareSection)
	b.skills(groups, r.Languages)
	b.software(groups.Software)
	b.certifications(r.Certifications)

	return wordDocument{
		NS: nsMain,
		Body: body{
			Blocks: b.blocks,
			Section: sectionProps{
				Size:   pageSize{W: pageWidth, H: pageHeight},
				Margin: margins{Top: pageMargin, Right: pageMargin, Bottom: pageMargin, Left: pageMargin},
			},
		},
	}
}

func (b *builder) add(blocks ...block) {
	b.blocks = append(b.blocks, blocks...)
}

func (b *builder) header(r *types.ResumeData) {
	pi := r.PersonalInfo
	name := placeholderName
	if types.HasContent(pi.FullName) {
		name = pi.FullName
	}
	title := placeholderTitle
	if types.HasContent(pi.JobTitle) {
		title = pi.JobTitle
	}

	b.add(
		b.para(&paraProps{Justify: &val{"center"}, Spacing: &spacing{After: b.w.Spacing.Normal}},
			b.run(name, b.w.DisplayFont, b.w.NameSize, b.w.Palette.Heading, true, false)),
		b.para(&paraProps{Justify: &val{"center"}, Spacing: &spacing{After: b.w.Spacing.Loose}},
			b.run(title, b.w.DisplayFont, b.w.TitleSize, b.w.Palette.Muted, false, false)),
	)

	if line := contactLine(pi); line != "" {
		b.add(b.para(&paraProps{Justify: &val{"center"}, Spacing: &spacing{After: b.w.Spacing.Wide}},
			b.run(line, b.w.BodyFont, b.w.DateSize, b.w.Palette.Body, false, false)))
	}
	if types.HasContent(r.ProfileSummary) {
		b.add(b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Wide, Line: b.w.LineSpacing}},
			b.run(r.ProfileSummary, b.w.BodyFont, b.w.BodySize, b.w.Palette.Body, false, false)))
	}
}

// contactLine joins the populated contact fields; absent fields leave no trace
func contactLine(pi types.PersonalInfo) string {
	fields := []struct{ label, value string }{
		{"Phone", pi.Phone},
		{"Email", pi.Email},
		{"LinkedIn", pi.LinkedIn},
		{"Website", pi.Website},
		{"Location", pi.Location},
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if types.HasContent(f.value) {
			parts = append(parts, f.label+": "+f.value)
		}
	}
	return strings.Join(parts, contactSeparator)
}

// sectionHeading is an uppercased heading with a rule under it, or plain
// whitespace when the profile hides rules.
func (b *builder) sectionHeading(title string) paragraph {
	props := &paraProps{Spacing: &spacing{Before: b.w.Spacing.Wide, After: b.w.Spacing.Loose}}
	if b.p.ShowRules {
		props.Border = &paraBorder{Bottom: border{Val: "single", Size: 6, Space: 4, Color: b.w.Palette.Rule}}
	}
	return b.para(props, b.run(strings.ToUpper(title), b.w.DisplayFont, b.w.HeadingSize, b.w.Palette.Heading, true, false))
}

func (b *builder) experience(jobs []types.WorkExperience) {
	if len(jobs) == 0 {
		return
	}
	rows := make([]tableRow, 0, len(jobs))
	for _, job := range jobs {
		right := []paragraph{
			b.entryTitle(job.Role),
			b.subtitle(companyLine(job)),
		}
		right = append(right, b.bullets(job.Details())...)
		rows = append(rows, b.dateRow(job.DateRange(), right))
	}
	b.add(b.sectionHeading("Experience"), b.dateTable(rows))
}

func companyLine(job types.WorkExperience) string {
	if types.HasContent(job.Location) {
		return job.Company + ", " + job.Location
	}
	return job.Company
}

func (b *builder) education(schools []types.Education) {
	if len(schools) == 0 {
		return
	}
	rows := make([]tableRow, 0, len(schools))
	for _, e := range schools {
		var details []string
		if types.HasContent(e.GPA) {
			details = append(details, "GPA: "+e.GPA)
		}
		if b.p.IncludeDecorative {
			details = append(details, decorativeAward)
		}
		right := []paragraph{
			b.entryTitle(e.Title()),
			b.subtitle(e.School),
		}
		right = append(right, b.bullets(details)...)
		rows = append(rows, b.dateRow(e.DateRange(), right))
	}
	b.add(b.sectionHeading("Education"), b.dateTable(rows))
}

func (b *builder) skills(g skills.Groups, languages []types.Language) {
	type subBlock struct {
		label string
		line  string
	}
	var blocks []subBlock
	if len(g.Technical) > 0 {
		blocks = append(blocks, subBlock{"Technical Skills", skills.Join(g.Technical)})
	}
	if len(g.Soft) > 0 {
		blocks = append(blocks, subBlock{"Soft Skills", skills.Join(g.Soft)})
	}
	if len(languages) > 0 {
		names := make([]string, 0, len(languages))
		for _, l := range languages {
			names = append(names, l.Name+" ("+string(l.Proficiency)+")")
		}
		blocks = append(blocks, subBlock{"Languages", strings.Join(names, ", ")})
	}
	if len(blocks) == 0 {
		return
	}

	b.add(b.sectionHeading("Skills"))
	for _, sb := range blocks {
		b.add(
			b.para(&paraProps{Spacing: &spacing{Before: b.w.Spacing.Normal, After: b.w.Spacing.Tight}},
				b.run(sb.label, b.w.BodyFont, b.w.EntryTitleSize, b.w.Palette.Heading, true, false)),
			b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Normal, Line: b.w.LineSpacing}},
				b.run(sb.line, b.w.BodyFont, b.w.BodySize, b.w.Palette.Body, false, false)),
		)
	}
}

func (b *builder) software(list []types.Skill) {
	if len(list) == 0 {
		return
	}
	b.add(b.sectionHeading("Software"))
	for _, s := range list {
		b.add(b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Tight}},
			b.run(s.Name, b.w.BodyFont, b.w.BodySize, b.w.Palette.Body, false, false)))
	}
}

func (b *builder) certifications(certs []types.Certification) {
	if len(certs) == 0 {
		return
	}
	rows := make([]tableRow, 0, len(certs))
	for _, c := range certs {
		right := []paragraph{
			b.entryTitle(c.Name),
			b.subtitle(c.Issuer),
		}
		if types.HasContent(c.ExpiryDate) {
			right = append(right, b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Tight}},
				b.run("Expires: "+c.ExpiryDate, b.w.BodyFont, b.w.DateSize, b.w.Palette.Date, false, true)))
		}
		rows = append(rows, b.dateRow(c.Date, right))
	}
	b.add(b.sectionHeading("Certifications"), b.dateTable(rows))
}

func (b *builder) entryTitle(s string) paragraph {
	return b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Tight}},
		b.run(s, b.w.BodyFont, b.w.EntryTitleSize, b.w.Palette.Heading, true, false))
}

func (b *builder) subtitle(s string) paragraph {
	return b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Normal}},
		b.run(s, b.w.BodyFont, b.w.BodySize, b.w.Palette.Muted, false, true))
}

// bullets renders non-blank details as paragraphs led by a literal marker run
func (b *builder) bullets(details []string) []paragraph {
	kept := types.FilterBlank(details)
	out := make([]paragraph, 0, len(kept))
	for _, d := range kept {
		out = append(out, b.para(
			&paraProps{
				Spacing: &spacing{After: b.w.Spacing.Tight, Line: b.w.LineSpacing},
				Indent:  &indent{Left: b.w.Spacing.Indent},
			},
			b.run(bulletMarker, b.w.BodyFont, b.w.MarkerSize, b.w.Palette.Body, false, false),
			b.run(d, b.w.BodyFont, b.w.BodySize, b.w.Palette.Body, false, false),
		))
	}
	return out
}

// dateRow is one entry of a date-left table: a narrow date cell and a wide
// detail cell.
func (b *builder) dateRow(date string, right []paragraph) tableRow {
	left := b.para(&paraProps{Spacing: &spacing{After: b.w.Spacing.Tight}},
		b.run(date, b.w.BodyFont, b.w.DateSize, b.w.Palette.Date, false, false))
	return tableRow{Cells: []tableCell{
		{Props: cellProps{Width: width{W: dateColumn, Type: "dxa"}}, Paragraphs: []paragraph{left}},
		{Props: cellProps{Width: width{W: detailColumn, Type: "dxa"}}, Paragraphs: right},
	}}
}

func (b *builder) dateTable(rows []tableRow) table {
	none := border{Val: "none", Color: "auto"}
	return table{
		Props: tableProps{
			Width:   width{W: contentWidth, Type: "dxa"},
			Borders: tableBorders{Top: none, Left: none, Bottom: none, Right: none, InsideH: none, InsideV: none},
			Layout:  layoutType{Type: "fixed"},
		},
		Grid: tableGrid{Cols: []gridCol{{W: dateColumn}, {W: detailColumn}}},
		Rows: rows,
	}
}

func (b *builder) para(props *paraProps, runs ...run) paragraph {
	return paragraph{Props: props, Runs: runs}
}

func (b *builder) run(s, font string, size int, color string, bold, italic bool) run {
	props := &runProps{
		Fonts: &fonts{ASCII: font, HAnsi: font, CS: font},
		Color: &val{color},
		Size:  &val{strconv.Itoa(size)},
	}
	if bold {
		props.Bold = &flag{}
	}
	if italic {
		props.Italic = &flag{}
	}
	return run{Props: props, Text: newText(s)}
}
