package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/profile"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	normal = profile.For(types.ModeNormal)
	ats    = profile.For(types.ModeATS)
)

// paragraphs returns the text of every paragraph in word/document.xml, in
// document order, table cells included.
func paragraphs(t *testing.T, data []byte) []string {
	t.Helper()
	raw := part(t, data, "word/document.xml")

	dec := xml.NewDecoder(bytes.NewReader(raw))
	var out []string
	var cur strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "p" {
				cur.Reset()
			}
			inText = el.Name.Local == "t"
		case xml.EndElement:
			if el.Name.Local == "p" {
				out = append(out, cur.String())
			}
			inText = false
		case xml.CharData:
			if inText {
				cur.Write(el)
			}
		}
	}
	return out
}

func part(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return b
	}
	t.Fatalf("part %s not found", name)
	return nil
}

func export(t *testing.T, r *types.ResumeData, p profile.Profile) []byte {
	t.Helper()
	data, err := Export(r, p)
	require.NoError(t, err)
	return data
}

func sample(t *testing.T) *types.ResumeData {
	t.Helper()
	r, err := types.Sample("midlevel")
	require.NoError(t, err)
	return r
}

func TestExport_Deterministic(t *testing.T) {
	for _, p := range []profile.Profile{normal, ats} {
		first := export(t, sample(t), p)
		second := export(t, sample(t), p)
		assert.True(t, bytes.Equal(first, second), p.Mode.String())
	}
}

func TestExport_PackageParts(t *testing.T) {
	data := export(t, sample(t), normal)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.Equal(t, epoch.Year(), f.Modified.Year())
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/_rels/document.xml.rels",
	}, names)

	assert.Contains(t, string(part(t, data, "word/styles.xml")), `w:ascii="Inter"`)
	assert.Contains(t, string(part(t, export(t, sample(t), ats), "word/styles.xml")), `w:ascii="Times New Roman"`)
}

func TestExport_MinimalResumeIsHeaderOnly(t *testing.T) {
	for _, p := range []profile.Profile{normal, ats} {
		got := paragraphs(t, export(t, types.Empty(), p))
		assert.Equal(t, []string{"YOUR NAME", "Professional Title"}, got, p.Mode.String())
	}
}

func TestExport_CurrentJob(t *testing.T) {
	r := types.Empty()
	r.PersonalInfo.FullName = "Ada Lovelace"
	r.WorkExperience = []types.WorkExperience{{
		ID:               "w1",
		Role:             "Engineer",
		Company:          "Acme",
		StartDate:        "2022-01",
		EndDate:          "",
		Current:          true,
		Responsibilities: []string{"Built X", "  ", "Shipped Y"},
	}}

	for _, p := range []profile.Profile{normal, ats} {
		got := paragraphs(t, export(t, r, p))
		assert.Contains(t, got, "2022-01 - Present")

		var bullets []string
		for _, line := range got {
			if strings.HasPrefix(line, bulletMarker) {
				bullets = append(bullets, strings.TrimPrefix(line, bulletMarker))
			}
		}
		assert.Equal(t, []string{"Built X", "Shipped Y"}, bullets)
	}
}

func TestExport_CurrentJobIgnoresStaleEndDate(t *testing.T) {
	r := types.Empty()
	r.WorkExperience = []types.WorkExperience{{
		ID:               "w1",
		Role:             "Engineer",
		Company:          "Acme",
		StartDate:        "2022-01",
		EndDate:          "2023-06",
		Current:          true,
		Responsibilities: []string{"Built X"},
	}}

	for _, p := range []profile.Profile{normal, ats} {
		data := export(t, r, p)
		assert.Contains(t, paragraphs(t, data), "2022-01 - Present", p.Mode.String())

		doc := string(part(t, data, "word/document.xml"))
		assert.Contains(t, doc, "2022-01 - Present")
		assert.NotContains(t, doc, "2023-06")
	}
}

func TestExport_SoftwareSectionFollowsMode(t *testing.T) {
	r := types.Empty()
	r.Skills = []types.Skill{
		{ID: "1", Name: "React", Type: types.SkillHard},
		{ID: "2", Name: "Excel", Type: types.SkillHard},
		{ID: "3", Name: "Forecasting", Type: types.SkillHard},
		{ID: "4", Name: "Leadership", Type: types.SkillSoft},
	}

	n := paragraphs(t, export(t, r, normal))
	assert.Contains(t, n, "SOFTWARE")
	assert.Contains(t, n, "React")
	assert.Contains(t, n, "Excel")
	assert.Contains(t, n, "Forecasting")
	assert.Contains(t, n, "Leadership")

	a := paragraphs(t, export(t, r, ats))
	assert.NotContains(t, a, "SOFTWARE")
	assert.Contains(t, a, "Technical Skills")
	assert.Contains(t, a, "React, Excel, Forecasting")
}

func TestExport_ContactLineOmitsMissingFields(t *testing.T) {
	r := types.Empty()
	r.PersonalInfo = types.PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
	}

	for _, p := range []profile.Profile{normal, ats} {
		got := paragraphs(t, export(t, r, p))
		assert.Contains(t, got, "Phone: 555-0100   Email: ada@example.com")
		joined := strings.Join(got, "\n")
		assert.NotContains(t, joined, "LinkedIn")
		assert.NotContains(t, joined, "Website")
		assert.NotContains(t, joined, "Location")
	}

	r.PersonalInfo.LinkedIn = "linkedin.com/in/ada"
	r.PersonalInfo.Website = "ada.dev"
	got := paragraphs(t, export(t, r, normal))
	assert.Contains(t, got, "Phone: 555-0100   Email: ada@example.com   LinkedIn: linkedin.com/in/ada   Website: ada.dev")
}

func TestExport_DecorativeAwardOnlyInNormal(t *testing.T) {
	r := types.Empty()
	r.Education = []types.Education{{
		ID: "e1", School: "MIT", Degree: "BSc", Field: "Physics",
		StartDate: "2014-09", EndDate: "2018-06", GPA: "3.8",
	}}

	n := paragraphs(t, export(t, r, normal))
	assert.Contains(t, n, bulletMarker+"GPA: 3.8")
	assert.Contains(t, n, bulletMarker+"Academic Excellence Award")
	assert.Contains(t, n, "BSc in Physics")
	assert.Contains(t, n, "2014-09 - 2018-06")

	a := paragraphs(t, export(t, r, ats))
	assert.Contains(t, a, bulletMarker+"GPA: 3.8")
	assert.NotContains(t, strings.Join(a, "\n"), "Academic Excellence Award")
}

func TestExport_SectionOrder(t *testing.T) {
	r := sample(t)
	r.Certifications = []types.Certification{{ID: "c1", Name: "PMP", Issuer: "PMI", Date: "2020-01", ExpiryDate: "2026-01"}}

	got := paragraphs(t, export(t, r, normal))
	index := func(s string) int {
		for i, line := range got {
			if line == s {
				return i
			}
		}
		return -1
	}

	order := []string{"EXPERIENCE", "EDUCATION", "SKILLS", "CERTIFICATIONS"}
	last := -1
	for _, heading := range order {
		i := index(heading)
		require.NotEqual(t, -1, i, heading)
		assert.Greater(t, i, last, heading)
		last = i
	}
	assert.Contains(t, got, "Expires: 2026-01")
}

func TestExport_RulesFollowMode(t *testing.T) {
	n := string(part(t, export(t, sample(t), normal), "word/document.xml"))
	a := string(part(t, export(t, sample(t), ats), "word/document.xml"))

	assert.Contains(t, n, `<w:bottom w:val="single" w:sz="6" w:space="4" w:color="999999">`)
	assert.NotContains(t, a, `w:val="single"`)
	assert.NotContains(t, a, `w:color="4b5563"`)
}

func TestExport_NilResume(t *testing.T) {
	_, err := Export(nil, normal)
	require.Error(t, err)
	var pkgErr *PackagingError
	assert.ErrorAs(t, err, &pkgErr)
}
