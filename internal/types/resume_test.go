//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{name: "closed period", start: "2019-01", end: "2021-06", want: "2019-01 - 2021-06"},
		{name: "current ignores end", start: "2022-03", end: "2023-01", current: true, want: "2022-03 - Present"},
		{name: "values pass through", start: "Jan 2020", end: "", want: "Jan 2020 - "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestWorkExperience_Details(t *testing.T) {
	w := WorkExperience{Responsibilities: []string{"Led team", "   ", "", "  Shipped v2  "}}
	assert.Equal(t, []string{"Led team", "  Shipped v2  "}, w.Details())
	assert.Empty(t, WorkExperience{}.Details())
}

func TestEducation_Title(t *testing.T) {
	assert.Equal(t, "BSc in Computer Science", Education{Degree: "BSc", Field: "Computer Science"}.Title())
	assert.Equal(t, "BSc", Education{Degree: "BSc"}.Title())
	assert.Equal(t, "Physics", Education{Field: "Physics"}.Title())
	assert.Equal(t, "", Education{}.Title())
}

func TestHasContent(t *testing.T) {
	assert.False(t, HasContent(""))
	assert.False(t, HasContent(" \t\n"))
	assert.True(t, HasContent(" x "))
}

func TestSkillsOfType(t *testing.T) {
	r := &ResumeData{Skills: []Skill{
		{ID: "1", Name: "Go", Type: SkillHard},
		{ID: "2", Name: "Empathy", Type: SkillSoft},
		{ID: "3", Name: "SQL", Type: SkillHard},
	}}

	hard := r.SkillsOfType(SkillHard)
	require.Len(t, hard, 2)
	assert.Equal(t, "Go", hard[0].Name)
	assert.Equal(t, "SQL", hard[1].Name)
	assert.Len(t, r.SkillsOfType(SkillSoft), 1)
}

func TestClone_IsDeep(t *testing.T) {
	orig, err := Sample("midlevel")
	require.NoError(t, err)
	before, err := json.Marshal(orig)
	require.NoError(t, err)

	c := orig.Clone()
	c.PersonalInfo.FullName = "Someone Else"
	c.WorkExperience[0].Responsibilities[0] = "changed"
	c.Skills[0].Name = "changed"
	c.Hobbies = append(c.Hobbies, Hobby{ID: "new"})

	after, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))

	var nilResume *ResumeData
	assert.Nil(t, nilResume.Clone())
}

func TestEmpty(t *testing.T) {
	r := Empty()
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"education", "workExperience", "skills", "certifications", "languages", "hobbies"} {
		assert.Equal(t, []any{}, m[key], key)
	}
}

func TestParseExportMode(t *testing.T) {
	m, err := ParseExportMode("ats")
	require.NoError(t, err)
	assert.True(t, m.IsATS())

	m, err = ParseExportMode("normal")
	require.NoError(t, err)
	assert.False(t, m.IsATS())
	assert.Equal(t, "normal", m.String())

	for _, bad := range []string{"", "ATS", "plain"} {
		_, err := ParseExportMode(bad)
		assert.Error(t, err, bad)
	}
}

func TestSamples(t *testing.T) {
	names := SampleNames()
	assert.Equal(t, []string{"executive", "junior", "midlevel"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			r, err := Sample(name)
			require.NoError(t, err)
			assert.NotEmpty(t, r.PersonalInfo.FullName)
			assert.NoError(t, r.Validate())

			raw, err := SampleJSON(name)
			require.NoError(t, err)
			assert.True(t, json.Valid(raw))
		})
	}

	mid, err := Sample("midlevel")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", mid.PersonalInfo.FullName)

	senior, err := Sample("executive")
	require.NoError(t, err)
	assert.Equal(t, "Michael Rodriguez", senior.PersonalInfo.FullName)
	assert.Len(t, senior.WorkExperience, 4)
	assert.True(t, senior.WorkExperience[0].Current)
	assert.Empty(t, senior.Certifications[2].ExpiryDate)

	_, err = Sample("nobody")
	assert.ErrorContains(t, err, "executive, junior, midlevel")
}

func TestSample_ReturnsFreshCopy(t *testing.T) {
	a, err := Sample("junior")
	require.NoError(t, err)
	a.PersonalInfo.FullName = "mutated"

	b, err := Sample("junior")
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", b.PersonalInfo.FullName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		resume *ResumeData
		fields []string
	}{
		{
			name:   "empty resume is valid",
			resume: Empty(),
		},
		{
			name:   "nil resume",
			resume: nil,
			fields: []string{"(root)"},
		},
		{
			name: "bad email",
			resume: &ResumeData{PersonalInfo: PersonalInfo{Email: "not-an-email"}},
			fields: []string{"PersonalInfo.Email"},
		},
		{
			name: "duplicate ids",
			resume: &ResumeData{Skills: []Skill{
				{ID: "s", Name: "Go", Type: SkillHard},
				{ID: "s", Name: "Rust", Type: SkillHard},
			}},
			fields: []string{"Skills"},
		},
		{
			name:   "unknown skill type",
			resume: &ResumeData{Skills: []Skill{{ID: "s", Name: "Go", Type: "wizardry"}}},
			fields: []string{"Skills[0].Type"},
		},
		{
			name:   "unknown proficiency",
			resume: &ResumeData{Languages: []Language{{ID: "l", Name: "French", Proficiency: "fluent"}}},
			fields: []string{"Languages[0].Proficiency"},
		},
		{
			name:   "missing id",
			resume: &ResumeData{Hobbies: []Hobby{{Name: "Chess"}}},
			fields: []string{"Hobbies[0].ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resume.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			var got []string
			for _, fe := range verr.Errors {
				got = append(got, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tt.fields, got)
			assert.Contains(t, err.Error(), "invalid resume: ")
		})
	}
}

func TestEditHelpers(t *testing.T) {
	r := Empty()

	w := NewWorkExperience()
	_, err := uuid.Parse(w.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, w.Responsibilities)

	w2 := NewWorkExperience()
	assert.NotEqual(t, w.ID, w2.ID)

	r.WorkExperience = append(r.WorkExperience, w, w2)
	r.Education = append(r.Education, NewEducation())
	r.Skills = append(r.Skills, NewSkill("Go", SkillHard))
	r.Certifications = append(r.Certifications, NewCertification())
	r.Languages = append(r.Languages, NewLanguage("French", ProficiencyAdvanced))
	r.Hobbies = append(r.Hobbies, NewHobby("Chess"))
	require.NoError(t, r.Validate())

	r.RemoveWorkExperience(w.ID)
	require.Len(t, r.WorkExperience, 1)
	assert.Equal(t, w2.ID, r.WorkExperience[0].ID)

	r.RemoveWorkExperience("missing")
	assert.Len(t, r.WorkExperience, 1)

	r.RemoveEducation(r.Education[0].ID)
	r.RemoveSkill(r.Skills[0].ID)
	r.RemoveCertification(r.Certifications[0].ID)
	r.RemoveLanguage(r.Languages[0].ID)
	r.RemoveHobby(r.Hobbies[0].ID)
	assert.Empty(t, r.Education)
	assert.Empty(t, r.Skills)
	assert.Empty(t, r.Certifications)
	assert.Empty(t, r.Languages)
	assert.Empty(t, r.Hobbies)
}

func TestRemoveByID_DoesNotAliasInput(t *testing.T) {
	items := []Hobby{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out := removeByID(items, "a", func(h Hobby) string { return h.ID })

	assert.Equal(t, []Hobby{{ID: "b"}, {ID: "c"}}, out)
	assert.Equal(t, []Hobby{{ID: "a"}, {ID: "b"}, {ID: "c"}}, items)
}
