package templates

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

func loadSample(t *testing.T, name string) *types.ResumeData {
	t.Helper()
	r, err := types.Sample(name)
	require.NoError(t, err)
	return r
}

func TestBuiltin_ListsEveryTemplate(t *testing.T) {
	infos := Builtin().List()
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{
		"corporate",
		"creative-infographic",
		"creative-portfolio",
		"elegant-sidebar",
		"minimalist",
		"modern-tech",
		"valera-classic",
	}, ids)
}

func TestRegistry_UnknownTemplate(t *testing.T) {
	_, err := Builtin().Render("nope", types.Empty())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistry_DefaultExists(t *testing.T) {
	_, err := Builtin().Get(DefaultID)
	require.NoError(t, err)
}

func TestTemplates_EmptyResumeOmitsSections(t *testing.T) {
	reg := Builtin()
	for _, info := range reg.List() {
		t.Run(info.ID, func(t *testing.T) {
			root, err := reg.Render(info.ID, types.Empty())
			require.NoError(t, err)

			text := document.TextContent(root)
			for _, heading := range []string{"Experience", "EXPERIENCE", "Education", "EDUCATION", "Certifications", "CERTIFICATIONS"} {
				assert.NotContains(t, text, heading)
			}
			assert.Zero(t, document.Count(root, func(n *document.Node) bool { return n.Role == document.RoleImage }))
			assert.Zero(t, document.Count(root, func(n *document.Node) bool { return n.Role == document.RoleList }))
		})
	}
}

func TestTemplates_CurrentJobShowsPresent(t *testing.T) {
	data := types.Empty()
	data.PersonalInfo.FullName = "Ada Lovelace"
	data.WorkExperience = []types.WorkExperience{{
		ID:               "w1",
		Role:             "Engineer",
		Company:          "Analytical Engines",
		StartDate:        "2022-01",
		EndDate:          "2023-01",
		Current:          true,
		Responsibilities: []string{"Built things", "   ", "Shipped things"},
	}}

	reg := Builtin()
	for _, info := range reg.List() {
		t.Run(info.ID, func(t *testing.T) {
			root, err := reg.Render(info.ID, data)
			require.NoError(t, err)

			text := document.TextContent(root)
			assert.Contains(t, text, "Ada Lovelace")
			assert.Contains(t, text, "2022-01 - Present")
			assert.NotContains(t, text, "2023-01")
			assert.Equal(t, 2, document.Count(root, func(n *document.Node) bool { return n.Role == document.RoleListItem }))
		})
	}
}

func TestTemplates_DoNotMutateInput(t *testing.T) {
	data := loadSample(t, "midlevel")
	before, err := json.Marshal(data)
	require.NoError(t, err)

	reg := Builtin()
	for _, info := range reg.List() {
		_, err := reg.Render(info.ID, data)
		require.NoError(t, err)
	}
	after, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestTemplates_PhotoOnlyWhenSet(t *testing.T) {
	tests := []struct {
		id        string
		wantPhoto bool
	}{
		{"elegant-sidebar", true},
		{"creative-infographic", true},
		{"creative-portfolio", true},
		{"minimalist", false},
		{"corporate", false},
	}

	data := loadSample(t, "junior")
	data.PersonalInfo.ProfilePicture = "data:image/png;base64,AAAA"

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			root, err := Builtin().Render(tt.id, data)
			require.NoError(t, err)
			images := document.Count(root, func(n *document.Node) bool { return n.Role == document.RoleImage })
			if tt.wantPhoto {
				assert.Equal(t, 1, images)
			} else {
				assert.Zero(t, images)
			}
		})
	}
}

func TestElegantSidebar_UsesDarkSidebar(t *testing.T) {
	root, err := Builtin().Render("elegant-sidebar", loadSample(t, "midlevel"))
	require.NoError(t, err)

	require.Len(t, root.Children, 2)
	assert.Equal(t, document.ContainerTwoColumn, root.Container.Kind)
	assert.Equal(t, document.SurfaceDark, root.Children[0].Container.SurfaceFor())
	assert.Equal(t, document.SurfaceLight, root.Children[1].Container.SurfaceFor())
}

func TestCreativeInfographic_NumbersBadges(t *testing.T) {
	root, err := Builtin().Render("creative-infographic", loadSample(t, "midlevel"))
	require.NoError(t, err)

	var labels []string
	document.Walk(root, func(n *document.Node, _ int) bool {
		if n.Role == document.RoleContainer && n.Container.Kind == document.ContainerBadge {
			labels = append(labels, document.TextContent(n))
			return false
		}
		return true
	})
	require.NotEmpty(t, labels)
	for i, l := range labels {
		assert.Equal(t, strings.TrimSpace(l), string(rune('1'+i)))
	}
}

func TestValeraClassic_SeparatesSoftware(t *testing.T) {
	data := types.Empty()
	data.Skills = []types.Skill{
		{ID: "1", Name: "Python", Type: types.SkillHard},
		{ID: "2", Name: "Negotiation", Type: types.SkillHard},
		{ID: "3", Name: "Teamwork", Type: types.SkillSoft},
	}

	root, err := Builtin().Render("valera-classic", data)
	require.NoError(t, err)

	text := document.TextContent(root)
	assert.Contains(t, text, "SoftwarePython")
	assert.Contains(t, text, "SkillsNegotiation")
	assert.Contains(t, text, "Soft SkillsTeamwork")
}
