// Package skills provides the canonical skill classification shared by the
// exporters and the templates.
package skills

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// softwareNames is the fixed list of tool and technology names that make a
// hard skill count as software.
var softwareNames = []string{
	"JavaScript", "Python", "Java", "C++", "React", "Node.js", "Angular", "Vue.js",
	"SQL", "Excel", "PowerPoint", "Word", "Photoshop", "Illustrator", "Figma", "Sketch",
}

// IsSoftware reports whether the skill name contains a known tool name,
// case-insensitively. "React Native" and "JavaScript" both match.
func IsSoftware(name string) bool {
	lower := strings.ToLower(name)
	for _, tool := range softwareNames {
		if strings.Contains(lower, strings.ToLower(tool)) {
			return true
		}
	}
	return false
}

// Groups is a resume's skills split for display
type Groups struct {
	Technical []types.Skill
	Soft      []types.Skill
	Software  []types.Skill
}

// Partition splits skills into technical, soft and software groups, preserving
// insertion order. Only hard skills can be software. When separateSoftware is
// false, software stays in Technical and Software is empty.
func Partition(all []types.Skill, separateSoftware bool) Groups {
	var g Groups
	for _, s := range all {
		switch {
		case s.Type == types.SkillSoft:
			g.Soft = append(g.Soft, s)
		case separateSoftware && IsSoftware(s.Name):
			g.Software = append(g.Software, s)
		default:
			g.Technical = append(g.Technical, s)
		}
	}
	return g
}

// Names returns the skill names in order
func Names(list []types.Skill) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Name)
	}
	return out
}

// Join returns the skill names joined with ", "
func Join(list []types.Skill) string {
	return strings.Join(Names(list), ", ")
}
