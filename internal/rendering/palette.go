package rendering

import (
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/profile"
)

// ink is the colour set text uses on one surface
type ink struct {
	Heading string
	Body    string
	// Emphasis colours level-4 headings and strong text
	Emphasis string
	// Rule is the contrast partner drawn under level-3 headings
	Rule string
}

var surfaceInks = map[document.Surface]ink{
	document.SurfaceLight:  {Heading: "#000000", Body: "#000000", Emphasis: "#000000", Rule: "#1f2937"},
	document.SurfaceDark:   {Heading: "#ffffff", Body: "#e2e8f0", Emphasis: "#ffffff", Rule: "#94a3b8"},
	document.SurfaceBanner: {Heading: "#ffffff", Body: "#ffffff", Emphasis: "#ffffff", Rule: "#e9d5ff"},
	document.SurfaceAccent: {Heading: "#000000", Body: "#6b21a8", Emphasis: "#7c3aed", Rule: "#000000"},
}

var monochromeInk = ink{Heading: "#000000", Body: "#000000", Emphasis: "#000000", Rule: "#000000"}

// inkFor returns the colours for a surface. SurfaceInherit at the root means
// the page itself, which is light.
func inkFor(surface document.Surface, p profile.Profile) ink {
	if p.Monochrome {
		return monochromeInk
	}
	if in, ok := surfaceInks[surface]; ok {
		if surface == document.SurfaceLight {
			in.Rule = p.HTML.RuleColor
		}
		return in
	}
	return inkFor(document.SurfaceLight, p)
}

// textColor is the one colour rule every text-bearing role goes through
func textColor(role document.Role, surface document.Surface, p profile.Profile) string {
	in := inkFor(surface, p)
	switch {
	case role.HeadingLevel() == 4 || role == document.RoleStrong:
		return in.Emphasis
	case role.HeadingLevel() > 0:
		return in.Heading
	}
	return in.Body
}

// ruleColor is the underline colour of level-3 headings on a surface
func ruleColor(surface document.Surface, p profile.Profile) string {
	return inkFor(surface, p).Rule
}
