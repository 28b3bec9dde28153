package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/profile"
)

// containerStyle returns the inline style of a container variant. Layout
// declarations always apply; paint (fills, borders, colour) is dropped for
// monochrome profiles.
func containerStyle(c document.Container, p profile.Profile) string {
	layout, paint := containerDecls(c, p)
	if p.Monochrome || paint == "" {
		return layout
	}
	return layout + "; " + paint
}

func containerDecls(c document.Container, p profile.Profile) (layout, paint string) {
	switch c.Kind {
	case document.ContainerTwoColumn:
		return "display: flex; flex-direction: row; width: 100%", ""
	case document.ContainerSidebar:
		return "width: 35%; padding: 1.5rem; box-sizing: border-box",
			"background-color: #1e293b; color: #ffffff"
	case document.ContainerMainPane:
		return "width: 65%; padding: 1.5rem; box-sizing: border-box",
			"background-color: #ffffff; color: #000000"
	case document.ContainerItemRow:
		return "display: flex; align-items: flex-start; justify-content: space-between; gap: 20px; margin: 10px 0", ""
	case document.ContainerGrid:
		return fmt.Sprintf("display: grid; grid-template-columns: %s; gap: 20px; margin: 10px 0", gridColumns(c)), ""
	case document.ContainerStack:
		return fmt.Sprintf("margin-bottom: %dpx", p.HTML.SectionGap), ""
	case document.ContainerBanner:
		return "padding: 4rem 2rem; text-align: center",
			"background-color: #9333ea; color: #ffffff"
	case document.ContainerAccentCallout:
		return "padding: 1.5rem; margin: 1rem 0",
			"background-color: #f3e8ff; border-radius: 8px; border-left: 4px solid #9333ea"
	case document.ContainerBadge:
		return "display: inline-flex; align-items: center; justify-content: center; width: 2rem; height: 2rem; flex-shrink: 0",
			"border-radius: 50%; color: #ffffff; background-color: " + badgeFill(c.Tone)
	case document.ContainerChips:
		return fmt.Sprintf("margin: %dpx 0", p.HTML.ChipGap), ""
	default:
		return "margin: 10px 0", ""
	}
}

func gridColumns(c document.Container) string {
	if len(c.Ratio) > 0 {
		parts := make([]string, len(c.Ratio))
		for i, w := range c.Ratio {
			parts[i] = fmt.Sprintf("%dfr", max(w, 1))
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf("repeat(%d, 1fr)", max(c.Columns, 1))
}

func badgeFill(t document.BadgeTone) string {
	if t == document.ToneOrange {
		return "#f97316"
	}
	return "#14b8a6"
}

// containerClass names the page-stylesheet primitive a variant maps to, if any
func containerClass(k document.ContainerKind) string {
	switch k {
	case document.ContainerTwoColumn:
		return "two-column"
	case document.ContainerChips:
		return "chips"
	default:
		return ""
	}
}
