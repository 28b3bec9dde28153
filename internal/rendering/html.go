package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/profile"
)

// walkContext is what a node inherits from its ancestors
type walkContext struct {
	surface document.Surface
	parent  document.ContainerKind
}

type exporter struct {
	p profile.Profile
}

// ExportHTML renders root into a complete, self-contained HTML document. Hidden
// subtrees are skipped, images follow the profile's image policy and every
// element is re-emitted as an inline-styled primitive. The output contains no
// scripts and no external references, and is identical for identical inputs.
// A nil or empty tree yields a valid empty document.
func ExportHTML(root *document.Node, p profile.Profile) (string, error) {
	e := &exporter{p: p}
	body := ""
	if root != nil {
		body = e.node(root, walkContext{surface: document.SurfaceLight})
	}
	return assemblePage(body, pageTitle(root), p)
}

func (e *exporter) node(n *document.Node, ctx walkContext) string {
	if n == nil || n.Hidden {
		return ""
	}
	if n.Kind == document.KindText {
		return EscapeHTML(n.Text)
	}
	if n.Role == document.RoleImage {
		return e.image(n.Image)
	}

	childCtx := ctx
	if n.Role == document.RoleContainer {
		if s := n.Container.SurfaceFor(); s != document.SurfaceInherit {
			childCtx.surface = s
		}
		childCtx.parent = n.Container.Kind
	}

	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(e.node(c, childCtx))
	}
	content := sb.String()
	if strings.TrimSpace(content) == "" {
		return ""
	}

	return e.wrap(n, ctx, content)
}

// wrap re-tags an element. ctx is the element's own context, so colours come
// from the surface of its nearest painted ancestor.
func (e *exporter) wrap(n *document.Node, ctx walkContext, content string) string {
	h := e.p.HTML
	color := textColor(n.Role, ctx.surface, e.p)

	switch n.Role {
	case document.RoleHeading1, document.RoleHeading2, document.RoleHeading3, document.RoleHeading4:
		level := n.Role.HeadingLevel()
		style := fmt.Sprintf("font-size: %dpx; color: %s; %s", h.HeadingSizes[level-1], color, headingMargin(level))
		class := ""
		if level == 3 {
			class = ` class="section-title"`
			style += fmt.Sprintf("; border-bottom: 1px solid %s; padding-bottom: 4px", ruleColor(ctx.surface, e.p))
			if h.Uppercase {
				style += "; text-transform: uppercase"
			}
		}
		return fmt.Sprintf(`<h%d%s style="%s">%s</h%d>`, level, class, style, content, level)

	case document.RoleParagraph:
		return fmt.Sprintf(`<p style="font-size: %dpx; line-height: %s; margin: 8px 0; color: %s">%s</p>`,
			h.TextSize, h.LineHeight, color, content)

	case document.RoleList:
		return fmt.Sprintf(`<ul style="margin: 8px 0; padding-left: 20px">%s</ul>`, content)

	case document.RoleListItem:
		return fmt.Sprintf(`<li style="font-size: %dpx; line-height: 1.4; margin: 4px 0; color: %s">%s</li>`,
			h.TextSize, color, content)

	case document.RoleSpan:
		if ctx.parent == document.ContainerChips {
			return fmt.Sprintf(`<span class="chip" style="color: %s">%s</span>`, color, content)
		}
		return fmt.Sprintf(`<span style="color: %s">%s</span>`, color, content)

	case document.RoleStrong:
		return fmt.Sprintf(`<strong style="color: %s">%s</strong>`, color, content)

	case document.RoleContainer:
		class := ""
		if name := containerClass(n.Container.Kind); name != "" {
			class = fmt.Sprintf(` class="%s"`, name)
		}
		return fmt.Sprintf(`<div%s style="%s">%s</div>`, class, containerStyle(n.Container, e.p), content)

	default:
		return content
	}
}

func headingMargin(level int) string {
	switch level {
	case 1:
		return "margin: 0 0 8px 0; font-weight: bold"
	case 2:
		return "margin: 0 0 12px 0; font-weight: normal"
	case 3:
		return "margin: 16px 0 8px 0; font-weight: bold"
	default:
		return "margin: 8px 0 4px 0; font-weight: bold"
	}
}

// image applies the image policy: nothing without IncludeImages, and only
// inline data sources, so a missing remote file never prints as a broken box.
func (e *exporter) image(spec *document.ImageSpec) string {
	if !e.p.IncludeImages || spec == nil {
		return ""
	}
	if !strings.HasPrefix(spec.Src, "data:image") {
		return ""
	}

	var style string
	switch spec.Size {
	case document.ImageLarge:
		style = "width: 128px; height: 128px"
	case document.ImageMedium:
		style = "width: 80px; height: 80px"
	default:
		style = "max-width: 150px; max-height: 150px"
	}
	if spec.Circular {
		style += "; border-radius: 50%"
	}
	style += "; object-fit: cover; border: 2px solid #d1d5db; display: block; margin: 0 auto"

	alt := spec.Alt
	if alt == "" {
		alt = "Profile Picture"
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" style="%s">`, EscapeHTML(spec.Src), EscapeHTML(alt), style)
}

// pageTitle is the text of the first visible level-1 heading, or "Resume"
func pageTitle(root *document.Node) string {
	title := ""
	document.Walk(root, func(n *document.Node, _ int) bool {
		if title != "" || n.Hidden {
			return false
		}
		if n.Role == document.RoleHeading1 {
			title = strings.TrimSpace(document.TextContent(n))
			return false
		}
		return true
	})
	if title == "" {
		return "Resume"
	}
	return title
}
