package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultRootSelector is the element id the builder's preview pane uses
const DefaultRootSelector = "#resume-preview"

// droppedTags never contribute content to a printable document
var droppedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"svg": true, "iframe": true, "link": true, "meta": true, "head": true,
}

var tagRoles = map[string]Role{
	"p": RoleParagraph, "h1": RoleHeading1, "h2": RoleHeading2, "h3": RoleHeading3,
	"h4": RoleHeading4, "ul": RoleList, "ol": RoleList, "li": RoleListItem,
	"div": RoleContainer, "section": RoleContainer, "header": RoleContainer,
	"main": RoleContainer, "aside": RoleContainer, "article": RoleContainer,
	"span": RoleSpan, "strong": RoleStrong, "b": RoleStrong, "img": RoleImage,
}

// containerHint maps a set of class tokens to a container variant. Order matters:
// the first rule whose tokens are all present wins.
type containerHint struct {
	classes   []string
	container Container
}

var containerHints = []containerHint{
	{[]string{"flex", "flex-col", "md:flex-row"}, Variant(ContainerTwoColumn)},
	{[]string{"w-full", "md:w-[35%]", "bg-slate-800"}, Variant(ContainerSidebar)},
	{[]string{"w-full", "md:w-[65%]", "bg-white"}, Variant(ContainerMainPane)},
	{[]string{"flex", "items-start"}, Variant(ContainerItemRow)},
	{[]string{"grid", "grid-cols-3"}, WeightedGrid(1, 2)},
	{[]string{"space-y-6"}, Variant(ContainerStack)},
	{[]string{"bg-purple-600", "text-white"}, Variant(ContainerBanner)},
	{[]string{"bg-purple-100"}, Variant(ContainerAccentCallout)},
	{[]string{"bg-teal-500"}, Container{Kind: ContainerBadge, Tone: ToneTeal}},
	{[]string{"bg-orange-500"}, Container{Kind: ContainerBadge, Tone: ToneOrange}},
	{[]string{"grid", "md:grid-cols-2"}, Grid(2)},
	{[]string{"flex", "flex-wrap"}, Variant(ContainerChips)},
}

// surfaceHints give plain containers a surface from their background class
var surfaceHints = []struct {
	class   string
	surface Surface
}{
	{"bg-slate-800", SurfaceDark},
	{"bg-purple-600", SurfaceBanner},
	{"text-white", SurfaceBanner},
	{"bg-purple-100", SurfaceAccent},
}

// FromHTML converts a saved preview snapshot into a rendered tree. The subtree
// matched by rootSelector is imported; when nothing matches, the whole body is.
// Presentation classes are resolved to container variants here, once.
func FromHTML(r io.Reader, rootSelector string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML snapshot: %w", err)
	}

	if rootSelector == "" {
		rootSelector = DefaultRootSelector
	}
	sel := doc.Find(rootSelector).First()
	if sel.Length() == 0 {
		sel = doc.Find("body").First()
	}
	if sel.Length() == 0 {
		return Block(), nil
	}

	root := convert(sel.Get(0))
	if root == nil {
		return Block(), nil
	}
	return root, nil
}

func convert(h *html.Node) *Node {
	switch h.Type {
	case html.TextNode:
		return Text(h.Data)
	case html.ElementNode:
	default:
		return nil
	}

	tag := strings.ToLower(h.Data)
	if droppedTags[tag] {
		return nil
	}

	s := goquery.NewDocumentFromNode(h).Selection
	classes := strings.Fields(s.AttrOr("class", ""))
	role, known := tagRoles[tag]
	if !known {
		role = RoleUnknown
	}

	if role == RoleImage {
		n := Image(imageSpec(s, classes))
		n.Hidden = isHidden(s, classes)
		return n
	}

	n := Elem(role)
	n.Hidden = isHidden(s, classes)
	if role == RoleContainer {
		n.Container = containerFor(classes)
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func containerFor(classes []string) Container {
	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		set[c] = true
	}
	for _, hint := range containerHints {
		if hasAll(set, hint.classes) {
			return hint.container
		}
	}
	c := Variant(ContainerPlain)
	for _, sh := range surfaceHints {
		if set[sh.class] {
			c.Surface = sh.surface
			break
		}
	}
	return c
}

func hasAll(set map[string]bool, classes []string) bool {
	for _, c := range classes {
		if !set[c] {
			return false
		}
	}
	return true
}

func isHidden(s *goquery.Selection, classes []string) bool {
	if _, ok := s.Attr("hidden"); ok {
		return true
	}
	for _, c := range classes {
		if c == "hidden" {
			return true
		}
	}
	style := strings.ReplaceAll(strings.ToLower(s.AttrOr("style", "")), " ", "")
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

func imageSpec(s *goquery.Selection, classes []string) ImageSpec {
	spec := ImageSpec{Src: s.AttrOr("src", ""), Alt: s.AttrOr("alt", "")}
	for _, c := range classes {
		switch c {
		case "rounded-full":
			spec.Circular = true
		case "w-32":
			spec.Size = ImageLarge
		case "w-20":
			if spec.Size != ImageLarge {
				spec.Size = ImageMedium
			}
		}
	}
	return spec
}
