// Package document provides the rendered visual tree that templates produce
// and the HTML exporter consumes. Containers carry a closed set of semantic
// variants instead of free-form presentation hints.
package document

import "strings"

// Kind distinguishes text leaves from elements
type Kind int

const (
	// KindElement is a node with a role and children
	KindElement Kind = iota
	// KindText is a literal text leaf
	KindText
)

// Role is the structural role of an element
type Role int

// Element roles. RoleUnknown elements are transparent: their children still count.
const (
	RoleUnknown Role = iota
	RoleParagraph
	RoleHeading1
	RoleHeading2
	RoleHeading3
	RoleHeading4
	RoleList
	RoleListItem
	RoleContainer
	RoleSpan
	RoleStrong
	RoleImage
)

var roleNames = map[Role]string{
	RoleUnknown:   "unknown",
	RoleParagraph: "paragraph",
	RoleHeading1:  "heading1",
	RoleHeading2:  "heading2",
	RoleHeading3:  "heading3",
	RoleHeading4:  "heading4",
	RoleList:      "list",
	RoleListItem:  "list-item",
	RoleContainer: "container",
	RoleSpan:      "span",
	RoleStrong:    "strong",
	RoleImage:     "image",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// HeadingLevel returns 1-4 for heading roles and 0 otherwise
func (r Role) HeadingLevel() int {
	if r >= RoleHeading1 && r <= RoleHeading4 {
		return int(r-RoleHeading1) + 1
	}
	return 0
}

// Node is one node of a rendered tree
type Node struct {
	Kind     Kind
	Role     Role
	Text     string
	Hidden   bool
	Children []*Node

	// Container is set for RoleContainer elements
	Container Container
	// Image is set for RoleImage elements
	Image *ImageSpec
}

// ImageSize is the display size class of an image
type ImageSize int

// Image size classes
const (
	ImageDefault ImageSize = iota
	ImageMedium
	ImageLarge
)

// ImageSpec describes an image element
type ImageSpec struct {
	Src      string
	Alt      string
	Size     ImageSize
	Circular bool
}

// Text returns a text leaf
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Elem returns an element with the given role. Nil children are skipped so
// templates can include sections conditionally with When.
func Elem(role Role, children ...*Node) *Node {
	n := &Node{Kind: KindElement, Role: role}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Para returns a paragraph holding s
func Para(s string) *Node {
	return Elem(RoleParagraph, Text(s))
}

// Heading returns a heading of level 1-4 holding s. Levels are clamped.
func Heading(level int, s string) *Node {
	level = max(1, min(4, level))
	return Elem(RoleHeading1+Role(level-1), Text(s))
}

// List returns a list with one item per entry
func List(items ...string) *Node {
	n := Elem(RoleList)
	for _, it := range items {
		n.Children = append(n.Children, Elem(RoleListItem, Text(it)))
	}
	return n
}

// Span returns an inline span holding s
func Span(s string) *Node {
	return Elem(RoleSpan, Text(s))
}

// Bold returns an emphasis run holding s
func Bold(s string) *Node {
	return Elem(RoleStrong, Text(s))
}

// Image returns an image element
func Image(spec ImageSpec) *Node {
	return &Node{Kind: KindElement, Role: RoleImage, Image: &spec}
}

// Box returns a container of the given variant
func Box(c Container, children ...*Node) *Node {
	n := Elem(RoleContainer, children...)
	n.Container = c
	return n
}

// Block returns a plain container
func Block(children ...*Node) *Node {
	return Box(Container{Kind: ContainerPlain}, children...)
}

// When returns n if cond holds and nil otherwise
func When(cond bool, n func() *Node) *Node {
	if !cond {
		return nil
	}
	return n()
}

// Hide marks the node hidden and returns it
func (n *Node) Hide() *Node {
	n.Hidden = true
	return n
}

// Append adds non-nil children and returns the node
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Walk visits the tree depth-first. Returning false from fn skips the subtree.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// TextContent concatenates every visible text leaf of the tree
func TextContent(n *Node) string {
	var sb strings.Builder
	Walk(n, func(n *Node, _ int) bool {
		if n.Hidden {
			return false
		}
		if n.Kind == KindText {
			sb.WriteString(n.Text)
		}
		return true
	})
	return sb.String()
}

// Count returns the number of nodes matching pred, hidden subtrees included
func Count(n *Node, pred func(*Node) bool) int {
	total := 0
	Walk(n, func(n *Node, _ int) bool {
		if pred(n) {
			total++
		}
		return true
	})
	return total
}
