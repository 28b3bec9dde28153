package document

// Surface is the visual context text is drawn on
type Surface int

// Surfaces. SurfaceInherit keeps the enclosing surface.
const (
	SurfaceInherit Surface = iota
	SurfaceLight
	SurfaceDark
	SurfaceBanner
	SurfaceAccent
)

func (s Surface) String() string {
	switch s {
	case SurfaceLight:
		return "light"
	case SurfaceDark:
		return "dark"
	case SurfaceBanner:
		return "banner"
	case SurfaceAccent:
		return "accent"
	default:
		return "inherit"
	}
}

// ContainerKind is the closed set of layout variants a template can emit
type ContainerKind int

// Container variants
const (
	// ContainerPlain is a block with vertical margin only
	ContainerPlain ContainerKind = iota
	// ContainerStack groups sections with a bottom gap
	ContainerStack
	// ContainerTwoColumn is the responsive sidebar + main wrapper
	ContainerTwoColumn
	// ContainerSidebar is the fixed-width dark side column
	ContainerSidebar
	// ContainerMainPane is the fixed-width light content column
	ContainerMainPane
	// ContainerItemRow lays its children out in a top-aligned row
	ContainerItemRow
	// ContainerGrid lays its children out in Columns columns
	ContainerGrid
	// ContainerBanner is the accent-filled header band
	ContainerBanner
	// ContainerAccentCallout is a light accent box with a coloured edge
	ContainerAccentCallout
	// ContainerBadge is a small circular icon badge
	ContainerBadge
	// ContainerChips is a wrapping row of skill chips
	ContainerChips
)

var containerNames = map[ContainerKind]string{
	ContainerPlain:         "plain",
	ContainerStack:         "stack",
	ContainerTwoColumn:     "two-column",
	ContainerSidebar:       "sidebar",
	ContainerMainPane:      "main-pane",
	ContainerItemRow:       "item-row",
	ContainerGrid:          "grid",
	ContainerBanner:        "banner",
	ContainerAccentCallout: "accent-callout",
	ContainerBadge:         "badge",
	ContainerChips:         "chips",
}

func (k ContainerKind) String() string {
	if name, ok := containerNames[k]; ok {
		return name
	}
	return "plain"
}

// BadgeTone is the fill colour of a badge
type BadgeTone int

// Badge tones
const (
	ToneTeal BadgeTone = iota
	ToneOrange
)

// Container describes a container element
type Container struct {
	Kind ContainerKind
	// Columns is the column count of a grid
	Columns int
	// Ratio optionally weights grid columns, e.g. {1, 2}
	Ratio []int
	// Tone is the badge fill
	Tone BadgeTone
	// Surface overrides the surface the variant implies
	Surface Surface
}

// SurfaceFor returns the surface descendants of this container are drawn on.
// SurfaceInherit means the enclosing surface still applies.
func (c Container) SurfaceFor() Surface {
	if c.Surface != SurfaceInherit {
		return c.Surface
	}
	switch c.Kind {
	case ContainerSidebar:
		return SurfaceDark
	case ContainerMainPane:
		return SurfaceLight
	case ContainerBanner, ContainerBadge:
		return SurfaceBanner
	case ContainerAccentCallout:
		return SurfaceAccent
	default:
		return SurfaceInherit
	}
}

// Grid returns a grid container with n equal columns
func Grid(n int) Container {
	return Container{Kind: ContainerGrid, Columns: n}
}

// WeightedGrid returns a grid container whose columns follow ratio
func WeightedGrid(ratio ...int) Container {
	return Container{Kind: ContainerGrid, Columns: len(ratio), Ratio: ratio}
}

// Variant returns a container of kind k with no further options
func Variant(k ContainerKind) Container {
	return Container{Kind: k}
}
