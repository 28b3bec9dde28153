// Package profile provides the export style profile shared by the HTML and the
// word-processor exporters. A profile is built once from the export mode and
// carries every mode-dependent decision, so the two exporters cannot drift apart.
package profile

import "github.com/jonathan/resume-builder/internal/types"

// Profile is the complete set of mode-dependent export settings
type Profile struct {
	Mode types.ExportMode

	// IncludeImages keeps inline profile pictures in the printable document
	IncludeImages bool
	// IncludeDecorative keeps filler content with no data-model backing
	IncludeDecorative bool
	// ShowRules draws visible divider rules under section headings
	ShowRules bool
	// SoftwareSection splits known tools out of Technical Skills into their own section
	SoftwareSection bool
	// Monochrome forces black text and drops coloured surfaces
	Monochrome bool

	HTML HTMLStyle
	Word WordStyle
}

// HTMLStyle holds the printable-document typography. Sizes are CSS pixels.
type HTMLStyle struct {
	FontFamily   string
	BodySize     int
	LineHeight   string
	PageMargin   string
	HeadingSizes [4]int
	TextSize     int
	SmallSize    int
	HeaderAlign  string
	SectionGap   int
	TitleSize    int
	Uppercase    bool
	ItemGap      int
	ChipGap      int
	MutedColor   string
	RuleColor    string
}

// WordStyle holds the word-processor typography. Sizes are half-points,
// spacings and indents are twentieths of a point.
type WordStyle struct {
	BodyFont    string
	DisplayFont string
	LineSpacing int

	NameSize       int
	TitleSize      int
	HeadingSize    int
	EntryTitleSize int
	BodySize       int
	MarkerSize     int
	DateSize       int

	Palette Palette
	Spacing Spacing
}

// Palette is a set of hex colours without the leading '#'
type Palette struct {
	Heading string
	Body    string
	Date    string
	Muted   string
	Rule    string
}

// Spacing is the paragraph spacing scale
type Spacing struct {
	Tight  int
	Normal int
	Loose  int
	Wide   int
	Indent int
}

// For returns the profile of the given mode. Any value other than ModeATS is
// treated as normal; mode validation happens at the caller boundary.
func For(mode types.ExportMode) Profile {
	if mode.IsATS() {
		return ats()
	}
	return normal()
}

func normal() Profile {
	return Profile{
		Mode:              types.ModeNormal,
		IncludeImages:     true,
		IncludeDecorative: true,
		ShowRules:         true,
		SoftwareSection:   true,
		HTML: HTMLStyle{
			FontFamily:   "Arial, sans-serif",
			BodySize:     14,
			LineHeight:   "1.5",
			PageMargin:   "0.5in",
			HeadingSizes: [4]int{24, 20, 18, 16},
			TextSize:     14,
			SmallSize:    12,
			HeaderAlign:  "center",
			SectionGap:   20,
			TitleSize:    18,
			ItemGap:      15,
			ChipGap:      5,
			MutedColor:   "#4b5563",
			RuleColor:    "#1f2937",
		},
		Word: WordStyle{
			BodyFont:       "Inter",
			DisplayFont:    "Playfair Display",
			LineSpacing:    360,
			NameSize:       36,
			TitleSize:      28,
			HeadingSize:    28,
			EntryTitleSize: 24,
			BodySize:       22,
			MarkerSize:     20,
			DateSize:       18,
			Palette: Palette{
				Heading: "1f2937",
				Body:    "4b5563",
				Date:    "666666",
				Muted:   "6b7280",
				Rule:    "999999",
			},
			Spacing: Spacing{Tight: 50, Normal: 100, Loose: 200, Wide: 300, Indent: 200},
		},
	}
}

func ats() Profile {
	return Profile{
		Mode:       types.ModeATS,
		Monochrome: true,
		HTML: HTMLStyle{
			FontFamily:   "Times New Roman, serif",
			BodySize:     12,
			LineHeight:   "1.4",
			PageMargin:   "0.75in",
			HeadingSizes: [4]int{20, 17, 15, 13},
			TextSize:     12,
			SmallSize:    11,
			HeaderAlign:  "left",
			SectionGap:   12,
			TitleSize:    14,
			Uppercase:    true,
			ItemGap:      10,
			ChipGap:      3,
			MutedColor:   "#000000",
			RuleColor:    "#000000",
		},
		Word: WordStyle{
			BodyFont:       "Times New Roman",
			DisplayFont:    "Times New Roman",
			LineSpacing:    280,
			NameSize:       32,
			TitleSize:      24,
			HeadingSize:    26,
			EntryTitleSize: 22,
			BodySize:       20,
			MarkerSize:     18,
			DateSize:       16,
			Palette: Palette{
				Heading: "000000",
				Body:    "000000",
				Date:    "000000",
				Muted:   "000000",
				Rule:    "000000",
			},
			Spacing: Spacing{Tight: 40, Normal: 80, Loose: 150, Wide: 200, Indent: 180},
		},
	}
}
