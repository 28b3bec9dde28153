package docx

import (
	"encoding/xml"
	"strings"
)

// WordprocessingML element model. Only the subset the builder emits is modelled;
// prefixed names are written literally and the w namespace is declared once on
// the document root.

const nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type wordDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    body     `xml:"w:body"`
}

// block is a body-level element: a paragraph or a table
type block interface {
	isBlock()
}

type body struct {
	Blocks  []block
	Section sectionProps `xml:"w:sectPr"`
}

type sectionProps struct {
	Size   pageSize `xml:"w:pgSz"`
	Margin margins  `xml:"w:pgMar"`
}

type pageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type margins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
}

type paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *paraProps `xml:"w:pPr,omitempty"`
	Runs    []run      `xml:"w:r"`
}

func (paragraph) isBlock() {}

type paraProps struct {
	Border  *paraBorder `xml:"w:pBdr,omitempty"`
	Spacing *spacing    `xml:"w:spacing,omitempty"`
	Indent  *indent     `xml:"w:ind,omitempty"`
	Justify *val        `xml:"w:jc,omitempty"`
}

type val struct {
	Val string `xml:"w:val,attr"`
}

type spacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
	Line   int `xml:"w:line,attr,omitempty"`
}

type indent struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr,omitempty"`
}

type paraBorder struct {
	Bottom border `xml:"w:bottom"`
}

type border struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type run struct {
	Props *runProps `xml:"w:rPr,omitempty"`
	Text  text      `xml:"w:t"`
}

type runProps struct {
	Fonts  *fonts `xml:"w:rFonts,omitempty"`
	Bold   *flag  `xml:"w:b,omitempty"`
	Italic *flag  `xml:"w:i,omitempty"`
	Color  *val   `xml:"w:color,omitempty"`
	Size   *val   `xml:"w:sz,omitempty"`
}

// flag is an on/off property that is on by presence
type flag struct{}

type fonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

type text struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

func newText(s string) text {
	t := text{Value: s}
	if strings.TrimSpace(s) != s {
		t.Space = "preserve"
	}
	return t
}

type table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tableProps `xml:"w:tblPr"`
	Grid    tableGrid  `xml:"w:tblGrid"`
	Rows    []tableRow `xml:"w:tr"`
}

func (table) isBlock() {}

type tableProps struct {
	Width   width        `xml:"w:tblW"`
	Borders tableBorders `xml:"w:tblBorders"`
	Layout  layoutType   `xml:"w:tblLayout"`
}

type width struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type layoutType struct {
	Type string `xml:"w:type,attr"`
}

type tableBorders struct {
	Top     border `xml:"w:top"`
	Left    border `xml:"w:left"`
	Bottom  border `xml:"w:bottom"`
	Right   border `xml:"w:right"`
	InsideH border `xml:"w:insideH"`
	InsideV border `xml:"w:insideV"`
}

type tableGrid struct {
	Cols []gridCol `xml:"w:gridCol"`
}

type gridCol struct {
	W int `xml:"w:w,attr"`
}

type tableRow struct {
	Cells []tableCell `xml:"w:tc"`
}

type tableCell struct {
	Props      cellProps   `xml:"w:tcPr"`
	Paragraphs []paragraph `xml:"w:p"`
}

type cellProps struct {
	Width width `xml:"w:tcW"`
}
