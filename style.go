package mdbox

import (
	"strings"

	"pkt.systems/mdbox/internal/palette"
)

// Align is the horizontal text alignment of a box. Only AlignLeft is
// currently produced by the builder; the other values are part of the model.
type Align uint8

// Alignment values.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// BorderType selects the glyph set used to draw a border edge.
type BorderType uint8

// Border glyph sets.
const (
	BorderEmpty BorderType = iota
	BorderDash
	BorderThin
	BorderDouble
	BorderBold
)

// BorderTypes carries one border type per box edge.
type BorderTypes struct {
	Top    BorderType
	Bottom BorderType
	Left   BorderType
	Right  BorderType
}

// uniformBorders returns BorderTypes with the same type on every edge.
func uniformBorders(t BorderType) BorderTypes {
	return BorderTypes{Top: t, Bottom: t, Left: t, Right: t}
}

// Style describes the visual attributes of a box.
type Style struct {
	Bg            Color
	Fg            Color
	Bold          bool
	Underline     bool
	Strikethrough bool
	Italic        bool
	Code          bool
	Extend        bool
	Align         Align
	Borders       BorderTypes
}

// sgr encodes the style as an ANSI attribute prefix. The zero style encodes
// to the empty string, meaning no attributes are emitted.
func (s Style) sgr() string {
	var b strings.Builder
	if idx, ok := s.Fg.Index(); ok {
		b.WriteString(palette.Fg(idx))
	}
	if idx, ok := s.Bg.Index(); ok {
		b.WriteString(palette.Bg(idx))
	}
	if s.Bold {
		b.WriteString(palette.Bold)
	}
	if s.Underline {
		b.WriteString(palette.Underline)
	}
	if s.Strikethrough {
		b.WriteString(palette.Strikethrough)
	}
	if s.Italic {
		b.WriteString(palette.Italic)
	}
	return b.String()
}
