package mdbox

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pkt.systems/mdbox/internal/palette"
)

// span is one run of output sharing a style. A zero style emits no
// attributes.
type span struct {
	style Style
	text  string
}

// renderer walks a laid-out tree row by row. Rendering never mutates the
// tree, so repeated renders of the same tree are byte identical.
type renderer struct {
	osc8 bool
}

// RenderTo writes the laid-out tree to w, one styled row per line.
func (b *Box) RenderTo(w io.Writer, opts ...RenderOption) error {
	var cfg renderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	r := renderer{osc8: cfg.osc8}
	if _, err := io.WriteString(w, r.document(b)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// String renders the laid-out tree with default options.
func (b *Box) String() string {
	r := renderer{}
	return r.document(b)
}

func (r *renderer) document(root *Box) string {
	var sb strings.Builder
	spans := make([]span, 0, 64)
	for line := 0; line < root.outerHeight(); line++ {
		spans = spans[:0]
		r.line(root, line, &spans)
		for _, sp := range spans {
			if prefix := sp.style.sgr(); prefix != "" {
				sb.WriteString(prefix)
				sb.WriteString(sp.text)
				sb.WriteString(palette.Reset)
			} else {
				sb.WriteString(sp.text)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// line renders one output row of a box into out and reports the column span
// the box occupies on that row. A box outside its vertical extent
// contributes nothing.
func (r *renderer) line(b *Box, line int, out *[]span) (start, width int) {
	if line < b.Size.Content.Y-b.Size.Border.Top ||
		line >= b.Size.Content.Y+b.Size.Content.H+b.Size.Border.Bottom {
		return 0, 0
	}
	if line < b.Size.Content.Y || line >= b.Size.Content.Y+b.Size.Content.H {
		return r.borderRow(b, line, out)
	}
	r.borderSide(b, true, out)
	pos := b.Size.Content.X
	switch b.Kind {
	case KindText:
		*out = append(*out, span{style: b.Style, text: b.Text})
		pos += runewidth.StringWidth(b.Text)
	case KindBreak:
		panic("mdbox: break marker reached the renderer")
	default:
		link := r.osc8 && b.Link != ""
		if link {
			*out = append(*out, span{text: osc8Start + b.Link + osc8Terminator})
		}
		for _, child := range b.Children {
			at := len(*out)
			childStart, childWidth := r.line(child, line, out)
			if childWidth == 0 {
				continue
			}
			if childStart > pos {
				r.pad(b, childStart-pos, at, out)
			}
			pos = childStart + childWidth
		}
		if link {
			*out = append(*out, span{text: osc8End})
		}
	}
	if tail := b.Size.Content.X + b.Size.Content.W - pos; tail > 0 {
		r.pad(b, tail, -1, out)
	}
	r.borderSide(b, false, out)
	return b.Size.Content.X - b.Size.Border.Left, b.outerWidth()
}

// borderRow renders a horizontal border band row: corner glyphs for the side
// borders, then the edge glyph across the content width.
func (r *renderer) borderRow(b *Box, line int, out *[]span) (start, width int) {
	isTop := line < b.Size.Content.Y
	edge := b.Style.Borders.Bottom
	if isTop {
		edge = b.Style.Borders.Top
	}
	var sb strings.Builder
	for i := 0; i < b.Size.Border.Left; i++ {
		if isTop {
			sb.WriteRune('┌')
		} else {
			sb.WriteRune('└')
		}
	}
	glyph := horizontalGlyph(edge)
	for i := 0; i < b.Size.Content.W; i++ {
		sb.WriteRune(glyph)
	}
	for i := 0; i < b.Size.Border.Right; i++ {
		if isTop {
			sb.WriteRune('┐')
		} else {
			sb.WriteRune('┘')
		}
	}
	*out = append(*out, span{style: b.Style, text: sb.String()})
	return b.Size.Content.X - b.Size.Border.Left, b.outerWidth()
}

// borderSide renders the left or right border column of a content row.
func (r *renderer) borderSide(b *Box, isLeft bool, out *[]span) {
	width := b.Size.Border.Right
	edge := b.Style.Borders.Right
	if isLeft {
		width = b.Size.Border.Left
		edge = b.Style.Borders.Left
	}
	if width == 0 {
		return
	}
	glyph := verticalGlyph(edge)
	*out = append(*out, span{style: b.Style, text: strings.Repeat(string(glyph), width)})
}

// pad emits n columns of space in the box's own style, inserted at position
// at when non-negative (gap padding goes before the child that exposed it).
func (r *renderer) pad(b *Box, n, at int, out *[]span) {
	sp := span{style: b.Style, text: strings.Repeat(" ", n)}
	if at < 0 || at >= len(*out) {
		*out = append(*out, sp)
		return
	}
	*out = append(*out, span{})
	copy((*out)[at+1:], (*out)[at:])
	(*out)[at] = sp
}

func horizontalGlyph(t BorderType) rune {
	switch t {
	case BorderDash:
		return '╌'
	case BorderThin:
		return '─'
	case BorderDouble:
		return '═'
	case BorderBold:
		return '━'
	default:
		return ' '
	}
}

func verticalGlyph(t BorderType) rune {
	switch t {
	case BorderDash:
		return '╎'
	case BorderThin:
		return '│'
	case BorderDouble:
		return '║'
	case BorderBold:
		return '┃'
	default:
		return ' '
	}
}
