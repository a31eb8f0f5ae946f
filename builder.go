package mdbox

import (
	"fmt"
	"strconv"
	"strings"
)

// builder turns the structural event stream into a document tree. The links
// and footnotes accumulators are built on the side and appended as the last
// two children of the root once the body is complete.
type builder struct {
	events    EventSource
	links     *Box
	footnotes *Box
	syntaxes  Syntaxes
	highlight Highlighter // active while inside a recognized code block
}

// Build consumes the event stream and returns the document tree rooted at a
// block whose content width is the column budget. The stream is trusted to be
// well nested; malformed nesting is a precondition violation.
func Build(events EventSource, width int, syntaxes Syntaxes) *Box {
	b := &builder{
		events:    events,
		links:     newBlock(),
		footnotes: newBlock(),
		syntaxes:  syntaxes,
	}
	root := newRoot(width)
	b.body(root)
	root.Children = append(root.Children, b.links, b.footnotes)
	return root
}

// body consumes events into parent until the enclosing construct ends or the
// stream is exhausted.
func (b *builder) body(parent *Box) {
	for {
		ev, ok := b.events.Next()
		if !ok {
			return
		}
		switch ev.Kind {
		case EventStart:
			b.start(parent, ev.Tag)
		case EventEnd:
			if b.end(parent, ev.Tag) {
				return
			}
		case EventText:
			b.text(parent, ev.Text)
		case EventRawMarkup, EventInlineRawMarkup:
			child := parent.addText(ev.Text)
			child.Style.Fg = LightColor(Red)
		case EventSoftBreak, EventHardBreak:
			parent.addBreak()
		case EventFootnoteReference:
			child := parent.addText(ev.Text)
			child.Style.Fg = DarkColor(Green)
			child.Style.Underline = true
		}
	}
}

func (b *builder) start(parent *Box, tag Tag) {
	switch tag.Kind {
	case TagParagraph:
		child := parent.addBlock()
		b.body(child)
		child.Size.Border.Bottom = 1
	case TagRule:
		child := parent.addBlock()
		child.Style.Extend = true
		child.Size.Border.Bottom = 1
		child.Style.Borders = uniformBorders(BorderThin)
		child.Style.Fg = DarkColor(Yellow)
	case TagHeading:
		child := parent.addHeader(tag.Level)
		child.Size.Border.Bottom = 1
		switch tag.Level {
		case 1:
			child.Size.Border.Top = 1
			child.Size.Border.Left = 1
			child.Size.Border.Right = 1
			child.Style.Borders = uniformBorders(BorderThin)
		case 2:
			child.Style.Borders = uniformBorders(BorderBold)
		case 3:
			child.Style.Borders = uniformBorders(BorderDouble)
		case 4:
			child.Style.Borders = uniformBorders(BorderThin)
		case 5:
			child.Style.Borders = uniformBorders(BorderDash)
		case 6:
		default:
			panic(fmt.Sprintf("mdbox: heading level %d out of range", tag.Level))
		}
		child.Style.Fg = DarkColor(Purple)
		b.body(child)
	case TagTable, TagTableHead, TagTableRow, TagTableCell:
		// Accepted but not modeled; cell content flows into the current parent.
	case TagBlockQuote:
		child := parent.addBlock()
		b.body(child)
		child.Size.Border.Left = 1
		child.Style.Borders = uniformBorders(BorderThin)
		child.Style.Fg = DarkColor(Cyan)
		spacer := parent.addBlock()
		spacer.addText("")
	case TagCodeBlock:
		child := parent.addBlock()
		child.Style.Code = true
		child.Style.Fg = DarkColor(White)
		child.Style.Bg = DarkColor(Black)
		if b.syntaxes != nil {
			if hl, ok := b.syntaxes.Resolve(tag.Info); ok {
				b.highlight = hl
			}
		}
		b.body(child)
		spacer := parent.addBlock()
		spacer.addText("")
	case TagList:
		child := parent.addList(tag.Ordered, tag.Start)
		b.body(child)
		child.Size.Border.Bottom = 1
	case TagItem:
		bullet := parent.addBullet()
		bullet.Style.Fg = LightColor(Yellow)
		bullet.Size.Border.Right = 1
		child := parent.addBlock()
		b.body(child)
	case TagEmphasis:
		child := parent.addInline()
		child.Style.Italic = true
		b.body(child)
	case TagStrong:
		child := parent.addInline()
		child.Style.Bold = true
		b.body(child)
	case TagCode:
		child := parent.addInline()
		child.Style.Code = true
		child.Style.Fg = DarkColor(White)
		child.Style.Bg = DarkColor(Black)
		b.body(child)
	case TagLink:
		entry := b.links.addText(tag.Dest)
		entry.Style.Fg = DarkColor(Blue)
		entry.Style.Underline = true
		b.links.addBreak()
		child := parent.addInline()
		child.Style.Underline = true
		child.Style.Fg = DarkColor(Blue)
		child.Link = tag.Dest
		b.body(child)
	case TagImage:
		title := parent.addText(tag.Title)
		title.Style.Fg = LightColor(Black)
		title.Style.Bg = DarkColor(Yellow)
		dest := parent.addText(tag.Dest)
		dest.Style.Fg = DarkColor(Blue)
		dest.Style.Bg = DarkColor(Yellow)
		dest.Style.Underline = true
		child := parent.addInline()
		child.Style.Italic = true
		b.body(child)
	case TagFootnoteDefinition:
		label := b.footnotes.addText(tag.Name)
		label.Style.Fg = DarkColor(Green)
		label.Style.Underline = true
		b.body(b.footnotes)
	default:
		panic(fmt.Sprintf("mdbox: unknown construct tag %d", tag.Kind))
	}
}

// end reports whether the tag terminates the current build scope.
func (b *builder) end(parent *Box, tag Tag) bool {
	switch tag.Kind {
	case TagCodeBlock:
		b.highlight = nil
		return true
	case TagList:
		b.labelBullets(parent)
		return true
	case TagParagraph, TagHeading, TagBlockQuote, TagItem,
		TagEmphasis, TagStrong, TagCode, TagLink, TagImage, TagFootnoteDefinition:
		return true
	default:
		// Rule and the table family never open a scope.
		return false
	}
}

// labelBullets assigns each direct ListBullet child its label: sequential
// numbers from the list's start value, or a fixed glyph for unordered lists.
// Bullet width is not adjusted for multi-digit numbers.
func (b *builder) labelBullets(list *Box) {
	n := list.Start
	for _, child := range list.Children {
		if child.Kind != KindListBullet {
			continue
		}
		if list.Ordered {
			child.addText(strconv.Itoa(n))
			n++
		} else {
			child.addText("*")
		}
	}
}

// text appends a text event. While a highlighter is active the text is split
// into its styled sub-ranges first; a trailing newline on a chunk becomes a
// Break marker.
func (b *builder) text(parent *Box, text string) {
	if b.highlight != nil {
		for _, seg := range b.highlight.Highlight(text) {
			chunk, hasBreak := strings.CutSuffix(seg.Text, "\n")
			child := parent.addText(chunk)
			child.Style.Fg = RGBColor(seg.R, seg.G, seg.B)
			child.Style.Bold = child.Style.Bold || seg.Bold
			child.Style.Italic = child.Style.Italic || seg.Italic
			child.Style.Underline = child.Style.Underline || seg.Underline
			if hasBreak {
				parent.addBreak()
			}
		}
		return
	}
	chunk, hasBreak := strings.CutSuffix(text, "\n")
	parent.addText(chunk)
	if hasBreak {
		parent.addBreak()
	}
}
