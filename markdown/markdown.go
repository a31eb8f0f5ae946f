// Package markdown produces the structural event stream consumed by mdbox
// from CommonMark/GFM source, using goldmark.
package markdown

import (
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"pkt.systems/mdbox"
)

// Events parses markdown source into an ordered event sequence.
func Events(src []byte) []mdbox.Event {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))
	doc := md.Parser().Parse(text.NewReader(src))
	c := &collector{src: src}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		c.walk(n)
	}
	return c.events
}

// Source parses markdown source and returns it as a lazy event source.
func Source(src []byte) mdbox.EventSource {
	return mdbox.Events(Events(src))
}

type collector struct {
	src    []byte
	events []mdbox.Event
}

func (c *collector) add(ev mdbox.Event) {
	c.events = append(c.events, ev)
}

func (c *collector) scope(tag mdbox.Tag, n ast.Node) {
	c.add(mdbox.Event{Kind: mdbox.EventStart, Tag: tag})
	c.children(n)
	c.add(mdbox.Event{Kind: mdbox.EventEnd, Tag: tag})
}

func (c *collector) children(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.walk(child)
	}
}

func (c *collector) text(value string) {
	if value == "" {
		return
	}
	c.add(mdbox.Event{Kind: mdbox.EventText, Text: value})
}

func (c *collector) walk(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		c.scope(mdbox.Tag{Kind: mdbox.TagHeading, Level: n.Level}, n)
	case *ast.Paragraph:
		c.scope(mdbox.Tag{Kind: mdbox.TagParagraph}, n)
	case *ast.TextBlock:
		// Tight list item content carries no paragraph wrapper.
		c.children(n)
	case *ast.ThematicBreak:
		tag := mdbox.Tag{Kind: mdbox.TagRule}
		c.add(mdbox.Event{Kind: mdbox.EventStart, Tag: tag})
		c.add(mdbox.Event{Kind: mdbox.EventEnd, Tag: tag})
	case *ast.Blockquote:
		c.scope(mdbox.Tag{Kind: mdbox.TagBlockQuote}, n)
	case *ast.FencedCodeBlock:
		tag := mdbox.Tag{Kind: mdbox.TagCodeBlock, Info: string(n.Language(c.src))}
		c.add(mdbox.Event{Kind: mdbox.EventStart, Tag: tag})
		c.blockLines(n)
		c.add(mdbox.Event{Kind: mdbox.EventEnd, Tag: tag})
	case *ast.CodeBlock:
		tag := mdbox.Tag{Kind: mdbox.TagCodeBlock}
		c.add(mdbox.Event{Kind: mdbox.EventStart, Tag: tag})
		c.blockLines(n)
		c.add(mdbox.Event{Kind: mdbox.EventEnd, Tag: tag})
	case *ast.List:
		tag := mdbox.Tag{Kind: mdbox.TagList}
		if n.IsOrdered() {
			tag.Ordered = true
			tag.Start = n.Start
		}
		c.scope(tag, n)
	case *ast.ListItem:
		c.scope(mdbox.Tag{Kind: mdbox.TagItem}, n)
	case *ast.HTMLBlock:
		c.rawLines(n, mdbox.EventRawMarkup)
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			c.add(mdbox.Event{Kind: mdbox.EventInlineRawMarkup, Text: string(seg.Value(c.src))})
		}
	case *ast.Text:
		c.text(string(n.Value(c.src)))
		if n.HardLineBreak() {
			c.add(mdbox.Event{Kind: mdbox.EventHardBreak})
		} else if n.SoftLineBreak() {
			c.add(mdbox.Event{Kind: mdbox.EventSoftBreak})
		}
	case *ast.String:
		c.text(string(n.Value))
	case *ast.Emphasis:
		kind := mdbox.TagEmphasis
		if n.Level >= 2 {
			kind = mdbox.TagStrong
		}
		c.scope(mdbox.Tag{Kind: kind}, n)
	case *ast.CodeSpan:
		c.scope(mdbox.Tag{Kind: mdbox.TagCode}, n)
	case *ast.Link:
		c.scope(mdbox.Tag{Kind: mdbox.TagLink, Dest: string(n.Destination)}, n)
	case *ast.AutoLink:
		url := string(n.URL(c.src))
		tag := mdbox.Tag{Kind: mdbox.TagLink, Dest: url}
		c.add(mdbox.Event{Kind: mdbox.EventStart, Tag: tag})
		c.text(string(n.Label(c.src)))
		c.add(mdbox.Event{Kind: mdbox.EventEnd, Tag: tag})
	case *ast.Image:
		c.scope(mdbox.Tag{Kind: mdbox.TagImage, Dest: string(n.Destination), Title: string(n.Title)}, n)
	case *east.Table:
		c.scope(mdbox.Tag{Kind: mdbox.TagTable}, n)
	case *east.TableHeader:
		c.scope(mdbox.Tag{Kind: mdbox.TagTableHead}, n)
	case *east.TableRow:
		c.scope(mdbox.Tag{Kind: mdbox.TagTableRow}, n)
	case *east.TableCell:
		c.scope(mdbox.Tag{Kind: mdbox.TagTableCell}, n)
	case *east.Strikethrough:
		// No strikethrough construct in the event vocabulary; keep the content.
		c.children(n)
	case *east.TaskCheckBox:
		if n.IsChecked {
			c.text("[x] ")
		} else {
			c.text("[ ] ")
		}
	case *east.FootnoteLink:
		c.add(mdbox.Event{Kind: mdbox.EventFootnoteReference, Text: footnoteName(n.Index)})
	case *east.Footnote:
		c.scope(mdbox.Tag{Kind: mdbox.TagFootnoteDefinition, Name: footnoteName(n.Index)}, n)
	case *east.FootnoteList:
		c.children(n)
	case *east.FootnoteBacklink:
		// Backlink arrows have no place in a plain terminal rendering.
	default:
		c.children(n)
	}
}

// blockLines emits one text event per source line, each with its trailing
// newline intact so the builder converts it to a break marker.
func (c *collector) blockLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		c.text(string(seg.Value(c.src)))
	}
}

// rawLines emits raw markup per line, stripped of its newline, with a break
// between lines.
func (c *collector) rawLines(n ast.Node, kind mdbox.EventKind) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		value := string(seg.Value(c.src))
		for len(value) > 0 && (value[len(value)-1] == '\n' || value[len(value)-1] == '\r') {
			value = value[:len(value)-1]
		}
		if value == "" {
			continue
		}
		c.add(mdbox.Event{Kind: kind, Text: value})
		c.add(mdbox.Event{Kind: mdbox.EventSoftBreak})
	}
}

func footnoteName(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}
