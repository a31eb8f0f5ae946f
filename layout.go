package mdbox

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// layoutOutcome is the result vocabulary of a layout step.
type layoutOutcome uint8

const (
	// layoutNormal: the node fit, no further action.
	layoutNormal layoutOutcome = iota
	// layoutCut: the node kept a fitting prefix; the caller must insert the
	// continuation as the next sibling and move the rest to a new line.
	layoutCut
	// layoutReject: the node produced nothing here and must be retried at the
	// start of the next line.
	layoutReject
)

type layoutResult struct {
	outcome layoutOutcome
	next    *Box // continuation, layoutCut only
}

// cursor tracks the current layout position within an enclosing container.
type cursor struct {
	container BoxSize
	x, y      int
}

// Layout assigns geometry to every node of the tree within the root's column
// budget. Break markers are consumed, and oversized text nodes are split into
// continuation siblings.
func (b *Box) Layout() {
	cur := cursor{container: b.Size}
	b.layoutNode(&cur)
}

func (b *Box) layoutNode(cur *cursor) layoutResult {
	switch b.Kind {
	case KindBlock, KindListBullet, KindHeader:
		return b.layoutBlock(cur)
	case KindInlineContainer:
		return b.layoutInlineContainer(cur)
	case KindList:
		return b.layoutList(cur)
	case KindText, KindInline:
		return b.layoutInline(cur)
	case KindBreak:
		panic("mdbox: break markers must be consumed before node layout")
	default:
		panic(fmt.Sprintf("mdbox: layout unimplemented for %v", b.Kind))
	}
}

// layoutBlock lays out vertical flow containers: Block, Header and
// ListBullet. Children stack vertically; a ListBullet instead leaves the
// cursor beside itself so the item body lands on the same rows.
func (b *Box) layoutBlock(cur *cursor) layoutResult {
	b.Size.Content.X = cur.x + b.Size.Border.Left
	b.Size.Content.Y = cur.y + b.Size.Border.Top
	b.Size.Content.H = 0
	avail := cur.container.Content.W - cur.x + cur.container.Content.X
	if avail > b.Size.Border.Left+b.Size.Border.Right {
		b.Size.Content.W = avail - b.Size.Border.Left - b.Size.Border.Right
	} else {
		b.Size.Content.W = 1
	}
	sub := cursor{x: b.Size.Content.X, y: b.Size.Content.Y, container: b.Size}
	maxWidth := 0
	for i := 0; i < len(b.Children); {
		child := b.Children[i]
		if child.Kind == KindBreak {
			// Breaks only matter inside inline content; at block level they
			// merely terminated an inline container during the build.
			b.removeChild(i)
			continue
		}
		switch r := child.layoutNode(&sub); r.outcome {
		case layoutNormal:
		case layoutCut:
			b.insertChild(i+1, r.next)
		case layoutReject:
			panic(fmt.Sprintf("mdbox: cannot reject a %v from a block", child.Kind))
		}
		b.Size.Content.H += child.outerHeight()
		if w := child.outerWidth(); w > maxWidth {
			maxWidth = w
		}
		i++
	}
	if !b.Style.Extend {
		b.Size.Content.W = maxWidth
	}
	if b.Kind == KindListBullet {
		cur.x += b.outerWidth()
	} else {
		cur.x = cur.container.Content.X
		cur.y += b.outerHeight()
	}
	return layoutResult{}
}

// layoutList restricts children to bullets and blocks. Bullets advance the
// cursor horizontally and contribute no height; blocks stack below each
// other beside their bullet.
func (b *Box) layoutList(cur *cursor) layoutResult {
	if cur.container.Content.W > b.Size.Border.Left+b.Size.Border.Right {
		b.Size.Content.W = cur.container.Content.W - b.Size.Border.Left - b.Size.Border.Right
	} else {
		b.Size.Content.W = 1
	}
	b.Size.Content.H = 0
	b.Size.Content.X = cur.x + b.Size.Border.Left
	b.Size.Content.Y = cur.y + b.Size.Border.Top
	sub := cursor{x: b.Size.Content.X, y: b.Size.Content.Y, container: b.Size}
	for i := 0; i < len(b.Children); i++ {
		child := b.Children[i]
		switch child.Kind {
		case KindListBullet, KindBlock:
			switch r := child.layoutNode(&sub); r.outcome {
			case layoutNormal:
			case layoutCut:
				b.insertChild(i+1, r.next)
			case layoutReject:
				panic(fmt.Sprintf("mdbox: cannot reject a %v from a list", child.Kind))
			}
			if child.Kind == KindBlock {
				b.Size.Content.H += child.outerHeight()
			}
		default:
			panic(fmt.Sprintf("mdbox: cannot lay out a %v in a list", child.Kind))
		}
	}
	cur.y += b.outerHeight()
	return layoutResult{}
}

// layoutInlineContainer lays out one visual line. A line is never allowed to
// reject; splitting it yields the next line.
func (b *Box) layoutInlineContainer(cur *cursor) layoutResult {
	if cur.container.Content.W > b.Size.Border.Left+b.Size.Border.Right {
		b.Size.Content.W = cur.container.Content.W - b.Size.Border.Left - b.Size.Border.Right
	} else {
		b.Size.Content.W = 1
	}
	b.Size.Content.H = 1
	b.Size.Content.X = cur.x + b.Size.Border.Left
	b.Size.Content.Y = cur.y + b.Size.Border.Top
	res := b.inlineChildren(false)
	cur.y += b.outerHeight()
	return res
}

// layoutInline lays out the two inline kinds. Text measures its display
// width and is rejected or split when it does not fit; a nested Inline span
// delegates to the shared children loop and may propagate a rejection.
func (b *Box) layoutInline(cur *cursor) layoutResult {
	res := layoutResult{}
	b.Size.Content.H = 1
	b.Size.Content.X = cur.x + b.Size.Border.Left
	b.Size.Content.Y = cur.y + b.Size.Border.Top
	b.Size.Content.W = cur.container.Content.W - (cur.x - cur.container.Content.X) -
		(b.Size.Border.Left + b.Size.Border.Right)
	switch b.Kind {
	case KindText:
		width := runewidth.StringWidth(b.Text)
		if b.Size.Content.W <= 0 {
			res = layoutResult{outcome: layoutReject}
			b.Size.Content.W = 0
		} else if width > b.Size.Content.W {
			head, tail := splitByWidth(b.Text, b.Size.Content.W)
			next := &Box{Kind: KindText, Text: tail, Size: b.Size, Style: b.Style}
			b.Text = head
			b.Size.Content.W = runewidth.StringWidth(head)
			res = layoutResult{outcome: layoutCut, next: next}
		} else {
			b.Size.Content.W = width
		}
	case KindInline:
		res = b.inlineChildren(true)
	default:
		panic(fmt.Sprintf("mdbox: cannot lay out a %v inline", b.Kind))
	}
	cur.x += b.Size.Content.W
	return res
}

// inlineChildren is the shared inline layout loop of InlineContainer and
// Inline. A Break child cuts the rest of the children into a continuation; a
// child split or rejection likewise moves the remainder to the next line.
// Rejection of the first child propagates when allowed and is fatal when the
// container is a line.
func (b *Box) inlineChildren(allowReject bool) layoutResult {
	res := layoutResult{}
	sub := cursor{x: b.Size.Content.X, y: b.Size.Content.Y, container: b.Size}
loop:
	for i := 0; i < len(b.Children); i++ {
		child := b.Children[i]
		if child.Kind == KindBreak {
			b.removeChild(i)
			res = layoutResult{outcome: layoutCut, next: b.carryover(i)}
			break loop
		}
		switch r := child.layoutNode(&sub); r.outcome {
		case layoutNormal:
		case layoutCut:
			b.insertChild(i+1, r.next)
			res = layoutResult{outcome: layoutCut, next: b.carryover(i + 1)}
			break loop
		case layoutReject:
			if i == 0 {
				if !allowReject {
					panic(fmt.Sprintf("mdbox: cannot reject the first %v of a line", child.Kind))
				}
				res = layoutResult{outcome: layoutReject}
			} else {
				res = layoutResult{outcome: layoutCut, next: b.carryover(i)}
			}
			break loop
		}
	}
	b.Size.Content.W = sub.x - b.Size.Content.X
	return res
}

// carryover moves children[i:] into a continuation box sharing this box's
// kind, geometry and style.
func (b *Box) carryover(i int) *Box {
	next := &Box{Kind: b.Kind, Size: b.Size, Style: b.Style, Link: b.Link}
	next.Children = append(next.Children, b.Children[i:]...)
	b.Children = b.Children[:i:i]
	return next
}

func (b *Box) insertChild(i int, child *Box) {
	b.Children = append(b.Children, nil)
	copy(b.Children[i+1:], b.Children[i:])
	b.Children[i] = child
}

func (b *Box) removeChild(i int) {
	b.Children = append(b.Children[:i], b.Children[i+1:]...)
}

// splitByWidth splits text at a grapheme-cluster boundary so that the head's
// display width does not exceed limit, preferring the boundary after the last
// whitespace cluster that fits. The head always keeps at least one cluster so
// that repeated splitting makes progress. Both halves are views of the
// original string.
func splitByWidth(text string, limit int) (head, tail string) {
	width := 0
	end := 0
	wordEnd := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		cw := runewidth.StringWidth(cluster)
		if width+cw > limit && end > 0 {
			break
		}
		_, to := g.Positions()
		end = to
		width += cw
		if cluster == " " || cluster == "\t" {
			wordEnd = end
		}
	}
	if end < len(text) && wordEnd > 0 {
		end = wordEnd
	}
	return text[:end], text[end:]
}
