package mdbox

// Kind identifies the variant of a document tree node.
type Kind uint8

// Node kinds.
const (
	KindText Kind = iota
	KindBreak
	KindInlineContainer
	KindInline
	KindBlock
	KindHeader
	KindList
	KindListBullet
	KindTable
	KindTableColumn
	KindTableItem
	KindImage
)

var kindNames = [...]string{
	"Text",
	"Break",
	"InlineContainer",
	"Inline",
	"Block",
	"Header",
	"List",
	"ListBullet",
	"Table",
	"TableColumn",
	"TableItem",
	"Image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Rect is a content rectangle in root coordinates.
type Rect struct {
	X, Y, W, H int
}

// Edges holds per-edge border widths in columns.
type Edges struct {
	Top, Bottom, Left, Right int
}

// BoxSize is the geometry of a box: its content rectangle plus border widths.
type BoxSize struct {
	Content Rect
	Border  Edges
}

// Box is one node of the document tree. A box exclusively owns its children;
// geometry is meaningless until Layout has run.
type Box struct {
	Kind     Kind
	Level    int    // heading level, KindHeader only
	Ordered  bool   // KindList only
	Start    int    // ordered list start value, KindList only
	Text     string // KindText only
	Link     string // link destination, set on link inline spans
	Size     BoxSize
	Style    Style
	Children []*Box
}

// newRoot returns the root block with its content width fixed to the column
// budget. The root anchors the coordinate system for the whole tree.
func newRoot(width int) *Box {
	root := newBlock()
	root.Size.Content.W = width
	return root
}

func newBlock() *Box {
	return &Box{Kind: KindBlock}
}

// inlineContainer returns the box that inline content should be appended to.
// Inline and InlineContainer boxes take content directly; any other box wraps
// inline content into its last InlineContainer child, creating one if the
// last child is something else.
func (b *Box) inlineContainer() *Box {
	switch b.Kind {
	case KindInline, KindInlineContainer:
		return b
	}
	if n := len(b.Children); n > 0 && b.Children[n-1].Kind == KindInlineContainer {
		return b.Children[n-1]
	}
	c := &Box{Kind: KindInlineContainer, Style: b.Style}
	b.Children = append(b.Children, c)
	return c
}

// addText appends a text leaf to the current inline container.
func (b *Box) addText(text string) *Box {
	ic := b.inlineContainer()
	c := &Box{Kind: KindText, Text: text, Style: ic.Style}
	ic.Children = append(ic.Children, c)
	return c
}

// addInline appends a nested inline formatting span to the current inline
// container.
func (b *Box) addInline() *Box {
	ic := b.inlineContainer()
	c := &Box{Kind: KindInline, Style: ic.Style}
	ic.Children = append(ic.Children, c)
	return c
}

// addBlock appends a vertical flow container.
func (b *Box) addBlock() *Box {
	c := &Box{Kind: KindBlock, Style: b.Style}
	b.Children = append(b.Children, c)
	return c
}

func (b *Box) addHeader(level int) *Box {
	c := &Box{Kind: KindHeader, Level: level, Style: b.Style}
	b.Children = append(b.Children, c)
	return c
}

func (b *Box) addList(ordered bool, start int) *Box {
	c := &Box{Kind: KindList, Ordered: ordered, Start: start, Style: b.Style}
	b.Children = append(b.Children, c)
	return c
}

func (b *Box) addBullet() *Box {
	c := &Box{Kind: KindListBullet, Style: b.Style}
	b.Children = append(b.Children, c)
	return c
}

// addBreak appends an explicit line-break marker. Break markers are consumed
// during layout: inside inline content they cut the line, at block level they
// terminate the current inline container.
func (b *Box) addBreak() *Box {
	c := &Box{Kind: KindBreak, Style: b.Style}
	b.Children = append(b.Children, c)
	return c
}

// outerHeight is the content height plus top and bottom border widths.
func (b *Box) outerHeight() int {
	return b.Size.Content.H + b.Size.Border.Top + b.Size.Border.Bottom
}

// outerWidth is the content width plus left and right border widths.
func (b *Box) outerWidth() int {
	return b.Size.Content.W + b.Size.Border.Left + b.Size.Border.Right
}
