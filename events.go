package mdbox

// EventKind identifies the variant of a structural event.
type EventKind uint8

// Event kinds.
const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventRawMarkup
	EventInlineRawMarkup
	EventSoftBreak
	EventHardBreak
	EventFootnoteReference
)

// TagKind identifies the construct delimited by a Start/End event pair.
type TagKind uint8

// Construct tags.
const (
	TagParagraph TagKind = iota
	TagRule
	TagHeading
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagCode
	TagLink
	TagImage
	TagFootnoteDefinition
)

// Tag is a construct marker with its per-construct payload.
type Tag struct {
	Kind    TagKind
	Level   int    // TagHeading: level 1-6
	Info    string // TagCodeBlock: language hint
	Ordered bool   // TagList
	Start   int    // TagList: first ordered label
	Dest    string // TagLink, TagImage: destination
	Title   string // TagImage
	Name    string // TagFootnoteDefinition
}

// Event is one element of the structural event stream the builder consumes.
// The stream must be well nested; the builder does not verify tag identity
// on close.
type Event struct {
	Kind EventKind
	Tag  Tag    // EventStart, EventEnd
	Text string // EventText, raw markup, footnote reference name
}

// EventSource delivers events lazily, in order, exactly once.
type EventSource interface {
	Next() (Event, bool)
}

type sliceSource struct {
	events []Event
	pos    int
}

func (s *sliceSource) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

// Events returns an EventSource over a fixed slice.
func Events(events []Event) EventSource {
	return &sliceSource{events: events}
}
