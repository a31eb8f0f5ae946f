package mdbox

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

var (
	sgrPattern  = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
	osc8Pattern = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")
)

func stripANSI(s string) string {
	s = osc8Pattern.ReplaceAllString(s, "")
	return sgrPattern.ReplaceAllString(s, "")
}

func renderEvents(t *testing.T, events []Event, width int) string {
	t.Helper()
	root := Build(Events(events), width, nil)
	root.Layout()
	return root.String()
}

func plainLines(t *testing.T, events []Event, width int) []string {
	t.Helper()
	out := renderEvents(t, events, width)
	return strings.Split(strings.TrimSuffix(stripANSI(out), "\n"), "\n")
}

func TestRenderParagraphWraps(t *testing.T) {
	lines := plainLines(t, paragraphEvents("hello world"), 10)
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if strings.TrimRight(lines[0], " ") != "hello" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if strings.TrimRight(lines[1], " ") != "world" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if strings.TrimRight(lines[2], " ") != "" {
		t.Fatalf("line 2 = %q", lines[2])
	}
}

func TestRenderTopHeadingBox(t *testing.T) {
	lines := plainLines(t, headingEvents(1, "Hi"), 20)
	want := []string{"┌──┐", "│Hi│", "└──┘"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	out := renderEvents(t, headingEvents(1, "Hi"), 20)
	if !strings.Contains(out, "\x1b[38;5;5m") {
		t.Fatal("heading output missing purple foreground")
	}
}

func TestRenderHeadingUnderlines(t *testing.T) {
	cases := []struct {
		level int
		glyph string
	}{
		{2, "━"},
		{3, "═"},
		{4, "─"},
		{5, "╌"},
		{6, " "},
	}
	for _, c := range cases {
		lines := plainLines(t, headingEvents(c.level, "Title"), 20)
		if len(lines) != 2 {
			t.Fatalf("level %d: lines = %q", c.level, lines)
		}
		if lines[0] != "Title" {
			t.Fatalf("level %d: line 0 = %q", c.level, lines[0])
		}
		if lines[1] != strings.Repeat(c.glyph, 5) {
			t.Fatalf("level %d: line 1 = %q", c.level, lines[1])
		}
	}
}

func TestRenderOrderedList(t *testing.T) {
	lines := plainLines(t, listEvents(true, 1, 3), 20)
	want := []string{"1 item", "2 item", "3 item"}
	for i, w := range want {
		if strings.TrimRight(lines[i], " ") != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRenderUnorderedList(t *testing.T) {
	lines := plainLines(t, listEvents(false, 0, 2), 20)
	for i, w := range []string{"* item", "* item"} {
		if strings.TrimRight(lines[i], " ") != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRenderLinkCollection(t *testing.T) {
	events := []Event{
		{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
		{Kind: EventStart, Tag: Tag{Kind: TagLink, Dest: "http://example.com"}},
		{Kind: EventText, Text: "example"},
		{Kind: EventEnd, Tag: Tag{Kind: TagLink}},
		{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
	}
	out := stripANSI(renderEvents(t, events, 40))
	if !strings.Contains(out, "example") {
		t.Fatal("link text missing")
	}
	if n := strings.Count(out, "http://example.com"); n != 1 {
		t.Fatalf("destination rendered %d times, want 1", n)
	}
	// The collection comes after the body.
	if strings.Index(out, "example") > strings.Index(out, "http://example.com") {
		t.Fatal("destination rendered before body")
	}
}

func TestRenderOSC8Hyperlink(t *testing.T) {
	events := []Event{
		{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
		{Kind: EventStart, Tag: Tag{Kind: TagLink, Dest: "http://example.com"}},
		{Kind: EventText, Text: "example"},
		{Kind: EventEnd, Tag: Tag{Kind: TagLink}},
		{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
	}
	root := Build(Events(events), 40, nil)
	root.Layout()

	var plain, linked bytes.Buffer
	if err := root.RenderTo(&plain); err != nil {
		t.Fatal(err)
	}
	if err := root.RenderTo(&linked, WithOSC8(true)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b]8;;") {
		t.Fatal("hyperlink escapes emitted without opt-in")
	}
	open := "\x1b]8;;http://example.com\x1b\\"
	if !strings.Contains(linked.String(), open) {
		t.Fatal("hyperlink open sequence missing")
	}
	if !strings.Contains(linked.String(), osc8End) {
		t.Fatal("hyperlink close sequence missing")
	}
	if stripANSI(plain.String()) != stripANSI(linked.String()) {
		t.Fatal("visible text differs with hyperlinks enabled")
	}
}

func TestRenderIdempotent(t *testing.T) {
	events := append(headingEvents(1, "Title"), paragraphEvents("some wrapped text here")...)
	root := Build(Events(events), 12, nil)
	root.Layout()
	first := root.String()
	second := root.String()
	if first != second {
		t.Fatalf("re-render differs:\n%q\n%q", first, second)
	}
}

func TestRenderBlockQuote(t *testing.T) {
	events := []Event{
		{Kind: EventStart, Tag: Tag{Kind: TagBlockQuote}},
		{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
		{Kind: EventText, Text: "quoted"},
		{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
		{Kind: EventEnd, Tag: Tag{Kind: TagBlockQuote}},
	}
	lines := plainLines(t, events, 20)
	if !strings.HasPrefix(lines[0], "│quoted") {
		t.Fatalf("line 0 = %q", lines[0])
	}
}

func TestRenderRule(t *testing.T) {
	events := []Event{
		{Kind: EventStart, Tag: Tag{Kind: TagRule}},
		{Kind: EventEnd, Tag: Tag{Kind: TagRule}},
	}
	lines := plainLines(t, events, 8)
	if lines[len(lines)-1] != strings.Repeat("─", 8) {
		t.Fatalf("rule line = %q", lines)
	}
}

func TestRenderWidthBound(t *testing.T) {
	events := append(headingEvents(2, "A longer heading that wraps"),
		paragraphEvents("The quick brown fox jumps over the lazy dog, repeatedly and at length.")...)
	events = append(events, listEvents(true, 1, 3)...)
	for _, width := range []int{5, 8, 12, 20, 40, 80} {
		out := renderEvents(t, events, width)
		for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
			if w := ansi.PrintableRuneWidth(line); w > width {
				t.Fatalf("width %d: line %d is %d columns: %q", width, i, w, line)
			}
		}
	}
}

func TestRenderStyledSpansReset(t *testing.T) {
	events := []Event{
		{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
		{Kind: EventStart, Tag: Tag{Kind: TagStrong}},
		{Kind: EventText, Text: "bold"},
		{Kind: EventEnd, Tag: Tag{Kind: TagStrong}},
		{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
	}
	out := renderEvents(t, events, 20)
	if !strings.Contains(out, "\x1b[1mbold\x1b[0m") {
		t.Fatalf("styled span not bracketed by SGR codes: %q", out)
	}
}
