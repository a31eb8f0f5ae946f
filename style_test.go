package mdbox

import "testing"

func TestStyleSGR(t *testing.T) {
	var zero Style
	if got := zero.sgr(); got != "" {
		t.Fatalf("zero style sgr = %q, want empty", got)
	}

	s := Style{Fg: DarkColor(Purple), Bold: true}
	want := "\x1b[38;5;5m\x1b[1m"
	if got := s.sgr(); got != want {
		t.Fatalf("sgr = %q, want %q", got, want)
	}

	s = Style{Bg: DarkColor(Black), Underline: true, Italic: true}
	want = "\x1b[48;5;0m\x1b[4m\x1b[3m"
	if got := s.sgr(); got != want {
		t.Fatalf("sgr = %q, want %q", got, want)
	}
}

func TestUniformBorders(t *testing.T) {
	b := uniformBorders(BorderDouble)
	if b.Top != BorderDouble || b.Bottom != BorderDouble || b.Left != BorderDouble || b.Right != BorderDouble {
		t.Fatalf("uniformBorders = %+v", b)
	}
}
