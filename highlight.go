package mdbox

// Syntaxes resolves a code block language hint to a Highlighter. Resolution
// happens once per code block; a miss leaves the block unhighlighted.
type Syntaxes interface {
	Resolve(lang string) (Highlighter, bool)
}

// Highlighter splits a chunk of source text into styled spans. The spans
// concatenate back to exactly the input, with no gaps or overlaps, and a
// newline may only appear as the last byte of a span.
type Highlighter interface {
	Highlight(text string) []HighlightSpan
}

// HighlightSpan is one styled sub-range of highlighted source text. The
// foreground is a 24-bit RGB color quantized onto the palette at build time.
type HighlightSpan struct {
	Text      string
	R, G, B   uint8
	Bold      bool
	Italic    bool
	Underline bool
}
