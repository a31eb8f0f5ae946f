// Package highlight implements the mdbox highlighting service on top of
// chroma. A Service resolves code block language hints to lexers and splits
// source lines into styled spans using a chroma style as the theme.
package highlight

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"pkt.systems/mdbox"
)

// DefaultTheme is the theme used when none is selected.
const DefaultTheme = "base16-snazzy"

// Service resolves language hints against the chroma lexer registry.
type Service struct {
	style *chroma.Style
}

// New returns a Service using the named theme. Unknown names fall back to
// chroma's fallback style; use ThemeExists to validate a name first.
func New(theme string) *Service {
	return &Service{style: styles.Get(theme)}
}

// Resolve returns a highlighter for the language hint, or false when the
// hint is empty or matches no known lexer.
func (s *Service) Resolve(lang string) (mdbox.Highlighter, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return nil, false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	return &highlighter{lexer: chroma.Coalesce(lexer), style: s.style}, true
}

// AvailableThemes returns the names of the available highlighting themes.
func AvailableThemes() []string {
	names := append([]string(nil), styles.Names()...)
	sort.Strings(names)
	return names
}

// ThemeExists reports whether name is a known theme.
func ThemeExists(name string) bool {
	for _, known := range styles.Names() {
		if known == name {
			return true
		}
	}
	return false
}

type highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// Highlight tokenizes text and returns contiguous styled spans that
// concatenate back to the tokenized input. Token values are split so that a
// newline only ever appears as the last byte of a span.
func (h *highlighter) Highlight(text string) []mdbox.HighlightSpan {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return plainSpans(h.style, text)
	}
	var spans []mdbox.HighlightSpan
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		base := h.spanStyle(tok.Type)
		value := tok.Value
		for {
			idx := strings.IndexByte(value, '\n')
			if idx < 0 {
				break
			}
			sp := base
			sp.Text = value[:idx+1]
			spans = append(spans, sp)
			value = value[idx+1:]
		}
		if value != "" {
			sp := base
			sp.Text = value
			spans = append(spans, sp)
		}
	}
	return spans
}

func (h *highlighter) spanStyle(t chroma.TokenType) mdbox.HighlightSpan {
	entry := h.style.Get(t)
	sp := mdbox.HighlightSpan{
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
	colour := entry.Colour
	if !colour.IsSet() {
		colour = h.style.Get(chroma.Text).Colour
	}
	if colour.IsSet() {
		sp.R, sp.G, sp.B = colour.Red(), colour.Green(), colour.Blue()
	} else {
		sp.R, sp.G, sp.B = 0xff, 0xff, 0xff
	}
	return sp
}

// plainSpans is the fallback when tokenization fails: unstyled text in the
// theme's base color, one span per line.
func plainSpans(style *chroma.Style, text string) []mdbox.HighlightSpan {
	base := mdbox.HighlightSpan{R: 0xff, G: 0xff, B: 0xff}
	if colour := style.Get(chroma.Text).Colour; colour.IsSet() {
		base.R, base.G, base.B = colour.Red(), colour.Green(), colour.Blue()
	}
	var spans []mdbox.HighlightSpan
	for len(text) > 0 {
		sp := base
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			sp.Text = text[:idx+1]
			text = text[idx+1:]
		} else {
			sp.Text = text
			text = ""
		}
		spans = append(spans, sp)
	}
	return spans
}
