// Package mdbox renders structured documents to ANSI for terminal display.
//
// The package is built around a box model: a stream of structural events
// (produced externally, e.g. by the markdown subpackage) is assembled into a
// tree of styled boxes, a layout pass fits that tree into a column budget by
// wrapping and splitting text at grapheme boundaries, and a render pass
// paints the laid-out tree row by row with 256-color SGR attributes and
// box-drawing borders.
//
// Core properties:
//   - Single-pass pipeline: build, layout, render, discard
//   - Unicode display-width accounting and grapheme-safe splitting
//   - Optional syntax highlighting of code blocks via a pluggable service
//   - Side-channel link and footnote collections appended after the body
//
// Example:
//
//	events := markdown.Source([]byte("# Hello\n\nMarkdown in, ANSI out.\n"))
//	err := mdbox.Render(mdbox.RenderRequest{
//		Events:   events,
//		Writer:   os.Stdout,
//		Width:    80,
//		Syntaxes: highlight.New(highlight.DefaultTheme),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Rendering can be customized using RenderOptions such as OSC 8 hyperlink
// support.
package mdbox
