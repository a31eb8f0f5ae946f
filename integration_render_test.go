package mdbox_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"pkt.systems/mdbox"
	"pkt.systems/mdbox/highlight"
	"pkt.systems/mdbox/markdown"
)

var (
	sgrSeqs  = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
	osc8Seqs = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")
)

func renderMarkdown(t *testing.T, src string, width int, opts ...mdbox.RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := mdbox.Render(mdbox.RenderRequest{
		Events:   markdown.Source([]byte(src)),
		Writer:   &out,
		Width:    width,
		Syntaxes: highlight.New(highlight.DefaultTheme),
		Options:  opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestIntegrationRenderDocument(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"Paragraph with *emphasis*, **strong** and `code`.",
		"",
		"> Quote line",
		"",
		"- item one",
		"- item two",
		"",
		"1. ordered one",
		"2. ordered two",
		"",
		"[site](https://example.com)",
		"",
		"---",
		"",
		"```go",
		"fmt.Println(\"hello\")",
		"```",
	}, "\n")

	out := renderMarkdown(t, src, 80)
	plain := sgrSeqs.ReplaceAllString(osc8Seqs.ReplaceAllString(out, ""), "")

	for _, want := range []string{
		"┌─────┐", "│Title│", "└─────┘",
		"Paragraph with emphasis, strong and code.",
		"│Quote line",
		"* item one",
		"* item two",
		"1 ordered one",
		"2 ordered two",
		"site",
		"fmt.Println(\"hello\")",
		"https://example.com",
	} {
		if !strings.Contains(plain, want) {
			t.Fatalf("output missing %q\n---got---\n%s", want, plain)
		}
	}

	// Styled output carries ANSI attributes the plain text lacks.
	if !strings.Contains(out, "\x1b[38;5;5m") {
		t.Fatal("missing heading color")
	}
	if !strings.Contains(out, "\x1b[1m") {
		t.Fatal("missing bold attribute")
	}
	if !strings.Contains(out, "\x1b[3m") {
		t.Fatal("missing italic attribute")
	}
}

func TestIntegrationHyperlinks(t *testing.T) {
	src := "[site](https://example.com)\n"
	out := renderMarkdown(t, src, 80, mdbox.WithOSC8(true))
	if !strings.Contains(out, "\x1b]8;;https://example.com\x1b\\") {
		t.Fatal("missing hyperlink open sequence")
	}
}

func TestIntegrationWidthDefaults(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := renderMarkdown(t, long, 0)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		plain := sgrSeqs.ReplaceAllString(line, "")
		if w := len([]rune(plain)); w > mdbox.DefaultCols {
			t.Fatalf("line exceeds default width: %d columns", w)
		}
	}
}
