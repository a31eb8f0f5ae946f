package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "remote" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	if err := os.WriteFile(first, []byte("one "), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one two" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestResolveOSC8(t *testing.T) {
	cases := map[string]bool{
		"on":  true,
		"off": false,
		"1":   true,
		"0":   false,
	}
	for input, want := range cases {
		got, err := resolveOSC8(input)
		if err != nil {
			t.Fatalf("resolveOSC8(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveOSC8(%q)=%v want %v", input, got, want)
		}
	}
	if _, err := resolveOSC8("nope"); err == nil {
		t.Fatalf("expected error for invalid osc8 value")
	}
}

func TestResolveWidthOverride(t *testing.T) {
	if got := resolveWidth(42); got != 42 {
		t.Fatalf("resolveWidth(42)=%d", got)
	}
}

func TestStrconvAtoi(t *testing.T) {
	if n, err := strconvAtoi("120"); err != nil || n != 120 {
		t.Fatalf("strconvAtoi(120)=%d,%v", n, err)
	}
	for _, bad := range []string{"", "-1", "12x"} {
		if _, err := strconvAtoi(bad); err == nil {
			t.Fatalf("strconvAtoi(%q) accepted", bad)
		}
	}
}
