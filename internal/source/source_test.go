package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ucfjimg/cpp/internal/source"
)

// drain consumes the whole stream into a string, ignoring positions.
func drain(s *source.Source) string {
	var out []rune
	for {
		sc, ok := s.Next()
		if !ok {
			return string(out)
		}
		out = append(out, sc.Ch)
	}
}

func TestLineEndingNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lf", "a\nb"},
		{"cr", "a\rb"},
		{"crlf", "a\r\nb"},
		{"lfcr", "a\n\rb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := source.New()
			src.PushText("test.c", tt.input)

			if got := drain(src); got != "a\nb" {
				t.Fatalf("normalized stream = %q, want %q", got, "a\nb")
			}

			// b must land on line 2, column 1 regardless of flavor
			src2 := source.New()
			src2.PushText("test.c", tt.input)
			src2.Next() // a
			src2.Next() // newline
			sc, ok := src2.Next()
			if !ok || sc.Ch != 'b' {
				t.Fatalf("expected 'b', got %v (ok=%v)", sc, ok)
			}
			want := source.Point{File: 0, Line: 2, Col: 1}
			if sc.Pt != want {
				t.Errorf("position of 'b' = %v, want %v", sc.Pt, want)
			}
		})
	}
}

func TestDoubleNewlineIsTwoNewlines(t *testing.T) {
	src := source.New()
	src.PushText("test.c", "a\n\nb")
	src.Next()
	src.Next()
	sc, _ := src.Next()
	if sc.Ch != '\n' {
		t.Fatalf("expected second newline, got %q", sc.Ch)
	}
	sc, _ = src.Next()
	if sc.Ch != 'b' || sc.Pt.Line != 3 || sc.Pt.Col != 1 {
		t.Errorf("'b' at %v, want line 3 col 1", sc.Pt)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	src := source.New()
	src.PushText("test.c", "xy")

	for i := 0; i < 3; i++ {
		sc, ok := src.Peek()
		if !ok || sc.Ch != 'x' {
			t.Fatalf("peek %d = %v (ok=%v), want 'x'", i, sc, ok)
		}
	}
	sc, _ := src.Next()
	if sc.Ch != 'x' {
		t.Fatalf("next = %q, want 'x'", sc.Ch)
	}
}

func TestPeekNSimulatesWithoutMutation(t *testing.T) {
	src := source.New()
	src.PushText("test.c", "ab\r\ncd")

	wantChars := []rune{'a', 'b', '\n', 'c', 'd'}
	for k, want := range wantChars {
		sc, ok := src.PeekN(k)
		if !ok || sc.Ch != want {
			t.Fatalf("PeekN(%d) = %v (ok=%v), want %q", k, sc, ok, want)
		}
	}
	if _, ok := src.PeekN(len(wantChars)); ok {
		t.Error("PeekN past the end should report exhaustion")
	}

	// the real stream must be untouched
	if got := drain(src); got != "ab\ncd" {
		t.Errorf("stream after lookahead = %q, want %q", got, "ab\ncd")
	}
}

func TestNestedFiles(t *testing.T) {
	src := source.New()
	src.PushText("a.c", "a\nb")

	type step struct {
		Ch       rune
		Switched bool
	}
	var got []step

	take := func() {
		sc, ok := src.Next()
		if !ok {
			t.Fatal("stream exhausted early")
		}
		got = append(got, step{sc.Ch, sc.Switched})
	}

	take() // a
	take() // newline
	src.PushText("b.c", "cde")
	take() // c
	take() // d
	take() // e, b.c exhausted, back to a.c
	take() // b

	if _, ok := src.Next(); ok {
		t.Error("expected exhaustion after nested reads")
	}

	want := []step{
		{'a', true},  // first char after the initial push
		{'\n', false},
		{'c', true}, // first char of the nested file
		{'d', false},
		{'e', false},
		{'b', true}, // resuming the parent is a transition too
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("nested stream mismatch (-want +got):\n%s", diff)
	}
}

func TestPushEmptyFile(t *testing.T) {
	src := source.New()
	src.PushText("a.c", "x")
	src.PushText("empty.c", "")

	sc, ok := src.Next()
	if !ok || sc.Ch != 'x' {
		t.Fatalf("expected 'x' after empty push, got %v (ok=%v)", sc, ok)
	}
	if !sc.Switched {
		t.Error("first char after pushing an empty file should be marked switched")
	}
}

func TestPushReusesCachedFile(t *testing.T) {
	src := source.New()
	src.PushText("inc.h", "z")
	sc, _ := src.Next()
	first := sc.Pt.File

	src.PushText("inc.h", "ignored: cached text wins")
	sc, ok := src.Next()
	if !ok || sc.Ch != 'z' {
		t.Fatalf("re-push did not reuse cached text: %v (ok=%v)", sc, ok)
	}
	if sc.Pt.File != first {
		t.Errorf("re-push allocated file index %d, want cached %d", sc.Pt.File, first)
	}
	if !sc.Switched {
		t.Error("re-pushing a cached file still counts as a transition")
	}
}

func TestPushReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	if err := os.WriteFile(path, []byte("int x;"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := source.New()
	if err := src.Push(path); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if got := drain(src); got != "int x;" {
		t.Errorf("stream = %q", got)
	}

	name, ok := src.Filename(0)
	if !ok || name != path {
		t.Errorf("Filename(0) = %q, %v", name, ok)
	}
}

func TestPushMissingFile(t *testing.T) {
	src := source.New()
	if err := src.Push(filepath.Join(t.TempDir(), "no-such.c")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, ok := src.Peek(); ok {
		t.Error("failed push must not leave partial state behind")
	}
}

func TestFilenameOutOfRange(t *testing.T) {
	src := source.New()
	if _, ok := src.Filename(7); ok {
		t.Error("Filename on an unknown index should report false")
	}
}

func TestLine(t *testing.T) {
	src := source.New()
	src.PushText("test.c", "first\r\nsecond\nthird")

	tests := []struct {
		line uint32
		want string
		ok   bool
	}{
		{1, "first", true},
		{2, "second", true},
		{3, "third", true},
		{4, "", false},
	}
	for _, tt := range tests {
		got, ok := src.Line(0, tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Line(0, %d) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}
