package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ucfjimg/cpp/internal/driver"
	"github.com/ucfjimg/cpp/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.c", "int main() { return 0; }\n")

	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}

	var kinds []token.Kind
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.Ident, token.Ident, token.LeftParen, token.RightParen,
		token.LeftBrace, token.Ident, token.Number, token.Semicolon,
		token.RightBrace, token.EOF,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	if len(res.Trivia) != len(res.Tokens) {
		t.Errorf("trivia runs = %d, tokens = %d", len(res.Trivia), len(res.Tokens))
	}
}

func TestTokenizeCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.c", "'a\n,\n")

	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want one", res.Errors)
	}
	if res.Errors[0].What != "unterminated character constant" {
		t.Errorf("error = %v", res.Errors[0])
	}
	// scanning resumed on the comma
	if len(res.Tokens) != 2 || res.Tokens[0].Kind != token.Comma {
		t.Errorf("tokens after recovery = %+v", res.Tokens)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := driver.Tokenize(filepath.Join(t.TempDir(), "nope.c"), driver.Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestResolveIncludeDirs(t *testing.T) {
	incDir := t.TempDir()
	writeFile(t, incDir, "stdio.h", "")

	got := driver.Resolve("stdio.h", []string{incDir})
	if got != filepath.Join(incDir, "stdio.h") {
		t.Errorf("Resolve = %q", got)
	}

	if got := driver.Resolve("missing.h", []string{incDir}); got != "missing.h" {
		t.Errorf("unresolvable path should come back unchanged, got %q", got)
	}
}

func TestTokenizeAll(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.c", "alpha"),
		writeFile(t, dir, "b.c", "beta gamma"),
		writeFile(t, dir, "c.c", ";"),
	}

	results, err := driver.TokenizeAll(context.Background(), paths, driver.Options{})
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	wantCounts := []int{2, 3, 2} // including EOF
	for i, res := range results {
		if res == nil {
			t.Fatalf("result %d missing", i)
		}
		if len(res.Tokens) != wantCounts[i] {
			t.Errorf("file %d: %d tokens, want %d", i, len(res.Tokens), wantCounts[i])
		}
	}
}

func TestTokenizeAllFailsFast(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "ok.c", "x"),
		filepath.Join(dir, "missing.c"),
	}
	if _, err := driver.TokenizeAll(context.Background(), paths, driver.Options{}); err == nil {
		t.Fatal("expected failure for the unreadable input")
	}
}
