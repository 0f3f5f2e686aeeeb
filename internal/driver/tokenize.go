// Package driver wires the character stream and the scanner into whole
// runs: resolve a path, push it, lex to EOF, and hand the caller tokens,
// trivia, and whatever recoverable errors came up on the way.
package driver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ucfjimg/cpp/internal/ccerror"
	"github.com/ucfjimg/cpp/internal/lexer"
	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// Options configures a tokenize run.
type Options struct {
	// IncludeDirs are searched, after the path as given, when an input
	// does not resolve directly.
	IncludeDirs []string
	// Defines are recorded on the result for the macro expansion phase.
	// Tokenizing never interprets them.
	Defines []string
}

// Result is everything one translation unit produced. Trivia runs
// parallel to Tokens: Trivia[i] is the whitespace (with comments already
// collapsed to single spaces) consumed before Tokens[i].
type Result struct {
	Path    string
	Source  *source.Source
	Tokens  []token.Token
	Trivia  []string
	Errors  []*ccerror.CcError
	Defines []string
}

// Tokenize pushes one file and lexes to EOF. Lexical errors do not stop
// the run: the cursor has already advanced past the broken construct, so
// scanning simply resumes, and the errors come back on the Result. Only
// an unreadable input fails the call itself.
func Tokenize(path string, opts Options) (*Result, error) {
	resolved := Resolve(path, opts.IncludeDirs)
	src := source.New()
	if err := src.Push(resolved); err != nil {
		return nil, ccerror.Wrap(err)
	}

	res := &Result{Path: resolved, Source: src, Defines: opts.Defines}
	var trivia strings.Builder
	for {
		tok, err := lexer.Next(src, &trivia)
		if err != nil {
			res.Errors = append(res.Errors, ccerror.Wrap(err))
			continue
		}
		res.Tokens = append(res.Tokens, tok)
		res.Trivia = append(res.Trivia, trivia.String())
		trivia.Reset()
		if tok.Kind == token.EOF {
			return res, nil
		}
	}
}

// Resolve maps an input path to the first hit among the path itself and
// the include directories. An unresolvable path comes back unchanged so
// the subsequent read reports the real failure.
func Resolve(path string, includeDirs []string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, dir := range includeDirs {
		cand := filepath.Join(dir, path)
		if _, err := os.Stat(cand); err == nil {
			return cand
		}
	}
	return path
}
