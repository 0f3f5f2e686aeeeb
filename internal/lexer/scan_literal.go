package lexer

import (
	"strings"

	"github.com/ucfjimg/cpp/internal/ccerror"
	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// scanLiteral consumes a character or string literal. A backslash starts
// an escape sequence that is captured verbatim — recognizing its extent
// is all this layer needs, so an escaped quote cannot terminate the
// literal early; interpretation is deferred. A raw newline or end of
// input before the closing quote fails, positioned at the opening quote.
// The newline itself stays unconsumed, which is what lets a caller resume
// scanning right after the failure.
func scanLiteral(sp source.Splicer, newline bool) (token.Token, error) {
	open, _ := sp.Next()
	kind := token.CharLit
	what := "unterminated character constant"
	if open.Ch == '"' {
		kind = token.StringLit
		what = "unterminated string constant"
	}

	var b strings.Builder
	for {
		sc, ok := sp.Peek()
		if !ok || sc.Ch == '\n' {
			return token.Token{}, ccerror.AtPoint(what, open.Pt)
		}
		sp.Next()
		if sc.Ch == open.Ch {
			return token.Token{Kind: kind, Text: b.String(), Pos: open.Pt, Newline: newline}, nil
		}
		b.WriteRune(sc.Ch)
		if sc.Ch == '\\' {
			// a backslash-newline pair never reaches here: the splice
			// layer below has already removed it
			esc, ok := sp.Next()
			if !ok {
				return token.Token{}, ccerror.AtPoint(what, open.Pt)
			}
			b.WriteRune(esc.Ch)
		}
	}
}
