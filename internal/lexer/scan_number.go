package lexer

import (
	"strings"

	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// scanNumber consumes a pp-number: alphanumerics, underscores and dots
// accumulate freely, and an 'e' or 'E' drags a directly following sign
// along with it. The result is often not a valid numeric constant —
// "0x1.e+2" and "3..f" both lex as one Number — and that is the point:
// the pp-number grammar is permissive, and the stricter check belongs to
// a later phase.
func scanNumber(sp source.Splicer, newline bool) token.Token {
	first, _ := sp.Peek()
	var b strings.Builder
	for {
		sc, ok := sp.Peek()
		if !ok || !isNumberCont(sc.Ch) {
			break
		}
		sp.Next()
		b.WriteRune(sc.Ch)
		if sc.Ch == 'e' || sc.Ch == 'E' {
			if sign, ok := sp.Peek(); ok && (sign.Ch == '+' || sign.Ch == '-') {
				sp.Next()
				b.WriteRune(sign.Ch)
			}
		}
	}
	return token.Token{Kind: token.Number, Text: b.String(), Pos: first.Pt, Newline: newline}
}
