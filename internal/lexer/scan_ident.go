package lexer

import (
	"strings"

	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// scanIdent consumes an identifier: an ASCII letter or underscore, then
// any run of alphanumerics and underscores. Keywords do not exist at this
// layer; every name is an Ident.
func scanIdent(sp source.Splicer, newline bool) token.Token {
	first, _ := sp.Next()
	var b strings.Builder
	b.WriteRune(first.Ch)
	for {
		sc, ok := sp.Peek()
		if !ok || !isIdentCont(sc.Ch) {
			break
		}
		sp.Next()
		b.WriteRune(sc.Ch)
	}
	return token.Token{Kind: token.Ident, Text: b.String(), Pos: first.Pt, Newline: newline}
}
