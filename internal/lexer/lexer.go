// Package lexer scans preprocessing tokens from a source stream: the
// tokenizer of translation phase 3, sitting on the splice-aware cursor of
// phase 2. It holds no state of its own between calls; everything durable
// lives in the stream's cursors, so error recovery is just calling Next
// again.
package lexer

import (
	"strings"

	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// Next returns the next pp-token from the stream. Consumed whitespace is
// appended to trivia verbatim, and each comment contributes exactly one
// space there — a comment behaves as one space, but its extent must not
// silently vanish from the reconstructed text. After the stream runs dry
// Next keeps returning EOF.
func Next(src *source.Source, trivia *strings.Builder) (token.Token, error) {
	sp := source.NewSplicer(src)
	sawNewline := false
	for {
		for {
			sc, ok := sp.Peek()
			if !ok || !isSpace(sc.Ch) {
				break
			}
			sp.Next()
			trivia.WriteRune(sc.Ch)
			if sc.Ch == '\n' {
				sawNewline = true
			}
		}

		sc, ok := sp.Peek()
		if !ok {
			return token.Token{Kind: token.EOF, Newline: sawNewline}, nil
		}

		switch {
		case isIdentStart(sc.Ch):
			return scanIdent(sp, sawNewline), nil
		case isDigit(sc.Ch) || sc.Ch == '.' && digitFollows(sp):
			// the lookahead past the '.' must run before punctuator
			// matching, or ".5" would lex as Dot Number
			return scanNumber(sp, sawNewline), nil
		case sc.Ch == '\'' || sc.Ch == '"':
			return scanLiteral(sp, sawNewline)
		}

		kind, matched := matchPunct(sp)
		if !matched {
			// includes a bare backslash that is not part of a splice
			sp.Next()
			return token.Token{Kind: token.Other, Text: string(sc.Ch), Pos: sc.Pt, Newline: sawNewline}, nil
		}

		switch kind {
		case token.BlockComment:
			if err := skipBlockComment(sp, sc.Pt); err != nil {
				return token.Token{}, err
			}
		case token.LineComment:
			skipLineComment(sp)
		default:
			return token.Token{Kind: kind, Pos: sc.Pt, Newline: sawNewline}, nil
		}
		trivia.WriteByte(' ')
	}
}

// ASCII classifiers. Identifiers are deliberately ASCII-only at this
// layer; extended characters fall through to Other.

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f':
		return true
	}
	return false
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch rune) bool { return isIdentStart(ch) || isDigit(ch) }

// pp-numbers also swallow dots; exponent signs are handled in scanNumber.
func isNumberCont(ch rune) bool { return isIdentCont(ch) || ch == '.' }

func digitFollows(sp source.Splicer) bool {
	sc, ok := sp.PeekN(1)
	return ok && isDigit(sc.Ch)
}
