// Package token defines the preprocessing-token vocabulary produced by
// translation phase 3.
// Invariants:
//   - Token.Pos is the position of the token's first character.
//   - Text holds raw source characters; escapes in literals stay
//     uninterpreted and pp-numbers are not validated.
//   - BlockComment and LineComment never appear in a token stream.
package token

import "github.com/ucfjimg/cpp/internal/source"

// Token is one pp-token.
type Token struct {
	Kind Kind
	// Text carries the token's own characters: identifier and pp-number
	// spellings, literal bodies between the quotes, and the single
	// character of an Other. Punctuators and EOF leave it empty.
	Text string
	Pos  source.Point
	// Newline records that the trivia consumed before this token included
	// a logical newline. The scanner itself never consumes this signal;
	// directive recognition, which must see line starts, does.
	Newline bool
}

// IsLiteral reports whether the token is a pp-number or a character or
// string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is one of the fixed punctuators.
func (t Token) IsPunct() bool {
	return t.Kind >= Hash && t.Kind <= Comma
}

// IsEOF reports whether the token is the terminal sentinel.
func (t Token) IsEOF() bool { return t.Kind == EOF }
