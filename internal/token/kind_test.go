package token_test

import (
	"testing"

	"github.com/ucfjimg/cpp/internal/token"
)

func TestLexemeRoundTrip(t *testing.T) {
	for text, kind := range token.Puncts {
		if got := kind.Lexeme(); got != text {
			t.Errorf("Lexeme(%v) = %q, want %q", kind, got, text)
		}
	}
	if token.Ident.Lexeme() != "" {
		t.Error("non-punctuator kinds have no lexeme")
	}
}

func TestKindString(t *testing.T) {
	if token.LeftShiftAssign.String() != "LeftShiftAssign" {
		t.Errorf("String = %q", token.LeftShiftAssign.String())
	}
	if token.Kind(200).String() != "Kind(?)" {
		t.Errorf("out-of-range String = %q", token.Kind(200).String())
	}
}

func TestClassifiers(t *testing.T) {
	if !(token.Token{Kind: token.Number}).IsLiteral() {
		t.Error("Number should be a literal")
	}
	if (token.Token{Kind: token.BlockComment}).IsPunct() {
		t.Error("comment openers are not punctuators")
	}
	if !(token.Token{Kind: token.Comma}).IsPunct() {
		t.Error("Comma is a punctuator")
	}
	if !(token.Token{Kind: token.EOF}).IsEOF() {
		t.Error("EOF classifier")
	}
}
