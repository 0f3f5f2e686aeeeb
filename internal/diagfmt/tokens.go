// Package diagfmt renders tokens and errors for humans and machines. It
// only formats; nothing here mutates a stream or decides policy.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// TokenOutput is the serialized shape of one token for the json and
// msgpack dump formats.
type TokenOutput struct {
	Kind    string `json:"kind" msgpack:"kind"`
	Text    string `json:"text,omitempty" msgpack:"text"`
	File    string `json:"file,omitempty" msgpack:"file"`
	Line    uint32 `json:"line" msgpack:"line"`
	Col     uint32 `json:"col" msgpack:"col"`
	Newline bool   `json:"newline,omitempty" msgpack:"newline"`
}

// FormatTokensPretty prints one token per line with its position and, for
// tokens that carry text, the spelling.
func FormatTokensPretty(w io.Writer, toks []token.Token, src *source.Source) error {
	for i, tok := range toks {
		fmt.Fprintf(w, "%4d: %-16s", i+1, tok.Kind.String())
		if text := displayText(tok); text != "" {
			fmt.Fprintf(w, " %q", text)
		}
		if tok.Kind != token.EOF {
			name, _ := src.Filename(tok.Pos.File)
			fmt.Fprintf(w, " at %s:%d:%d", name, tok.Pos.Line, tok.Pos.Col)
		}
		if tok.Newline {
			fmt.Fprint(w, " (line start)")
		}
		fmt.Fprintln(w)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, toks []token.Token, src *source.Source) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenOutputs(toks, src))
}

// FormatTokensMsgpack writes the stream as a compact msgpack array, for
// feeding downstream tools without re-lexing.
func FormatTokensMsgpack(w io.Writer, toks []token.Token, src *source.Source) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(toks, src))
}

func tokenOutputs(toks []token.Token, src *source.Source) []TokenOutput {
	out := make([]TokenOutput, 0, len(toks))
	for _, tok := range toks {
		rec := TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    displayText(tok),
			Line:    tok.Pos.Line,
			Col:     tok.Pos.Col,
			Newline: tok.Newline,
		}
		if tok.Kind != token.EOF {
			rec.File, _ = src.Filename(tok.Pos.File)
		}
		out = append(out, rec)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// displayText prefers the token's own text and falls back to the fixed
// spelling of a punctuator.
func displayText(tok token.Token) string {
	if tok.Text != "" {
		return tok.Text
	}
	return tok.Kind.Lexeme()
}
