package lexer

import (
	"github.com/ucfjimg/cpp/internal/ccerror"
	"github.com/ucfjimg/cpp/internal/source"
)

// skipBlockComment consumes a block comment body after the automaton has
// already eaten the opener, watching for the first '*' immediately
// followed by '/'. A splice between the '*' and the '/' still terminates
// the comment, because the cursor below has removed it. End of input
// first is a failure at the comment opener; by then the rest of the input
// has been consumed as comment text.
func skipBlockComment(sp source.Splicer, open source.Point) error {
	star := false
	for {
		sc, ok := sp.Next()
		if !ok {
			return ccerror.AtPoint("unterminated block comment", open)
		}
		if star && sc.Ch == '/' {
			return nil
		}
		star = sc.Ch == '*'
	}
}

// skipLineComment consumes up to the end of the line. The newline itself
// is left for the whitespace pass so it still lands in trivia and in the
// newline-seen signal.
func skipLineComment(sp source.Splicer) {
	for {
		sc, ok := sp.Peek()
		if !ok || sc.Ch == '\n' {
			return
		}
		sp.Next()
	}
}
