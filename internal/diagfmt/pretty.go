package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/ucfjimg/cpp/internal/ccerror"
	"github.com/ucfjimg/cpp/internal/source"
)

// PrettyOpts configures error rendering.
type PrettyOpts struct {
	Color   bool
	Context bool // print the offending source line with a caret
}

var errorLabel = color.New(color.FgRed, color.Bold)

// PrettyError renders one error the compiler-driver way:
//
//	<file>:<line>:<col>: error: <message>
//	    <source line>
//	    ^
//
// The caret honors the display width of the prefix, so wide runes do not
// shift it.
func PrettyError(w io.Writer, err *ccerror.CcError, src *source.Source, opts PrettyOpts) {
	label := "error:"
	if opts.Color {
		label = errorLabel.Sprint(label)
	}

	if err.Loc == nil {
		fmt.Fprintf(w, "cpp: %s %s\n", label, err.What)
		return
	}

	name, ok := src.Filename(err.Loc.File)
	if !ok {
		name = "<unknown>"
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s\n", name, err.Loc.Line, err.Loc.Col, label, err.What)

	if !opts.Context {
		return
	}
	line, ok := src.Line(err.Loc.File, err.Loc.Line)
	if !ok {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	runes := []rune(line)
	col := int(err.Loc.Col) - 1
	if col > len(runes) {
		col = len(runes)
	}
	pad := runewidth.StringWidth(string(runes[:col]))
	fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", pad))
}
