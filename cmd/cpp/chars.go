package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ucfjimg/cpp/internal/driver"
	"github.com/ucfjimg/cpp/internal/source"
)

var charsCmd = &cobra.Command{
	Use:   "chars [flags] file.c",
	Short: "Dump the normalized source character stream",
	Long:  `Chars prints every character the stream delivers with its position, for debugging line-ending normalization and the include stack`,
	Args:  cobra.ExactArgs(1),
	RunE:  runChars,
}

func runChars(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd, args[0])
	if err != nil {
		return err
	}

	src := source.New()
	if err := src.Push(driver.Resolve(args[0], opts.IncludeDirs)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for {
		sc, ok := src.Next()
		if !ok {
			return nil
		}
		name, _ := src.Filename(sc.Pt.File)
		marker := ""
		if sc.Switched {
			marker = " (switched)"
		}
		fmt.Fprintf(out, "%s@%d:%d: %q%s\n", name, sc.Pt.Line, sc.Pt.Col, sc.Ch, marker)
	}
}
