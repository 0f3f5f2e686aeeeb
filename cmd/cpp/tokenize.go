package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ucfjimg/cpp/internal/diagfmt"
	"github.com/ucfjimg/cpp/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.c...",
	Short: "Tokenize C source files",
	Long:  `Tokenize runs translation phases 1-3 on each file and dumps the resulting preprocessing tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := buildOptions(cmd, args[0])
	if err != nil {
		return err
	}

	results, err := driver.TokenizeAll(context.Background(), args, opts)
	if err != nil {
		return err
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: true,
	}
	lexFailures := 0
	for _, res := range results {
		for _, lexErr := range res.Errors {
			diagfmt.PrettyError(os.Stderr, lexErr, res.Source, prettyOpts)
			lexFailures++
		}
		if len(results) > 1 && format == "pretty" {
			fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		}
		switch format {
		case "pretty":
			err = diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, res.Source)
		case "json":
			err = diagfmt.FormatTokensJSON(os.Stdout, res.Tokens, res.Source)
		case "msgpack":
			err = diagfmt.FormatTokensMsgpack(os.Stdout, res.Tokens, res.Source)
		}
		if err != nil {
			return err
		}
	}

	if lexFailures > 0 {
		return fmt.Errorf("%d lexical error(s)", lexFailures)
	}
	return nil
}
