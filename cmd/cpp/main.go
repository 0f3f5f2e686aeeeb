package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ucfjimg/cpp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cpp",
	Short: "C preprocessor front end",
	Long:  `cpp runs translation phases 1-3: it turns C source files into a normalized stream of preprocessing tokens`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(charsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringArrayP("include", "I", nil, "add a directory to the include search path")
	rootCmd.PersistentFlags().StringArrayP("define", "D", nil, "predefine a macro for the expansion phase")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode == "auto" && isTerminal(f))
}
