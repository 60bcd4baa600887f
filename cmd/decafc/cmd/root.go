package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decafc",
	Short: "Decaf semantic analyzer",
	Long: `decafc runs the Decaf semantic-analysis pipeline over a YAML AST
fixture: SetParent, CalcDepth, BuildSymbolTables, then Analyze.

It is a thin driver. It owns no analysis logic of its own -- the real
lexer and parser that would normally produce the AST are out of scope
for this repository, so decafc reads a hand-authored fixture instead.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "dump resolved symbol types when analysis reports no diagnostics")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
