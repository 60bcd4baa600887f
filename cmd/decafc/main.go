// Command decafc is a thin driver over the Decaf semantic analyzer: it
// decodes a YAML AST fixture and runs the four-pass pipeline, printing
// diagnostics. It owns no analysis logic.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/decaf/cmd/decafc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
