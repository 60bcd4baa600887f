package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/fixture"
	"github.com/cwbudde/decaf/internal/semantic"
	"github.com/cwbudde/decaf/internal/visitor"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture.yaml>",
	Short: "Run the semantic-analysis pipeline over a fixture and print diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	program, err := fixture.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding fixture: %w", err)
	}

	pm := semantic.NewPassManager(
		semantic.SetParentPass{},
		semantic.CalcDepthPass{},
		semantic.BuildSymbolTablesPass{},
		semantic.AnalyzePass{},
	)
	diags := pm.RunAll(program)

	for _, d := range diags {
		fmt.Println(d.Error())
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose && len(diags) == 0 {
		dumpTypes(program)
	}

	if len(diags) > 0 {
		os.Exit(1)
	}
	return nil
}

// dumpTypes exercises the downstream contract (§6): once analysis
// leaves no diagnostics, a caller may read back `symbolTable` and
// `type` from the decorated tree.
func dumpTypes(program *ast.Program) {
	v := &typeDumper{}
	visitor.Walk(v, program)
}

type typeDumper struct {
	visitor.BaseVisitor
}

func (typeDumper) PostVarDecl(n *ast.VarDecl) {
	fmt.Printf("var %s: %s\n", n.Name, n.DeclType)
}

func (typeDumper) PostLocation(n *ast.Location) {
	if n.HasType() {
		fmt.Printf("location %s: %s\n", n.Name, n.Type())
	}
}

func (typeDumper) PostFuncCall(n *ast.FuncCall) {
	if n.HasType() {
		fmt.Printf("call %s: %s\n", n.Name, n.Type())
	}
}
