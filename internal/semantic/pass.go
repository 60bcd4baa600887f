package semantic

import (
	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/diag"
)

// Pass represents one stage of the SetParent -> CalcDepth ->
// BuildSymbolTables -> Analyze pipeline (§2).
type Pass interface {
	// Name identifies the pass for logging and debugging.
	Name() string

	// Run executes this pass on program, returning any diagnostics it
	// produced. Structural passes (SetParent, CalcDepth,
	// BuildSymbolTables) only decorate the tree and return nil; the
	// analyzer pass is the one that reports violations.
	Run(program *ast.Program) []diag.Diagnostic
}

// PassManager runs a fixed sequence of passes over one AST.
type PassManager struct {
	passes []Pass
}

// NewPassManager builds a manager that runs passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// RunAll executes every pass in order and concatenates their
// diagnostics. Structural passes never fail the pipeline -- semantic
// errors are diagnostics, not Go errors (§4.7).
func (pm *PassManager) RunAll(program *ast.Program) []diag.Diagnostic {
	var all []diag.Diagnostic
	for _, p := range pm.passes {
		all = append(all, p.Run(program)...)
	}
	return all
}

// AddPass appends a pass to the end of the sequence.
func (pm *PassManager) AddPass(p Pass) {
	pm.passes = append(pm.passes, p)
}

// Passes returns the registered passes in run order.
func (pm *PassManager) Passes() []Pass {
	return pm.passes
}
