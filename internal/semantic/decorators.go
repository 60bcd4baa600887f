package semantic

import (
	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/diag"
	"github.com/cwbudde/decaf/internal/visitor"
)

// setParentVisitor writes a `parent` attribute on every direct child of
// a composite node, referencing the enclosing node (§4.4). It is a
// pre-order pass: the "current parent" is simply the node whose Pre
// callback is running, passed in as that callback's argument, so the
// visitor keeps no state of its own and needs no stack.
type setParentVisitor struct {
	visitor.BaseVisitor
}

func (v *setParentVisitor) PreProgram(n *ast.Program) {
	for _, g := range n.Vars {
		g.SetParent(n)
	}
	for _, f := range n.Funcs {
		f.SetParent(n)
	}
}

func (v *setParentVisitor) PreFuncDecl(n *ast.FuncDecl) {
	n.Body.SetParent(n)
}

func (v *setParentVisitor) PreBlock(n *ast.Block) {
	for _, d := range n.Vars {
		d.SetParent(n)
	}
	for _, s := range n.Stmts {
		s.SetParent(n)
	}
}

func (v *setParentVisitor) PreAssignment(n *ast.Assignment) {
	n.Target.SetParent(n)
	n.Value.SetParent(n)
}

func (v *setParentVisitor) PreConditional(n *ast.Conditional) {
	n.Cond.SetParent(n)
	n.Then.SetParent(n)
	if n.Else != nil {
		n.Else.SetParent(n)
	}
}

func (v *setParentVisitor) PreWhileLoop(n *ast.WhileLoop) {
	n.Cond.SetParent(n)
	n.Body.SetParent(n)
}

func (v *setParentVisitor) PreReturn(n *ast.Return) {
	if n.Value != nil {
		n.Value.SetParent(n)
	}
}

func (v *setParentVisitor) PreBinaryOp(n *ast.BinaryOp) {
	n.Left.SetParent(n)
	n.Right.SetParent(n)
}

func (v *setParentVisitor) PreUnaryOp(n *ast.UnaryOp) {
	n.Child.SetParent(n)
}

func (v *setParentVisitor) PreLocation(n *ast.Location) {
	if n.Index != nil {
		n.Index.SetParent(n)
	}
}

func (v *setParentVisitor) PreFuncCall(n *ast.FuncCall) {
	for _, a := range n.Args {
		a.SetParent(n)
	}
}

// SetParentPass writes the `parent` attribute on every non-root node.
type SetParentPass struct{}

func (SetParentPass) Name() string { return "SetParent" }

func (SetParentPass) Run(program *ast.Program) []diag.Diagnostic {
	visitor.Walk(&setParentVisitor{}, program)
	return nil
}

// calcDepthVisitor assigns depth = 0 to the root and
// depth = parent.depth + 1 to every other node, as each node's Pre
// callback runs (so a child always sees its parent's depth already
// set, since SetParent has already run and Walk visits parents before
// children).
type calcDepthVisitor struct {
	visitor.BaseVisitor
}

func setDepth(n ast.Node) {
	if !n.HasParent() {
		n.SetDepth(0)
		return
	}
	n.SetDepth(n.Parent().Depth() + 1)
}

func (v *calcDepthVisitor) PreProgram(n *ast.Program)         { setDepth(n) }
func (v *calcDepthVisitor) PreVarDecl(n *ast.VarDecl)         { setDepth(n) }
func (v *calcDepthVisitor) PreFuncDecl(n *ast.FuncDecl)       { setDepth(n) }
func (v *calcDepthVisitor) PreBlock(n *ast.Block)             { setDepth(n) }
func (v *calcDepthVisitor) PreAssignment(n *ast.Assignment)   { setDepth(n) }
func (v *calcDepthVisitor) PreConditional(n *ast.Conditional) { setDepth(n) }
func (v *calcDepthVisitor) PreWhileLoop(n *ast.WhileLoop)     { setDepth(n) }
func (v *calcDepthVisitor) PreReturn(n *ast.Return)           { setDepth(n) }
func (v *calcDepthVisitor) PreBreak(n *ast.Break)             { setDepth(n) }
func (v *calcDepthVisitor) PreContinue(n *ast.Continue)       { setDepth(n) }
func (v *calcDepthVisitor) PreBinaryOp(n *ast.BinaryOp)       { setDepth(n) }
func (v *calcDepthVisitor) PreUnaryOp(n *ast.UnaryOp)         { setDepth(n) }
func (v *calcDepthVisitor) PreLocation(n *ast.Location)       { setDepth(n) }
func (v *calcDepthVisitor) PreFuncCall(n *ast.FuncCall)       { setDepth(n) }
func (v *calcDepthVisitor) PreLiteral(n *ast.Literal)         { setDepth(n) }

// CalcDepthPass assigns `depth` to every node. Must run after
// SetParentPass (§4.4).
type CalcDepthPass struct{}

func (CalcDepthPass) Name() string { return "CalcDepth" }

func (CalcDepthPass) Run(program *ast.Program) []diag.Diagnostic {
	visitor.Walk(&calcDepthVisitor{}, program)
	return nil
}
