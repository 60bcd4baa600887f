// Package visitor implements the one canonical pre/in/post walk of a
// Decaf AST (§4.3). A Visitor is a capability set of per-variant
// callbacks; BaseVisitor supplies a no-op default for every one of
// them, so a concrete pass embeds BaseVisitor and overrides only the
// methods it cares about instead of implementing all thirty-one.
package visitor

import "github.com/cwbudde/decaf/internal/ast"

// Visitor is invoked by Walk at each point the traversal order in §4.3
// names. Visitor-local state belongs on the concrete type embedding
// BaseVisitor, not in a side channel threaded by Walk.
type Visitor interface {
	PreProgram(*ast.Program)
	PostProgram(*ast.Program)

	PreVarDecl(*ast.VarDecl)
	PostVarDecl(*ast.VarDecl)

	PreFuncDecl(*ast.FuncDecl)
	PostFuncDecl(*ast.FuncDecl)

	PreBlock(*ast.Block)
	PostBlock(*ast.Block)

	PreAssignment(*ast.Assignment)
	PostAssignment(*ast.Assignment)

	PreConditional(*ast.Conditional)
	PostConditional(*ast.Conditional)

	PreWhileLoop(*ast.WhileLoop)
	PostWhileLoop(*ast.WhileLoop)

	PreReturn(*ast.Return)
	PostReturn(*ast.Return)

	PreBreak(*ast.Break)
	PostBreak(*ast.Break)

	PreContinue(*ast.Continue)
	PostContinue(*ast.Continue)

	PreBinaryOp(*ast.BinaryOp)
	InBinaryOp(*ast.BinaryOp)
	PostBinaryOp(*ast.BinaryOp)

	PreUnaryOp(*ast.UnaryOp)
	PostUnaryOp(*ast.UnaryOp)

	PreLocation(*ast.Location)
	PostLocation(*ast.Location)

	PreFuncCall(*ast.FuncCall)
	PostFuncCall(*ast.FuncCall)

	PreLiteral(*ast.Literal)
	PostLiteral(*ast.Literal)
}

// BaseVisitor implements Visitor with every callback a no-op. Embed it
// in a concrete pass and override only the methods that pass needs.
type BaseVisitor struct{}

func (BaseVisitor) PreProgram(*ast.Program)   {}
func (BaseVisitor) PostProgram(*ast.Program)  {}
func (BaseVisitor) PreVarDecl(*ast.VarDecl)   {}
func (BaseVisitor) PostVarDecl(*ast.VarDecl)  {}
func (BaseVisitor) PreFuncDecl(*ast.FuncDecl) {}
func (BaseVisitor) PostFuncDecl(*ast.FuncDecl) {}
func (BaseVisitor) PreBlock(*ast.Block)        {}
func (BaseVisitor) PostBlock(*ast.Block)       {}
func (BaseVisitor) PreAssignment(*ast.Assignment)  {}
func (BaseVisitor) PostAssignment(*ast.Assignment) {}
func (BaseVisitor) PreConditional(*ast.Conditional)  {}
func (BaseVisitor) PostConditional(*ast.Conditional) {}
func (BaseVisitor) PreWhileLoop(*ast.WhileLoop)  {}
func (BaseVisitor) PostWhileLoop(*ast.WhileLoop) {}
func (BaseVisitor) PreReturn(*ast.Return)   {}
func (BaseVisitor) PostReturn(*ast.Return)  {}
func (BaseVisitor) PreBreak(*ast.Break)     {}
func (BaseVisitor) PostBreak(*ast.Break)    {}
func (BaseVisitor) PreContinue(*ast.Continue)  {}
func (BaseVisitor) PostContinue(*ast.Continue) {}
func (BaseVisitor) PreBinaryOp(*ast.BinaryOp)  {}
func (BaseVisitor) InBinaryOp(*ast.BinaryOp)   {}
func (BaseVisitor) PostBinaryOp(*ast.BinaryOp) {}
func (BaseVisitor) PreUnaryOp(*ast.UnaryOp)  {}
func (BaseVisitor) PostUnaryOp(*ast.UnaryOp) {}
func (BaseVisitor) PreLocation(*ast.Location)  {}
func (BaseVisitor) PostLocation(*ast.Location) {}
func (BaseVisitor) PreFuncCall(*ast.FuncCall)  {}
func (BaseVisitor) PostFuncCall(*ast.FuncCall) {}
func (BaseVisitor) PreLiteral(*ast.Literal)  {}
func (BaseVisitor) PostLiteral(*ast.Literal) {}

// Walk drives v over n and its descendants in the fixed order §4.3
// prescribes. n must be one of the fifteen concrete node types.
func Walk(v Visitor, n ast.Node) {
	switch t := n.(type) {
	case *ast.Program:
		v.PreProgram(t)
		for _, g := range t.Vars {
			Walk(v, g)
		}
		for _, f := range t.Funcs {
			Walk(v, f)
		}
		v.PostProgram(t)

	case *ast.VarDecl:
		v.PreVarDecl(t)
		v.PostVarDecl(t)

	case *ast.FuncDecl:
		v.PreFuncDecl(t)
		Walk(v, t.Body)
		v.PostFuncDecl(t)

	case *ast.Block:
		v.PreBlock(t)
		for _, d := range t.Vars {
			Walk(v, d)
		}
		for _, s := range t.Stmts {
			Walk(v, s)
		}
		v.PostBlock(t)

	case *ast.Assignment:
		v.PreAssignment(t)
		Walk(v, t.Target)
		Walk(v, t.Value)
		v.PostAssignment(t)

	case *ast.Conditional:
		v.PreConditional(t)
		Walk(v, t.Cond)
		Walk(v, t.Then)
		if t.Else != nil {
			Walk(v, t.Else)
		}
		v.PostConditional(t)

	case *ast.WhileLoop:
		v.PreWhileLoop(t)
		Walk(v, t.Cond)
		Walk(v, t.Body)
		v.PostWhileLoop(t)

	case *ast.Return:
		v.PreReturn(t)
		if t.Value != nil {
			Walk(v, t.Value)
		}
		v.PostReturn(t)

	case *ast.Break:
		v.PreBreak(t)
		v.PostBreak(t)

	case *ast.Continue:
		v.PreContinue(t)
		v.PostContinue(t)

	case *ast.BinaryOp:
		v.PreBinaryOp(t)
		Walk(v, t.Left)
		v.InBinaryOp(t)
		Walk(v, t.Right)
		v.PostBinaryOp(t)

	case *ast.UnaryOp:
		v.PreUnaryOp(t)
		Walk(v, t.Child)
		v.PostUnaryOp(t)

	case *ast.Location:
		v.PreLocation(t)
		if t.Index != nil {
			Walk(v, t.Index)
		}
		v.PostLocation(t)

	case *ast.FuncCall:
		v.PreFuncCall(t)
		for _, a := range t.Args {
			Walk(v, a)
		}
		v.PostFuncCall(t)

	case *ast.Literal:
		v.PreLiteral(t)
		v.PostLiteral(t)

	default:
		panic("visitor: unknown node type in Walk")
	}
}
