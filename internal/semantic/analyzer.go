package semantic

import (
	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/diag"
	"github.com/cwbudde/decaf/internal/types"
	"github.com/cwbudde/decaf/internal/visitor"
)

// analyzer is the checker pass (§4.6): it attaches an inferred `type`
// to every expression node and emits a diagnostic for every violated
// rule. It threads its context -- the current function's return type
// and the in_loop/in_block/in_function/in_conditional flags -- as its
// own fields rather than a separately-passed object, since a Walk
// callback has nowhere else to keep visitor-local state.
//
// Scope lookups reuse the scope tree BuildSymbolTablesPass already
// built: analyzer pushes/pops the same *SymbolTable each node attached
// to, so at any point in the traversal the top of its stack already is
// "the nearest ancestor with a symbolTable attribute" -- an equivalent,
// cheaper realization of the walk-up-through-parent resolver described
// for callers that do not already track scope during traversal.
type analyzer struct {
	visitor.BaseVisitor

	diags []diag.Diagnostic
	scope []*SymbolTable

	returnType types.DecafType
	inFunction bool
	inBlock    bool
	loopDepth  int
	inCond     bool

	mainSym *Symbol

	locSym  map[*ast.Location]*Symbol
	callSym map[*ast.FuncCall]*Symbol
}

func newAnalyzer() *analyzer {
	return &analyzer{
		locSym:  make(map[*ast.Location]*Symbol),
		callSym: make(map[*ast.FuncCall]*Symbol),
	}
}

// Analyze runs the checker pass over an already-decorated tree
// (SetParent, CalcDepth, and BuildSymbolTables must already have run --
// a violation is a programmer error, surfaced via the same panics the
// attribute accessors already raise on unset attributes, not a
// diagnostic, per §6). It returns the ordered diagnostic list; an empty
// list means the program is semantically valid.
func Analyze(program *ast.Program) []diag.Diagnostic {
	a := newAnalyzer()
	visitor.Walk(a, program)
	return a.diags
}

// AnalyzePass adapts Analyze to the Pass interface so it can be the
// last stage of a PassManager pipeline.
type AnalyzePass struct{}

func (AnalyzePass) Name() string { return "Analyze" }

func (AnalyzePass) Run(program *ast.Program) []diag.Diagnostic {
	return Analyze(program)
}

func (a *analyzer) report(d diag.Diagnostic) { a.diags = append(a.diags, d) }

func (a *analyzer) top() *SymbolTable { return a.scope[len(a.scope)-1] }

func (a *analyzer) pushScope(st *SymbolTable) { a.scope = append(a.scope, st) }

func (a *analyzer) popScope() { a.scope = a.scope[:len(a.scope)-1] }

func exprType(e ast.Expr) (types.DecafType, bool) {
	if !e.HasType() {
		return types.Unknown, false
	}
	return e.Type(), true
}

func (a *analyzer) checkDuplicates(st *SymbolTable) {
	for _, sym := range st.Duplicates() {
		a.report(diag.NewDuplicateName(sym.Line, sym.Name))
	}
}

// --- Program ---

func (a *analyzer) PreProgram(n *ast.Program) {
	root := n.SymbolTable().(*SymbolTable)
	a.pushScope(root)

	if sym, ok := root.Resolve("main"); !ok {
		a.report(diag.NewMissingMain(n.Line()))
	} else if sym.Kind != SymbolFunction {
		a.report(diag.NewMainNotFunction(n.Line()))
	} else if len(sym.Params) != 0 {
		a.report(diag.NewMainHasParameters(n.Line()))
	} else {
		a.mainSym = sym
	}

	a.checkDuplicates(root)
}

func (a *analyzer) PostProgram(n *ast.Program) {
	if a.mainSym != nil && a.mainSym.Type != types.Int {
		a.report(diag.NewMainNotInt(n.Line()))
	}
	a.popScope()
}

// --- VarDecl ---

func (a *analyzer) PreVarDecl(n *ast.VarDecl) {
	n.SetType(n.DeclType)
}

func (a *analyzer) PostVarDecl(n *ast.VarDecl) {
	if n.DeclType == types.Void {
		a.report(diag.NewVoidVariable(n.Line(), n.Name))
	}
	if n.IsArray {
		if n.ArrayLength < 1 {
			a.report(diag.NewBadArrayLength(n.Line(), n.Name, n.ArrayLength))
		}
		if _, global := n.Parent().(*ast.Program); !global {
			a.report(diag.NewArrayNotGlobal(n.Line(), n.Name))
		}
	}
}

// --- FuncDecl ---

func (a *analyzer) PreFuncDecl(n *ast.FuncDecl) {
	a.returnType = n.ReturnType
	a.inFunction = true
	a.pushScope(n.SymbolTable().(*SymbolTable))
}

func (a *analyzer) PostFuncDecl(n *ast.FuncDecl) {
	a.inFunction = false
	a.checkDuplicates(a.top())
	a.popScope()
}

// --- Block ---

func (a *analyzer) PreBlock(n *ast.Block) {
	a.inBlock = true
	a.pushScope(n.SymbolTable().(*SymbolTable))
}

func (a *analyzer) PostBlock(n *ast.Block) {
	a.inBlock = false
	a.checkDuplicates(a.top())
	a.popScope()
}

// --- Assignment ---

func (a *analyzer) PostAssignment(n *ast.Assignment) {
	lt, lok := exprType(n.Target)
	rt, rok := exprType(n.Value)
	if lok && rok && lt != rt {
		a.report(diag.NewAssignmentTypeMismatch(n.Line()))
	}
}

// --- Conditional ---

func (a *analyzer) PreConditional(*ast.Conditional) { a.inCond = true }

func (a *analyzer) PostConditional(n *ast.Conditional) {
	a.inCond = false
	if t, ok := exprType(n.Cond); ok && t != types.Bool {
		a.report(diag.NewConditionNotBool(n.Line()))
	}
}

// --- WhileLoop ---

func (a *analyzer) PreWhileLoop(*ast.WhileLoop) { a.loopDepth++ }

func (a *analyzer) PostWhileLoop(n *ast.WhileLoop) {
	a.loopDepth--
	if t, ok := exprType(n.Cond); ok && t != types.Bool {
		a.report(diag.NewConditionNotBool(n.Line()))
	}
}

// --- Return ---

func (a *analyzer) PostReturn(n *ast.Return) {
	if n.Value == nil {
		if a.returnType != types.Void {
			a.report(diag.NewInvalidBareReturn(n.Line()))
		}
		return
	}
	if t, ok := exprType(n.Value); ok && t != a.returnType {
		a.report(diag.NewReturnTypeMismatch(n.Line()))
	}
}

// --- Break / Continue ---

func (a *analyzer) PreBreak(n *ast.Break) {
	if a.loopDepth == 0 {
		a.report(diag.NewBreakOutsideLoop(n.Line()))
	}
}

func (a *analyzer) PreContinue(n *ast.Continue) {
	if a.loopDepth == 0 {
		a.report(diag.NewContinueOutsideLoop(n.Line()))
	}
}

// --- BinaryOp ---

// PreBinaryOp sets the operator-driven result type before operands are
// visited, so an enclosing node always sees a type here even when the
// operands themselves are ill-typed (§4.6).
func (a *analyzer) PreBinaryOp(n *ast.BinaryOp) {
	if n.Op.IsArithmetic() {
		n.SetType(types.Int)
	} else {
		n.SetType(types.Bool)
	}
}

func (a *analyzer) PostBinaryOp(n *ast.BinaryOp) {
	lt, lok := exprType(n.Left)
	rt, rok := exprType(n.Right)
	if !lok || !rok {
		return
	}
	switch {
	case n.Op.IsLogical():
		if lt != types.Bool || rt != types.Bool {
			a.report(diag.NewOperandTypeMismatch(n.Line(), n.Op.String()))
		}
	case n.Op.IsEquality():
		if lt != rt {
			a.report(diag.NewOperandTypeMismatch(n.Line(), n.Op.String()))
		}
	case n.Op.IsRelational(), n.Op.IsArithmetic():
		if lt != types.Int || rt != types.Int {
			a.report(diag.NewOperandTypeMismatch(n.Line(), n.Op.String()))
		}
	}
}

// --- UnaryOp ---

func (a *analyzer) PostUnaryOp(n *ast.UnaryOp) {
	want := types.Bool
	result := types.Bool
	if n.Op == ast.OpNegate {
		want = types.Int
		result = types.Int
	}
	if t, ok := exprType(n.Child); ok && t != want {
		a.report(diag.NewOperandTypeMismatch(n.Line(), n.Op.String()))
	}
	n.SetType(result)
}

// --- Location ---

func (a *analyzer) PreLocation(n *ast.Location) {
	sym, ok := a.top().Resolve(n.Name)
	if !ok {
		a.report(diag.NewUndefinedVariable(n.Line(), n.Name))
		return
	}
	a.locSym[n] = sym
	n.SetType(sym.Type)
}

func (a *analyzer) PostLocation(n *ast.Location) {
	sym, ok := a.locSym[n]
	if !ok {
		return
	}
	switch sym.Kind {
	case SymbolArray:
		if n.Index == nil {
			a.report(diag.NewMissingIndex(n.Line(), n.Name))
			return
		}
		if t, ok := exprType(n.Index); ok && t != types.Int {
			a.report(diag.NewIndexNotInt(n.Line(), n.Name))
		}
	default:
		if n.Index != nil {
			a.report(diag.NewScalarIndexed(n.Line(), n.Name))
		}
	}
}

// --- FuncCall ---

func (a *analyzer) PreFuncCall(n *ast.FuncCall) {
	sym, ok := a.top().Resolve(n.Name)
	if !ok || sym.Kind != SymbolFunction {
		a.report(diag.NewUndefinedFunction(n.Line(), n.Name))
		return
	}
	a.callSym[n] = sym
	n.SetType(sym.Type)
}

func (a *analyzer) PostFuncCall(n *ast.FuncCall) {
	sym, ok := a.callSym[n]
	if !ok {
		return
	}
	if len(n.Args) != len(sym.Params) {
		a.report(diag.NewArgumentCountMismatch(n.Line(), n.Name, len(sym.Params), len(n.Args)))
		return
	}
	for i, arg := range n.Args {
		t, ok := exprType(arg)
		if !ok {
			continue
		}
		if t != sym.Params[i].Type {
			a.report(diag.NewArgumentTypeMismatch(n.Line(), n.Name, i+1))
		}
	}
}

// --- Literal ---

func (a *analyzer) PreLiteral(n *ast.Literal) {
	switch n.Kind {
	case ast.LiteralInt:
		n.SetType(types.Int)
	case ast.LiteralBool:
		n.SetType(types.Bool)
	case ast.LiteralStr:
		n.SetType(types.Str)
	}
}
