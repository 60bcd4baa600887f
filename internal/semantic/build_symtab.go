package semantic

import (
	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/diag"
	"github.com/cwbudde/decaf/internal/types"
	"github.com/cwbudde/decaf/internal/visitor"
)

// builtinFunctions are installed at the root scope of every fresh run
// (§3: "the program scope contains three built-ins").
func builtinFunctions() []*Symbol {
	return []*Symbol{
		{Name: "print_int", Kind: SymbolFunction, Type: types.Void, Params: []Param{{Name: "v", Type: types.Int}}},
		{Name: "print_bool", Kind: SymbolFunction, Type: types.Void, Params: []Param{{Name: "v", Type: types.Bool}}},
		{Name: "print_str", Kind: SymbolFunction, Type: types.Void, Params: []Param{{Name: "v", Type: types.Str}}},
	}
}

// symTabBuilder implements the symbol-table builder pass (§4.5) as a
// visitor whose own scope stack is its visitor-local state -- modelled
// as an explicit slice rather than a reassignable pointer, so pop is
// unambiguous.
type symTabBuilder struct {
	visitor.BaseVisitor
	stack []*SymbolTable
}

func (b *symTabBuilder) top() *SymbolTable { return b.stack[len(b.stack)-1] }

func (b *symTabBuilder) push(st *SymbolTable) { b.stack = append(b.stack, st) }

func (b *symTabBuilder) pop() { b.stack = b.stack[:len(b.stack)-1] }

func (b *symTabBuilder) PreProgram(n *ast.Program) {
	root := NewSymbolTable("program", nil)
	n.SetSymbolTable(root)
	b.push(root)

	for _, sym := range builtinFunctions() {
		root.Define(sym)
	}
	for _, f := range n.Funcs {
		params := make([]Param, len(f.Params))
		for i, p := range f.Params {
			params[i] = Param{Name: p.Name, Type: p.Type}
		}
		root.Define(&Symbol{Name: f.Name, Kind: SymbolFunction, Type: f.ReturnType, Params: params, Line: f.Line()})
	}
}

func (b *symTabBuilder) PostProgram(*ast.Program) { b.pop() }

func (b *symTabBuilder) PreFuncDecl(n *ast.FuncDecl) {
	scope := NewSymbolTable(n.Name, b.top())
	n.SetSymbolTable(scope)
	b.push(scope)
	for _, p := range n.Params {
		scope.Define(&Symbol{Name: p.Name, Kind: SymbolScalar, Type: p.Type, ArrayLength: 1, Line: n.Line()})
	}
}

func (b *symTabBuilder) PostFuncDecl(*ast.FuncDecl) { b.pop() }

// PreBlock always opens a fresh child scope, including a FuncDecl's own
// body block: FuncDecl and Block are independently listed as
// symbolTable holders (§3), so a function's parameters live one scope
// out from its body's locals.
func (b *symTabBuilder) PreBlock(n *ast.Block) {
	scope := NewSymbolTable("block", b.top())
	n.SetSymbolTable(scope)
	b.push(scope)
}

func (b *symTabBuilder) PostBlock(*ast.Block) { b.pop() }

func (b *symTabBuilder) PreVarDecl(n *ast.VarDecl) {
	kind := SymbolScalar
	length := 1
	if n.IsArray {
		kind = SymbolArray
		length = n.ArrayLength
	}
	b.top().Define(&Symbol{Name: n.Name, Kind: kind, Type: n.DeclType, ArrayLength: length, Line: n.Line()})
}

// BuildSymbolTablesPass creates the scope tree and populates every
// scope with its declarations (§4.5). Must run after SetParentPass and
// CalcDepthPass.
type BuildSymbolTablesPass struct{}

func (BuildSymbolTablesPass) Name() string { return "BuildSymbolTables" }

func (BuildSymbolTablesPass) Run(program *ast.Program) []diag.Diagnostic {
	visitor.Walk(&symTabBuilder{}, program)
	return nil
}
