package ast

import "github.com/cwbudde/decaf/internal/types"

// Param is one entry of a FuncDecl's ordered parameter list. It is not
// an AST node — the visitor does not walk it (§4.3: "Parameters are not
// traversed as nodes").
type Param struct {
	Name string
	Type types.DecafType
}

// Program is the root node. It owns the ordered global VarDecl and
// FuncDecl lists, realized as slices rather than the source's intrusive
// linked NodeList.
type Program struct {
	base
	Vars  []*VarDecl
	Funcs []*FuncDecl
}

func NewProgram(line int) *Program { return &Program{base: base{line: line}} }

func (*Program) node() {}

// VarDecl declares a scalar or array variable. Globals live in
// Program.Vars; locals live in Block.Vars; parameters use Param
// instead, since they are not nodes.
type VarDecl struct {
	base
	Name        string
	DeclType    types.DecafType
	IsArray     bool
	ArrayLength int // not checked here; the analyzer reports arrays below 1; meaningless (treated as 1) for scalars
}

func NewVarDecl(line int, name string, t types.DecafType, isArray bool, arrayLength int) *VarDecl {
	checkName(name)
	return &VarDecl{base: base{line: line}, Name: name, DeclType: t, IsArray: isArray, ArrayLength: arrayLength}
}

func (*VarDecl) node()     {}
func (*VarDecl) stmtNode() {}

// FuncDecl declares a function: name, return type, ordered parameters,
// and a body Block.
type FuncDecl struct {
	base
	Name       string
	ReturnType types.DecafType
	Params     []Param
	Body       *Block
}

func NewFuncDecl(line int, name string, ret types.DecafType, params []Param, body *Block) *FuncDecl {
	checkName(name)
	return &FuncDecl{base: base{line: line}, Name: name, ReturnType: ret, Params: params, Body: body}
}

func (*FuncDecl) node() {}

// Block is a nested lexical scope: ordered local VarDecls plus ordered
// statements.
type Block struct {
	base
	Vars  []*VarDecl
	Stmts []Stmt
}

func NewBlock(line int) *Block { return &Block{base: base{line: line}} }

func (*Block) node()     {}
func (*Block) stmtNode() {}
