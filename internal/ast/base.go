// Package ast models the Decaf abstract syntax tree: a tagged sum type
// over fifteen node variants plus the per-node attribute store the
// structural and semantic passes decorate it with.
package ast

import (
	"fmt"

	"github.com/cwbudde/decaf/internal/types"
)

// Scope is the narrow view of a symbol table that ast needs in order to
// hold a `symbolTable` attribute without importing the semantic package
// (which itself imports ast for node payloads). The semantic package's
// SymbolTable implements this interface.
type Scope interface {
	ScopeName() string
}

// Node is the sealed interface implemented by every AST variant. The
// unexported marker method keeps the variant set closed to this package.
type Node interface {
	Line() int
	node()

	HasParent() bool
	Parent() Node
	SetParent(Node)

	HasDepth() bool
	Depth() int
	SetDepth(int)

	HasSymbolTable() bool
	SymbolTable() Scope
	SetSymbolTable(Scope)

	HasType() bool
	Type() types.DecafType
	SetType(types.DecafType)
}

// Expr is the subset of Node that can appear where a value is expected.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the subset of Node that can appear inside a Block's statement
// list.
type Stmt interface {
	Node
	stmtNode()
}

// attrs is the fixed-field realization of the attribute store (§4.1):
// one field per known key, each guarded by a presence bit so Has/Get can
// tell "unset" from "zero value". There is no map[string]any — the key
// set is small and closed, so a struct replaces it entirely.
type attrs struct {
	parent      Node
	hasParent   bool
	depth       int
	hasDepth    bool
	symbolTable Scope
	hasSymTable bool
	typ         types.DecafType
	hasType     bool
}

// base is embedded by every concrete node and supplies the line number
// plus the attrs block. It is not itself a Node: each variant adds line
// tracking via base and the node()/exprNode()/stmtNode() markers.
type base struct {
	line int
	attrs
}

func (b *base) Line() int { return b.line }

func (b *attrs) HasParent() bool { return b.hasParent }

func (b *attrs) Parent() Node {
	if !b.hasParent {
		panic("ast: Parent() read before SetParent()")
	}
	return b.parent
}

func (b *attrs) SetParent(n Node) {
	b.parent = n
	b.hasParent = true
}

func (b *attrs) HasDepth() bool { return b.hasDepth }

func (b *attrs) Depth() int {
	if !b.hasDepth {
		panic("ast: Depth() read before SetDepth()")
	}
	return b.depth
}

func (b *attrs) SetDepth(d int) {
	b.depth = d
	b.hasDepth = true
}

func (b *attrs) HasSymbolTable() bool { return b.hasSymTable }

func (b *attrs) SymbolTable() Scope {
	if !b.hasSymTable {
		panic("ast: SymbolTable() read before SetSymbolTable()")
	}
	return b.symbolTable
}

func (b *attrs) SetSymbolTable(s Scope) {
	b.symbolTable = s
	b.hasSymTable = true
}

func (b *attrs) HasType() bool { return b.hasType }

func (b *attrs) Type() types.DecafType {
	if !b.hasType {
		panic("ast: Type() read before SetType()")
	}
	return b.typ
}

func (b *attrs) SetType(t types.DecafType) {
	b.typ = t
	b.hasType = true
}

// nameLimit mirrors §3's "name (≤ 255 chars)" invariant on VarDecl,
// Location, FuncDecl and FuncCall identifiers.
const nameLimit = 255

func checkName(name string) {
	if len(name) > nameLimit {
		panic(fmt.Sprintf("ast: identifier %q exceeds %d bytes", name, nameLimit))
	}
}
