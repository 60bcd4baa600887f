package semantic

import "github.com/cwbudde/decaf/internal/types"

// SymbolKind tags what a Symbol denotes.
type SymbolKind int

const (
	SymbolScalar SymbolKind = iota
	SymbolArray
	SymbolFunction
)

// Symbol is one declared name: its kind, its type (value type for
// scalars/arrays, return type for functions), its array length
// (1 for scalars), and its parameter list when it is a function.
type Symbol struct {
	Name        string
	Kind        SymbolKind
	Type        types.DecafType
	ArrayLength int
	Params      []Param // only meaningful when Kind == SymbolFunction
	Line        int      // declaration site, used by duplicate diagnostics
}

// Param mirrors ast.Param. It is kept as a distinct type since a
// Symbol's parameter list is part of this package's own public surface.
type Param struct {
	Name string
	Type types.DecafType
}

// SymbolTable is one lexical scope: an ordered list of locally declared
// symbols (order matters for duplicate-name diagnostics, §4.2) plus a
// lookup index and an optional parent scope.
//
// Names are compared bytewise (case-sensitive) -- a deliberate
// departure from case-insensitive languages, per this language's
// invariant that symbol lookup is plain name equality.
type SymbolTable struct {
	name   string
	order  []*Symbol
	byName map[string]*Symbol
	parent *SymbolTable
}

// NewSymbolTable creates an empty scope with the given parent (nil for
// the root).
func NewSymbolTable(name string, parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		name:   name,
		byName: make(map[string]*Symbol),
		parent: parent,
	}
}

// ScopeName satisfies ast.Scope, letting a SymbolTable be stored as a
// node's `symbolTable` attribute without ast importing semantic.
func (st *SymbolTable) ScopeName() string { return st.name }

// Parent returns the enclosing scope, or nil at the root.
func (st *SymbolTable) Parent() *SymbolTable { return st.parent }

// Define adds sym to this scope's local list, even if a symbol with the
// same name already exists -- duplicate detection is a separate,
// explicit check (§4.6) run by the analyzer, not an error here, so that
// every duplicate is still visible in traversal order.
func (st *SymbolTable) Define(sym *Symbol) {
	st.order = append(st.order, sym)
	if _, exists := st.byName[sym.Name]; !exists {
		st.byName[sym.Name] = sym
	}
}

// IsDeclaredLocally reports whether name already has at least one entry
// in this scope's local list.
func (st *SymbolTable) IsDeclaredLocally(name string) bool {
	_, ok := st.byName[name]
	return ok
}

// Locals returns the local symbol list in declaration order.
func (st *SymbolTable) Locals() []*Symbol { return st.order }

// Duplicates returns, for each name that appears more than once in
// this scope's local list, the second occurrence -- exactly one
// *Symbol per offending name, in the order the duplicate was
// (re)declared. A diagnostic built from its Line points at the
// conflicting redeclaration rather than the original.
func (st *SymbolTable) Duplicates() []*Symbol {
	seen := make(map[string]int, len(st.order))
	var dups []*Symbol
	for _, sym := range st.order {
		seen[sym.Name]++
		if seen[sym.Name] == 2 {
			dups = append(dups, sym)
		}
	}
	return dups
}

// Resolve walks this scope and then its ancestors, returning the first
// symbol whose name equals name (bytewise). This is lexical shadowing:
// the innermost declaration wins.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	for s := st; s != nil; s = s.parent {
		if sym, ok := s.byName[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
