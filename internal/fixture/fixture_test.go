package fixture

import (
	"strings"
	"testing"

	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/types"
)

func TestDecodeProgramShape(t *testing.T) {
	src := `
globals:
  - {name: g, type: int}
funcs:
  - name: main
    return: int
    params:
      - {name: unused, type: bool}
    body:
      vars:
        - {name: i, type: int}
      stmts:
        - kind: assign
          target: {kind: location, name: i, index: {kind: int, int: 0}}
          value:
            kind: binary
            op: "=="
            left: {kind: str, str: "hi"}
            right: {kind: str, str: "bye"}
        - kind: if
          cond: {kind: unary, op: not, left: {kind: bool, bool: true}}
          then:
            stmts: []
          else:
            stmts: []
        - {kind: while, cond: {kind: bool, bool: true}, body: {stmts: [{kind: break}, {kind: continue}]}}
`
	p, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(p.Vars) != 1 || p.Vars[0].Name != "g" {
		t.Fatalf("unexpected globals: %+v", p.Vars)
	}
	if len(p.Funcs) != 1 {
		t.Fatalf("expected one function, got %d", len(p.Funcs))
	}
	fn := p.Funcs[0]
	if fn.Name != "main" || fn.ReturnType != types.Int {
		t.Fatalf("unexpected func: %+v", fn)
	}
	if len(fn.Params) != 1 || fn.Params[0].Type != types.Bool {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
	if len(fn.Body.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(fn.Body.Stmts))
	}

	assign, ok := fn.Body.Stmts[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("stmt 0 is not an Assignment: %T", fn.Body.Stmts[0])
	}
	loc := assign.Target.(*ast.Location)
	if loc.Index == nil {
		t.Fatal("expected an index expression on the location")
	}
	bin := assign.Value.(*ast.BinaryOp)
	if bin.Op != ast.OpEq {
		t.Fatalf("expected == operator, got %v", bin.Op)
	}

	cond := fn.Body.Stmts[1].(*ast.Conditional)
	if cond.Else == nil {
		t.Fatal("expected an else block")
	}

	while := fn.Body.Stmts[2].(*ast.WhileLoop)
	if len(while.Body.Stmts) != 2 {
		t.Fatalf("expected break+continue, got %d statements", len(while.Body.Stmts))
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	src := `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - {kind: nonsense}
`
	if _, err := Decode(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an unknown statement kind")
	}
}

func TestDecodeCallStatementAndExpression(t *testing.T) {
	src := `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - kind: call
          call: {kind: call, name: helper, args: [{kind: int, int: 1}]}
        - kind: return
          value: {kind: call, name: helper, args: [{kind: int, int: 2}]}
`
	p, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fn := p.Funcs[0]
	if _, ok := fn.Body.Stmts[0].(*ast.FuncCall); !ok {
		t.Fatalf("expected a call statement, got %T", fn.Body.Stmts[0])
	}
	ret := fn.Body.Stmts[1].(*ast.Return)
	if _, ok := ret.Value.(*ast.FuncCall); !ok {
		t.Fatalf("expected a call expression in return, got %T", ret.Value)
	}
}
