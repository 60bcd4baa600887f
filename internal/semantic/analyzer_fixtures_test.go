package semantic

import (
	"strconv"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/fixture"
	"github.com/cwbudde/decaf/internal/types"
)

// runPipeline decodes a fixture and runs the full SetParent -> CalcDepth
// -> BuildSymbolTables -> Analyze pipeline over it.
func runPipeline(t *testing.T, src string) []string {
	t.Helper()
	program, err := fixture.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	pm := NewPassManager(SetParentPass{}, CalcDepthPass{}, BuildSymbolTablesPass{}, AnalyzePass{})
	diags := pm.RunAll(program)
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Error()
	}
	return out
}

// The twelve end-to-end scenarios (§8). Each YAML fixture is a
// hand-authored stand-in for the program text named in its comment.
var scenarioFixtures = []struct {
	name    string
	src     string
	invalid bool
}{
	{
		name: "ReturnZero", // def int main() { return 0; }
		src: `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: false,
	},
	{
		name: "AssignThenReturn", // def int main() { int i; i = 3; return 0; }
		src: `
funcs:
  - name: main
    return: int
    body:
      vars:
        - {name: i, type: int}
      stmts:
        - kind: assign
          target: {kind: location, name: i}
          value: {kind: int, int: 3}
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: false,
	},
	{
		name:    "NoMain", // int a;
		src:     `globals: [{name: a, type: int}]`,
		invalid: true,
	},
	{
		name: "VoidVariable", // def int main() { void a; return 0; }
		src: `
funcs:
  - name: main
    return: int
    body:
      vars:
        - {name: a, type: void}
      stmts:
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
	{
		name: "UndefinedIdentifier", // def int main() { return a; }
		src: `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - {kind: return, value: {kind: location, name: a}}
`,
		invalid: true,
	},
	{
		name: "BreakOutsideLoop", // def int main() { break; return 0; }
		src: `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - {kind: break}
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
	{
		name: "AssignmentTypeMismatch", // int x; def int main() { x = false; return 0; }
		src: `
globals: [{name: x, type: int}]
funcs:
  - name: main
    return: int
    body:
      stmts:
        - kind: assign
          target: {kind: location, name: x}
          value: {kind: bool, bool: false}
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
	{
		name: "ConditionNotBoolean", // def int main() { if (1) { return 0; } }
		src: `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - kind: if
          cond: {kind: int, int: 1}
          then:
            stmts:
              - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
	{
		name: "DuplicateGlobal", // int a; bool b; int a; def int main() { return 0; }
		src: `
globals:
  - {name: a, type: int}
  - {name: b, type: bool}
  - {name: a, type: int}
funcs:
  - name: main
    return: int
    body:
      stmts:
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
	{
		name: "OperandTypeMismatch", // def int main() { int i; i = true + 4; return 0; }
		src: `
funcs:
  - name: main
    return: int
    body:
      vars:
        - {name: i, type: int}
      stmts:
        - kind: assign
          target: {kind: location, name: i}
          value:
            kind: binary
            op: "+"
            left: {kind: bool, bool: true}
            right: {kind: int, int: 4}
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
	{
		name: "ArgumentTypeMismatch", // foo(true, true); def void foo(int i, bool b) { return; }
		src: `
funcs:
  - name: main
    return: int
    body:
      stmts:
        - kind: call
          call:
            kind: call
            name: foo
            args:
              - {kind: bool, bool: true}
              - {kind: bool, bool: true}
        - {kind: return, value: {kind: int, int: 0}}
  - name: foo
    return: void
    params:
      - {name: i, type: int}
      - {name: b, type: bool}
    body:
      stmts:
        - {kind: return}
`,
		invalid: true,
	},
	{
		name: "MainNotAFunction", // int main; def int foo(int a) { return 0; }
		src: `
globals: [{name: main, type: int}]
funcs:
  - name: foo
    return: int
    params:
      - {name: a, type: int}
    body:
      stmts:
        - {kind: return, value: {kind: int, int: 0}}
`,
		invalid: true,
	},
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range scenarioFixtures {
		t.Run(sc.name, func(t *testing.T) {
			diags := runPipeline(t, sc.src)
			if sc.invalid && len(diags) == 0 {
				t.Fatalf("expected %s to be invalid, got no diagnostics", sc.name)
			}
			if !sc.invalid && len(diags) != 0 {
				t.Fatalf("expected %s to be valid, got diagnostics: %v", sc.name, diags)
			}
			snaps.MatchSnapshot(t, sc.name+"_diagnostics", strings.Join(diags, "\n"))
		})
	}
}

// TestEveryAnalyzedExpressionHasAConcreteType checks the universal
// invariant that after a successful analysis every expression node's
// type is one of Int, Bool, Str -- never Unknown or Void (§8).
func TestEveryAnalyzedExpressionHasAConcreteType(t *testing.T) {
	src := scenarioFixtures[1].src // AssignThenReturn, a valid program
	program, err := fixture.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	pm := NewPassManager(SetParentPass{}, CalcDepthPass{}, BuildSymbolTablesPass{}, AnalyzePass{})
	if diags := pm.RunAll(program); len(diags) != 0 {
		t.Fatalf("expected a valid program, got diagnostics: %v", diags)
	}

	fn := program.Funcs[0]
	assign := fn.Body.Stmts[0].(*ast.Assignment)
	ret := fn.Body.Stmts[1].(*ast.Return)
	for _, e := range []ast.Expr{assign.Target, assign.Value, ret.Value} {
		if !e.HasType() {
			t.Fatal("every expression node must have a type after a successful analysis")
		}
		if got := e.Type(); got != types.Int && got != types.Bool && got != types.Str {
			t.Fatalf("expression type = %v, want one of int, bool, str", got)
		}
	}
}

// TestArrayLengthBoundary covers §8's "array with length exactly 1 is
// valid; with 0 or negative, invalid" boundary behavior.
func TestArrayLengthBoundary(t *testing.T) {
	mkSrc := func(length int) string {
		return strings.Replace(`
globals:
  - {name: arr, type: int, array: true, length: LEN}
funcs:
  - name: main
    return: int
    body:
      stmts:
        - {kind: return, value: {kind: int, int: 0}}
`, "LEN", strconv.Itoa(length), 1)
	}

	if diags := runPipeline(t, mkSrc(1)); len(diags) != 0 {
		t.Fatalf("array length 1 should be valid, got %v", diags)
	}
	if diags := runPipeline(t, mkSrc(0)); len(diags) == 0 {
		t.Fatal("array length 0 should be invalid")
	}
}
