// Package fixture decodes a hand-authored YAML document into an
// *ast.Program. It stands in for a real parser (explicitly out of
// scope) so tests and the CLI driver have something to run the
// analyzer against (§4.9).
package fixture

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/decaf/internal/ast"
	"github.com/cwbudde/decaf/internal/types"
)

// Decode reads one YAML document from r and builds the *ast.Program it
// describes. It is deliberately small: no grammar, no tokenizer, no
// error recovery -- a malformed fixture is a decode error, not a
// diagnostic.
func Decode(r io.Reader) (*ast.Program, error) {
	var doc programDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	return doc.build()
}

// --- intermediate schema ---
//
// Every node in the schema carries an optional `line`; when absent it
// defaults to 1, since line numbers only matter for diagnostic
// messages, not for the structure of the tree.

type programDoc struct {
	Globals []varDeclDoc `yaml:"globals"`
	Funcs   []funcDoc    `yaml:"funcs"`
}

type varDeclDoc struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Array  bool   `yaml:"array"`
	Length int    `yaml:"length"`
	Line   int    `yaml:"line"`
}

type paramDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type funcDoc struct {
	Name   string     `yaml:"name"`
	Return string     `yaml:"return"`
	Params []paramDoc `yaml:"params"`
	Body   blockDoc   `yaml:"body"`
	Line   int        `yaml:"line"`
}

type blockDoc struct {
	Vars  []varDeclDoc `yaml:"vars"`
	Stmts []stmtDoc    `yaml:"stmts"`
	Line  int          `yaml:"line"`
}

// stmtDoc is a discriminated union over the seven statement kinds driven
// by Kind; only the fields relevant to that kind are populated.
type stmtDoc struct {
	Kind string `yaml:"kind"` // assign | if | while | return | break | continue | call

	Target *exprDoc `yaml:"target"`
	Value  *exprDoc `yaml:"value"`
	Call   *exprDoc `yaml:"call"`

	Cond *exprDoc  `yaml:"cond"`
	Then *blockDoc `yaml:"then"`
	Else *blockDoc `yaml:"else"`
	Body *blockDoc `yaml:"body"`

	Line int `yaml:"line"`
}

// exprDoc is a discriminated union over the seven expression kinds.
type exprDoc struct {
	Kind string `yaml:"kind"` // int | bool | str | location | call | binary | unary

	IntVal  int64  `yaml:"int"`
	BoolVal bool   `yaml:"bool"`
	StrVal  string `yaml:"str"`

	Name  string    `yaml:"name"`
	Index *exprDoc  `yaml:"index"`
	Args  []exprDoc `yaml:"args"`

	Op    string   `yaml:"op"`
	Left  *exprDoc `yaml:"left"`
	Right *exprDoc `yaml:"right"`

	Line int `yaml:"line"`
}

func parseType(s string) (types.DecafType, error) {
	switch s {
	case "int":
		return types.Int, nil
	case "bool":
		return types.Bool, nil
	case "str":
		return types.Str, nil
	case "void":
		return types.Void, nil
	case "":
		return types.Unknown, nil
	default:
		return types.Unknown, fmt.Errorf("fixture: unknown type %q", s)
	}
}

func line(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func (d *programDoc) build() (*ast.Program, error) {
	p := ast.NewProgram(1)
	for _, g := range d.Globals {
		vd, err := g.build()
		if err != nil {
			return nil, err
		}
		p.Vars = append(p.Vars, vd)
	}
	for _, f := range d.Funcs {
		fd, err := f.build()
		if err != nil {
			return nil, err
		}
		p.Funcs = append(p.Funcs, fd)
	}
	return p, nil
}

func (d *varDeclDoc) build() (*ast.VarDecl, error) {
	t, err := parseType(d.Type)
	if err != nil {
		return nil, err
	}
	length := d.Length
	if !d.Array {
		length = 1
	}
	return ast.NewVarDecl(line(d.Line), d.Name, t, d.Array, length), nil
}

func (d *funcDoc) build() (*ast.FuncDecl, error) {
	ret, err := parseType(d.Return)
	if err != nil {
		return nil, err
	}
	params := make([]ast.Param, len(d.Params))
	for i, p := range d.Params {
		pt, err := parseType(p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = ast.Param{Name: p.Name, Type: pt}
	}
	body, err := d.Body.build()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncDecl(line(d.Line), d.Name, ret, params, body), nil
}

func (d *blockDoc) build() (*ast.Block, error) {
	b := ast.NewBlock(line(d.Line))
	for _, v := range d.Vars {
		vd, err := v.build()
		if err != nil {
			return nil, err
		}
		b.Vars = append(b.Vars, vd)
	}
	for _, s := range d.Stmts {
		st, err := s.build()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, st)
	}
	return b, nil
}

func (d *stmtDoc) build() (ast.Stmt, error) {
	ln := line(d.Line)
	switch d.Kind {
	case "assign":
		target, err := d.Target.build()
		if err != nil {
			return nil, err
		}
		value, err := d.Value.build()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(ln, target, value), nil

	case "if":
		cond, err := d.Cond.build()
		if err != nil {
			return nil, err
		}
		then, err := d.Then.build()
		if err != nil {
			return nil, err
		}
		var els *ast.Block
		if d.Else != nil {
			els, err = d.Else.build()
			if err != nil {
				return nil, err
			}
		}
		return ast.NewConditional(ln, cond, then, els), nil

	case "while":
		cond, err := d.Cond.build()
		if err != nil {
			return nil, err
		}
		body, err := d.Body.build()
		if err != nil {
			return nil, err
		}
		return ast.NewWhileLoop(ln, cond, body), nil

	case "return":
		var value ast.Expr
		if d.Value != nil {
			var err error
			value, err = d.Value.build()
			if err != nil {
				return nil, err
			}
		}
		return ast.NewReturn(ln, value), nil

	case "break":
		return ast.NewBreak(ln), nil

	case "continue":
		return ast.NewContinue(ln), nil

	case "call":
		expr, err := d.Call.build()
		if err != nil {
			return nil, err
		}
		call, ok := expr.(*ast.FuncCall)
		if !ok {
			return nil, fmt.Errorf("fixture: call statement must build a FuncCall")
		}
		return call, nil

	default:
		return nil, fmt.Errorf("fixture: unknown statement kind %q", d.Kind)
	}
}

var binaryOps = map[string]ast.BinaryOperator{
	"||": ast.OpOr, "&&": ast.OpAnd,
	"==": ast.OpEq, "!=": ast.OpNeq,
	"<": ast.OpLt, "<=": ast.OpLe, ">=": ast.OpGe, ">": ast.OpGt,
	"+": ast.OpAdd, "-": ast.OpSub, "*": ast.OpMul, "/": ast.OpDiv, "%": ast.OpMod,
}

var unaryOps = map[string]ast.UnaryOperator{
	"neg": ast.OpNegate, "not": ast.OpNot,
}

func (d *exprDoc) build() (ast.Expr, error) {
	if d == nil {
		return nil, fmt.Errorf("fixture: missing expression")
	}
	ln := line(d.Line)
	switch d.Kind {
	case "int":
		return ast.NewIntLiteral(ln, d.IntVal), nil
	case "bool":
		return ast.NewBoolLiteral(ln, d.BoolVal), nil
	case "str":
		return ast.NewStrLiteral(ln, d.StrVal), nil

	case "location":
		var idx ast.Expr
		if d.Index != nil {
			var err error
			idx, err = d.Index.build()
			if err != nil {
				return nil, err
			}
		}
		return ast.NewLocation(ln, d.Name, idx), nil

	case "call":
		args := make([]ast.Expr, len(d.Args))
		for i := range d.Args {
			a, err := d.Args[i].build()
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return ast.NewFuncCall(ln, d.Name, args), nil

	case "binary":
		op, ok := binaryOps[d.Op]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown binary operator %q", d.Op)
		}
		left, err := d.Left.build()
		if err != nil {
			return nil, err
		}
		right, err := d.Right.build()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(ln, op, left, right), nil

	case "unary":
		op, ok := unaryOps[d.Op]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown unary operator %q", d.Op)
		}
		child, err := d.Left.build()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(ln, op, child), nil

	default:
		return nil, fmt.Errorf("fixture: unknown expression kind %q", d.Kind)
	}
}
