package ast

// BinaryOp combines two operand expressions with an operator. The
// visitor's "in" callback fires between Left and Right (§4.3).
type BinaryOp struct {
	base
	Op    BinaryOperator
	Left  Expr
	Right Expr
}

func NewBinaryOp(line int, op BinaryOperator, left, right Expr) *BinaryOp {
	return &BinaryOp{base: base{line: line}, Op: op, Left: left, Right: right}
}

func (*BinaryOp) node()     {}
func (*BinaryOp) exprNode() {}

// UnaryOp applies an operator to a single operand.
type UnaryOp struct {
	base
	Op    UnaryOperator
	Child Expr
}

func NewUnaryOp(line int, op UnaryOperator, child Expr) *UnaryOp {
	return &UnaryOp{base: base{line: line}, Op: op, Child: child}
}

func (*UnaryOp) node()     {}
func (*UnaryOp) exprNode() {}

// Location references a variable by name, optionally indexed (arrays
// only). Index is nil for a scalar reference.
type Location struct {
	base
	Name  string
	Index Expr
}

func NewLocation(line int, name string, index Expr) *Location {
	checkName(name)
	return &Location{base: base{line: line}, Name: name, Index: index}
}

func (*Location) node()     {}
func (*Location) exprNode() {}

// FuncCall invokes a named function with ordered argument expressions.
type FuncCall struct {
	base
	Name string
	Args []Expr
}

func NewFuncCall(line int, name string, args []Expr) *FuncCall {
	checkName(name)
	return &FuncCall{base: base{line: line}, Name: name, Args: args}
}

func (*FuncCall) node()     {}
func (*FuncCall) exprNode() {}

// FuncCall doubles as a statement ("foo(x);") as well as an expression
// ("y = foo(x);"): it is the one expression variant that legally appears
// directly in a Block's statement list without being wrapped by another
// stmt.
func (*FuncCall) stmtNode() {}

// Literal is an integer, boolean, or string constant. Only the field
// matching Kind is meaningful.
type Literal struct {
	base
	Kind    LiteralKind
	IntVal  int64
	BoolVal bool
	StrVal  string
}

func NewIntLiteral(line int, v int64) *Literal {
	return &Literal{base: base{line: line}, Kind: LiteralInt, IntVal: v}
}

func NewBoolLiteral(line int, v bool) *Literal {
	return &Literal{base: base{line: line}, Kind: LiteralBool, BoolVal: v}
}

func NewStrLiteral(line int, v string) *Literal {
	return &Literal{base: base{line: line}, Kind: LiteralStr, StrVal: v}
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}
