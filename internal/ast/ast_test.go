package ast

import (
	"testing"

	"github.com/cwbudde/decaf/internal/types"
)

func TestAttrsPanicBeforeSet(t *testing.T) {
	n := NewIntLiteral(1, 42)

	if n.HasParent() {
		t.Fatal("fresh node should not have a parent")
	}
	if n.HasDepth() || n.HasType() || n.HasSymbolTable() {
		t.Fatal("fresh node should have no attributes set")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Type() on an unset node should panic")
			}
		}()
		_ = n.Type()
	}()
}

func TestAttrsRoundTrip(t *testing.T) {
	parent := NewBlock(1)
	child := NewIntLiteral(2, 1)

	child.SetParent(parent)
	child.SetDepth(3)
	child.SetType(types.Int)

	if got := child.Parent(); got != Node(parent) {
		t.Fatalf("Parent() = %v, want %v", got, parent)
	}
	if got := child.Depth(); got != 3 {
		t.Fatalf("Depth() = %d, want 3", got)
	}
	if got := child.Type(); got != types.Int {
		t.Fatalf("Type() = %v, want Int", got)
	}
}

func TestSetReplacesValue(t *testing.T) {
	n := NewBoolLiteral(1, true)
	n.SetType(types.Bool)
	n.SetType(types.Int)
	if n.Type() != types.Int {
		t.Fatalf("SetType should replace the prior value, got %v", n.Type())
	}
}

func TestLiteralKinds(t *testing.T) {
	if l := NewIntLiteral(1, 5); l.Kind != LiteralInt || l.IntVal != 5 {
		t.Fatalf("NewIntLiteral produced wrong payload: %+v", l)
	}
	if l := NewBoolLiteral(1, true); l.Kind != LiteralBool || !l.BoolVal {
		t.Fatalf("NewBoolLiteral produced wrong payload: %+v", l)
	}
	if l := NewStrLiteral(1, "hi"); l.Kind != LiteralStr || l.StrVal != "hi" {
		t.Fatalf("NewStrLiteral produced wrong payload: %+v", l)
	}
}

func TestLongNamePanics(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	defer func() {
		if recover() == nil {
			t.Fatal("identifier over 255 bytes should panic")
		}
	}()
	NewVarDecl(1, string(long), types.Int, false, 1)
}
