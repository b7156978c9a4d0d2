package fixture

import (
	"testing"

	"github.com/funvibe/boasemc/internal/ast"
	"github.com/funvibe/boasemc/internal/symbols"
	"github.com/funvibe/boasemc/internal/types"
)

func TestLoadSimpleFunction(t *testing.T) {
	doc := []byte(`
functions:
  - name: add
    params:
      - {name: a, type: int}
      - {name: b, type: int}
    return: int
    body:
      - return: {binop: {op: "+", left: {name: a}, right: {name: b}}}
`)
	f, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Module.Body) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(f.Module.Body))
	}
	decl, ok := f.Module.Body[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", f.Module.Body[0])
	}
	if decl.Name != "add" || len(decl.Params) != 2 {
		t.Fatalf("unexpected decl: %+v", decl)
	}

	ret, ok := decl.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", decl.Body[0])
	}
	bin, ok := ret.Value.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected *ast.BinOp, got %T", ret.Value)
	}
	if bin.Op.Token != "+" {
		t.Errorf("op token = %q, want %q", bin.Op.Token, "+")
	}
}

func TestLoadSequenceTypeHint(t *testing.T) {
	doc := []byte(`
functions:
  - name: first
    params:
      - {name: xs, type: "Sequence[int]"}
    return: int
    body:
      - return: {subscript: {value: {name: xs}, index: {int: 0}}}
`)
	f, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	hint := f.Module.Body[0].(*ast.FuncDecl).Params[0].Annotation
	sub, ok := hint.(*ast.SubscriptHint)
	if !ok {
		t.Fatalf("expected *ast.SubscriptHint, got %T", hint)
	}
	if sub.Value.(*ast.NameHint).Name != "Sequence" {
		t.Errorf("outer hint name = %q, want Sequence", sub.Value.(*ast.NameHint).Name)
	}

	method, ok := f.Table.Globals["first"].(*symbols.Method)
	if !ok {
		t.Fatalf("expected *symbols.Method, got %T", f.Table.Globals["first"])
	}
	seq, ok := method.Params[0].Typ.(*types.SequenceType)
	if !ok {
		t.Fatalf("expected the param's resolved type to be *types.SequenceType, got %T", method.Params[0].Typ)
	}
	if !types.Identical(seq.ValueType, types.Int) {
		t.Errorf("sequence value type = %v, want int", seq.ValueType.Identifier())
	}
}
