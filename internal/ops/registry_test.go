package ops

import (
	"testing"

	"github.com/funvibe/boasemc/internal/types"
)

func TestValidateTypeIntArithmetic(t *testing.T) {
	r := NewDefaultRegistry()
	op := r.ValidateType(Plus, types.Int, types.Int)
	if op == nil {
		t.Fatal("expected an int+int Plus operation")
	}
	if !op.Supported {
		t.Error("int+int Plus should be supported")
	}
	if !types.Identical(op.Result, types.Int) {
		t.Errorf("result type = %v, want int", op.Result.Identifier())
	}
}

func TestValidateTypeStrConcatTypedButUnsupported(t *testing.T) {
	r := NewDefaultRegistry()
	op := r.ValidateType(Plus, types.Str, types.Str)
	if op == nil {
		t.Fatal("expected a str+str Plus operation to exist (typed)")
	}
	if op.Supported {
		t.Error("str+str Plus should be typed but not supported")
	}
}

func TestValidateTypeNoMatch(t *testing.T) {
	r := NewDefaultRegistry()
	if op := r.ValidateType(Plus, types.Int, types.Str); op != nil {
		t.Fatalf("expected no Plus(int, str) operation, got %+v", op)
	}
}

func TestValidateUnaryType(t *testing.T) {
	r := NewDefaultRegistry()
	op := r.ValidateUnaryType(Not, types.Bool)
	if op == nil || !op.Supported {
		t.Fatal("expected a supported Not(bool) operation")
	}
	if r.ValidateUnaryType(Not, types.Int) != nil {
		t.Error("Not(int) should not resolve")
	}
}

func TestOverlayFromYAML(t *testing.T) {
	r := NewDefaultRegistry()
	before := r.ValidateType(Plus, types.Str, types.Str)
	if before.Supported {
		t.Fatal("precondition: str+str Plus starts unsupported")
	}

	yamlDoc := []byte(`
overrides:
  - operator: Plus
    left: str
    right: str
    supported: true
`)
	if err := OverlayFromYAML(r, yamlDoc); err != nil {
		t.Fatalf("OverlayFromYAML: %v", err)
	}

	after := r.ValidateType(Plus, types.Str, types.Str)
	if !after.Supported {
		t.Error("overlay should have flipped str+str Plus to supported")
	}
}

func TestOverlayFromYAMLUnknownOperator(t *testing.T) {
	r := NewDefaultRegistry()
	err := OverlayFromYAML(r, []byte(`overrides: [{operator: Frobnicate, left: int, right: int, supported: true}]`))
	if err == nil {
		t.Fatal("expected an error for an unknown operator name")
	}
}
