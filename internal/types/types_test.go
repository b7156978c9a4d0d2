package types

import "testing"

func TestIdentical(t *testing.T) {
	if !Identical(Int, Int) {
		t.Fatal("Int should be identical to itself")
	}
	if Identical(Int, Str) {
		t.Fatal("Int and Str must not be identical")
	}
	if !Identical(nil, nil) {
		t.Fatal("nil should be identical to nil")
	}
	if Identical(Int, nil) {
		t.Fatal("Int must not be identical to nil")
	}
}

func TestGetType(t *testing.T) {
	cases := []struct {
		in   any
		want Type
	}{
		{nil, None},
		{1, Int},
		{true, Bool},
		{"x", Str},
	}
	for _, c := range cases {
		if got := GetType(c.in); !Identical(got, c.want) {
			t.Errorf("GetType(%#v) = %v, want %v", c.in, got.Identifier(), c.want.Identifier())
		}
	}
}

func TestSequenceType(t *testing.T) {
	seq := NewSequenceType("Sequence", Int, Int)
	if seq.Identifier() != "Sequence[int]" {
		t.Errorf("Identifier() = %q, want %q", seq.Identifier(), "Sequence[int]")
	}
	if !seq.IsValidKey(Int) {
		t.Error("Int should be a valid key")
	}
	if seq.IsValidKey(Str) {
		t.Error("Str should not be a valid key")
	}
	if seq.AbiType() != AbiArray {
		t.Errorf("AbiType() = %v, want AbiArray", seq.AbiType())
	}
}
