// Package types implements the closed type lattice of the accepted source
// subset: a fixed set of built-in descriptors plus a single parameterised
// sequence kind. Descriptors are process-lifetime singletons; equality is
// identifier-based.
package types

// AbiType is the coarse tag attached to every Type for consumers at the
// compiler's output boundary (the VM's ABI). It carries no information the
// analyser itself needs to make decisions.
type AbiType int

const (
	AbiAny AbiType = iota
	AbiInteger
	AbiBoolean
	AbiString
	AbiByteArray
	AbiArray
	AbiMap
	AbiInteropInterface
)

func (a AbiType) String() string {
	switch a {
	case AbiInteger:
		return "Integer"
	case AbiBoolean:
		return "Boolean"
	case AbiString:
		return "String"
	case AbiByteArray:
		return "ByteArray"
	case AbiArray:
		return "Array"
	case AbiMap:
		return "Map"
	case AbiInteropInterface:
		return "InteropInterface"
	default:
		return "Any"
	}
}

// Type is an interned type descriptor. Instances are singletons; Identical
// compares them by identifier, which is sufficient because the built-in set
// never produces two distinct descriptors sharing an identifier.
type Type interface {
	// Identifier is the stable, human-readable name used at the boundary
	// (e.g. "int", "Sequence[int]") and embedded verbatim in diagnostics.
	Identifier() string
	// AbiType is this type's external ABI tag.
	AbiType() AbiType
	// IsTypeOf reports whether v is a runtime value of this type.
	IsTypeOf(v any) bool
}

// Identical reports whether two types are the same built-in descriptor.
func Identical(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Identifier() == b.Identifier()
}

type simpleType struct {
	id  string
	abi AbiType
	fn  func(v any) bool
}

func (s *simpleType) Identifier() string   { return s.id }
func (s *simpleType) AbiType() AbiType     { return s.abi }
func (s *simpleType) IsTypeOf(v any) bool  { return s.fn(v) }

// Built-in singletons, the whole of the non-sequence lattice.
var (
	Int = &simpleType{
		id:  "int",
		abi: AbiInteger,
		fn:  func(v any) bool { _, ok := v.(int); return ok },
	}
	Bool = &simpleType{
		id:  "bool",
		abi: AbiBoolean,
		fn:  func(v any) bool { _, ok := v.(bool); return ok },
	}
	Str = &simpleType{
		id:  "str",
		abi: AbiString,
		fn:  func(v any) bool { _, ok := v.(string); return ok },
	}
	None = &simpleType{
		id:  "none",
		abi: AbiAny,
		fn:  func(v any) bool { return v == nil },
	}
)

// SequenceType is the single parameterised kind in this subset: a sequence
// with a declared element (value) type and a declared valid key type for
// subscript access (e.g. Sequence[int] keyed by int, a Map[str, int] keyed
// by str).
type SequenceType struct {
	name      string
	ValueType Type
	ValidKey  Type
}

// NewSequenceType builds a sequence descriptor. name is the outer
// constructor name rendered in the identifier, e.g. "Sequence" or "Map".
func NewSequenceType(name string, valueType, validKey Type) *SequenceType {
	return &SequenceType{name: name, ValueType: valueType, ValidKey: validKey}
}

func (s *SequenceType) Identifier() string {
	return s.name + "[" + s.ValueType.Identifier() + "]"
}

func (s *SequenceType) AbiType() AbiType { return AbiArray }

func (s *SequenceType) IsTypeOf(v any) bool {
	_, ok := v.(*SequenceType)
	return ok
}

// IsValidKey reports whether t matches this sequence's declared key type.
func (s *SequenceType) IsValidKey(t Type) bool {
	if t == nil {
		return false
	}
	return Identical(t, s.ValidKey)
}

// GetType returns the most specific built-in whose IsTypeOf accepts v,
// falling back to None if nothing matches. Sequence values are expected to
// arrive already typed (e.g. as *SequenceType, from a symbol's declared
// type) since raw Go slices carry no declared key/value type of their own.
func GetType(v any) Type {
	switch val := v.(type) {
	case nil:
		return None
	case int:
		return Int
	case bool:
		return Bool
	case string:
		return Str
	case Type:
		return val
	default:
		return None
	}
}
