package ops

import (
	"github.com/funvibe/boasemc/internal/types"
	"github.com/funvibe/boasemc/internal/vmopcode"
)

// BinaryOperation is a resolved application of a binary Operator to two
// specific operand types.
type BinaryOperation struct {
	Operator  Operator
	LeftType  types.Type
	RightType types.Type
	Result    types.Type
	Opcode    vmopcode.Opcode
	// Supported distinguishes "typed but no faithful VM lowering yet" (e.g.
	// string concatenation) from ordinary type errors. A caller must check
	// both ValidateType and Supported independently — the axes are
	// deliberately kept apart.
	Supported bool
}

// ValidateType reports whether this operation applies to the given operand
// types. Total and side-effect free, per spec.
func (b *BinaryOperation) ValidateType(left, right types.Type) bool {
	return types.Identical(left, b.LeftType) && types.Identical(right, b.RightType)
}

// UnaryOperation is a resolved application of a unary Operator to a
// specific operand type.
type UnaryOperation struct {
	Operator    Operator
	OperandType types.Type
	Result      types.Type
	Opcode      vmopcode.Opcode
	Supported   bool
}

// ValidateType reports whether this operation applies to the given operand
// type.
func (u *UnaryOperation) ValidateType(operand types.Type) bool {
	return types.Identical(operand, u.OperandType)
}
