package ops

import (
	"github.com/funvibe/boasemc/internal/types"
	"github.com/funvibe/boasemc/internal/vmopcode"
)

// Registry is the operator/operation table: for each operator, an ordered
// list of overload candidates. Resolution always returns the first
// applicable candidate, so declaration order doubles as overload priority.
type Registry struct {
	binary map[Operator][]*BinaryOperation
	unary  map[Operator][]*UnaryOperation
}

// ValidateType iterates the operations registered under op and returns the
// first whose ValidateType accepts (l, r); nil if none applies.
func (r *Registry) ValidateType(op Operator, l, r types.Type) *BinaryOperation {
	for _, candidate := range r.binary[op] {
		if candidate.ValidateType(l, r) {
			return candidate
		}
	}
	return nil
}

// ValidateUnaryType is ValidateType's unary counterpart.
func (r *Registry) ValidateUnaryType(op Operator, operand types.Type) *UnaryOperation {
	for _, candidate := range r.unary[op] {
		if candidate.ValidateType(operand) {
			return candidate
		}
	}
	return nil
}

// GetOperationByOperator returns the canonical (first-registered)
// operation for an operator, used by diagnostics to report the expected
// signature when resolution failed. Returns nil if the operator has no
// registered binary operations at all.
func (r *Registry) GetOperationByOperator(op Operator) *BinaryOperation {
	if ops := r.binary[op]; len(ops) > 0 {
		return ops[0]
	}
	return nil
}

// GetUnaryOperationByOperator is GetOperationByOperator's unary counterpart.
func (r *Registry) GetUnaryOperationByOperator(op Operator) *UnaryOperation {
	if ops := r.unary[op]; len(ops) > 0 {
		return ops[0]
	}
	return nil
}

// NewDefaultRegistry builds the registry's fixed operation set: integer
// arithmetic and comparison, string comparison plus (typed-but-unsupported)
// concatenation, boolean logic and equality, and the Is/IsNot identity
// operators. Subscript is intentionally absent — it is resolved by the
// dedicated subscript walker against SequenceType, not through this table.
func NewDefaultRegistry() *Registry {
	r := &Registry{
		binary: make(map[Operator][]*BinaryOperation),
		unary:  make(map[Operator][]*UnaryOperation),
	}

	addBinary := func(op Operator, left, right, result types.Type, code vmopcode.Opcode, supported bool) {
		r.binary[op] = append(r.binary[op], &BinaryOperation{
			Operator: op, LeftType: left, RightType: right, Result: result,
			Opcode: code, Supported: supported,
		})
	}
	addUnary := func(op Operator, operand, result types.Type, code vmopcode.Opcode, supported bool) {
		r.unary[op] = append(r.unary[op], &UnaryOperation{
			Operator: op, OperandType: operand, Result: result, Opcode: code, Supported: supported,
		})
	}

	// int, int
	addBinary(Plus, types.Int, types.Int, types.Int, vmopcode.ADD, true)
	addBinary(Minus, types.Int, types.Int, types.Int, vmopcode.SUB, true)
	addBinary(Mult, types.Int, types.Int, types.Int, vmopcode.MUL, true)
	addBinary(IntDiv, types.Int, types.Int, types.Int, vmopcode.DIV, true)
	addBinary(Mod, types.Int, types.Int, types.Int, vmopcode.MOD, true)
	addBinary(Eq, types.Int, types.Int, types.Bool, vmopcode.NUMEQUAL, true)
	addBinary(NotEq, types.Int, types.Int, types.Bool, vmopcode.NUMNOTEQUAL, true)
	addBinary(Lt, types.Int, types.Int, types.Bool, vmopcode.LT, true)
	addBinary(LtE, types.Int, types.Int, types.Bool, vmopcode.LE, true)
	addBinary(Gt, types.Int, types.Int, types.Bool, vmopcode.GT, true)
	addBinary(GtE, types.Int, types.Int, types.Bool, vmopcode.GE, true)
	addBinary(Is, types.Int, types.Int, types.Bool, vmopcode.EQUAL, true)
	addBinary(IsNot, types.Int, types.Int, types.Bool, vmopcode.NOTEQUAL, true)

	// str, str
	// Concatenation is typed (result is known) but not yet supported by the
	// VM lowering, matching boa3's Concat operation. Keep this axis
	// independent of type validity: a str+str expression type-checks, then
	// separately fails as NotSupportedOperation.
	addBinary(Plus, types.Str, types.Str, types.Str, vmopcode.CAT, false)
	addBinary(Eq, types.Str, types.Str, types.Bool, vmopcode.EQUAL, true)
	addBinary(NotEq, types.Str, types.Str, types.Bool, vmopcode.NOTEQUAL, true)
	addBinary(Lt, types.Str, types.Str, types.Bool, vmopcode.LT, true)
	addBinary(LtE, types.Str, types.Str, types.Bool, vmopcode.LE, true)
	addBinary(Gt, types.Str, types.Str, types.Bool, vmopcode.GT, true)
	addBinary(GtE, types.Str, types.Str, types.Bool, vmopcode.GE, true)

	// bool, bool
	addBinary(And, types.Bool, types.Bool, types.Bool, vmopcode.BOOLAND, true)
	addBinary(Or, types.Bool, types.Bool, types.Bool, vmopcode.BOOLOR, true)
	addBinary(Eq, types.Bool, types.Bool, types.Bool, vmopcode.EQUAL, true)
	addBinary(NotEq, types.Bool, types.Bool, types.Bool, vmopcode.NOTEQUAL, true)

	// unary
	addUnary(Minus, types.Int, types.Int, vmopcode.NEGATE, true)
	addUnary(Plus, types.Int, types.Int, vmopcode.NOP, true)
	addUnary(Not, types.Bool, types.Bool, vmopcode.NOT, true)

	return r
}
