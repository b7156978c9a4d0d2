package analyzer

import (
	"github.com/funvibe/boasemc/internal/ast"
	"github.com/funvibe/boasemc/internal/diagnostics"
	"github.com/funvibe/boasemc/internal/ops"
	"github.com/funvibe/boasemc/internal/symbols"
	"github.com/funvibe/boasemc/internal/types"
)

var binaryTokens = map[string]ops.Operator{
	"+": ops.Plus, "-": ops.Minus, "*": ops.Mult, "//": ops.IntDiv, "%": ops.Mod,
	"==": ops.Eq, "!=": ops.NotEq, "<": ops.Lt, "<=": ops.LtE, ">": ops.Gt, ">=": ops.GtE,
	"is": ops.Is, "is not": ops.IsNot,
}

var compareTokens = map[string]ops.Operator{
	"==": ops.Eq, "!=": ops.NotEq, "<": ops.Lt, "<=": ops.LtE, ">": ops.Gt, ">=": ops.GtE,
	"is": ops.Is, "is not": ops.IsNot,
}

var boolTokens = map[string]ops.Operator{
	"and": ops.And, "or": ops.Or,
}

var unaryTokens = map[string]ops.Operator{
	"-": ops.Minus, "+": ops.Plus, "not": ops.Not,
}

// visitBinOp resolves a single binary operator slot. Operands are walked
// left-to-right (honouring the ordering invariant) before the operator
// itself is looked up, so a failure deep in either operand is logged in
// left-to-right order regardless of which side the table lookup would
// otherwise favour.
func (a *Analyzer) visitBinOp(b *ast.BinOp) (types.Type, bool) {
	lt, lok := a.visitExpr(b.Left)
	rt, rok := a.visitExpr(b.Right)

	op, known := binaryTokens[b.Op.Token]
	if !known {
		a.sink.LogError(diagnostics.UnresolvedReference(b.Pos, b.Op.Token))
		return types.None, false
	}
	if !lok || !rok {
		return types.None, false
	}

	operation := a.registry.ValidateType(op, lt, rt)
	if operation == nil {
		a.sink.LogError(diagnostics.NotSupportedOperation(b.Pos, op.String()))
		return types.None, false
	}
	if !operation.Supported {
		a.sink.LogError(diagnostics.NotSupportedOperation(b.Pos, op.String()))
		return types.None, false
	}

	b.Op.Resolved = true
	b.Op.Operation = operation
	return operation.Result, true
}

func (a *Analyzer) visitUnaryOp(u *ast.UnaryOp) (types.Type, bool) {
	ot, ok := a.visitExpr(u.Operand)

	op, known := unaryTokens[u.Op.Token]
	if !known {
		a.sink.LogError(diagnostics.UnresolvedReference(u.Pos, u.Op.Token))
		return types.None, false
	}
	if !ok {
		return types.None, false
	}

	operation := a.registry.ValidateUnaryType(op, ot)
	if operation == nil {
		a.sink.LogError(diagnostics.NotSupportedOperation(u.Pos, op.String()))
		return types.None, false
	}
	if !operation.Supported {
		a.sink.LogError(diagnostics.NotSupportedOperation(u.Pos, op.String()))
		return types.None, false
	}

	u.Op.Resolved = true
	u.Op.Operation = operation
	return operation.Result, true
}

// visitCompare walks a chained comparison left-to-right: left compared
// against comparators[0] by Ops[0], comparators[0] against comparators[1]
// by Ops[1], and so on. len(Ops) must equal len(Comparators); a mismatch is
// IncorrectNumberOfOperands rather than a panic, since the parser is an
// external component this analyser does not fully trust. pos advances to
// the current right operand's own position after each link, so a failure
// partway through the chain is reported at that operand rather than at the
// start of the whole expression.
func (a *Analyzer) visitCompare(c *ast.CompareExpr) (types.Type, bool) {
	if len(c.Ops) != len(c.Comparators) {
		a.sink.LogError(diagnostics.IncorrectNumberOfOperands(c.Pos, len(c.Comparators), len(c.Ops)))
		return types.None, false
	}

	left := c.Left
	leftType, ok := a.visitExpr(left)
	if !ok {
		return types.None, false
	}

	pos := c.Pos
	result := types.Bool
	for i, slot := range c.Ops {
		right := c.Comparators[i]
		rightType, rok := a.visitExpr(right)
		pos = right.Position()

		op, known := compareTokens[slot.Token]
		if !known {
			a.sink.LogError(diagnostics.UnresolvedReference(pos, slot.Token))
			return types.None, false
		}
		if !rok {
			return types.None, false
		}

		operation := a.registry.ValidateType(op, leftType, rightType)
		if operation == nil || !operation.Supported {
			a.sink.LogError(diagnostics.NotSupportedOperation(pos, op.String()))
			return types.None, false
		}

		c.Ops[i].Resolved = true
		c.Ops[i].Operation = operation
		result = operation.Result
		leftType = rightType
	}
	return result, true
}

// visitBoolOp walks a chained `and`/`or` expression, mirroring the
// comparator walker: pos advances to the current right operand's own
// position after each link, so a failure partway through the chain is
// reported at that operand. Only the first resolved operation is recorded
// on the slot — every link in the chain uses the same operator, so there is
// nothing more to distinguish.
func (a *Analyzer) visitBoolOp(b *ast.BoolOpExpr) (types.Type, bool) {
	op, known := boolTokens[b.Op.Token]
	if !known {
		a.sink.LogError(diagnostics.UnresolvedReference(b.Pos, b.Op.Token))
		return types.None, false
	}

	pos := b.Pos
	var prev types.Type
	for i, v := range b.Values {
		vt, ok := a.visitExpr(v)
		if i > 0 {
			pos = v.Position()
		}
		if !ok {
			return types.None, false
		}
		if i == 0 {
			prev = vt
			continue
		}
		operation := a.registry.ValidateType(op, prev, vt)
		if operation == nil || !operation.Supported {
			a.sink.LogError(diagnostics.NotSupportedOperation(pos, op.String()))
			return types.None, false
		}
		if !b.Op.Resolved {
			b.Op.Resolved = true
			b.Op.Operation = operation
		}
		prev = operation.Result
	}
	return prev, true
}

// visitSubscript normalises each side of `value[index]` to either a Type
// (when it's a bare Name resolving to a TypeSymbol — the type-constructor
// use, e.g. an inline "Sequence[int]") or an ordinary value. If both sides
// are Types, the expression is itself a type constructor and its outer type
// passes through unchanged. Otherwise value must be a declared SequenceType
// and index must match its declared key type.
func (a *Analyzer) visitSubscript(s *ast.SubscriptExpr) (types.Type, bool) {
	valueIsType, valueType, vok := a.typeOrValue(s.Value)
	indexIsType, indexType, iok := a.typeOrValue(s.Index)
	if !vok || !iok {
		return types.None, false
	}

	if valueIsType && indexIsType {
		return valueType, true
	}

	seq, ok := valueType.(*types.SequenceType)
	if !ok {
		a.sink.LogError(diagnostics.UnresolvedOperation(s.Pos, valueType.Identifier(), "Subscript"))
		return types.None, false
	}
	if !seq.IsValidKey(indexType) {
		a.sink.LogError(diagnostics.MismatchedTypes(s.Pos, indexType.Identifier(), seq.ValidKey.Identifier()))
		return types.None, false
	}
	return seq.ValueType, true
}

// typeOrValue reports whether e denotes a Type (a bare Name resolving to a
// TypeSymbol) alongside that Type, or otherwise walks it as an ordinary
// expression.
func (a *Analyzer) typeOrValue(e ast.Expr) (isType bool, t types.Type, ok bool) {
	if n, isName := e.(*ast.Name); isName {
		if sym, found := a.table.Resolve(n.Value); found {
			if ts, isTypeSym := sym.(*symbols.TypeSymbol); isTypeSym {
				return true, ts.Type, true
			}
		}
	}
	vt, vok := a.visitExpr(e)
	return false, vt, vok
}

func (a *Analyzer) visitIfExpr(e *ast.IfExpr) (types.Type, bool) {
	errsBefore := len(a.sink.Errors())
	a.checkBooleanTest(e.Test, e.Pos)
	testOK := len(a.sink.Errors()) == errsBefore
	thenType, tok := a.visitExpr(e.Then)
	_, eok := a.visitExpr(e.Else)
	if !testOK || !tok || !eok {
		return types.None, false
	}
	return thenType, true
}
