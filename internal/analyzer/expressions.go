package analyzer

import (
	"github.com/funvibe/boasemc/internal/ast"
	"github.com/funvibe/boasemc/internal/diagnostics"
	"github.com/funvibe/boasemc/internal/symbols"
	"github.com/funvibe/boasemc/internal/types"
)

// visitExpr is the central expression dispatch. The bool return is false
// exactly when a diagnostic was logged for this node or one of its
// descendants — callers check it and stop combining the result further,
// but never re-log or propagate past their own enclosing statement. That
// asymmetry (no Go error value threaded through) is what gives the walk its
// "log and unwind one expression, resume at the next statement" shape
// without panic/recover.
func (a *Analyzer) visitExpr(e ast.Expr) (types.Type, bool) {
	switch n := e.(type) {
	case *ast.Name:
		return a.visitName(n), true
	case *ast.IntLiteral:
		return types.Int, true
	case *ast.FloatLiteral:
		a.sink.LogError(diagnostics.InvalidType(n.Pos, "float"))
		return types.None, false
	case *ast.StrLiteral:
		return types.Str, true
	case *ast.NameConstant:
		if n.Value == nil {
			return types.None, true
		}
		return types.Bool, true
	case *ast.TupleExpr:
		// Elements are not recursively type-checked in this position. A
		// tuple return value never reaches here, and a tuple assignment
		// target has already been rejected by visitAssign; any other tuple
		// (e.g. the value of a single-target assignment) types as none.
		return types.None, true
	case *ast.IndexExpr:
		return a.visitExpr(n.Value)
	case *ast.BinOp:
		return a.visitBinOp(n)
	case *ast.UnaryOp:
		return a.visitUnaryOp(n)
	case *ast.CompareExpr:
		return a.visitCompare(n)
	case *ast.BoolOpExpr:
		return a.visitBoolOp(n)
	case *ast.SubscriptExpr:
		return a.visitSubscript(n)
	case *ast.IfExpr:
		return a.visitIfExpr(n)
	default:
		return types.None, true
	}
}

// visitName resolves an identifier against the table. An unresolved name
// quietly types as none rather than raising UnresolvedReference — that
// diagnostic is reserved for an unknown *operator*, not an unknown
// identifier (see the error table).
func (a *Analyzer) visitName(n *ast.Name) types.Type {
	sym, ok := a.table.Resolve(n.Value)
	if !ok {
		return types.None
	}
	switch s := sym.(type) {
	case *symbols.ExpressionSymbol:
		return s.Type()
	case *symbols.TypeSymbol:
		return s.Type
	default:
		return types.None
	}
}
