// Package analyzer is the type analyser: a single left-to-right walk over
// the closed AST that resolves every operator slot against the operation
// registry, checks every declared type hint, and logs one diagnostic per
// offending node. It is intentionally not a general-purpose type inferer —
// there is nothing to unify, only a fixed lattice to look up against.
package analyzer

import (
	"github.com/funvibe/boasemc/internal/ast"
	"github.com/funvibe/boasemc/internal/diagnostics"
	"github.com/funvibe/boasemc/internal/ops"
	"github.com/funvibe/boasemc/internal/symbols"
	"github.com/funvibe/boasemc/internal/types"
)

// Analyzer owns one run's symbol table, operation registry, and diagnostic
// sink. It is not safe for concurrent use; build one per compilation unit.
type Analyzer struct {
	table    *symbols.Table
	registry *ops.Registry
	sink     *diagnostics.Sink
}

// New returns an Analyzer ready to walk a Module. table is expected to
// already carry the program's global and module symbols (and, per method,
// its parameter locals) — this analyser resolves against that table, it
// does not build it.
func New(table *symbols.Table, registry *ops.Registry) *Analyzer {
	return &Analyzer{table: table, registry: registry, sink: diagnostics.NewSink()}
}

// Sink returns the run's accumulated diagnostics.
func (a *Analyzer) Sink() *diagnostics.Sink { return a.sink }

// Analyze walks mod's statements in order. It returns the fatal diagnostic
// that aborted the walk, if any (elif, break, continue, or a nested
// tuple-unpack assignment target) — a nil return means the walk reached the
// end of the module, though a.Sink().HasErrors() may still be true from
// ordinary (non-fatal) diagnostics logged along the way.
func (a *Analyzer) Analyze(mod *ast.Module) *diagnostics.DiagnosticError {
	return a.visitBlock(mod.Body)
}

// visitBlock walks stmts in order, stopping at the first fatal diagnostic.
// Ordinary diagnostics logged by one statement never prevent the next
// sibling from being analysed.
func (a *Analyzer) visitBlock(stmts []ast.Stmt) *diagnostics.DiagnosticError {
	for _, s := range stmts {
		if fatal := a.visitStmt(s); fatal != nil {
			return fatal
		}
	}
	return nil
}

func (a *Analyzer) visitStmt(s ast.Stmt) *diagnostics.DiagnosticError {
	switch n := s.(type) {
	case *ast.FuncDecl:
		return a.visitFuncDecl(n)
	case *ast.ReturnStmt:
		a.visitReturn(n)
		return nil
	case *ast.AssignStmt:
		return a.visitAssign(n)
	case *ast.ExprStmt:
		a.visitExpr(n.Value)
		return nil
	case *ast.WhileStmt:
		return a.visitWhile(n)
	case *ast.IfStmt:
		return a.visitIf(n)
	case *ast.BreakStmt:
		return a.sink.LogError(diagnostics.FatalUnimplemented(n.Pos, "break"))
	case *ast.ContinueStmt:
		return a.sink.LogError(diagnostics.FatalUnimplemented(n.Pos, "continue"))
	default:
		return nil
	}
}

// visitFuncDecl checks every parameter for a missing type hint, then walks
// the body with CurrentMethod pointing at this function's symbol so Name
// resolution inside the body sees its locals.
func (a *Analyzer) visitFuncDecl(f *ast.FuncDecl) *diagnostics.DiagnosticError {
	for _, p := range f.Params {
		if p.Annotation == nil {
			a.sink.LogError(diagnostics.TypeHintMissing(p.Pos, p.Name))
		}
	}

	method, _ := a.table.Globals[f.Name].(*symbols.Method)
	if method == nil {
		// The symbol table is expected to already carry one Method per
		// FuncDecl (built by the fixture/program loader, not this walk);
		// fall back to an empty one so a malformed table still degrades to
		// "return type none" rather than a nil pointer.
		method = symbols.NewMethod(f.Name, types.None)
	}

	a.table.CurrentMethod = method
	fatal := a.visitBlock(f.Body)
	a.table.CurrentMethod = nil
	return fatal
}

// visitReturn mirrors the source's visit_Return: a tuple return value or a
// value returned from a method with no declared return type both abort
// before the value is walked at all (no rewriting happens inside an
// expression that's already rejected outright). Every other shape walks the
// value, so operator slots nested in it are still resolved.
func (a *Analyzer) visitReturn(r *ast.ReturnStmt) {
	method := a.table.CurrentMethod
	if r.Value != nil {
		if tup, ok := r.Value.(*ast.TupleExpr); ok {
			a.sink.LogError(diagnostics.TooManyReturns(tup.Pos))
			return
		}
		if method == nil || types.Identical(method.ReturnType, types.None) {
			name := ""
			if method != nil {
				name = method.Name
			}
			a.sink.LogError(diagnostics.TypeHintMissing(r.Pos, name))
			return
		}
		// TODO: compare the value's resolved type against method.ReturnType
		// once return-type mismatches are in scope; for now only presence
		// of a declared return type is enforced.
		a.visitExpr(r.Value)
		return
	}
	if method != nil && !types.Identical(method.ReturnType, types.None) {
		a.sink.LogError(diagnostics.MismatchedTypes(r.Pos, types.None.Identifier(), method.ReturnType.Identifier()))
	}
}

// visitAssign rejects multi-target assignment and flat tuple-unpacking
// (`a, b = value`) as NotSupportedOperation — both recoverable, both
// continue walking the value and every target so nested operators still
// get resolved. Only a tuple target that itself contains a nested tuple
// (`(a, b), c = value`) is the fatal shape.
func (a *Analyzer) visitAssign(asn *ast.AssignStmt) *diagnostics.DiagnosticError {
	if len(asn.Targets) == 1 {
		if tup, ok := asn.Targets[0].(*ast.TupleExpr); ok {
			if hasNestedTuple(tup) {
				// A nested tuple-unpack target is the fatal shape (spec open
				// question: kept fatal, not reclassified as an ordinary error).
				return a.sink.LogError(diagnostics.FatalUnimplemented(asn.Pos, "nested tuple-unpack assignment"))
			}
			a.sink.LogError(diagnostics.NotSupportedOperation(asn.Pos, "Multiple variable assignments"))
		}
	} else if len(asn.Targets) > 1 {
		a.sink.LogError(diagnostics.NotSupportedOperation(asn.Pos, "Multiple variable assignments"))
	}

	a.visitExpr(asn.Value)
	for _, t := range asn.Targets {
		a.visitExpr(t)
	}
	return nil
}

// hasNestedTuple reports whether any of tup's own elements is itself a
// TupleExpr, e.g. the `(a, b)` in `(a, b), c = value`.
func hasNestedTuple(tup *ast.TupleExpr) bool {
	for _, elt := range tup.Elements {
		if _, ok := elt.(*ast.TupleExpr); ok {
			return true
		}
	}
	return false
}

func (a *Analyzer) visitWhile(w *ast.WhileStmt) *diagnostics.DiagnosticError {
	a.checkBooleanTest(w.Test, w.Pos)
	if fatal := a.visitBlock(w.Body); fatal != nil {
		return fatal
	}
	return a.visitBlock(w.OrElse)
}

// visitIf treats an `elif` — represented as OrElse holding exactly one
// *ast.IfStmt — as the fatal sentinel the spec calls out explicitly, rather
// than silently lowering it into a nested if.
func (a *Analyzer) visitIf(i *ast.IfStmt) *diagnostics.DiagnosticError {
	a.checkBooleanTest(i.Test, i.Pos)
	if fatal := a.visitBlock(i.Body); fatal != nil {
		return fatal
	}
	if len(i.OrElse) == 1 {
		if _, ok := i.OrElse[0].(*ast.IfStmt); ok {
			return a.sink.LogError(diagnostics.FatalUnimplemented(i.Pos, "elif"))
		}
	}
	return a.visitBlock(i.OrElse)
}

// checkBooleanTest validates a while/if/ifexp test expression's type
// against bool, logging at pos (the enclosing statement's own position, not
// the test expression's) to match the source's use of the control node's
// own line/col rather than the nested test's.
func (a *Analyzer) checkBooleanTest(test ast.Expr, pos ast.Pos) {
	typ, ok := a.visitExpr(test)
	if !ok || typ == nil {
		return
	}
	if !types.Identical(typ, types.Bool) {
		a.sink.LogError(diagnostics.MismatchedTypes(pos, typ.Identifier(), types.Bool.Identifier()))
	}
}
