// Package symbols models the named entities the analyser resolves
// identifiers against: types, typed expressions, methods and modules, plus
// the three-tier (locals, modules, globals) lookup used throughout the
// walk.
package symbols

import "github.com/funvibe/boasemc/internal/types"

// Symbol is any named entity resolvable by identifier.
type Symbol interface {
	symbolNode()
}

// TypeSymbol makes a Type itself resolvable as a symbol, e.g. so that
// `Sequence` or `int` can appear as an identifier in a type-hint position.
type TypeSymbol struct {
	Type types.Type
}

func (*TypeSymbol) symbolNode() {}

// ExpressionSymbol is a named, already-typed value — a resolved local
// variable or global constant.
type ExpressionSymbol struct {
	Name string
	Typ  types.Type
}

func (*ExpressionSymbol) symbolNode() {}

// Type returns the expression's type (satisfies the `.type` accessor the
// spec describes on Expression symbols).
func (e *ExpressionSymbol) Type() types.Type { return e.Typ }

// Param is a formal argument binding, used by Method.
type Param struct {
	Name string
	Typ  types.Type
}

// Method has a parameter list, declared return type, and its own local
// symbol table (the "current-method locals" tier).
type Method struct {
	Name       string
	Params     []*Param
	ReturnType types.Type
	Locals     map[string]Symbol
}

func (*Method) symbolNode() {}

// NewMethod returns a Method with an initialised, empty Locals map.
func NewMethod(name string, returnType types.Type) *Method {
	return &Method{Name: name, ReturnType: returnType, Locals: make(map[string]Symbol)}
}

// Resolve looks up id among this method's own locals (its parameters and
// any names bound within its body).
func (m *Method) Resolve(id string) (Symbol, bool) {
	sym, ok := m.Locals[id]
	return sym, ok
}

// Module has its own symbol map; a Method and its enclosing Module may
// reference each other (module -> method via Symbols, method has no back
// pointer), so no cycle exists beyond that single edge.
type Module struct {
	Name    string
	Symbols map[string]Symbol
}

func (*Module) symbolNode() {}

// NewModule returns a Module with an initialised, empty Symbols map.
func NewModule(name string) *Module {
	return &Module{Name: name, Symbols: make(map[string]Symbol)}
}

// Table is the analyser's resolvable universe: the current method's
// locals (if any), the imported modules, and the global scope — searched
// in that order, per spec. Table itself holds no state a single Analyzer
// run doesn't already track; it exists so resolution logic has one place
// to live independent of the walker.
type Table struct {
	CurrentMethod *Method
	Modules       map[string]*Module
	Globals       map[string]Symbol
}

// NewTable returns an empty, ready-to-use Table.
func NewTable() *Table {
	return &Table{
		Modules: make(map[string]*Module),
		Globals: make(map[string]Symbol),
	}
}

// Resolve performs the three-tier lookup: current-method locals, then
// modules, then globals. On a hit in an inner tier, outer tiers are never
// consulted.
func (t *Table) Resolve(id string) (Symbol, bool) {
	if t.CurrentMethod != nil {
		if sym, ok := t.CurrentMethod.Resolve(id); ok {
			return sym, true
		}
	}
	if mod, ok := t.Modules[id]; ok {
		return mod, true
	}
	if sym, ok := t.Globals[id]; ok {
		return sym, true
	}
	return nil, false
}
