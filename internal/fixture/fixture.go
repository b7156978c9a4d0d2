// Package fixture loads a program description from YAML into the closed
// ast.Module node set plus a pre-populated symbols.Table, the shape the
// analyser expects as its input contract. It exists so golden test cases
// and the CLI can describe a program as data rather than as Go literals.
package fixture

import (
	"fmt"
	"strings"

	"github.com/funvibe/boasemc/internal/ast"
	"github.com/funvibe/boasemc/internal/symbols"
	"github.com/funvibe/boasemc/internal/types"
	"gopkg.in/yaml.v3"
)

// Fixture is a fully decoded program: its AST plus the symbol table the
// analyser resolves identifiers against.
type Fixture struct {
	Module *ast.Module
	Table  *symbols.Table
}

// document is the raw top-level YAML shape.
type document struct {
	Functions []map[string]any `yaml:"functions"`
}

// Load reads and decodes a YAML fixture file's contents.
func Load(data []byte) (*Fixture, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: decoding yaml: %w", err)
	}

	table := symbols.NewTable()
	var funcs []ast.Stmt

	// Pre-register every function's symbol before walking any body, so
	// forward references between top-level functions resolve regardless of
	// declaration order (matches a module-level symbol table being built in
	// a pass that precedes analysis).
	decls := make([]*ast.FuncDecl, 0, len(doc.Functions))
	for _, fn := range doc.Functions {
		decl, method, err := decodeFuncDecl(fn)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		table.Globals[decl.Name] = method
	}
	for _, decl := range decls {
		funcs = append(funcs, decl)
	}

	return &Fixture{
		Module: &ast.Module{Body: funcs},
		Table:  table,
	}, nil
}

func decodeFuncDecl(m map[string]any) (*ast.FuncDecl, *symbols.Method, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return nil, nil, fmt.Errorf("fixture: function missing a name")
	}

	returnHint, returnType, err := decodeReturnHint(m["return"])
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: function %s: %w", name, err)
	}

	method := symbols.NewMethod(name, returnType)

	var params []*ast.Param
	rawParams, _ := m["params"].([]any)
	for _, rp := range rawParams {
		pm, ok := rp.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("fixture: function %s: malformed parameter", name)
		}
		pname, _ := pm["name"].(string)
		var hint ast.TypeHint
		var ptyp types.Type
		if raw, present := pm["type"]; present {
			hint, ptyp, err = decodeTypeHintValue(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("fixture: function %s, param %s: %w", name, pname, err)
			}
		}
		params = append(params, &ast.Param{Name: pname, Annotation: hint})
		method.Params = append(method.Params, &symbols.Param{Name: pname, Typ: ptyp})
		if ptyp != nil {
			method.Locals[pname] = &symbols.ExpressionSymbol{Name: pname, Typ: ptyp}
		}
	}

	var body []ast.Stmt
	rawBody, _ := m["body"].([]any)
	for _, rs := range rawBody {
		sm, ok := rs.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("fixture: function %s: malformed statement", name)
		}
		stmt, err := decodeStmt(sm)
		if err != nil {
			return nil, nil, fmt.Errorf("fixture: function %s: %w", name, err)
		}
		body = append(body, stmt)
	}

	return &ast.FuncDecl{Name: name, Params: params, ReturnType: returnHint, Body: body}, method, nil
}

// decodeReturnHint handles the absent-return-annotation case (nil hint,
// none type) uniformly with an explicit one.
func decodeReturnHint(raw any) (ast.TypeHint, types.Type, error) {
	if raw == nil {
		return nil, types.None, nil
	}
	return decodeTypeHintValue(raw)
}

// decodeTypeHintValue accepts either a bare string ("int", "Sequence[int]")
// or the equivalent {seq: <name>, of: <hint>, key: <hint>} map form.
func decodeTypeHintValue(raw any) (ast.TypeHint, types.Type, error) {
	switch v := raw.(type) {
	case string:
		return decodeTypeHintString(v)
	case map[string]any:
		return decodeTypeHintMap(v)
	default:
		return nil, nil, fmt.Errorf("unrecognised type-hint shape %T", raw)
	}
}

func decodeTypeHintString(s string) (ast.TypeHint, types.Type, error) {
	s = strings.TrimSpace(s)
	if open := strings.IndexByte(s, '['); open != -1 && strings.HasSuffix(s, "]") {
		outer := s[:open]
		inner := s[open+1 : len(s)-1]
		innerHint, innerType, err := decodeTypeHintString(inner)
		if err != nil {
			return nil, nil, err
		}
		seq := types.NewSequenceType(outer, innerType, innerType)
		return &ast.SubscriptHint{Value: &ast.NameHint{Name: outer}, Index: innerHint}, seq, nil
	}

	switch s {
	case "int":
		return &ast.NameHint{Name: s}, types.Int, nil
	case "bool":
		return &ast.NameHint{Name: s}, types.Bool, nil
	case "str":
		return &ast.NameHint{Name: s}, types.Str, nil
	case "none", "None":
		return &ast.NameHint{Name: s}, types.None, nil
	default:
		return nil, nil, fmt.Errorf("unknown type hint %q", s)
	}
}

func decodeTypeHintMap(m map[string]any) (ast.TypeHint, types.Type, error) {
	outer, _ := m["seq"].(string)
	if outer == "" {
		return nil, nil, fmt.Errorf("malformed sequence type hint: missing seq name")
	}
	ofHint, ofType, err := decodeTypeHintValue(m["of"])
	if err != nil {
		return nil, nil, fmt.Errorf("sequence %s: %w", outer, err)
	}
	keyType := ofType
	if keyRaw, present := m["key"]; present {
		_, keyType, err = decodeTypeHintValue(keyRaw)
		if err != nil {
			return nil, nil, fmt.Errorf("sequence %s: key: %w", outer, err)
		}
	}
	seq := types.NewSequenceType(outer, ofType, keyType)
	return &ast.SubscriptHint{Value: &ast.NameHint{Name: outer}, Index: ofHint}, seq, nil
}
