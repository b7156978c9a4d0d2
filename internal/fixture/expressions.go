package fixture

import (
	"fmt"

	"github.com/funvibe/boasemc/internal/ast"
)

// decodeExpr dispatches on the single recognised key present in m. Fixture
// files carry no source positions of their own (they describe programs for
// golden tests and the CLI, not a parser's token stream), so every decoded
// node gets the zero Pos; a real parser feeding this analyser would stamp
// accurate coordinates instead.
func decodeExpr(m map[string]any) (ast.Expr, error) {
	switch {
	case has(m, "name"):
		return &ast.Name{Value: str(m["name"])}, nil

	case has(m, "int"):
		return &ast.IntLiteral{Value: intOf(m["int"])}, nil

	case has(m, "float"):
		return &ast.FloatLiteral{}, nil

	case has(m, "str"):
		return &ast.StrLiteral{Value: str(m["str"])}, nil

	case has(m, "bool"):
		b, _ := m["bool"].(bool)
		return &ast.NameConstant{Value: b}, nil

	case has(m, "none"):
		return &ast.NameConstant{Value: nil}, nil

	case has(m, "tuple"):
		items, _ := m["tuple"].([]any)
		elems, err := decodeExprList(items)
		if err != nil {
			return nil, err
		}
		return &ast.TupleExpr{Elements: elems}, nil

	case has(m, "index"):
		inner, err := decodeExprValue(m["index"])
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpr{Value: inner}, nil

	case has(m, "binop"):
		return decodeBinOp(asMap(m["binop"]))

	case has(m, "unaryop"):
		return decodeUnaryOp(asMap(m["unaryop"]))

	case has(m, "compare"):
		return decodeCompare(asMap(m["compare"]))

	case has(m, "boolop"):
		return decodeBoolOp(asMap(m["boolop"]))

	case has(m, "subscript"):
		return decodeSubscript(asMap(m["subscript"]))

	case has(m, "ifexp"):
		return decodeIfExp(asMap(m["ifexp"]))

	default:
		return nil, fmt.Errorf("unrecognised expression shape: %v", keysOf(m))
	}
}

func decodeBinOp(m map[string]any) (ast.Expr, error) {
	left, err := decodeExprValue(m["left"])
	if err != nil {
		return nil, err
	}
	right, err := decodeExprValue(m["right"])
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Left: left, Op: ast.OpSlot{Token: str(m["op"])}, Right: right}, nil
}

func decodeUnaryOp(m map[string]any) (ast.Expr, error) {
	operand, err := decodeExprValue(m["operand"])
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: ast.OpSlot{Token: str(m["op"])}, Operand: operand}, nil
}

func decodeCompare(m map[string]any) (ast.Expr, error) {
	left, err := decodeExprValue(m["left"])
	if err != nil {
		return nil, err
	}
	rawOps, _ := m["ops"].([]any)
	ops := make([]ast.OpSlot, 0, len(rawOps))
	for _, o := range rawOps {
		ops = append(ops, ast.OpSlot{Token: fmt.Sprint(o)})
	}
	rawComparators, _ := m["comparators"].([]any)
	comparators, err := decodeExprList(rawComparators)
	if err != nil {
		return nil, err
	}
	return &ast.CompareExpr{Left: left, Ops: ops, Comparators: comparators}, nil
}

func decodeBoolOp(m map[string]any) (ast.Expr, error) {
	rawValues, _ := m["values"].([]any)
	values, err := decodeExprList(rawValues)
	if err != nil {
		return nil, err
	}
	return &ast.BoolOpExpr{Op: ast.OpSlot{Token: str(m["op"])}, Values: values}, nil
}

func decodeSubscript(m map[string]any) (ast.Expr, error) {
	value, err := decodeExprValue(m["value"])
	if err != nil {
		return nil, err
	}
	index, err := decodeExprValue(m["index"])
	if err != nil {
		return nil, err
	}
	return &ast.SubscriptExpr{Value: value, Index: index}, nil
}

func decodeIfExp(m map[string]any) (ast.Expr, error) {
	test, err := decodeExprValue(m["test"])
	if err != nil {
		return nil, err
	}
	then, err := decodeExprValue(m["then"])
	if err != nil {
		return nil, err
	}
	els, err := decodeExprValue(m["else"])
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{Test: test, Then: then, Else: els}, nil
}

func decodeExprValue(raw any) (ast.Expr, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an expression map, got %T", raw)
	}
	return decodeExpr(m)
}

func decodeExprList(raw []any) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(raw))
	for _, item := range raw {
		e, err := decodeExprValue(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// --- small helpers over the map[string]any/[]any shape yaml.Unmarshal
// produces for untyped targets.

func has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func intOf(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
