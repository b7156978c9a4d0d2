package fixture

import (
	"fmt"

	"github.com/funvibe/boasemc/internal/ast"
)

func decodeStmt(m map[string]any) (ast.Stmt, error) {
	switch {
	case has(m, "return"):
		if m["return"] == nil {
			return &ast.ReturnStmt{}, nil
		}
		value, err := decodeExprValue(m["return"])
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: value}, nil

	case has(m, "assign"):
		am := asMap(m["assign"])
		rawTargets, _ := am["targets"].([]any)
		targets, err := decodeExprList(rawTargets)
		if err != nil {
			return nil, err
		}
		value, err := decodeExprValue(am["value"])
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Targets: targets, Value: value}, nil

	case has(m, "expr"):
		value, err := decodeExprValue(m["expr"])
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Value: value}, nil

	case has(m, "while"):
		wm := asMap(m["while"])
		test, err := decodeExprValue(wm["test"])
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(wm["body"])
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmtList(wm["orelse"])
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Test: test, Body: body, OrElse: orelse}, nil

	case has(m, "if"):
		im := asMap(m["if"])
		test, err := decodeExprValue(im["test"])
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(im["body"])
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmtList(im["orelse"])
		if err != nil {
			return nil, err
		}
		return &ast.IfStmt{Test: test, Body: body, OrElse: orelse}, nil

	case has(m, "break"):
		return &ast.BreakStmt{}, nil

	case has(m, "continue"):
		return &ast.ContinueStmt{}, nil

	default:
		return nil, fmt.Errorf("unrecognised statement shape: %v", keysOf(m))
	}
}

func decodeStmtList(raw any) ([]ast.Stmt, error) {
	items, _ := raw.([]any)
	out := make([]ast.Stmt, 0, len(items))
	for _, item := range items {
		sm, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected a statement map, got %T", item)
		}
		stmt, err := decodeStmt(sm)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}
