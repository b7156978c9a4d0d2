package ops

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// supportOverlay is the YAML shape for flipping an operation's Supported
// bit without a source change — the way VM-lowering support for an
// operation (e.g. string concatenation) lands independently of the type
// rules that accept it.
//
//	overrides:
//	  - operator: Plus
//	    left: str
//	    right: str
//	    supported: true
type supportOverlay struct {
	Overrides []struct {
		Operator string `yaml:"operator"`
		Left     string `yaml:"left"`
		Right    string `yaml:"right"`
		Operand  string `yaml:"operand"`
		Supported bool  `yaml:"supported"`
	} `yaml:"overrides"`
}

var operatorByName = func() map[string]Operator {
	m := make(map[string]Operator, len(names))
	for op, n := range names {
		m[n] = op
	}
	return m
}()

// OverlayFromYAML applies a support-flag overlay to r in place. It never
// adds or removes operations, nor does it change result types or opcodes —
// only the Supported bit of an already-registered operation.
func OverlayFromYAML(r *Registry, data []byte) error {
	var overlay supportOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("ops: decoding overlay: %w", err)
	}

	for _, ov := range overlay.Overrides {
		op, ok := operatorByName[ov.Operator]
		if !ok {
			return fmt.Errorf("ops: unknown operator %q in overlay", ov.Operator)
		}
		if ov.Operand != "" {
			found := false
			for _, candidate := range r.unary[op] {
				if candidate.OperandType.Identifier() == ov.Operand {
					candidate.Supported = ov.Supported
					found = true
				}
			}
			if !found {
				return fmt.Errorf("ops: no unary %s(%s) operation to overlay", ov.Operator, ov.Operand)
			}
			continue
		}
		found := false
		for _, candidate := range r.binary[op] {
			if candidate.LeftType.Identifier() == ov.Left && candidate.RightType.Identifier() == ov.Right {
				candidate.Supported = ov.Supported
				found = true
			}
		}
		if !found {
			return fmt.Errorf("ops: no binary %s(%s, %s) operation to overlay", ov.Operator, ov.Left, ov.Right)
		}
	}
	return nil
}
