package analyzer_test

import (
	"testing"

	"github.com/funvibe/boasemc/internal/analyzer"
	"github.com/funvibe/boasemc/internal/diagnostics"
	"github.com/funvibe/boasemc/internal/fixture"
	"github.com/funvibe/boasemc/internal/ops"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, yamlDoc string) (*diagnostics.Sink, *diagnostics.DiagnosticError) {
	t.Helper()
	f, err := fixture.Load([]byte(yamlDoc))
	require.NoError(t, err)

	a := analyzer.New(f.Table, ops.NewDefaultRegistry())
	fatal := a.Analyze(f.Module)
	return a.Sink(), fatal
}

func codes(sink *diagnostics.Sink) []string {
	out := make([]string, 0, len(sink.Errors()))
	for _, e := range sink.Errors() {
		out = append(out, string(e.Code))
	}
	return out
}

// Scenario 1: def f(a: int, b: int) -> int: return a + b
func TestScenario1_IntAddition(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}, {name: b, type: int}]
    return: int
    body:
      - return: {binop: {op: "+", left: {name: a}, right: {name: b}}}
`)
	require.Nil(t, fatal)
	assert.False(t, sink.HasErrors())
}

// Scenario 2: def f(a, b): return a + b
func TestScenario2_MissingParamAndReturnHints(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a}, {name: b}]
    body:
      - return: {binop: {op: "+", left: {name: a}, right: {name: b}}}
`)
	require.Nil(t, fatal)
	got := codes(sink)
	want := []string{string(diagnostics.ErrTypeHintMissing), string(diagnostics.ErrTypeHintMissing), string(diagnostics.ErrTypeHintMissing)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 3: def f() -> int: return
func TestScenario3_BareReturnMismatch(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    return: int
    body:
      - return:
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrMismatchedTypes, sink.Errors()[0].Code)
}

// Scenario 4: def f(s: str, t: str) -> str: return s + t
func TestScenario4_StringConcatNotSupported(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: s, type: str}, {name: t, type: str}]
    return: str
    body:
      - return: {binop: {op: "+", left: {name: s}, right: {name: t}}}
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrNotSupportedOperation, sink.Errors()[0].Code)
}

// Scenario 5: def f(xs: Sequence[int], k: str) -> int: return xs[k]
func TestScenario5_SubscriptKeyMismatch(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: xs, type: "Sequence[int]"}, {name: k, type: str}]
    return: int
    body:
      - return: {subscript: {value: {name: xs}, index: {name: k}}}
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrMismatchedTypes, sink.Errors()[0].Code)
}

// Scenario 6: def f(a: int) -> int: while a: a = a - 1 \n return a
func TestScenario6_WhileTestMismatch(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}]
    return: int
    body:
      - while:
          test: {name: a}
          body:
            - assign: {targets: [{name: a}], value: {binop: {op: "-", left: {name: a}, right: {int: 1}}}}
      - return: {name: a}
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrMismatchedTypes, sink.Errors()[0].Code)
}

// Scenario 7: def f(a: int) -> bool: return a is None
func TestScenario7_IsOnIntNoneNotSupported(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}]
    return: bool
    body:
      - return: {compare: {left: {name: a}, ops: ["is"], comparators: [{none: true}]}}
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrNotSupportedOperation, sink.Errors()[0].Code)
}

// Scenario 8: def f(a: Sequence[int]) -> int: return a[0]
func TestScenario8_ValidSubscript(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: "Sequence[int]"}]
    return: int
    body:
      - return: {subscript: {value: {name: a}, index: {int: 0}}}
`)
	require.Nil(t, fatal)
	assert.False(t, sink.HasErrors())
}

// Scenario 9: def f(a: int, b: int, c: int) -> bool: return a < b < c
func TestScenario9_ChainedCompare(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}, {name: b, type: int}, {name: c, type: int}]
    return: bool
    body:
      - return:
          compare:
            left: {name: a}
            ops: ["<", "<"]
            comparators: [{name: b}, {name: c}]
`)
	require.Nil(t, fatal)
	assert.False(t, sink.HasErrors())
}

// def f(a, b): a, b = b, a
func TestFlatTupleUnpackIsRecoverable(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}, {name: b, type: int}]
    body:
      - assign: {targets: [{tuple: [{name: a}, {name: b}]}], value: {tuple: [{name: b}, {name: a}]}}
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrNotSupportedOperation, sink.Errors()[0].Code)
}

// def f(a, b, c): (a, b), c = value  -- a nested tuple target aborts the walk.
func TestNestedTupleUnpackAbortsWalk(t *testing.T) {
	_, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}, {name: b, type: int}, {name: c, type: int}]
    body:
      - assign: {targets: [{tuple: [{tuple: [{name: a}, {name: b}]}, {name: c}]}], value: {name: a}}
`)
	require.NotNil(t, fatal)
	assert.Equal(t, diagnostics.ErrFatalUnimplemented, fatal.Code)
}

// def f(a, b): a = b = a -- multi-target assignment is recoverable too.
func TestMultiTargetAssignIsRecoverable(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}, {name: b, type: int}]
    body:
      - assign: {targets: [{name: a}, {name: b}], value: {name: a}}
`)
	require.Nil(t, fatal)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ErrNotSupportedOperation, sink.Errors()[0].Code)
}

func TestFatalElifAbortsWalk(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}]
    return: int
    body:
      - if:
          test: {name: a}
          body:
            - return: {int: 1}
          orelse:
            - if:
                test: {name: a}
                body:
                  - return: {int: 2}
`)
	require.NotNil(t, fatal)
	assert.Equal(t, diagnostics.ErrFatalUnimplemented, fatal.Code)
	_ = sink
}

func TestFatalBreakAbortsWalk(t *testing.T) {
	sink, fatal := run(t, `
functions:
  - name: f
    params: [{name: a, type: int}]
    return: int
    body:
      - while:
          test: {name: a}
          body:
            - break:
      - return: {int: 1}
`)
	require.NotNil(t, fatal)
	assert.Equal(t, diagnostics.ErrFatalUnimplemented, fatal.Code)
	_ = sink
}
