// Package diagnostics is the analyser's append-only diagnostic sink:
// errors and warnings carrying precise source coordinates and a
// structured, code-tagged payload.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/boasemc/internal/ast"
	"github.com/google/uuid"
)

// ErrorCode is a stable, closed identifier for a diagnostic kind.
type ErrorCode string

const (
	ErrTypeHintMissing          ErrorCode = "A001"
	ErrMismatchedTypes          ErrorCode = "A002"
	ErrNotSupportedOperation    ErrorCode = "A003"
	ErrUnresolvedReference      ErrorCode = "A004"
	ErrUnresolvedOperation      ErrorCode = "A005"
	ErrTooManyReturns           ErrorCode = "A006"
	ErrInvalidType              ErrorCode = "A007"
	ErrIncorrectNumberOperands  ErrorCode = "A008"
	ErrFatalUnimplemented       ErrorCode = "A009"
)

// DiagnosticError is a single error or warning. It implements error so it
// composes with ordinary Go error handling at call sites that don't care
// about the structured payload.
type DiagnosticError struct {
	Code    ErrorCode
	Pos     ast.Pos
	Message string
	RunID   uuid.UUID
}

func (d *DiagnosticError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Pos.Line, d.Pos.Column, d.Code, d.Message)
}

// NewError builds a DiagnosticError at pos with the given code and a
// preformatted message. RunID is stamped by the Sink that owns it, not
// here, so a bare diagnostic can still be constructed and compared in
// tests without a Sink.
func NewError(code ErrorCode, pos ast.Pos, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Pos: pos, Message: message}
}

// Kind-specific constructors, one per entry in the spec's error table.
// Keeping payload formatting here (rather than scattered across the
// analyser) is what keeps diagnostic wording consistent.

func TypeHintMissing(pos ast.Pos, symbolID string) *DiagnosticError {
	return NewError(ErrTypeHintMissing, pos, fmt.Sprintf("missing type hint for %q", symbolID))
}

func MismatchedTypes(pos ast.Pos, actual, expected string) *DiagnosticError {
	return NewError(ErrMismatchedTypes, pos, fmt.Sprintf("expected type %q, got %q", expected, actual))
}

func NotSupportedOperation(pos ast.Pos, operator string) *DiagnosticError {
	return NewError(ErrNotSupportedOperation, pos, fmt.Sprintf("operation %q is not supported", operator))
}

func UnresolvedReference(pos ast.Pos, token string) *DiagnosticError {
	return NewError(ErrUnresolvedReference, pos, fmt.Sprintf("unresolved operator %q", token))
}

func UnresolvedOperation(pos ast.Pos, typeID, operationID string) *DiagnosticError {
	return NewError(ErrUnresolvedOperation, pos, fmt.Sprintf("operation %q does not apply to type %q", operationID, typeID))
}

func TooManyReturns(pos ast.Pos) *DiagnosticError {
	return NewError(ErrTooManyReturns, pos, "cannot return more than one value")
}

func InvalidType(pos ast.Pos, symbolID string) *DiagnosticError {
	return NewError(ErrInvalidType, pos, fmt.Sprintf("invalid literal type %q", symbolID))
}

func IncorrectNumberOfOperands(pos ast.Pos, got, expected int) *DiagnosticError {
	return NewError(ErrIncorrectNumberOperands, pos, fmt.Sprintf("got %d operand(s), expected %d", got, expected))
}

// FatalUnimplemented marks a construct the analyser does not support at
// all (elif, break, continue, nested tuple-unpack assignment). Unlike
// every other kind, it aborts the entire walk: the analyser returns it from
// every enclosing block and out of Analyzer.Analyze.
func FatalUnimplemented(pos ast.Pos, construct string) *DiagnosticError {
	return NewError(ErrFatalUnimplemented, pos, fmt.Sprintf("%s is not implemented", construct))
}

// Sink accumulates diagnostics for one analyser run. It is not safe for
// concurrent use; each Analyzer owns exactly one.
type Sink struct {
	RunID    uuid.UUID
	errors   []*DiagnosticError
	warnings []*DiagnosticError
}

// NewSink returns a Sink stamped with a fresh run ID, for cross-file log
// correlation when several files are compiled in one invocation.
func NewSink() *Sink {
	return &Sink{RunID: uuid.New()}
}

// LogError appends d to the error list, stamping it with this sink's run
// ID. It does not itself unwind anything — the analyser's visitors are
// responsible for returning immediately after calling LogError, which is
// what produces the "unwind the current sub-expression" behaviour.
func (s *Sink) LogError(d *DiagnosticError) *DiagnosticError {
	d.RunID = s.RunID
	s.errors = append(s.errors, d)
	return d
}

// LogWarning appends d to the warning list. Warnings never unwind.
func (s *Sink) LogWarning(d *DiagnosticError) {
	d.RunID = s.RunID
	s.warnings = append(s.warnings, d)
}

// HasErrors reports whether any error has been logged.
func (s *Sink) HasErrors() bool { return len(s.errors) > 0 }

// Errors returns the logged errors in the order they were appended
// (depth-first, left-to-right walk order, per spec).
func (s *Sink) Errors() []*DiagnosticError { return s.errors }

// Warnings returns the logged warnings in append order.
func (s *Sink) Warnings() []*DiagnosticError { return s.warnings }
