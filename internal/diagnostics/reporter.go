package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter renders a Sink's diagnostics to a writer, colourising errors
// and warnings when the destination looks like a terminal.
type Reporter struct {
	out      io.Writer
	errorf   func(string, ...any) string
	warnf    func(string, ...any) string
}

// NewReporter returns a Reporter writing to out. Colour is enabled only
// when out is an *os.File whose fd is a TTY, so piped or redirected output
// stays plain text.
func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{out: out, errorf: fmt.Sprintf, warnf: fmt.Sprintf}

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r.errorf = color.New(color.FgRed, color.Bold).Sprintf
		r.warnf = color.New(color.FgYellow).Sprintf
	}
	return r
}

// NewPlainReporter returns a Reporter that never colourises, regardless of
// whether out is a terminal — the explicit opt-out for --no-color and for
// deterministic test output.
func NewPlainReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, errorf: fmt.Sprintf, warnf: fmt.Sprintf}
}

// Report writes every error then every warning from s, in append order.
func (r *Reporter) Report(s *Sink) {
	for _, e := range s.Errors() {
		fmt.Fprintln(r.out, r.errorf("error[%s]: %s", e.Code, e.Error()))
	}
	for _, w := range s.Warnings() {
		fmt.Fprintln(r.out, r.warnf("warning[%s]: %s", w.Code, w.Error()))
	}
}
