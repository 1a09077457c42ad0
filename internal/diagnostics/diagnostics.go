// Package diagnostics accumulates and renders compiler error/warning
// messages. It never panics on an internal inconsistency; the caller that
// detects one reports it through the Sink and substitutes a safe
// placeholder value so the rest of the pipeline can keep running (§7).
package diagnostics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gerax5/semcore/internal/lexer"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Internal // a checker/emitter-detected inconsistency, not a user mistake
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Diagnostic is a single positioned message.
type Diagnostic struct {
	Pos      lexer.Position
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos.String(), d.Severity.String(), d.Message)
}

// Sink accumulates diagnostics in the order they are reported. Passes
// never abort on the first error (§7 "recoverable error accumulation");
// they keep analyzing so a single run surfaces as many problems as
// possible.
type Sink struct {
	items []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error records a user-facing error at pos.
func (s *Sink) Error(pos lexer.Position, format string, args ...interface{}) {
	s.items = append(s.items, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...), Severity: Error})
}

// Warning records a non-fatal observation.
func (s *Sink) Warning(pos lexer.Position, format string, args ...interface{}) {
	s.items = append(s.items, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...), Severity: Warning})
}

// Internal records a checker/emitter-detected inconsistency: a symbol
// that should have resolved but didn't, a type that should have been
// computed but wasn't. These indicate a bug in an earlier pass, not a
// mistake in the analyzed program, but are still reported rather than
// panicking so the CLI can print a useful message and exit non-zero.
func (s *Sink) Internal(pos lexer.Position, format string, args ...interface{}) {
	s.items = append(s.items, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...), Severity: Internal})
}

// HasErrors reports whether any Error or Internal diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.items {
		if d.Severity == Error || d.Severity == Internal {
			return true
		}
	}
	return false
}

// All returns every recorded diagnostic, in report order.
func (s *Sink) All() []Diagnostic {
	return s.items
}

// Sorted returns diagnostics ordered by source position, stable on
// report order for ties at the same position.
func (s *Sink) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos.Before(out[j].Pos)
	})
	return out
}

// Render formats every diagnostic as one line per entry, in report order.
func Render(items []Diagnostic) string {
	var sb strings.Builder
	for _, d := range items {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderWithSource formats each diagnostic with a source excerpt and a
// caret pointing at the offending column, for terminal output.
func RenderWithSource(items []Diagnostic, source string) string {
	lines := strings.Split(source, "\n")
	var sb strings.Builder
	for _, d := range items {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
		if d.Pos.Line >= 1 && d.Pos.Line <= len(lines) {
			src := lines[d.Pos.Line-1]
			sb.WriteString(fmt.Sprintf("  %4d | %s\n", d.Pos.Line, src))
			sb.WriteString(strings.Repeat(" ", 9+d.Pos.Column-1))
			sb.WriteString("^\n")
		}
	}
	return sb.String()
}

type jsonDiagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// RenderJSON formats diagnostics as a JSON array, for --json CLI output.
func RenderJSON(items []Diagnostic) ([]byte, error) {
	out := make([]jsonDiagnostic, len(items))
	for i, d := range items {
		out[i] = jsonDiagnostic{
			File:     d.Pos.Filename,
			Line:     d.Pos.Line,
			Column:   d.Pos.Column,
			Severity: d.Severity.String(),
			Message:  d.Message,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
