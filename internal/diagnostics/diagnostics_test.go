package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/gerax5/semcore/internal/diagnostics"
	"github.com/gerax5/semcore/internal/lexer"
)

func TestSinkHasErrors(t *testing.T) {
	s := diagnostics.NewSink()
	if s.HasErrors() {
		t.Fatal("empty sink should report no errors")
	}
	s.Warning(lexer.Position{Filename: "a.sc", Line: 1, Column: 1}, "unused variable %q", "x")
	if s.HasErrors() {
		t.Fatal("a sink with only warnings should not report errors")
	}
	s.Error(lexer.Position{Filename: "a.sc", Line: 2, Column: 1}, "boom")
	if !s.HasErrors() {
		t.Fatal("a sink with an error should report errors")
	}
}

func TestSinkInternalCountsAsError(t *testing.T) {
	s := diagnostics.NewSink()
	s.Internal(lexer.Position{Filename: "a.sc", Line: 1, Column: 1}, "scope missing for node")
	if !s.HasErrors() {
		t.Fatal("an internal diagnostic should count as an error for exit-code purposes")
	}
}

func TestSortedOrdersByPositionStableOnTies(t *testing.T) {
	s := diagnostics.NewSink()
	s.Error(lexer.Position{Filename: "a.sc", Line: 5, Column: 1, Offset: 40}, "second")
	s.Error(lexer.Position{Filename: "a.sc", Line: 1, Column: 1, Offset: 0}, "first")
	s.Error(lexer.Position{Filename: "a.sc", Line: 1, Column: 1, Offset: 0}, "first-again")

	sorted := s.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(sorted))
	}
	if sorted[0].Message != "first" || sorted[1].Message != "first-again" {
		t.Errorf("expected ties broken by report order, got %v", []string{sorted[0].Message, sorted[1].Message})
	}
	if sorted[2].Message != "second" {
		t.Errorf("expected last diagnostic to be %q, got %q", "second", sorted[2].Message)
	}
}

func TestRenderWithSourceIncludesCaret(t *testing.T) {
	s := diagnostics.NewSink()
	s.Error(lexer.Position{Filename: "a.sc", Line: 2, Column: 5}, "cannot assign float to integer")

	src := "let x: integer = 1;\nlet y: integer = 2.5;\n"
	out := diagnostics.RenderWithSource(s.Sorted(), src)

	if !strings.Contains(out, "cannot assign float to integer") {
		t.Error("rendered output missing the diagnostic message")
	}
	if !strings.Contains(out, "let y: integer = 2.5;") {
		t.Error("rendered output missing the source excerpt")
	}
	if !strings.Contains(out, "^") {
		t.Error("rendered output missing the caret")
	}
}

func TestRenderJSONShape(t *testing.T) {
	s := diagnostics.NewSink()
	s.Error(lexer.Position{Filename: "a.sc", Line: 3, Column: 7}, "undeclared name %q", "foo")

	out, err := diagnostics.RenderJSON(s.Sorted())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	for _, want := range []string{`"file": "a.sc"`, `"line": 3`, `"column": 7`, `"severity": "error"`, `"message": "undeclared name \"foo\""`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected JSON output to contain %q, got: %s", want, got)
		}
	}
}
