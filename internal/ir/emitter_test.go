package ir_test

import (
	"strings"
	"testing"

	"github.com/gerax5/semcore/internal/config"
	"github.com/gerax5/semcore/internal/diagnostics"
	"github.com/gerax5/semcore/internal/ir"
	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser"
	"github.com/gerax5/semcore/internal/semantic"
)

func compile(t *testing.T, src string) *ir.Program {
	t.Helper()
	lex := lexer.New("test.sc", src)
	p := parser.New(lex)
	file := p.ParseFile("test.sc")
	if len(p.Errors) > 0 {
		t.Fatalf("parse errors: %v", p.Errors)
	}

	sink := diagnostics.NewSink()
	sb := semantic.NewScopeBuilder(sink)
	sb.Build(file)

	checker := semantic.NewChecker(sb, sink, config.Default())
	checker.Check(file)
	if sink.HasErrors() {
		t.Fatalf("semantic errors: %v", sink.All())
	}

	emitter := ir.NewEmitter(sb, checker)
	return emitter.Emit(file)
}

func TestEmitArithmetic(t *testing.T) {
	prog := compile(t, `
		function add(a: integer, b: integer): integer {
			return a + b;
		}
	`)
	out := prog.String()
	if !strings.Contains(out, "func add") {
		t.Errorf("expected a func add marker, got:\n%s", out)
	}
	if !strings.Contains(out, "+") {
		t.Errorf("expected an addition quadruple, got:\n%s", out)
	}
	if !strings.Contains(out, "return") {
		t.Errorf("expected a return quadruple, got:\n%s", out)
	}
}

func TestEmitIfElse(t *testing.T) {
	prog := compile(t, `
		function choose(a: integer): integer {
			if (a > 0) {
				return 1;
			} else {
				return -1;
			}
		}
	`)
	out := prog.String()
	if !strings.Contains(out, "ifFalse") {
		t.Errorf("expected an ifFalse branch, got:\n%s", out)
	}
	if !strings.Contains(out, "L_if_else") {
		t.Errorf("expected an else label, got:\n%s", out)
	}
}

func TestEmitWhileLoopLabels(t *testing.T) {
	prog := compile(t, `
		function main(): void {
			let i: integer = 0;
			while (i < 3) {
				i = i + 1;
			}
		}
	`)
	out := prog.String()
	if !strings.Contains(out, "L_while_cond") || !strings.Contains(out, "L_while_end") {
		t.Errorf("expected while condition/end labels, got:\n%s", out)
	}
}

func TestEmitTempReuse(t *testing.T) {
	prog := compile(t, `
		function main(): void {
			let a: integer = 1 + 2;
			let b: integer = 3 + 4;
		}
	`)
	// Each independent arithmetic expression should reuse the same
	// temp once the prior one's value has been consumed by the assign.
	seenT1 := 0
	for _, q := range prog.Quads {
		if q.Result == "t1" {
			seenT1++
		}
	}
	if seenT1 < 2 {
		t.Errorf("expected t1 to be reused across the two let statements, got %d uses:\n%s", seenT1, prog.String())
	}
}

func TestEmitClassFieldAccess(t *testing.T) {
	prog := compile(t, `
		class Counter {
			let value: integer = 0;
			function increment(): void {
				value = value + 1;
			}
		}
	`)
	out := prog.String()
	if !strings.Contains(out, "class Counter") {
		t.Errorf("expected class marker, got:\n%s", out)
	}
	hasOp := func(op ir.Op) bool {
		for _, q := range prog.Quads {
			if q.Op == op {
				return true
			}
		}
		return false
	}
	if !hasOp(ir.OpGetProp) {
		t.Errorf("expected a getprop for field read, got:\n%s", out)
	}
	if !hasOp(ir.OpSetProp) {
		t.Errorf("expected a setprop for field write, got:\n%s", out)
	}
}

func TestEmitBreakPrefersSwitchOverNestedLoop(t *testing.T) {
	prog := compile(t, `
		function f(): void {
			switch (1) {
				case 1:
					while (true) {
						break;
					}
			}
		}
	`)
	// With no default arm the case dispatch itself ends in one goto to the
	// switch's end label; the break must be a second one.
	switchEndGotos := 0
	for _, q := range prog.Quads {
		if q.Op != ir.OpGoto {
			continue
		}
		if strings.Contains(q.Arg1, "switch_end") {
			switchEndGotos++
		}
		if strings.Contains(q.Arg1, "while_end") {
			t.Errorf("break inside a loop nested in a switch should target the switch end label, got goto %s", q.Arg1)
		}
	}
	if switchEndGotos != 2 {
		t.Fatalf("expected the dispatch and the break to both goto the switch's end label, got %d such gotos:\n%s", switchEndGotos, prog.String())
	}
}

func TestEmitSwitchEqualityDispatch(t *testing.T) {
	prog := compile(t, `
		function describe(n: integer): string {
			switch (n) {
				case 1:
					return "one";
				default:
					return "other";
			}
		}
	`)
	out := prog.String()
	if !strings.Contains(out, "==") {
		t.Errorf("expected an equality comparison for the case, got:\n%s", out)
	}
	if !strings.Contains(out, "L_switch_default") {
		t.Errorf("expected a default label, got:\n%s", out)
	}
}
