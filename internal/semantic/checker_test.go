package semantic_test

import (
	"testing"

	"github.com/gerax5/semcore/internal/config"
	"github.com/gerax5/semcore/internal/diagnostics"
	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser"
	"github.com/gerax5/semcore/internal/semantic"
)

func analyze(t *testing.T, src string) *diagnostics.Sink {
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

	return sink
}

func TestCheckerValidArithmetic(t *testing.T) {
	sink := analyze(t, `
		function add(a: integer, b: integer): integer {
			return a + b;
		}
	`)
	if sink.HasErrors() {
		t.Errorf("unexpected errors: %v", sink.All())
	}
}

func TestCheckerTypeMismatchAssignment(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			let a: integer = "oops";
		}
	`)
	if !sink.HasErrors() {
		t.Error("expected a type error assigning string to integer")
	}
}

func TestCheckerIntWidensToFloat(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			let a: float = 1;
		}
	`)
	if sink.HasErrors() {
		t.Errorf("Int literal should widen to float, got errors: %v", sink.All())
	}
}

func TestCheckerUndeclaredName(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			let a: integer = b;
		}
	`)
	if !sink.HasErrors() {
		t.Error("expected an undeclared-name error")
	}
}

func TestCheckerClassInheritanceAssignment(t *testing.T) {
	sink := analyze(t, `
		class Animal {
			let name: string = "";
		}
		class Dog extends Animal {
		}
		function main(): void {
			let a: Animal = new Dog();
		}
	`)
	if sink.HasErrors() {
		t.Errorf("Dog should be assignable to Animal, got errors: %v", sink.All())
	}
}

func TestCheckerBreakOutsideLoop(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			break;
		}
	`)
	if !sink.HasErrors() {
		t.Error("expected a break-outside-loop error")
	}
}

func TestCheckerConstReassignment(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			const x: integer = 1;
			x = 2;
		}
	`)
	if !sink.HasErrors() {
		t.Error("expected an error reassigning a const")
	}
}

func TestCheckerWhileLoopAndBreak(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			let i: integer = 0;
			while (i < 10) {
				if (i == 5) {
					break;
				}
				i = i + 1;
			}
		}
	`)
	if sink.HasErrors() {
		t.Errorf("unexpected errors: %v", sink.All())
	}
}

func TestCheckerBareDeclarationHasNoInitializerIsNotAnError(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			let x;
		}
	`)
	if sink.HasErrors() {
		t.Errorf("a bare `let x;` should stay Null pending a later assignment, got errors: %v", sink.All())
	}
}

func TestCheckerVarDeclMismatchMessage(t *testing.T) {
	sink := analyze(t, `
		let a: integer = "hola";
	`)
	want := "No se puede asignar String a Int en 'a'"
	found := false
	for _, d := range sink.All() {
		if d.Message == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected diagnostic %q, got: %v", want, sink.All())
	}
}

func TestCheckerReturnMismatchMessage(t *testing.T) {
	sink := analyze(t, `
		function f(x: integer): integer {
			return "x";
		}
	`)
	want := "return: esperado Int, recibido String"
	found := false
	for _, d := range sink.All() {
		if d.Message == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected diagnostic %q, got: %v", want, sink.All())
	}
}

func TestCheckerCatchBinderIsAssignableToAnyClass(t *testing.T) {
	sink := analyze(t, `
		class Oops {
		}
		function main(): void {
			try {
				let a: integer = 1;
			} catch (e) {
				let o: Oops = e;
			}
		}
	`)
	if sink.HasErrors() {
		t.Errorf("catch binder should type-check as a Null placeholder assignable to any class, got errors: %v", sink.All())
	}
}

func TestCheckerContinueInsideSwitchAloneIsAnError(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			switch (1) {
				case 1:
					continue;
			}
		}
	`)
	if !sink.HasErrors() {
		t.Error("continue inside a switch with no enclosing loop should be an error")
	}
}

func TestCheckerBreakInsideSwitchAloneIsOk(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			switch (1) {
				case 1:
					break;
			}
		}
	`)
	if sink.HasErrors() {
		t.Errorf("break inside a bare switch should be valid, got errors: %v", sink.All())
	}
}

func TestCheckerOverrideParamMismatchMessage(t *testing.T) {
	sink := analyze(t, `
		class A {
			function m(x: string): void {}
		}
		class B extends A {
			function m(x: integer): void {}
		}
	`)
	want := "Override inválido de 'm': tipo de parámetro Int no coincide con String"
	found := false
	for _, d := range sink.All() {
		if d.Message == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected diagnostic %q, got: %v", want, sink.All())
	}
}

func TestCheckerOverrideReturnMismatchMessage(t *testing.T) {
	sink := analyze(t, `
		class A {
			function m(): void {}
		}
		class B extends A {
			function m(): string { return ""; }
		}
	`)
	want := "Override inválido de 'm': tipo de retorno String no coincide con Void"
	found := false
	for _, d := range sink.All() {
		if d.Message == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected diagnostic %q, got: %v", want, sink.All())
	}
}

func TestCheckerArrayIndexRequiresInt(t *testing.T) {
	sink := analyze(t, `
		function main(): void {
			let a: integer[] = [1, 2, 3];
			let x: integer = a["bad"];
		}
	`)
	if !sink.HasErrors() {
		t.Error("expected an error indexing with a string")
	}
}
