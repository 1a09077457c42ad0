package ir_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune any snapshot file entries that no test in
// this package still produces, the way CWBudde-go-dws's fixture suite
// does for its own snapshot directory.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestQuadrupleStreamGolden(t *testing.T) {
	prog := compile(t, `
		class Shape {
			let name: string = "shape";
			function area(): float {
				return 0.0;
			}
		}
		class Circle extends Shape {
			let radius: float = 1.0;
			function area(): float {
				return radius * radius;
			}
		}
		function main(): void {
			let c: Shape = new Circle();
			let total: float = 0.0;
			for (let i: integer = 0; i < 3; i = i + 1) {
				total = total + 1.0;
			}
			print(total);
		}
	`)
	snaps.MatchSnapshot(t, prog.String())
}

func TestRecursiveFunctionQuadrupleStreamGolden(t *testing.T) {
	prog := compile(t, `
		function fib(n: integer): integer {
			if (n < 2) {
				return n;
			}
			return fib(n - 1) + fib(n - 2);
		}
	`)
	snaps.MatchSnapshot(t, prog.String())
}
