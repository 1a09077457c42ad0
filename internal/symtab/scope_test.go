package symtab

import "testing"

func TestDefineAndResolve(t *testing.T) {
	s := NewScope(FileScope, nil)
	s.Define(&Symbol{Name: "x", Kind: VarSymbol})

	sym, ok := s.Resolve("x")
	if !ok {
		t.Fatal("expected to resolve x")
	}
	if sym.Name != "x" {
		t.Errorf("got %q, want x", sym.Name)
	}
}

func TestDefineDuplicateRejected(t *testing.T) {
	s := NewScope(FileScope, nil)
	if !s.Define(&Symbol{Name: "x", Kind: VarSymbol}) {
		t.Fatal("first define of x should succeed")
	}
	if s.Define(&Symbol{Name: "x", Kind: VarSymbol}) {
		t.Error("redefining x in the same scope should fail")
	}
}

func TestResolveWalksParent(t *testing.T) {
	outer := NewScope(FileScope, nil)
	outer.Define(&Symbol{Name: "x", Kind: VarSymbol})
	inner := NewScope(BlockScope, outer)

	if _, ok := inner.Resolve("x"); !ok {
		t.Error("inner scope should resolve x through its parent")
	}
}

func TestShadowing(t *testing.T) {
	outer := NewScope(FileScope, nil)
	outer.Define(&Symbol{Name: "x", Kind: VarSymbol, IsConst: false})
	inner := NewScope(BlockScope, outer)
	inner.Define(&Symbol{Name: "x", Kind: VarSymbol, IsConst: true})

	sym, _ := inner.Resolve("x")
	if !sym.IsConst {
		t.Error("inner scope's x should shadow outer's, and be const")
	}
}

func TestNamesPreservesOrder(t *testing.T) {
	s := NewScope(FileScope, nil)
	s.Define(&Symbol{Name: "c"})
	s.Define(&Symbol{Name: "a"})
	s.Define(&Symbol{Name: "b"})

	names := s.Names()
	want := []string{"c", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFindEnclosingClassStopsAtOwnerlessChain(t *testing.T) {
	file := NewScope(FileScope, nil)
	block := NewScope(BlockScope, file)

	if block.FindEnclosingClass() != nil {
		t.Error("no class owner in the chain should resolve to nil")
	}
}
