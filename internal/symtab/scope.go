// Package symtab implements the scope chain and symbol table the scope
// builder populates and the type checker and IR emitter both query.
package symtab

import (
	"github.com/gerax5/semcore/internal/semantic/types"
)

// ScopeKind distinguishes the syntactic construct a Scope was opened for,
// used by ResolveMember and the IR emitter to recognize class scopes.
//
// Only block, for, foreach, function-declaration and class-declaration
// open a scope (§4.2); while, do-while and switch merely adjust the
// Checker's loopDepth/switchDepth counters, so there is no LoopScope for
// those constructs — LoopScope is for/foreach only.
type ScopeKind int

const (
	FileScope ScopeKind = iota
	ClassScope
	FuncScope
	BlockScope
	LoopScope
)

// Scope is one lexical scope: an ordered symbol table plus a link to its
// parent. Order is preserved (a slice of names alongside the lookup map)
// because method and field dumps must reproduce declaration order (§9).
type Scope struct {
	Kind    ScopeKind
	Parent  *Scope
	Owner   *types.ClassType // non-nil inside a ClassScope or a method's FuncScope
	order   []string
	symbols map[string]*Symbol
}

// NewScope creates a scope of the given kind, chained to parent.
func NewScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{Kind: kind, Parent: parent, symbols: make(map[string]*Symbol)}
}

// Define adds a new symbol to this scope. It returns false without
// modifying the scope if name is already defined here (shadowing an
// outer scope's symbol is fine; redeclaring in the same scope is not).
func (s *Scope) Define(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}
	s.symbols[sym.Name] = sym
	s.order = append(s.order, sym.Name)
	return true
}

// DefinedHere reports whether name is declared directly in this scope,
// ignoring parents.
func (s *Scope) DefinedHere(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Resolve looks up name in this scope, then walks Parent links outward
// until found or the chain is exhausted.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveMember looks up name among the members declared directly in the
// class scope owned by class, found by walking this scope's Parent chain.
// Members inherited from a superclass are not searched, and the lookup
// fails when no enclosing scope is class's own class scope. Used for
// unqualified member access inside a method body.
func (s *Scope) ResolveMember(class *types.ClassType, name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Kind == ClassScope && cur.Owner == class {
			if sym, ok := cur.symbols[name]; ok {
				return sym, true
			}
		}
	}
	return nil, false
}

// Names returns the symbols defined directly in this scope, in
// declaration order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Symbols returns the *Symbol for every name in Names order.
func (s *Scope) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.symbols[n])
	}
	return out
}

// FindEnclosingClass walks outward for the nearest class scope's Owner,
// used to resolve `this` and unqualified member references inside a
// method body.
func (s *Scope) FindEnclosingClass() *types.ClassType {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Owner != nil {
			return cur.Owner
		}
	}
	return nil
}

// ScopeMap associates each scope-introducing AST node with the Scope the
// builder created for it, keyed by node identity (a pointer compares
// equal only to itself, so two syntactically identical blocks never
// collide). The checker and IR emitter both consult it to find the
// scope active at a given node without re-walking the tree.
type ScopeMap map[interface{}]*Scope

// NewScopeMap creates an empty ScopeMap.
func NewScopeMap() ScopeMap {
	return make(ScopeMap)
}
