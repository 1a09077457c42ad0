package symtab

import (
	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/semantic/types"
)

// SymbolKind classifies what a Symbol names.
type SymbolKind int

const (
	VarSymbol SymbolKind = iota
	FuncSymbol
	ClassSymbol
)

// Symbol is one declared name: a variable, function, method, or class.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Type     types.Type
	Pos      lexer.Position
	IsConst  bool
	Params   []string // parameter names, in declaration order, for FuncSymbol
}
