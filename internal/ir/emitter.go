package ir

import (
	"github.com/gerax5/semcore/internal/parser/ast"
	"github.com/gerax5/semcore/internal/semantic"
)

// loopCtx is pushed onto the Emitter's loop stack for the duration of a
// while/do-while/for/foreach body so continue/break know which labels to
// jump to (§4.4 loop_stack).
type loopCtx struct {
	continueLabel string
	breakLabel    string
}

// Emitter walks a type-checked tree a third time and appends one
// Quadruple per construct to Program.Quads. It consults the Checker's
// ExprTypes only to find the class that defines a method called through
// a property expression; everything else is structural.
type Emitter struct {
	checker *semantic.Checker
	sb      *semantic.ScopeBuilder

	prog   *Program
	temps  *TempManager
	labels *LabelAllocator

	loopStack   []loopCtx
	switchStack []string // innermost enclosing switch's end label
}

// NewEmitter creates an Emitter over the results of a completed
// ScopeBuilder/Checker run.
func NewEmitter(sb *semantic.ScopeBuilder, checker *semantic.Checker) *Emitter {
	return &Emitter{
		sb:      sb,
		checker: checker,
		prog:    &Program{},
		temps:   NewTempManager(),
		labels:  NewLabelAllocator(),
	}
}

func (e *Emitter) emit(q Quadruple) {
	q.ID = len(e.prog.Quads)
	e.prog.Quads = append(e.prog.Quads, q)
}

// Emit lowers an entire file into a Program: top-level variable
// initializers first (as an implicit entry sequence), then every
// top-level function, then every class.
func (e *Emitter) Emit(f *ast.File) *Program {
	for _, d := range f.Decls {
		if vd, ok := d.(*ast.VarDecl); ok {
			e.emitVarDecl(vd)
		}
	}
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			e.emitFunc(fd, "")
		}
	}
	for _, d := range f.Decls {
		if cd, ok := d.(*ast.ClassDecl); ok {
			e.emitClass(cd)
		}
	}
	return e.prog
}

func (e *Emitter) emitFunc(decl *ast.FuncDecl, classPrefix string) {
	name := decl.Name
	if classPrefix != "" {
		name = classPrefix + "_" + decl.Name
	}
	e.emit(Quadruple{Op: OpFunc, Arg1: name})
	for _, p := range decl.Params {
		e.emit(Quadruple{Op: OpParam, Arg1: p.Name})
	}
	e.emitBlock(decl.Body)
	e.emit(Quadruple{Op: OpEndFunc, Arg1: name})
}

func (e *Emitter) emitClass(decl *ast.ClassDecl) {
	e.emit(Quadruple{Op: OpClass, Arg1: decl.Name, Arg2: decl.Super})

	for _, field := range decl.Fields {
		if field.Init == nil {
			continue
		}
		v := e.emitExpr(field.Init)
		e.emit(Quadruple{Op: OpSetProp, Arg1: v, Arg2: field.Name, Result: "this"})
	}
	for _, m := range decl.Methods {
		e.emitFunc(m, decl.Name)
	}

	e.emit(Quadruple{Op: OpEndClass, Arg1: decl.Name})
}

func (e *Emitter) emitVarDecl(decl *ast.VarDecl) {
	if decl.Init == nil {
		return
	}
	v := e.emitExpr(decl.Init)
	e.emit(Quadruple{Op: OpAssign, Arg1: v, Result: decl.Name})
	e.temps.Release(v)
}

func (e *Emitter) emitBlock(block *ast.BlockStmt) {
	for _, s := range block.Stmts {
		e.emitStmt(s)
	}
}
