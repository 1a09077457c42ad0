package ir

import (
	"strconv"

	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser/ast"
	"github.com/gerax5/semcore/internal/semantic/types"
	"github.com/gerax5/semcore/internal/symtab"
)

// emitExpr lowers e and returns the operand (a temp name, a variable
// name, a literal, or "this") later quadruples can reference as Arg1/
// Arg2. Every branch either returns an existing name or allocates
// exactly one fresh temp for its result, matching §4.4's "each
// sub-expression gets at most one temp" shape.
func (e *Emitter) emitExpr(expr ast.Expr) string {
	switch ex := expr.(type) {
	case *ast.LiteralExpr:
		return e.emitLiteral(ex)
	case *ast.IdentifierExpr:
		return e.emitIdentifier(ex)
	case *ast.ThisExpr:
		return "this"
	case *ast.ArrayLiteralExpr:
		return e.emitArrayLiteral(ex)
	case *ast.NewExpr:
		return e.emitNew(ex)
	case *ast.NewArrayExpr:
		return e.emitNewArray(ex)
	case *ast.PropertyExpr:
		return e.emitPropertyRead(ex)
	case *ast.IndexExpr:
		return e.emitIndexRead(ex)
	case *ast.CallExpr:
		return e.emitCall(ex)
	case *ast.UnaryExpr:
		return e.emitUnary(ex)
	case *ast.BinaryExpr:
		return e.emitBinary(ex)
	case *ast.LogicalExpr:
		return e.emitLogical(ex)
	case *ast.TernaryExpr:
		return e.emitTernary(ex)
	case *ast.AssignmentExpr:
		return e.emitAssignment(ex)
	default:
		return ""
	}
}

func (e *Emitter) emitLiteral(ex *ast.LiteralExpr) string {
	switch ex.Kind {
	case lexer.STRING:
		return strconv.Quote(ex.Raw)
	default:
		return ex.Raw
	}
}

// scopeOf returns the scope recorded for node by the scope builder, or
// nil if none was recorded (should not happen for a node the checker
// already visited).
func (e *Emitter) scopeOf(node interface{}) *symtab.Scope {
	return e.sb.Scopes[node]
}

// implicitMethodOwner reports the class that declares name as a method,
// when an unqualified call inside a method body refers to a sibling
// method rather than a free function (the receiver is implicitly
// `this`).
func (e *Emitter) implicitMethodOwner(id *ast.IdentifierExpr) *types.ClassType {
	if id == nil {
		return nil
	}
	scope := e.scopeOf(id)
	for cur := scope; cur != nil; cur = cur.Parent {
		if _, ok := cur.DefinedHere(id.Name); ok {
			if cur.Kind == symtab.ClassScope {
				return findMethodOwner(cur.Owner, id.Name)
			}
			return nil
		}
	}
	return nil
}

func (e *Emitter) emitIdentifier(ex *ast.IdentifierExpr) string {
	scope := e.scopeOf(ex)
	if scope == nil {
		return ex.Name
	}
	for cur := scope; cur != nil; cur = cur.Parent {
		if _, ok := cur.DefinedHere(ex.Name); ok {
			if cur.Kind == symtab.ClassScope {
				t := e.temps.New()
				e.emit(Quadruple{Op: OpGetProp, Arg1: "this", Arg2: ex.Name, Result: t})
				return t
			}
			return ex.Name
		}
	}
	return ex.Name
}

func (e *Emitter) emitArrayLiteral(ex *ast.ArrayLiteralExpr) string {
	size := strconv.Itoa(len(ex.Elements))
	result := e.temps.New()
	e.emit(Quadruple{Op: OpNewArr, Arg1: size, Arg2: "1", Result: result})
	for i, el := range ex.Elements {
		v := e.emitExpr(el)
		e.emit(Quadruple{Op: OpIndexSet, Arg1: v, Arg2: strconv.Itoa(i), Result: result})
		e.temps.Release(v)
	}
	return result
}

// emitNew lowers `new ClassName(args...)`. It does not call a method
// named `constructor`: field defaults are lowered once into the class's
// own setprop sequence at class-definition time, and any arguments are
// evaluated for their side effects and passed as params ahead of the
// `new` quadruple.
func (e *Emitter) emitNew(ex *ast.NewExpr) string {
	for _, a := range ex.Args {
		v := e.emitExpr(a)
		e.emit(Quadruple{Op: OpParam, Arg1: v})
		e.temps.Release(v)
	}
	result := e.temps.New()
	e.emit(Quadruple{Op: OpNew, Arg1: ex.ClassName, Arg2: strconv.Itoa(len(ex.Args)), Result: result})
	return result
}

// emitNewArray lowers `new Type[s1][s2]...`. Only the outermost
// dimension's size drives the allocation quadruple; inner sizes are
// still evaluated for their side effects (and to catch a negative-size
// runtime fault downstream) but the IR leaves per-row allocation of a
// jagged array to whatever consumes this stream, the same way `newarr`
// leaves element initialization unspecified (§4.4).
func (e *Emitter) emitNewArray(ex *ast.NewArrayExpr) string {
	sizes := make([]string, len(ex.Sizes))
	for i, sizeExpr := range ex.Sizes {
		sizes[i] = e.emitExpr(sizeExpr)
	}
	result := e.temps.New()
	e.emit(Quadruple{Op: OpNewArr, Arg1: sizes[0], Arg2: strconv.Itoa(len(ex.Sizes)), Result: result})
	for _, sv := range sizes {
		e.temps.Release(sv)
	}
	return result
}

func (e *Emitter) emitPropertyRead(ex *ast.PropertyExpr) string {
	obj := e.emitExpr(ex.Object)
	result := e.temps.New()
	e.emit(Quadruple{Op: OpGetProp, Arg1: obj, Arg2: ex.Name, Result: result})
	e.temps.Release(obj)
	return result
}

func (e *Emitter) emitIndexRead(ex *ast.IndexExpr) string {
	arr := e.emitExpr(ex.Array)
	idx := e.emitExpr(ex.Index)
	result := e.temps.New()
	e.emit(Quadruple{Op: OpIndexGet, Arg1: arr, Arg2: idx, Result: result})
	e.temps.Release(arr)
	e.temps.Release(idx)
	return result
}

// findMethodOwner walks cls's Super chain for the nearest ancestor
// (including cls itself) that declares name directly, so a call lowers
// to the function that actually defines the method body rather than the
// static type of the receiver expression.
func findMethodOwner(cls *types.ClassType, name string) *types.ClassType {
	for cur := cls; cur != nil; cur = cur.Super {
		for _, m := range cur.Methods {
			if m == name {
				return cur
			}
		}
	}
	return nil
}

func (e *Emitter) emitCall(ex *ast.CallExpr) string {
	var funcName string
	var nargs int

	switch callee := ex.Callee.(type) {
	case *ast.PropertyExpr:
		obj := e.emitExpr(callee.Object)
		for _, a := range ex.Args {
			v := e.emitExpr(a)
			e.emit(Quadruple{Op: OpParam, Arg1: v})
			e.temps.Release(v)
		}
		e.emit(Quadruple{Op: OpParam, Arg1: obj})
		funcName = callee.Name
		if cls, ok := e.checker.ExprTypes[callee.Object].(*types.ClassType); ok {
			if owner := findMethodOwner(cls, callee.Name); owner != nil {
				funcName = owner.Name + "_" + callee.Name
			}
		}
		nargs = len(ex.Args) + 1
		e.temps.Release(obj)
	default:
		id, isIdent := ex.Callee.(*ast.IdentifierExpr)
		methodOwner := e.implicitMethodOwner(id)
		if isIdent && methodOwner != nil {
			for _, a := range ex.Args {
				v := e.emitExpr(a)
				e.emit(Quadruple{Op: OpParam, Arg1: v})
				e.temps.Release(v)
			}
			e.emit(Quadruple{Op: OpParam, Arg1: "this"})
			funcName = methodOwner.Name + "_" + id.Name
			nargs = len(ex.Args) + 1
		} else {
			for _, a := range ex.Args {
				v := e.emitExpr(a)
				e.emit(Quadruple{Op: OpParam, Arg1: v})
				e.temps.Release(v)
			}
			if isIdent {
				funcName = id.Name
			}
			nargs = len(ex.Args)
		}
	}

	result := e.temps.New()
	e.emit(Quadruple{Op: OpCall, Arg1: funcName, Arg2: strconv.Itoa(nargs), Result: result})
	return result
}

func (e *Emitter) emitUnary(ex *ast.UnaryExpr) string {
	operand := e.emitExpr(ex.Operand)
	result := e.temps.New()
	switch ex.Op {
	case lexer.MINUS:
		e.emit(Quadruple{Op: OpSub, Arg1: "0", Arg2: operand, Result: result})
	case lexer.NOT:
		e.emit(Quadruple{Op: OpNot, Arg1: operand, Result: result})
	}
	e.temps.Release(operand)
	return result
}

var binaryOps = map[lexer.TokenType]Op{
	lexer.PLUS:    OpAdd,
	lexer.MINUS:   OpSub,
	lexer.STAR:    OpMul,
	lexer.SLASH:   OpDiv,
	lexer.PERCENT: OpMod,
	lexer.LT:      OpLt,
	lexer.LE:      OpLe,
	lexer.GT:      OpGt,
	lexer.GE:      OpGe,
	lexer.EQ:      OpEq,
	lexer.NEQ:     OpNeq,
}

func (e *Emitter) emitBinary(ex *ast.BinaryExpr) string {
	l := e.emitExpr(ex.Left)
	r := e.emitExpr(ex.Right)
	result := e.temps.New()
	e.emit(Quadruple{Op: binaryOps[ex.Op], Arg1: l, Arg2: r, Result: result})
	e.temps.Release(l)
	e.temps.Release(r)
	return result
}

// emitLogical short-circuits && and ||, rather than always evaluating
// both operands, matching the conditional-jump style the rest of the
// control-flow lowering uses:
//
//	a && b  ==  t = false; if (a) { t = b }
//	a || b  ==  t = true;  if (!a) { t = b }
func (e *Emitter) emitLogical(ex *ast.LogicalExpr) string {
	result := e.temps.New()
	l := e.emitExpr(ex.Left)
	skipLabel := e.labels.New("logical_skip")

	if ex.Op == lexer.AND {
		e.emit(Quadruple{Op: OpAssign, Arg1: "false", Result: result})
		e.emit(Quadruple{Op: OpIfFalse, Arg1: l, Result: skipLabel})
	} else {
		e.emit(Quadruple{Op: OpAssign, Arg1: "true", Result: result})
		e.emit(Quadruple{Op: OpIfTrue, Arg1: l, Result: skipLabel})
	}
	e.temps.Release(l)

	r := e.emitExpr(ex.Right)
	e.emit(Quadruple{Op: OpAssign, Arg1: r, Result: result})
	e.temps.Release(r)

	e.emit(Quadruple{Op: OpLabel, Arg1: skipLabel})
	return result
}

// emitTernary lowers `cond ? then : else` the same way emitIf lowers a
// statement-level if, but threading the chosen branch's value into a
// shared result temp instead of discarding it.
func (e *Emitter) emitTernary(ex *ast.TernaryExpr) string {
	result := e.temps.New()
	elseLabel := e.labels.New("ternary_else")
	endLabel := e.labels.New("ternary_end")

	c := e.emitExpr(ex.Cond)
	e.emit(Quadruple{Op: OpIfFalse, Arg1: c, Result: elseLabel})
	e.temps.Release(c)

	t := e.emitExpr(ex.Then)
	e.emit(Quadruple{Op: OpAssign, Arg1: t, Result: result})
	e.temps.Release(t)
	e.emit(Quadruple{Op: OpGoto, Arg1: endLabel})

	e.emit(Quadruple{Op: OpLabel, Arg1: elseLabel})
	elseVal := e.emitExpr(ex.Else)
	e.emit(Quadruple{Op: OpAssign, Arg1: elseVal, Result: result})
	e.temps.Release(elseVal)

	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
	return result
}

func (e *Emitter) emitAssignment(ex *ast.AssignmentExpr) string {
	value := e.emitExpr(ex.Value)

	switch target := ex.Target.(type) {
	case *ast.IdentifierExpr:
		scope := e.scopeOf(target)
		for cur := scope; cur != nil; cur = cur.Parent {
			if _, ok := cur.DefinedHere(target.Name); ok {
				if cur.Kind == symtab.ClassScope {
					e.emit(Quadruple{Op: OpSetProp, Arg1: value, Arg2: target.Name, Result: "this"})
					return value
				}
				break
			}
		}
		e.emit(Quadruple{Op: OpAssign, Arg1: value, Result: target.Name})
	case *ast.PropertyExpr:
		obj := e.emitExpr(target.Object)
		e.emit(Quadruple{Op: OpSetProp, Arg1: value, Arg2: target.Name, Result: obj})
		e.temps.Release(obj)
	case *ast.IndexExpr:
		arr := e.emitExpr(target.Array)
		idx := e.emitExpr(target.Index)
		e.emit(Quadruple{Op: OpIndexSet, Arg1: value, Arg2: idx, Result: arr})
		e.temps.Release(arr)
		e.temps.Release(idx)
	}

	return value
}
