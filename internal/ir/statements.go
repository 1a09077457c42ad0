package ir

import "github.com/gerax5/semcore/internal/parser/ast"

func (e *Emitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VarDecl:
		e.emitVarDecl(st)
	case *ast.BlockStmt:
		e.emitBlock(st)
	case *ast.ExprStmt:
		v := e.emitExpr(st.Expr)
		e.temps.Release(v)
	case *ast.PrintStmt:
		v := e.emitExpr(st.Value)
		e.emit(Quadruple{Op: OpPrint, Arg1: v})
		e.temps.Release(v)
	case *ast.IfStmt:
		e.emitIf(st)
	case *ast.WhileStmt:
		e.emitWhile(st)
	case *ast.DoWhileStmt:
		e.emitDoWhile(st)
	case *ast.ForStmt:
		e.emitFor(st)
	case *ast.ForEachStmt:
		e.emitForEach(st)
	case *ast.SwitchStmt:
		e.emitSwitch(st)
	case *ast.TryStmt:
		e.emitTry(st)
	case *ast.BreakStmt:
		// switch_stack takes precedence over loop_stack regardless of
		// nesting order (§4.4): a break inside a loop nested in a switch
		// still targets the switch's end label.
		var target string
		if len(e.switchStack) > 0 {
			target = e.switchStack[len(e.switchStack)-1]
		} else {
			target = e.loopStack[len(e.loopStack)-1].breakLabel
		}
		e.emit(Quadruple{Op: OpGoto, Arg1: target})
	case *ast.ContinueStmt:
		target := e.loopStack[len(e.loopStack)-1].continueLabel
		e.emit(Quadruple{Op: OpGoto, Arg1: target})
	case *ast.ReturnStmt:
		if st.Value == nil {
			e.emit(Quadruple{Op: OpReturn})
			return
		}
		v := e.emitExpr(st.Value)
		e.emit(Quadruple{Op: OpReturn, Arg1: v})
		e.temps.Release(v)
	}
}

// emitIf lowers `if (Cond) Then else Else` to:
//
//	<cond> -> c
//	ifFalse c goto L_else
//	<then>
//	goto L_end
//	L_else:
//	<else>
//	L_end:
func (e *Emitter) emitIf(st *ast.IfStmt) {
	elseLabel := e.labels.New("if_else")
	endLabel := e.labels.New("if_end")

	c := e.emitExpr(st.Cond)
	e.emit(Quadruple{Op: OpIfFalse, Arg1: c, Result: elseLabel})
	e.temps.Release(c)

	e.emitStmt(st.Then)
	if st.Else != nil {
		e.emit(Quadruple{Op: OpGoto, Arg1: endLabel})
	}
	e.emit(Quadruple{Op: OpLabel, Arg1: elseLabel})
	if st.Else != nil {
		e.emitStmt(st.Else)
		e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
	}
}

// emitWhile lowers `while (Cond) Body` to:
//
//	L_cond:
//	<cond> -> c
//	ifFalse c goto L_end
//	<body>
//	goto L_cond
//	L_end:
func (e *Emitter) emitWhile(st *ast.WhileStmt) {
	condLabel := e.labels.New("while_cond")
	endLabel := e.labels.New("while_end")

	e.emit(Quadruple{Op: OpLabel, Arg1: condLabel})
	c := e.emitExpr(st.Cond)
	e.emit(Quadruple{Op: OpIfFalse, Arg1: c, Result: endLabel})
	e.temps.Release(c)

	e.pushLoop(condLabel, endLabel)
	e.emitStmt(st.Body)
	e.popLoop()

	e.emit(Quadruple{Op: OpGoto, Arg1: condLabel})
	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
}

// emitDoWhile lowers `do Body while (Cond);` to:
//
//	L_body:
//	<body>
//	L_continue:
//	<cond> -> c
//	ifTrue c goto L_body
//	L_end:
func (e *Emitter) emitDoWhile(st *ast.DoWhileStmt) {
	bodyLabel := e.labels.New("dowhile_body")
	continueLabel := e.labels.New("dowhile_cond")
	endLabel := e.labels.New("dowhile_end")

	e.emit(Quadruple{Op: OpLabel, Arg1: bodyLabel})

	e.pushLoop(continueLabel, endLabel)
	e.emitStmt(st.Body)
	e.popLoop()

	e.emit(Quadruple{Op: OpLabel, Arg1: continueLabel})
	c := e.emitExpr(st.Cond)
	e.emit(Quadruple{Op: OpIfTrue, Arg1: c, Result: bodyLabel})
	e.temps.Release(c)
	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
}

// emitFor lowers the classic C-style for loop, funneling Post through the
// continue label so `continue` still runs the post-expression (§4.4).
func (e *Emitter) emitFor(st *ast.ForStmt) {
	if st.Init != nil {
		e.emitStmt(st.Init)
	}

	condLabel := e.labels.New("for_cond")
	postLabel := e.labels.New("for_post")
	endLabel := e.labels.New("for_end")

	e.emit(Quadruple{Op: OpLabel, Arg1: condLabel})
	if st.Cond != nil {
		c := e.emitExpr(st.Cond)
		e.emit(Quadruple{Op: OpIfFalse, Arg1: c, Result: endLabel})
		e.temps.Release(c)
	}

	e.pushLoop(postLabel, endLabel)
	e.emitStmt(st.Body)
	e.popLoop()

	e.emit(Quadruple{Op: OpLabel, Arg1: postLabel})
	if st.Post != nil {
		v := e.emitExpr(st.Post)
		e.temps.Release(v)
	}
	e.emit(Quadruple{Op: OpGoto, Arg1: condLabel})
	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
}

// emitForEach lowers `foreach (v in arr) Body` into an index-based loop
// over the array's length, since the language has no iterator protocol
// beyond arrays (§1 Non-goals).
func (e *Emitter) emitForEach(st *ast.ForEachStmt) {
	arr := e.emitExpr(st.Iterable)

	idx := e.temps.New()
	e.emit(Quadruple{Op: OpAssign, Arg1: "0", Result: idx})

	lenTemp := e.temps.New()
	e.emit(Quadruple{Op: "length", Arg1: arr, Result: lenTemp})

	condLabel := e.labels.New("foreach_cond")
	postLabel := e.labels.New("foreach_post")
	endLabel := e.labels.New("foreach_end")

	e.emit(Quadruple{Op: OpLabel, Arg1: condLabel})
	cmp := e.temps.New()
	e.emit(Quadruple{Op: OpLt, Arg1: idx, Arg2: lenTemp, Result: cmp})
	e.emit(Quadruple{Op: OpIfFalse, Arg1: cmp, Result: endLabel})
	e.temps.Release(cmp)

	e.emit(Quadruple{Op: OpIndexGet, Arg1: arr, Arg2: idx, Result: st.VarName})

	e.pushLoop(postLabel, endLabel)
	e.emitStmt(st.Body)
	e.popLoop()

	e.emit(Quadruple{Op: OpLabel, Arg1: postLabel})
	next := e.temps.New()
	e.emit(Quadruple{Op: OpAdd, Arg1: idx, Arg2: "1", Result: next})
	e.emit(Quadruple{Op: OpAssign, Arg1: next, Result: idx})
	e.temps.Release(next)
	e.emit(Quadruple{Op: OpGoto, Arg1: condLabel})
	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})

	e.temps.Release(idx)
	e.temps.Release(lenTemp)
	e.temps.Release(arr)
}

// emitSwitch lowers to a chain of equality tests against the
// discriminant, each guarding its case body, ending in the default arm
// if present — the `== scrut vi -> ti` shape §4.4 specifies.
func (e *Emitter) emitSwitch(st *ast.SwitchStmt) {
	scrut := e.emitExpr(st.Discriminant)
	endLabel := e.labels.New("switch_end")

	caseLabels := make([]string, len(st.Cases))
	for i := range st.Cases {
		caseLabels[i] = e.labels.New("switch_case")
	}
	defaultLabel := e.labels.New("switch_default")

	for i, cl := range st.Cases {
		v := e.emitExpr(cl.Value)
		t := e.temps.New()
		e.emit(Quadruple{Op: OpEq, Arg1: scrut, Arg2: v, Result: t})
		e.emit(Quadruple{Op: OpIfTrue, Arg1: t, Result: caseLabels[i]})
		e.temps.Release(t)
		e.temps.Release(v)
	}
	if st.Default != nil {
		e.emit(Quadruple{Op: OpGoto, Arg1: defaultLabel})
	} else {
		e.emit(Quadruple{Op: OpGoto, Arg1: endLabel})
	}

	e.switchStack = append(e.switchStack, endLabel)
	for i, cl := range st.Cases {
		e.emit(Quadruple{Op: OpLabel, Arg1: caseLabels[i]})
		for _, s := range cl.Body {
			e.emitStmt(s)
		}
	}
	if st.Default != nil {
		e.emit(Quadruple{Op: OpLabel, Arg1: defaultLabel})
		for _, s := range st.Default.Body {
			e.emitStmt(s)
		}
	}
	e.switchStack = e.switchStack[:len(e.switchStack)-1]

	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
	e.temps.Release(scrut)
}

// emitTry frames Body and Catch with trybegin/tryend markers; the
// runtime that consumes this IR is responsible for unwinding to the
// matching tryend and binding Catch's name on a thrown error (§1
// Non-goals: no runtime is specified here, only its entry/exit points).
func (e *Emitter) emitTry(st *ast.TryStmt) {
	handlerLabel := e.labels.New("try_catch")
	endLabel := e.labels.New("try_end")

	e.emit(Quadruple{Op: OpTryBegin, Arg1: handlerLabel})
	e.emitBlock(st.Body)
	e.emit(Quadruple{Op: OpTryEnd})
	e.emit(Quadruple{Op: OpGoto, Arg1: endLabel})

	e.emit(Quadruple{Op: OpLabel, Arg1: handlerLabel})
	e.emit(Quadruple{Op: OpAssign, Arg1: "exception", Result: st.Catch.Name})
	e.emitBlock(st.Catch.Body)

	e.emit(Quadruple{Op: OpLabel, Arg1: endLabel})
}

func (e *Emitter) pushLoop(continueLabel, breakLabel string) {
	e.loopStack = append(e.loopStack, loopCtx{continueLabel: continueLabel, breakLabel: breakLabel})
}

func (e *Emitter) popLoop() {
	e.loopStack = e.loopStack[:len(e.loopStack)-1]
}
