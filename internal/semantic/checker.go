package semantic

import (
	"github.com/gerax5/semcore/internal/config"
	"github.com/gerax5/semcore/internal/diagnostics"
	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser/ast"
	"github.com/gerax5/semcore/internal/semantic/types"
	"github.com/gerax5/semcore/internal/symtab"
)

// Checker is the second pass (§4.3): given a file and the ScopeMap the
// ScopeBuilder produced, it resolves every declared type annotation,
// infers the type of every expression, and validates every assignment,
// call, and control-flow construct against §4.1's assignability rules.
//
// Results an emitter needs are kept in exported maps rather than
// threaded back through return values, since the IR pass walks the same
// tree a third time and wants O(1) lookup by node identity.
type Checker struct {
	sb    *ScopeBuilder
	diags *diagnostics.Sink
	cfg   *config.Config

	// ExprTypes records the resolved type of every expression node.
	// Unresolved expressions (following an earlier error) map to
	// types.Void so later passes have a safe default instead of nil.
	ExprTypes map[ast.Expr]types.Type

	fieldTypes  map[*types.ClassType]map[string]types.Type
	methodSigs  map[*types.ClassType]map[string]*types.FuncType
	methodDecls map[*types.ClassType]map[string]*ast.FuncDecl
	funcSigs    map[string]*types.FuncType

	currentReturn types.Type

	// loopDepth/switchDepth are plain counters (§4.2), not scope-chain
	// walks: while/do-while/switch adjust them without opening a scope.
	loopDepth   int
	switchDepth int
}

// NewChecker creates a Checker over the scopes sb built, reporting into
// diags and honoring the policy choices in cfg.
func NewChecker(sb *ScopeBuilder, diags *diagnostics.Sink, cfg *config.Config) *Checker {
	return &Checker{
		sb:          sb,
		diags:       diags,
		cfg:         cfg,
		ExprTypes:   make(map[ast.Expr]types.Type),
		fieldTypes:  make(map[*types.ClassType]map[string]types.Type),
		methodSigs:  make(map[*types.ClassType]map[string]*types.FuncType),
		methodDecls: make(map[*types.ClassType]map[string]*ast.FuncDecl),
		funcSigs:    make(map[string]*types.FuncType),
	}
}

// Check resolves signatures, then checks every declaration's body.
func (c *Checker) Check(f *ast.File) {
	for _, info := range c.sb.Classes {
		c.fieldTypes[info.typ] = make(map[string]types.Type)
		c.methodSigs[info.typ] = make(map[string]*types.FuncType)
		c.methodDecls[info.typ] = make(map[string]*ast.FuncDecl)
	}
	for _, info := range c.sb.Classes {
		for _, field := range info.decl.Fields {
			ft := c.resolveTypeExpr(field.Type)
			c.fieldTypes[info.typ][field.Name] = ft
			if sym, ok := info.scope.DefinedHere(field.Name); ok && sym.Type == nil {
				sym.Type = ft
			}
		}
		for _, m := range info.decl.Methods {
			sig := c.funcSignature(m)
			c.methodSigs[info.typ][m.Name] = sig
			c.methodDecls[info.typ][m.Name] = m
		}
	}
	for name, decl := range c.sb.Functions {
		c.funcSigs[name] = c.funcSignature(decl)
	}

	for _, d := range f.Decls {
		switch decl := d.(type) {
		case *ast.VarDecl:
			c.checkTopVarDecl(decl)
		case *ast.FuncDecl:
			c.checkFunc(decl, nil)
		case *ast.ClassDecl:
			c.checkClass(decl)
		}
	}
}

func (c *Checker) funcSignature(decl *ast.FuncDecl) *types.FuncType {
	ret := types.Type(types.Void)
	if decl.ReturnType != nil {
		ret = c.resolveTypeExpr(decl.ReturnType)
	}
	params := make([]types.Type, len(decl.Params))
	for i, p := range decl.Params {
		params[i] = c.resolveTypeExpr(p.Type)
	}
	return &types.FuncType{Return: ret, Params: params}
}

// resolveTypeExpr maps a parsed type annotation to the corresponding
// types.Type. An unknown class name reports an error and degrades to
// types.Void rather than returning nil, so the rest of the pass can keep
// comparing types without nil-checking everywhere (§7).
func (c *Checker) resolveTypeExpr(te ast.TypeExpr) types.Type {
	switch t := te.(type) {
	case *ast.NamedTypeExpr:
		switch t.Name {
		case "integer":
			return types.Int
		case "float":
			return types.Float
		case "boolean":
			return types.Bool
		case "string":
			return types.String
		case "void":
			return types.Void
		default:
			if info, ok := c.sb.Classes[t.Name]; ok {
				return info.typ
			}
			c.diags.Error(t.Position, "unknown type %q", t.Name)
			return types.Void
		}
	case *ast.ArrayTypeExpr:
		return &types.ArrayType{Base: c.resolveTypeExpr(t.Base), Dimensions: t.Dimensions}
	default:
		return types.Void
	}
}

func (c *Checker) scopeOf(node interface{}) *symtab.Scope {
	if s, ok := c.sb.Scopes[node]; ok {
		return s
	}
	return nil
}

func (c *Checker) checkTopVarDecl(decl *ast.VarDecl) {
	c.checkVarDeclCommon(decl)
}

func (c *Checker) checkVarDeclCommon(decl *ast.VarDecl) {
	scope := c.scopeOf(decl)
	if scope == nil {
		return
	}
	var declared types.Type
	if decl.Type != nil {
		declared = c.resolveTypeExpr(decl.Type)
	}
	var initType types.Type
	if decl.Init != nil {
		initType = c.checkExpr(scope, decl.Init)
	}
	if declared == nil {
		declared = initType
		if declared == nil {
			// `let x;`, no type and no initializer: stays Null pending a
			// later assignment (§4.2), not an error.
			declared = types.Null
		}
	} else if initType != nil && !types.CanAssign(declared, initType, c.cfg.ArrayCovariance) {
		c.diags.Error(decl.Position, "No se puede asignar %s a %s en '%s'", initType.String(), declared.String(), decl.Name)
	}
	if sym, ok := scope.DefinedHere(decl.Name); ok {
		sym.Type = declared
	}
}

func (c *Checker) checkClass(decl *ast.ClassDecl) {
	info := c.sb.Classes[decl.Name]
	for _, field := range decl.Fields {
		if field.Init != nil {
			scope := c.scopeOf(decl)
			initType := c.checkExpr(scope, field.Init)
			declared := c.fieldTypes[info.typ][field.Name]
			if !types.CanAssign(declared, initType, c.cfg.ArrayCovariance) {
				c.diags.Error(field.Position, "cannot assign %s to field %q of type %s", initType.String(), field.Name, declared.String())
			}
		}
	}
	for _, m := range decl.Methods {
		c.checkOverride(info.typ, m)
		c.checkFunc(m, info.typ)
	}
}

// checkOverride verifies that a method overriding a superclass method
// with the same name keeps an identical signature (§4.3 override rule).
func (c *Checker) checkOverride(owner *types.ClassType, m *ast.FuncDecl) {
	super := owner.Super
	if super == nil {
		return
	}
	sig, ok := c.methodSigs[super][m.Name]
	if !ok {
		return
	}
	mine := c.methodSigs[owner][m.Name]
	if len(mine.Params) != len(sig.Params) {
		c.diags.Error(m.Position, "Override inválido de '%s': número de parámetros %d no coincide con %d", m.Name, len(mine.Params), len(sig.Params))
		return
	}
	for i, pt := range mine.Params {
		if !pt.Equals(sig.Params[i]) {
			c.diags.Error(m.Position, "Override inválido de '%s': tipo de parámetro %s no coincide con %s", m.Name, pt.String(), sig.Params[i].String())
			return
		}
	}
	if !mine.Return.Equals(sig.Return) {
		c.diags.Error(m.Position, "Override inválido de '%s': tipo de retorno %s no coincide con %s", m.Name, mine.Return.String(), sig.Return.String())
	}
}

func (c *Checker) checkFunc(decl *ast.FuncDecl, owner *types.ClassType) {
	sig := c.funcSigs[decl.Name]
	if owner != nil {
		sig = c.methodSigs[owner][decl.Name]
	}
	if fnScope := c.scopeOf(decl); fnScope != nil {
		for i, p := range decl.Params {
			if sym, ok := fnScope.DefinedHere(p.Name); ok && sym.Type == nil && i < len(sig.Params) {
				sym.Type = sig.Params[i]
			}
		}
	}
	prevReturn := c.currentReturn
	c.currentReturn = sig.Return
	c.checkBlock(decl.Body)
	c.currentReturn = prevReturn
}

func (c *Checker) checkBlock(block *ast.BlockStmt) {
	scope := c.scopeOf(block)
	for _, s := range block.Stmts {
		c.checkStmt(scope, s)
	}
}

func (c *Checker) checkStmt(scope *symtab.Scope, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VarDecl:
		c.checkVarDeclCommon(st)
	case *ast.BlockStmt:
		c.checkBlock(st)
	case *ast.ExprStmt:
		c.checkExpr(scope, st.Expr)
	case *ast.PrintStmt:
		c.checkExpr(scope, st.Value)
	case *ast.IfStmt:
		c.checkCondition(scope, st.Cond)
		c.checkStmt(scope, st.Then)
		if st.Else != nil {
			c.checkStmt(scope, st.Else)
		}
	case *ast.WhileStmt:
		c.checkCondition(scope, st.Cond)
		c.loopDepth++
		c.checkStmt(scope, st.Body)
		c.loopDepth--
	case *ast.DoWhileStmt:
		c.loopDepth++
		c.checkStmt(scope, st.Body)
		c.loopDepth--
		c.checkCondition(scope, st.Cond)
	case *ast.ForStmt:
		forScope := c.scopeOf(st)
		if st.Init != nil {
			c.checkStmt(forScope, st.Init)
		}
		if st.Cond != nil {
			c.checkCondition(forScope, st.Cond)
		}
		if st.Post != nil {
			c.checkExpr(forScope, st.Post)
		}
		c.loopDepth++
		c.checkStmt(forScope, st.Body)
		c.loopDepth--
	case *ast.ForEachStmt:
		forScope := c.scopeOf(st)
		iterType := c.checkExpr(scope, st.Iterable)
		arrType, ok := iterType.(*types.ArrayType)
		if !ok {
			c.diags.Error(st.Position, "foreach requires an array, got %s", iterType.String())
		} else if sym, ok := forScope.DefinedHere(st.VarName); ok {
			if arrType.Dimensions > 1 {
				sym.Type = &types.ArrayType{Base: arrType.Base, Dimensions: arrType.Dimensions - 1}
			} else {
				sym.Type = arrType.Base
			}
		}
		c.loopDepth++
		c.checkStmt(forScope, st.Body)
		c.loopDepth--
	case *ast.SwitchStmt:
		c.checkSwitch(scope, st)
	case *ast.TryStmt:
		c.checkBlock(st.Body)
		if sym, ok := c.scopeOf(st.Catch).DefinedHere(st.Catch.Name); ok {
			sym.Type = types.Null
		}
		c.checkBlock(st.Catch.Body)
	case *ast.ReturnStmt:
		c.checkReturn(scope, st)
	case *ast.BreakStmt:
		if c.loopDepth == 0 && c.switchDepth == 0 {
			c.diags.Error(st.Position, "break fuera de un ciclo o switch")
		}
	case *ast.ContinueStmt:
		if c.loopDepth == 0 {
			c.diags.Error(st.Position, "'continue' fuera de un bucle")
		}
	}
}

func (c *Checker) checkCondition(scope *symtab.Scope, cond ast.Expr) {
	t := c.checkExpr(scope, cond)
	if t != types.Bool {
		c.diags.Error(cond.Pos(), "condition must be boolean, got %s", t.String())
	}
}

func (c *Checker) checkReturn(scope *symtab.Scope, st *ast.ReturnStmt) {
	if st.Value == nil {
		if c.currentReturn != types.Void {
			c.diags.Error(st.Position, "missing return value, expected %s", c.currentReturn.String())
		}
		return
	}
	t := c.checkExpr(scope, st.Value)
	if !types.CanAssign(c.currentReturn, t, c.cfg.ArrayCovariance) {
		c.diags.Error(st.Position, "return: esperado %s, recibido %s", c.currentReturn.String(), t.String())
	}
}

// checkSwitch checks a switch statement in its enclosing scope: switch
// does not open a scope of its own (§4.2), it only adjusts switchDepth.
func (c *Checker) checkSwitch(scope *symtab.Scope, st *ast.SwitchStmt) {
	discType := c.checkExpr(scope, st.Discriminant)

	switch c.cfg.SwitchPolicy {
	case config.SwitchBooleanOnly:
		if discType != types.Bool {
			c.diags.Error(st.Position, "switch discriminant must be boolean under boolean-only policy, got %s", discType.String())
		}
		for _, cl := range st.Cases {
			if valType := c.checkExpr(scope, cl.Value); valType != types.Bool {
				c.diags.Error(cl.Position, "case value must be boolean under boolean-only policy, got %s", valType.String())
			}
		}
	default: // equality-dispatch
		for _, cl := range st.Cases {
			valType := c.checkExpr(scope, cl.Value)
			if !types.CanAssign(discType, valType, c.cfg.ArrayCovariance) && !types.CanAssign(valType, discType, c.cfg.ArrayCovariance) {
				c.diags.Error(cl.Position, "case value of type %s is never equal to discriminant of type %s", valType.String(), discType.String())
			}
		}
	}

	c.switchDepth++
	for _, cl := range st.Cases {
		for _, s := range cl.Body {
			c.checkStmt(scope, s)
		}
	}
	if st.Default != nil {
		for _, s := range st.Default.Body {
			c.checkStmt(scope, s)
		}
	}
	c.switchDepth--
}

// checkExpr infers and records the type of e, reporting diagnostics for
// any rule violation along the way. It never returns nil: on an
// unrecoverable local error it records and returns types.Void so callers
// can keep composing without a nil check (§7).
func (c *Checker) checkExpr(scope *symtab.Scope, e ast.Expr) types.Type {
	t := c.inferExpr(scope, e)
	if t == nil {
		t = types.Void
	}
	c.ExprTypes[e] = t
	return t
}

func (c *Checker) inferExpr(scope *symtab.Scope, e ast.Expr) types.Type {
	switch ex := e.(type) {
	case *ast.LiteralExpr:
		return c.inferLiteral(ex)
	case *ast.IdentifierExpr:
		return c.inferIdentifier(scope, ex)
	case *ast.ThisExpr:
		cls := scope.FindEnclosingClass()
		if cls == nil {
			c.diags.Error(ex.Position, "'this' used outside of a method")
			return types.Void
		}
		return cls
	case *ast.ArrayLiteralExpr:
		return c.inferArrayLiteral(scope, ex)
	case *ast.NewExpr:
		return c.inferNew(scope, ex)
	case *ast.NewArrayExpr:
		return c.inferNewArray(scope, ex)
	case *ast.PropertyExpr:
		return c.inferProperty(scope, ex)
	case *ast.IndexExpr:
		return c.inferIndex(scope, ex)
	case *ast.CallExpr:
		return c.inferCall(scope, ex)
	case *ast.UnaryExpr:
		return c.inferUnary(scope, ex)
	case *ast.BinaryExpr:
		return c.inferBinary(scope, ex)
	case *ast.LogicalExpr:
		return c.inferLogical(scope, ex)
	case *ast.TernaryExpr:
		return c.inferTernary(scope, ex)
	case *ast.AssignmentExpr:
		return c.inferAssignment(scope, ex)
	default:
		return types.Void
	}
}

func (c *Checker) inferLiteral(ex *ast.LiteralExpr) types.Type {
	switch ex.Kind {
	case lexer.INT:
		return types.Int
	case lexer.FLOAT:
		return types.Float
	case lexer.STRING:
		return types.String
	case lexer.TRUE, lexer.FALSE:
		return types.Bool
	case lexer.NULL:
		return types.Null
	default:
		return types.Void
	}
}

func (c *Checker) inferIdentifier(scope *symtab.Scope, ex *ast.IdentifierExpr) types.Type {
	sym, ok := scope.Resolve(ex.Name)
	if ok {
		if sym.Kind == symtab.VarSymbol {
			return sym.Type
		}
		if sym.Kind == symtab.FuncSymbol {
			if sig, ok := c.funcSigs[ex.Name]; ok {
				return sig
			}
			if cls := scope.FindEnclosingClass(); cls != nil {
				if sig, ok := c.methodSigs[cls][ex.Name]; ok {
					return sig
				}
			}
		}
		if sym.Kind == symtab.ClassSymbol {
			if info, ok := c.sb.Classes[ex.Name]; ok {
				return info.typ
			}
		}
	}
	if cls := scope.FindEnclosingClass(); cls != nil {
		if memberSym, ok := scope.ResolveMember(cls, ex.Name); ok {
			if memberSym.Kind == symtab.VarSymbol {
				return c.fieldTypes[cls][ex.Name]
			}
			if sig, ok := c.methodSigs[cls][ex.Name]; ok {
				return sig
			}
		}
	}
	c.diags.Error(ex.Position, "undeclared name %q", ex.Name)
	return types.Void
}

func (c *Checker) inferArrayLiteral(scope *symtab.Scope, ex *ast.ArrayLiteralExpr) types.Type {
	if len(ex.Elements) == 0 {
		c.diags.Error(ex.Position, "cannot infer element type of an empty array literal")
		return types.Void
	}
	base := c.checkExpr(scope, ex.Elements[0])
	dims := uint(1)
	if at, ok := base.(*types.ArrayType); ok {
		dims = at.Dimensions + 1
		base = at.Base
	}
	for _, el := range ex.Elements[1:] {
		t := c.checkExpr(scope, el)
		if !types.CanAssign(c.elementTypeOf(base, dims), t, c.cfg.ArrayCovariance) {
			c.diags.Error(el.Pos(), "array literal element type mismatch: %s", t.String())
		}
	}
	return &types.ArrayType{Base: base, Dimensions: dims}
}

func (c *Checker) elementTypeOf(base types.Type, dims uint) types.Type {
	if dims <= 1 {
		return base
	}
	return &types.ArrayType{Base: base, Dimensions: dims - 1}
}

func (c *Checker) inferNew(scope *symtab.Scope, ex *ast.NewExpr) types.Type {
	info, ok := c.sb.Classes[ex.ClassName]
	if !ok {
		c.diags.Error(ex.Position, "unknown class %q", ex.ClassName)
		for _, a := range ex.Args {
			c.checkExpr(scope, a)
		}
		return types.Void
	}
	for _, a := range ex.Args {
		c.checkExpr(scope, a)
	}
	return info.typ
}

func (c *Checker) inferNewArray(scope *symtab.Scope, ex *ast.NewArrayExpr) types.Type {
	base := c.resolveTypeExpr(ex.ElemType)
	for _, s := range ex.Sizes {
		t := c.checkExpr(scope, s)
		if t != types.Int {
			c.diags.Error(s.Pos(), "array size must be integer, got %s", t.String())
		}
	}
	return &types.ArrayType{Base: base, Dimensions: uint(len(ex.Sizes))}
}

func (c *Checker) inferProperty(scope *symtab.Scope, ex *ast.PropertyExpr) types.Type {
	objType := c.checkExpr(scope, ex.Object)
	cls, ok := objType.(*types.ClassType)
	if !ok {
		c.diags.Error(ex.Position, "cannot access property %q on non-class type %s", ex.Name, objType.String())
		return types.Void
	}
	if t, ok := c.lookupFieldType(cls, ex.Name); ok {
		return t
	}
	if sig, ok := c.lookupMethodSig(cls, ex.Name); ok {
		return sig
	}
	c.diags.Error(ex.Position, "class %q has no member %q", cls.Name, ex.Name)
	return types.Void
}

func (c *Checker) lookupFieldType(cls *types.ClassType, name string) (types.Type, bool) {
	for cur := cls; cur != nil; cur = cur.Super {
		if t, ok := c.fieldTypes[cur][name]; ok {
			return t, true
		}
	}
	return nil, false
}

func (c *Checker) lookupMethodSig(cls *types.ClassType, name string) (*types.FuncType, bool) {
	for cur := cls; cur != nil; cur = cur.Super {
		if sig, ok := c.methodSigs[cur][name]; ok {
			return sig, true
		}
	}
	return nil, false
}

func (c *Checker) inferIndex(scope *symtab.Scope, ex *ast.IndexExpr) types.Type {
	arrType := c.checkExpr(scope, ex.Array)
	idxType := c.checkExpr(scope, ex.Index)
	if idxType != types.Int {
		c.diags.Error(ex.Index.Pos(), "array index must be integer, got %s", idxType.String())
	}
	at, ok := arrType.(*types.ArrayType)
	if !ok {
		c.diags.Error(ex.Position, "cannot index non-array type %s", arrType.String())
		return types.Void
	}
	return c.elementTypeOf(at.Base, at.Dimensions)
}

func (c *Checker) inferCall(scope *symtab.Scope, ex *ast.CallExpr) types.Type {
	var sig *types.FuncType
	var name string
	switch callee := ex.Callee.(type) {
	case *ast.IdentifierExpr:
		name = callee.Name
		t := c.checkExpr(scope, callee)
		s, ok := t.(*types.FuncType)
		if !ok {
			c.diags.Error(ex.Position, "%q is not callable", name)
			for _, a := range ex.Args {
				c.checkExpr(scope, a)
			}
			return types.Void
		}
		sig = s
	case *ast.PropertyExpr:
		name = callee.Name
		t := c.checkExpr(scope, callee)
		s, ok := t.(*types.FuncType)
		if !ok {
			c.diags.Error(ex.Position, "%q is not callable", name)
			for _, a := range ex.Args {
				c.checkExpr(scope, a)
			}
			return types.Void
		}
		sig = s
	default:
		c.diags.Error(ex.Position, "expression is not callable")
		for _, a := range ex.Args {
			c.checkExpr(scope, a)
		}
		return types.Void
	}

	argTypes := make([]types.Type, len(ex.Args))
	for i, a := range ex.Args {
		argTypes[i] = c.checkExpr(scope, a)
	}
	if len(argTypes) != len(sig.Params) {
		c.diags.Error(ex.Position, "call to %q expects %d arguments, got %d", name, len(sig.Params), len(argTypes))
	} else {
		for i, pt := range sig.Params {
			if !types.CanAssign(pt, argTypes[i], c.cfg.ArrayCovariance) {
				c.diags.Error(ex.Args[i].Pos(), "argument %d to %q: cannot assign %s to %s", i+1, name, argTypes[i].String(), pt.String())
			}
		}
	}
	return sig.Return
}

func (c *Checker) inferUnary(scope *symtab.Scope, ex *ast.UnaryExpr) types.Type {
	t := c.checkExpr(scope, ex.Operand)
	switch ex.Op {
	case lexer.MINUS:
		if !types.IsNumeric(t) {
			c.diags.Error(ex.Position, "unary - requires a numeric operand, got %s", t.String())
			return types.Void
		}
		return t
	case lexer.NOT:
		if t != types.Bool {
			c.diags.Error(ex.Position, "unary ! requires a boolean operand, got %s", t.String())
			return types.Void
		}
		return types.Bool
	default:
		return types.Void
	}
}

func (c *Checker) inferBinary(scope *symtab.Scope, ex *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(scope, ex.Left)
	rt := c.checkExpr(scope, ex.Right)

	switch ex.Op {
	case lexer.PLUS:
		if lt == types.String && rt == types.String {
			return types.String
		}
		if res, ok := types.UnifyNumeric(lt, rt); ok {
			return res
		}
		c.diags.Error(ex.Position, "+ requires two numbers or two strings, got %s and %s", lt.String(), rt.String())
		return types.Void
	case lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT:
		if res, ok := types.UnifyNumeric(lt, rt); ok {
			return res
		}
		c.diags.Error(ex.Position, "%s requires two numbers, got %s and %s", ex.Op.String(), lt.String(), rt.String())
		return types.Void
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		if _, ok := types.UnifyNumeric(lt, rt); !ok {
			c.diags.Error(ex.Position, "%s requires two numbers, got %s and %s", ex.Op.String(), lt.String(), rt.String())
		}
		return types.Bool
	case lexer.EQ, lexer.NEQ:
		if !types.CanAssign(lt, rt, c.cfg.ArrayCovariance) && !types.CanAssign(rt, lt, c.cfg.ArrayCovariance) {
			c.diags.Error(ex.Position, "%s and %s are never equal", lt.String(), rt.String())
		}
		return types.Bool
	default:
		return types.Void
	}
}

func (c *Checker) inferLogical(scope *symtab.Scope, ex *ast.LogicalExpr) types.Type {
	lt := c.checkExpr(scope, ex.Left)
	rt := c.checkExpr(scope, ex.Right)
	if lt != types.Bool || rt != types.Bool {
		c.diags.Error(ex.Position, "%s requires two booleans, got %s and %s", ex.Op.String(), lt.String(), rt.String())
	}
	return types.Bool
}

func (c *Checker) inferTernary(scope *symtab.Scope, ex *ast.TernaryExpr) types.Type {
	ct := c.checkExpr(scope, ex.Cond)
	if ct != types.Bool {
		c.diags.Error(ex.Cond.Pos(), "ternary condition must be boolean, got %s", ct.String())
	}
	tt := c.checkExpr(scope, ex.Then)
	et := c.checkExpr(scope, ex.Else)
	if types.CanAssign(tt, et, c.cfg.ArrayCovariance) {
		return tt
	}
	if types.CanAssign(et, tt, c.cfg.ArrayCovariance) {
		return et
	}
	c.diags.Error(ex.Position, "ternary branches have incompatible types %s and %s", tt.String(), et.String())
	return types.Void
}

func (c *Checker) inferAssignment(scope *symtab.Scope, ex *ast.AssignmentExpr) types.Type {
	if id, ok := ex.Target.(*ast.IdentifierExpr); ok {
		if sym, ok := scope.Resolve(id.Name); ok && sym.Kind == symtab.VarSymbol && sym.IsConst {
			c.diags.Error(ex.Position, "cannot assign to const %q", id.Name)
		}
	}
	targetType := c.checkExpr(scope, ex.Target)
	valueType := c.checkExpr(scope, ex.Value)
	if !types.CanAssign(targetType, valueType, c.cfg.ArrayCovariance) {
		c.diags.Error(ex.Position, "cannot assign %s to %s", valueType.String(), targetType.String())
	}
	return targetType
}
