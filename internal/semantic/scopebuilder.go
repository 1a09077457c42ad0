// Package semantic implements the scope-building and type-checking
// passes (§4.2, §4.3): two separate visitors sharing a symtab.ScopeMap,
// rather than the single combined pass a smaller front end might use,
// because the IR emitter needs a fully resolved scope tree available
// before it starts walking the same syntax tree a third time.
package semantic

import (
	"github.com/gerax5/semcore/internal/diagnostics"
	"github.com/gerax5/semcore/internal/parser/ast"
	"github.com/gerax5/semcore/internal/semantic/types"
	"github.com/gerax5/semcore/internal/symtab"
)

// classInfo tracks everything the scope builder knows about a class
// declaration: its syntax node, its member scope, and its types.ClassType
// (created empty in the first pass so that Super references resolve
// regardless of declaration order, then filled in once every class name
// is known).
type classInfo struct {
	decl  *ast.ClassDecl
	scope *symtab.Scope
	typ   *types.ClassType
}

// ScopeBuilder walks a parsed file once, opening a Scope for the file,
// every class, every function/method, every block, every for/foreach loop
// and every catch clause (while, do-while and switch open none), and
// defining a Symbol for every declaration it encounters. It also
// constructs the types.ClassType for every class (identity matters: the
// same declaration must always produce the same pointer), since the
// scope tree needs each class scope's Owner before the checker runs.
type ScopeBuilder struct {
	Scopes    symtab.ScopeMap
	Classes   map[string]*classInfo
	Functions map[string]*ast.FuncDecl
	diags     *diagnostics.Sink

	file *symtab.Scope
}

// NewScopeBuilder creates a ScopeBuilder reporting into diags.
func NewScopeBuilder(diags *diagnostics.Sink) *ScopeBuilder {
	return &ScopeBuilder{
		Scopes:    symtab.NewScopeMap(),
		Classes:   make(map[string]*classInfo),
		Functions: make(map[string]*ast.FuncDecl),
		diags:     diags,
	}
}

// Build opens the file scope, defines every top-level name, and recurses
// into each declaration's body.
func (b *ScopeBuilder) Build(f *ast.File) *symtab.Scope {
	b.file = symtab.NewScope(symtab.FileScope, nil)
	b.Scopes[f] = b.file

	for _, d := range f.Decls {
		switch decl := d.(type) {
		case *ast.VarDecl:
			b.defineVar(b.file, decl)
		case *ast.FuncDecl:
			if _, exists := b.Functions[decl.Name]; exists {
				b.diags.Error(decl.Position, "Function '%s' redeclared", decl.Name)
				continue
			}
			b.Functions[decl.Name] = decl
			if !b.file.Define(&symtab.Symbol{Name: decl.Name, Kind: symtab.FuncSymbol, Pos: decl.Position}) {
				b.diags.Error(decl.Position, "Function '%s' redeclared", decl.Name)
			}
		case *ast.ClassDecl:
			if _, exists := b.Classes[decl.Name]; exists {
				b.diags.Error(decl.Position, "Class '%s' redeclared", decl.Name)
				continue
			}
			b.Classes[decl.Name] = &classInfo{decl: decl, typ: &types.ClassType{Name: decl.Name}}
			if !b.file.Define(&symtab.Symbol{Name: decl.Name, Kind: symtab.ClassSymbol, Pos: decl.Position}) {
				b.diags.Error(decl.Position, "Class '%s' redeclared", decl.Name)
			}
		}
	}

	// Second pass: resolve each class's Super now that every class's
	// types.ClassType stub exists, regardless of declaration order.
	for _, info := range b.Classes {
		if info.decl.Super == "" {
			continue
		}
		super, ok := b.Classes[info.decl.Super]
		if !ok {
			b.diags.Error(info.decl.Position, "class %q extends unknown class %q", info.decl.Name, info.decl.Super)
			continue
		}
		info.typ.Super = super.typ
	}

	for _, d := range f.Decls {
		switch decl := d.(type) {
		case *ast.FuncDecl:
			b.buildFunc(b.file, decl, nil)
		case *ast.ClassDecl:
			b.buildClass(decl)
		}
	}

	return b.file
}

func (b *ScopeBuilder) defineVar(scope *symtab.Scope, decl *ast.VarDecl) {
	b.Scopes[decl] = scope
	if !scope.Define(&symtab.Symbol{Name: decl.Name, Kind: symtab.VarSymbol, Pos: decl.Position, IsConst: decl.IsConst}) {
		if decl.IsConst {
			b.diags.Error(decl.Position, "Constant '%s' redeclared in this scope", decl.Name)
		} else {
			b.diags.Error(decl.Position, "Variable '%s' redeclared in this scope", decl.Name)
		}
	}
	if decl.Init != nil {
		b.walkExpr(scope, decl.Init)
	}
}

func (b *ScopeBuilder) buildClass(decl *ast.ClassDecl) {
	info := b.Classes[decl.Name]
	scope := symtab.NewScope(symtab.ClassScope, b.file)
	scope.Owner = info.typ
	info.scope = scope
	b.Scopes[decl] = scope

	for _, field := range decl.Fields {
		if !scope.Define(&symtab.Symbol{Name: field.Name, Kind: symtab.VarSymbol, Pos: field.Position}) {
			b.diags.Error(field.Position, "Field '%s' redeclared in class '%s'", field.Name, decl.Name)
			continue
		}
		info.typ.Fields = append(info.typ.Fields, field.Name)
	}
	for _, m := range decl.Methods {
		if !scope.Define(&symtab.Symbol{Name: m.Name, Kind: symtab.FuncSymbol, Pos: m.Position}) {
			b.diags.Error(m.Position, "Method '%s' redeclared in class '%s'", m.Name, decl.Name)
			continue
		}
		info.typ.Methods = append(info.typ.Methods, m.Name)
	}

	for _, field := range decl.Fields {
		if field.Init != nil {
			b.walkExpr(scope, field.Init)
		}
	}
	for _, m := range decl.Methods {
		b.buildFunc(scope, m, decl)
	}
}

func (b *ScopeBuilder) buildFunc(parent *symtab.Scope, decl *ast.FuncDecl, owner *ast.ClassDecl) {
	fnScope := symtab.NewScope(symtab.FuncScope, parent)
	if owner != nil {
		fnScope.Owner = b.Classes[owner.Name].typ
	}
	b.Scopes[decl] = fnScope

	fnSym, hasSym := parent.DefinedHere(decl.Name)
	hasSym = hasSym && fnSym.Kind == symtab.FuncSymbol && fnSym.Pos == decl.Position
	for _, p := range decl.Params {
		if !fnScope.Define(&symtab.Symbol{Name: p.Name, Kind: symtab.VarSymbol, Pos: p.Position}) {
			b.diags.Error(p.Position, "Parameter '%s' duplicated", p.Name)
		}
		if hasSym {
			fnSym.Params = append(fnSym.Params, p.Name)
		}
	}

	b.walkBlockIn(fnScope, decl.Body)
}

func (b *ScopeBuilder) walkBlockIn(parent *symtab.Scope, block *ast.BlockStmt) *symtab.Scope {
	scope := symtab.NewScope(symtab.BlockScope, parent)
	b.Scopes[block] = scope
	for _, s := range block.Stmts {
		b.walkStmt(scope, s)
	}
	return scope
}

func (b *ScopeBuilder) walkStmt(scope *symtab.Scope, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VarDecl:
		b.defineVar(scope, st)
	case *ast.BlockStmt:
		b.walkBlockIn(scope, st)
	case *ast.ExprStmt:
		b.walkExpr(scope, st.Expr)
	case *ast.PrintStmt:
		b.walkExpr(scope, st.Value)
	case *ast.IfStmt:
		b.walkExpr(scope, st.Cond)
		b.walkStmt(scope, st.Then)
		if st.Else != nil {
			b.walkStmt(scope, st.Else)
		}
	case *ast.WhileStmt:
		// while only adjusts loop_depth (§4.2); it does not open a scope.
		b.walkExpr(scope, st.Cond)
		b.walkStmt(scope, st.Body)
	case *ast.DoWhileStmt:
		// do-while likewise opens no scope of its own (§4.2).
		b.walkStmt(scope, st.Body)
		b.walkExpr(scope, st.Cond)
	case *ast.ForStmt:
		forScope := symtab.NewScope(symtab.LoopScope, scope)
		b.Scopes[st] = forScope
		if st.Init != nil {
			b.walkStmt(forScope, st.Init)
		}
		if st.Cond != nil {
			b.walkExpr(forScope, st.Cond)
		}
		if st.Post != nil {
			b.walkExpr(forScope, st.Post)
		}
		b.walkStmt(forScope, st.Body)
	case *ast.ForEachStmt:
		forScope := symtab.NewScope(symtab.LoopScope, scope)
		b.Scopes[st] = forScope
		b.walkExpr(scope, st.Iterable)
		if !forScope.Define(&symtab.Symbol{Name: st.VarName, Kind: symtab.VarSymbol, Pos: st.Position}) {
			b.diags.Error(st.Position, "name %q already declared", st.VarName)
		}
		b.walkStmt(forScope, st.Body)
	case *ast.SwitchStmt:
		// switch only adjusts switch_depth (§4.2); it does not open a
		// scope — its cases share the enclosing scope.
		b.walkExpr(scope, st.Discriminant)
		for _, c := range st.Cases {
			if c.Value != nil {
				b.walkExpr(scope, c.Value)
			}
			for _, cs := range c.Body {
				b.walkStmt(scope, cs)
			}
		}
		if st.Default != nil {
			for _, cs := range st.Default.Body {
				b.walkStmt(scope, cs)
			}
		}
	case *ast.TryStmt:
		b.walkBlockIn(scope, st.Body)
		catchScope := symtab.NewScope(symtab.BlockScope, scope)
		b.Scopes[st.Catch] = catchScope
		if !catchScope.Define(&symtab.Symbol{Name: st.Catch.Name, Kind: symtab.VarSymbol, Pos: st.Catch.Position}) {
			b.diags.Error(st.Catch.Position, "name %q already declared", st.Catch.Name)
		}
		for _, cs := range st.Catch.Body.Stmts {
			b.walkStmt(catchScope, cs)
		}
		b.Scopes[st.Catch.Body] = catchScope
	case *ast.ReturnStmt:
		if st.Value != nil {
			b.walkExpr(scope, st.Value)
		}
	case *ast.BreakStmt, *ast.ContinueStmt:
		// no sub-expressions
	}
}

func (b *ScopeBuilder) walkExpr(scope *symtab.Scope, e ast.Expr) {
	b.Scopes[e] = scope
	switch ex := e.(type) {
	case *ast.ArrayLiteralExpr:
		for _, el := range ex.Elements {
			b.walkExpr(scope, el)
		}
	case *ast.NewExpr:
		for _, a := range ex.Args {
			b.walkExpr(scope, a)
		}
	case *ast.NewArrayExpr:
		for _, s := range ex.Sizes {
			b.walkExpr(scope, s)
		}
	case *ast.PropertyExpr:
		b.walkExpr(scope, ex.Object)
	case *ast.IndexExpr:
		b.walkExpr(scope, ex.Array)
		b.walkExpr(scope, ex.Index)
	case *ast.CallExpr:
		b.walkExpr(scope, ex.Callee)
		for _, a := range ex.Args {
			b.walkExpr(scope, a)
		}
	case *ast.UnaryExpr:
		b.walkExpr(scope, ex.Operand)
	case *ast.BinaryExpr:
		b.walkExpr(scope, ex.Left)
		b.walkExpr(scope, ex.Right)
	case *ast.LogicalExpr:
		b.walkExpr(scope, ex.Left)
		b.walkExpr(scope, ex.Right)
	case *ast.TernaryExpr:
		b.walkExpr(scope, ex.Cond)
		b.walkExpr(scope, ex.Then)
		b.walkExpr(scope, ex.Else)
	case *ast.AssignmentExpr:
		b.walkExpr(scope, ex.Target)
		b.walkExpr(scope, ex.Value)
	}
}
