package parser_test

import (
	"testing"

	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser"
	"github.com/gerax5/semcore/internal/parser/ast"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	lex := lexer.New("test.sc", src)
	p := parser.New(lex)
	f := p.ParseFile("test.sc")
	if len(p.Errors) > 0 {
		t.Fatalf("parse errors: %v", p.Errors)
	}
	return f
}

func TestParseVarDecl(t *testing.T) {
	f := parse(t, `let x: integer = 1;`)
	if len(f.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(f.Decls))
	}
	vd, ok := f.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", f.Decls[0])
	}
	if vd.Name != "x" || vd.IsConst {
		t.Errorf("got name=%q const=%v", vd.Name, vd.IsConst)
	}
}

func TestParseFuncDecl(t *testing.T) {
	f := parse(t, `
		function add(a: integer, b: integer): integer {
			return a + b;
		}
	`)
	fd := f.Decls[0].(*ast.FuncDecl)
	if fd.Name != "add" || len(fd.Params) != 2 {
		t.Fatalf("got name=%q params=%d", fd.Name, len(fd.Params))
	}
	ret, ok := f.Decls[0].(*ast.FuncDecl).Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected return statement, got %T", fd.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected binary expr, got %T", ret.Value)
	}
	if bin.Op != lexer.PLUS {
		t.Errorf("got op %s, want +", bin.Op)
	}
}

func TestParseClassWithExtends(t *testing.T) {
	f := parse(t, `
		class Animal {
			let name: string = "";
		}
		class Dog extends Animal {
			function bark(): void {
			}
		}
	`)
	dog := f.Decls[1].(*ast.ClassDecl)
	if dog.Name != "Dog" || dog.Super != "Animal" {
		t.Errorf("got name=%q super=%q", dog.Name, dog.Super)
	}
	if len(dog.Methods) != 1 || dog.Methods[0].Name != "bark" {
		t.Errorf("expected one method bark, got %v", dog.Methods)
	}
}

func TestParseArrayType(t *testing.T) {
	f := parse(t, `let a: integer[][] = [[1, 2], [3, 4]];`)
	vd := f.Decls[0].(*ast.VarDecl)
	arrType, ok := vd.Type.(*ast.ArrayTypeExpr)
	if !ok {
		t.Fatalf("expected ArrayTypeExpr, got %T", vd.Type)
	}
	if arrType.Dimensions != 2 {
		t.Errorf("got %d dimensions, want 2", arrType.Dimensions)
	}
}

func TestParseTernary(t *testing.T) {
	f := parse(t, `let x: integer = true ? 1 : 2;`)
	vd := f.Decls[0].(*ast.VarDecl)
	if _, ok := vd.Init.(*ast.TernaryExpr); !ok {
		t.Fatalf("expected TernaryExpr, got %T", vd.Init)
	}
}

func TestParseIfWhileFor(t *testing.T) {
	f := parse(t, `
		function main(): void {
			if (true) { } else { }
			while (true) { }
			for (let i: integer = 0; i < 10; i = i + 1) { }
		}
	`)
	body := f.Decls[0].(*ast.FuncDecl).Body.Stmts
	if len(body) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(body))
	}
	if _, ok := body[0].(*ast.IfStmt); !ok {
		t.Errorf("expected IfStmt, got %T", body[0])
	}
	if _, ok := body[1].(*ast.WhileStmt); !ok {
		t.Errorf("expected WhileStmt, got %T", body[1])
	}
	if _, ok := body[2].(*ast.ForStmt); !ok {
		t.Errorf("expected ForStmt, got %T", body[2])
	}
}

func TestParseTryCatch(t *testing.T) {
	f := parse(t, `
		function main(): void {
			try {
				let x: integer = 1;
			} catch (e) {
				print(e);
			}
		}
	`)
	body := f.Decls[0].(*ast.FuncDecl).Body.Stmts
	try, ok := body[0].(*ast.TryStmt)
	if !ok {
		t.Fatalf("expected TryStmt, got %T", body[0])
	}
	if try.Catch.Name != "e" {
		t.Errorf("got catch name %q, want e", try.Catch.Name)
	}
}

func TestParseNewAndPropertyAccess(t *testing.T) {
	f := parse(t, `
		class Point {
			let x: integer = 0;
		}
		function main(): void {
			let p: Point = new Point();
			let v: integer = p.x;
		}
	`)
	body := f.Decls[1].(*ast.FuncDecl).Body.Stmts
	vd := body[0].(*ast.VarDecl)
	if _, ok := vd.Init.(*ast.NewExpr); !ok {
		t.Fatalf("expected NewExpr, got %T", vd.Init)
	}
	vd2 := body[1].(*ast.VarDecl)
	if _, ok := vd2.Init.(*ast.PropertyExpr); !ok {
		t.Fatalf("expected PropertyExpr, got %T", vd2.Init)
	}
}
