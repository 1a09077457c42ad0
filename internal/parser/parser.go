// Package parser builds an internal/parser/ast tree from an
// internal/lexer token stream using recursive descent for statements and
// declarations and Pratt precedence climbing for expressions.
package parser

import (
	"fmt"

	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser/ast"
)

// Parser consumes tokens from a Lexer and produces an *ast.File. Syntax
// errors are accumulated rather than raised, mirroring how the later
// semantic passes accumulate diagnostics (§7): a single malformed
// statement should not stop the parser from reporting problems elsewhere
// in the file.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	next lexer.Token

	Errors []error
}

// New creates a Parser over the given Lexer and primes the two-token
// lookahead buffer.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.next
	p.next = p.lex.Next()
}

func (p *Parser) at(t lexer.TokenType) bool     { return p.cur.Type == t }
func (p *Parser) atNext(t lexer.TokenType) bool { return p.next.Type == t }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.Errors = append(p.Errors, fmt.Errorf("%s: %s", p.cur.Position.String(), fmt.Sprintf(format, args...)))
}

func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	if !p.at(t) {
		p.errorf("expected %s, got %s(%q)", t, p.cur.Type, p.cur.Lexeme)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

// ParseFile parses an entire compilation unit: a flat list of top-level
// const/let/function/class declarations.
func (p *Parser) ParseFile(name string) *ast.File {
	f := &ast.File{Name: name, Position: p.cur.Position}
	for !p.at(lexer.EOF) {
		d := p.parseDecl()
		if d != nil {
			f.Decls = append(f.Decls, d)
		} else {
			p.advance() // avoid infinite loop on unrecognized token
		}
	}
	return f
}

func (p *Parser) parseDecl() ast.Decl {
	switch p.cur.Type {
	case lexer.CONST, lexer.LET:
		d := p.parseVarDecl()
		p.expect(lexer.SEMI)
		return d
	case lexer.FUNCTION:
		return p.parseFuncDecl(false)
	case lexer.CLASS:
		return p.parseClassDecl()
	default:
		p.errorf("expected declaration, got %s(%q)", p.cur.Type, p.cur.Lexeme)
		return nil
	}
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	pos := p.cur.Position
	isConst := p.at(lexer.CONST)
	p.advance() // const|let

	name := p.expect(lexer.IDENT).Lexeme

	var typ ast.TypeExpr
	if p.at(lexer.COLON) {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var init ast.Expr
	if p.at(lexer.ASSIGN) {
		p.advance()
		init = p.parseExpr(precAssignment)
	}

	return &ast.VarDecl{Name: name, Type: typ, Init: init, IsConst: isConst, Position: pos}
}

func (p *Parser) parseTypeExpr() ast.TypeExpr {
	pos := p.cur.Position
	name := p.cur.Lexeme
	switch p.cur.Type {
	case lexer.INTEGER, lexer.FLOATKW, lexer.BOOLEAN, lexer.STRINGKW, lexer.VOID, lexer.IDENT:
		p.advance()
	default:
		p.errorf("expected type name, got %s(%q)", p.cur.Type, p.cur.Lexeme)
	}
	var t ast.TypeExpr = &ast.NamedTypeExpr{Name: name, Position: pos}
	for p.at(lexer.LBRACKET) && p.atNext(lexer.RBRACKET) {
		p.advance()
		p.advance()
		var dims uint = 1
		for p.at(lexer.LBRACKET) && p.atNext(lexer.RBRACKET) {
			p.advance()
			p.advance()
			dims++
		}
		t = &ast.ArrayTypeExpr{Base: t, Dimensions: dims, Position: pos}
		break
	}
	return t
}

func (p *Parser) parseParams() []*ast.Parameter {
	p.expect(lexer.LPAREN)
	var params []*ast.Parameter
	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		pos := p.cur.Position
		name := p.expect(lexer.IDENT).Lexeme
		p.expect(lexer.COLON)
		typ := p.parseTypeExpr()
		params = append(params, &ast.Parameter{Name: name, Type: typ, Position: pos})
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN)
	return params
}

func (p *Parser) parseFuncDecl(isMethod bool) *ast.FuncDecl {
	pos := p.cur.Position
	p.expect(lexer.FUNCTION)
	name := p.expect(lexer.IDENT).Lexeme
	params := p.parseParams()

	var ret ast.TypeExpr
	if p.at(lexer.COLON) {
		p.advance()
		ret = p.parseTypeExpr()
	}

	body := p.parseBlock()
	return &ast.FuncDecl{Name: name, Params: params, ReturnType: ret, Body: body, IsMethod: isMethod, Position: pos}
}

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	pos := p.cur.Position
	p.expect(lexer.CLASS)
	name := p.expect(lexer.IDENT).Lexeme

	var super string
	if p.at(lexer.EXTENDS) || p.at(lexer.COLON) {
		p.advance()
		super = p.expect(lexer.IDENT).Lexeme
	}

	p.expect(lexer.LBRACE)
	c := &ast.ClassDecl{Name: name, Super: super, Position: pos}
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		switch p.cur.Type {
		case lexer.FUNCTION:
			c.Methods = append(c.Methods, p.parseFuncDecl(true))
		case lexer.LET, lexer.CONST:
			fpos := p.cur.Position
			p.advance()
			fname := p.expect(lexer.IDENT).Lexeme
			p.expect(lexer.COLON)
			ftyp := p.parseTypeExpr()
			var finit ast.Expr
			if p.at(lexer.ASSIGN) {
				p.advance()
				finit = p.parseExpr(precAssignment)
			}
			p.expect(lexer.SEMI)
			c.Fields = append(c.Fields, &ast.Field{Name: fname, Type: ftyp, Init: finit, Position: fpos})
		default:
			p.errorf("expected field or method in class %s, got %s(%q)", name, p.cur.Type, p.cur.Lexeme)
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	return c
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	pos := p.cur.Position
	p.expect(lexer.LBRACE)
	b := &ast.BlockStmt{Position: pos}
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		b.Stmts = append(b.Stmts, p.parseStmt())
	}
	p.expect(lexer.RBRACE)
	return b
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Type {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.LET, lexer.CONST:
		d := p.parseVarDecl()
		p.expect(lexer.SEMI)
		return d
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.DO:
		return p.parseDoWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.FOREACH:
		return p.parseForEach()
	case lexer.SWITCH:
		return p.parseSwitch()
	case lexer.TRY:
		return p.parseTry()
	case lexer.BREAK:
		pos := p.cur.Position
		p.advance()
		p.expect(lexer.SEMI)
		return &ast.BreakStmt{Position: pos}
	case lexer.CONTINUE:
		pos := p.cur.Position
		p.advance()
		p.expect(lexer.SEMI)
		return &ast.ContinueStmt{Position: pos}
	case lexer.RETURN:
		pos := p.cur.Position
		p.advance()
		var val ast.Expr
		if !p.at(lexer.SEMI) {
			val = p.parseExpr(precAssignment)
		}
		p.expect(lexer.SEMI)
		return &ast.ReturnStmt{Value: val, Position: pos}
	case lexer.PRINT:
		pos := p.cur.Position
		p.advance()
		p.expect(lexer.LPAREN)
		val := p.parseExpr(precAssignment)
		p.expect(lexer.RPAREN)
		p.expect(lexer.SEMI)
		return &ast.PrintStmt{Value: val, Position: pos}
	default:
		pos := p.cur.Position
		e := p.parseExpr(precAssignment)
		p.expect(lexer.SEMI)
		return &ast.ExprStmt{Expr: e, Position: pos}
	}
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr(precAssignment)
	p.expect(lexer.RPAREN)
	then := p.parseStmt()
	var els ast.Stmt
	if p.at(lexer.ELSE) {
		p.advance()
		els = p.parseStmt()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Position: pos}
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr(precAssignment)
	p.expect(lexer.RPAREN)
	body := p.parseStmt()
	return &ast.WhileStmt{Cond: cond, Body: body, Position: pos}
}

func (p *Parser) parseDoWhile() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.DO)
	body := p.parseStmt()
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr(precAssignment)
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMI)
	return &ast.DoWhileStmt{Body: body, Cond: cond, Position: pos}
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.FOR)
	p.expect(lexer.LPAREN)

	var init ast.Stmt
	if !p.at(lexer.SEMI) {
		if p.at(lexer.LET) || p.at(lexer.CONST) {
			init = p.parseVarDecl()
		} else {
			epos := p.cur.Position
			init = &ast.ExprStmt{Expr: p.parseExpr(precAssignment), Position: epos}
		}
	}
	p.expect(lexer.SEMI)

	var cond ast.Expr
	if !p.at(lexer.SEMI) {
		cond = p.parseExpr(precAssignment)
	}
	p.expect(lexer.SEMI)

	var post ast.Expr
	if !p.at(lexer.RPAREN) {
		post = p.parseExpr(precAssignment)
	}
	p.expect(lexer.RPAREN)

	body := p.parseStmt()
	return &ast.ForStmt{Init: init, Cond: cond, Post: post, Body: body, Position: pos}
}

func (p *Parser) parseForEach() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.FOREACH)
	p.expect(lexer.LPAREN)
	name := p.expect(lexer.IDENT).Lexeme
	p.expect(lexer.IN)
	iterable := p.parseExpr(precAssignment)
	p.expect(lexer.RPAREN)
	body := p.parseStmt()
	return &ast.ForEachStmt{VarName: name, Iterable: iterable, Body: body, Position: pos}
}

func (p *Parser) parseSwitch() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.SWITCH)
	p.expect(lexer.LPAREN)
	disc := p.parseExpr(precAssignment)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)

	s := &ast.SwitchStmt{Discriminant: disc, Position: pos}
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		switch p.cur.Type {
		case lexer.CASE:
			cpos := p.cur.Position
			p.advance()
			val := p.parseExpr(precAssignment)
			p.expect(lexer.COLON)
			clause := &ast.CaseClause{Value: val, Position: cpos}
			for !p.at(lexer.CASE) && !p.at(lexer.DEFAULT) && !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
				clause.Body = append(clause.Body, p.parseStmt())
			}
			s.Cases = append(s.Cases, clause)
		case lexer.DEFAULT:
			dpos := p.cur.Position
			p.advance()
			p.expect(lexer.COLON)
			clause := &ast.CaseClause{Position: dpos}
			for !p.at(lexer.CASE) && !p.at(lexer.DEFAULT) && !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
				clause.Body = append(clause.Body, p.parseStmt())
			}
			s.Default = clause
		default:
			p.errorf("expected case or default, got %s(%q)", p.cur.Type, p.cur.Lexeme)
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	return s
}

func (p *Parser) parseTry() ast.Stmt {
	pos := p.cur.Position
	p.expect(lexer.TRY)
	body := p.parseBlock()
	p.expect(lexer.CATCH)
	cpos := p.cur.Position
	p.expect(lexer.LPAREN)
	name := p.expect(lexer.IDENT).Lexeme
	p.expect(lexer.RPAREN)
	handler := p.parseBlock()
	return &ast.TryStmt{Body: body, Catch: &ast.CatchClause{Name: name, Body: handler, Position: cpos}, Position: pos}
}

// parseExpr implements Pratt precedence climbing: parse a prefix/primary
// expression, then repeatedly fold in infix operators whose precedence
// meets minPrec.
func (p *Parser) parseExpr(minPrec precedence) ast.Expr {
	left := p.parsePrefix()

	for {
		opPrec := precedenceOf(p.cur.Type)
		if opPrec < minPrec || opPrec == precNone {
			break
		}

		switch p.cur.Type {
		case lexer.ASSIGN:
			pos := p.cur.Position
			p.advance()
			value := p.parseExpr(precAssignment)
			left = &ast.AssignmentExpr{Target: left, Value: value, Position: pos}
		case lexer.QUESTION:
			pos := p.cur.Position
			p.advance()
			then := p.parseExpr(precAssignment)
			p.expect(lexer.COLON)
			els := p.parseExpr(precTernary)
			left = &ast.TernaryExpr{Cond: left, Then: then, Else: els, Position: pos}
		case lexer.AND, lexer.OR:
			op := p.cur.Type
			pos := p.cur.Position
			p.advance()
			right := p.parseExpr(opPrec + 1)
			left = &ast.LogicalExpr{Op: op, Left: left, Right: right, Position: pos}
		case lexer.DOT:
			pos := p.cur.Position
			p.advance()
			name := p.expect(lexer.IDENT).Lexeme
			left = &ast.PropertyExpr{Object: left, Name: name, Position: pos}
		case lexer.LBRACKET:
			pos := p.cur.Position
			p.advance()
			idx := p.parseExpr(precAssignment)
			p.expect(lexer.RBRACKET)
			left = &ast.IndexExpr{Array: left, Index: idx, Position: pos}
		case lexer.LPAREN:
			pos := p.cur.Position
			args := p.parseArgs()
			left = &ast.CallExpr{Callee: left, Args: args, Position: pos}
		default:
			op := p.cur.Type
			pos := p.cur.Position
			p.advance()
			right := p.parseExpr(opPrec + 1)
			left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Position: pos}
		}
	}

	return left
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(lexer.LPAREN)
	var args []ast.Expr
	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		args = append(args, p.parseExpr(precAssignment))
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN)
	return args
}

func (p *Parser) parsePrefix() ast.Expr {
	pos := p.cur.Position
	switch p.cur.Type {
	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NULL:
		tok := p.cur
		p.advance()
		return &ast.LiteralExpr{Kind: tok.Type, Raw: tok.Lexeme, Position: pos}
	case lexer.IDENT:
		name := p.cur.Lexeme
		p.advance()
		return &ast.IdentifierExpr{Name: name, Position: pos}
	case lexer.THIS:
		p.advance()
		return &ast.ThisExpr{Position: pos}
	case lexer.NOT, lexer.MINUS:
		op := p.cur.Type
		p.advance()
		operand := p.parseExpr(precUnary)
		return &ast.UnaryExpr{Op: op, Operand: operand, Position: pos}
	case lexer.LPAREN:
		p.advance()
		e := p.parseExpr(precAssignment)
		p.expect(lexer.RPAREN)
		return e
	case lexer.LBRACKET:
		p.advance()
		lit := &ast.ArrayLiteralExpr{Position: pos}
		for !p.at(lexer.RBRACKET) && !p.at(lexer.EOF) {
			lit.Elements = append(lit.Elements, p.parseExpr(precAssignment))
			if p.at(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lexer.RBRACKET)
		return lit
	case lexer.NEW:
		p.advance()
		if p.at(lexer.INTEGER) || p.at(lexer.FLOATKW) || p.at(lexer.BOOLEAN) || p.at(lexer.STRINGKW) {
			elem := p.parseTypeExpr0()
			var sizes []ast.Expr
			for p.at(lexer.LBRACKET) {
				p.advance()
				sizes = append(sizes, p.parseExpr(precAssignment))
				p.expect(lexer.RBRACKET)
			}
			return &ast.NewArrayExpr{ElemType: elem, Sizes: sizes, Position: pos}
		}
		name := p.expect(lexer.IDENT).Lexeme
		if p.at(lexer.LBRACKET) {
			elem := ast.TypeExpr(&ast.NamedTypeExpr{Name: name, Position: pos})
			var sizes []ast.Expr
			for p.at(lexer.LBRACKET) {
				p.advance()
				sizes = append(sizes, p.parseExpr(precAssignment))
				p.expect(lexer.RBRACKET)
			}
			return &ast.NewArrayExpr{ElemType: elem, Sizes: sizes, Position: pos}
		}
		args := p.parseArgs()
		return &ast.NewExpr{ClassName: name, Args: args, Position: pos}
	default:
		p.errorf("unexpected token %s(%q) in expression", p.cur.Type, p.cur.Lexeme)
		p.advance()
		return &ast.LiteralExpr{Kind: lexer.NULL, Raw: "null", Position: pos}
	}
}

// parseTypeExpr0 parses a single primitive type name without consuming
// array brackets, which callers of `new` handle themselves alongside the
// size expressions.
func (p *Parser) parseTypeExpr0() ast.TypeExpr {
	pos := p.cur.Position
	name := p.cur.Lexeme
	p.advance()
	return &ast.NamedTypeExpr{Name: name, Position: pos}
}
