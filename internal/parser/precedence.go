package parser

import "github.com/gerax5/semcore/internal/lexer"

// precedence ranks binary/logical operators for Pratt-style expression
// parsing; higher binds tighter. Mirrors the teacher's precedence.go
// table, extended with && / || / ?: for this language's grammar.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precTernary               // ?:
	precOr                    // ||
	precAnd                   // &&
	precEquality              // == !=
	precComparison            // < <= > >=
	precAdditive              // + -
	precMultiplic             // * / %
	precUnary                 // ! - (prefix)
	precPostfix               // . [] ()
)

func precedenceOf(t lexer.TokenType) precedence {
	switch t {
	case lexer.ASSIGN:
		return precAssignment
	case lexer.QUESTION:
		return precTernary
	case lexer.OR:
		return precOr
	case lexer.AND:
		return precAnd
	case lexer.EQ, lexer.NEQ:
		return precEquality
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return precComparison
	case lexer.PLUS, lexer.MINUS:
		return precAdditive
	case lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return precMultiplic
	case lexer.DOT, lexer.LBRACKET, lexer.LPAREN:
		return precPostfix
	default:
		return precNone
	}
}
