// Package parser reads the small textual forms embedded in declaration
// files: type expressions, destructuring name patterns and initializers.
//
// Parentheses always build tuples, so "(Int)" is a one-element tuple and
// "(Int) -> Int" a function of arity one.
package parser

import (
	"fmt"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/lexer"
	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// MaxRecursionDepth bounds nesting of parentheses.
const MaxRecursionDepth = 200

type Parser struct {
	tokens    []token.Token
	pos       int
	curToken  token.Token
	peekToken token.Token
	depth     int
	errors    []*diagnostics.DiagnosticError
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{tokens: l.Tokens()}
	p.pos = -1
	p.nextToken()
	return p
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	if p.pos+1 < len(p.tokens) {
		p.peekToken = p.tokens[p.pos+1]
	} else {
		p.peekToken = p.curToken
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expect consumes the current token if it has type t.
func (p *Parser) expect(t token.TokenType, what string) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.unexpected(what)
	return false
}

func (p *Parser) unexpected(what string) {
	lexeme := p.curToken.Lexeme
	if p.curTokenIs(token.EOF) {
		lexeme = "end of input"
	} else if p.curTokenIs(token.ILLEGAL) {
		if msg, ok := p.curToken.Literal.(string); ok && msg != lexeme {
			lexeme = fmt.Sprintf("%s (%s)", lexeme, msg)
		}
	}
	p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP001, p.curToken, lexeme, what))
}

func (p *Parser) enter() bool {
	p.depth++
	if p.depth > MaxRecursionDepth {
		p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP001, p.curToken, p.curToken.Lexeme, "less nesting"))
		return false
	}
	return true
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) finish(what string) {
	if len(p.errors) == 0 && !p.curTokenIs(token.EOF) {
		p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP002, p.curToken, p.curToken.Lexeme, what))
	}
}

// ParseType parses a complete type expression located at line:col.
func ParseType(src string, line, col int) (typesystem.Type, []*diagnostics.DiagnosticError) {
	p := New(lexer.NewAt(src, line, col))
	t := p.parseType()
	p.finish("type")
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return t, nil
}

// ParsePattern parses a complete name pattern located at line:col.
func ParsePattern(src string, line, col int) (ast.NamePattern, []*diagnostics.DiagnosticError) {
	p := New(lexer.NewAt(src, line, col))
	n := p.parsePattern()
	p.finish("name pattern")
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return n, nil
}

// ParseExpression parses a complete initializer expression located at line:col.
func ParseExpression(src string, line, col int) (ast.Expression, []*diagnostics.DiagnosticError) {
	p := New(lexer.NewAt(src, line, col))
	e := p.parseExpression()
	p.finish("expression")
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return e, nil
}
