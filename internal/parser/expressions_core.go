package parser

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/token"
)

func (p *Parser) parseExpression() ast.Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	tok := p.curToken
	switch tok.Type {
	case token.INT:
		p.nextToken()
		return &ast.IntegerLiteral{Token: tok, Value: tok.Literal.(int64)}
	case token.STRING:
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal.(string)}
	case token.TRUE, token.FALSE:
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.IDENT_LOWER, token.IDENT_UPPER:
		p.nextToken()
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}
	case token.LPAREN:
		return p.parseTupleExpression()
	}
	p.unexpected("an expression")
	return nil
}

// parseTupleExpression parses (1, y: "two").
func (p *Parser) parseTupleExpression() ast.Expression {
	tuple := &ast.TupleExpression{Token: p.curToken}
	p.nextToken() // consume '('
	for !p.curTokenIs(token.RPAREN) {
		var el ast.TupleElement
		if p.curTokenIs(token.IDENT_LOWER) && p.peekTokenIs(token.COLON) {
			el.Name = p.curToken.Lexeme
			p.nextToken() // label
			p.nextToken() // ':'
		}
		el.Value = p.parseExpression()
		if el.Value == nil {
			return nil
		}
		tuple.Elements = append(tuple.Elements, el)
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume ','
	}
	if !p.expect(token.RPAREN, "',' or ')' in tuple") {
		return nil
	}
	return tuple
}
