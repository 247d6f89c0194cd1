package parser

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/token"
)

// parsePattern parses a name or a parenthesised list of patterns.
func (p *Parser) parsePattern() ast.NamePattern {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch p.curToken.Type {
	case token.IDENT_LOWER, token.IDENT_UPPER:
		n := &ast.SimpleName{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		return n
	case token.LPAREN:
		compound := &ast.CompoundName{Token: p.curToken}
		p.nextToken() // consume '('
		for !p.curTokenIs(token.RPAREN) {
			el := p.parsePattern()
			if el == nil {
				return nil
			}
			compound.Elements = append(compound.Elements, el)
			if !p.curTokenIs(token.COMMA) {
				break
			}
			p.nextToken() // consume ','
		}
		if !p.expect(token.RPAREN, "',' or ')' in name pattern") {
			return nil
		}
		return compound
	}
	p.unexpected("a name or '('")
	return nil
}
