package parser

import (
	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// parseType parses a function type or anything tighter. '->' is right associative.
func (p *Parser) parseType() typesystem.Type {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	t := p.parseNonFuncType()
	if t == nil {
		return nil
	}
	if p.curTokenIs(token.ARROW) {
		p.nextToken() // consume '->'
		out := p.parseType()
		if out == nil {
			return nil
		}
		return typesystem.TFunc{Input: t, Output: out}
	}
	return t
}

func (p *Parser) parseNonFuncType() typesystem.Type {
	switch p.curToken.Type {
	case token.QUESTION:
		p.nextToken()
		return typesystem.TDependent{}
	case token.BANG:
		p.nextToken()
		return typesystem.TError{}
	case token.IDENT_UPPER:
		name := p.curToken.Lexeme
		p.nextToken()
		return typesystem.TCon{Name: name}
	case token.LPAREN:
		return p.parseTupleType()
	case token.ONEOF:
		return p.parseOneOfType()
	}
	p.unexpected("a type")
	return nil
}

// parseTupleType parses (Int, y: String).
func (p *Parser) parseTupleType() typesystem.Type {
	p.nextToken() // consume '('
	fields := []typesystem.TupleField{}
	for !p.curTokenIs(token.RPAREN) {
		var field typesystem.TupleField
		if p.curTokenIs(token.IDENT_LOWER) && p.peekTokenIs(token.COLON) {
			field.Name = p.curToken.Lexeme
			p.nextToken() // label
			p.nextToken() // ':'
		}
		field.Type = p.parseType()
		if field.Type == nil {
			return nil
		}
		fields = append(fields, field)
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume ','
	}
	if !p.expect(token.RPAREN, "',' or ')' in tuple type") {
		return nil
	}
	return typesystem.TTuple{Fields: fields}
}

// parseOneOfType parses oneof [Name] { Case(T), Pair(A, B), Other }.
func (p *Parser) parseOneOfType() typesystem.Type {
	p.nextToken() // consume 'oneof'
	oneOf := typesystem.TOneOf{}
	if p.curTokenIs(token.IDENT_UPPER) {
		oneOf.Name = p.curToken.Lexeme
		p.nextToken()
	}
	if !p.expect(token.LBRACE, "'{' after oneof") {
		return nil
	}
	for !p.curTokenIs(token.RBRACE) {
		if !p.curTokenIs(token.IDENT_UPPER) {
			p.unexpected("a oneof case name")
			return nil
		}
		el := typesystem.OneOfElement{Name: p.curToken.Lexeme}
		p.nextToken()
		if p.curTokenIs(token.LPAREN) {
			payload := p.parseTupleType()
			if payload == nil {
				return nil
			}
			// Case(T) carries T itself; Case(A, B) carries the tuple.
			if tuple := payload.(typesystem.TTuple); len(tuple.Fields) == 1 && tuple.Fields[0].Name == "" {
				el.ArgType = tuple.Fields[0].Type
			} else {
				el.ArgType = tuple
			}
		}
		oneOf.Elements = append(oneOf.Elements, el)
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume ','
	}
	if !p.expect(token.RBRACE, "',' or '}' in oneof") {
		return nil
	}
	return oneOf
}
