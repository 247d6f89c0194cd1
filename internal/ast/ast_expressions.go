package ast

import (
	"strconv"
	"strings"

	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// Expression is a Node that produces a value. Its type slot is filled in by
// the expression checker and is authoritative once checking succeeded.
type Expression interface {
	Node
	expressionNode()
	GetType() typesystem.Type
	SetType(t typesystem.Type)
	String() string
}

// typed is embedded by every expression to hold its computed type.
type typed struct {
	Type typesystem.Type
}

func (t *typed) GetType() typesystem.Type {
	if t.Type == nil {
		return typesystem.TDependent{}
	}
	return t.Type
}

func (t *typed) SetType(ty typesystem.Type) { t.Type = ty }

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	typed
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(il.Value, 10) }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// StringLiteral represents a string literal.
type StringLiteral struct {
	typed
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) String() string       { return strconv.Quote(sl.Value) }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// BooleanLiteral represents boolean literals true/false.
type BooleanLiteral struct {
	typed
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BooleanLiteral) String() string       { return strconv.FormatBool(b.Value) }
func (b *BooleanLiteral) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// Identifier references a declared value by name.
type Identifier struct {
	typed
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// TupleElement is one element of a tuple expression, optionally labelled.
type TupleElement struct {
	Name  string
	Value Expression
}

// TupleExpression represents (a, b) or (x: 1, y: 2).
type TupleExpression struct {
	typed
	Token    token.Token // The '(' token
	Elements []TupleElement
}

func (te *TupleExpression) expressionNode()      {}
func (te *TupleExpression) TokenLiteral() string { return te.Token.Lexeme }
func (te *TupleExpression) GetToken() token.Token {
	if te == nil {
		return token.Token{}
	}
	return te.Token
}

func (te *TupleExpression) String() string {
	parts := make([]string, 0, len(te.Elements))
	for _, el := range te.Elements {
		if el.Name != "" {
			parts = append(parts, el.Name+": "+el.Value.String())
		} else {
			parts = append(parts, el.Value.String())
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
