package ast

import (
	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// ImportDecl represents an import declaration.
// import std.io
type ImportDecl struct {
	Token token.Token // The 'import' token
	Path  string
}

func (d *ImportDecl) Accept(v Visitor)     { v.VisitImportDecl(d) }
func (d *ImportDecl) declNode()            {}
func (d *ImportDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *ImportDecl) DeclName() string     { return d.Path }
func (d *ImportDecl) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}

// TypeAliasDecl binds a name to a type.
// typealias Point = (x: Int, y: Int)
type TypeAliasDecl struct {
	Token     token.Token
	Name      string
	AliasType typesystem.Type
}

func (d *TypeAliasDecl) Accept(v Visitor)     { v.VisitTypeAliasDecl(d) }
func (d *TypeAliasDecl) declNode()            {}
func (d *TypeAliasDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *TypeAliasDecl) DeclName() string     { return d.Name }
func (d *TypeAliasDecl) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}

// Associativity of an infix operator.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
	AssocNone
)

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// InfixData marks a declaration as a binary operator.
type InfixData struct {
	Precedence    int
	Associativity Associativity
}

// DeclAttributes holds the [...] attributes written on a declaration.
type DeclAttributes struct {
	Infix      *InfixData  // nil when no infix attribute was written
	LSquareTok token.Token // The '[' opening the attribute list
}

func (a *DeclAttributes) IsInfix() bool {
	return a != nil && a.Infix != nil
}

func (a *DeclAttributes) ClearInfix() {
	a.Infix = nil
}

// ValueDecl is a declaration that carries a type and maybe an initializer.
type ValueDecl interface {
	Decl
	GetType() typesystem.Type
	OverwriteType(t typesystem.Type)
	GetInit() Expression
	SetInit(e Expression)
	Attrs() *DeclAttributes
	IsOperator() bool
}

// ValueDeclBase carries the state shared by all value declarations.
// A nil Type is read as TDependent.
type ValueDeclBase struct {
	Token      token.Token // The name token
	Name       string
	Type       typesystem.Type
	Init       Expression
	Attributes DeclAttributes
}

func (b *ValueDeclBase) TokenLiteral() string { return b.Token.Lexeme }
func (b *ValueDeclBase) DeclName() string     { return b.Name }
func (b *ValueDeclBase) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

func (b *ValueDeclBase) GetType() typesystem.Type {
	if b.Type == nil {
		return typesystem.TDependent{}
	}
	return b.Type
}

// OverwriteType rebinds the declaration's type. The old Type value is untouched.
func (b *ValueDeclBase) OverwriteType(t typesystem.Type) { b.Type = t }

func (b *ValueDeclBase) GetInit() Expression  { return b.Init }
func (b *ValueDeclBase) SetInit(e Expression) { b.Init = e }

func (b *ValueDeclBase) Attrs() *DeclAttributes { return &b.Attributes }

func (b *ValueDeclBase) IsOperator() bool { return token.IsOperatorName(b.Name) }

// VarDecl declares a variable, optionally destructured through a name pattern.
// var (a, b) : (Int, Int) = (1, 2)
type VarDecl struct {
	ValueDeclBase
	Pattern NamePattern // nil for a plain name
}

func (d *VarDecl) Accept(v Visitor) { v.VisitVarDecl(d) }
func (d *VarDecl) declNode()        {}

// FuncDecl declares a function. Its type is a TFunc whose input is the
// tuple of its parameter types.
type FuncDecl struct {
	ValueDeclBase
	Params []*ArgDecl
}

func (d *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(d) }
func (d *FuncDecl) declNode()        {}

// OneOfElementDecl declares one case of a oneof type.
type OneOfElementDecl struct {
	ValueDeclBase
	ArgType typesystem.Type // nil for payload-less cases
}

func (d *OneOfElementDecl) Accept(v Visitor) { v.VisitOneOfElementDecl(d) }
func (d *OneOfElementDecl) declNode()        {}

// ArgDecl is a function parameter. It only ever appears inside FuncDecl.Params.
type ArgDecl struct {
	ValueDeclBase
}

func (d *ArgDecl) Accept(v Visitor) { v.VisitArgDecl(d) }
func (d *ArgDecl) declNode()        {}

// ElementRefDecl names a piece of another variable's value, reached by
// following AccessPath through nested tuples of Base's type.
// var (a, (b, c)) = ...  introduces refs b -> [1 0], c -> [1 1].
type ElementRefDecl struct {
	ValueDeclBase
	Base       *VarDecl
	AccessPath []int
	// FromPattern is set for refs introduced by Base's name pattern.
	FromPattern bool
}

func (d *ElementRefDecl) Accept(v Visitor) { v.VisitElementRefDecl(d) }
func (d *ElementRefDecl) declNode()        {}
