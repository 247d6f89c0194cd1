package ast

import (
	"github.com/funvibe/declcheck/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenProvider
	TokenLiteral() string
}

// Visitor dispatches on declaration kind. Each kind has exactly one method.
type Visitor interface {
	VisitImportDecl(d *ImportDecl)
	VisitTypeAliasDecl(d *TypeAliasDecl)
	VisitVarDecl(d *VarDecl)
	VisitFuncDecl(d *FuncDecl)
	VisitOneOfElementDecl(d *OneOfElementDecl)
	VisitArgDecl(d *ArgDecl)
	VisitElementRefDecl(d *ElementRefDecl)
}

// Decl is a Node that introduces a name.
type Decl interface {
	Node
	Accept(v Visitor)
	DeclName() string
	declNode()
}

// Program is the root node: the declarations of one source file, in order.
type Program struct {
	File  string // Source file path
	Decls []Decl
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if p == nil || len(p.Decls) == 0 {
		return token.Token{}
	}
	return p.Decls[0].GetToken()
}
