package symbols

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/typesystem"
)

type SymbolKind int

type ScopeType int

const (
	ScopePrelude ScopeType = iota // Built-in types
	ScopeGlobal                   // User code top-level
)

const (
	VariableSymbol SymbolKind = iota
	TypeSymbol
	ConstructorSymbol // oneof case
)

type Symbol struct {
	Name           string
	Kind           SymbolKind
	UnderlyingType typesystem.Type // For type aliases: the aliased type
	Decl           ast.Decl        // The declaration that introduced the symbol (nil for builtins)
}

// IsTypeAlias returns true if this symbol is a type alias with an underlying type.
func (s Symbol) IsTypeAlias() bool {
	return s.Kind == TypeSymbol && s.UnderlyingType != nil
}

// Type returns the current type of a value symbol. Value declarations are
// read live so that types resolved by the checker are seen by later lookups.
func (s Symbol) Type() typesystem.Type {
	if vd, ok := s.Decl.(ast.ValueDecl); ok {
		return vd.GetType()
	}
	if s.Kind == TypeSymbol {
		return typesystem.TCon{Name: s.Name, UnderlyingType: s.UnderlyingType}
	}
	return typesystem.TDependent{}
}
