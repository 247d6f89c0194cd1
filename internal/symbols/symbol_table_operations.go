package symbols

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/typesystem"
)

type SymbolTable struct {
	values    map[string]Symbol
	types     map[string]Symbol
	outer     *SymbolTable
	scopeType ScopeType // Type of this scope
}

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{
		values:    make(map[string]Symbol),
		types:     make(map[string]Symbol),
		scopeType: ScopeGlobal,
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = outer
	st.scopeType = scopeType
	return st
}

// Outer returns the outer scope symbol table
func (s *SymbolTable) Outer() *SymbolTable {
	return s.outer
}

// IsGlobalScope returns true if this symbol table is the user top-level scope.
func (s *SymbolTable) IsGlobalScope() bool {
	return s.scopeType == ScopeGlobal
}

// DefineType registers a nominal type (underlying == nil) or an alias.
// It returns false if the name is already taken in this scope.
func (s *SymbolTable) DefineType(name string, underlying typesystem.Type, decl ast.Decl) bool {
	if _, exists := s.types[name]; exists {
		return false
	}
	s.types[name] = Symbol{Name: name, Kind: TypeSymbol, UnderlyingType: underlying, Decl: decl}
	return true
}

// DefineValue registers a value declaration under its name.
// It returns false if the name is already taken in this scope.
func (s *SymbolTable) DefineValue(decl ast.ValueDecl) bool {
	name := decl.DeclName()
	if _, exists := s.values[name]; exists {
		return false
	}
	kind := VariableSymbol
	if _, ok := decl.(*ast.OneOfElementDecl); ok {
		kind = ConstructorSymbol
	}
	s.values[name] = Symbol{Name: name, Kind: kind, Decl: decl}
	return true
}

// FindType looks a type name up through the enclosing scopes.
func (s *SymbolTable) FindType(name string) (Symbol, bool) {
	if sym, ok := s.types[name]; ok {
		return sym, true
	}
	if s.outer != nil {
		return s.outer.FindType(name)
	}
	return Symbol{}, false
}

// FindValue looks a value name up through the enclosing scopes.
func (s *SymbolTable) FindValue(name string) (Symbol, bool) {
	if sym, ok := s.values[name]; ok {
		return sym, true
	}
	if s.outer != nil {
		return s.outer.FindValue(name)
	}
	return Symbol{}, false
}

// SetAliasTarget updates the underlying type of an alias after it was resolved.
func (s *SymbolTable) SetAliasTarget(name string, underlying typesystem.Type) {
	if sym, ok := s.types[name]; ok {
		sym.UnderlyingType = underlying
		s.types[name] = sym
		return
	}
	if s.outer != nil {
		s.outer.SetAliasTarget(name, underlying)
	}
}
