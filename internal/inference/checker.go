// Package inference is the reference type checker used by the declaration
// analyzer: it resolves type names against a symbol table and infers the
// types of initializer expressions.
package inference

import (
	"errors"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/symbols"
	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// ErrAlreadyDiagnosed is returned for types that already failed (TError).
var ErrAlreadyDiagnosed = errors.New("type already diagnosed")

// Checker implements analyzer.TypeChecker and analyzer.HeaderCollector.
type Checker struct {
	symbolTable *symbols.SymbolTable
}

func New(symbolTable *symbols.SymbolTable) *Checker {
	if symbolTable == nil {
		symbolTable = symbols.NewSymbolTable()
	}
	return &Checker{symbolTable: symbolTable}
}

// SymbolTable exposes the scope the checker resolves names in.
func (c *Checker) SymbolTable() *symbols.SymbolTable {
	return c.symbolTable
}

// CollectHeader registers the names a declaration introduces.
func (c *Checker) CollectHeader(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.TypeAliasDecl:
		if !c.symbolTable.DefineType(d.Name, d.AliasType, d) {
			return diagnostics.NewError(diagnostics.ErrT004, d.GetToken(), d.Name)
		}
	case *ast.ImportDecl, *ast.ArgDecl:
		// Imports bind nothing here; arguments belong to their function.
	case *ast.VarDecl:
		// A destructuring var binds its names through element references.
		if d.Pattern != nil {
			return nil
		}
		if !c.symbolTable.DefineValue(d) {
			return diagnostics.NewError(diagnostics.ErrT004, d.GetToken(), d.DeclName())
		}
	case ast.ValueDecl:
		if d.DeclName() == "" {
			return nil
		}
		if !c.symbolTable.DefineValue(d) {
			return diagnostics.NewError(diagnostics.ErrT004, d.GetToken(), d.DeclName())
		}
	}
	return nil
}

// ValidateType resolves every type name in t. Aliases come back as TCon
// values with their underlying type filled in.
func (c *Checker) ValidateType(t typesystem.Type) (typesystem.Type, error) {
	return c.resolve(t, make(map[string]bool))
}

func (c *Checker) resolve(t typesystem.Type, visiting map[string]bool) (typesystem.Type, error) {
	switch typ := t.(type) {
	case nil:
		return typesystem.TDependent{}, nil

	case typesystem.TDependent:
		return typ, nil

	case typesystem.TError:
		return typ, ErrAlreadyDiagnosed

	case typesystem.TCon:
		sym, ok := c.symbolTable.FindType(typ.Name)
		if !ok {
			return typesystem.TError{}, diagnostics.NewError(diagnostics.ErrT001, token.Token{}, typ.Name)
		}
		if !sym.IsTypeAlias() {
			return typesystem.TCon{Name: typ.Name}, nil
		}
		if visiting[typ.Name] {
			return typesystem.TError{}, diagnostics.NewError(diagnostics.ErrT005, token.Token{}, typ.Name)
		}
		visiting[typ.Name] = true
		underlying, err := c.resolve(sym.UnderlyingType, visiting)
		delete(visiting, typ.Name)
		if err != nil {
			return typesystem.TError{}, err
		}
		c.symbolTable.SetAliasTarget(typ.Name, underlying)
		return typesystem.TCon{Name: typ.Name, UnderlyingType: underlying}, nil

	case typesystem.TFunc:
		in, err := c.resolve(typ.Input, visiting)
		if err != nil {
			return typesystem.TError{}, err
		}
		out, err := c.resolve(typ.Output, visiting)
		if err != nil {
			return typesystem.TError{}, err
		}
		return typesystem.TFunc{Input: in, Output: out}, nil

	case typesystem.TTuple:
		fields := make([]typesystem.TupleField, len(typ.Fields))
		for i, f := range typ.Fields {
			ft, err := c.resolve(f.Type, visiting)
			if err != nil {
				return typesystem.TError{}, err
			}
			fields[i] = typesystem.TupleField{Name: f.Name, Type: ft}
		}
		return typesystem.TTuple{Fields: fields}, nil

	case typesystem.TOneOf:
		elements := make([]typesystem.OneOfElement, len(typ.Elements))
		for i, el := range typ.Elements {
			elements[i] = typesystem.OneOfElement{Name: el.Name}
			if el.ArgType == nil {
				continue
			}
			at, err := c.resolve(el.ArgType, visiting)
			if err != nil {
				return typesystem.TError{}, err
			}
			elements[i].ArgType = at
		}
		return typesystem.TOneOf{Name: typ.Name, Elements: elements}, nil
	}

	return t, nil
}
