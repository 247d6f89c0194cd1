package analyzer

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// unknownArity is used when the declaration is not a function over a tuple.
const unknownArity = -1

// lexicalArity returns the number of tuple fields a function type takes.
func lexicalArity(t typesystem.Type) int {
	fn, ok := t.(typesystem.TFunc)
	if !ok {
		return unknownArity
	}
	tuple, ok := fn.Input.(typesystem.TTuple)
	if !ok {
		return unknownArity
	}
	return len(tuple.Fields)
}

// validateAttributes checks that operator names and infix attributes agree
// with the declaration's arity. Invalid infix data is dropped; the
// declaration itself stays usable.
func (w *walker) validateAttributes(vd ast.ValueDecl) {
	attrs := vd.Attrs()
	arity := lexicalArity(vd.GetType())
	name := vd.DeclName()

	if vd.IsOperator() && (arity == 0 || arity > 2) {
		w.addError(diagnostics.NewError(diagnostics.ErrD003, vd.GetToken(), name))
		attrs.ClearInfix()
		return
	}

	// infix_left requires a function whose input is a two element tuple.
	if attrs.IsInfix() && arity != 2 {
		w.addError(diagnostics.NewError(diagnostics.ErrD004, attrs.LSquareTok, name))
		attrs.ClearInfix()
	}

	if attrs.IsInfix() && !vd.IsOperator() {
		w.addError(diagnostics.NewError(diagnostics.ErrD005, vd.GetToken(), name))
		attrs.ClearInfix()
	}

	if attrs.IsInfix() && !isVarOrFunc(vd) {
		w.addError(diagnostics.NewError(diagnostics.ErrD006, vd.GetToken(), name))
		attrs.ClearInfix()
	}

	if vd.IsOperator() && !attrs.IsInfix() && arity != 1 {
		w.addError(diagnostics.NewError(diagnostics.ErrD007, vd.GetToken(), name))
	}
}

func isVarOrFunc(vd ast.ValueDecl) bool {
	switch vd.(type) {
	case *ast.VarDecl, *ast.FuncDecl:
		return true
	}
	return false
}
