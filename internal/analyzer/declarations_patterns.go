package analyzer

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// validateVarName checks that a destructuring name matches the shape of t.
// It reports the first mismatch and returns true; on success nothing is
// reported and t is left alone.
func (w *walker) validateVarName(t typesystem.Type, name ast.NamePattern) bool {
	// A simple name matches any type.
	if name.IsSimple() {
		return false
	}

	t = typesystem.UnwrapUnderlying(t)

	// Unresolved types are judged later.
	if typesystem.IsDependent(t) {
		return false
	}

	// A single-element oneof can be destructured like the tuple it carries.
	if oneOf, ok := t.(typesystem.TOneOf); ok && oneOf.HasSingleElement() && oneOf.Elements[0].ArgType != nil {
		t = typesystem.UnwrapUnderlying(oneOf.Elements[0].ArgType)
	}

	tuple, ok := t.(typesystem.TTuple)
	if !ok {
		w.addError(diagnostics.NewError(diagnostics.ErrD008, name.GetToken(), t.String()))
		return true
	}

	compound := name.(*ast.CompoundName)
	if len(compound.Elements) != len(tuple.Fields) {
		w.addError(diagnostics.NewError(diagnostics.ErrD009, name.GetToken(),
			t.String(), len(tuple.Fields), len(compound.Elements)))
		return true
	}

	for i, el := range compound.Elements {
		if w.validateVarName(tuple.Fields[i].Type, el) {
			return true
		}
	}
	return false
}
