package inference

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/config"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// TypeCheckExpression infers the type of expr and, when expected is set,
// checks it against expected. On success expr's type becomes expected.
func (c *Checker) TypeCheckExpression(expr ast.Expression, expected typesystem.Type) (ast.Expression, error) {
	actual, err := c.infer(expr)
	if err != nil {
		return expr, err
	}
	if expected == nil {
		return expr, nil
	}
	if uerr := typesystem.Unify(expected, actual); uerr != nil {
		return expr, diagnostics.NewError(diagnostics.ErrT003, expr.GetToken(), actual.String(), expected.String())
	}
	expr.SetType(expected)
	return expr, nil
}

// infer computes and stores the type of expr. On error the stored type is
// the best guess (TError for unknown names).
func (c *Checker) infer(expr ast.Expression) (typesystem.Type, error) {
	var (
		t   typesystem.Type
		err error
	)

	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		t = typesystem.TCon{Name: config.IntTypeName}

	case *ast.StringLiteral:
		t = typesystem.TCon{Name: config.StringTypeName}

	case *ast.BooleanLiteral:
		t = typesystem.TCon{Name: config.BoolTypeName}

	case *ast.Identifier:
		sym, ok := c.symbolTable.FindValue(e.Value)
		if !ok {
			t = typesystem.TError{}
			err = diagnostics.NewError(diagnostics.ErrT002, e.GetToken(), e.Value)
			break
		}
		if typesystem.IsError(sym.Type()) {
			t = typesystem.TError{}
			break
		}
		// The declaration may not have been checked yet.
		resolved, rerr := c.ValidateType(sym.Type())
		if rerr != nil {
			t = typesystem.TError{}
			err = ErrAlreadyDiagnosed
			break
		}
		t = resolved

	case *ast.TupleExpression:
		fields := make([]typesystem.TupleField, len(e.Elements))
		for i, el := range e.Elements {
			ft, ferr := c.infer(el.Value)
			if ferr != nil && err == nil {
				err = ferr
			}
			fields[i] = typesystem.TupleField{Name: el.Name, Type: ft}
		}
		t = typesystem.TTuple{Fields: fields}

	default:
		t = typesystem.TDependent{}
	}

	expr.SetType(t)
	return t, err
}
