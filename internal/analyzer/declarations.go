package analyzer

import (
	"fmt"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/typesystem"
)

func (w *walker) VisitImportDecl(d *ast.ImportDecl) {}

func (w *walker) VisitTypeAliasDecl(d *ast.TypeAliasDecl) {
	resolved, err := w.checker.ValidateType(d.AliasType)
	if err != nil {
		w.report(err, d.GetToken())
		return
	}
	if resolved != nil {
		d.AliasType = resolved
	}
}

func (w *walker) VisitVarDecl(d *ast.VarDecl) {
	if w.visitValueDecl(d) {
		return
	}

	// A destructuring name must line up with the shape of the variable's type.
	if d.Pattern != nil && w.validateVarName(d.GetType(), d.Pattern) {
		d.Pattern = nil
	}
}

func (w *walker) VisitFuncDecl(d *ast.FuncDecl) {
	w.visitValueDecl(d)
}

// Oneof cases are well-formed by construction.
func (w *walker) VisitOneOfElementDecl(d *ast.OneOfElementDecl) {}

func (w *walker) VisitArgDecl(d *ast.ArgDecl) {
	panic(fmt.Sprintf("analyzer: argument '%s' reached the declaration checker outside a parameter list", d.Name))
}

func (w *walker) VisitElementRefDecl(d *ast.ElementRefDecl) {
	if !typesystem.IsDependent(d.GetType()) {
		return
	}

	// The base's pattern was rejected and already reported.
	if d.FromPattern && d.Base != nil && d.Base.Pattern == nil {
		d.OverwriteType(typesystem.TError{})
		return
	}

	var baseType typesystem.Type = typesystem.TDependent{}
	if d.Base != nil {
		baseType = d.Base.GetType()
	}

	if t, ok := typesystem.TypeForPath(baseType, d.AccessPath); ok {
		d.OverwriteType(t)
		return
	}
	w.addError(diagnostics.NewError(diagnostics.ErrD001, d.GetToken(), d.Name, baseType.String()))
	d.OverwriteType(typesystem.TError{})
}

// visitValueDecl checks the part shared by variables and functions: the
// declared type, the initializer against it, and the attributes.
// It returns true when the declaration is unusable and dependent checks must stop.
func (w *walker) visitValueDecl(vd ast.ValueDecl) bool {
	resolved, err := w.checker.ValidateType(vd.GetType())
	if err != nil {
		w.report(err, vd.GetToken())
		vd.SetInit(nil)
		return true
	}
	if resolved != nil {
		vd.OverwriteType(resolved)
	}

	if init := vd.GetInit(); init == nil {
		// Without an initializer nothing else can establish the type.
		if typesystem.IsDependent(vd.GetType()) {
			return true
		}
	} else {
		var expected typesystem.Type
		if !typesystem.IsDependent(vd.GetType()) {
			expected = vd.GetType()
		}

		checked, err := w.checker.TypeCheckExpression(init, expected)
		if checked != nil {
			vd.SetInit(checked)
			init = checked
		}

		switch {
		case err != nil:
			w.report(err, init.GetToken())
			vd.OverwriteType(init.GetType())
			if _, ok := vd.(*ast.VarDecl); ok {
				w.addError(diagnostics.NewError(diagnostics.ErrD002, vd.GetToken(), vd.DeclName()))
			}
		case expected == nil:
			vd.OverwriteType(init.GetType())
		}
	}

	w.validateAttributes(vd)
	return false
}
