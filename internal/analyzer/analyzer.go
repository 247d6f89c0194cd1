package analyzer

import (
	"errors"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// TypeChecker is the type-level collaborator of the declaration checker.
//
// ValidateType resolves t (aliases, placeholders) and returns the resolved
// type. A non-nil error means the type cannot be made concrete.
//
// TypeCheckExpression checks expr, unifying it with expected when expected is
// non-nil. It returns the expression to keep in the tree (possibly rewritten).
// On success the returned expression's type is authoritative; on failure its
// type is the checker's best guess.
//
// Errors that are *diagnostics.DiagnosticError are forwarded to the sink;
// other errors count as failures that were already reported elsewhere.
type TypeChecker interface {
	ValidateType(t typesystem.Type) (typesystem.Type, error)
	TypeCheckExpression(expr ast.Expression, expected typesystem.Type) (ast.Expression, error)
}

// HeaderCollector is implemented by type checkers that need to see every
// declaration of a program before any of them is checked (forward references).
type HeaderCollector interface {
	CollectHeader(decl ast.Decl) error
}

// Analyzer checks every declaration of a program.
type Analyzer struct {
	checker TypeChecker
}

// New creates a new Analyzer around a type checker.
func New(checker TypeChecker) *Analyzer {
	return &Analyzer{checker: checker}
}

// Analyze checks the declarations of program in order and returns all
// diagnostics. A failing declaration never stops its siblings from being checked.
func (a *Analyzer) Analyze(program *ast.Program) []*diagnostics.DiagnosticError {
	sink := diagnostics.NewCollector(program.File)
	a.AnalyzeHeaders(program, sink)
	a.AnalyzeBodies(program, sink)
	return sink.Errors()
}

// AnalyzeHeaders lets the type checker register names before bodies are checked.
func (a *Analyzer) AnalyzeHeaders(program *ast.Program, sink diagnostics.Sink) {
	hc, ok := a.checker.(HeaderCollector)
	if !ok {
		return
	}
	for _, decl := range program.Decls {
		if err := hc.CollectHeader(decl); err != nil {
			report(sink, err, decl.GetToken())
		}
	}
}

// AnalyzeBodies runs the declaration checker over every declaration.
func (a *Analyzer) AnalyzeBodies(program *ast.Program, sink diagnostics.Sink) {
	dc := NewDeclChecker(a.checker, sink)
	for _, decl := range program.Decls {
		dc.Check(decl)
	}
}

// DeclChecker type-checks single declarations.
type DeclChecker struct {
	w *walker
}

func NewDeclChecker(checker TypeChecker, sink diagnostics.Sink) *DeclChecker {
	return &DeclChecker{w: &walker{checker: checker, sink: sink}}
}

// Check validates one declaration, correcting it in place where needed.
// It must be called once per declaration and never on an *ast.ArgDecl.
func (c *DeclChecker) Check(decl ast.Decl) {
	decl.Accept(c.w)
}

type walker struct {
	checker TypeChecker
	sink    diagnostics.Sink
}

func (w *walker) addError(err *diagnostics.DiagnosticError) {
	w.sink.Add(err)
}

// report forwards collaborator failures that carry a diagnostic.
// Diagnostics without a position are anchored at tok.
func (w *walker) report(err error, tok token.Token) {
	report(w.sink, err, tok)
}

func report(sink diagnostics.Sink, err error, tok token.Token) {
	var de *diagnostics.DiagnosticError
	if !errors.As(err, &de) {
		return
	}
	if de.Token.IsZero() {
		de.Token = tok
	}
	sink.Add(de)
}
