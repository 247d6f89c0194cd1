package analyzer

import (
	"testing"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/typesystem"
)

func TestValidateTypeFailureDetachesInitializer(t *testing.T) {
	for _, plain := range []bool{false, true} {
		checker := &fakeChecker{invalid: map[string]bool{"Nope": true}, plainErr: plain}
		w, sink := newWalker(checker)

		v := newVar("x", typesystem.TCon{Name: "Nope"}, intLit(1))
		v.Pattern = pattern("a", "b")

		if !w.visitValueDecl(v) {
			t.Errorf("plain=%v: expected failure", plain)
		}
		if v.Init != nil {
			t.Errorf("plain=%v: initializer still attached", plain)
		}
		if checker.checked != 0 {
			t.Errorf("plain=%v: initializer was checked after type failure", plain)
		}
		if plain {
			expectCodes(t, sink)
		} else {
			expectCodes(t, sink, diagnostics.ErrT001)
		}
	}
}

func TestVarWithInvalidTypeSkipsPatternCheck(t *testing.T) {
	v := newVar("x", typesystem.TCon{Name: "Nope"}, nil)
	v.Pattern = pattern("a", "b")
	sink := checkDecl(&fakeChecker{invalid: map[string]bool{"Nope": true}}, v)
	expectCodes(t, sink, diagnostics.ErrT001)
	if v.Pattern == nil {
		t.Error("pattern detached although matching never ran")
	}
}

func TestNoInitializerAndDependentTypeFails(t *testing.T) {
	w, sink := newWalker(&fakeChecker{})
	v := newVar("x", typesystem.TDependent{}, nil)
	if !w.visitValueDecl(v) {
		t.Error("expected failure")
	}
	expectCodes(t, sink)

	// A nil type reads as dependent.
	f := newFunc("f", nil)
	if !w.visitValueDecl(f) {
		t.Error("expected failure for nil type")
	}
}

func TestNoInitializerWithConcreteTypeSucceeds(t *testing.T) {
	w, sink := newWalker(&fakeChecker{})
	v := newVar("x", tInt, nil)
	if w.visitValueDecl(v) {
		t.Error("unexpected failure")
	}
	expectCodes(t, sink)
}

func TestInitializerFailureAdoptsInitializerType(t *testing.T) {
	tests := []struct {
		name   string
		decl   ast.ValueDecl
		plain  bool
		expect []diagnostics.ErrorCode
	}{
		{"var", newVar("x", tInt, strLit("s")), false, []diagnostics.ErrorCode{diagnostics.ErrT003, diagnostics.ErrD002}},
		{"var plain error", newVar("x", tInt, strLit("s")), true, []diagnostics.ErrorCode{diagnostics.ErrD002}},
		{"func", func() ast.ValueDecl {
			f := newFunc("f", tInt)
			f.Init = strLit("s")
			return f
		}(), false, []diagnostics.ErrorCode{diagnostics.ErrT003}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, sink := newWalker(&fakeChecker{exprType: tString, failExprs: true, plainErr: tt.plain})
			if w.visitValueDecl(tt.decl) {
				t.Error("initializer failure must not fail the declaration")
			}
			if tt.decl.GetType() != tString {
				t.Errorf("type %s, want String", tt.decl.GetType())
			}
			if tt.decl.GetInit() == nil {
				t.Error("initializer detached")
			}
			expectCodes(t, sink, tt.expect...)
		})
	}
}

func TestInitializerFailureReportsAtLocations(t *testing.T) {
	w, sink := newWalker(&fakeChecker{exprType: tString, failExprs: true})
	init := strLit("s")
	v := newVar("x", tInt, init)
	w.visitValueDecl(v)

	errs := sink.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(errs))
	}
	if errs[0].Token != init.Token {
		t.Errorf("T003 at %+v, want the initializer", errs[0].Token)
	}
	if errs[1].Token != v.Token {
		t.Errorf("D002 at %+v, want the declaration", errs[1].Token)
	}
	if got := errs[1].Message(); got != "while converting initializer of variable 'x'" {
		t.Errorf("D002 message %q", got)
	}
}

func TestDependentTypeTakesInitializerType(t *testing.T) {
	checker := &fakeChecker{exprType: tString}
	w, sink := newWalker(checker)
	v := newVar("x", typesystem.TDependent{}, strLit("s"))
	if w.visitValueDecl(v) {
		t.Error("unexpected failure")
	}
	if v.GetType() != tString {
		t.Errorf("type %s, want String", v.GetType())
	}
	expectCodes(t, sink)
}

func TestSuccessfulCheckKeepsDeclaredType(t *testing.T) {
	checker := &fakeChecker{exprType: tString}
	w, _ := newWalker(checker)
	v := newVar("x", tInt, strLit("s"))
	w.visitValueDecl(v)
	if v.GetType() != tInt {
		t.Errorf("type %s, want Int", v.GetType())
	}
	if v.Init.GetType() != tInt {
		t.Errorf("initializer type %s, want the expected type", v.Init.GetType())
	}
}

func TestElementRefResolvesThroughBase(t *testing.T) {
	base := newVar("p", typesystem.Tuple(tInt, typesystem.Tuple(tString, tInt)), nil)
	ref := &ast.ElementRefDecl{Base: base, AccessPath: []int{1, 0}}
	ref.Token, ref.Name = tok("s", 2), "s"

	sink := checkDecl(&fakeChecker{}, ref)
	expectCodes(t, sink)
	if ref.GetType() != tString {
		t.Errorf("type %s, want String", ref.GetType())
	}
}

func TestElementRefWithResolvedTypeIsUntouched(t *testing.T) {
	ref := &ast.ElementRefDecl{Base: newVar("p", tInt, nil), AccessPath: []int{7}}
	ref.Name, ref.Type = "r", tString
	expectCodes(t, checkDecl(&fakeChecker{}, ref))
	if ref.GetType() != tString {
		t.Errorf("type %s, want String", ref.GetType())
	}
}

func TestElementRefWithDependentBaseStaysDependent(t *testing.T) {
	ref := &ast.ElementRefDecl{Base: newVar("p", typesystem.TDependent{}, nil), AccessPath: []int{3}}
	ref.Name = "r"
	expectCodes(t, checkDecl(&fakeChecker{}, ref))
	if !typesystem.IsDependent(ref.GetType()) {
		t.Errorf("type %s, want dependent", ref.GetType())
	}
}

func TestElementRefInvalidPath(t *testing.T) {
	tests := []struct {
		name string
		base typesystem.Type
		path []int
	}{
		{"index out of range", typesystem.Tuple(tInt, tInt), []int{2}},
		{"negative index", typesystem.Tuple(tInt), []int{-1}},
		{"not a tuple", tInt, []int{0}},
		{"too deep", typesystem.Tuple(tInt, tInt), []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &ast.ElementRefDecl{Base: newVar("p", tt.base, nil), AccessPath: tt.path}
			ref.Token, ref.Name = tok("r", 3), "r"

			w, sink := newWalker(&fakeChecker{})
			ref.Accept(w)
			expectCodes(t, sink, diagnostics.ErrD001)
			if !typesystem.IsError(ref.GetType()) {
				t.Errorf("type %s, want error type", ref.GetType())
			}
			if sink.Errors()[0].Token != ref.Token {
				t.Errorf("D001 at %+v, want the reference", sink.Errors()[0].Token)
			}

			// Once the type is Error the reference is resolved and stays quiet.
			ref.Accept(w)
			if sink.Len() != 1 {
				t.Errorf("D001 fired %d times, want once", sink.Len())
			}
		})
	}
}

func TestElementRefOfRejectedPatternIsQuiet(t *testing.T) {
	base := newVar("(a, b)", tInt, nil)
	bound := &ast.ElementRefDecl{Base: base, AccessPath: []int{0}, FromPattern: true}
	bound.Token, bound.Name = tok("a", 1), "a"
	explicit := &ast.ElementRefDecl{Base: base, AccessPath: []int{0}}
	explicit.Token, explicit.Name = tok("r", 2), "r"

	expectCodes(t, checkDecl(&fakeChecker{}, bound))
	if !typesystem.IsError(bound.GetType()) {
		t.Errorf("type %s, want error type", bound.GetType())
	}
	expectCodes(t, checkDecl(&fakeChecker{}, explicit), diagnostics.ErrD001)
}
