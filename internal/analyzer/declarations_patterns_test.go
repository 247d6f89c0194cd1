package analyzer

import (
	"testing"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/typesystem"
)

func TestSimpleNameMatchesAnything(t *testing.T) {
	w, sink := newWalker(&fakeChecker{})
	name := &ast.SimpleName{Token: tok("x", 1), Name: "x"}
	for _, typ := range []typesystem.Type{tInt, typesystem.Tuple(tInt), typesystem.TError{}, typesystem.TDependent{}} {
		if w.validateVarName(typ, name) {
			t.Errorf("simple name rejected %s", typ)
		}
	}
	expectCodes(t, sink)
}

func TestDependentTypeDefersMatching(t *testing.T) {
	w, sink := newWalker(&fakeChecker{})
	if w.validateVarName(typesystem.TDependent{}, pattern("a", "b", "c")) {
		t.Error("dependent type rejected")
	}
	nested := typesystem.Tuple(tInt, typesystem.TDependent{})
	if w.validateVarName(nested, pattern("a", pattern("b", "c"))) {
		t.Error("nested dependent type rejected")
	}
	expectCodes(t, sink)
}

func TestPatternCountMismatch(t *testing.T) {
	typ := typesystem.Tuple(tInt, tInt, tInt)
	v := newVar("v", typ, nil)
	v.Pattern = pattern("a", "b")

	sink := checkDecl(&fakeChecker{}, v)
	expectCodes(t, sink, diagnostics.ErrD009)

	err := sink.Errors()[0]
	if len(err.Args) != 3 || err.Args[1] != 3 || err.Args[2] != 2 {
		t.Errorf("D009 payload %v, want [type 3 2]", err.Args)
	}
	if want := "name specifier has wrong number of elements for type '(Int, Int, Int)': expected 3, got 2"; err.Message() != want {
		t.Errorf("message %q, want %q", err.Message(), want)
	}
	if v.Pattern != nil {
		t.Error("pattern not detached")
	}
	if v.GetType().String() != "(Int, Int, Int)" {
		t.Errorf("type changed to %s", v.GetType())
	}
}

func TestNestedPatternMatches(t *testing.T) {
	typ := typesystem.Tuple(tInt, typesystem.Tuple(tInt, tString))
	v := newVar("v", typ, nil)
	p := pattern("a", pattern("b", "c"))
	v.Pattern = p

	sink := checkDecl(&fakeChecker{}, v)
	expectCodes(t, sink)
	if v.Pattern != p {
		t.Error("pattern replaced")
	}
	if v.Pattern.String() != "(a, (b, c))" {
		t.Errorf("pattern changed to %s", v.Pattern)
	}
}

func TestPatternAgainstNonTuple(t *testing.T) {
	p := pattern("a", "b")
	v := newVar("v", tInt, nil)
	v.Pattern = p

	sink := checkDecl(&fakeChecker{}, v)
	expectCodes(t, sink, diagnostics.ErrD008)
	if sink.Errors()[0].Token != p.Token {
		t.Errorf("D008 at %+v, want the pattern", sink.Errors()[0].Token)
	}
	if v.Pattern != nil {
		t.Error("pattern not detached")
	}
}

func TestNestedMismatchDetachesWholePattern(t *testing.T) {
	typ := typesystem.Tuple(tInt, typesystem.Tuple(tInt, tString))
	inner := pattern("b", "c", "d")
	v := newVar("v", typ, nil)
	v.Pattern = pattern("a", inner)

	sink := checkDecl(&fakeChecker{}, v)
	expectCodes(t, sink, diagnostics.ErrD009)
	if sink.Errors()[0].Token != inner.Token {
		t.Errorf("D009 at %+v, want the inner pattern", sink.Errors()[0].Token)
	}
	if v.Pattern != nil {
		t.Error("pattern not detached")
	}
	if len(inner.Elements) != 3 {
		t.Error("inner pattern modified")
	}
}

func TestMatchingStopsAtFirstMismatch(t *testing.T) {
	typ := typesystem.Tuple(tInt, tString)
	w, sink := newWalker(&fakeChecker{})
	if !w.validateVarName(typ, pattern(pattern("a"), pattern("b"))) {
		t.Fatal("expected mismatch")
	}
	expectCodes(t, sink, diagnostics.ErrD008)
}

func TestMatchingLooksThroughAliases(t *testing.T) {
	point := typesystem.TCon{Name: "Point", UnderlyingType: typesystem.Tuple(tInt, tInt)}
	w, sink := newWalker(&fakeChecker{})
	if w.validateVarName(point, pattern("x", "y")) {
		t.Error("alias of a pair rejected")
	}
	if !w.validateVarName(point, pattern("x", "y", "z")) {
		t.Error("alias of a pair accepted three names")
	}
	expectCodes(t, sink, diagnostics.ErrD009)
	if got := sink.Errors()[0].Args[0]; got != "(Int, Int)" {
		t.Errorf("D009 type %v, want the underlying tuple", got)
	}
}

func TestSingleElementOneOf(t *testing.T) {
	wrapper := func(arg typesystem.Type) typesystem.TOneOf {
		return typesystem.TOneOf{Name: "Wrapper", Elements: []typesystem.OneOfElement{{Name: "Wrap", ArgType: arg}}}
	}

	tests := []struct {
		name    string
		typ     typesystem.Type
		pattern *ast.CompoundName
		expect  []diagnostics.ErrorCode
	}{
		{"payload tuple of matching arity", wrapper(typesystem.Tuple(tInt, tString)), pattern("a", "b"), nil},
		{"payload one-element tuple", wrapper(typesystem.Tuple(tInt)), pattern("x"), nil},
		{"payload tuple of wrong arity", wrapper(typesystem.Tuple(tInt, tString)), pattern("a"), []diagnostics.ErrorCode{diagnostics.ErrD009}},
		{"payload not a tuple", wrapper(tInt), pattern("x"), []diagnostics.ErrorCode{diagnostics.ErrD008}},
		{"no payload", wrapper(nil), pattern("x"), []diagnostics.ErrorCode{diagnostics.ErrD008}},
		{"two elements", typesystem.TOneOf{Name: "Either", Elements: []typesystem.OneOfElement{
			{Name: "L", ArgType: typesystem.Tuple(tInt)}, {Name: "R", ArgType: typesystem.Tuple(tInt)},
		}}, pattern("x"), []diagnostics.ErrorCode{diagnostics.ErrD008}},
		{"through alias", typesystem.TCon{Name: "W", UnderlyingType: wrapper(typesystem.Tuple(tInt, tInt))}, pattern("a", "b"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVar("v", tt.typ, nil)
			v.Pattern = tt.pattern
			sink := checkDecl(&fakeChecker{}, v)
			expectCodes(t, sink, tt.expect...)
			if (v.Pattern == nil) != (len(tt.expect) > 0) {
				t.Errorf("pattern detached = %v", v.Pattern == nil)
			}
			if v.GetType().String() != tt.typ.String() {
				t.Errorf("type changed to %s", v.GetType())
			}
		})
	}
}

func TestSingleElementOneOfNonTupleReportsPayloadType(t *testing.T) {
	typ := typesystem.TOneOf{Name: "Wrapper", Elements: []typesystem.OneOfElement{{Name: "Wrap", ArgType: tInt}}}
	w, sink := newWalker(&fakeChecker{})
	w.validateVarName(typ, pattern("x"))
	expectCodes(t, sink, diagnostics.ErrD008)
	if got := sink.Errors()[0].Message(); got != "name specifier matches non-tuple type 'Int'" {
		t.Errorf("message %q", got)
	}
}
