package symbols

import (
	"testing"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/config"
	"github.com/funvibe/declcheck/internal/typesystem"
)

func TestPreludeHasBuiltins(t *testing.T) {
	st := NewSymbolTable()
	for _, name := range config.BuiltinTypeNames {
		sym, ok := st.FindType(name)
		if !ok {
			t.Errorf("builtin %s not found", name)
			continue
		}
		if sym.IsTypeAlias() {
			t.Errorf("builtin %s is an alias", name)
		}
	}
	if !st.IsGlobalScope() || st.Outer() == nil || st.Outer().IsGlobalScope() {
		t.Error("global scope should sit on top of the prelude")
	}
}

func TestDefineAndShadow(t *testing.T) {
	st := NewSymbolTable()
	if !st.DefineType("Int", typesystem.Tuple(), nil) {
		t.Error("user scope may shadow a builtin")
	}
	if st.DefineType("Int", nil, nil) {
		t.Error("duplicate type accepted")
	}

	v := &ast.VarDecl{}
	v.Name, v.Type = "x", typesystem.TCon{Name: "Int"}
	if !st.DefineValue(v) || st.DefineValue(v) {
		t.Error("value definition should succeed once")
	}

	c := &ast.OneOfElementDecl{}
	c.Name = "Some"
	st.DefineValue(c)
	if sym, _ := st.FindValue("Some"); sym.Kind != ConstructorSymbol {
		t.Errorf("oneof case kind %v, want constructor", sym.Kind)
	}
}

func TestValueTypeIsReadLive(t *testing.T) {
	st := NewSymbolTable()
	v := &ast.VarDecl{}
	v.Name = "x"
	st.DefineValue(v)

	sym, _ := st.FindValue("x")
	if !typesystem.IsDependent(sym.Type()) {
		t.Errorf("type %s, want dependent", sym.Type())
	}
	v.OverwriteType(typesystem.TCon{Name: "String"})
	if sym.Type().String() != "String" {
		t.Errorf("type %s, want String", sym.Type())
	}
}

func TestSetAliasTarget(t *testing.T) {
	st := NewEnclosedSymbolTable(NewSymbolTable(), ScopeGlobal)
	st.Outer().DefineType("Point", typesystem.TCon{Name: "Pair"}, nil)
	st.SetAliasTarget("Point", typesystem.Tuple(typesystem.TCon{Name: "Int"}))

	sym, ok := st.FindType("Point")
	if !ok || !sym.IsTypeAlias() {
		t.Fatal("Point should be an alias")
	}
	if sym.UnderlyingType.String() != "(Int)" {
		t.Errorf("underlying %s, want (Int)", sym.UnderlyingType)
	}
	if sym.Type().String() != "Point" {
		t.Errorf("Type() = %s", sym.Type())
	}
}
