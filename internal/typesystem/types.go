package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all types in our system.
// The set of implementations is closed: every consumer switches over
// TDependent, TError, TCon, TFunc, TTuple and TOneOf explicitly.
type Type interface {
	String() string
	typeNode()
}

// TDependent is the placeholder for a type that has not been resolved yet.
type TDependent struct{}

func (TDependent) typeNode()      {}
func (TDependent) String() string { return "<<dependent type>>" }

// TError marks a type that failed to check. It has already been diagnosed.
type TError struct{}

func (TError) typeNode()      {}
func (TError) String() string { return "<<error type>>" }

// TCon represents a nominal or primitive type (e.g. Int, String, Point).
type TCon struct {
	Name           string
	UnderlyingType Type // For type aliases: the aliased type (nil for regular types)
}

func (TCon) typeNode()        {}
func (t TCon) String() string { return t.Name }

// TFunc represents a function type. Multiple parameters are passed as a
// tuple input: (Int, Int) -> Bool.
type TFunc struct {
	Input  Type
	Output Type
}

func (TFunc) typeNode() {}

func (t TFunc) String() string {
	in := t.Input.String()
	if _, ok := t.Input.(TFunc); ok {
		in = "(" + in + ")"
	}
	return fmt.Sprintf("%s -> %s", in, t.Output.String())
}

// TupleField is one positional element of a tuple, optionally labelled.
type TupleField struct {
	Name string
	Type Type
}

// TTuple represents a tuple type (e.g. (x: Int, y: Int)).
type TTuple struct {
	Fields []TupleField
}

func (TTuple) typeNode() {}

func (t TTuple) String() string {
	parts := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Name != "" {
			parts = append(parts, f.Name+": "+f.Type.String())
		} else {
			parts = append(parts, f.Type.String())
		}
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// OneOfElement is a case of a oneof type. ArgType is nil for payload-less cases.
type OneOfElement struct {
	Name    string
	ArgType Type
}

// TOneOf represents a tagged union (e.g. oneof Shape { Circle(Int), Empty }).
type TOneOf struct {
	Name     string
	Elements []OneOfElement
}

func (TOneOf) typeNode() {}

func (t TOneOf) String() string {
	if t.Name != "" {
		return t.Name
	}
	parts := make([]string, 0, len(t.Elements))
	for _, el := range t.Elements {
		if el.ArgType != nil {
			parts = append(parts, fmt.Sprintf("%s(%s)", el.Name, el.ArgType.String()))
		} else {
			parts = append(parts, el.Name)
		}
	}
	return fmt.Sprintf("oneof { %s }", strings.Join(parts, ", "))
}

// HasSingleElement reports whether the oneof behaves like a plain struct.
func (t TOneOf) HasSingleElement() bool {
	return len(t.Elements) == 1
}

// Tuple builds an unlabelled tuple type.
func Tuple(types ...Type) TTuple {
	fields := make([]TupleField, len(types))
	for i, t := range types {
		fields[i] = TupleField{Type: t}
	}
	return TTuple{Fields: fields}
}

// IsDependent reports whether t is the unresolved placeholder.
func IsDependent(t Type) bool {
	_, ok := t.(TDependent)
	return ok
}

// IsError reports whether t is the error sentinel.
func IsError(t Type) bool {
	_, ok := t.(TError)
	return ok
}

// UnwrapUnderlying follows TCon.UnderlyingType until reaching a non-alias type.
func UnwrapUnderlying(t Type) Type {
	for {
		tCon, ok := t.(TCon)
		if !ok || tCon.UnderlyingType == nil {
			return t
		}
		t = tCon.UnderlyingType
	}
}

// TypeForPath projects into t along path, one tuple index per step.
// A single-element oneof is looked through to its argument type.
// Projection through an unresolved type yields the unresolved type.
// It returns false if some step does not land on a tuple or is out of range.
func TypeForPath(t Type, path []int) (Type, bool) {
	if len(path) == 0 {
		return t, true
	}
	t = UnwrapUnderlying(t)
	if IsDependent(t) {
		return t, true
	}
	if oneOf, ok := t.(TOneOf); ok && oneOf.HasSingleElement() && oneOf.Elements[0].ArgType != nil {
		t = UnwrapUnderlying(oneOf.Elements[0].ArgType)
	}
	tuple, ok := t.(TTuple)
	if !ok {
		return nil, false
	}
	idx := path[0]
	if idx < 0 || idx >= len(tuple.Fields) {
		return nil, false
	}
	return TypeForPath(tuple.Fields[idx].Type, path[1:])
}
