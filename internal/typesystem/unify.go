package typesystem

import "fmt"

// MismatchError describes why two types failed to unify.
type MismatchError struct {
	Expected Type
	Actual   Type
	Reason   string
}

func (e *MismatchError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s (%s)", e.Expected, e.Actual, e.Reason)
	}
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func mismatch(expected, actual Type, reason string) error {
	return &MismatchError{Expected: expected, Actual: actual, Reason: reason}
}

// Unify checks that actual can be used where expected is required.
// Unresolved types on either side match anything, and so does the error
// type (it has been reported already). Aliases are compared by their
// underlying types; tuple labels must agree when both sides name a field.
func Unify(expected, actual Type) error {
	if expected == nil || actual == nil {
		return nil
	}
	expected = UnwrapUnderlying(expected)
	actual = UnwrapUnderlying(actual)

	switch expected.(type) {
	case TDependent, TError:
		return nil
	}
	switch actual.(type) {
	case TDependent, TError:
		return nil
	}

	switch e := expected.(type) {
	case TCon:
		a, ok := actual.(TCon)
		if !ok || a.Name != e.Name {
			return mismatch(expected, actual, "")
		}
		return nil

	case TFunc:
		a, ok := actual.(TFunc)
		if !ok {
			return mismatch(expected, actual, "not a function")
		}
		if err := Unify(e.Input, a.Input); err != nil {
			return err
		}
		return Unify(e.Output, a.Output)

	case TTuple:
		a, ok := actual.(TTuple)
		if !ok {
			return mismatch(expected, actual, "not a tuple")
		}
		if len(e.Fields) != len(a.Fields) {
			return mismatch(expected, actual,
				fmt.Sprintf("expected %d elements, got %d", len(e.Fields), len(a.Fields)))
		}
		for i := range e.Fields {
			ef, af := e.Fields[i], a.Fields[i]
			if ef.Name != "" && af.Name != "" && ef.Name != af.Name {
				return mismatch(expected, actual,
					fmt.Sprintf("element %d is labelled '%s', expected '%s'", i, af.Name, ef.Name))
			}
			if err := Unify(ef.Type, af.Type); err != nil {
				return err
			}
		}
		return nil

	case TOneOf:
		a, ok := actual.(TOneOf)
		if !ok {
			return mismatch(expected, actual, "")
		}
		// Named oneofs are nominal.
		if e.Name != "" || a.Name != "" {
			if e.Name != a.Name {
				return mismatch(expected, actual, "")
			}
			return nil
		}
		if len(e.Elements) != len(a.Elements) {
			return mismatch(expected, actual, "different cases")
		}
		for i := range e.Elements {
			ee, ae := e.Elements[i], a.Elements[i]
			if ee.Name != ae.Name || (ee.ArgType == nil) != (ae.ArgType == nil) {
				return mismatch(expected, actual, "different cases")
			}
			if ee.ArgType != nil {
				if err := Unify(ee.ArgType, ae.ArgType); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return mismatch(expected, actual, "")
}
