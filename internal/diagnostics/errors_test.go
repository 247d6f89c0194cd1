package diagnostics

import (
	"testing"

	"github.com/funvibe/declcheck/internal/token"
)

func TestErrorCodeNames(t *testing.T) {
	tests := []struct {
		code ErrorCode
		name string
	}{
		{ErrD001, "invalid_index_in_element_ref"},
		{ErrD002, "while_converting_var_init"},
		{ErrD003, "invalid_arg_count_for_operator"},
		{ErrD004, "invalid_infix_left_input"},
		{ErrD005, "infix_left_not_an_operator"},
		{ErrD006, "infix_left_invalid_on_decls"},
		{ErrD007, "binops_infix_left"},
		{ErrD008, "name_matches_nontuple"},
		{ErrD009, "varname_element_count_mismatch"},
		{ErrorCode("X999"), "X999"},
	}
	for _, tt := range tests {
		if got := tt.code.Name(); got != tt.name {
			t.Errorf("%s.Name() = %q, want %q", tt.code, got, tt.name)
		}
	}
}

func TestDiagnosticErrorRendering(t *testing.T) {
	tok := token.Token{Type: token.IDENT_LOWER, Lexeme: "x", Line: 3, Column: 7}

	err := NewError(ErrD009, tok, "(Int, Int, Int)", 3, 2)
	err.File = "a.decl.yaml"
	want := "a.decl.yaml:3:7: [D009] name specifier has wrong number of elements for type '(Int, Int, Int)': expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %q\nwant      %q", err.Error(), want)
	}

	bare := NewError(ErrL001, token.Token{}, "bad")
	if got := bare.Error(); got != "[L001] malformed declaration file: bad" {
		t.Errorf("Error() without position = %q", got)
	}

	unknown := &DiagnosticError{Code: "X1", Args: []interface{}{"free text"}}
	if got := unknown.Message(); got != "free text" {
		t.Errorf("Message() for unknown code = %q", got)
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector("f.decl.yaml")
	c.Add(nil)
	c.Add(NewError(ErrD007, token.Token{}, "+"))
	c.Add(&DiagnosticError{Code: ErrD007, File: "other.decl.yaml"})
	c.Add(NewError(ErrD003, token.Token{}, "+"))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.Count(ErrD007) != 2 || c.Count(ErrD001) != 0 {
		t.Errorf("Count mismatch: D007=%d D001=%d", c.Count(ErrD007), c.Count(ErrD001))
	}
	if c.Errors()[0].File != "f.decl.yaml" || c.Errors()[1].File != "other.decl.yaml" {
		t.Errorf("files not stamped correctly: %q, %q", c.Errors()[0].File, c.Errors()[1].File)
	}
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
}
