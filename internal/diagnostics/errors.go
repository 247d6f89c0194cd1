package diagnostics

import (
	"fmt"

	"github.com/funvibe/declcheck/internal/token"
)

// ErrorCode identifies a diagnostic kind.
type ErrorCode string

const (
	// Declaration checker
	ErrD001 ErrorCode = "D001" // invalid_index_in_element_ref
	ErrD002 ErrorCode = "D002" // while_converting_var_init
	ErrD003 ErrorCode = "D003" // invalid_arg_count_for_operator
	ErrD004 ErrorCode = "D004" // invalid_infix_left_input
	ErrD005 ErrorCode = "D005" // infix_left_not_an_operator
	ErrD006 ErrorCode = "D006" // infix_left_invalid_on_decls
	ErrD007 ErrorCode = "D007" // binops_infix_left
	ErrD008 ErrorCode = "D008" // name_matches_nontuple
	ErrD009 ErrorCode = "D009" // varname_element_count_mismatch

	// Type checker
	ErrT001 ErrorCode = "T001" // undeclared_type
	ErrT002 ErrorCode = "T002" // undeclared_identifier
	ErrT003 ErrorCode = "T003" // type_mismatch
	ErrT004 ErrorCode = "T004" // duplicate_declaration
	ErrT005 ErrorCode = "T005" // recursive_type_alias

	// Parsing of type / pattern / expression text
	ErrP001 ErrorCode = "P001" // unexpected_token
	ErrP002 ErrorCode = "P002" // trailing_input

	// Declaration file loading
	ErrL001 ErrorCode = "L001" // malformed_decl_file
	ErrL002 ErrorCode = "L002" // unknown_decl_kind
)

type errorInfo struct {
	name     string
	template string
}

var errorInfos = map[ErrorCode]errorInfo{
	ErrD001: {"invalid_index_in_element_ref", "invalid index in element reference '%s' into value of type '%s'"},
	ErrD002: {"while_converting_var_init", "while converting initializer of variable '%s'"},
	ErrD003: {"invalid_arg_count_for_operator", "operator '%s' must take one or two arguments"},
	ErrD004: {"invalid_infix_left_input", "infix_left attribute on '%s' requires a function taking two arguments"},
	ErrD005: {"infix_left_not_an_operator", "infix_left attribute on '%s' which is not an operator"},
	ErrD006: {"infix_left_invalid_on_decls", "infix_left attribute on '%s' is only valid on var and func declarations"},
	ErrD007: {"binops_infix_left", "binary operator '%s' must have an infix_left attribute"},
	ErrD008: {"name_matches_nontuple", "name specifier matches non-tuple type '%s'"},
	ErrD009: {"varname_element_count_mismatch", "name specifier has wrong number of elements for type '%s': expected %d, got %d"},

	ErrT001: {"undeclared_type", "undeclared type '%s'"},
	ErrT002: {"undeclared_identifier", "use of undeclared identifier '%s'"},
	ErrT003: {"type_mismatch", "cannot convert value of type '%s' to type '%s'"},
	ErrT004: {"duplicate_declaration", "'%s' is declared more than once"},
	ErrT005: {"recursive_type_alias", "type alias '%s' refers to itself"},

	ErrP001: {"unexpected_token", "unexpected token '%s', expected %s"},
	ErrP002: {"trailing_input", "unexpected '%s' after end of %s"},

	ErrL001: {"malformed_decl_file", "malformed declaration file: %s"},
	ErrL002: {"unknown_decl_kind", "unknown declaration kind '%s'"},
}

// Name returns the snake_case kind of the code, e.g. "binops_infix_left".
func (c ErrorCode) Name() string {
	if info, ok := errorInfos[c]; ok {
		return info.name
	}
	return string(c)
}

// DiagnosticError is a single problem found in user input, anchored at a token.
type DiagnosticError struct {
	Code  ErrorCode
	Token token.Token
	File  string
	Args  []interface{}
}

// NewError builds a diagnostic whose message is the code's template applied to args.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Args: args}
}

// Name returns the diagnostic kind.
func (e *DiagnosticError) Name() string {
	return e.Code.Name()
}

// Message renders the diagnostic text without position.
func (e *DiagnosticError) Message() string {
	info, ok := errorInfos[e.Code]
	if !ok {
		return fmt.Sprint(e.Args...)
	}
	return fmt.Sprintf(info.template, e.Args...)
}

func (e *DiagnosticError) Error() string {
	prefix := ""
	if e.File != "" {
		prefix = e.File + ":"
	}
	if e.Token.Line > 0 {
		prefix += fmt.Sprintf("%d:%d:", e.Token.Line, e.Token.Column)
	}
	if prefix != "" {
		prefix += " "
	}
	return fmt.Sprintf("%s[%s] %s", prefix, e.Code, e.Message())
}
