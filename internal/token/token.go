package token

import "strings"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers + literals
	IDENT_LOWER TokenType = "IDENT_LOWER" // x, value, _tmp
	IDENT_UPPER TokenType = "IDENT_UPPER" // Int, Point, Some
	OPERATOR    TokenType = "OPERATOR"    // +, <=>, ||
	INT         TokenType = "INT"
	STRING      TokenType = "STRING"

	// Delimiters
	COMMA  TokenType = ","
	COLON  TokenType = ":"
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"

	ARROW    TokenType = "->"
	QUESTION TokenType = "?" // dependent (unresolved) type placeholder
	BANG     TokenType = "!" // error type

	// Keywords
	TRUE  TokenType = "TRUE"
	FALSE TokenType = "FALSE"
	ONEOF TokenType = "ONEOF"
)

// Token is a lexeme together with its source position.
// Line and Column are 1-based; the zero Token means "no location".
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

// IsZero reports whether the token carries no position.
func (t Token) IsZero() bool {
	return t.Line == 0 && t.Column == 0 && t.Lexeme == ""
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"oneof": ONEOF,
}

// LookupIdent checks the keywords table for a lowercase identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT_LOWER
}

// OperatorChars are the runes an operator name may start with.
const OperatorChars = "/=-+*%<>!&|^~?.@"

// IsOperatorChar reports whether ch can appear in an operator name.
func IsOperatorChar(ch rune) bool {
	return ch != 0 && strings.ContainsRune(OperatorChars, ch)
}

// IsOperatorName reports whether a declared name spells an operator.
// Only the first rune is inspected: "+" and "<=>" are operators, "plus" is not.
func IsOperatorName(name string) bool {
	for _, r := range name {
		return IsOperatorChar(r)
	}
	return false
}
