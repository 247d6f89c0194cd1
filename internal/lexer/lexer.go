package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/declcheck/internal/token"
)

// Lexer splits the text of a type, name pattern or initializer into tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	return NewAt(input, 1, 1)
}

// NewAt creates a lexer whose first rune is reported at line:column.
// It is used for snippets embedded in a larger document.
func NewAt(input string, line, column int) *Lexer {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	l := &Lexer{input: input, line: line, column: column - 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Line: line, Column: col}
	case l.ch == ',':
		return l.single(token.COMMA)
	case l.ch == ':':
		return l.single(token.COLON)
	case l.ch == '(':
		return l.single(token.LPAREN)
	case l.ch == ')':
		return l.single(token.RPAREN)
	case l.ch == '{':
		return l.single(token.LBRACE)
	case l.ch == '}':
		return l.single(token.RBRACE)
	case l.ch == '"':
		return l.readString()
	case isDigit(l.ch):
		return l.readNumber()
	case isLetter(l.ch):
		ident := l.readIdentifier()
		return token.Token{Type: l.determineIdentifierType(ident), Lexeme: ident, Literal: ident, Line: line, Column: col}
	case token.IsOperatorChar(l.ch):
		op := l.readOperator()
		typ := token.OPERATOR
		switch op {
		case "->":
			typ = token.ARROW
		case "?":
			typ = token.QUESTION
		case "!":
			typ = token.BANG
		}
		return token.Token{Type: typ, Lexeme: op, Literal: op, Line: line, Column: col}
	}

	tok := token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Literal: string(l.ch), Line: line, Column: col}
	l.readChar()
	return tok
}

// Tokens lexes the whole input, EOF included.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) single(t token.TokenType) token.Token {
	lit := string(l.ch)
	tok := token.Token{Type: t, Lexeme: lit, Literal: lit, Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

func (l *Lexer) readString() token.Token {
	line, col := l.line, l.column
	position := l.position
	l.readChar() // opening quote
	for l.ch != '"' && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch != '"' {
		lexeme := l.input[position:l.position]
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "unterminated string", Line: line, Column: col}
	}
	l.readChar() // closing quote
	lexeme := l.input[position:l.position]
	value, err := strconv.Unquote(lexeme)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: err.Error(), Line: line, Column: col}
	}
	return token.Token{Type: token.STRING, Lexeme: lexeme, Literal: value, Line: line, Column: col}
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	position := l.position
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	val, err := strconv.ParseInt(lexeme, 0, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "integer overflow", Line: line, Column: col}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: val, Line: line, Column: col}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readOperator() string {
	position := l.position
	for token.IsOperatorChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) determineIdentifierType(ident string) token.TokenType {
	if len(ident) == 0 {
		return token.ILLEGAL
	}

	firstChar := ident[0]
	if 'A' <= firstChar && firstChar <= 'Z' {
		return token.IDENT_UPPER
	}

	// If it's lowercase, check if it's a keyword
	return token.LookupIdent(ident)
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}
