package ast

import (
	"strings"

	"github.com/funvibe/declcheck/internal/token"
)

// NamePattern is the binder written after 'var': a single name or a
// parenthesised, possibly nested, list of names.
type NamePattern interface {
	Node
	IsSimple() bool
	String() string
	namePatternNode()
}

// SimpleName binds one name and matches any type.
type SimpleName struct {
	Token token.Token
	Name  string
}

func (n *SimpleName) namePatternNode()     {}
func (n *SimpleName) IsSimple() bool       { return true }
func (n *SimpleName) TokenLiteral() string { return n.Token.Lexeme }
func (n *SimpleName) String() string       { return n.Name }
func (n *SimpleName) GetToken() token.Token {
	if n == nil {
		return token.Token{}
	}
	return n.Token
}

// CompoundName destructures a tuple: (a, (b, c)).
type CompoundName struct {
	Token    token.Token // The '(' token
	Elements []NamePattern
}

func (n *CompoundName) namePatternNode()     {}
func (n *CompoundName) IsSimple() bool       { return false }
func (n *CompoundName) TokenLiteral() string { return n.Token.Lexeme }
func (n *CompoundName) GetToken() token.Token {
	if n == nil {
		return token.Token{}
	}
	return n.Token
}

func (n *CompoundName) String() string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ElementPaths lists every simple name bound by p with the tuple path that
// reaches it. A simple pattern yields its own name with an empty path.
func ElementPaths(p NamePattern) []NamePath {
	var out []NamePath
	collectPaths(p, nil, &out)
	return out
}

// NamePath pairs a bound name with its access path.
type NamePath struct {
	Name *SimpleName
	Path []int
}

func collectPaths(p NamePattern, prefix []int, out *[]NamePath) {
	switch n := p.(type) {
	case *SimpleName:
		path := append([]int(nil), prefix...)
		*out = append(*out, NamePath{Name: n, Path: path})
	case *CompoundName:
		for i, el := range n.Elements {
			collectPaths(el, append(prefix[:len(prefix):len(prefix)], i), out)
		}
	}
}
