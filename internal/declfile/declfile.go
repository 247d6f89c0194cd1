// Package declfile loads declarations from a YAML document.
//
// A declaration file looks like:
//
//	decls:
//	  - kind: typealias
//	    name: Point
//	    type: "(x: Int, y: Int)"
//	  - kind: var
//	    name: "(a, b)"
//	    type: Point
//	    init: "(1, 2)"
//	  - kind: func
//	    name: "+"
//	    type: "(Int, Int) -> Int"
//	    params: [lhs, rhs]
//	    infix: {precedence: 100, associativity: left}
//
// Type, name-pattern and initializer strings use the grammar of package
// parser. A var whose name is a pattern also gets one element reference per
// bound name, placed right after it.
package declfile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/diagnostics"
	"github.com/funvibe/declcheck/internal/parser"
	"github.com/funvibe/declcheck/internal/token"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// Declaration kinds accepted in the "kind" field.
const (
	KindImport       = "import"
	KindTypeAlias    = "typealias"
	KindVar          = "var"
	KindFunc         = "func"
	KindOneOfElement = "oneof_element"
	KindElementRef   = "element_ref"
)

// File is the top-level document.
type File struct {
	Decls []Decl `yaml:"decls"`
}

// Decl is one entry of the decls list.
type Decl struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Type   string     `yaml:"type,omitempty"`
	Init   string     `yaml:"init,omitempty"`
	Infix  *InfixSpec `yaml:"infix,omitempty"`
	Params []string   `yaml:"params,omitempty"`
	Of     string     `yaml:"of,omitempty"`   // oneof_element: the owning oneof type
	Base   string     `yaml:"base,omitempty"` // element_ref: the variable it points into
	Path   []int      `yaml:"path,omitempty"` // element_ref: tuple indices
}

// InfixSpec is the infix attribute of an operator declaration.
type InfixSpec struct {
	Precedence    int    `yaml:"precedence"`
	Associativity string `yaml:"associativity,omitempty"`
}

// Load parses a declaration file. file names the source in diagnostics.
func Load(data []byte, file string) (*ast.Program, []*diagnostics.DiagnosticError) {
	l := &loader{file: file, vars: make(map[string]*ast.VarDecl)}
	program := &ast.Program{File: file}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		l.errorf(token.Token{}, "%s", yamlMessage(err))
		return program, l.errors
	}
	if len(doc.Content) == 0 {
		return program, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		l.errorf(posToken(root, ""), "top level must be a mapping with a 'decls' list")
		return program, l.errors
	}
	declsNode := mappingValue(root, "decls")
	if declsNode == nil {
		return program, nil
	}
	if declsNode.Kind != yaml.SequenceNode {
		l.errorf(posToken(declsNode, ""), "'decls' must be a list")
		return program, l.errors
	}

	for _, node := range declsNode.Content {
		program.Decls = append(program.Decls, l.loadDecl(node)...)
	}
	return program, l.errors
}

type loader struct {
	file   string
	vars   map[string]*ast.VarDecl
	errors []*diagnostics.DiagnosticError
}

func (l *loader) add(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = l.file
	}
	l.errors = append(l.errors, err)
}

func (l *loader) errorf(tok token.Token, format string, args ...interface{}) {
	l.add(diagnostics.NewError(diagnostics.ErrL001, tok, fmt.Sprintf(format, args...)))
}

func (l *loader) loadDecl(node *yaml.Node) []ast.Decl {
	var raw Decl
	if err := node.Decode(&raw); err != nil {
		l.errorf(posToken(node, ""), "%s", yamlMessage(err))
		return nil
	}
	nameTok := valueToken(node, "name", raw.Name)
	if nameTok.IsZero() {
		nameTok = posToken(node, raw.Name)
	}

	switch raw.Kind {
	case KindImport:
		return []ast.Decl{&ast.ImportDecl{Token: nameTok, Path: raw.Name}}

	case KindTypeAlias:
		t, ok := l.parseType(node, raw.Type)
		if !ok {
			return nil
		}
		return []ast.Decl{&ast.TypeAliasDecl{Token: nameTok, Name: raw.Name, AliasType: t}}

	case KindVar:
		return l.loadVar(node, raw, nameTok)

	case KindFunc:
		return l.loadFunc(node, raw, nameTok)

	case KindOneOfElement:
		owner := typesystem.TCon{Name: raw.Of}
		decl := &ast.OneOfElementDecl{}
		decl.Token, decl.Name = nameTok, raw.Name
		decl.Type = owner
		if raw.Type != "" {
			payload, ok := l.parseType(node, raw.Type)
			if !ok {
				return nil
			}
			decl.ArgType = payload
			decl.Type = typesystem.TFunc{Input: payload, Output: owner}
		}
		return []ast.Decl{decl}

	case KindElementRef:
		base, ok := l.vars[raw.Base]
		if !ok {
			l.errorf(valueToken(node, "base", raw.Base), "element reference '%s' points into unknown variable '%s'", raw.Name, raw.Base)
			return nil
		}
		ref := &ast.ElementRefDecl{Base: base, AccessPath: raw.Path}
		ref.Token, ref.Name = nameTok, raw.Name
		return []ast.Decl{ref}

	case "":
		l.errorf(posToken(node, ""), "declaration without 'kind'")
		return nil
	}

	l.add(diagnostics.NewError(diagnostics.ErrL002, valueToken(node, "kind", raw.Kind), raw.Kind))
	return nil
}

func (l *loader) loadVar(node *yaml.Node, raw Decl, nameTok token.Token) []ast.Decl {
	v := &ast.VarDecl{}
	v.Token, v.Name = nameTok, raw.Name
	if !l.fillValue(node, raw, &v.ValueDeclBase) {
		return nil
	}

	if strings.HasPrefix(strings.TrimSpace(raw.Name), "(") {
		pattern, errs := parser.ParsePattern(raw.Name, nameTok.Line, nameTok.Column)
		if len(errs) > 0 {
			for _, err := range errs {
				l.add(err)
			}
			return nil
		}
		v.Pattern = pattern
		v.Name = pattern.String()
	} else {
		l.vars[raw.Name] = v
	}

	decls := []ast.Decl{v}
	if v.Pattern != nil {
		for _, np := range ast.ElementPaths(v.Pattern) {
			ref := &ast.ElementRefDecl{Base: v, AccessPath: np.Path, FromPattern: true}
			ref.Token, ref.Name = np.Name.Token, np.Name.Name
			decls = append(decls, ref)
		}
	}
	return decls
}

func (l *loader) loadFunc(node *yaml.Node, raw Decl, nameTok token.Token) []ast.Decl {
	f := &ast.FuncDecl{}
	f.Token, f.Name = nameTok, raw.Name
	if !l.fillValue(node, raw, &f.ValueDeclBase) {
		return nil
	}

	var inputs []typesystem.TupleField
	if fn, ok := f.GetType().(typesystem.TFunc); ok {
		if tuple, ok := fn.Input.(typesystem.TTuple); ok {
			inputs = tuple.Fields
		}
	}
	for i, name := range raw.Params {
		arg := &ast.ArgDecl{}
		arg.Token, arg.Name = posToken(node, name), name
		if i < len(inputs) {
			arg.Type = inputs[i].Type
		}
		f.Params = append(f.Params, arg)
	}
	return []ast.Decl{f}
}

// fillValue parses the type, initializer and attributes shared by value declarations.
func (l *loader) fillValue(node *yaml.Node, raw Decl, base *ast.ValueDeclBase) bool {
	base.Type = typesystem.TDependent{}
	if raw.Type != "" {
		t, ok := l.parseType(node, raw.Type)
		if !ok {
			return false
		}
		base.Type = t
	}

	if raw.Init != "" {
		tok := valueToken(node, "init", raw.Init)
		init, errs := parser.ParseExpression(raw.Init, tok.Line, tok.Column)
		if len(errs) > 0 {
			for _, err := range errs {
				l.add(err)
			}
			return false
		}
		base.Init = init
	}

	if raw.Infix != nil {
		assoc, ok := parseAssociativity(raw.Infix.Associativity)
		if !ok {
			l.errorf(valueToken(node, "infix", ""), "unknown associativity '%s'", raw.Infix.Associativity)
			return false
		}
		base.Attributes.Infix = &ast.InfixData{Precedence: raw.Infix.Precedence, Associativity: assoc}
		base.Attributes.LSquareTok = keyToken(node, "infix")
	}
	return true
}

func (l *loader) parseType(node *yaml.Node, src string) (typesystem.Type, bool) {
	if src == "" {
		l.errorf(posToken(node, ""), "missing 'type'")
		return nil, false
	}
	tok := valueToken(node, "type", src)
	t, errs := parser.ParseType(src, tok.Line, tok.Column)
	if len(errs) > 0 {
		for _, err := range errs {
			l.add(err)
		}
		return nil, false
	}
	return t, true
}

func parseAssociativity(s string) (ast.Associativity, bool) {
	switch s {
	case "", "left":
		return ast.AssocLeft, true
	case "right":
		return ast.AssocRight, true
	case "none":
		return ast.AssocNone, true
	}
	return ast.AssocNone, false
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func keyToken(m *yaml.Node, key string) token.Token {
	if m.Kind != yaml.MappingNode {
		return token.Token{}
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return posToken(m.Content[i], key)
		}
	}
	return token.Token{}
}

// valueToken locates the scalar stored under key. Quoted scalars start one
// column after their opening quote.
func valueToken(m *yaml.Node, key, lexeme string) token.Token {
	v := mappingValue(m, key)
	if v == nil {
		return token.Token{}
	}
	tok := posToken(v, lexeme)
	if v.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		tok.Column++
	}
	return tok
}

func posToken(n *yaml.Node, lexeme string) token.Token {
	return token.Token{Type: token.IDENT_LOWER, Lexeme: lexeme, Literal: lexeme, Line: n.Line, Column: n.Column}
}

func yamlMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "yaml: ")
}
