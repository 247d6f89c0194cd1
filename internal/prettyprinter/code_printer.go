package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/typesystem"
)

// --- Code Printer (one declaration per line, types as checked) ---

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders every declaration of program.
func Print(program *ast.Program) string {
	p := NewCodePrinter()
	for _, decl := range program.Decls {
		p.PrintDecl(decl)
	}
	return p.String()
}

func (p *CodePrinter) PrintDecl(decl ast.Decl) {
	if decl == nil {
		return
	}
	p.writeIndent()
	decl.Accept(p)
	p.writeln()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) VisitImportDecl(d *ast.ImportDecl) {
	p.write("import " + d.Path)
}

func (p *CodePrinter) VisitTypeAliasDecl(d *ast.TypeAliasDecl) {
	p.write("typealias " + d.Name + " = ")
	p.writeType(d.AliasType)
}

func (p *CodePrinter) VisitVarDecl(d *ast.VarDecl) {
	name := d.Name
	if d.Pattern != nil {
		name = d.Pattern.String()
	}
	p.write("var ")
	p.valueDecl(name, d)
}

func (p *CodePrinter) VisitFuncDecl(d *ast.FuncDecl) {
	p.write("func ")
	p.valueDecl(d.Name, d)
	if len(d.Params) == 0 {
		return
	}
	p.indent++
	for _, param := range d.Params {
		p.writeln()
		p.writeIndent()
		param.Accept(p)
	}
	p.indent--
}

func (p *CodePrinter) VisitOneOfElementDecl(d *ast.OneOfElementDecl) {
	p.write("case ")
	p.valueDecl(d.Name, d)
}

func (p *CodePrinter) VisitArgDecl(d *ast.ArgDecl) {
	p.write("arg ")
	p.valueDecl(d.Name, d)
}

func (p *CodePrinter) VisitElementRefDecl(d *ast.ElementRefDecl) {
	p.write("ref " + d.Name + " = ")
	if d.Base != nil {
		p.write(d.Base.Name)
	} else {
		p.write("<?>")
	}
	for _, idx := range d.AccessPath {
		p.write("." + strconv.Itoa(idx))
	}
	p.write(": ")
	p.writeType(d.GetType())
}

func (p *CodePrinter) valueDecl(name string, d ast.ValueDecl) {
	p.write(name + ": ")
	p.writeType(d.GetType())
	if init := d.GetInit(); init != nil {
		p.write(" = " + init.String())
	}
	if attrs := d.Attrs(); attrs.IsInfix() {
		p.write(" [infix_" + attrs.Infix.Associativity.String() + "(" + strconv.Itoa(attrs.Infix.Precedence) + ")]")
	}
}

func (p *CodePrinter) writeType(t typesystem.Type) {
	if t == nil {
		p.write("<?>")
		return
	}
	// Resolved aliases print as their name; the underlying type follows once.
	s := t.String()
	if con, ok := t.(typesystem.TCon); ok && con.UnderlyingType != nil {
		s += " (= " + con.UnderlyingType.String() + ")"
	}
	p.write(s)
}
