package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w. Expression types
// and entity storage are included once the checker has filled them in.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints node under a label line.
func (p *printer) child(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

// typeSuffix renders the resolved type of x, if any.
func typeSuffix(x Expr) string {
	if t := x.Type(); t != nil {
		return " : " + t.Name
	}
	return ""
}

// entitySuffix renders the annotations of an entity declaration, if any.
func entitySuffix(d EntityDecl) string {
	var b strings.Builder
	if t := d.EntityType(); t != nil {
		b.WriteString(" : " + t.Name)
	}
	if s := d.Storage(); s != nil {
		b.WriteString(" @ " + s.String())
	}
	return b.String()
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		p.print(n.Cmd)
		p.indent--

	// Commands
	case *AssignCmd:
		p.printf("AssignCmd %s %s\n", n.pos, n.Name.Value)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallCmd:
		p.printf("CallCmd %s %s\n", n.pos, n.Name.Value)
		p.indent++
		p.print(n.Arg)
		p.indent--

	case *SeqCmd:
		p.printf("SeqCmd %s\n", n.pos)
		p.indent++
		for _, c := range n.List {
			p.print(c)
		}
		p.indent--

	case *BlockCmd:
		p.printf("BlockCmd %s\n", n.pos)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *IfCmd:
		p.printf("IfCmd %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		p.child("Else", n.Else)
		p.indent--

	case *IfEitherCmd:
		p.printf("IfEitherCmd %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Or", n.Alt)
		p.child("Then", n.Then)
		p.child("Else", n.Else)
		p.indent--

	case *WhileCmd:
		p.printf("WhileCmd %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Body", n.Body)
		p.indent--

	case *LetCmd:
		p.printf("LetCmd %s\n", n.pos)
		p.indent++
		p.child("Decl", n.Decl)
		p.child("Body", n.Body)
		p.indent--

	case *SkipCmd:
		if n.Explicit {
			p.printf("SkipCmd %s pass\n", n.pos)
		} else {
			p.printf("SkipCmd %s\n", n.pos)
		}

	case *BadCmd:
		p.printf("BadCmd %s\n", n.pos)

	// Declarations
	case *ConstDecl:
		p.printf("ConstDecl %s %s%s\n", n.pos, n.Name.Value, entitySuffix(n))
		p.indent++
		p.print(n.Value)
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s %s %s%s\n", n.pos, n.Name.Value, n.TypeName.Value, entitySuffix(n))

	case *SeqDecl:
		p.printf("SeqDecl %s\n", n.pos)
		p.indent++
		for _, d := range n.List {
			p.print(d)
		}
		p.indent--

	case *BadDecl:
		p.printf("BadDecl %s\n", n.pos)

	case *TypeDecl:
		p.printf("TypeDecl %s\n", n.Name)

	case *BuiltinConstDecl:
		p.printf("BuiltinConstDecl %s%s\n", n.Name, entitySuffix(n))

	case *UnaryOpDecl:
		p.printf("UnaryOpDecl %s %s -> %s\n", n.Op, n.Operand, n.Result)

	case *BinaryOpDecl:
		p.printf("BinaryOpDecl %s %s %s -> %s\n", n.Op, n.Left, n.Right, n.Result)

	case *FuncDecl:
		params := make([]string, len(n.Params))
		for i, f := range n.Params {
			params[i] = f.Type.Name
			if f.ByRef {
				params[i] = "var " + params[i]
			}
		}
		p.printf("FuncDecl %s(%s) -> %s\n", n.Name, strings.Join(params, ", "), n.Result)

	// Expressions
	case *IntExpr:
		p.printf("IntExpr %s %s%s\n", n.pos, n.Lit.Value, typeSuffix(n))

	case *CharExpr:
		p.printf("CharExpr %s %s%s\n", n.pos, n.Lit.Value, typeSuffix(n))

	case *IdExpr:
		p.printf("IdExpr %s %s%s\n", n.pos, n.Name.Value, typeSuffix(n))

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s%s\n", n.pos, n.Op.Value, typeSuffix(n))
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s%s\n", n.pos, n.Op.Value, typeSuffix(n))
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %s%s\n", n.pos, n.Name.Value, typeSuffix(n))
		p.indent++
		p.print(n.Arg)
		p.indent--

	case *BadExpr:
		p.printf("BadExpr %s%s\n", n.pos, typeSuffix(n))

	// Parameters
	case *ExprParam:
		p.printf("ExprParam %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *VarParam:
		p.printf("VarParam %s %s\n", n.pos, n.Name.Value)

	case *BlankParam:
		p.printf("BlankParam %s\n", n.pos)

	case *BadParam:
		p.printf("BadParam %s\n", n.pos)

	// Terminals
	case *Ident:
		p.printf("Ident %s %q\n", n.pos, n.Value)

	case *IntLit:
		p.printf("IntLit %s %s\n", n.pos, n.Value)

	case *CharLit:
		p.printf("CharLit %s %s\n", n.pos, n.Value)

	case *OpName:
		p.printf("OpName %s %s\n", n.pos, n.Value)

	default:
		p.printf("Unknown %T\n", n)
	}
}
