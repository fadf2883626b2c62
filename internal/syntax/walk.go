package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, following ownership edges
// only: the declarations that identifiers and operators resolve to are
// not visited.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		Walk(n.Cmd, v)

	// Commands
	case *AssignCmd:
		Walk(n.Name, v)
		Walk(n.X, v)

	case *CallCmd:
		Walk(n.Name, v)
		Walk(n.Arg, v)

	case *SeqCmd:
		for _, c := range n.List {
			Walk(c, v)
		}

	case *BlockCmd:
		Walk(n.Body, v)

	case *IfCmd:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *IfEitherCmd:
		Walk(n.Cond, v)
		Walk(n.Alt, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *WhileCmd:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *LetCmd:
		Walk(n.Decl, v)
		Walk(n.Body, v)

	// Declarations
	case *ConstDecl:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *VarDecl:
		Walk(n.Name, v)
		Walk(n.TypeName, v)

	case *SeqDecl:
		for _, d := range n.List {
			Walk(d, v)
		}

	// Expressions
	case *IntExpr:
		Walk(n.Lit, v)

	case *CharExpr:
		Walk(n.Lit, v)

	case *IdExpr:
		Walk(n.Name, v)

	case *UnaryExpr:
		Walk(n.Op, v)
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Op, v)
		Walk(n.Y, v)

	case *CallExpr:
		Walk(n.Name, v)
		Walk(n.Arg, v)

	// Parameters
	case *ExprParam:
		Walk(n.X, v)

	case *VarParam:
		Walk(n.Name, v)

	// Leaf nodes: SkipCmd, BadCmd, BadDecl, BadExpr, BlankParam, BadParam,
	// the built-in declarations and the terminals.
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
