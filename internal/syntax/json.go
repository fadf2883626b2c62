package syntax

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

// FprintYAML writes the same tree as FprintJSON in YAML form.
func FprintYAML(w io.Writer, node Node) error {
	b, err := yaml.Marshal(toJSON(node))
	if err != nil {
		return errors.Wrap(err, "marshaling AST")
	}
	_, err = w.Write(b)
	return err
}

// object starts the map for a node of the given kind at pos.
func object(kind string, pos Pos) map[string]interface{} {
	return map[string]interface{}{
		"type": kind,
		"pos":  pos.String(),
	}
}

// typed adds the resolved type of x to m, if any.
func typed(m map[string]interface{}, x Expr) map[string]interface{} {
	if t := x.Type(); t != nil {
		m["typ"] = t.Name
	}
	return m
}

// annotated adds the type and storage of an entity declaration to m.
func annotated(m map[string]interface{}, d EntityDecl) map[string]interface{} {
	if t := d.EntityType(); t != nil {
		m["typ"] = t.Name
	}
	if s := d.Storage(); s != nil {
		m["storage"] = map[string]interface{}{
			"kind":   s.Kind.String(),
			"level":  s.Level,
			"offset": s.Offset,
			"size":   s.Size,
			"value":  s.Value,
		}
	}
	return m
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		m := object("Program", n.pos)
		m["cmd"] = toJSON(n.Cmd)
		return m

	// Commands
	case *AssignCmd:
		m := object("AssignCmd", n.pos)
		m["name"] = n.Name.Value
		m["value"] = toJSON(n.X)
		return m

	case *CallCmd:
		m := object("CallCmd", n.pos)
		m["name"] = n.Name.Value
		m["arg"] = toJSON(n.Arg)
		return m

	case *SeqCmd:
		m := object("SeqCmd", n.pos)
		m["list"] = mapSlice(n.List, func(c Command) interface{} { return toJSON(c) })
		return m

	case *BlockCmd:
		m := object("BlockCmd", n.pos)
		m["body"] = toJSON(n.Body)
		return m

	case *IfCmd:
		m := object("IfCmd", n.pos)
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		m["else"] = toJSON(n.Else)
		return m

	case *IfEitherCmd:
		m := object("IfEitherCmd", n.pos)
		m["cond"] = toJSON(n.Cond)
		m["or"] = toJSON(n.Alt)
		m["then"] = toJSON(n.Then)
		m["else"] = toJSON(n.Else)
		return m

	case *WhileCmd:
		m := object("WhileCmd", n.pos)
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)
		return m

	case *LetCmd:
		m := object("LetCmd", n.pos)
		m["decl"] = toJSON(n.Decl)
		m["body"] = toJSON(n.Body)
		return m

	case *SkipCmd:
		m := object("SkipCmd", n.pos)
		m["explicit"] = n.Explicit
		return m

	case *BadCmd:
		return object("BadCmd", n.pos)

	// Declarations
	case *ConstDecl:
		m := object("ConstDecl", n.pos)
		m["name"] = n.Name.Value
		m["value"] = toJSON(n.Value)
		return annotated(m, n)

	case *VarDecl:
		m := object("VarDecl", n.pos)
		m["name"] = n.Name.Value
		m["vartype"] = n.TypeName.Value
		return annotated(m, n)

	case *SeqDecl:
		m := object("SeqDecl", n.pos)
		m["list"] = mapSlice(n.List, func(d Decl) interface{} { return toJSON(d) })
		return m

	case *BadDecl:
		return object("BadDecl", n.pos)

	// Expressions
	case *IntExpr:
		m := object("IntExpr", n.pos)
		m["value"] = n.Lit.Value
		return typed(m, n)

	case *CharExpr:
		m := object("CharExpr", n.pos)
		m["value"] = n.Lit.Value
		return typed(m, n)

	case *IdExpr:
		m := object("IdExpr", n.pos)
		m["name"] = n.Name.Value
		return typed(m, n)

	case *UnaryExpr:
		m := object("UnaryExpr", n.pos)
		m["op"] = n.Op.Value
		m["x"] = toJSON(n.X)
		return typed(m, n)

	case *BinaryExpr:
		m := object("BinaryExpr", n.pos)
		m["op"] = n.Op.Value
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)
		return typed(m, n)

	case *CallExpr:
		m := object("CallExpr", n.pos)
		m["name"] = n.Name.Value
		m["arg"] = toJSON(n.Arg)
		return typed(m, n)

	case *BadExpr:
		return typed(object("BadExpr", n.pos), n)

	// Parameters
	case *ExprParam:
		m := object("ExprParam", n.pos)
		m["x"] = toJSON(n.X)
		return m

	case *VarParam:
		m := object("VarParam", n.pos)
		m["name"] = n.Name.Value
		return m

	case *BlankParam:
		return object("BlankParam", n.pos)

	case *BadParam:
		return object("BadParam", n.pos)

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
