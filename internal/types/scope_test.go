package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/tamc/internal/syntax"
)

func newVar(name string) *syntax.VarDecl {
	return &syntax.VarDecl{Name: &syntax.Ident{Value: name}}
}

func TestScopeInsertAndLookup(t *testing.T) {
	scope := NewScope(nil, "test")

	x := newVar("x")
	assert.Nil(t, scope.Insert("x", x), "first insert")
	assert.Same(t, x, scope.Lookup("x"))

	// Insert duplicate
	x2 := newVar("x")
	assert.Same(t, x, scope.Insert("x", x2), "duplicate returns the first declaration")
	assert.Same(t, x, scope.Lookup("x"))
}

func TestScopeLookupParent(t *testing.T) {
	parent := NewScope(nil, "parent")
	child := NewScope(parent, "child")

	x := newVar("x")
	parent.Insert("x", x)

	found, foundScope := child.LookupParent("x")
	assert.Same(t, x, found)
	assert.Same(t, parent, foundScope)

	// Direct lookup in child should fail
	assert.Nil(t, child.Lookup("x"))

	found, foundScope = child.LookupParent("y")
	assert.Nil(t, found)
	assert.Nil(t, foundScope)
}

func TestScopeShadowing(t *testing.T) {
	parent := NewScope(nil, "parent")
	child := NewScope(parent, "child")

	outer, inner := newVar("x"), newVar("x")
	parent.Insert("x", outer)
	require.Nil(t, child.Insert("x", inner))

	found, _ := child.LookupParent("x")
	assert.Same(t, inner, found)
	found, _ = parent.LookupParent("x")
	assert.Same(t, outer, found)
}

func TestScopeLevelsAndChildren(t *testing.T) {
	root := NewRootScope()
	a := NewScope(root, "let")
	b := NewScope(a, "block")

	assert.Equal(t, 0, root.Level())
	assert.Equal(t, 1, a.Level())
	assert.Equal(t, 2, b.Level())
	assert.Equal(t, []*Scope{a}, root.Children())
	assert.Equal(t, "block", b.Comment())
	assert.Same(t, a, b.Parent())
}

func TestNewRootScopeCopiesUniverse(t *testing.T) {
	root := NewRootScope()
	assert.Equal(t, Universe.NumDecls(), root.NumDecls())
	assert.Same(t, IntegerType, root.Lookup("integer"))

	// user declarations may shadow built-ins without touching Universe
	v := newVar("putint")
	assert.Same(t, PutInt, root.Insert("putint", v))
	inner := NewScope(root, "let")
	assert.Nil(t, inner.Insert("putint", v))
	assert.Same(t, PutInt, Universe.Lookup("putint"))
	assert.Empty(t, Universe.Children())
}

func TestVisibleNames(t *testing.T) {
	parent := NewScope(nil, "parent")
	child := NewScope(parent, "child")
	parent.Insert("b", newVar("b"))
	parent.Insert("a", newVar("a"))
	child.Insert("c", newVar("c"))
	child.Insert("a", newVar("a"))

	assert.Equal(t, []string{"a", "c", "b"}, child.VisibleNames())
}

func TestScopeString(t *testing.T) {
	root := NewScope(nil, "root")
	x := newVar("x")
	x.SetEntityType(IntegerType)
	root.Insert("x", x)
	NewScope(root, "inner")

	s := root.String()
	assert.True(t, strings.HasPrefix(s, "scope root {\n"))
	assert.Contains(t, s, "  x: variable integer\n")
	assert.Contains(t, s, "  scope inner {\n")
}
