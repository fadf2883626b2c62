package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/tam"
)

func TestUniverseContents(t *testing.T) {
	tests := []struct {
		name string
		kind string
		desc string
	}{
		{"integer", "type", "integer"},
		{"char", "type", "char"},
		{"boolean", "type", "boolean"},
		{"true", "constant", "boolean"},
		{"false", "constant", "boolean"},
		{">", "operator", "(integer, integer) boolean"},
		{"<", "operator", "(integer, integer) boolean"},
		{"=", "operator", "(any, any) boolean"},
		{"+", "operator", "(integer, integer) integer"},
		{"-", "operator", "(integer, integer) integer"},
		{"*", "operator", "(integer, integer) integer"},
		{"/", "operator", "(integer, integer) integer"},
		{`\`, "operator", "(boolean) boolean"},
		{"chr", "function", "(integer) char"},
		{"ord", "function", "(char) integer"},
		{"eof", "function", "() boolean"},
		{"eol", "function", "() boolean"},
		{"get", "procedure", "(var char) void"},
		{"getint", "procedure", "(var integer) void"},
		{"put", "procedure", "(char) void"},
		{"putint", "procedure", "(integer) void"},
		{"puteol", "procedure", "() void"},
	}

	assert.Equal(t, len(tests), Universe.NumDecls())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Universe.Lookup(tt.name)
			require.NotNil(t, d)
			assert.Equal(t, tt.name, DeclName(d))
			assert.Equal(t, tt.kind, DeclKind(d))
			assert.Equal(t, tt.desc, Describe(d))
		})
	}
}

func TestPseudoTypesAreNotNamed(t *testing.T) {
	for _, name := range []string{"any", "void", "Any", "Void"} {
		d, _ := Universe.LookupParent(name)
		assert.Nil(t, d, name)
	}
}

func TestBuiltinPrimitives(t *testing.T) {
	assert.Equal(t, tam.PrimAdd, Plus.Prim)
	assert.Equal(t, tam.PrimEq, Equal.Prim)
	assert.Equal(t, tam.PrimNot, Not.Prim)
	assert.Equal(t, tam.PrimID, Chr.Prim)
	assert.Equal(t, tam.PrimPutint, PutInt.Prim)
}

func TestBuiltinConstStorage(t *testing.T) {
	s := True.Storage()
	require.NotNil(t, s)
	assert.Equal(t, syntax.KnownValue, s.Kind)
	assert.Equal(t, tam.True, s.Value)
	assert.Equal(t, tam.False, False.Storage().Value)
}

func TestUniverseIsFrozen(t *testing.T) {
	assert.Panics(t, func() {
		Universe.Insert("x", &syntax.VarDecl{})
	})
}

func TestPredicates(t *testing.T) {
	assert.True(t, Matches(IntegerType, IntegerType))
	assert.False(t, Matches(IntegerType, CharType))
	assert.True(t, Matches(AnyType, CharType))
	assert.True(t, Matches(BooleanType, AnyType))
	assert.False(t, Matches(IntegerType, VoidType))

	assert.True(t, IsConstant(True))
	assert.True(t, IsConstant(&syntax.ConstDecl{}))
	assert.False(t, IsConstant(&syntax.VarDecl{}))
	assert.True(t, IsVariable(&syntax.VarDecl{}))
	assert.False(t, IsVariable(Plus))
}
