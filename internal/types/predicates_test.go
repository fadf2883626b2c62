package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-not-fish/tamc/internal/syntax"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name           string
		formal, actual *syntax.TypeDecl
		want           bool
	}{
		{"same", IntegerType, IntegerType, true},
		{"different", IntegerType, CharType, false},
		{"boolean_char", BooleanType, CharType, false},
		{"any_formal", AnyType, CharType, true},
		{"any_actual", BooleanType, AnyType, true},
		{"any_any", AnyType, AnyType, true},
		{"void", IntegerType, VoidType, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.formal, tt.actual))
			assert.Equal(t, tt.want, Matches(tt.actual, tt.formal), "Matches is symmetric")
		})
	}
}

func TestIdenticalIsNotAnyAware(t *testing.T) {
	assert.True(t, Identical(CharType, CharType))
	assert.False(t, Identical(AnyType, CharType))
}

func TestTypeClasses(t *testing.T) {
	for _, typ := range []*syntax.TypeDecl{IntegerType, CharType, BooleanType} {
		assert.False(t, IsAny(typ), typ.Name)
		assert.False(t, IsVoid(typ), typ.Name)
	}
	assert.True(t, IsAny(AnyType))
	assert.True(t, IsVoid(VoidType))
}

func TestDeclClasses(t *testing.T) {
	c := &syntax.ConstDecl{Name: &syntax.Ident{Value: "k"}}
	v := &syntax.VarDecl{Name: &syntax.Ident{Value: "x"}}

	assert.True(t, IsConstant(c))
	assert.True(t, IsConstant(True))
	assert.False(t, IsConstant(v))
	assert.True(t, IsVariable(v))
	assert.False(t, IsVariable(c))
	assert.False(t, IsVariable(PutInt))
}

func TestDescribeVariable(t *testing.T) {
	v := &syntax.VarDecl{Name: &syntax.Ident{Value: "x"}}
	v.SetEntityType(CharType)
	assert.Equal(t, "char", Describe(v))
	assert.Equal(t, "?", Describe(&syntax.SeqDecl{}))
}
