package jsongen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	s, err := NewStruct("Point", []StructField{
		{GoName: "X", JSONName: "x", Type: NewInt64("")},
		{GoName: "Y", JSONName: "y", Type: NewInt64("")},
	}, OtherKeysSkip)
	require.NoError(t, err)
	assert.NoError(t, Validate(s))
}

func TestValidate_MapKeyNotString(t *testing.T) {
	m := NewMap("", NewInt64(""), NewBool(""))
	err := Validate(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMapKeyNotString)
}

func TestValidate_MapKeyNamedString(t *testing.T) {
	m := NewMap("", NewString("Key", true, true, true), NewInt64(""))
	assert.NoError(t, Validate(m))
}

func TestValidate_DuplicateJSONName(t *testing.T) {
	s, err := NewStruct("Dup", []StructField{
		{GoName: "A", JSONName: "x", Type: NewInt64("")},
		{GoName: "B", JSONName: "x", Type: NewInt64("")},
	}, OtherKeysSkip)
	require.NoError(t, err)
	err = Validate(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateJSONName)
}

func TestValidate_DuplicateGoName(t *testing.T) {
	tup := NewTuple("Dup", []TupleField{
		{GoName: "A", JSONName: "a", Type: NewInt64("")},
		{GoName: "A", JSONName: "b", Type: NewInt64("")},
	})
	err := Validate(tup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateJSONName)
}

func TestValidate_NamedTypeMismatch(t *testing.T) {
	inner1 := NewInt64("Shared")
	inner2 := NewBool("Shared")
	s, err := NewStruct("Outer", []StructField{
		{GoName: "A", JSONName: "a", Type: inner1},
		{GoName: "B", JSONName: "b", Type: inner2},
	}, OtherKeysSkip)
	require.NoError(t, err)
	err = Validate(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNamedTypeMismatch)
}

func TestValidate_NestedArraySliceMap(t *testing.T) {
	arr, err := NewArray("", 3, NewFloat64(""))
	require.NoError(t, err)
	sl := NewSlice("", arr)
	m := NewMap("Outer", UnsafeString(""), sl)
	assert.NoError(t, Validate(m))
}
