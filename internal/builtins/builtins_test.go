/*
File    : minipar/internal/builtins/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/internal/value"
)

func TestInvoke_PrintWritesArgsFollowedByNewline(t *testing.T) {
	var buf bytes.Buffer
	_, err, ok := Invoke(&buf, "print", value.NewStr("hello "), value.NewNumber(5))
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "hello 5\n", buf.String())
}

func TestInvoke_UnknownNameReportsNotOk(t *testing.T) {
	var buf bytes.Buffer
	_, _, ok := Invoke(&buf, "not_a_builtin")
	assert.False(t, ok)
}

func TestInvoke_ToNumberParsesValidString(t *testing.T) {
	var buf bytes.Buffer
	v, err, ok := Invoke(&buf, "to_number", value.NewStr("3.5"))
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewNumber(3.5), v)
}

func TestInvoke_ToNumberRejectsInvalidString(t *testing.T) {
	var buf bytes.Buffer
	_, err, ok := Invoke(&buf, "to_number", value.NewStr("not-a-number"))
	require.True(t, ok)
	assert.Error(t, err)
}

func TestInvoke_ToBoolRejectsUnrecognizedString(t *testing.T) {
	var buf bytes.Buffer
	_, err, ok := Invoke(&buf, "to_bool", value.NewStr("maybe"))
	require.True(t, ok)
	assert.Error(t, err)
}

func TestInvoke_LengthCountsRunes(t *testing.T) {
	var buf bytes.Buffer
	v, err, ok := Invoke(&buf, "length", value.NewStr("héllo"))
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, value.NewNumber(5), v)
}

func TestInvoke_MathBuiltins(t *testing.T) {
	var buf bytes.Buffer
	v, _, _ := Invoke(&buf, "sqrt", value.NewNumber(9))
	assert.Equal(t, value.NewNumber(3), v)

	v, _, _ = Invoke(&buf, "pow", value.NewNumber(2), value.NewNumber(10))
	assert.Equal(t, value.NewNumber(1024), v)

	v, _, _ = Invoke(&buf, "abs", value.NewNumber(-7))
	assert.Equal(t, value.NewNumber(7), v)
}
