/*
File    : minipar/internal/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minipar-lang/minipar/internal/types"
)

func TestNumber_StringOmitsTrailingZeroForIntegralValues(t *testing.T) {
	assert.Equal(t, "3", NewNumber(3).String())
	assert.Equal(t, "-4", NewNumber(-4).String())
	assert.Equal(t, "3.5", NewNumber(3.5).String())
	assert.Equal(t, "0", NewNumber(0).String())
}

func TestBool_String(t *testing.T) {
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "false", NewBool(false).String())
}

func TestVoidValue_Singleton(t *testing.T) {
	assert.Equal(t, types.VOID, VoidValue.Type())
	assert.Equal(t, "", VoidValue.String())
}

func TestStr_Type(t *testing.T) {
	s := NewStr("hi")
	assert.Equal(t, types.STRING, s.Type())
	assert.Equal(t, "hi", s.String())
}
