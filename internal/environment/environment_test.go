/*
File    : minipar/internal/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minipar-lang/minipar/internal/value"
)

func TestEnvironment_LookupWalksOutward(t *testing.T) {
	global := New(nil)
	global.Bind("x", value.NewNumber(1))
	child := New(global)

	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, value.NewNumber(1), v)
}

func TestEnvironment_BindIsLocalOnly(t *testing.T) {
	global := New(nil)
	child := New(global)
	child.Bind("y", value.NewNumber(2))

	_, ok := global.Lookup("y")
	assert.False(t, ok, "a child frame's binding must not leak into its parent")
}

func TestEnvironment_AssignUpdatesDeclaringFrame(t *testing.T) {
	global := New(nil)
	global.Bind("x", value.NewNumber(1))
	child := New(global)

	ok := child.Assign("x", value.NewNumber(99))
	assert.True(t, ok)

	v, _ := global.Lookup("x")
	assert.Equal(t, value.NewNumber(99), v)
}

func TestEnvironment_AssignUndeclaredReturnsFalse(t *testing.T) {
	global := New(nil)
	assert.False(t, global.Assign("nope", value.NewNumber(1)))
}

func TestEnvironment_ConcurrentAccessIsRaceFree(t *testing.T) {
	env := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			env.Bind("shared", value.NewNumber(float64(i)))
			env.Lookup("shared")
		}()
	}
	wg.Wait()
}
