/*
File    : minipar/internal/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements Minipar's runtime value environment:
// a tree of frames mapping identifier to Value, generalized from the
// teacher's single-goroutine scope package with a per-frame lock so
// `par` children sharing a frame by reference do not race on its map.
package environment

import (
	"sync"

	"github.com/minipar-lang/minipar/internal/value"
)

// Environment is one frame in the chain. Frames form a tree, not a
// stack: closures may outlive the block that pushed them, so a frame
// is reference-counted implicitly by whatever still holds a pointer to
// it (the Go garbage collector), never deep-copied.
type Environment struct {
	mu        sync.RWMutex
	variables map[string]value.Value
	Parent    *Environment
}

// New creates a fresh frame parented at parent (nil for the root
// frame).
func New(parent *Environment) *Environment {
	return &Environment{variables: make(map[string]value.Value), Parent: parent}
}

// Lookup searches this frame, then outward through parents, for name.
// This is the runtime mirror of symtab.Table.Lookup; because the
// Parser resolved every ID against its own scope chain before
// evaluation begins, a failed Lookup at runtime signals an interpreter
// bug, not a Minipar program error.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	e.mu.RLock()
	v, ok := e.variables[name]
	e.mu.RUnlock()
	if ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Lookup(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this frame only. Used for
// declarations, function and channel definitions, and function
// parameters — never for
// plain assignment, which must find and update the declaring frame.
func (e *Environment) Bind(name string, v value.Value) {
	e.mu.Lock()
	e.variables[name] = v
	e.mu.Unlock()
}

// Assign walks outward from this frame and updates name in the frame
// that declared it. Returns false if name is not bound anywhere in the
// chain.
func (e *Environment) Assign(name string, v value.Value) bool {
	e.mu.Lock()
	if _, ok := e.variables[name]; ok {
		e.variables[name] = v
		e.mu.Unlock()
		return true
	}
	e.mu.Unlock()
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
