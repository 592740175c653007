// Released under an MIT license. See LICENSE.

// Package binding provides dynamic (per thread of control) variable bindings.
// Each goroutine or task that evaluates code owns one T. A T is not safe
// for concurrent use; global values remain shared through the symbols.
package binding

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

// State describes the dynamic binding of a symbol.
type State int

// Binding states.
const (
	// Unbound means there is no dynamic binding; the global value applies.
	Unbound State = iota

	// Bound means the symbol has a dynamic value.
	Bound

	// Shadowed means the symbol is dynamically bound but has no value.
	// The global value does not apply.
	Shadowed
)

type entry struct {
	previous *entry
	state    State
	value    cell.I
}

// T (binding) holds a stack of dynamic bindings for each symbol.
type T struct {
	stacks map[uint64]*entry
}

type binding = T

// New creates an empty set of dynamic bindings.
func New() *T {
	return &binding{stacks: map[uint64]*entry{}}
}

// Bind establishes a dynamic binding of s to v. The returned function
// restores the previous binding, discarding any bindings of s made after
// this one. Calling it more than once, or after an earlier binding of s
// has been restored, has no effect.
func (b *binding) Bind(s *sym.T, v cell.I) (restore func()) {
	if s.Immutable() || s.Constant() {
		panic(condition.NewConstantModification(s))
	}

	id := s.ID()
	e := &entry{previous: b.stacks[id], state: Bound, value: v}
	b.stacks[id] = e

	done := false

	return func() {
		if done {
			return
		}

		done = true

		if !b.active(id, e) {
			return
		}

		if e.previous == nil {
			delete(b.stacks, id)
		} else {
			b.stacks[id] = e.previous
		}
	}
}

func (b *binding) active(id uint64, e *entry) bool {
	for top := b.stacks[id]; top != nil; top = top.previous {
		if top == e {
			return true
		}
	}

	return false
}

// Let calls f with s dynamically bound to v. The previous binding is
// restored however f exits.
func (b *binding) Let(s *sym.T, v cell.I, f func()) {
	restore := b.Bind(s, v)
	defer restore()

	f()
}

// Lookup returns the dynamic state of s and its dynamic value, if any.
func (b *binding) Lookup(s *sym.T) (State, cell.I) {
	if b == nil {
		return Unbound, nil
	}

	e, ok := b.stacks[s.ID()]
	if !ok {
		return Unbound, nil
	}

	return e.state, e.value
}

// Bound returns true if s currently has a value, dynamic or global.
func (b *binding) Bound(s *sym.T) bool {
	state, _ := b.Lookup(s)

	switch state {
	case Bound:
		return true
	case Shadowed:
		return false
	}

	return s.Bound()
}

// Value returns the current value of s: its dynamic value if s is
// dynamically bound, otherwise its global value.
func (b *binding) Value(s *sym.T) cell.I {
	state, v := b.Lookup(s)

	switch state {
	case Bound:
		return v
	case Shadowed:
		panic(condition.NewUnbound(s))
	}

	v, ok := s.Global()
	if !ok {
		panic(condition.NewUnbound(s))
	}

	return v
}

// Set assigns v to the current binding of s.
func (b *binding) Set(s *sym.T, v cell.I) {
	if e, ok := b.top(s); ok {
		e.state = Bound
		e.value = v

		return
	}

	s.SetGlobal(v)
}

// Makunbound removes the value of the current binding of s. A dynamic
// binding becomes shadowed; it does not expose the global value.
func (b *binding) Makunbound(s *sym.T) {
	if s.Immutable() || s.Constant() {
		panic(condition.NewConstantModification(s))
	}

	if e, ok := b.top(s); ok {
		e.state = Shadowed
		e.value = nil

		return
	}

	s.Unbind()
}

func (b *binding) top(s *sym.T) (*entry, bool) {
	if b == nil {
		return nil, false
	}

	e, ok := b.stacks[s.ID()]

	return e, ok
}
