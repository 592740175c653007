// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
)

// Global returns the global value of s and whether s is globally bound.
func (s *sym) Global() (cell.I, bool) {
	s.RLock()
	defer s.RUnlock()

	return s.global, s.global != nil
}

// Bound returns true if s has a global value.
func (s *sym) Bound() bool {
	_, ok := s.Global()

	return ok
}

// SetGlobal replaces the global value of s with v.
// Symbols declared constant cannot be modified.
func (s *sym) SetGlobal(v cell.I) {
	s.Lock()
	defer s.Unlock()

	s.mutable()

	s.global = v
}

// Unbind removes the global value of s.
func (s *sym) Unbind() {
	s.Lock()
	defer s.Unlock()

	s.mutable()

	s.global = nil
}

// Declare records that s is a variable of kind k.
// A symbol keeps its first declaration; redeclaring it as anything else panics.
func (s *sym) Declare(k kind.T) {
	if s.Immutable() {
		panic(condition.NewConstantModification(s))
	}

	s.Lock()
	defer s.Unlock()

	s.declare(k)
}

// Declared returns the kind s was declared as, if it has been declared.
func (s *sym) Declared() (kind.T, bool) {
	s.RLock()
	defer s.RUnlock()

	return s.kind, s.declared
}

// Constant returns true if s has been declared constant.
func (s *sym) Constant() bool {
	k, ok := s.Declared()

	return ok && k == kind.Constant
}

// Defconstant binds s to v and declares it constant.
// Redefining a constant with a different value panics.
func (s *sym) Defconstant(v cell.I) {
	s.Lock()
	defer s.Unlock()

	if s.Immutable() {
		panic(condition.NewConstantModification(s))
	}

	if s.declared && s.kind == kind.Constant {
		if s.global == nil || !s.global.Equal(v) {
			panic(condition.NewConstantModification(s))
		}

		return
	}

	s.declare(kind.Constant)

	s.global = v
}

// Undeclare removes the declaration for s. It returns false if s was not declared.
func (s *sym) Undeclare() bool {
	if s.Immutable() {
		panic(condition.NewConstantModification(s))
	}

	s.Lock()
	defer s.Unlock()

	ok := s.declared

	s.declared = false
	s.kind = kind.Static

	return ok
}

// Caller must hold s's lock.
func (s *sym) declare(k kind.T) {
	if s.declared {
		if s.kind != k {
			panic(condition.NewRedeclaration(s, "already declared "+s.kind.String()))
		}

		return
	}

	s.declared = true
	s.kind = k
}

// Caller must hold s's lock.
func (s *sym) mutable() {
	if s.Immutable() || (s.declared && s.kind == kind.Constant) {
		panic(condition.NewConstantModification(s))
	}
}
