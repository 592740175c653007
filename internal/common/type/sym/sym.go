// Released under an MIT license. See LICENSE.

// Package sym provides slxi's symbol type. Symbols form a tree: every
// interned symbol is the child of another symbol, its namespace.
package sym

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
)

const name = "symbol"

// T (sym) is a symbol. The name is immutable; the parent link, children,
// global value and declaration are guarded by the symbol's lock.
type T struct {
	sync.RWMutex

	id   uint64
	name string

	parent   *sym
	children map[string]*sym

	global cell.I // Nil when globally unbound.

	declared bool
	kind     kind.T
}

type sym = T

//nolint:gochecknoglobals
var (
	// True and Nil are children of each other and can never be modified.
	True *T
	Nil  *T

	// Special form names.
	Body          *T
	Declare       *T
	If            *T
	Lambda        *T
	Quote         *T
	UnwindProtect *T

	// Lambda list markers.
	AllowOtherKeys *T
	Aux            *T
	Key            *T
	Rest           *T

	ids atomic.Uint64
)

func init() { //nolint:gochecknoinits
	True = New("t")
	Nil = New("nil")

	True.parent = Nil
	True.children = map[string]*sym{"nil": Nil}
	True.global = True
	True.declared = true
	True.kind = kind.Constant

	Nil.parent = True
	Nil.children = map[string]*sym{"t": True}
	Nil.global = Nil
	Nil.declared = true
	Nil.kind = kind.Constant

	Body = True.Intern("body")
	Declare = True.Intern("declare")
	If = True.Intern("if")
	Lambda = True.Intern("lambda")
	Quote = True.Intern("quote")
	UnwindProtect = True.Intern("unwind-protect")

	AllowOtherKeys = True.Intern("&allow-other-keys")
	Aux = True.Intern("&aux")
	Key = True.Intern("&key")
	Rest = True.Intern("&rest")
}

// New creates an uninterned symbol.
func New(v string) *T {
	return &sym{id: ids.Add(1), name: v}
}

// Keyword interns v in the keyword namespace.
func Keyword(v string) *T {
	return Nil.Intern(v)
}

// Intern returns the child of s named v, creating it if necessary.
// Concurrent callers interning the same name always get the same symbol.
func (s *sym) Intern(v string) *T {
	s.Lock()
	defer s.Unlock()

	if c, ok := s.children[v]; ok {
		return c
	}

	if s.children == nil {
		s.children = map[string]*sym{}
	}

	c := New(v)
	c.parent = s
	s.children[v] = c

	return c
}

// Child returns the child of s named v, if there is one.
func (s *sym) Child(v string) (*T, bool) {
	s.RLock()
	defer s.RUnlock()

	c, ok := s.children[v]

	return c, ok
}

// Children returns a snapshot of the children of s ordered by name.
func (s *sym) Children() []*T {
	s.RLock()

	cs := make([]*sym, 0, len(s.children))
	for _, c := range s.children {
		cs = append(cs, c)
	}

	s.RUnlock()

	sort.Slice(cs, func(i, j int) bool {
		return cs[i].name < cs[j].name
	})

	return cs
}

// Apropos returns the children of s with names matching the glob pattern.
func (s *sym) Apropos(pattern string) ([]*T, error) {
	var matched []*sym

	for _, c := range s.Children() {
		ok, err := adapted.Match(pattern, c.name)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

// Unintern removes s from its parent's namespace. It returns false if s
// was not interned.
func (s *sym) Unintern() bool {
	if s.Immutable() {
		panic(condition.NewConstantModification(s))
	}

	s.RLock()
	p := s.parent
	s.RUnlock()

	if p == nil {
		return false
	}

	p.Lock()

	removed := p.children[s.name] == s
	if removed {
		delete(p.children, s.name)
	}

	p.Unlock()

	if removed {
		s.Lock()
		if s.parent == p {
			s.parent = nil
		}
		s.Unlock()
	}

	return removed
}

// Parent returns the namespace s is interned in or nil if s is uninterned.
func (s *sym) Parent() *T {
	s.RLock()
	defer s.RUnlock()

	return s.parent
}

// ID returns a handle that is unique to s for the life of the process.
func (s *sym) ID() uint64 {
	return s.id
}

// Immutable returns true for t and nil.
func (s *sym) Immutable() bool {
	return s == True || s == Nil
}

// IsKeyword returns true if s is interned in the keyword namespace.
func (s *sym) IsKeyword() bool {
	return s.Parent() == Nil && s != True
}

// Equal returns true if c is the symbol s.
func (s *sym) Equal(c cell.I) bool {
	return c == cell.I(s)
}

// Literal returns the literal representation of the symbol s.
func (s *sym) Literal() string {
	if s.Immutable() {
		return s.name
	}

	p := s.Parent()

	switch p {
	case nil:
		return "#:" + repr(s.name)
	case True:
		return repr(s.name)
	case Nil:
		return ":" + repr(s.name)
	}

	return p.Literal() + ":" + repr(s.name)
}

// Name returns the type name for the symbol s.
func (s *sym) Name() string {
	return name
}

// String returns the name of the symbol s.
func (s *sym) String() string {
	return s.name
}

// Is returns true if c is a symbol.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a symbol if c is a symbol; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(condition.NewTypeConstraint(c, name))
}

func meta(s string) string {
	return "(|" + name + " " + s + "|)"
}

func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 || strings.ContainsAny(s, " \t\n():;|\"'`") {
		return meta(q)
	}

	if q[2:len(q)-1] != s {
		return meta(q)
	}

	return s
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}
