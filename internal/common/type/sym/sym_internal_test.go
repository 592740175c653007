// Released under an MIT license. See LICENSE.

package sym

import (
	"sync"
	"testing"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
)

func TestTrueNil(t *testing.T) {
	if True.Parent() != Nil || Nil.Parent() != True {
		t.Fatal("t and nil should be children of each other")
	}

	if c, ok := True.Child("nil"); !ok || c != Nil {
		t.Fatal("nil should be a child of t")
	}

	for _, s := range []*T{True, Nil} {
		v, ok := s.Global()
		if !ok || v != s {
			t.Fatalf("%s should be bound to itself", s)
		}

		if !s.Constant() {
			t.Fatalf("%s should be constant", s)
		}
	}
}

func TestImmutable(t *testing.T) {
	ops := map[string]func(s *T){
		"declare":   func(s *T) { s.Declare(kind.Dynamic) },
		"set":       func(s *T) { s.SetGlobal(New("x")) },
		"undeclare": func(s *T) { s.Undeclare() },
		"unbind":    func(s *T) { s.Unbind() },
		"unintern":  func(s *T) { s.Unintern() },
	}

	for label, op := range ops {
		for _, s := range []*T{True, Nil} {
			err := condition.Catch(func() { op(s) })
			if !condition.Is(err, condition.ConstantModification) {
				t.Fatalf("%s %s: expected constant modification, got %v", label, s, err)
			}
		}
	}
}

func TestInternIdempotent(t *testing.T) {
	ns := New("test")

	a := ns.Intern("a")
	if ns.Intern("a") != a {
		t.Fatal("interning the same name twice should return the same symbol")
	}

	if a.Parent() != ns {
		t.Fatal("interned symbol should be a child of its namespace")
	}
}

func TestInternConcurrent(t *testing.T) {
	ns := New("concurrent")

	const n = 64

	var wg sync.WaitGroup

	results := make([]*T, n)

	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			<-start

			results[i] = ns.Intern("x")
		}(i)
	}

	close(start)
	wg.Wait()

	for _, r := range results {
		if r != results[0] {
			t.Fatal("concurrent interners should observe exactly one symbol")
		}
	}

	if len(ns.Children()) != 1 {
		t.Fatalf("expected 1 child, got %d", len(ns.Children()))
	}
}

func TestUnintern(t *testing.T) {
	ns := New("ns")
	s := ns.Intern("gone")

	if !s.Unintern() {
		t.Fatal("expected unintern to remove the symbol")
	}

	if _, ok := ns.Child("gone"); ok {
		t.Fatal("uninterned symbol should not be a child")
	}

	if s.Unintern() {
		t.Fatal("uninterning twice should do nothing")
	}

	if s.Literal() != "#:gone" {
		t.Fatalf("expected #:gone, got %s", s.Literal())
	}

	if ns.Intern("gone") == s {
		t.Fatal("interning after unintern should create a new symbol")
	}
}

func TestChildrenApropos(t *testing.T) {
	ns := New("ns")
	for _, v := range []string{"car", "cdr", "cons", "apply"} {
		ns.Intern(v)
	}

	cs := ns.Children()
	expected := []string{"apply", "car", "cdr", "cons"}

	for i, c := range cs {
		if c.String() != expected[i] {
			t.Fatalf("expected %s at %d, got %s", expected[i], i, c)
		}
	}

	matched, err := ns.Apropos("c*r")
	if err != nil {
		t.Fatal(err)
	}

	if len(matched) != 2 || matched[0].String() != "car" || matched[1].String() != "cdr" {
		t.Fatalf("expected car and cdr, got %v", matched)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		s        *T
		expected string
	}{
		{True, "t"},
		{Nil, "nil"},
		{Keyword("test"), ":test"},
		{True.Intern("car"), "car"},
		{New("x"), "#:x"},
	}

	for _, test := range tests {
		if actual := test.s.Literal(); actual != test.expected {
			t.Fatalf("expected %s, got %s", test.expected, actual)
		}
	}

	if !Keyword("k").IsKeyword() || Rest.IsKeyword() {
		t.Fatal("only symbols interned in nil are keywords")
	}
}

func TestDeclare(t *testing.T) {
	s := New("v")

	s.Declare(kind.Dynamic)
	s.Declare(kind.Dynamic)

	if k, ok := s.Declared(); !ok || k != kind.Dynamic {
		t.Fatalf("expected dynamic, got %s", k)
	}

	err := condition.Catch(func() { s.Declare(kind.Static) })
	if !condition.Is(err, condition.Redeclaration) {
		t.Fatalf("expected redeclaration, got %v", err)
	}

	if !s.Undeclare() {
		t.Fatal("expected undeclare to remove the declaration")
	}

	if _, ok := s.Declared(); ok {
		t.Fatal("symbol should no longer be declared")
	}
}

func TestDefconstant(t *testing.T) {
	s := New("pi")
	v := New("value")

	s.Defconstant(v)
	s.Defconstant(v)

	if g, ok := s.Global(); !ok || g != v {
		t.Fatal("constant should be bound to its value")
	}

	for _, op := range []func(){
		func() { s.SetGlobal(New("other")) },
		func() { s.Unbind() },
		func() { s.Defconstant(New("other")) },
	} {
		if err := condition.Catch(op); !condition.Is(err, condition.ConstantModification) {
			t.Fatalf("expected constant modification, got %v", err)
		}
	}
}

func TestGlobal(t *testing.T) {
	s := New("g")

	if s.Bound() {
		t.Fatal("new symbols are unbound")
	}

	s.SetGlobal(True)

	if !s.Bound() {
		t.Fatal("expected symbol to be bound")
	}

	s.Unbind()

	if s.Bound() {
		t.Fatal("expected symbol to be unbound")
	}
}
