package binding_test

import (
	"testing"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/struct/binding"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

func value(t *testing.T, b *binding.T, s *sym.T, expected cell.I) {
	t.Helper()

	if actual := b.Value(s); !actual.Equal(expected) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

func TestStackDiscipline(t *testing.T) {
	b := binding.New()
	s := sym.New("x")
	s.SetGlobal(num.Int(0))

	b.Let(s, num.Int(1), func() {
		value(t, b, s, num.Int(1))

		b.Let(s, num.Int(2), func() {
			value(t, b, s, num.Int(2))
		})

		value(t, b, s, num.Int(1))
	})

	value(t, b, s, num.Int(0))
}

func TestFallBackToUnbound(t *testing.T) {
	b := binding.New()
	s := sym.New("y")

	b.Let(s, num.Int(1), func() {
		value(t, b, s, num.Int(1))
	})

	err := condition.Catch(func() { b.Value(s) })
	if !condition.Is(err, condition.Unbound) {
		t.Fatalf("expected unbound, got %v", err)
	}
}

func TestRestoreOnPanic(t *testing.T) {
	b := binding.New()
	s := sym.New("z")
	s.SetGlobal(num.Int(0))

	_ = condition.Catch(func() {
		b.Let(s, num.Int(1), func() {
			panic(condition.New(condition.Syntax, "escape"))
		})
	})

	value(t, b, s, num.Int(0))
}

func TestRestoreIdempotent(t *testing.T) {
	b := binding.New()
	s := sym.New("w")
	s.SetGlobal(num.Int(0))

	outer := b.Bind(s, num.Int(1))
	inner := b.Bind(s, num.Int(2))

	inner()
	inner()

	value(t, b, s, num.Int(1))

	outer()

	value(t, b, s, num.Int(0))
}

func TestRestoreOutOfOrder(t *testing.T) {
	b := binding.New()
	s := sym.New("o")
	s.SetGlobal(num.Int(0))

	outer := b.Bind(s, num.Int(1))
	inner := b.Bind(s, num.Int(2))

	outer()

	value(t, b, s, num.Int(0))

	inner()

	value(t, b, s, num.Int(0))

	if state, _ := b.Lookup(s); state != binding.Unbound {
		t.Fatalf("expected no dynamic binding, got %v", state)
	}

	first := b.Bind(s, num.Int(3))
	b.Bind(s, num.Int(4))
	third := b.Bind(s, num.Int(5))

	third()
	first()

	value(t, b, s, num.Int(0))
}

func TestSet(t *testing.T) {
	b := binding.New()
	s := sym.New("v")
	s.SetGlobal(num.Int(0))

	b.Let(s, num.Int(1), func() {
		b.Set(s, num.Int(5))
		value(t, b, s, num.Int(5))
	})

	value(t, b, s, num.Int(0))

	b.Set(s, num.Int(9))

	if g, _ := s.Global(); !g.Equal(num.Int(9)) {
		t.Fatalf("expected global 9, got %v", g)
	}
}

func TestMakunboundShadows(t *testing.T) {
	b := binding.New()
	s := sym.New("u")
	s.SetGlobal(num.Int(0))

	b.Let(s, num.Int(1), func() {
		b.Makunbound(s)

		if b.Bound(s) {
			t.Fatal("a locally unbound symbol should not be bound")
		}

		if state, _ := b.Lookup(s); state != binding.Shadowed {
			t.Fatalf("expected shadowed, got %d", state)
		}

		err := condition.Catch(func() { b.Value(s) })
		if !condition.Is(err, condition.Unbound) {
			t.Fatalf("expected unbound, got %v", err)
		}
	})

	if !b.Bound(s) {
		t.Fatal("the global value should be visible again")
	}
}

func TestConstants(t *testing.T) {
	b := binding.New()

	c := sym.New("c")
	c.Declare(kind.Constant)

	for _, s := range []*sym.T{sym.True, sym.Nil, c} {
		err := condition.Catch(func() { b.Bind(s, num.Int(1)) })
		if !condition.Is(err, condition.ConstantModification) {
			t.Fatalf("binding %s: expected constant modification, got %v", s, err)
		}

		err = condition.Catch(func() { b.Makunbound(s) })
		if !condition.Is(err, condition.ConstantModification) {
			t.Fatalf("unbinding %s: expected constant modification, got %v", s, err)
		}
	}
}

func TestIndependent(t *testing.T) {
	a := binding.New()
	b := binding.New()
	s := sym.New("shared")
	s.SetGlobal(num.Int(0))

	a.Let(s, num.Int(1), func() {
		value(t, b, s, num.Int(0))
	})

	var none *binding.T

	value(t, none, s, num.Int(0))
}
