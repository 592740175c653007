package condition_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

func parse() (err error) {
	defer condition.Recover(&err)

	panic(condition.NewUnbound(sym.True.Intern("missing")))
}

func TestRecover(t *testing.T) {
	err := parse()
	if !condition.Is(err, condition.Unbound) {
		t.Fatalf("expected unbound, got %v", err)
	}

	if s := err.Error(); s != "unbound variable: missing" {
		t.Fatalf("unexpected message %q", s)
	}

	wrapped := fmt.Errorf("compiling: %w", err)
	if !condition.Is(wrapped, condition.Unbound) {
		t.Fatal("wrapped conditions should still match")
	}
}

func TestRecoverOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("expected the original panic, got %v", r)
		}
	}()

	_ = condition.Catch(func() { panic("boom") })

	t.Fatal("expected a panic")
}

func TestRange(t *testing.T) {
	err := condition.Catch(func() {
		panic(condition.NewRangeConstraint(num.Int(5), num.Int(0), num.Int(2)))
	})

	var c *condition.T
	if !errors.As(err, &c) || c.Kind != condition.RangeConstraint {
		t.Fatalf("expected a range constraint violation, got %v", err)
	}

	if s := err.Error(); s != "range constraint violation: index 5 not in [0, 2]" {
		t.Fatalf("unexpected message %q", s)
	}
}

func TestCatchNone(t *testing.T) {
	if err := condition.Catch(func() {}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
