package ast_test

import (
	"testing"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/type/num"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/engine/ast"
	"github.com/michaelmacinnis/slxi/internal/engine/lexenv"
)

func TestIfDefaultsElse(t *testing.T) {
	n := ast.NewIf(ast.NewConstant(num.Int(1)), ast.NewConstant(num.Int(2)), nil)

	c, ok := n.Else.(*ast.Constant)
	if !ok || c.Value != sym.Nil {
		t.Fatalf("expected a nil else branch, got %s", n.Else)
	}

	if s := n.String(); s != "(if (constant 1) (constant 2) (constant nil))" {
		t.Fatalf("unexpected string %s", s)
	}
}

func TestRequiredChildren(t *testing.T) {
	for label, f := range map[string]func(){
		"if":       func() { ast.NewIf(nil, ast.NewConstant(num.Int(1)), nil) },
		"call":     func() { ast.NewCall(nil, nil, nil) },
		"body":     func() { ast.NewBody(ast.NewConstant(num.Int(1)), nil) },
		"constant": func() { ast.NewConstant(nil) },
		"local":    func() { ast.NewLocalStatic(nil) },
		"global":   func() { ast.NewGlobalStatic(nil) },
		"lambda":   func() { (&ast.Lambda{}).Validate() },
		"unwind":   func() { ast.NewUnwindProtect(nil) },
	} {
		err := condition.Catch(f)
		if !condition.Is(err, condition.InternalCompiler) {
			t.Fatalf("%s: expected an internal compiler error, got %v", label, err)
		}
	}
}

func TestInspect(t *testing.T) {
	x := lexenv.Root().Define(sym.New("x"))

	tree := ast.NewBody(
		ast.NewIf(
			ast.NewLocalStatic(x),
			ast.NewCall(ast.NewUnresolved(sym.New("f")), []ast.Node{ast.NewConstant(num.Int(1))}, ast.NewLocalStatic(x)),
			nil,
		),
		ast.NewUnwindProtect(ast.NewGlobalDynamic(sym.New("d")), ast.NewConstant(num.Int(2))),
	)

	var visited []string

	ast.Inspect(tree, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Body:
			visited = append(visited, "body")
		case *ast.If:
			visited = append(visited, "if")
		case *ast.Call:
			visited = append(visited, "call")
		case *ast.UnwindProtect:
			visited = append(visited, "unwind-protect")

			return false
		case *ast.Constant:
			visited = append(visited, "constant")
		case *ast.LocalStatic:
			visited = append(visited, "local")
		case *ast.Unresolved:
			visited = append(visited, "unresolved")
		}

		return true
	})

	expected := []string{
		"body", "if", "local", "call", "unresolved", "constant", "local", "constant", "unwind-protect",
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, visited)
	}

	for i := range expected {
		if visited[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, visited)
		}
	}
}

func TestString(t *testing.T) {
	x := lexenv.Root().Define(sym.True.Intern("x"))

	n := ast.NewCall(
		ast.NewUnresolved(sym.True.Intern("f")),
		[]ast.Node{ast.NewLocalStatic(x), ast.NewLocalDynamic(sym.True.Intern("d"))},
		ast.NewGlobalStatic(sym.True.Intern("g")),
	)

	expected := "(call (unresolved f) (local x) (local-dynamic d) . (global g))"
	if s := n.String(); s != expected {
		t.Fatalf("expected %s, got %s", expected, s)
	}
}
