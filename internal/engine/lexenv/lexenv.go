// Released under an MIT license. See LICENSE.

// Package lexenv provides the compile-time lexical environment.
//
// An environment is a chain of frames. Each frame holds the variables
// bound in it, most recent last, and the declarations made for it.
package lexenv

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/struct/kind"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

// Var is a lexically visible variable.
type Var struct {
	Name *sym.T
	Kind kind.T

	// Value is the compile-time value of a Constant or Macro variable.
	Value cell.I
}

// Declaration declares Name to be of kind Kind. Value is required for
// Constant and Macro declarations and ignored otherwise.
type Declaration struct {
	Name  *sym.T
	Kind  kind.T
	Value cell.I
}

// T (lexenv) is a lexical environment frame.
type T struct {
	parent   *lexenv
	declared map[*sym.T]kind.T
	vars     []*Var
}

type lexenv = T

// Root returns a new empty environment.
func Root() *T {
	return &lexenv{}
}

// Child creates a frame inside e with the declarations decls.
func (e *lexenv) Child(decls ...Declaration) (*T, error) {
	child := &lexenv{parent: e}

	if err := child.Declare(decls...); err != nil {
		return nil, err
	}

	return child, nil
}

// Declare adds the declarations decls to the frame e. The declarations
// are checked before any of them are applied. Declaring a name dynamic
// never shadows it. Other declarations bind the name in e unless the
// innermost binding of a static declaration is already static.
func (e *lexenv) Declare(decls ...Declaration) (err error) {
	defer condition.Recover(&err)

	pending := map[*sym.T]kind.T{}

	for _, d := range decls {
		k, ok := e.declared[d.Name]
		if !ok {
			k, ok = pending[d.Name]
		}

		if ok {
			if k != d.Kind {
				msg := "declared " + k.String() + " and " + d.Kind.String()
				panic(condition.NewRedeclaration(d.Name, msg))
			}

			continue
		}

		if (d.Kind == kind.Constant || d.Kind == kind.Macro) && d.Value == nil {
			panic(condition.NewSyntax(d.Name, d.Kind.String()+" declaration without a value"))
		}

		if d.Kind == kind.Static && !e.defined(d.Name) {
			panic(condition.NewUndefinedDeclaration(d.Name))
		}

		pending[d.Name] = d.Kind
	}

	for _, d := range decls {
		if _, ok := e.declared[d.Name]; ok {
			continue
		}

		if e.declared == nil {
			e.declared = map[*sym.T]kind.T{}
		}

		e.declared[d.Name] = d.Kind

		switch d.Kind {
		case kind.Dynamic:
			continue
		case kind.Static:
			if v, ok := e.Lookup(d.Name); ok && v.Kind == kind.Static {
				continue
			}
		}

		e.push(&Var{Name: d.Name, Kind: d.Kind, Value: d.Value})
	}

	return nil
}

// Parent returns the frame enclosing e, or nil for a root frame.
func (e *lexenv) Parent() *T {
	return e.parent
}

// Define binds name in e. The new variable is Dynamic if e declares
// name dynamic or name is declared dynamic globally, and Static otherwise.
// Define panics if name is a global constant.
func (e *lexenv) Define(name *sym.T) *Var {
	k := kind.Static
	if e.declared[name] == kind.Dynamic {
		k = kind.Dynamic
	}

	if name.Immutable() || name.Constant() {
		panic(condition.NewConstantModification(name))
	}

	if g, ok := name.Declared(); ok && g == kind.Dynamic {
		k = kind.Dynamic
	}

	v := &Var{Name: name, Kind: k}

	e.push(v)

	return v
}

// Declared returns the kind name was declared with in the innermost
// frame that declares it.
func (e *lexenv) Declared(name *sym.T) (kind.T, bool) {
	for f := e; f != nil; f = f.parent {
		if k, ok := f.declared[name]; ok {
			return k, true
		}
	}

	return kind.Static, false
}

// Lookup returns the innermost variable named name.
func (e *lexenv) Lookup(name *sym.T) (*Var, bool) {
	for f := e; f != nil; f = f.parent {
		for i := len(f.vars) - 1; i >= 0; i-- {
			if v := f.vars[i]; v.Name == name {
				return v, true
			}
		}

		if k, ok := f.declared[name]; ok && k == kind.Dynamic {
			return &Var{Name: name, Kind: kind.Dynamic}, true
		}
	}

	return nil, false
}

// Vars returns the variables bound in e, most recent first.
func (e *lexenv) Vars() []*Var {
	vs := make([]*Var, len(e.vars))
	for i, v := range e.vars {
		vs[len(vs)-1-i] = v
	}

	return vs
}

func (e *lexenv) defined(name *sym.T) bool {
	if _, ok := e.Lookup(name); ok {
		return true
	}

	_, ok := name.Declared()

	return ok || name.Bound()
}

func (e *lexenv) push(v *Var) {
	e.vars = append(e.vars, v)
}
