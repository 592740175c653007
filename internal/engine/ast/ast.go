// Released under an MIT license. See LICENSE.

// Package ast declares the types used to represent compiled forms.
//
// Nodes are not modified after they are constructed. The constructors
// panic with an internal compiler condition when a required child is
// missing.
package ast

import (
	"strings"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
	"github.com/michaelmacinnis/slxi/internal/engine/lexenv"
)

// Node is implemented by all AST nodes.
type Node interface {
	String() string

	node()
}

// Constant is a value known at compile time.
type Constant struct {
	Value cell.I
}

// LocalStatic is a reference to a lexically bound variable.
type LocalStatic struct {
	Var *lexenv.Var
}

// LocalDynamic is a reference, by name, to a variable declared dynamic
// in an enclosing lexical scope.
type LocalDynamic struct {
	Name *sym.T
}

// GlobalStatic is a reference to a variable declared static globally.
type GlobalStatic struct {
	Name *sym.T
}

// GlobalDynamic is a reference to a variable declared dynamic globally.
type GlobalDynamic struct {
	Name *sym.T
}

// Unresolved is a reference to an undeclared variable. It is resolved
// when the reference is evaluated.
type Unresolved struct {
	Name *sym.T
}

// Body is a sequence of forms. The value of a body is the value of
// its last form, or nil when it is empty.
type Body struct {
	Forms []Node
}

// If is a conditional.
type If struct {
	Cond Node
	Then Node
	Else Node
}

// Call is a function call. Rest, when set, evaluates to a list of
// additional arguments.
type Call struct {
	Function Node
	Args     []Node
	Rest     Node
}

// Key is a keyword parameter.
type Key struct {
	Keyword  *sym.T
	Var      *lexenv.Var
	Default  Node
	Supplied *lexenv.Var // May be nil.
}

// Aux is an auxiliary variable.
type Aux struct {
	Var  *lexenv.Var
	Init Node
}

// Lambda is a function.
type Lambda struct {
	Name *sym.T // Nil for anonymous functions.
	Doc  string

	Required       []*lexenv.Var
	Rest           *lexenv.Var // May be nil.
	HasKeys        bool
	Keys           []*Key
	AllowOtherKeys bool
	Aux            []*Aux

	Body *Body
}

// UnwindProtect evaluates Protected and then, however Protected
// exits, each of the Cleanup forms.
type UnwindProtect struct {
	Protected Node
	Cleanup   []Node
}

// NewConstant creates a Constant node.
func NewConstant(v cell.I) *Constant {
	if v == nil {
		panic(condition.NewInternalCompiler("constant without a value"))
	}

	return &Constant{Value: v}
}

// NewLocalStatic creates a LocalStatic node.
func NewLocalStatic(v *lexenv.Var) *LocalStatic {
	if v == nil {
		panic(condition.NewInternalCompiler("reference without a variable"))
	}

	return &LocalStatic{Var: v}
}

// NewLocalDynamic creates a LocalDynamic node.
func NewLocalDynamic(name *sym.T) *LocalDynamic {
	return &LocalDynamic{Name: named(name)}
}

// NewGlobalStatic creates a GlobalStatic node.
func NewGlobalStatic(name *sym.T) *GlobalStatic {
	return &GlobalStatic{Name: named(name)}
}

// NewGlobalDynamic creates a GlobalDynamic node.
func NewGlobalDynamic(name *sym.T) *GlobalDynamic {
	return &GlobalDynamic{Name: named(name)}
}

// NewUnresolved creates an Unresolved node.
func NewUnresolved(name *sym.T) *Unresolved {
	return &Unresolved{Name: named(name)}
}

// NewBody creates a Body node.
func NewBody(forms ...Node) *Body {
	required("body", forms...)

	return &Body{Forms: forms}
}

// NewIf creates an If node. A missing else branch evaluates to nil.
func NewIf(cond, then, els Node) *If {
	required("if", cond, then)

	if els == nil {
		els = NewConstant(sym.Nil)
	}

	return &If{Cond: cond, Then: then, Else: els}
}

// NewCall creates a Call node. The rest node may be nil.
func NewCall(function Node, args []Node, rest Node) *Call {
	required("call", function)
	required("call", args...)

	return &Call{Function: function, Args: args, Rest: rest}
}

// NewUnwindProtect creates an UnwindProtect node.
func NewUnwindProtect(protected Node, cleanup ...Node) *UnwindProtect {
	required("unwind-protect", protected)
	required("unwind-protect", cleanup...)

	return &UnwindProtect{Protected: protected, Cleanup: cleanup}
}

// Validate checks that l has everything a Lambda node requires.
// It returns l so that it can be used when constructing l.
func (l *Lambda) Validate() *Lambda {
	if l.Body == nil {
		panic(condition.NewInternalCompiler("lambda without a body"))
	}

	for _, v := range l.Required {
		if v == nil {
			panic(condition.NewInternalCompiler("lambda with a missing parameter"))
		}
	}

	for _, k := range l.Keys {
		if k == nil || k.Var == nil || k.Keyword == nil || k.Default == nil {
			panic(condition.NewInternalCompiler("lambda with a malformed key parameter"))
		}
	}

	for _, a := range l.Aux {
		if a == nil || a.Var == nil || a.Init == nil {
			panic(condition.NewInternalCompiler("lambda with a malformed aux parameter"))
		}
	}

	return l
}

func (n *Constant) String() string {
	return "(constant " + literal.String(n.Value) + ")"
}

func (n *LocalStatic) String() string {
	return "(local " + n.Var.Name.Literal() + ")"
}

func (n *LocalDynamic) String() string {
	return "(local-dynamic " + n.Name.Literal() + ")"
}

func (n *GlobalStatic) String() string {
	return "(global " + n.Name.Literal() + ")"
}

func (n *GlobalDynamic) String() string {
	return "(global-dynamic " + n.Name.Literal() + ")"
}

func (n *Unresolved) String() string {
	return "(unresolved " + n.Name.Literal() + ")"
}

func (n *Body) String() string {
	return form("body", n.Forms...)
}

func (n *If) String() string {
	return form("if", n.Cond, n.Then, n.Else)
}

func (n *Call) String() string {
	s := form("call", append([]Node{n.Function}, n.Args...)...)
	if n.Rest == nil {
		return s
	}

	return s[:len(s)-1] + " . " + n.Rest.String() + ")"
}

func (n *UnwindProtect) String() string {
	return form("unwind-protect", append([]Node{n.Protected}, n.Cleanup...)...)
}

func (n *Lambda) String() string {
	var b strings.Builder

	b.WriteString("(lambda ")

	if n.Name != nil {
		b.WriteString(n.Name.Literal())
		b.WriteString(" ")
	}

	params := []string{}
	for _, v := range n.Required {
		params = append(params, v.Name.Literal())
	}

	if n.Rest != nil {
		params = append(params, "&rest", n.Rest.Name.Literal())
	}

	if n.HasKeys {
		params = append(params, "&key")
	}

	for _, k := range n.Keys {
		p := "((" + k.Keyword.Literal() + " " + k.Var.Name.Literal() + ") " + k.Default.String()
		if k.Supplied != nil {
			p += " " + k.Supplied.Name.Literal()
		}

		params = append(params, p+")")
	}

	if n.AllowOtherKeys {
		params = append(params, "&allow-other-keys")
	}

	if len(n.Aux) > 0 {
		params = append(params, "&aux")
	}

	for _, a := range n.Aux {
		params = append(params, "("+a.Var.Name.Literal()+" "+a.Init.String()+")")
	}

	b.WriteString("(")
	b.WriteString(strings.Join(params, " "))
	b.WriteString(") ")
	b.WriteString(n.Body.String())
	b.WriteString(")")

	return b.String()
}

func (*Constant) node()      {}
func (*LocalStatic) node()   {}
func (*LocalDynamic) node()  {}
func (*GlobalStatic) node()  {}
func (*GlobalDynamic) node() {}
func (*Unresolved) node()    {}
func (*Body) node()          {}
func (*If) node()            {}
func (*Call) node()          {}
func (*Lambda) node()        {}
func (*UnwindProtect) node() {}

func form(head string, nodes ...Node) string {
	s := make([]string, 0, len(nodes)+1)

	s = append(s, head)
	for _, n := range nodes {
		s = append(s, n.String())
	}

	return "(" + strings.Join(s, " ") + ")"
}

func named(name *sym.T) *sym.T {
	if name == nil {
		panic(condition.NewInternalCompiler("reference without a name"))
	}

	return name
}

func required(label string, nodes ...Node) {
	for _, n := range nodes {
		if n == nil {
			panic(condition.NewInternalCompiler(label + " with a missing child"))
		}
	}
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	_ = Node(&Constant{})
	_ = Node(&LocalStatic{})
	_ = Node(&LocalDynamic{})
	_ = Node(&GlobalStatic{})
	_ = Node(&GlobalDynamic{})
	_ = Node(&Unresolved{})
	_ = Node(&Body{})
	_ = Node(&If{})
	_ = Node(&Call{})
	_ = Node(&Lambda{})
	_ = Node(&UnwindProtect{})
}
