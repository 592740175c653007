// Released under an MIT license. See LICENSE.

// Package lambdalist parses lambda lists.
//
// The parser adapts the state function approach used by the lexer in
// Go's text/template package. Each state consumes part of the lambda list
// and returns the next state. The states are, in order: required, rest,
// key, allow-other-keys and aux.
package lambdalist

import (
	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/type/list"
	"github.com/michaelmacinnis/slxi/internal/common/type/pair"
	"github.com/michaelmacinnis/slxi/internal/common/type/sym"
)

// Key is a keyword parameter.
type Key struct {
	Keyword  *sym.T // The keyword that names the argument.
	Var      *sym.T
	Default  cell.I // Form evaluated when the argument is not passed.
	Supplied *sym.T // Bound to t if the argument was passed. May be nil.
}

// Aux is an auxiliary variable.
type Aux struct {
	Var  *sym.T
	Init cell.I
}

// T (lambdalist) is a parsed lambda list.
type T struct {
	Required []*sym.T
	Rest     *sym.T // Not set when there is no &rest parameter.

	HasKeys        bool
	Keys           []*Key
	AllowOtherKeys bool

	Aux []*Aux
}

type lambdalist = T

// Key returns the keyword parameter bound to the variable v.
func (l *lambdalist) Key(v *sym.T) (*Key, bool) {
	for _, k := range l.Keys {
		if k.Var == v {
			return k, true
		}
	}

	return nil, false
}

// Vars returns every variable introduced by l in the order they are bound.
func (l *lambdalist) Vars() []*sym.T {
	vs := append([]*sym.T{}, l.Required...)

	if l.Rest != nil {
		vs = append(vs, l.Rest)
	}

	for _, k := range l.Keys {
		vs = append(vs, k.Var)

		if k.Supplied != nil {
			vs = append(vs, k.Supplied)
		}
	}

	for _, a := range l.Aux {
		vs = append(vs, a.Var)
	}

	return vs
}

type state func(*parser) state

type parser struct {
	*lambdalist

	form cell.I // The complete lambda list.
	rest cell.I // What remains to be parsed.
	seen map[*sym.T]bool
}

// Parse parses the lambda list form.
func Parse(form cell.I) (l *T, err error) {
	defer condition.Recover(&err)

	p := &parser{
		lambdalist: &lambdalist{},
		form:       form,
		rest:       form,
		seen:       map[*sym.T]bool{},
	}

	for s := required; s != nil; {
		s = s(p)
	}

	return p.lambdalist, nil
}

func required(p *parser) state {
	c, ok := p.next()
	if !ok {
		return nil
	}

	switch c {
	case sym.Rest:
		return rest
	case sym.Key:
		return key
	case sym.Aux:
		return aux
	}

	p.Required = append(p.Required, p.variable(c, "argument name expected"))

	return required
}

func rest(p *parser) state {
	c, ok := p.next()
	if !ok {
		p.fail(p.form, "argument name expected")
	}

	p.Rest = p.variable(c, "argument name must be a symbol")

	c, ok = p.next()
	if !ok {
		return nil
	}

	switch c {
	case sym.Key:
		return key
	case sym.Aux:
		return aux
	case sym.AllowOtherKeys:
		p.fail(p.form, "misplaced &allow-other-keys")
	}

	p.fail(p.form, "invalid syntax")

	return nil
}

func key(p *parser) state {
	p.HasKeys = true

	c, ok := p.next()
	if !ok {
		return nil
	}

	switch c {
	case sym.Aux:
		return aux
	case sym.AllowOtherKeys:
		return allowOtherKeys
	}

	if sym.Is(c) {
		v := p.variable(c, "argument name expected")
		p.Keys = append(p.Keys, &Key{
			Keyword: sym.Keyword(v.String()),
			Var:     v,
			Default: list.Null,
		})

		return key
	}

	elems := p.proper(c, "invalid key argument syntax")
	if len(elems) < 1 || len(elems) > 3 {
		p.fail(c, "invalid key argument syntax")
	}

	k := &Key{Default: list.Null}

	switch name := elems[0]; {
	case sym.Is(name):
		k.Var = p.variable(name, "argument name is not a symbol")
		k.Keyword = sym.Keyword(k.Var.String())
	default:
		names := p.proper(name, "invalid keyword argument name form")
		if len(names) != 2 {
			p.fail(name, "invalid keyword argument name form")
		}

		if !sym.Is(names[0]) {
			p.fail(name, "keyword name is not a symbol")
		}

		k.Keyword = sym.To(names[0])
		k.Var = p.variable(names[1], "argument name is not a symbol")
	}

	if len(elems) > 1 {
		k.Default = elems[1]
	}

	if len(elems) > 2 {
		k.Supplied = p.variable(elems[2], "argument name is not a symbol")
	}

	p.Keys = append(p.Keys, k)

	return key
}

func allowOtherKeys(p *parser) state {
	p.AllowOtherKeys = true

	c, ok := p.next()
	if !ok {
		return nil
	}

	if c != sym.Aux {
		p.fail(p.form, "only &aux args can follow &allow-other-keys")
	}

	return aux
}

func aux(p *parser) state {
	c, ok := p.next()
	if !ok {
		return nil
	}

	if sym.Is(c) {
		v := p.variable(c, "argument name must be a symbol")
		p.Aux = append(p.Aux, &Aux{Var: v, Init: list.Null})

		return aux
	}

	elems := p.proper(c, "invalid &aux argument form")
	if len(elems) != 2 {
		p.fail(c, "invalid &aux argument form")
	}

	v := p.variable(elems[0], "argument name must be a symbol")
	p.Aux = append(p.Aux, &Aux{Var: v, Init: elems[1]})

	return aux
}

func (p *parser) fail(form cell.I, msg string) {
	panic(condition.NewSyntax(form, msg))
}

// next returns the next element of the lambda list, if there is one.
func (p *parser) next() (cell.I, bool) {
	if p.rest == list.Null {
		return nil, false
	}

	if !pair.Is(p.rest) {
		p.fail(p.form, "dotted lambda list are not allowed")
	}

	c := pair.Car(p.rest)
	p.rest = pair.Cdr(p.rest)

	if p.rest != list.Null && !pair.Is(p.rest) {
		p.fail(p.form, "dotted lambda list are not allowed")
	}

	return c, true
}

func (p *parser) proper(c cell.I, msg string) []cell.I {
	elems, tail := list.Split(c)
	if tail != list.Null {
		p.fail(c, msg)
	}

	return elems
}

// variable checks that c can name a new variable. Markers, t and nil cannot.
func (p *parser) variable(c cell.I, msg string) *sym.T {
	if !sym.Is(c) {
		p.fail(p.form, msg)
	}

	s := sym.To(c)
	if s.Immutable() {
		p.fail(p.form, msg)
	}

	switch s {
	case sym.AllowOtherKeys, sym.Aux, sym.Key, sym.Rest:
		p.fail(p.form, "misplaced "+s.String())
	}

	if p.seen[s] {
		p.fail(p.form, "duplicate argument name: "+s.String())
	}

	p.seen[s] = true

	return s
}
