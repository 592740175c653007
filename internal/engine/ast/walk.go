// Released under an MIT license. See LICENSE.

package ast

// Inspect traverses an AST in depth-first order: It starts by calling
// f(n); if f returns true, Inspect invokes f recursively for each of
// the children of n.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Children returns the direct children of n in evaluation order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Body:
		return n.Forms
	case *If:
		return []Node{n.Cond, n.Then, n.Else}
	case *Call:
		cs := append([]Node{n.Function}, n.Args...)
		if n.Rest != nil {
			cs = append(cs, n.Rest)
		}

		return cs
	case *Lambda:
		var cs []Node

		for _, k := range n.Keys {
			cs = append(cs, k.Default)
		}

		for _, a := range n.Aux {
			cs = append(cs, a.Init)
		}

		return append(cs, n.Body)
	case *UnwindProtect:
		return append([]Node{n.Protected}, n.Cleanup...)
	}

	return nil
}
